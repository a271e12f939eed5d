// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewRandomGenerator(t *testing.T) {
	a := NewRandomGenerator(42)
	b := NewRandomGenerator(42)
	assert.Equal(t, a.Perm(100), b.Perm(100))
	c := NewRandomGenerator(43)
	assert.NotEqual(t, NewRandomGenerator(42).Perm(100), c.Perm(100))
}

func TestResolveRandomState(t *testing.T) {
	// integer seed
	a, err := ResolveRandomState(42)
	assert.NoError(t, err)
	b, err := ResolveRandomState(int64(42))
	assert.NoError(t, err)
	assert.Equal(t, a.Perm(100), b.Perm(100))
	// existing generator passes through
	c := NewRandomGenerator(1)
	d, err := ResolveRandomState(c)
	assert.NoError(t, err)
	assert.Equal(t, c, d)
	// default generator
	_, err = ResolveRandomState(nil)
	assert.NoError(t, err)
	// invalid specification
	_, err = ResolveRandomState("seed")
	assert.True(t, errors.IsNotValid(err))
}

func TestRangeInt(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, RangeInt(4))
	assert.Empty(t, RangeInt(0))
}
