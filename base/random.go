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
	"math/rand"
	"time"

	"github.com/juju/errors"
)

// RandomGenerator is the random generator for crossval.
type RandomGenerator struct {
	*rand.Rand
}

// NewRandomGenerator creates a RandomGenerator.
func NewRandomGenerator(seed int64) RandomGenerator {
	return RandomGenerator{rand.New(rand.NewSource(seed))}
}

var defaultGenerator = NewRandomGenerator(time.Now().UnixNano())

// ResolveRandomState normalizes a random state specification into a
// RandomGenerator:
//
//	nil             the process-wide default generator
//	int, int64      a new generator seeded with the value
//	RandomGenerator passed through unchanged
//
// Any other value is rejected.
func ResolveRandomState(state interface{}) (RandomGenerator, error) {
	switch value := state.(type) {
	case nil:
		return defaultGenerator, nil
	case int:
		return NewRandomGenerator(int64(value)), nil
	case int64:
		return NewRandomGenerator(value), nil
	case RandomGenerator:
		return value, nil
	default:
		return RandomGenerator{}, errors.NotValidf("random state %v (%T)", value, value)
	}
}
