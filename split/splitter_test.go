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

package split

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/crossval/base"
)

func TestRatioSplitter(t *testing.T) {
	splitter := &RatioSplitter{Repeat: 3, TestRatio: 0.2, RandomState: 0}
	foldSet, err := splitter.Split(100, nil)
	assert.NoError(t, err)
	assert.Len(t, foldSet.Folds, 3)
	for _, fold := range foldSet.Folds {
		assert.Len(t, fold.Test, 20)
		assert.Len(t, fold.Train, 80)
	}
	// invalid configurations
	_, err = NewRatioSplitter(0, 0.2).Split(100, nil)
	assert.True(t, errors.IsNotValid(err))
	_, err = NewRatioSplitter(1, 0).Split(100, nil)
	assert.True(t, errors.IsNotValid(err))
	_, err = NewRatioSplitter(1, 1).Split(100, nil)
	assert.True(t, errors.IsNotValid(err))
}

func TestLeaveOneOutSplitter(t *testing.T) {
	foldSet, err := (&LeaveOneOutSplitter{}).Split(5, nil)
	assert.NoError(t, err)
	assert.Len(t, foldSet.Folds, 5)
	checkPartition(t, foldSet, 5)
	for i, fold := range foldSet.Folds {
		assert.Equal(t, []int{i}, fold.Test)
	}
	_, err = (&LeaveOneOutSplitter{}).Split(1, nil)
	assert.True(t, errors.IsNotValid(err))
}

func TestRegistry(t *testing.T) {
	splitter, err := Create("k_fold", base.Params{base.NFolds: 5})
	assert.NoError(t, err)
	foldSet, err := splitter.Split(10, nil)
	assert.NoError(t, err)
	assert.Len(t, foldSet.Folds, 5)

	splitter, err = Create("stratified_k_fold", base.Params{base.NFolds: 2})
	assert.NoError(t, err)
	y := []float32{0, 1, 0, 1}
	foldSet, err = splitter.Split(4, y)
	assert.NoError(t, err)
	assert.Len(t, foldSet.Folds, 2)

	splitter, err = Create("leave_one_out", nil)
	assert.NoError(t, err)
	foldSet, err = splitter.Split(3, nil)
	assert.NoError(t, err)
	assert.Len(t, foldSet.Folds, 3)

	splitter, err = Create("shuffle_split", base.Params{base.NRepeats: 2, base.TestRatio: 0.5})
	assert.NoError(t, err)
	foldSet, err = splitter.Split(10, nil)
	assert.NoError(t, err)
	assert.Len(t, foldSet.Folds, 2)

	_, err = Create("time_series", nil)
	assert.True(t, errors.IsNotFound(err))
}

func TestPrebuiltSplitter(t *testing.T) {
	// one-based folds from an external library
	folds := []Fold{
		{Train: []int{3, 4}, Test: []int{1, 2}},
		{Train: []int{1, 2}, Test: []int{3, 4}},
	}
	foldSet, err := NewPrebuiltSplitter(folds, OneBased).Split(4, nil)
	assert.NoError(t, err)
	assert.Equal(t, []Fold{
		{Train: []int{2, 3}, Test: []int{0, 1}},
		{Train: []int{0, 1}, Test: []int{2, 3}},
	}, foldSet.Folds)
	// zero-based folds pass through unchanged
	foldSet, err = NewPrebuiltSplitter(foldSet.Folds, ZeroBased).Split(4, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, foldSet.Folds[0].Test)
	// out of range
	_, err = NewPrebuiltSplitter(folds, ZeroBased).Split(4, nil)
	assert.True(t, errors.IsNotValid(err))
	// train and test overlap
	overlapping := []Fold{{Train: []int{0, 1}, Test: []int{1, 2}}}
	_, err = NewPrebuiltSplitter(overlapping, ZeroBased).Split(4, nil)
	assert.True(t, errors.IsNotValid(err))
}
