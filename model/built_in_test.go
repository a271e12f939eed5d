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

package model

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/crossval/base"
)

func TestRandom(t *testing.T) {
	random := NewRandom(base.Params{base.RandomState: 0})
	y := []float32{1, 2, 3, 4, 5}
	err := random.Fit(nil, y, nil)
	assert.NoError(t, err)
	assert.Equal(t, float32(3), random.Mean)
	assert.Equal(t, float32(1), random.Low)
	assert.Equal(t, float32(5), random.High)
	predictions := random.Predict(make([][]float32, 100))
	assert.Len(t, predictions, 100)
	for _, prediction := range predictions {
		assert.GreaterOrEqual(t, prediction, random.Low)
		assert.LessOrEqual(t, prediction, random.High)
	}
	// labels are required
	err = random.Fit(nil, nil, nil)
	assert.True(t, errors.IsNotValid(err))
	random.Clear()
	assert.Zero(t, random.Mean)
}

func TestMean(t *testing.T) {
	mean := NewMean(nil)
	err := mean.Fit([][]float32{{0}, {0}, {0}}, []float32{1, 2, 3}, nil)
	assert.NoError(t, err)
	assert.Equal(t, float32(2), mean.GlobalMean)
	assert.Equal(t, []float32{2, 2}, mean.Predict([][]float32{{0}, {0}}))
	// weighted fit
	err = mean.Fit([][]float32{{0}, {0}, {0}}, []float32{1, 2, 3},
		FitParams{"sample_weight": []float32{1, 0, 0}})
	assert.NoError(t, err)
	assert.Equal(t, float32(1), mean.GlobalMean)
	// mismatched weights
	err = mean.Fit([][]float32{{0}}, []float32{1},
		FitParams{"sample_weight": []float32{1, 1}})
	assert.True(t, errors.IsNotValid(err))
	// perfect prediction scores 1
	err = mean.Fit(nil, []float32{2, 2}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, mean.Score([][]float32{{0}, {0}}, []float32{2, 2}))
	assert.Less(t, mean.Score([][]float32{{0}, {0}}, []float32{0, 4}), 1.0)
}

func TestKNN(t *testing.T) {
	knn := NewKNN(base.Params{base.K: 3})
	assert.Equal(t, Capabilities{Classifier: true, Scoreable: true}, knn.Capabilities())
	x := [][]float32{{0, 0}, {0, 1}, {1, 0}, {10, 10}, {10, 11}, {11, 10}}
	y := []float32{0, 0, 0, 1, 1, 1}
	err := knn.Fit(x, y, nil)
	assert.NoError(t, err)
	predictions := knn.Predict([][]float32{{0.5, 0.5}, {10.5, 10.5}})
	assert.Equal(t, []float32{0, 1}, predictions)
	assert.Equal(t, 1.0, knn.Score(x, y))
	// labels are required
	err = knn.Fit(x, nil, nil)
	assert.True(t, errors.IsNotValid(err))
	err = knn.Fit(x, []float32{0}, nil)
	assert.True(t, errors.IsNotValid(err))
}
