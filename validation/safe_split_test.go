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

package validation

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/crossval/model"
)

func TestRows(t *testing.T) {
	assert.Equal(t, []float32{30, 10}, Rows([]float32{10, 20, 30}, []int{2, 0}))
	assert.Equal(t, [][]float32{{3}, {1}}, Rows([][]float32{{1}, {2}, {3}}, []int{2, 0}))
	assert.Nil(t, Rows[float32](nil, []int{0, 1}))
	assert.Empty(t, Rows([]float32{1, 2}, nil))
}

func TestSafeSplit(t *testing.T) {
	x := [][]float32{{1}, {2}, {3}, {4}}
	y := []float32{10, 20, 30, 40}
	subX, subY, err := SafeSplit(model.NewMean(nil), x, y, []int{3, 1}, []int{0, 2})
	assert.NoError(t, err)
	assert.Equal(t, [][]float32{{4}, {2}}, subX)
	assert.Equal(t, []float32{40, 20}, subY)
	// nil targets stay nil
	_, subY, err = SafeSplit(model.NewMean(nil), x, nil, []int{0}, nil)
	assert.NoError(t, err)
	assert.Nil(t, subY)
	// pairwise estimators are unsupported
	_, _, err = SafeSplit(&pairwiseModel{}, x, y, []int{0}, []int{1})
	assert.True(t, errors.IsNotImplemented(err))
}

func TestIndexParamValue(t *testing.T) {
	indices := []int{2, 0}
	// slices of length n are sliced along the sample axis
	assert.Equal(t, []float32{3, 1}, IndexParamValue(3, []float32{1, 2, 3}, indices))
	assert.Equal(t, []int{30, 10}, IndexParamValue(3, []int{10, 20, 30}, indices))
	// everything else passes through
	assert.Equal(t, []float32{1, 2}, IndexParamValue(3, []float32{1, 2}, indices))
	assert.Equal(t, 42, IndexParamValue(3, 42, indices))
	assert.Equal(t, "svd", IndexParamValue(3, "svd", indices))
	assert.Nil(t, IndexParamValue(3, nil, indices))
}

func TestIndexFitParams(t *testing.T) {
	fitParams := model.FitParams{
		"sample_weight": []float32{1, 2, 3},
		"tolerance":     0.1,
	}
	indexed := indexFitParams(3, fitParams, []int{1, 2})
	assert.Equal(t, []float32{2, 3}, indexed["sample_weight"])
	assert.Equal(t, 0.1, indexed["tolerance"])
	assert.Nil(t, indexFitParams(3, nil, []int{0}))
}
