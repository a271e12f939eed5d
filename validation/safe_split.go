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

// Package validation implements cross-validation, model evaluation and
// hyper-parameter search over splitters and scorers.
package validation

import (
	"reflect"

	"github.com/juju/errors"

	"github.com/gorse-io/crossval/model"
)

// Rows gathers the elements of data at the given indices into a new slice.
func Rows[T any](data []T, indices []int) []T {
	if data == nil {
		return nil
	}
	rows := make([]T, 0, len(indices))
	for _, index := range indices {
		rows = append(rows, data[index])
	}
	return rows
}

// SafeSplit extracts the subset of a data set selected by indices. Pairwise
// estimators need two-axis slicing of a precomputed matrix, which is not
// supported.
func SafeSplit(m model.Model, x [][]float32, y []float32, indices, trainIndices []int) ([][]float32, []float32, error) {
	if m.Capabilities().Pairwise {
		return nil, nil, errors.NotImplementedf("slicing precomputed kernels")
	}
	return Rows(x, indices), Rows(y, indices), nil
}

// IndexParamValue slices a fit parameter along the sample axis. Values that
// are not slices of length n pass through unchanged.
func IndexParamValue(n int, value interface{}, indices []int) interface{} {
	if value == nil {
		return nil
	}
	reflected := reflect.ValueOf(value)
	if reflected.Kind() != reflect.Slice || reflected.Len() != n {
		return value
	}
	sliced := reflect.MakeSlice(reflected.Type(), 0, len(indices))
	for _, index := range indices {
		sliced = reflect.Append(sliced, reflected.Index(index))
	}
	return sliced.Interface()
}

func indexFitParams(n int, fitParams model.FitParams, indices []int) model.FitParams {
	if fitParams == nil {
		return nil
	}
	indexed := make(model.FitParams, len(fitParams))
	for name, value := range fitParams {
		indexed[name] = IndexParamValue(n, value, indices)
	}
	return indexed
}
