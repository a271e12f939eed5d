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

// Package model defines the estimator contract consumed by the evaluation
// harness, and a few built-in estimators.
package model

import (
	"github.com/gorse-io/crossval/base"
	"github.com/gorse-io/crossval/base/copier"
)

// Capabilities declares what an estimator can do. The evaluation harness
// checks these flags instead of inspecting concrete types.
type Capabilities struct {
	// Classifier means targets are class labels, enabling stratified folds.
	Classifier bool
	// Pairwise means X is a precomputed kernel matrix rather than feature rows.
	Pairwise bool
	// Scoreable means the estimator implements Scoreable as its default scorer.
	Scoreable bool
}

// FitParams carries auxiliary fit-time values such as sample weights. Slices
// whose length matches the sample count are re-indexed alongside X and y by
// the evaluation harness.
type FitParams map[string]interface{}

// Model is the interface for all estimators. Any estimator in this package
// should implement it.
type Model interface {
	// Set hyper-parameters.
	SetParams(params base.Params)
	// Get hyper-parameters.
	GetParams() base.Params
	// Capabilities declares the estimator's capability flags.
	Capabilities() Capabilities
	// Clear fitted state, leaving hyper-parameters in place.
	Clear()
	// Fit the estimator on a train set. The label vector y is nil for
	// unsupervised estimators.
	Fit(x [][]float32, y []float32, fitParams FitParams) error
	// Predict targets for every row of x.
	Predict(x [][]float32) []float32
}

// Scoreable is implemented by estimators that declare Capabilities.Scoreable
// and carry their own default scorer.
type Scoreable interface {
	Score(x [][]float32, y []float32) float64
}

// BaseModel must be included by every estimator. Hyper-parameters and the
// random generator are managed by BaseModel.
type BaseModel struct {
	Params    base.Params
	rng       base.RandomGenerator
	randState int64
}

// SetParams sets hyper-parameters for the BaseModel.
func (model *BaseModel) SetParams(params base.Params) {
	model.Params = params
	model.randState = params.GetInt64(base.RandomState, 0)
	model.rng = base.NewRandomGenerator(model.randState)
}

// GetParams returns all hyper-parameters.
func (model *BaseModel) GetParams() base.Params {
	if model.Params == nil {
		return base.Params{}
	}
	return model.Params
}

// Capabilities returns no capabilities. Estimators override as needed.
func (model *BaseModel) Capabilities() Capabilities {
	return Capabilities{}
}

// GetRandomGenerator returns the random generator seeded by random_state.
func (model *BaseModel) GetRandomGenerator() base.RandomGenerator {
	return model.rng
}

// Clone returns an independent unfitted copy of an estimator sharing the same
// hyper-parameters.
func Clone(m Model) Model {
	var copied Model
	if err := copier.Copy(&copied, m); err != nil {
		panic(err)
	}
	copied.SetParams(copied.GetParams())
	copied.Clear()
	return copied
}
