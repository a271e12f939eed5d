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

package metrics

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/crossval/model"
)

const epsilon = 1e-5

func TestRMSE(t *testing.T) {
	predictions := []float32{1, 2, 3}
	truth := []float32{2, 3, 4}
	assert.InDelta(t, 1.0, RMSE(predictions, truth), epsilon)
	assert.InDelta(t, 0.0, RMSE(truth, truth), epsilon)
}

func TestMAE(t *testing.T) {
	predictions := []float32{1, 2, 3}
	truth := []float32{2, 1, 3}
	assert.InDelta(t, 2.0/3.0, MAE(predictions, truth), epsilon)
}

func TestAccuracy(t *testing.T) {
	predictions := []float32{0, 1, 1, 0}
	truth := []float32{0, 1, 0, 0}
	assert.InDelta(t, 0.75, Accuracy(predictions, truth), epsilon)
}

func TestR2(t *testing.T) {
	truth := []float32{1, 2, 3, 4}
	assert.InDelta(t, 1.0, R2(truth, truth), epsilon)
	// predicting the mean scores zero
	assert.InDelta(t, 0.0, R2([]float32{2.5, 2.5, 2.5, 2.5}, truth), epsilon)
	// constant ground truth
	assert.InDelta(t, 0.0, R2([]float32{1, 2}, []float32{3, 3}), epsilon)
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"rmse", "mae", "accuracy", "r2"} {
		scorer, err := Create(name)
		assert.NoError(t, err)
		assert.NotNil(t, scorer)
	}
	_, err := Create("log_loss")
	assert.True(t, errors.IsNotFound(err))
}

func TestCheckScoring(t *testing.T) {
	x := [][]float32{{0}, {0}, {0}}
	y := []float32{1, 2, 3}
	// named scorer over a fitted estimator
	mean := model.NewMean(nil)
	assert.NoError(t, mean.Fit(x, y, nil))
	scorer, err := CheckScoring(mean, "mae", false)
	assert.NoError(t, err)
	score, err := scorer(mean, x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, score, epsilon)
	// nil scoring falls back to the estimator's score method
	scorer, err = CheckScoring(mean, nil, false)
	assert.NoError(t, err)
	score, err = scorer(mean, x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, score, epsilon)
	// estimators without a score method
	random := model.NewRandom(nil)
	_, err = CheckScoring(random, nil, false)
	assert.True(t, errors.IsNotValid(err))
	scorer, err = CheckScoring(random, nil, true)
	assert.NoError(t, err)
	assert.Nil(t, scorer)
	// scorers pass through
	scorer, err = CheckScoring(mean, FromMetric(RMSE), false)
	assert.NoError(t, err)
	assert.NotNil(t, scorer)
	// unknown names and types fail loudly
	_, err = CheckScoring(mean, "log_loss", false)
	assert.True(t, errors.IsNotFound(err))
	_, err = CheckScoring(mean, 42, false)
	assert.True(t, errors.IsNotValid(err))
}
