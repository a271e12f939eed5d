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
	"math"

	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gorse-io/crossval/base"
	"github.com/gorse-io/crossval/base/log"
	"github.com/gorse-io/crossval/model"
)

// ParamsGrid maps each tunable parameter to its candidate values.
type ParamsGrid map[base.ParamName][]interface{}

// ModelSelectionResult reports the outcome of a hyper-parameter search.
// Lower mean scores are considered better, so maximized metrics such as
// accuracy should be searched with a negated scorer.
type ModelSelectionResult struct {
	BestScore  float64
	BestParams base.Params
	BestIndex  int
	Scores     []float64
	Params     []base.Params
}

// GridSearchCV exhaustively cross-validates every combination in the grid.
func GridSearchCV(estimator model.Model, x [][]float32, y []float32, grid ParamsGrid,
	scoring interface{}, cv interface{}, jobs int, fitParams model.FitParams,
	opts FitOptions) (*ModelSelectionResult, error) {
	paramNames := make([]base.ParamName, 0, len(grid))
	count := 1
	for name, values := range grid {
		paramNames = append(paramNames, name)
		count *= len(values)
	}
	result := &ModelSelectionResult{BestScore: math.Inf(1), BestIndex: -1}
	var bar *progressbar.ProgressBar
	if opts.Verbose {
		bar = progressbar.Default(int64(count), "grid search")
	}
	var dfs func(deep int, params base.Params) error
	dfs = func(deep int, params base.Params) error {
		if deep == len(paramNames) {
			cvResult, err := CrossValidate(estimator, x, y, scoring, cv, jobs, fitParams,
				FitOptions{ReturnTrainScore: opts.ReturnTrainScore, ErrorScore: opts.ErrorScore})
			if err != nil {
				return errors.Trace(err)
			}
			mean, _ := cvResult.MeanAndMargin()
			result.Scores = append(result.Scores, mean)
			result.Params = append(result.Params, params.Copy())
			if mean < result.BestScore {
				result.BestScore = mean
				result.BestParams = params.Copy()
				result.BestIndex = len(result.Scores) - 1
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		}
		name := paramNames[deep]
		for _, value := range grid[name] {
			params[name] = value
			estimator.SetParams(estimator.GetParams().Merge(base.Params{name: value}))
			if err := dfs(deep+1, params); err != nil {
				return err
			}
		}
		return nil
	}
	if err := dfs(0, make(base.Params)); err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Info("grid search complete",
		zap.Float64("best_score", result.BestScore),
		zap.Any("best_params", result.BestParams))
	return result, nil
}

// RandomSearchCV cross-validates trials random draws from the grid. A zero
// or negative trial count falls back to exhaustive search.
func RandomSearchCV(estimator model.Model, x [][]float32, y []float32, grid ParamsGrid,
	scoring interface{}, cv interface{}, trials int, randomState interface{}, jobs int,
	fitParams model.FitParams, opts FitOptions) (*ModelSelectionResult, error) {
	if trials <= 0 {
		return GridSearchCV(estimator, x, y, grid, scoring, cv, jobs, fitParams, opts)
	}
	rng, err := base.ResolveRandomState(randomState)
	if err != nil {
		return nil, errors.Trace(err)
	}
	result := &ModelSelectionResult{BestScore: math.Inf(1), BestIndex: -1}
	var bar *progressbar.ProgressBar
	if opts.Verbose {
		bar = progressbar.Default(int64(trials), "random search")
	}
	for trial := 0; trial < trials; trial++ {
		params := make(base.Params)
		for name, values := range grid {
			params[name] = values[rng.Intn(len(values))]
		}
		estimator.SetParams(estimator.GetParams().Merge(params))
		cvResult, err := CrossValidate(estimator, x, y, scoring, cv, jobs, fitParams,
			FitOptions{ReturnTrainScore: opts.ReturnTrainScore, ErrorScore: opts.ErrorScore})
		if err != nil {
			return nil, errors.Trace(err)
		}
		mean, _ := cvResult.MeanAndMargin()
		result.Scores = append(result.Scores, mean)
		result.Params = append(result.Params, params.Copy())
		if mean < result.BestScore {
			result.BestScore = mean
			result.BestParams = params.Copy()
			result.BestIndex = trial
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	log.Logger().Info("random search complete",
		zap.Float64("best_score", result.BestScore),
		zap.Any("best_params", result.BestParams))
	return result, nil
}
