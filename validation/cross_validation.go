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
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/gorse-io/crossval/dataset"
	"github.com/gorse-io/crossval/metrics"
	"github.com/gorse-io/crossval/model"
	"github.com/gorse-io/crossval/split"
)

// CheckCV resolves a cv argument into a Splitter. A nil cv defaults to
// three folds and an integer selects that many folds, stratified when the
// estimator is a classifier over a discrete target. Splitters and prebuilt
// fold sets pass through.
func CheckCV(cv interface{}, n int, y []float32, m model.Model) (split.Splitter, error) {
	folds := 3
	switch typed := cv.(type) {
	case nil:
	case int:
		folds = typed
	case split.Splitter:
		return typed, nil
	case *split.FoldSet:
		return split.NewPrebuiltSplitter(typed.Folds, split.ZeroBased), nil
	case []split.Fold:
		return split.NewPrebuiltSplitter(typed, split.ZeroBased), nil
	default:
		return nil, errors.NotValidf("cv %v", cv)
	}
	if m != nil && m.Capabilities().Classifier && y != nil {
		switch dataset.TypeOfTarget(y) {
		case dataset.Binary, dataset.Multiclass:
			return split.NewStratifiedKFoldSplitter(folds), nil
		}
	}
	return split.NewKFoldSplitter(folds), nil
}

// CrossValidateResult collects per-fold scores from a cross-validation run.
type CrossValidateResult struct {
	TestScores  []float64
	Records     []ScoreRecord
	Diagnostics []split.Diagnostic
}

// MeanAndMargin summarizes the test scores as mean plus the largest
// absolute deviation from it.
func (result *CrossValidateResult) MeanAndMargin() (float64, float64) {
	mean := stat.Mean(result.TestScores, nil)
	var margin float64
	for _, value := range result.TestScores {
		deviation := value - mean
		if deviation < 0 {
			deviation = -deviation
		}
		if deviation > margin {
			margin = deviation
		}
	}
	return mean, margin
}

// CrossValidate evaluates an estimator by fitting and scoring a fresh clone
// per fold. Parallel execution is not supported so jobs must be one.
func CrossValidate(estimator model.Model, x [][]float32, y []float32, scoring interface{},
	cv interface{}, jobs int, fitParams model.FitParams, opts FitOptions) (*CrossValidateResult, error) {
	if jobs != 1 {
		return nil, errors.NotValidf("%d jobs, parallel cross-validation", jobs)
	}
	if y != nil && len(x) != len(y) {
		return nil, errors.NotValidf("%d rows over %d labels", len(x), len(y))
	}
	scorer, err := metrics.CheckScoring(estimator, scoring, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	splitter, err := CheckCV(cv, len(x), y, estimator)
	if err != nil {
		return nil, errors.Trace(err)
	}
	foldSet, err := splitter.Split(len(x), y)
	if err != nil {
		return nil, errors.Trace(err)
	}
	result := &CrossValidateResult{Diagnostics: foldSet.Diagnostics}
	for _, fold := range foldSet.Folds {
		clone := model.Clone(estimator)
		record, err := FitAndScore(clone, x, y, scorer, fold.Train, fold.Test, nil, fitParams, opts)
		if err != nil {
			return nil, errors.Trace(err)
		}
		result.TestScores = append(result.TestScores, record.TestScore)
		result.Records = append(result.Records, *record)
	}
	return result, nil
}

// CrossValidatePredict returns out-of-fold predictions such that each
// sample is predicted by the one fold that holds it out. The fold set must
// therefore partition the samples exactly.
func CrossValidatePredict(estimator model.Model, x [][]float32, y []float32,
	cv interface{}, jobs int, fitParams model.FitParams) ([]float32, error) {
	if jobs != 1 {
		return nil, errors.NotValidf("%d jobs, parallel cross-validation", jobs)
	}
	if y != nil && len(x) != len(y) {
		return nil, errors.NotValidf("%d rows over %d labels", len(x), len(y))
	}
	splitter, err := CheckCV(cv, len(x), y, estimator)
	if err != nil {
		return nil, errors.Trace(err)
	}
	foldSet, err := splitter.Split(len(x), y)
	if err != nil {
		return nil, errors.Trace(err)
	}
	seen := mapset.NewSet[int]()
	for _, fold := range foldSet.Folds {
		for _, index := range fold.Test {
			if !seen.Add(index) {
				return nil, errors.NotValidf("sample %d held out twice, cv", index)
			}
		}
	}
	if seen.Cardinality() != len(x) {
		return nil, errors.NotValidf("%d of %d samples held out, cv", seen.Cardinality(), len(x))
	}
	predictions := make([]float32, len(x))
	for _, fold := range foldSet.Folds {
		clone := model.Clone(estimator)
		foldPredictions, err := FitAndPredict(clone, x, y, fold.Train, fold.Test, fitParams)
		if err != nil {
			return nil, errors.Trace(err)
		}
		for i, index := range fold.Test {
			predictions[index] = foldPredictions[i]
		}
	}
	return predictions, nil
}

// TrainTestSplit splits a data set into one random train and test pair.
func TrainTestSplit(x [][]float32, y []float32, testRatio float64, randomState interface{}) (
	trainX [][]float32, testX [][]float32, trainY []float32, testY []float32, err error) {
	splitter := &split.RatioSplitter{Repeat: 1, TestRatio: testRatio, RandomState: randomState}
	foldSet, err := splitter.Split(len(x), y)
	if err != nil {
		return nil, nil, nil, nil, errors.Trace(err)
	}
	fold := foldSet.Folds[0]
	return Rows(x, fold.Train), Rows(x, fold.Test), Rows(y, fold.Train), Rows(y, fold.Test), nil
}
