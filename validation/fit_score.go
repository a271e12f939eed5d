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
	"time"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/gorse-io/crossval/base"
	"github.com/gorse-io/crossval/base/log"
	"github.com/gorse-io/crossval/metrics"
	"github.com/gorse-io/crossval/model"
)

// ErrorScoreRaise is the only supported error_score policy. A failing fit
// propagates its error instead of substituting a placeholder score.
const ErrorScoreRaise = "raise"

// ScoreRecord reports the outcome of fitting and scoring one fold.
type ScoreRecord struct {
	TrainScore float64
	TestScore  float64
	TestSize   int
	Duration   time.Duration
	Params     base.Params
}

// FitOptions controls FitAndScore.
type FitOptions struct {
	Verbose          bool
	ReturnTrainScore bool
	ReturnParameters bool
	ErrorScore       string
}

// NewFitOptions returns the default options.
func NewFitOptions() FitOptions {
	return FitOptions{ErrorScore: ErrorScoreRaise}
}

// FitAndScore fits an estimator on the training subset and scores it on the
// test subset. The reported duration covers fitting and scoring but not
// parameter preparation.
func FitAndScore(estimator model.Model, x [][]float32, y []float32, scorer metrics.Scorer,
	trainIndices, testIndices []int, params base.Params, fitParams model.FitParams,
	opts FitOptions) (*ScoreRecord, error) {
	if opts.ErrorScore != ErrorScoreRaise {
		return nil, errors.NotValidf("error score policy %v", opts.ErrorScore)
	}
	merged := estimator.GetParams().Merge(params)
	estimator.SetParams(merged)
	indexed := indexFitParams(len(x), fitParams, trainIndices)
	start := time.Now()
	trainX, trainY, err := SafeSplit(estimator, x, y, trainIndices, trainIndices)
	if err != nil {
		return nil, errors.Trace(err)
	}
	testX, testY, err := SafeSplit(estimator, x, y, testIndices, trainIndices)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = estimator.Fit(trainX, trainY, indexed); err != nil {
		return nil, errors.Trace(err)
	}
	record := &ScoreRecord{TestSize: len(testIndices)}
	if record.TestScore, err = score(estimator, scorer, testX, testY); err != nil {
		return nil, errors.Trace(err)
	}
	if opts.ReturnTrainScore {
		if record.TrainScore, err = score(estimator, scorer, trainX, trainY); err != nil {
			return nil, errors.Trace(err)
		}
	}
	record.Duration = time.Since(start)
	if opts.ReturnParameters {
		record.Params = params.Copy()
	}
	if opts.Verbose {
		log.Logger().Info("fold scored",
			zap.Float64("test_score", record.TestScore),
			zap.Int("test_size", record.TestSize),
			zap.Duration("duration", record.Duration))
	}
	return record, nil
}

// FitAndPredict fits an estimator on the training subset and predicts the
// test subset.
func FitAndPredict(estimator model.Model, x [][]float32, y []float32,
	trainIndices, testIndices []int, fitParams model.FitParams) ([]float32, error) {
	indexed := indexFitParams(len(x), fitParams, trainIndices)
	trainX, trainY, err := SafeSplit(estimator, x, y, trainIndices, trainIndices)
	if err != nil {
		return nil, errors.Trace(err)
	}
	testX, _, err := SafeSplit(estimator, x, y, testIndices, trainIndices)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = estimator.Fit(trainX, trainY, indexed); err != nil {
		return nil, errors.Trace(err)
	}
	return estimator.Predict(testX), nil
}

func score(estimator model.Model, scorer metrics.Scorer, x [][]float32, y []float32) (float64, error) {
	value, err := scorer(estimator, x, y)
	if err != nil {
		return 0, errors.Trace(err)
	}
	if math.IsNaN(value) {
		return 0, errors.NotValidf("scoring returned NaN, score")
	}
	return value, nil
}
