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
	"github.com/juju/errors"

	"github.com/gorse-io/crossval/model"
)

// Scorer evaluates a fitted estimator over a data set and returns a single
// score. Higher is better for accuracy and r2, lower is better for rmse
// and mae.
type Scorer func(m model.Model, x [][]float32, y []float32) (float64, error)

// FromMetric wraps a prediction metric into a Scorer.
func FromMetric(metric func(predictions, truth []float32) float32) Scorer {
	return func(m model.Model, x [][]float32, y []float32) (float64, error) {
		if len(x) != len(y) {
			return 0, errors.NotValidf("%d rows over %d labels", len(x), len(y))
		}
		return float64(metric(m.Predict(x), y)), nil
	}
}

var scorers = make(map[string]Scorer)

// Register adds a named scorer to the registry.
func Register(name string, scorer Scorer) {
	scorers[name] = scorer
}

// Create looks up a named scorer in the registry.
func Create(name string) (Scorer, error) {
	if scorer, exist := scorers[name]; exist {
		return scorer, nil
	}
	return nil, errors.NotFoundf("scorer %v", name)
}

func init() {
	Register("rmse", FromMetric(RMSE))
	Register("mae", FromMetric(MAE))
	Register("accuracy", FromMetric(Accuracy))
	Register("r2", FromMetric(R2))
}

// CheckScoring resolves a scoring argument into a Scorer. A nil scoring
// falls back to the estimator's own Score method, or to nil when allowNone
// is set and the estimator has none. A string is looked up in the registry
// and a Scorer passes through unchanged.
func CheckScoring(m model.Model, scoring interface{}, allowNone bool) (Scorer, error) {
	switch typed := scoring.(type) {
	case nil:
		if m.Capabilities().Scoreable {
			return func(m model.Model, x [][]float32, y []float32) (float64, error) {
				scoreable, ok := m.(model.Scoreable)
				if !ok {
					return 0, errors.NotValidf("estimator %T without score method", m)
				}
				return scoreable.Score(x, y), nil
			}, nil
		}
		if allowNone {
			return nil, nil
		}
		return nil, errors.NotValidf("estimator %T has no score method, scoring", m)
	case string:
		return Create(typed)
	case Scorer:
		return typed, nil
	case func(m model.Model, x [][]float32, y []float32) (float64, error):
		return typed, nil
	default:
		return nil, errors.NotValidf("scoring %v", scoring)
	}
}
