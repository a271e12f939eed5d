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
	"sort"

	"github.com/chewxy/math32"
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/gorse-io/crossval/base"
)

/* Random */

// Random predicts a random target drawn from a normal distribution whose mean
// and standard deviation are estimated from the training targets. Predictions
// are cropped to the range observed during training.
type Random struct {
	BaseModel
	Mean   float32 // mu
	StdDev float32 // sigma
	Low    float32 // lower bound of training targets
	High   float32 // upper bound of training targets
}

// NewRandom creates a random model.
func NewRandom(params base.Params) *Random {
	random := new(Random)
	random.SetParams(params)
	return random
}

func (random *Random) Fit(x [][]float32, y []float32, _ FitParams) error {
	if y == nil {
		return errors.NotValidf("random model without labels")
	}
	var sum float32
	for _, value := range y {
		sum += value
	}
	random.Mean = sum / float32(len(y))
	var squares float32
	for _, value := range y {
		squares += (value - random.Mean) * (value - random.Mean)
	}
	random.StdDev = math32.Sqrt(squares / float32(len(y)))
	random.Low = lo.Min(y)
	random.High = lo.Max(y)
	return nil
}

func (random *Random) Predict(x [][]float32) []float32 {
	rng := random.GetRandomGenerator()
	predictions := make([]float32, len(x))
	for i := range predictions {
		prediction := float32(rng.NormFloat64())*random.StdDev + random.Mean
		// Crop prediction
		if prediction < random.Low {
			prediction = random.Low
		} else if prediction > random.High {
			prediction = random.High
		}
		predictions[i] = prediction
	}
	return predictions
}

func (random *Random) Clear() {
	random.Mean = 0
	random.StdDev = 0
	random.Low = 0
	random.High = 0
}

/* Mean */

// Mean predicts the (optionally weighted) mean of the training targets. The
// fit parameter "sample_weight" supplies per-sample weights.
type Mean struct {
	BaseModel
	GlobalMean float32
}

// NewMean creates a mean model.
func NewMean(params base.Params) *Mean {
	mean := new(Mean)
	mean.SetParams(params)
	return mean
}

func (mean *Mean) Capabilities() Capabilities {
	return Capabilities{Scoreable: true}
}

func (mean *Mean) Fit(x [][]float32, y []float32, fitParams FitParams) error {
	if y == nil {
		return errors.NotValidf("mean model without labels")
	}
	if weights, exist := fitParams["sample_weight"].([]float32); exist {
		if len(weights) != len(y) {
			return errors.NotValidf("%d sample weights over %d samples", len(weights), len(y))
		}
		var sum, total float32
		for i, value := range y {
			sum += weights[i] * value
			total += weights[i]
		}
		if total == 0 {
			return errors.NotValidf("zero total sample weight")
		}
		mean.GlobalMean = sum / total
	} else {
		var sum float32
		for _, value := range y {
			sum += value
		}
		mean.GlobalMean = sum / float32(len(y))
	}
	return nil
}

func (mean *Mean) Predict(x [][]float32) []float32 {
	predictions := make([]float32, len(x))
	for i := range predictions {
		predictions[i] = mean.GlobalMean
	}
	return predictions
}

// Score returns the coefficient of determination of the prediction.
func (mean *Mean) Score(x [][]float32, y []float32) float64 {
	predictions := mean.Predict(x)
	var testMean float32
	for _, value := range y {
		testMean += value
	}
	testMean /= float32(len(y))
	var residual, total float32
	for i, value := range y {
		residual += (value - predictions[i]) * (value - predictions[i])
		total += (value - testMean) * (value - testMean)
	}
	if total == 0 {
		return 0
	}
	return float64(1 - residual/total)
}

func (mean *Mean) Clear() {
	mean.GlobalMean = 0
}

/* KNN */

// KNN is a k-nearest-neighbor classifier over euclidean distance. Ties are
// broken towards the smaller class label.
type KNN struct {
	BaseModel
	Points [][]float32
	Labels []float32
}

// NewKNN creates a KNN classifier. Params:
//
//	K - The number of neighbors. Default is 5.
func NewKNN(params base.Params) *KNN {
	knn := new(KNN)
	knn.SetParams(params)
	return knn
}

func (knn *KNN) Capabilities() Capabilities {
	return Capabilities{Classifier: true, Scoreable: true}
}

func (knn *KNN) Fit(x [][]float32, y []float32, _ FitParams) error {
	if y == nil {
		return errors.NotValidf("knn classifier without labels")
	}
	if len(x) != len(y) {
		return errors.NotValidf("%d rows over %d labels", len(x), len(y))
	}
	knn.Points = x
	knn.Labels = y
	return nil
}

func (knn *KNN) Predict(x [][]float32) []float32 {
	k := knn.GetParams().GetInt(base.K, 5)
	if k > len(knn.Points) {
		k = len(knn.Points)
	}
	predictions := make([]float32, len(x))
	for i, row := range x {
		// Find the k nearest training points
		distances := make([]float32, len(knn.Points))
		for j, point := range knn.Points {
			distances[j] = euclidean(row, point)
		}
		neighbors := base.RangeInt(len(knn.Points))
		sort.SliceStable(neighbors, func(a, b int) bool {
			return distances[neighbors[a]] < distances[neighbors[b]]
		})
		// Majority vote
		votes := make(map[float32]int)
		for _, neighbor := range neighbors[:k] {
			votes[knn.Labels[neighbor]]++
		}
		var best float32
		bestCount := -1
		for label, count := range votes {
			if count > bestCount || (count == bestCount && label < best) {
				best = label
				bestCount = count
			}
		}
		predictions[i] = best
	}
	return predictions
}

// Score returns the accuracy of the prediction.
func (knn *KNN) Score(x [][]float32, y []float32) float64 {
	predictions := knn.Predict(x)
	correct := 0
	for i, prediction := range predictions {
		if prediction == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y))
}

func (knn *KNN) Clear() {
	knn.Points = nil
	knn.Labels = nil
}

func euclidean(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math32.Sqrt(sum)
}
