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

// Package metrics provides evaluation metrics and scorer resolution for
// estimators.
package metrics

import (
	"github.com/chewxy/math32"
)

// RMSE computes the root mean squared error between predictions and
// ground truth.
func RMSE(predictions, truth []float32) float32 {
	var sum float32
	for i := range predictions {
		diff := predictions[i] - truth[i]
		sum += diff * diff
	}
	return math32.Sqrt(sum / float32(len(predictions)))
}

// MAE computes the mean absolute error between predictions and ground truth.
func MAE(predictions, truth []float32) float32 {
	var sum float32
	for i := range predictions {
		sum += math32.Abs(predictions[i] - truth[i])
	}
	return sum / float32(len(predictions))
}

// Accuracy computes the fraction of predictions equal to the ground truth.
func Accuracy(predictions, truth []float32) float32 {
	correct := 0
	for i := range predictions {
		if predictions[i] == truth[i] {
			correct++
		}
	}
	return float32(correct) / float32(len(predictions))
}

// R2 computes the coefficient of determination. A constant ground truth
// yields zero.
func R2(predictions, truth []float32) float32 {
	var mean float32
	for _, value := range truth {
		mean += value
	}
	mean /= float32(len(truth))
	var residual, total float32
	for i, value := range truth {
		residual += (value - predictions[i]) * (value - predictions[i])
		total += (value - mean) * (value - mean)
	}
	if total == 0 {
		return 0
	}
	return 1 - residual/total
}
