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

// Package dataset loads built-in data sets and inspects target vectors.
package dataset

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"
)

// TargetType describes what kind of learning target a label vector holds.
type TargetType int

const (
	Binary TargetType = iota
	Multiclass
	Continuous
)

func (targetType TargetType) String() string {
	switch targetType {
	case Binary:
		return "binary"
	case Multiclass:
		return "multiclass"
	default:
		return "continuous"
	}
}

// TypeOfTarget infers the target type of a label vector. Vectors with
// non-integral values are continuous; integral vectors are binary with up to
// two distinct values and multiclass otherwise.
func TypeOfTarget(y []float32) TargetType {
	unique := mapset.NewThreadUnsafeSet[float32]()
	for _, value := range y {
		if value != float32(math.Trunc(float64(value))) {
			return Continuous
		}
		unique.Add(value)
	}
	if unique.Cardinality() <= 2 {
		return Binary
	}
	return Multiclass
}
