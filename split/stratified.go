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

package split

import (
	"fmt"
	"slices"

	"github.com/juju/errors"
	"go.uber.org/zap"
	"modernc.org/mathutil"

	"github.com/gorse-io/crossval/base"
	"github.com/gorse-io/crossval/base/log"
)

// StratifiedKFoldSplitter partitions samples into NFolds folds so that each
// fold preserves the global class proportions of the label vector.
//
// Classes with fewer members than NFolds are partitioned over an inflated
// range and positions beyond the real population are dropped, so such folds
// receive fewer members of the class than requested. Only inflated positions
// are ever dropped: every sample still lands in exactly one test set.
type StratifiedKFoldSplitter struct {
	NFolds      int
	Shuffle     bool
	RandomState interface{}
}

// NewStratifiedKFoldSplitter creates a stratified k-fold splitter.
func NewStratifiedKFoldSplitter(k int) *StratifiedKFoldSplitter {
	return &StratifiedKFoldSplitter{NFolds: k}
}

func (splitter *StratifiedKFoldSplitter) Split(n int, y []float32) (*FoldSet, error) {
	if splitter.NFolds < 2 {
		return nil, errors.NotValidf("n_folds %d, expect at least 2", splitter.NFolds)
	}
	if len(y) != n {
		return nil, errors.NotValidf("%d labels over %d samples", len(y), n)
	}
	// Collect per-class sample positions in dataset order.
	classes := make([]float32, 0)
	positions := make(map[float32][]int)
	for i, label := range y {
		if _, exist := positions[label]; !exist {
			classes = append(classes, label)
		}
		positions[label] = append(positions[label], i)
	}
	slices.Sort(classes)
	minCount := n
	for _, label := range classes {
		minCount = mathutil.Min(minCount, len(positions[label]))
	}
	var diagnostics []Diagnostic
	if splitter.NFolds > minCount {
		message := fmt.Sprintf("the least populated class has only %d members, fewer than %d folds",
			minCount, splitter.NFolds)
		log.Logger().Warn(message,
			zap.Int("n_folds", splitter.NFolds),
			zap.Int("min_count", minCount))
		diagnostics = append(diagnostics, Diagnostic{
			Code:    DiagnosticStratification,
			Message: message,
		})
	}
	// One generator is shared by every per-class partition. A fresh generator
	// per class would break reproducibility.
	var rng *base.RandomGenerator
	if splitter.Shuffle {
		generator, err := base.ResolveRandomState(splitter.RandomState)
		if err != nil {
			return nil, errors.Trace(err)
		}
		rng = &generator
	}
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}
	for _, label := range classes {
		classPositions := positions[label]
		count := len(classPositions)
		classFolds := partition(mathutil.Max(count, splitter.NFolds), splitter.NFolds, rng)
		for f, fold := range classFolds {
			for _, position := range fold.Test {
				if position >= count {
					// inflated position, trim
					continue
				}
				assignment[classPositions[position]] = f
			}
		}
	}
	folds := make([]Fold, splitter.NFolds)
	for f := range folds {
		test := make([]int, 0)
		train := make([]int, 0)
		for i, fold := range assignment {
			if fold == f {
				test = append(test, i)
			} else {
				train = append(train, i)
			}
		}
		folds[f] = Fold{Train: train, Test: test}
	}
	return &FoldSet{Folds: folds, Diagnostics: diagnostics}, nil
}
