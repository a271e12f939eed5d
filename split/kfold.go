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

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/gorse-io/crossval/base"
)

// KFoldSplitter partitions samples into NFolds folds. Every sample lands in
// exactly one test set; fold sizes differ by at most one, the first
// n mod NFolds folds being the larger ones.
type KFoldSplitter struct {
	NFolds      int
	Shuffle     bool
	RandomState interface{}
}

// NewKFoldSplitter creates a k-fold splitter.
func NewKFoldSplitter(k int) *KFoldSplitter {
	return &KFoldSplitter{NFolds: k}
}

func (splitter *KFoldSplitter) Split(n int, _ []float32) (*FoldSet, error) {
	if splitter.NFolds < 2 {
		return nil, errors.NotValidf("n_folds %d, expect at least 2", splitter.NFolds)
	}
	if n < 2 {
		return nil, errors.NotValidf("%d samples, expect at least 2", n)
	}
	if splitter.NFolds > n {
		return nil, errors.NotValidf("n_folds %d over %d samples", splitter.NFolds, n)
	}
	var rng *base.RandomGenerator
	if splitter.Shuffle {
		generator, err := base.ResolveRandomState(splitter.RandomState)
		if err != nil {
			return nil, errors.Trace(err)
		}
		rng = &generator
	}
	return &FoldSet{Folds: partition(n, splitter.NFolds, rng)}, nil
}

// partition carves contiguous test slices out of the (possibly shuffled)
// index sequence and completes each with the ascending complement of the
// universe. Stratified splitting passes the same generator for every class,
// which keeps shuffled results reproducible.
func partition(n, k int, rng *base.RandomGenerator) []Fold {
	indices := base.RangeInt(n)
	if rng != nil {
		rng.Shuffle(n, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}
	sizes := foldSizes(n, k)
	if lo.Sum(sizes) != n {
		panic(fmt.Sprintf("fold sizes %v do not sum to %d", sizes, n))
	}
	folds := make([]Fold, k)
	begin := 0
	for f, size := range sizes {
		end := begin + size
		test := make([]int, size)
		copy(test, indices[begin:end])
		testSet := mapset.NewThreadUnsafeSet[int](test...)
		train := make([]int, 0, n-size)
		for i := 0; i < n; i++ {
			if !testSet.Contains(i) {
				train = append(train, i)
			}
		}
		folds[f] = Fold{Train: train, Test: test}
		begin = end
	}
	return folds
}

func foldSizes(n, k int) []int {
	quotient, remainder := n/k, n%k
	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = quotient
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes
}
