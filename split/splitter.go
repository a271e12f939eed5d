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

// Package split partitions sample indices into reproducible train/test folds.
package split

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"

	"github.com/gorse-io/crossval/base"
)

// Fold is one (train, test) pair of sample indices. Indices are zero-based.
type Fold struct {
	Train []int
	Test  []int
}

// Diagnostic is a non-fatal warning emitted while building folds.
type Diagnostic struct {
	Code    string
	Message string
}

// DiagnosticStratification reports that the number of folds exceeds the
// population of the least populated class.
const DiagnosticStratification = "stratification"

// FoldSet is an ordered sequence of folds produced for one evaluation run,
// immutable after construction.
type FoldSet struct {
	Folds       []Fold
	Diagnostics []Diagnostic
}

// Splitter builds a FoldSet over n samples. The label vector y may be nil for
// splitters that do not stratify.
type Splitter interface {
	Split(n int, y []float32) (*FoldSet, error)
}

// RatioSplitter holds out a random fraction of samples as the test set,
// repeated several times. Unlike KFoldSplitter, test sets of different
// repeats may overlap.
type RatioSplitter struct {
	Repeat      int
	TestRatio   float64
	RandomState interface{}
}

// NewRatioSplitter creates a ratio splitter.
func NewRatioSplitter(repeat int, testRatio float64) *RatioSplitter {
	return &RatioSplitter{Repeat: repeat, TestRatio: testRatio}
}

func (splitter *RatioSplitter) Split(n int, _ []float32) (*FoldSet, error) {
	if splitter.Repeat < 1 {
		return nil, errors.NotValidf("repeat %d, expect at least 1", splitter.Repeat)
	}
	testSize := int(float64(n) * splitter.TestRatio)
	if testSize < 1 || testSize >= n {
		return nil, errors.NotValidf("test ratio %f over %d samples", splitter.TestRatio, n)
	}
	rng, err := base.ResolveRandomState(splitter.RandomState)
	if err != nil {
		return nil, errors.Trace(err)
	}
	folds := make([]Fold, splitter.Repeat)
	for i := range folds {
		perm := rng.Perm(n)
		folds[i] = Fold{
			Test:  perm[:testSize],
			Train: perm[testSize:],
		}
	}
	return &FoldSet{Folds: folds}, nil
}

// LeaveOneOutSplitter produces one fold per sample, each holding out a single
// sample as the test set.
type LeaveOneOutSplitter struct{}

func (splitter *LeaveOneOutSplitter) Split(n int, _ []float32) (*FoldSet, error) {
	if n < 2 {
		return nil, errors.NotValidf("%d samples, expect at least 2", n)
	}
	folds := make([]Fold, n)
	for i := range folds {
		train := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				train = append(train, j)
			}
		}
		folds[i] = Fold{Train: train, Test: []int{i}}
	}
	return &FoldSet{Folds: folds}, nil
}

// IndexBase is the index convention of externally built folds.
type IndexBase int

const (
	ZeroBased IndexBase = iota
	OneBased
)

type prebuiltSplitter struct {
	folds     []Fold
	indexBase IndexBase
}

// NewPrebuiltSplitter adapts folds built outside this package. OneBased folds
// are translated to the native zero-based convention before validation.
func NewPrebuiltSplitter(folds []Fold, indexBase IndexBase) Splitter {
	return &prebuiltSplitter{folds: folds, indexBase: indexBase}
}

func (splitter *prebuiltSplitter) Split(n int, _ []float32) (*FoldSet, error) {
	folds := make([]Fold, len(splitter.folds))
	for i, fold := range splitter.folds {
		train, err := splitter.translate(fold.Train, n)
		if err != nil {
			return nil, errors.Trace(err)
		}
		test, err := splitter.translate(fold.Test, n)
		if err != nil {
			return nil, errors.Trace(err)
		}
		trainSet := mapset.NewThreadUnsafeSet[int](train...)
		for _, index := range test {
			if trainSet.Contains(index) {
				return nil, errors.NotValidf("fold %d: index %d in both train and test", i, index)
			}
		}
		folds[i] = Fold{Train: train, Test: test}
	}
	return &FoldSet{Folds: folds}, nil
}

func (splitter *prebuiltSplitter) translate(indices []int, n int) ([]int, error) {
	translated := make([]int, len(indices))
	for i, index := range indices {
		if splitter.indexBase == OneBased {
			index--
		}
		if index < 0 || index >= n {
			return nil, errors.NotValidf("index %d over %d samples", indices[i], n)
		}
		translated[i] = index
	}
	return translated, nil
}

// Factory builds a splitter from parameters.
type Factory func(params base.Params) (Splitter, error)

var (
	registryMutex sync.RWMutex
	registry      = make(map[string]Factory)
)

// Register adds a named splitter factory. Registering a taken name replaces
// the previous factory.
func Register(name string, factory Factory) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[name] = factory
}

// Create builds a registered splitter by name.
func Create(name string, params base.Params) (Splitter, error) {
	registryMutex.RLock()
	factory, exist := registry[name]
	registryMutex.RUnlock()
	if !exist {
		return nil, errors.NotFoundf("splitter %q", name)
	}
	return factory(params)
}

func init() {
	Register("k_fold", func(params base.Params) (Splitter, error) {
		return &KFoldSplitter{
			NFolds:      params.GetInt(base.NFolds, 3),
			Shuffle:     params.GetBool(base.Shuffle, false),
			RandomState: params[base.RandomState],
		}, nil
	})
	Register("stratified_k_fold", func(params base.Params) (Splitter, error) {
		return &StratifiedKFoldSplitter{
			NFolds:      params.GetInt(base.NFolds, 3),
			Shuffle:     params.GetBool(base.Shuffle, false),
			RandomState: params[base.RandomState],
		}, nil
	})
	Register("shuffle_split", func(params base.Params) (Splitter, error) {
		return &RatioSplitter{
			Repeat:      params.GetInt(base.NRepeats, 1),
			TestRatio:   params.GetFloat64(base.TestRatio, 0.2),
			RandomState: params[base.RandomState],
		}, nil
	})
	Register("leave_one_out", func(params base.Params) (Splitter, error) {
		return &LeaveOneOutSplitter{}, nil
	})
}
