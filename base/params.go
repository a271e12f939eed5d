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

package base

import (
	"github.com/gorse-io/crossval/base/log"
	"go.uber.org/zap"
)

// ParamName is a string.
type ParamName string

// Predefined parameter names
const (
	NFolds      ParamName = "n_folds"
	Shuffle     ParamName = "shuffle"
	RandomState ParamName = "random_state"
	NRepeats    ParamName = "n_repeats"
	TestRatio   ParamName = "test_ratio"
	K           ParamName = "k"
)

// Params stores hyper-parameters for an estimator or a splitter. Given by:
//
//	base.Params{
//	   base.NFolds:      5,
//	   base.Shuffle:     true,
//	   base.RandomState: 0,
//	}
type Params map[ParamName]interface{}

// Copy parameters.
func (parameters Params) Copy() Params {
	newParams := make(Params)
	for k, v := range parameters {
		newParams[k] = v
	}
	return newParams
}

// GetInt gets an integer parameter by name. Returns _default if not exists or type doesn't match.
func (parameters Params) GetInt(name ParamName, _default int) int {
	if val, exist := parameters[name]; exist {
		switch value := val.(type) {
		case int:
			return value
		default:
			log.Logger().Warn("type mismatch",
				zap.String("name", string(name)), zap.Any("value", val))
		}
	}
	return _default
}

// GetInt64 gets an int64 parameter by name. Returns _default if not exists or type
// doesn't match. A int value will be converted to int64.
func (parameters Params) GetInt64(name ParamName, _default int64) int64 {
	if val, exist := parameters[name]; exist {
		switch value := val.(type) {
		case int64:
			return value
		case int:
			return int64(value)
		default:
			log.Logger().Warn("type mismatch",
				zap.String("name", string(name)), zap.Any("value", val))
		}
	}
	return _default
}

// GetBool gets a bool parameter by name. Returns _default if not exists or type doesn't match.
func (parameters Params) GetBool(name ParamName, _default bool) bool {
	if val, exist := parameters[name]; exist {
		switch value := val.(type) {
		case bool:
			return value
		default:
			log.Logger().Warn("type mismatch",
				zap.String("name", string(name)), zap.Any("value", val))
		}
	}
	return _default
}

// GetFloat64 gets a float parameter by name. Returns _default if not exists or type
// doesn't match. An int value will be converted to float64.
func (parameters Params) GetFloat64(name ParamName, _default float64) float64 {
	if val, exist := parameters[name]; exist {
		switch value := val.(type) {
		case float64:
			return value
		case int:
			return float64(value)
		default:
			log.Logger().Warn("type mismatch",
				zap.String("name", string(name)), zap.Any("value", val))
		}
	}
	return _default
}

// GetString gets a string parameter by name. Returns _default if not exists or type doesn't match.
func (parameters Params) GetString(name ParamName, _default string) string {
	if val, exist := parameters[name]; exist {
		switch value := val.(type) {
		case string:
			return value
		default:
			log.Logger().Warn("type mismatch",
				zap.String("name", string(name)), zap.Any("value", val))
		}
	}
	return _default
}

// Merge returns a new Params with all parameters from the receiver,
// overwritten by the parameters from the argument.
func (parameters Params) Merge(params Params) Params {
	merged := make(Params)
	for k, v := range parameters {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}
