/*
 * Copyright 2025 The VisionQL Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package comparators

import (
	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/cast"
)

func init() {
	Registry.Add(&In{})
}

var containerKinds = []types.Kind{types.KindListOfValues, types.KindDictionary}

// In is the membership comparator. Against a list it tests element
// membership, against a dictionary it tests key membership.
type In struct {
}

func (x *In) Type() string {
	return "in"
}

func (x *In) New() types.Comparator {
	return &In{}
}

func (x *In) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *In) OperandsNumber() int {
	return 2
}

func (x *In) OperandKinds() [][]types.Kind {
	return [][]types.Kind{types.WildcardKinds, containerKinds}
}

func (x *In) Compare(left, right interface{}) (bool, error) {
	switch container := right.(type) {
	case []interface{}:
		for _, element := range container {
			if valuesEqual(left, element) {
				return true, nil
			}
		}
		return false, nil
	case map[string]interface{}:
		_, ok := container[cast.ToString(left)]
		return ok, nil
	default:
		return false, types.NewKindMismatchError(-1, []types.Kind{types.KindOf(right)}, containerKinds,
			"right operand of \"in\" must be a list or dictionary")
	}
}
