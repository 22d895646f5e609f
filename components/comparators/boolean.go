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
)

func init() {
	Registry.Add(
		&BooleanIs{tag: "(Boolean) is True", expected: true},
		&BooleanIs{tag: "(Boolean) is False", expected: false},
	)
}

var booleanKinds = []types.Kind{types.KindBoolean}

// BooleanIs covers the two boolean truth comparators.
type BooleanIs struct {
	tag      string
	expected bool
}

func (x *BooleanIs) Type() string {
	return x.tag
}

func (x *BooleanIs) New() types.Comparator {
	return &BooleanIs{tag: x.tag, expected: x.expected}
}

func (x *BooleanIs) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *BooleanIs) OperandsNumber() int {
	return 1
}

func (x *BooleanIs) OperandKinds() [][]types.Kind {
	return [][]types.Kind{booleanKinds}
}

func (x *BooleanIs) Compare(left, right interface{}) (bool, error) {
	b, ok := left.(bool)
	if !ok {
		return false, types.NewKindMismatchError(-1, []types.Kind{types.KindOf(left)}, booleanKinds,
			"operand of "+x.tag+" has an incompatible kind")
	}
	return b == x.expected, nil
}
