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
	"strings"

	"github.com/visionql/visionql/api/types"
)

func init() {
	Registry.Add(
		&StringRelation{tag: "(String) startsWith", holds: strings.HasPrefix},
		&StringRelation{tag: "(String) endsWith", holds: strings.HasSuffix},
		&StringRelation{tag: "(String) contains", holds: strings.Contains},
	)
}

var stringKinds = []types.Kind{types.KindString}

// StringRelation covers the prefix, suffix and substring comparators.
type StringRelation struct {
	tag   string
	holds func(s, substr string) bool
}

func (x *StringRelation) Type() string {
	return x.tag
}

func (x *StringRelation) New() types.Comparator {
	return &StringRelation{tag: x.tag, holds: x.holds}
}

func (x *StringRelation) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *StringRelation) OperandsNumber() int {
	return 2
}

func (x *StringRelation) OperandKinds() [][]types.Kind {
	return [][]types.Kind{stringKinds, stringKinds}
}

func (x *StringRelation) Compare(left, right interface{}) (bool, error) {
	l, ok := left.(string)
	if !ok {
		return false, types.NewKindMismatchError(-1, []types.Kind{types.KindOf(left)}, stringKinds,
			"operand of "+x.tag+" has an incompatible kind")
	}
	r, ok := right.(string)
	if !ok {
		return false, types.NewKindMismatchError(-1, []types.Kind{types.KindOf(right)}, stringKinds,
			"operand of "+x.tag+" has an incompatible kind")
	}
	return x.holds(l, r), nil
}
