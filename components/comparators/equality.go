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
	"reflect"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/cast"
)

func init() {
	Registry.Add(&Equals{}, &NotEquals{})
}

// valuesEqual compares two runtime values. Numbers compare by value across
// integer and float representations; everything else compares structurally.
func valuesEqual(left, right interface{}) bool {
	if isNumber(left) && isNumber(right) {
		l, _ := cast.ToFloat64E(left)
		r, _ := cast.ToFloat64E(right)
		return l == r
	}
	return reflect.DeepEqual(left, right)
}

func isNumber(value interface{}) bool {
	return types.ContainsKind(types.NumberKinds, types.KindOf(value))
}

// Equals is the "==" comparator.
type Equals struct {
}

func (x *Equals) Type() string {
	return "=="
}

func (x *Equals) New() types.Comparator {
	return &Equals{}
}

func (x *Equals) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *Equals) OperandsNumber() int {
	return 2
}

func (x *Equals) OperandKinds() [][]types.Kind {
	return [][]types.Kind{types.WildcardKinds, types.WildcardKinds}
}

func (x *Equals) Compare(left, right interface{}) (bool, error) {
	return valuesEqual(left, right), nil
}

// NotEquals is the "!=" comparator.
type NotEquals struct {
}

func (x *NotEquals) Type() string {
	return "!="
}

func (x *NotEquals) New() types.Comparator {
	return &NotEquals{}
}

func (x *NotEquals) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *NotEquals) OperandsNumber() int {
	return 2
}

func (x *NotEquals) OperandKinds() [][]types.Kind {
	return [][]types.Kind{types.WildcardKinds, types.WildcardKinds}
}

func (x *NotEquals) Compare(left, right interface{}) (bool, error) {
	return !valuesEqual(left, right), nil
}
