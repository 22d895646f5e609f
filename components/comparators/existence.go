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
	Registry.Add(&Exists{}, &DoesNotExist{})
}

// Exists holds for any operand that resolved, a bound nil included. An
// unresolvable dynamic operand never reaches the comparator because
// resolution fails first with OperandResolutionError.
type Exists struct {
}

func (x *Exists) Type() string {
	return "Exists"
}

func (x *Exists) New() types.Comparator {
	return &Exists{}
}

func (x *Exists) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *Exists) OperandsNumber() int {
	return 1
}

func (x *Exists) OperandKinds() [][]types.Kind {
	return [][]types.Kind{types.WildcardKinds}
}

func (x *Exists) Compare(left, right interface{}) (bool, error) {
	return true, nil
}

// DoesNotExist is the complement of Exists.
type DoesNotExist struct {
}

func (x *DoesNotExist) Type() string {
	return "DoesNotExist"
}

func (x *DoesNotExist) New() types.Comparator {
	return &DoesNotExist{}
}

func (x *DoesNotExist) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *DoesNotExist) OperandsNumber() int {
	return 1
}

func (x *DoesNotExist) OperandKinds() [][]types.Kind {
	return [][]types.Kind{types.WildcardKinds}
}

func (x *DoesNotExist) Compare(left, right interface{}) (bool, error) {
	return false, nil
}
