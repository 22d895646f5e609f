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

package operations

import (
	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/maps"
)

func init() {
	Registry.Add(&StringSubSequence{})
}

// StringSubSequenceConfiguration bounds the slice. A nil End means "to the
// end of the string".
type StringSubSequenceConfiguration struct {
	Start int  `mapstructure:"start"`
	End   *int `mapstructure:"end"`
}

// StringSubSequence extracts a substring with slice semantics: negative
// indices count from the end, out-of-range indices clamp, an inverted
// range yields the empty string. The slice operates on runes so multi-byte
// text never splits mid-character.
type StringSubSequence struct {
	Config StringSubSequenceConfiguration
}

func (x *StringSubSequence) Type() string {
	return "StringSubSequence"
}

func (x *StringSubSequence) New() types.Operation {
	return &StringSubSequence{}
}

func (x *StringSubSequence) Init(config types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	return nil
}

func (x *StringSubSequence) InputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (x *StringSubSequence) OutputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (x *StringSubSequence) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected string, got %T", value)
	}
	runes := []rune(s)
	start := clampIndex(x.Config.Start, len(runes))
	end := len(runes)
	if x.Config.End != nil {
		end = clampIndex(*x.Config.End, len(runes))
	}
	if start >= end {
		return "", nil
	}
	return string(runes[start:end]), nil
}

func (x *StringSubSequence) Destroy() {
}

// clampIndex resolves a possibly negative slice index against length,
// clamping to [0, length].
func clampIndex(idx, length int) int {
	if idx < 0 {
		idx += length
	}
	if idx < 0 {
		return 0
	}
	if idx > length {
		return length
	}
	return idx
}
