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
	"regexp"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/maps"
)

func init() {
	Registry.Add(&StringMatches{})
}

// StringMatchesConfiguration holds the regular expression.
type StringMatchesConfiguration struct {
	Regex string `mapstructure:"regex"`
}

// StringMatches tests the input string against the configured regex. The
// pattern compiles once; an invalid pattern surfaces as an execution error
// on the first evaluation.
type StringMatches struct {
	Config     StringMatchesConfiguration
	pattern    *regexp.Regexp
	compileErr error
}

func (x *StringMatches) Type() string {
	return "StringMatches"
}

func (x *StringMatches) New() types.Operation {
	return &StringMatches{}
}

func (x *StringMatches) Init(config types.Config, configuration types.Configuration) error {
	if _, ok := configuration["regex"]; !ok {
		return types.NewSchemaError("%s requires a regex parameter", x.Type())
	}
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	x.pattern, x.compileErr = regexp.Compile(x.Config.Regex)
	return nil
}

func (x *StringMatches) InputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (x *StringMatches) OutputKinds() []types.Kind {
	return []types.Kind{types.KindBoolean}
}

func (x *StringMatches) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	if x.compileErr != nil {
		return nil, &types.OperationExecutionError{
			Operation: x.Type(),
			Detail:    "invalid pattern " + x.Config.Regex,
			Cause:     x.compileErr,
		}
	}
	s, ok := value.(string)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected string, got %T", value)
	}
	return x.pattern.MatchString(s), nil
}

func (x *StringMatches) Destroy() {
}
