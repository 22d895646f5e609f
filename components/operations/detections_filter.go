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
)

func init() {
	Registry.Add(&DetectionsFilter{})
}

// DetectionsFilter keeps the detections for which a nested statement group
// holds. Each detection is bound to the default operand and judged
// independently; survivors keep their original order.
type DetectionsFilter struct {
	group types.Group
}

func (x *DetectionsFilter) Type() string {
	return "DetectionsFilter"
}

func (x *DetectionsFilter) New() types.Operation {
	return &DetectionsFilter{}
}

func (x *DetectionsFilter) Init(config types.Config, configuration types.Configuration) error {
	raw, ok := configuration["filter_operation"]
	if !ok {
		return types.NewSchemaError("%s requires a filter_operation parameter", x.Type())
	}
	def, err := types.ParseStatementGroupDef(raw)
	if err != nil {
		return err
	}
	_, builder := types.NestedBuilders(configuration)
	if builder == nil {
		return types.NewSchemaError("%s must be built through the chain builder", x.Type())
	}
	group, err := builder.BuildGroup(def)
	if err != nil {
		return err
	}
	x.group = group
	return nil
}

func (x *DetectionsFilter) InputKinds() []types.Kind {
	return types.PredictionKinds
}

func (x *DetectionsFilter) OutputKinds() []types.Kind {
	return types.PredictionKinds
}

func (x *DetectionsFilter) NestedInputKinds() []types.Kind {
	return []types.Kind{types.KindDetection}
}

func (x *DetectionsFilter) NestedOutputKinds() []types.Kind {
	return []types.Kind{types.KindBoolean}
}

func (x *DetectionsFilter) ValidateNested() error {
	return x.group.Validate()
}

func (x *DetectionsFilter) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	detections, ok := asDetections(value)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected detections, got %T", value)
	}
	kept := types.Detections{PredictionKind: detections.PredictionKind}
	for _, detection := range detections.Items {
		match, err := x.group.Evaluate(ctx.Bind(types.DefaultOperandName, detection))
		if err != nil {
			return nil, err
		}
		if match {
			kept.Items = append(kept.Items, detection)
		}
	}
	return kept, nil
}

func (x *DetectionsFilter) Destroy() {
}

var _ types.CompoundOperation = (*DetectionsFilter)(nil)
