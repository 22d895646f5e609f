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
	Registry.Add(&DetectionsOffset{}, &DetectionsShift{})
}

// DetectionsOffsetConfiguration sets the box growth in pixels per axis.
type DetectionsOffsetConfiguration struct {
	OffsetX float64 `mapstructure:"offset_x"`
	OffsetY float64 `mapstructure:"offset_y"`
}

// DetectionsOffset grows every bounding box symmetrically around its
// center. The input collection is never mutated; boxes are copied.
type DetectionsOffset struct {
	Config DetectionsOffsetConfiguration
}

func (x *DetectionsOffset) Type() string {
	return "DetectionsOffset"
}

func (x *DetectionsOffset) New() types.Operation {
	return &DetectionsOffset{}
}

func (x *DetectionsOffset) Init(config types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	return nil
}

func (x *DetectionsOffset) InputKinds() []types.Kind {
	return types.PredictionKinds
}

func (x *DetectionsOffset) OutputKinds() []types.Kind {
	return types.PredictionKinds
}

func (x *DetectionsOffset) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	detections, ok := asDetections(value)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected detections, got %T", value)
	}
	halfX := x.Config.OffsetX / 2
	halfY := x.Config.OffsetY / 2
	out := types.Detections{
		PredictionKind: detections.PredictionKind,
		Items:          make([]types.Detection, detections.Len()),
	}
	for i, detection := range detections.Items {
		detection.XMin -= halfX
		detection.XMax += halfX
		detection.YMin -= halfY
		detection.YMax += halfY
		out.Items[i] = detection
	}
	return out, nil
}

func (x *DetectionsOffset) Destroy() {
}

// DetectionsShiftConfiguration sets the translation in pixels per axis.
type DetectionsShiftConfiguration struct {
	ShiftX float64 `mapstructure:"shift_x"`
	ShiftY float64 `mapstructure:"shift_y"`
}

// DetectionsShift translates every bounding box by a fixed offset,
// preserving box size. The input collection is never mutated.
type DetectionsShift struct {
	Config DetectionsShiftConfiguration
}

func (x *DetectionsShift) Type() string {
	return "DetectionsShift"
}

func (x *DetectionsShift) New() types.Operation {
	return &DetectionsShift{}
}

func (x *DetectionsShift) Init(config types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	return nil
}

func (x *DetectionsShift) InputKinds() []types.Kind {
	return types.PredictionKinds
}

func (x *DetectionsShift) OutputKinds() []types.Kind {
	return types.PredictionKinds
}

func (x *DetectionsShift) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	detections, ok := asDetections(value)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected detections, got %T", value)
	}
	out := types.Detections{
		PredictionKind: detections.PredictionKind,
		Items:          make([]types.Detection, detections.Len()),
	}
	for i, detection := range detections.Items {
		detection.XMin += x.Config.ShiftX
		detection.XMax += x.Config.ShiftX
		detection.YMin += x.Config.ShiftY
		detection.YMax += x.Config.ShiftY
		out.Items[i] = detection
	}
	return out, nil
}

func (x *DetectionsShift) Destroy() {
}
