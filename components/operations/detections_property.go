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
	Registry.Add(&DetectionsPropertyExtract{}, &ExtractDetectionProperty{})
}

// Detection property names shared by the two extract operations.
const (
	PropertyClassName   = "class_name"
	PropertyClassID     = "class_id"
	PropertyConfidence  = "confidence"
	PropertyXMin        = "x_min"
	PropertyYMin        = "y_min"
	PropertyXMax        = "x_max"
	PropertyYMax        = "y_max"
	PropertySize        = "size"
	PropertyCenter      = "center"
	PropertyDetectionID = "detection_id"
	PropertyKeypoints   = "keypoints"
)

// Unwrap methods of ExtractDetectionProperty for multi-valued properties.
const (
	UnwrapFirst = "first"
	UnwrapLast  = "last"
	UnwrapAll   = "all"
)

var knownProperties = map[string]bool{
	PropertyClassName:   true,
	PropertyClassID:     true,
	PropertyConfidence:  true,
	PropertyXMin:        true,
	PropertyYMin:        true,
	PropertyXMax:        true,
	PropertyYMax:        true,
	PropertySize:        true,
	PropertyCenter:      true,
	PropertyDetectionID: true,
	PropertyKeypoints:   true,
}

// detectionProperty extracts one named property from a detection. Unknown
// names fall back to the detection's free-form Properties map.
func detectionProperty(detection types.Detection, name string) (interface{}, error) {
	switch name {
	case PropertyClassName:
		return detection.ClassName, nil
	case PropertyClassID:
		return detection.ClassID, nil
	case PropertyConfidence:
		return detection.Confidence, nil
	case PropertyXMin:
		return detection.XMin, nil
	case PropertyYMin:
		return detection.YMin, nil
	case PropertyXMax:
		return detection.XMax, nil
	case PropertyYMax:
		return detection.YMax, nil
	case PropertySize:
		return detection.Size(), nil
	case PropertyCenter:
		return detection.Center(), nil
	case PropertyDetectionID:
		return detection.DetectionID, nil
	case PropertyKeypoints:
		keypoints := make([]interface{}, len(detection.Keypoints))
		for i, kp := range detection.Keypoints {
			keypoints[i] = kp
		}
		return keypoints, nil
	default:
		if v, ok := detection.Properties[name]; ok {
			return v, nil
		}
		return nil, types.NewOperationExecutionError("property extract", "detection has no property %q", name)
	}
}

// asDetections accepts both value and pointer collections.
func asDetections(value interface{}) (types.Detections, bool) {
	switch v := value.(type) {
	case types.Detections:
		return v, true
	case *types.Detections:
		return *v, true
	default:
		return types.Detections{}, false
	}
}

// propertyConfiguration is shared by the extract operations.
type propertyConfiguration struct {
	PropertyName string `mapstructure:"property_name"`
	UnwrapMethod string `mapstructure:"unwrap_method"`
}

func decodePropertyConfiguration(operationType string, configuration types.Configuration) (propertyConfiguration, error) {
	var cfg propertyConfiguration
	if err := maps.Map2Struct(configuration, &cfg); err != nil {
		return cfg, types.NewSchemaError("%s: %v", operationType, err)
	}
	if cfg.PropertyName == "" {
		return cfg, types.NewSchemaError("%s requires a property_name parameter", operationType)
	}
	if !knownProperties[cfg.PropertyName] {
		return cfg, types.NewSchemaError("%s: unknown property %q", operationType, cfg.PropertyName)
	}
	return cfg, nil
}

// DetectionsPropertyExtract yields one list element per detection in a
// collection, each carrying the named property.
type DetectionsPropertyExtract struct {
	Config propertyConfiguration
}

func (x *DetectionsPropertyExtract) Type() string {
	return "DetectionsPropertyExtract"
}

func (x *DetectionsPropertyExtract) New() types.Operation {
	return &DetectionsPropertyExtract{}
}

func (x *DetectionsPropertyExtract) Init(config types.Config, configuration types.Configuration) error {
	cfg, err := decodePropertyConfiguration(x.Type(), configuration)
	if err != nil {
		return err
	}
	x.Config = cfg
	return nil
}

func (x *DetectionsPropertyExtract) InputKinds() []types.Kind {
	return types.PredictionKinds
}

func (x *DetectionsPropertyExtract) OutputKinds() []types.Kind {
	return []types.Kind{types.KindListOfValues}
}

func (x *DetectionsPropertyExtract) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	detections, ok := asDetections(value)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected detections, got %T", value)
	}
	out := make([]interface{}, detections.Len())
	for i, detection := range detections.Items {
		property, err := detectionProperty(detection, x.Config.PropertyName)
		if err != nil {
			return nil, err
		}
		out[i] = property
	}
	return out, nil
}

func (x *DetectionsPropertyExtract) Destroy() {
}

// ExtractDetectionProperty extracts one property from a single detection.
// The unwrap method controls how a multi-valued property collapses to one
// value; scalar properties pass through untouched.
type ExtractDetectionProperty struct {
	Config propertyConfiguration
}

func (x *ExtractDetectionProperty) Type() string {
	return "ExtractDetectionProperty"
}

func (x *ExtractDetectionProperty) New() types.Operation {
	return &ExtractDetectionProperty{}
}

func (x *ExtractDetectionProperty) Init(config types.Config, configuration types.Configuration) error {
	cfg, err := decodePropertyConfiguration(x.Type(), configuration)
	if err != nil {
		return err
	}
	switch cfg.UnwrapMethod {
	case "":
		cfg.UnwrapMethod = UnwrapFirst
	case UnwrapFirst, UnwrapLast, UnwrapAll:
	default:
		return types.NewSchemaError("%s: unknown unwrap_method %q", x.Type(), cfg.UnwrapMethod)
	}
	x.Config = cfg
	return nil
}

func (x *ExtractDetectionProperty) InputKinds() []types.Kind {
	return []types.Kind{types.KindDetection}
}

func (x *ExtractDetectionProperty) OutputKinds() []types.Kind {
	return types.WildcardKinds
}

func (x *ExtractDetectionProperty) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	var detection types.Detection
	switch v := value.(type) {
	case types.Detection:
		detection = v
	case *types.Detection:
		detection = *v
	default:
		return nil, types.NewOperationExecutionError(x.Type(), "expected detection, got %T", value)
	}
	property, err := detectionProperty(detection, x.Config.PropertyName)
	if err != nil {
		return nil, err
	}
	multi, ok := property.([]interface{})
	if !ok || x.Config.UnwrapMethod == UnwrapAll {
		return property, nil
	}
	if len(multi) == 0 {
		return nil, types.NewOperationExecutionError(x.Type(), "property %q is empty", x.Config.PropertyName)
	}
	if x.Config.UnwrapMethod == UnwrapLast {
		return multi[len(multi)-1], nil
	}
	return multi[0], nil
}

func (x *ExtractDetectionProperty) Destroy() {
}
