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

package types

// Keypoint is a single named keypoint of a keypoint-detection prediction.
type Keypoint struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// Detection is one model prediction: a bounding box with class, confidence
// and optional extras. Coordinates are absolute pixel values.
type Detection struct {
	XMin        float64    `json:"x_min"`
	YMin        float64    `json:"y_min"`
	XMax        float64    `json:"x_max"`
	YMax        float64    `json:"y_max"`
	ClassName   string     `json:"class_name"`
	ClassID     int        `json:"class_id"`
	Confidence  float64    `json:"confidence"`
	DetectionID string     `json:"detection_id"`
	Keypoints   []Keypoint `json:"keypoints,omitempty"`
	// Properties holds model- or host-specific extras that travel with the
	// detection but have no dedicated field.
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Size returns the bounding box area.
func (d Detection) Size() float64 {
	return (d.XMax - d.XMin) * (d.YMax - d.YMin)
}

// Center returns the bounding box center as [x, y].
func (d Detection) Center() []interface{} {
	return []interface{}{(d.XMin + d.XMax) / 2, (d.YMin + d.YMax) / 2}
}

// Detections is an ordered collection of detections from one inference call.
type Detections struct {
	// PredictionKind names the prediction family that produced the
	// collection. Empty means KindObjectDetectionPrediction.
	PredictionKind Kind        `json:"prediction_kind,omitempty"`
	Items          []Detection `json:"items"`
}

// Kind returns the collection's prediction kind.
func (d Detections) Kind() Kind {
	if d.PredictionKind == "" {
		return KindObjectDetectionPrediction
	}
	return d.PredictionKind
}

// Len returns the number of detections in the collection.
func (d Detections) Len() int {
	return len(d.Items)
}

// KindOf maps a runtime value to its semantic kind. Host values of types
// outside the closed vocabulary map to KindWildcard so they can still flow
// through wildcard operations.
func KindOf(value interface{}) Kind {
	switch v := value.(type) {
	case nil:
		return KindWildcard
	case bool:
		return KindBoolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32:
		return floatKind(float64(v))
	case float64:
		return floatKind(v)
	case string:
		return KindString
	case []interface{}:
		return KindListOfValues
	case map[string]interface{}:
		return KindDictionary
	case Detection, *Detection:
		return KindDetection
	case Detections:
		return v.Kind()
	case *Detections:
		return v.Kind()
	default:
		return KindWildcard
	}
}

// floatKind refines floats in [0, 1] to KindFloatZeroToOne. The two kinds
// always appear together in accepted sets, so the refinement never rejects
// a value a plain float would pass.
func floatKind(v float64) Kind {
	if v >= 0 && v <= 1 {
		return KindFloatZeroToOne
	}
	return KindFloat
}
