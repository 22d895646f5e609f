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

// Kind is the semantic type tag attached to every value that flows through
// an operations chain. Operations and comparators declare the kinds they
// accept and produce; the chain validator only checks kinds, never Go types.
type Kind string

const (
	KindBoolean                        Kind = "Boolean"
	KindInteger                        Kind = "Integer"
	KindFloat                          Kind = "Float"
	KindFloatZeroToOne                 Kind = "FloatZeroToOne"
	KindString                         Kind = "String"
	KindDetection                      Kind = "Detection"
	KindObjectDetectionPrediction      Kind = "ObjectDetectionPrediction"
	KindInstanceSegmentationPrediction Kind = "InstanceSegmentationPrediction"
	KindKeypointDetectionPrediction    Kind = "KeypointDetectionPrediction"
	KindListOfValues                   Kind = "ListOfValues"
	KindDictionary                     Kind = "Dictionary"
	// KindWildcard is compatible with every kind, in both input and
	// output position.
	KindWildcard Kind = "Wildcard"
)

// Frequently used kind sets, shared by the operation and comparator catalogs.
var (
	// NumberKinds are the kinds a numeric operation or comparator accepts.
	NumberKinds = []Kind{KindInteger, KindFloat, KindFloatZeroToOne}
	// ScalarKinds are the kinds equality comparators accept.
	ScalarKinds = []Kind{KindInteger, KindString, KindFloat, KindFloatZeroToOne, KindBoolean}
	// PredictionKinds are the detections-based prediction kinds.
	PredictionKinds = []Kind{
		KindObjectDetectionPrediction,
		KindInstanceSegmentationPrediction,
		KindKeypointDetectionPrediction,
	}
	// SequenceKinds are the kinds with a length: lists, dictionaries and
	// detection collections.
	SequenceKinds = []Kind{
		KindListOfValues,
		KindDictionary,
		KindObjectDetectionPrediction,
		KindInstanceSegmentationPrediction,
		KindKeypointDetectionPrediction,
	}
	// WildcardKinds is the "anything goes" kind set.
	WildcardKinds = []Kind{KindWildcard}
)

// Compatible reports whether a stage producing the kinds in produced can
// feed a stage accepting the kinds in accepted. The sets are compatible if
// they intersect; KindWildcard on either side satisfies any intersection
// test unconditionally.
func Compatible(produced []Kind, accepted []Kind) bool {
	for _, p := range produced {
		if p == KindWildcard {
			return true
		}
		for _, a := range accepted {
			if a == KindWildcard || a == p {
				return true
			}
		}
	}
	return false
}

// ContainsKind reports whether kind is an element of kinds, treating
// KindWildcard in kinds as matching everything.
func ContainsKind(kinds []Kind, kind Kind) bool {
	for _, k := range kinds {
		if k == KindWildcard || k == kind {
			return true
		}
	}
	return false
}
