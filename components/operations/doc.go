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

// Package operations provides the closed catalog of value operations the
// query language composes into chains: case folding, casting, rounding,
// slicing, sequence aggregation and the detections-specific transforms.
//
// Each operation is a component registered with the package Registry under
// its document type tag. Components receive their variant-specific
// parameters as a Configuration map and decode them during Init; a missing
// or malformed parameter rejects the document with a SchemaError.
//
// Compound operations (SequenceApply, DetectionsFilter) carry nested
// documents and build them through the builders the chain builder injects
// into their configuration.
package operations

import "github.com/visionql/visionql/api/types"

// Registry collects the operation components of this package.
var Registry = new(types.SafeOperationSlice)
