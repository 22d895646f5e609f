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

// Package test holds shared helpers for component tests.
package test

import (
	"github.com/visionql/visionql/api/types"
)

// CreateAndInitOperation instantiates and initializes one operation
// component from a package registry by its type tag.
func CreateAndInitOperation(operationType string, configuration types.Configuration, registry *types.SafeOperationSlice) (types.Operation, error) {
	var factory types.Operation
	for _, component := range registry.Components() {
		if component.Type() == operationType {
			factory = component
		}
	}
	operation := factory.New()
	err := operation.Init(types.NewConfig(), configuration)
	return operation, err
}

// CreateAndInitComparator instantiates and initializes one comparator
// component from a package registry by its type tag.
func CreateAndInitComparator(comparatorType string, configuration types.Configuration, registry *types.SafeComparatorSlice) (types.Comparator, error) {
	var factory types.Comparator
	for _, component := range registry.Components() {
		if component.Type() == comparatorType {
			factory = component
		}
	}
	comparator := factory.New()
	err := comparator.Init(types.NewConfig(), configuration)
	return comparator, err
}

// Detections builds a detection collection from bare detections, keeping
// test tables compact.
func Detections(items ...types.Detection) types.Detections {
	return types.Detections{Items: items}
}
