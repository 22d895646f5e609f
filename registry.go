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

package visionql

import (
	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/engine"
)

// RegisterOperation adds a custom operation component to the default
// registry. The built-in catalog registers itself during init.
func RegisterOperation(operation types.Operation) error {
	return engine.Registry.Register(operation)
}

// UnregisterOperation removes an operation component from the default
// registry by type tag.
func UnregisterOperation(operationType string) error {
	return engine.Registry.Unregister(operationType)
}

// RegisterComparator adds a custom comparator component to the default
// registry.
func RegisterComparator(comparator types.Comparator) error {
	return engine.Comparators.Register(comparator)
}

// UnregisterComparator removes a comparator component from the default
// registry by type tag.
func UnregisterComparator(comparatorType string) error {
	return engine.Comparators.Unregister(comparatorType)
}
