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

package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/components/comparators"
	"github.com/visionql/visionql/components/operations"
)

// Registry is the default registry for operation components.
var Registry = new(OperationComponentRegistry)

// Comparators is the default registry for comparator components.
var Comparators = new(ComparatorComponentRegistry)

// init registers the built-in catalogs to the default registries.
func init() {
	for _, operation := range operations.Registry.Components() {
		_ = Registry.Register(operation)
	}
	for _, comparator := range comparators.Registry.Components() {
		_ = Comparators.Register(comparator)
	}
}

// OperationComponentRegistry is a thread-safe registry of operation
// components keyed by their document type tag.
type OperationComponentRegistry struct {
	components map[string]types.Operation
	sync.RWMutex
}

// Register adds an operation component to the registry.
func (r *OperationComponentRegistry) Register(operation types.Operation) error {
	r.Lock()
	defer r.Unlock()
	if r.components == nil {
		r.components = make(map[string]types.Operation)
	}
	if _, ok := r.components[operation.Type()]; ok {
		return errors.New("the component already exists. operationType=" + operation.Type())
	}
	r.components[operation.Type()] = operation
	return nil
}

// Unregister removes an operation component by its type tag.
func (r *OperationComponentRegistry) Unregister(operationType string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.components[operationType]; !ok {
		return fmt.Errorf("component not found. operationType=%s", operationType)
	}
	delete(r.components, operationType)
	return nil
}

// NewOperation creates a fresh instance of the named operation variant.
func (r *OperationComponentRegistry) NewOperation(operationType string) (types.Operation, error) {
	r.RLock()
	defer r.RUnlock()
	operation, ok := r.components[operationType]
	if !ok {
		return nil, fmt.Errorf("component not found. operationType=%s", operationType)
	}
	return operation.New(), nil
}

// GetOperations lists all registered operation components.
func (r *OperationComponentRegistry) GetOperations() map[string]types.Operation {
	r.RLock()
	defer r.RUnlock()
	components := make(map[string]types.Operation, len(r.components))
	for k, v := range r.components {
		components[k] = v
	}
	return components
}

// ComparatorComponentRegistry is a thread-safe registry of comparator
// components keyed by their document type tag.
type ComparatorComponentRegistry struct {
	components map[string]types.Comparator
	sync.RWMutex
}

// Register adds a comparator component to the registry.
func (r *ComparatorComponentRegistry) Register(comparator types.Comparator) error {
	r.Lock()
	defer r.Unlock()
	if r.components == nil {
		r.components = make(map[string]types.Comparator)
	}
	if _, ok := r.components[comparator.Type()]; ok {
		return errors.New("the component already exists. comparatorType=" + comparator.Type())
	}
	r.components[comparator.Type()] = comparator
	return nil
}

// Unregister removes a comparator component by its type tag.
func (r *ComparatorComponentRegistry) Unregister(comparatorType string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.components[comparatorType]; !ok {
		return fmt.Errorf("component not found. comparatorType=%s", comparatorType)
	}
	delete(r.components, comparatorType)
	return nil
}

// NewComparator creates a fresh instance of the named comparator variant.
func (r *ComparatorComponentRegistry) NewComparator(comparatorType string) (types.Comparator, error) {
	r.RLock()
	defer r.RUnlock()
	comparator, ok := r.components[comparatorType]
	if !ok {
		return nil, fmt.Errorf("component not found. comparatorType=%s", comparatorType)
	}
	return comparator.New(), nil
}

// GetComparators lists all registered comparator components.
func (r *ComparatorComponentRegistry) GetComparators() map[string]types.Comparator {
	r.RLock()
	defer r.RUnlock()
	components := make(map[string]types.Comparator, len(r.components))
	for k, v := range r.components {
		components[k] = v
	}
	return components
}

// operationRegistryOrDefault falls back to the default operation registry.
func operationRegistryOrDefault(config types.Config) types.OperationRegistry {
	if config.Operations != nil {
		return config.Operations
	}
	return Registry
}

// comparatorRegistryOrDefault falls back to the default comparator registry.
func comparatorRegistryOrDefault(config types.Config) types.ComparatorRegistry {
	if config.Comparators != nil {
		return config.Comparators
	}
	return Comparators
}
