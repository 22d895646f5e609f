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

import (
	"encoding/json"
)

// The DSL structs mirror the declarative document shape. Every construct
// carries a "type" discriminator; all remaining fields are variant-specific
// and stay in a Configuration map until the matching component decodes them.

// OperationDef is one decoded operation document node.
type OperationDef struct {
	Type          string
	Configuration Configuration
}

// UnmarshalJSON splits the document object into the discriminator tag and
// the variant-specific remainder.
func (d *OperationDef) UnmarshalJSON(data []byte) error {
	tag, cfg, err := splitTagged(data, "operation")
	if err != nil {
		return err
	}
	d.Type = tag
	d.Configuration = cfg
	return nil
}

// MarshalJSON re-merges the discriminator tag with the configuration.
func (d OperationDef) MarshalJSON() ([]byte, error) {
	return mergeTagged(d.Type, d.Configuration)
}

// OperationsChainDef is the decoded form of an operations chain document.
type OperationsChainDef struct {
	Operations []OperationDef `json:"operations"`
}

// ComparatorDef is one decoded comparator document node.
type ComparatorDef struct {
	Type          string
	Configuration Configuration
}

func (d *ComparatorDef) UnmarshalJSON(data []byte) error {
	tag, cfg, err := splitTagged(data, "comparator")
	if err != nil {
		return err
	}
	d.Type = tag
	d.Configuration = cfg
	return nil
}

func (d ComparatorDef) MarshalJSON() ([]byte, error) {
	return mergeTagged(d.Type, d.Configuration)
}

// Operand discriminator tags.
const (
	OperandTypeStatic  = "StaticOperand"
	OperandTypeDynamic = "DynamicOperand"
)

// OperandDef is one decoded operand: a literal (static) or a context lookup
// (dynamic), optionally post-processed by an operations chain.
type OperandDef struct {
	Type       string
	Value      interface{}
	Name       string
	Operations []OperationDef
}

func (d *OperandDef) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       string         `json:"type"`
		Value      interface{}    `json:"value"`
		Name       *string        `json:"operand_name"`
		Operations []OperationDef `json:"operations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewSchemaError("malformed operand: %v", err)
	}
	switch raw.Type {
	case OperandTypeStatic:
		var probe map[string]json.RawMessage
		_ = json.Unmarshal(data, &probe)
		if _, ok := probe["value"]; !ok {
			return NewSchemaError("StaticOperand requires a value field")
		}
		d.Value = raw.Value
	case OperandTypeDynamic:
		d.Name = DefaultOperandName
		if raw.Name != nil {
			d.Name = *raw.Name
		}
	case "":
		return NewSchemaError("operand is missing the type discriminator")
	default:
		return NewSchemaError("unknown operand type %q", raw.Type)
	}
	d.Type = raw.Type
	d.Operations = raw.Operations
	return nil
}

func (d OperandDef) MarshalJSON() ([]byte, error) {
	obj := map[string]interface{}{"type": d.Type}
	switch d.Type {
	case OperandTypeStatic:
		obj["value"] = d.Value
	case OperandTypeDynamic:
		obj["operand_name"] = d.Name
	}
	if len(d.Operations) > 0 {
		obj["operations"] = d.Operations
	}
	return json.Marshal(obj)
}

// Statement discriminator tags.
const (
	StatementTypeBinary = "BinaryStatement"
	StatementTypeUnary  = "UnaryStatement"
	StatementTypeGroup  = "StatementGroup"
)

// BinaryStatementDef is a decoded two-operand predicate.
type BinaryStatementDef struct {
	Left       OperandDef    `json:"left_operand"`
	Comparator ComparatorDef `json:"comparator"`
	Right      OperandDef    `json:"right_operand"`
	Negate     bool          `json:"negate"`
}

// UnaryStatementDef is a decoded one-operand predicate.
type UnaryStatementDef struct {
	Operand  OperandDef    `json:"operand"`
	Operator ComparatorDef `json:"operator"`
	Negate   bool          `json:"negate"`
}

// StatementDef is one entry of a statement group: exactly one of Binary,
// Unary or Group is set, according to the discriminator.
type StatementDef struct {
	Type   string
	Binary *BinaryStatementDef
	Unary  *UnaryStatementDef
	Group  *StatementGroupDef
}

func (d *StatementDef) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return NewSchemaError("malformed statement: %v", err)
	}
	switch head.Type {
	case StatementTypeBinary:
		var def BinaryStatementDef
		if err := json.Unmarshal(data, &def); err != nil {
			return asSchemaError(err)
		}
		d.Binary = &def
	case StatementTypeUnary:
		var def UnaryStatementDef
		if err := json.Unmarshal(data, &def); err != nil {
			return asSchemaError(err)
		}
		d.Unary = &def
	case StatementTypeGroup:
		var def StatementGroupDef
		if err := json.Unmarshal(data, &def); err != nil {
			return asSchemaError(err)
		}
		d.Group = &def
	case "":
		return NewSchemaError("statement is missing the type discriminator")
	default:
		return NewSchemaError("unknown statement type %q", head.Type)
	}
	d.Type = head.Type
	return nil
}

func (d StatementDef) MarshalJSON() ([]byte, error) {
	switch d.Type {
	case StatementTypeBinary:
		return mergeStatement(d.Type, d.Binary)
	case StatementTypeUnary:
		return mergeStatement(d.Type, d.Unary)
	case StatementTypeGroup:
		return json.Marshal(d.Group)
	default:
		return nil, NewSchemaError("unknown statement type %q", d.Type)
	}
}

// StatementGroupDef is a decoded statement group. Statements is never empty
// after a successful decode.
type StatementGroupDef struct {
	Operator   string         `json:"operator"`
	Statements []StatementDef `json:"statements"`
}

func (d *StatementGroupDef) UnmarshalJSON(data []byte) error {
	type alias struct {
		Type       string         `json:"type"`
		Operator   string         `json:"operator"`
		Statements []StatementDef `json:"statements"`
	}
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return asSchemaError(err)
	}
	if raw.Type != "" && raw.Type != StatementTypeGroup {
		return NewSchemaError("unknown statement group type %q", raw.Type)
	}
	switch raw.Operator {
	case "":
		raw.Operator = GroupOperatorOr
	case GroupOperatorAnd, GroupOperatorOr:
	default:
		return NewSchemaError("unknown group operator %q", raw.Operator)
	}
	if len(raw.Statements) == 0 {
		return NewSchemaError("statement group must carry at least one statement")
	}
	d.Operator = raw.Operator
	d.Statements = raw.Statements
	return nil
}

func (d StatementGroupDef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":       StatementTypeGroup,
		"operator":   d.Operator,
		"statements": d.Statements,
	})
}

// ParseOperationDefs converts the raw nested operations list a compound
// operation finds in its Configuration back into operation defs.
func ParseOperationDefs(v interface{}) ([]OperationDef, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []OperationDef:
		return list, nil
	case []interface{}:
		defs := make([]OperationDef, 0, len(list))
		for _, item := range list {
			obj, ok := item.(map[string]interface{})
			if !ok {
				return nil, NewSchemaError("nested operation must be an object, got %T", item)
			}
			tag, _ := obj["type"].(string)
			if tag == "" {
				return nil, NewSchemaError("nested operation is missing the type discriminator")
			}
			cfg := make(Configuration, len(obj))
			for k, val := range obj {
				if k != "type" {
					cfg[k] = val
				}
			}
			defs = append(defs, OperationDef{Type: tag, Configuration: cfg})
		}
		return defs, nil
	default:
		return nil, NewSchemaError("nested operations must be a list, got %T", v)
	}
}

// ParseStatementGroupDef converts the raw nested filter document a compound
// operation finds in its Configuration back into a statement group def.
func ParseStatementGroupDef(v interface{}) (*StatementGroupDef, error) {
	switch def := v.(type) {
	case nil:
		return nil, NewSchemaError("nested statement group is required")
	case *StatementGroupDef:
		return def, nil
	case StatementGroupDef:
		return &def, nil
	case map[string]interface{}:
		data, err := json.Marshal(def)
		if err != nil {
			return nil, NewSchemaError("nested statement group: %v", err)
		}
		var out StatementGroupDef
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, asSchemaError(err)
		}
		return &out, nil
	default:
		return nil, NewSchemaError("nested statement group must be an object, got %T", v)
	}
}

// splitTagged decodes a tagged document object into its discriminator and
// the remaining fields.
func splitTagged(data []byte, construct string) (string, Configuration, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, NewSchemaError("malformed %s: %v", construct, err)
	}
	tag, _ := raw["type"].(string)
	if tag == "" {
		return "", nil, NewSchemaError("%s is missing the type discriminator", construct)
	}
	cfg := make(Configuration, len(raw))
	for k, v := range raw {
		if k != "type" {
			cfg[k] = v
		}
	}
	return tag, cfg, nil
}

func mergeTagged(tag string, cfg Configuration) ([]byte, error) {
	obj := make(map[string]interface{}, len(cfg)+1)
	for k, v := range cfg {
		obj[k] = v
	}
	obj["type"] = tag
	return json.Marshal(obj)
}

func mergeStatement(tag string, def interface{}) ([]byte, error) {
	data, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	obj["type"] = tag
	return json.Marshal(obj)
}

// asSchemaError keeps SchemaErrors intact and wraps anything else.
func asSchemaError(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SchemaError); ok {
		return se
	}
	return NewSchemaError("%v", err)
}
