// Package options implements the option-composition engine of the component
// framework: resolving a component's final option set from a chain of parent
// and child option nodes under field-specific merge rules, and looking up the
// named assets (components, directives, filters) a resolved option set
// declares.
//
// Every component instantiation and every inheritance relationship (extends,
// mixins) funnels through one call to Resolver.MergeOptions or
// Resolver.MergeInstanceOptions. Different option fields carry different
// composition semantics: lifecycle hooks concatenate, declaration maps merge
// shallowly, data and provide merge deeply through deferred factories, and
// named assets shadow an ancestor-lookup chain. The strategy table in
// strategies.go keys those semantics by field identity, never by value shape.
package options

import (
	"reflect"
)

// ConfigNode is one option layer: a mapping from field identity to an
// arbitrary value. Two fields, "extends" and "mixins", make a node's
// effective contents a function of other nodes.
type ConfigNode map[string]any

// Recognized top-level field identities.
const (
	FieldData       = "data"
	FieldProps      = "props"
	FieldMethods    = "methods"
	FieldComputed   = "computed"
	FieldWatch      = "watch"
	FieldProvide    = "provide"
	FieldInject     = "inject"
	FieldComponents = "components"
	FieldDirectives = "directives"
	FieldFilters    = "filters"
	FieldExtends    = "extends"
	FieldMixins     = "mixins"
	FieldName       = "name"
)

// LifecycleHooks is the fixed list of hook fields merged by concatenation.
var LifecycleHooks = []string{
	"beforeCreate",
	"created",
	"beforeMount",
	"mounted",
	"beforeUpdate",
	"updated",
	"beforeDestroy",
	"destroyed",
	"activated",
	"deactivated",
	"errorCaptured",
}

// AssetCategories is the fixed list of named-asset fields, merged with an
// ancestor-chain fallback.
var AssetCategories = []string{FieldComponents, FieldDirectives, FieldFilters}

// MergeMode selects between the two merge behaviors of the engine. The data
// and provide strategies behave differently in each mode.
type MergeMode int

const (
	// MergeDefinitions is static inheritance-time merging between component
	// definitions. Data factories stay deferred and a non-function child
	// "data" value is rejected with a diagnostic.
	MergeDefinitions MergeMode = iota
	// MergeInstance is instance-creation-time merging. Data and provide
	// factories run against the live instance, and plain-object child data
	// is permitted.
	MergeInstance
)

// valueShape is the explicit tag produced by classifying a raw option value
// once at the boundary. Merge and normalization logic dispatches on the tag
// rather than re-inspecting runtime types.
type valueShape int

const (
	shapeAbsent valueShape = iota
	shapeSeq
	shapeMap
	shapeFunc
	shapeScalar
)

func classify(v any) valueShape {
	switch v.(type) {
	case nil:
		return shapeAbsent
	case ConfigNode, map[string]any:
		return shapeMap
	case []any, []string:
		return shapeSeq
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map:
		return shapeMap
	case reflect.Slice, reflect.Array:
		return shapeSeq
	case reflect.Func:
		return shapeFunc
	default:
		return shapeScalar
	}
}

// toStringMap coerces a value into a map[string]any view. The fast paths
// return the original map; the reflective path builds a fresh one, so callers
// that mutate must write the result back.
func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case ConfigNode:
		return m, true
	case map[string]any:
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	for _, k := range rv.MapKeys() {
		key, ok := k.Interface().(string)
		if !ok {
			continue
		}
		out[key] = rv.MapIndex(k).Interface()
	}
	return out, true
}

// toSeq coerces a value into a []any view. The reflective path builds a
// fresh slice.
func toSeq(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// sameMap reports whether two map views share the same underlying storage.
func sameMap(a, b map[string]any) bool {
	if a == nil || b == nil {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
