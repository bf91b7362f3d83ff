package options

import (
	"github.com/JaremyCheng/vue/pkg/errors"
)

// ReactiveSetter installs a newly introduced data key onto a target mapping.
// The reactive-value subsystem supplies an implementation that makes the key
// observable; the default simply assigns.
type ReactiveSetter interface {
	Set(target map[string]any, key string, value any)
}

type plainSetter struct{}

func (plainSetter) Set(target map[string]any, key string, value any) {
	target[key] = value
}

// mergeData folds from's entries into to, in place, and returns to. This is
// the one sanctioned in-place mutation in the engine: a key not yet present
// on to is installed through the reactive registrar, exactly once, at the
// point of introduction. A key already present on to is never overridden;
// when both sides hold mappings the merge recurses instead. First-installed
// wins: later-merged-in ancestor data never replaces instance data.
func (r *Resolver) mergeData(to, from map[string]any) map[string]any {
	if from == nil {
		return to
	}
	if to == nil {
		return from
	}
	for key, fromVal := range from {
		toVal, has := to[key]
		if !has {
			r.reactive.Set(to, key, fromVal)
			continue
		}
		tm, toIsMap := toStringMap(toVal)
		fm, fromIsMap := toStringMap(fromVal)
		if toIsMap && fromIsMap && !sameMap(tm, fm) {
			r.mergeData(tm, fm)
		}
	}
	return to
}

// mergeDataStrategy merges the "data" field. At definition time a child data
// value must be a factory so each instance gets its own mapping; a plain
// object is rejected with a diagnostic and the parent value kept.
func mergeDataStrategy(r *Resolver, parent, child any, mc *mergeContext, field string) any {
	if mc.mode == MergeDefinitions {
		if child != nil {
			if _, ok := asDataFunc(child); !ok {
				r.sink.Warnf(errors.ErrCodeValidation,
					"the %q option should be a function that returns a per-instance value in component definitions", field)
				return parent
			}
		}
		return r.mergeDataOrFunc(parent, child, nil)
	}
	return r.mergeDataOrFunc(parent, child, mc.vm)
}

// mergeProvideStrategy merges the "provide" field with the same deferred
// factory handling as data, but without the definition-time factory
// requirement.
func mergeProvideStrategy(r *Resolver, parent, child any, mc *mergeContext, _ string) any {
	if mc.mode == MergeDefinitions {
		return r.mergeDataOrFunc(parent, child, nil)
	}
	return r.mergeDataOrFunc(parent, child, mc.vm)
}

// mergeDataOrFunc implements the dual behavior of the data-bearing fields.
//
// With no instance (definition-time), one-sided merges return the surviving
// value untouched so instance-specific factories still run per instance;
// a two-sided merge returns a factory wrapping the deferred merge.
//
// With an instance, the result is a factory that resolves both sides against
// the live instance and merges instance data over default data.
func (r *Resolver) mergeDataOrFunc(parent, child any, vm *Instance) any {
	if vm == nil {
		if child == nil {
			return parent
		}
		if parent == nil {
			return child
		}
		parentVal, childVal := parent, child
		return DataFunc(func(inner *Instance) map[string]any {
			return r.mergeData(
				resolveDataValue(childVal, inner),
				resolveDataValue(parentVal, inner),
			)
		})
	}
	parentVal, childVal := parent, child
	return DataFunc(func(*Instance) map[string]any {
		instanceData := resolveDataValue(childVal, vm)
		defaultData := resolveDataValue(parentVal, vm)
		if instanceData == nil {
			return defaultData
		}
		return r.mergeData(instanceData, defaultData)
	})
}

// resolveDataValue produces the mapping behind a data-bearing value: factory
// representations are invoked against the active instance, plain mappings
// pass through.
func resolveDataValue(v any, vm *Instance) map[string]any {
	if v == nil {
		return nil
	}
	if f, ok := asDataFunc(v); ok {
		return f(vm)
	}
	if m, ok := toStringMap(v); ok {
		return m
	}
	return nil
}
