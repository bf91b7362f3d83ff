package options

import (
	"github.com/JaremyCheng/vue/pkg/errors"
)

// MergeStrategy reconciles a parent value and a child value for one option
// field. Absent values arrive as nil. Strategies are looked up by field
// identity only, never inferred from value shape.
type MergeStrategy func(r *Resolver, parent, child any, mc *mergeContext, field string) any

// newFieldStrategies builds the immutable field-to-strategy table. It is
// constructed once per Resolver; extensions are added at construction time
// through WithStrategy, never patched onto a live table.
func newFieldStrategies() map[string]MergeStrategy {
	strats := map[string]MergeStrategy{
		FieldData:     mergeDataStrategy,
		FieldProvide:  mergeProvideStrategy,
		FieldProps:    mergeShallow,
		FieldMethods:  mergeShallow,
		FieldComputed: mergeShallow,
		FieldInject:   mergeShallow,
		FieldWatch:    mergeWatch,
	}
	for _, hook := range LifecycleHooks {
		strats[hook] = mergeHook
	}
	for _, category := range AssetCategories {
		strats[category] = mergeAssets
	}
	return strats
}

// defaultStrategy is the override rule applied to every unregistered field:
// the child value when present, otherwise the parent value.
func defaultStrategy(_ *Resolver, parent, child any, _ *mergeContext, _ string) any {
	if child == nil {
		return parent
	}
	return child
}

// mergeHook concatenates lifecycle hook lists, parent hooks first, so
// ancestor hooks run before descendant hooks.
func mergeHook(r *Resolver, parent, child any, _ *mergeContext, field string) any {
	if child == nil {
		return parent
	}
	childHooks, ok := toHookList(child)
	if !ok {
		r.sink.Warnf(errors.ErrCodeValidation,
			"invalid value for option %q: expected a function or an array of functions, got %T", field, child)
		return parent
	}
	if parent == nil {
		return childHooks
	}
	parentHooks, ok := toHookList(parent)
	if !ok {
		return childHooks
	}
	return append(parentHooks, childHooks...)
}

// mergeShallow merges plain declaration maps (methods, computed, normalized
// props and inject descriptors): union of keys, same-key child entries
// overriding parent entries.
func mergeShallow(r *Resolver, parent, child any, _ *mergeContext, field string) any {
	if child == nil {
		return parent
	}
	cm, childIsMap := toStringMap(child)
	if !childIsMap {
		r.sink.Warnf(errors.ErrCodeValidation,
			"invalid value for option %q: expected an object, got %T", field, child)
	}
	if parent == nil {
		return child
	}
	pm, ok := toStringMap(parent)
	if !ok {
		return child
	}
	ret := make(map[string]any, len(pm)+len(cm))
	for k, v := range pm {
		ret[k] = v
	}
	for k, v := range cm {
		ret[k] = v
	}
	return ret
}

// mergeWatch merges observer declarations so that parent and child watchers
// for the same key both fire. When the child declares nothing the parent is
// exposed through a fallback wrapper rather than copied.
func mergeWatch(r *Resolver, parent, child any, _ *mergeContext, field string) any {
	if child == nil {
		return NewBundle(asBundle(parent))
	}
	cm, ok := toStringMap(child)
	if !ok {
		r.sink.Warnf(errors.ErrCodeValidation,
			"invalid value for option %q: expected an object, got %T", field, child)
		return NewBundle(asBundle(parent))
	}
	ret := make(map[string]any, len(cm))
	if pb := asBundle(parent); pb != nil {
		pb.flattenInto(ret)
	}
	for key, childVal := range cm {
		childSeq, childIsSeq := toSeq(childVal)
		if !childIsSeq {
			childSeq = []any{childVal}
		}
		if existing, has := ret[key]; has {
			exSeq, ok := toSeq(existing)
			if !ok {
				exSeq = []any{existing}
			}
			merged := make([]any, 0, len(exSeq)+len(childSeq))
			merged = append(merged, exSeq...)
			merged = append(merged, childSeq...)
			ret[key] = merged
		} else {
			ret[key] = append([]any(nil), childSeq...)
		}
	}
	return ret
}
