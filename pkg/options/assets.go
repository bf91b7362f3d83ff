package options

import (
	"github.com/JaremyCheng/vue/pkg/errors"
	"github.com/JaremyCheng/vue/pkg/names"
)

// Bundle is an explicit own/fallback lookup structure for inheritable option
// entries. Own entries shadow entries reachable through the fallback chain,
// while unregistered lookups fall through to ancestors without copying them.
type Bundle struct {
	own      map[string]any
	fallback *Bundle
}

// NewBundle creates an empty Bundle whose lookups fall back to the given
// ancestor chain. A nil fallback means lookups stop at the new bundle.
func NewBundle(fallback *Bundle) *Bundle {
	return &Bundle{own: make(map[string]any), fallback: fallback}
}

// asBundle coerces an asset field value into a Bundle view. A raw mapping
// (an unmerged option node's declaration) is wrapped without copying.
func asBundle(v any) *Bundle {
	switch b := v.(type) {
	case nil:
		return nil
	case *Bundle:
		return b
	}
	if m, ok := toStringMap(v); ok {
		return &Bundle{own: m}
	}
	return nil
}

// Set registers an own entry, shadowing any fallback entry of the same name.
func (b *Bundle) Set(name string, v any) {
	b.own[name] = v
}

// Own looks up an entry registered directly on this bundle.
func (b *Bundle) Own(name string) (any, bool) {
	v, ok := b.own[name]
	return v, ok
}

// Lookup resolves a name against the bundle's own entries, then the
// fallback chain.
func (b *Bundle) Lookup(name string) (any, bool) {
	for cur := b; cur != nil; cur = cur.fallback {
		if v, ok := cur.own[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Fallback returns the ancestor bundle, or nil.
func (b *Bundle) Fallback() *Bundle {
	return b.fallback
}

// Entries returns a flattened copy of every visible entry, own entries
// shadowing fallback entries.
func (b *Bundle) Entries() map[string]any {
	out := make(map[string]any)
	b.flattenInto(out)
	return out
}

func (b *Bundle) flattenInto(dst map[string]any) {
	if b == nil {
		return
	}
	b.fallback.flattenInto(dst)
	for k, v := range b.own {
		dst[k] = v
	}
}

// mergeAssets is the ancestor-chain strategy for components, directives, and
// filters: a fresh bundle falling back to the parent value, with the child's
// own declarations copied on top.
func mergeAssets(r *Resolver, parent, child any, _ *mergeContext, field string) any {
	res := NewBundle(asBundle(parent))
	if child == nil {
		return res
	}
	cm, ok := toStringMap(child)
	if !ok {
		r.sink.Warn(errors.Newf(errors.ErrCodeValidation,
			"invalid value for option %q: expected an object, got %T", field, child).
			WithDetail("option", field))
		return res
	}
	for name, v := range cm {
		res.Set(name, v)
	}
	return res
}

// ResolveAsset finds a named asset declared under options[category]. The
// same logical asset may be referenced as kebab-case, camelCase, or
// PascalCase, so all three are tried, own entries first, then the ancestor
// chain established by merging. A missing asset returns nil; a diagnostic is
// emitted only when warnMissing is set.
func (r *Resolver) ResolveAsset(options ConfigNode, category, id string, warnMissing bool) any {
	if id == "" {
		return nil
	}
	variants := names.Variants(id)
	if b := asBundle(options[category]); b != nil {
		for _, name := range variants {
			if v, ok := b.Own(name); ok {
				return v
			}
		}
		if fb := b.Fallback(); fb != nil {
			for _, name := range variants {
				if v, ok := fb.Lookup(name); ok {
					return v
				}
			}
		}
	}
	if warnMissing {
		r.sink.Warn(errors.NotFoundError(assetKind(category), id))
	}
	return nil
}

func assetKind(category string) string {
	switch category {
	case FieldComponents:
		return "component"
	case FieldDirectives:
		return "directive"
	case FieldFilters:
		return "filter"
	default:
		return category
	}
}
