package options

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/JaremyCheng/vue/pkg/diag"
	"github.com/JaremyCheng/vue/pkg/errors"
)

// Resolver owns the field-merge strategy table and the collaborators merging
// needs: the diagnostic sink, the reactive registrar, and the host's
// reserved-name check. A Resolver is cheap and safe to share across merges;
// its strategy table is immutable after construction.
type Resolver struct {
	strategies    map[string]MergeStrategy
	sink          *diag.Sink
	reactive      ReactiveSetter
	isReservedTag func(name string) bool
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithSink routes diagnostics to the given sink.
func WithSink(s *diag.Sink) Option {
	return func(r *Resolver) { r.sink = s }
}

// WithReactiveSetter installs the reactive-value collaborator used by the
// deep data merge to register newly introduced keys.
func WithReactiveSetter(rs ReactiveSetter) Option {
	return func(r *Resolver) { r.reactive = rs }
}

// WithReservedTagCheck installs the host platform's reserved-tag predicate,
// consulted when component names are validated.
func WithReservedTagCheck(fn func(name string) bool) Option {
	return func(r *Resolver) { r.isReservedTag = fn }
}

// WithStrategy registers a custom merge strategy for a field. Entries are
// added to the table being built, never patched onto a live resolver.
func WithStrategy(field string, s MergeStrategy) Option {
	return func(r *Resolver) { r.strategies[field] = s }
}

// NewResolver creates a Resolver with the standard field strategies.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		strategies: newFieldStrategies(),
		sink:       diag.NewSink(),
		reactive:   plainSetter{},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Sink exposes the resolver's diagnostic sink.
func (r *Resolver) Sink() *diag.Sink {
	return r.sink
}

// mergeContext carries the per-call merge state: the mode, the instance for
// instance-mode merges, and the in-progress inheritance chain used to detect
// cyclic extends/mixins declarations.
type mergeContext struct {
	mode  MergeMode
	vm    *Instance
	chain []uintptr
}

// MergeOptions resolves child against parent at definition time and returns
// a fresh node. child may be a raw option node or a *Component, in which
// case its attached options are used. The child's extends reference and
// mixin list are folded into the effective parent before the child's own
// fields apply, so the child wins ties against all of them.
func (r *Resolver) MergeOptions(parent ConfigNode, child any) ConfigNode {
	return r.mergeOptions(parent, child, &mergeContext{mode: MergeDefinitions})
}

// MergeInstanceOptions resolves child against parent at instance-creation
// time. vm is the instance being created; data and provide factories resolve
// against it.
func (r *Resolver) MergeInstanceOptions(parent ConfigNode, child any, vm *Instance) ConfigNode {
	return r.mergeOptions(parent, child, &mergeContext{mode: MergeInstance, vm: vm})
}

func (r *Resolver) mergeOptions(parent ConfigNode, child any, mc *mergeContext) ConfigNode {
	node := r.childNode(child)

	if id := nodeID(node); id != 0 {
		for _, seen := range mc.chain {
			if seen == id {
				r.sink.Warn(errors.CycleError(
					"cyclic inheritance detected; ignoring the repeated options object").
					WithDetail("depth", len(mc.chain)))
				return copyNode(parent)
			}
		}
		mc.chain = append(mc.chain, id)
		defer func() { mc.chain = mc.chain[:len(mc.chain)-1] }()
	}

	r.checkComponents(node)
	r.NormalizeOptions(node)

	if ext, ok := node[FieldExtends]; ok && ext != nil {
		parent = r.mergeOptions(parent, ext, mc)
	}
	if raw, ok := node[FieldMixins]; ok && raw != nil {
		if mixins, ok := toSeq(raw); ok {
			for _, mixin := range mixins {
				parent = r.mergeOptions(parent, mixin, mc)
			}
		} else {
			r.sink.Warnf(errors.ErrCodeValidation,
				"invalid value for option %q: expected an array, got %T", FieldMixins, raw)
		}
	}

	out := make(ConfigNode, len(parent)+len(node))
	for key := range parent {
		out[key] = r.mergeField(key, parent[key], node[key], mc)
	}
	for key := range node {
		if _, inParent := parent[key]; inParent {
			continue
		}
		out[key] = r.mergeField(key, nil, node[key], mc)
	}
	return out
}

func (r *Resolver) mergeField(key string, parentVal, childVal any, mc *mergeContext) any {
	strat, ok := r.strategies[key]
	if !ok {
		strat = defaultStrategy
	}
	return strat(r, parentVal, childVal, mc, key)
}

// childNode unwraps the child argument into a raw option node. A *Component
// stands in for its attached options; anything that is not a mapping is
// rejected with a diagnostic and treated as empty.
func (r *Resolver) childNode(child any) ConfigNode {
	switch c := child.(type) {
	case nil:
		return ConfigNode{}
	case *Component:
		if c == nil || c.Options == nil {
			return ConfigNode{}
		}
		return c.Options
	case ConfigNode:
		if c == nil {
			return ConfigNode{}
		}
		return c
	case map[string]any:
		if c == nil {
			return ConfigNode{}
		}
		return ConfigNode(c)
	}
	if m, ok := toStringMap(child); ok {
		return ConfigNode(m)
	}
	r.sink.Warnf(errors.ErrCodeValidation,
		"options must be an object or a component, got %T", child)
	return ConfigNode{}
}

var componentNameRE = regexp.MustCompile(`^[a-zA-Z][\w-]*$`)

// checkComponents validates declared sub-component names. Conflicts with
// built-in or platform-reserved names are reported and the merge proceeds.
func (r *Resolver) checkComponents(node ConfigNode) {
	raw, ok := node[FieldComponents]
	if !ok {
		return
	}
	m, ok := toStringMap(raw)
	if !ok {
		return
	}
	for name := range m {
		r.validateComponentName(name)
	}
}

func (r *Resolver) validateComponentName(name string) {
	if !componentNameRE.MatchString(name) {
		r.sink.Warn(errors.ConflictError(name,
			"component names must start with a letter and contain only word characters and hyphens"))
		return
	}
	if isBuiltInTag(name) {
		r.sink.Warn(errors.ConflictError(name, "conflicts with a built-in component name"))
		return
	}
	if r.isReservedTag != nil && r.isReservedTag(name) {
		r.sink.Warn(errors.ConflictError(name, "conflicts with a reserved platform element name"))
	}
}

func isBuiltInTag(name string) bool {
	switch strings.ToLower(name) {
	case "slot", "component":
		return true
	default:
		return false
	}
}

// nodeID identifies an option node by its underlying storage, so the same
// mixin object appearing twice in one in-progress chain is caught as a cycle
// while legitimate reuse across sibling chains is not.
func nodeID(node ConfigNode) uintptr {
	if node == nil {
		return 0
	}
	return reflect.ValueOf(node).Pointer()
}

func copyNode(node ConfigNode) ConfigNode {
	out := make(ConfigNode, len(node))
	for k, v := range node {
		out[k] = v
	}
	return out
}
