package options

import (
	"github.com/JaremyCheng/vue/pkg/errors"
	"github.com/JaremyCheng/vue/pkg/names"
)

// PropOptions is the canonical descriptor for one declared property. Array
// shorthand produces a descriptor with an unconstrained Type.
type PropOptions struct {
	Type      any
	Default   any
	Required  bool
	Validator func(value any) bool
}

// InjectOptions is the canonical descriptor for one dependency-injection
// declaration. From names the provided key to resolve; it defaults to the
// local name when a descriptor omits it.
type InjectOptions struct {
	From    any
	Default any
}

// NormalizeOptions canonicalizes the shorthand shapes of a raw option node
// in place: property declarations, dependency-injection declarations, and
// custom-directive declarations. It runs once per node before merging; no
// merge logic ever sees the pre-normalized shapes. All three passes are
// independent and idempotent.
func (r *Resolver) NormalizeOptions(node ConfigNode) {
	r.normalizeProps(node)
	r.normalizeInject(node)
	r.normalizeDirectives(node)
}

// normalizeProps accepts a sequence of prop names or a mapping from name to
// either a bare type value or a descriptor. Names are camel-cased. Any other
// shape is rejected with a diagnostic and treated as empty.
func (r *Resolver) normalizeProps(node ConfigNode) {
	raw, present := node[FieldProps]
	if !present || raw == nil {
		return
	}
	res := make(map[string]any)
	switch classify(raw) {
	case shapeSeq:
		seq, _ := toSeq(raw)
		for _, entry := range seq {
			name, ok := entry.(string)
			if !ok {
				r.sink.Warnf(errors.ErrCodeValidation,
					"props must be strings when using array syntax, got %T", entry)
				continue
			}
			res[names.Camelize(name)] = PropOptions{}
		}
	case shapeMap:
		m, _ := toStringMap(raw)
		for name, val := range m {
			key := names.Camelize(name)
			if po, ok := val.(PropOptions); ok {
				res[key] = po
				continue
			}
			if dm, ok := toStringMap(val); ok {
				res[key] = propOptionsFromMap(dm)
				continue
			}
			res[key] = PropOptions{Type: val}
		}
	default:
		r.sink.Warnf(errors.ErrCodeValidation,
			"invalid value for option %q: expected an array or an object, got %T", FieldProps, raw)
	}
	node[FieldProps] = res
}

func propOptionsFromMap(m map[string]any) PropOptions {
	po := PropOptions{
		Type:    m["type"],
		Default: m["default"],
	}
	if req, ok := m["required"].(bool); ok {
		po.Required = req
	}
	if fn, ok := m["validator"].(func(any) bool); ok {
		po.Validator = fn
	}
	return po
}

// normalizeInject accepts a sequence of local names (each resolving a
// provided key of the same name) or a mapping from local name to a bare
// source key or a descriptor. Any other shape is rejected with a diagnostic
// and treated as empty.
func (r *Resolver) normalizeInject(node ConfigNode) {
	raw, present := node[FieldInject]
	if !present || raw == nil {
		return
	}
	res := make(map[string]any)
	switch classify(raw) {
	case shapeSeq:
		seq, _ := toSeq(raw)
		for _, entry := range seq {
			name, ok := entry.(string)
			if !ok {
				r.sink.Warnf(errors.ErrCodeValidation,
					"inject entries must be strings when using array syntax, got %T", entry)
				continue
			}
			res[name] = InjectOptions{From: name}
		}
	case shapeMap:
		m, _ := toStringMap(raw)
		for name, val := range m {
			if io, ok := val.(InjectOptions); ok {
				res[name] = io
				continue
			}
			if dm, ok := toStringMap(val); ok {
				io := InjectOptions{From: name, Default: dm["default"]}
				if from, ok := dm["from"]; ok {
					io.From = from
				}
				res[name] = io
				continue
			}
			res[name] = InjectOptions{From: val}
		}
	default:
		r.sink.Warnf(errors.ErrCodeValidation,
			"invalid value for option %q: expected an array or an object, got %T", FieldInject, raw)
	}
	node[FieldInject] = res
}

// normalizeDirectives expands the bare-function directive shorthand into the
// canonical object form with the bind and update hooks set.
func (r *Resolver) normalizeDirectives(node ConfigNode) {
	raw, present := node[FieldDirectives]
	if !present || raw == nil {
		return
	}
	m, ok := toStringMap(raw)
	if !ok {
		// Shape diagnostics for the whole field are the asset strategy's job.
		return
	}
	for name, val := range m {
		if fn, ok := asDirectiveHook(val); ok {
			m[name] = &Directive{Bind: fn, Update: fn}
		}
	}
	node[FieldDirectives] = m
}
