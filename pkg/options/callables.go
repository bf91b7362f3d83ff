package options

// Hook is a lifecycle callback. Invocation belongs to the instance lifecycle
// machinery; this package only merges hook lists.
type Hook func(vm *Instance)

// DataFunc is a data (or provide) factory producing the per-instance mapping.
type DataFunc func(vm *Instance) map[string]any

// DirectiveHook is one lifecycle hook of a custom directive. Invocation is
// owned by the rendering layer.
type DirectiveHook func(vm *Instance, value, oldValue any)

// Directive is the canonical object form of a custom directive. A bare
// function shorthand expands to a Directive with Bind and Update set to the
// same hook.
type Directive struct {
	Bind             DirectiveHook
	Inserted         DirectiveHook
	Update           DirectiveHook
	ComponentUpdated DirectiveHook
	Unbind           DirectiveHook
}

func asHook(v any) (Hook, bool) {
	switch f := v.(type) {
	case Hook:
		return f, true
	case func(*Instance):
		return f, true
	case func():
		return func(*Instance) { f() }, true
	default:
		return nil, false
	}
}

// toHookList normalizes a hook field value to a fresh sequence of callables.
// A bare callable becomes a one-element sequence; entries that are not
// callables are dropped.
func toHookList(v any) ([]Hook, bool) {
	if h, ok := asHook(v); ok {
		return []Hook{h}, true
	}
	seq, ok := toSeq(v)
	if !ok {
		return nil, false
	}
	out := make([]Hook, 0, len(seq))
	for _, entry := range seq {
		if h, ok := asHook(entry); ok {
			out = append(out, h)
		}
	}
	return out, true
}

func asDataFunc(v any) (DataFunc, bool) {
	switch f := v.(type) {
	case DataFunc:
		return f, true
	case func(*Instance) map[string]any:
		return f, true
	case func() map[string]any:
		return func(*Instance) map[string]any { return f() }, true
	default:
		return nil, false
	}
}

func asDirectiveHook(v any) (DirectiveHook, bool) {
	switch f := v.(type) {
	case DirectiveHook:
		return f, true
	case func(*Instance, any, any):
		return f, true
	default:
		return nil, false
	}
}
