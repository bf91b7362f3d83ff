package cli

import (
	"reflect"

	"github.com/JaremyCheng/vue/pkg/options"
)

// funcPlaceholder stands in for callables, which have no YAML encoding.
const funcPlaceholder = "<function>"

// renderNode projects a resolved option node into plain YAML-encodable
// values. Callables become placeholders, asset bundles flatten to their
// visible entries, and normalized descriptors become plain mappings.
func renderNode(node options.ConfigNode) map[string]any {
	out := make(map[string]any, len(node))
	for k, v := range node {
		out[k] = renderValue(v)
	}
	return out
}

func renderValue(v any) any {
	switch val := v.(type) {
	case options.ConfigNode:
		return renderNode(val)

	case map[string]any:
		out := make(map[string]any, len(val))
		for k, entry := range val {
			out[k] = renderValue(entry)
		}
		return out

	case []any:
		out := make([]any, len(val))
		for i, entry := range val {
			out[i] = renderValue(entry)
		}
		return out

	case []options.Hook:
		out := make([]any, len(val))
		for i := range val {
			out[i] = funcPlaceholder
		}
		return out

	case *options.Bundle:
		return renderValue(val.Entries())

	case *options.Directive:
		out := map[string]any{}
		if val.Bind != nil {
			out["bind"] = funcPlaceholder
		}
		if val.Inserted != nil {
			out["inserted"] = funcPlaceholder
		}
		if val.Update != nil {
			out["update"] = funcPlaceholder
		}
		if val.ComponentUpdated != nil {
			out["componentUpdated"] = funcPlaceholder
		}
		if val.Unbind != nil {
			out["unbind"] = funcPlaceholder
		}
		return out

	case options.PropOptions:
		out := map[string]any{}
		if val.Type != nil {
			out["type"] = renderValue(val.Type)
		}
		if val.Default != nil {
			out["default"] = renderValue(val.Default)
		}
		if val.Required {
			out["required"] = true
		}
		if val.Validator != nil {
			out["validator"] = funcPlaceholder
		}
		return out

	case options.InjectOptions:
		out := map[string]any{"from": renderValue(val.From)}
		if val.Default != nil {
			out["default"] = renderValue(val.Default)
		}
		return out

	default:
		if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
			return funcPlaceholder
		}
		return v
	}
}
