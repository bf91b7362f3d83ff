package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/JaremyCheng/vue/pkg/errors"
	"github.com/JaremyCheng/vue/pkg/options"
)

// parseHCL reads a definition authored as HCL. Attributes of a
// `component "<name>" { ... }` block become option fields; the block label
// becomes the component name. Top-level attributes outside a block are
// accepted too.
func (l *Loader) parseHCL(data []byte, sourcePath string) (options.ConfigNode, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, sourcePath)
	if diags.HasErrors() {
		return nil, errors.ParseError(sourcePath, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errors.New(errors.ErrCodeParse, "unexpected HCL body type")
	}

	node := options.ConfigNode{}
	if err := decodeAttributes(body.Attributes, node); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, fmt.Sprintf("in %s", sourcePath), err)
	}
	for _, block := range body.Blocks {
		if block.Type != "component" {
			return nil, errors.Newf(errors.ErrCodeParse,
				"unsupported block %q in %s; expected a component block", block.Type, sourcePath)
		}
		if len(block.Labels) == 1 && block.Labels[0] != "" {
			node[options.FieldName] = block.Labels[0]
		}
		if err := decodeAttributes(block.Body.Attributes, node); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, fmt.Sprintf("in %s", sourcePath), err)
		}
	}
	return node, nil
}

func decodeAttributes(attrs hclsyntax.Attributes, node options.ConfigNode) error {
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("attribute %q: %w", name, diags)
		}
		goVal, err := ctyToNative(val)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		node[name] = goVal
	}
	return nil
}

// ctyToNative recursively converts a cty.Value to its most natural Go
// counterpart, the same shapes YAML parsing produces.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number: %w", err)
		}
		if f == float64(int(f)) {
			return int(f), nil
		}
		return f, nil

	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, fmt.Errorf("could not convert bool: %w", err)
		}
		return b, nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0)
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			slice = append(slice, native)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			keyStr := key.AsString()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", keyStr, err)
			}
			out[keyStr] = native
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
