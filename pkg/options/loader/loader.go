// Package loader loads component definition files into option nodes the
// merge engine can resolve. YAML is the primary authoring format; HCL is
// supported as an alternative front end. File-level extends and mixins
// references are loaded recursively so the merge engine sees plain option
// nodes, with circular references reported as errors at the file boundary.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JaremyCheng/vue/pkg/errors"
	"github.com/JaremyCheng/vue/pkg/options"
)

// Loader reads component definition files for one resolver.
type Loader struct {
	resolver *options.Resolver
}

// New creates a Loader that resolves definitions through r.
func New(r *options.Resolver) *Loader {
	return &Loader{resolver: r}
}

// Load reads a definition file and returns its option node. extends and
// mixins entries naming other files are replaced with those files' loaded
// nodes, recursively.
func (l *Loader) Load(path string) (options.ConfigNode, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, "failed to resolve definition path", err)
	}
	return l.load(abs, make(map[string]bool))
}

// LoadFromBytes parses raw definition bytes. sourcePath names the origin for
// error reporting and for resolving relative file references.
func (l *Loader) LoadFromBytes(data []byte, sourcePath string) (options.ConfigNode, error) {
	node, err := l.parse(data, sourcePath)
	if err != nil {
		return nil, err
	}
	if err := l.resolveRefs(node, sourcePath, make(map[string]bool)); err != nil {
		return nil, err
	}
	return node, nil
}

// Resolve loads a definition file and merges it against base at definition
// time, returning the resolved option node.
func (l *Loader) Resolve(path string, base options.ConfigNode) (options.ConfigNode, error) {
	node, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if base == nil {
		base = options.ConfigNode{}
	}
	return l.resolver.MergeOptions(base, node), nil
}

// load reads and parses one file. The seen set tracks the in-progress
// reference chain for circular reference detection; entries are removed on
// the way out so diamond-shaped reuse is not misreported as a cycle.
func (l *Loader) load(path string, seen map[string]bool) (options.ConfigNode, error) {
	if seen[path] {
		return nil, errors.CycleError(
			fmt.Sprintf("circular definition reference detected: %s", path))
	}
	seen[path] = true
	defer delete(seen, path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, fmt.Sprintf("failed to read %s", path), err)
	}
	node, err := l.parse(data, path)
	if err != nil {
		return nil, err
	}
	if err := l.resolveRefs(node, path, seen); err != nil {
		return nil, err
	}
	return node, nil
}

// parse dispatches on the file extension. Anything that is not HCL is
// treated as YAML.
func (l *Loader) parse(data []byte, sourcePath string) (options.ConfigNode, error) {
	if strings.EqualFold(filepath.Ext(sourcePath), ".hcl") {
		return l.parseHCL(data, sourcePath)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.ParseError(sourcePath, err)
	}
	return options.ConfigNode(raw), nil
}

// resolveRefs replaces file-path extends and mixins entries with loaded
// nodes and wraps literal data declarations into per-instance factories.
func (l *Loader) resolveRefs(node options.ConfigNode, sourcePath string, seen map[string]bool) error {
	if ref, ok := node[options.FieldExtends].(string); ok {
		base, err := l.load(l.refPath(sourcePath, ref), seen)
		if err != nil {
			return err
		}
		node[options.FieldExtends] = base
	}
	if raw, ok := node[options.FieldMixins].([]any); ok {
		for i, entry := range raw {
			ref, ok := entry.(string)
			if !ok {
				continue
			}
			mixin, err := l.load(l.refPath(sourcePath, ref), seen)
			if err != nil {
				return err
			}
			raw[i] = mixin
		}
	}
	wrapLiteralData(node)
	return nil
}

func (l *Loader) refPath(sourcePath, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(sourcePath), ref)
}

// wrapLiteralData turns a literal data mapping into a factory producing a
// deep copy per instance. Authored files cannot express functions, but the
// engine requires definition data to be a factory so instances never share
// one mapping.
func wrapLiteralData(node options.ConfigNode) {
	raw, ok := node[options.FieldData].(map[string]any)
	if !ok {
		return
	}
	node[options.FieldData] = options.DataFunc(func(*options.Instance) map[string]any {
		return deepCopyMap(raw)
	})
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, entry := range val {
			out[i] = deepCopyValue(entry)
		}
		return out
	default:
		return v
	}
}
