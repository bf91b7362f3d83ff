package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// identifier generates plausible authored names, mixing kebab-case and
// camelCase the way real definitions do.
func identifier() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][a-z0-9]{0,5}(-[a-z][a-z0-9]{0,5}){0,3}`)
}

func TestDefaultStrategy_OverrideLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, _ := newTestResolver()
		field := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "field")
		parent := rapid.Int().Draw(t, "parent")

		out := r.MergeOptions(ConfigNode{field: parent}, ConfigNode{})
		assert.Equal(t, parent, out[field])

		child := rapid.Int().Draw(t, "child")
		out = r.MergeOptions(ConfigNode{field: parent}, ConfigNode{field: child})
		assert.Equal(t, child, out[field])
	})
}

func TestNormalizeProps_IdempotentForAnyArrayInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, _ := newTestResolver()
		namesIn := rapid.SliceOfN(identifier(), 0, 8).Draw(t, "names")
		entries := make([]any, len(namesIn))
		for i, n := range namesIn {
			entries[i] = n
		}
		node := ConfigNode{FieldProps: entries}

		r.normalizeProps(node)
		once, _ := node[FieldProps].(map[string]any)
		r.normalizeProps(node)
		twice, _ := node[FieldProps].(map[string]any)

		assert.Equal(t, once, twice)
	})
}

func TestNormalizeInject_IdempotentForAnyMapInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, _ := newTestResolver()
		in := rapid.MapOf(identifier(), identifier()).Draw(t, "inject")
		raw := make(map[string]any, len(in))
		for k, v := range in {
			raw[k] = v
		}
		node := ConfigNode{FieldInject: raw}

		r.normalizeInject(node)
		once, _ := node[FieldInject].(map[string]any)
		r.normalizeInject(node)
		twice, _ := node[FieldInject].(map[string]any)

		assert.Equal(t, once, twice)
	})
}

func TestMergeShallow_UnionAndPrecedence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, _ := newTestResolver()
		mc := &mergeContext{mode: MergeDefinitions}
		parent := rapid.MapOf(identifier(), rapid.Int()).Draw(t, "parent")
		child := rapid.MapOf(identifier(), rapid.Int()).Draw(t, "child")
		pm := make(map[string]any, len(parent))
		for k, v := range parent {
			pm[k] = v
		}
		cm := make(map[string]any, len(child))
		for k, v := range child {
			cm[k] = v
		}

		out := mergeShallow(r, pm, cm, mc, FieldMethods).(map[string]any)

		for k, v := range child {
			assert.Equal(t, v, out[k], "child entries always win")
		}
		for k, v := range parent {
			if _, shadowed := child[k]; !shadowed {
				assert.Equal(t, v, out[k], "unshadowed parent entries survive")
			}
		}
		assert.Len(t, out, len(pm)+len(cm)-intersection(parent, child))
	})
}

func intersection(a, b map[string]int) int {
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func TestMergeData_NeverOverridesInstalledKeys(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, _ := newTestResolver()
		first := rapid.MapOf(identifier(), rapid.Int()).Draw(t, "first")
		second := rapid.MapOf(identifier(), rapid.Int()).Draw(t, "second")
		to := make(map[string]any, len(first))
		for k, v := range first {
			to[k] = v
		}
		from := make(map[string]any, len(second))
		for k, v := range second {
			from[k] = v
		}

		out := r.mergeData(to, from)

		for k, v := range first {
			assert.Equal(t, v, out[k], "first-installed values are never overridden")
		}
		for k, v := range second {
			if _, present := first[k]; !present {
				assert.Equal(t, v, out[k])
			}
		}
	})
}
