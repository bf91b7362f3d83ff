package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_Extend(t *testing.T) {
	r, _ := newTestResolver()
	base := NewComponent("base", ConfigNode{
		"template":      "<base/>",
		FieldComponents: map[string]any{"Shared": "S"},
	})

	sub := base.Extend(r, ConfigNode{"name": "sub", "template": "<sub/>"})

	assert.Equal(t, "sub", sub.Name)
	assert.Same(t, base, sub.Super())
	assert.Equal(t, "<sub/>", sub.Options["template"])
	assert.Equal(t, "S", r.ResolveAsset(sub.Options, FieldComponents, "Shared", false))
}

func TestComponent_ExtendKeepsNameWhenUnset(t *testing.T) {
	r, _ := newTestResolver()
	base := NewComponent("base", ConfigNode{})

	sub := base.Extend(r, ConfigNode{})

	assert.Equal(t, "base", sub.Name)
}

func TestNewInstance_ResolvesAgainstComponent(t *testing.T) {
	r, _ := newTestResolver()
	c := NewComponent("widget", ConfigNode{
		"template": "<w/>",
		FieldData: DataFunc(func(*Instance) map[string]any {
			return map[string]any{"open": false}
		}),
	})

	vm := NewInstance(r, c, ConfigNode{"template": "<override/>"})

	require.NotEmpty(t, vm.UID)
	assert.Equal(t, "<override/>", vm.Options["template"])
	assert.Equal(t, false, vm.Data["open"])
}

func TestNewInstance_NoData(t *testing.T) {
	r, _ := newTestResolver()
	c := NewComponent("bare", ConfigNode{})

	vm := NewInstance(r, c, nil)

	assert.NotNil(t, vm.Data)
	assert.Empty(t, vm.Data)
}
