package options

import (
	"github.com/google/uuid"
)

// Instance is the live handle for one created component. The UID identifies
// the instance to the reactive subsystem; Options is the option set resolved
// for this creation; Data is the instance's own data mapping, produced by
// the resolved data factory.
type Instance struct {
	UID       string
	Component *Component
	Options   ConfigNode
	Data      map[string]any
}

// NewInstance performs the one resolution step done per component creation:
// the component's options are merged with the per-call overrides in instance
// mode, then the resolved data factory runs against the new instance.
func NewInstance(r *Resolver, c *Component, override ConfigNode) *Instance {
	vm := &Instance{
		UID:       uuid.NewString(),
		Component: c,
	}
	var parent ConfigNode
	if c != nil {
		parent = c.Options
	}
	vm.Options = r.MergeInstanceOptions(parent, override, vm)
	vm.Data = resolveDataValue(vm.Options[FieldData], vm)
	if vm.Data == nil {
		vm.Data = map[string]any{}
	}
	return vm
}
