package options

// Component is the compiled form of a component definition: the analogue of
// a registered constructor carrying its authored options. Passing a
// Component where an option node is expected resolves to its options.
type Component struct {
	Name    string
	Options ConfigNode

	super *Component
}

// NewComponent wraps an authored option node as a component definition.
func NewComponent(name string, opts ConfigNode) *Component {
	if opts == nil {
		opts = ConfigNode{}
	}
	return &Component{Name: name, Options: opts}
}

// Super returns the component this one was extended from, or nil.
func (c *Component) Super() *Component {
	return c.super
}

// Extend derives a sub component whose effective options are the full
// definition-time merge of c's options with extendOptions.
func (c *Component) Extend(r *Resolver, extendOptions ConfigNode) *Component {
	merged := r.MergeOptions(c.Options, extendOptions)
	name := c.Name
	if n, ok := merged[FieldName].(string); ok && n != "" {
		name = n
	}
	return &Component{Name: name, Options: merged, super: c}
}
