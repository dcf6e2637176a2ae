package property

// Handle is a dense index assigned by a [Registry]. Handles start at zero and
// follow first-seen order.
type Handle int

// Registry interns properties for the duration of one run. It is not safe
// for concurrent use.
type Registry struct {
	props []Property
	index map[Property]Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[Property]Handle)}
}

// Intern returns the handle of p, assigning a new one on first sight.
func (r *Registry) Intern(p Property) Handle {
	if h, ok := r.index[p]; ok {
		return h
	}
	h := Handle(len(r.props))
	r.props = append(r.props, p)
	r.index[p] = h
	return h
}

// Lookup returns the handle of p without interning it.
func (r *Registry) Lookup(p Property) (Handle, bool) {
	h, ok := r.index[p]
	return h, ok
}

// Property returns the property behind h. It panics if h was not issued by r.
func (r *Registry) Property(h Handle) Property {
	return r.props[h]
}

// Len returns the number of interned properties.
func (r *Registry) Len() int { return len(r.props) }

// All returns the interned properties in handle order.
func (r *Registry) All() []Property {
	out := make([]Property, len(r.props))
	copy(out, r.props)
	return out
}
