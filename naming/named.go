// Package naming defines the naming convention shared by converters,
// circuits, and hardware backends, and the helpers that enforce it.
package naming

// A Named object can report the name it was created with.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase carries a fixed name, for embedding in named types.
type NamedBase struct {
	name string
}

// MakeNamedBase wraps a name for embedding.
func MakeNamedBase(name string) NamedBase {
	return NamedBase{name: name}
}

// Name returns the name of the object.
func (b NamedBase) Name() string {
	return b.name
}
