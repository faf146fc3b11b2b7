package resolver

import (
	"fmt"

	"github.com/stackb/interop-export/pkg/decl"
)

// Descriptor is the fully resolved semantic form of a declaration.  Producing
// one may be expensive; the export core requests descriptors lazily and never
// caches them itself (a Resolver implementation is free to).
type Descriptor struct {
	// Name is the declared class path relative to the module, dot-separated
	// for nested classes (e.g. "Outer.Inner").
	Name string
	// Qualified is the fully-qualified identity of the declaration.
	Qualified string
	// Module is the declaring module.
	Module *decl.Module
	// Kind is the resolved declaration kind.
	Kind decl.Kind
	// Modality is the resolved modality.
	Modality decl.Modality
	// Visibility is the resolved visibility.
	Visibility decl.Visibility
	// Expect marks a cross-platform declaration without a platform
	// implementation.
	Expect bool
	// Value marks a value/inline class.
	Value bool
	// TypeParams are the resolved type parameter names.
	TypeParams []string
	// Superclass is the resolved superclass, if any.
	Superclass *Descriptor
	// Interfaces are the resolved implemented interfaces.
	Interfaces []*Descriptor
	// Invalid marks an error-state descriptor.  Naming short-circuits to the
	// sentinel pair for these rather than propagating a failure.
	Invalid bool
}

// ErrorDescriptor is the sentinel descriptor substituted when resolution
// fails.  One bad declaration must not block exporting the rest of a file.
var ErrorDescriptor = &Descriptor{
	Name:      "ERROR",
	Qualified: "ERROR",
	Invalid:   true,
}

// String implements fmt.Stringer
func (d *Descriptor) String() string {
	if d.Invalid {
		return fmt.Sprintf("(!%s)", d.Qualified)
	}
	return fmt.Sprintf("(%s<%v>)", d.Qualified, d.Kind)
}
