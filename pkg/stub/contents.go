package stub

import (
	"fmt"

	"github.com/stackb/interop-export/pkg/decl"
	"github.com/stackb/interop-export/pkg/namer"
	"github.com/stackb/interop-export/pkg/resolver"
)

// Member is one entry of a materialized stub body.
type Member struct {
	// Name is the external member name.
	Name string
	// Kind is the source declaration kind (function or property).
	Kind decl.Kind
	// Decl is the source declaration the member was translated from.
	Decl *decl.Declaration
}

// String implements fmt.Stringer
func (m *Member) String() string {
	return fmt.Sprintf("(%s<%v>)", m.Name, m.Kind)
}

// Contents is the expensive part of a stub: its full member list and
// supertype information.  Contents are produced exactly once per stub and
// are immutable thereafter.
type Contents struct {
	// Members is the translated member list, in source order.
	Members []*Member
	// Superclass is the external name of the superclass, if any.
	Superclass *namer.ClassOrProtocolName
	// SuperclassGenerics are the generic arguments of the superclass.
	SuperclassGenerics []string
	// Protocols are the external names of adopted protocols.
	Protocols []string
}

// Materializer is the heavy signature/body translation step.  The export
// core only decides when to call it and caches the result; materialization
// must be a pure projection of its immutable inputs, so repeated computation
// with the same inputs yields the same value.
type Materializer interface {
	// ClassContents materializes a class stub from its resolved descriptor.
	ClassContents(desc *resolver.Descriptor) (*Contents, error)

	// ProtocolContents materializes a protocol stub from its resolved
	// descriptor.
	ProtocolContents(desc *resolver.Descriptor) (*Contents, error)

	// GroupContents materializes a category or file-container stub from its
	// already-resolved member declarations.  Such stubs have no single
	// backing descriptor.
	GroupContents(members []*decl.Declaration) (*Contents, error)
}
