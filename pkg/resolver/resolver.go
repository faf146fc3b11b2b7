package resolver

import (
	"github.com/stackb/interop-export/pkg/decl"
)

// Resolver is the host compiler's semantic analysis capability.  Both
// operations may be expensive and may fail; the export core calls them at two
// narrowly-scoped points only (receiver lookup during grouping and on-demand
// stub materialization) and degrades failures to ErrorDescriptor rather than
// aborting an export pass.
//
// Implementations are not required to be reentrant; if an embedding
// environment needs single-threaded resolution it must serialize these calls
// itself.
type Resolver interface {
	// ResolveDeclaration returns the resolved descriptor for the given
	// declaration.
	ResolveDeclaration(d *decl.Declaration) (*Descriptor, error)

	// ResolveType resolves a type expression within the given scope and
	// returns the descriptor of the named class, or (nil, nil) if the
	// expression does not name a class known to the scope.
	ResolveType(expr string, scope Scope) (*Descriptor, error)
}
