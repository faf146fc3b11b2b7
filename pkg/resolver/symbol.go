package resolver

import "fmt"

// SymbolKind classifies a scope entry.
type SymbolKind int

const (
	// SymbolClass names a known class-like type.
	SymbolClass SymbolKind = iota
	// SymbolTypeParameter names a type parameter of the enclosing
	// declaration.  Type parameters never have a backing descriptor.
	SymbolTypeParameter
)

// String implements fmt.Stringer
func (k SymbolKind) String() string {
	switch k {
	case SymbolClass:
		return "CLASS"
	case SymbolTypeParameter:
		return "TYPE_PARAMETER"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// Symbol associates a name with the descriptor that defines it, along with a
// type classifier that says what kind of symbol it is.
type Symbol struct {
	// Kind is the kind of symbol this is.
	Kind SymbolKind
	// Name is the name the symbol is known under in the scope.
	Name string
	// Descriptor is the resolved backing descriptor; nil for type
	// parameters.
	Descriptor *Descriptor
}

// NewSymbol constructs a new symbol pointer with the given arguments.
func NewSymbol(kind SymbolKind, name string, descriptor *Descriptor) *Symbol {
	return &Symbol{
		Kind:       kind,
		Name:       name,
		Descriptor: descriptor,
	}
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	return fmt.Sprintf("(%s<%v> %v)", s.Name, s.Kind, s.Descriptor)
}
