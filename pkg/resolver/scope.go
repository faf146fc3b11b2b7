package resolver

import "fmt"

// Scope is an index of known symbols.
type Scope interface {
	fmt.Stringer

	// GetSymbol does a lookup of the given name and returns the known
	// symbol.  If not known `(nil, false)` is returned.
	GetSymbol(name string) (*Symbol, bool)

	// GetSymbols does a lookup of the given prefix and returns the symbols
	// under it, sorted by name.
	GetSymbols(prefix string) []*Symbol

	// PutSymbol adds the given symbol to the scope.
	PutSymbol(symbol *Symbol) error
}
