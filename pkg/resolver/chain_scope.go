package resolver

import (
	"fmt"
	"strings"
)

// ChainScope implements Scope over a chain of scopes.  Lookups try each
// scope in order; the first hit wins.
type ChainScope struct {
	chain []Scope
}

func NewChainScope(chain ...Scope) *ChainScope {
	return &ChainScope{
		chain: chain,
	}
}

// PutSymbol is not supported and returns an error.
func (s *ChainScope) PutSymbol(symbol *Symbol) error {
	return fmt.Errorf("unsupported operation: PutSymbol")
}

// GetSymbol implements part of the Scope interface.
func (s *ChainScope) GetSymbol(name string) (*Symbol, bool) {
	for _, next := range s.chain {
		if known, ok := next.GetSymbol(name); ok {
			return known, true
		}
	}
	return nil, false
}

// GetSymbols implements part of the Scope interface.
func (s *ChainScope) GetSymbols(prefix string) []*Symbol {
	for _, next := range s.chain {
		if known := next.GetSymbols(prefix); len(known) > 0 {
			return known
		}
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (s *ChainScope) String() string {
	var buf strings.Builder
	for _, next := range s.chain {
		buf.WriteString(next.String())
		buf.WriteRune('\n')
	}
	return buf.String()
}
