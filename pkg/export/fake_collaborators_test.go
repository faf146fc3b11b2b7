package export_test

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/stackb/interop-export/pkg/decl"
	"github.com/stackb/interop-export/pkg/resolver"
	"github.com/stackb/interop-export/pkg/stub"
)

// errExpected stands in for a host compiler failure.
var errExpected = errors.New("expected failure")

// fakeResolver resolves declarations from a fixed table and type expressions
// by scope lookup, the way a host compiler facade would.
type fakeResolver struct {
	descriptors map[string]*resolver.Descriptor
	declCalls   atomic.Int32
	typeCalls   atomic.Int32
}

func (r *fakeResolver) ResolveDeclaration(d *decl.Declaration) (*resolver.Descriptor, error) {
	r.declCalls.Add(1)
	if desc, ok := r.descriptors[d.Name]; ok {
		return desc, nil
	}
	return nil, fmt.Errorf("unresolved declaration: %s", d.Name)
}

func (r *fakeResolver) ResolveType(expr string, scope resolver.Scope) (*resolver.Descriptor, error) {
	r.typeCalls.Add(1)
	symbol, ok := scope.GetSymbol(expr)
	if !ok {
		return nil, nil
	}
	if symbol.Kind == resolver.SymbolTypeParameter {
		return nil, nil
	}
	return symbol.Descriptor, nil
}

// fakeMaterializer translates each member declaration to a member of the
// same name and records how often it is consulted.
type fakeMaterializer struct {
	classCalls    atomic.Int32
	protocolCalls atomic.Int32
	groupCalls    atomic.Int32
	err           error
}

func (m *fakeMaterializer) ClassContents(desc *resolver.Descriptor) (*stub.Contents, error) {
	m.classCalls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return &stub.Contents{
		Members: []*stub.Member{{Name: "describe", Kind: decl.KindFunction}},
	}, nil
}

func (m *fakeMaterializer) ProtocolContents(desc *resolver.Descriptor) (*stub.Contents, error) {
	m.protocolCalls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return &stub.Contents{
		Members: []*stub.Member{{Name: "describe", Kind: decl.KindFunction}},
	}, nil
}

func (m *fakeMaterializer) GroupContents(members []*decl.Declaration) (*stub.Contents, error) {
	m.groupCalls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	contents := &stub.Contents{}
	for _, d := range members {
		contents.Members = append(contents.Members, &stub.Member{Name: d.Name, Kind: d.Kind, Decl: d})
	}
	return contents, nil
}
