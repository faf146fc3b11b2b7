package export

import (
	"github.com/stackb/interop-export/pkg/decl"
	"github.com/stackb/interop-export/pkg/resolver"
)

// extensionGroup is an ordered run of extension callables sharing an owner
// class.  Declaration order within a group is source order: duplicate-name
// diagnostics and documentation ordering downstream depend on it.
type extensionGroup struct {
	owner *resolver.Descriptor
	decls []*decl.Declaration
}

// extensionGroups buckets a file's extension callables by owner class
// identity, preserving first-seen owner order.  Built once per file and
// consumed immediately.
type extensionGroups struct {
	byOwner map[string]*extensionGroup
	order   []*extensionGroup
}

func newExtensionGroups() *extensionGroups {
	return &extensionGroups{
		byOwner: make(map[string]*extensionGroup),
	}
}

func (g *extensionGroups) add(owner *resolver.Descriptor, d *decl.Declaration) {
	group, ok := g.byOwner[owner.Qualified]
	if !ok {
		group = &extensionGroup{owner: owner}
		g.byOwner[owner.Qualified] = group
		g.order = append(g.order, group)
	}
	group.decls = append(group.decls, d)
}

// receiverOwner resolves the owner class of a callable's declared receiver
// type, if it has one.  The second return is true for a plain (non-extension)
// callable; no resolution is performed for those.  An extension whose
// receiver lies outside the exported surface comes back (nil, false) and is
// silently dropped: receiver types outside the surface are expected and
// common.  A receiver in an error state comes back as the error descriptor
// so the group degrades to the sentinel name instead of crashing the pass.
//
// This is the one point where grouping pays full resolution cost, paid at
// most once per declaration.
func (t *Translator) receiverOwner(d *decl.Declaration) (*resolver.Descriptor, bool) {
	if d.Receiver == "" {
		return nil, true
	}

	// Seed a synthetic scope with the declaration's own type parameters so a
	// generic extension's receiver expression can reference them.
	params := resolver.NewTrieScope()
	for _, name := range d.TypeParams {
		params.PutSymbol(resolver.NewSymbol(resolver.SymbolTypeParameter, name, nil))
	}
	scope := resolver.NewChainScope(params, t.scope)

	desc, err := t.resolver.ResolveType(d.Receiver, scope)
	if err != nil {
		t.logger.Warn().
			Err(err).
			Str("callable", d.Name).
			Str("receiver", d.Receiver).
			Msg("receiver resolution failed")
		return resolver.ErrorDescriptor, false
	}
	if desc == nil {
		t.logger.Debug().
			Str("callable", d.Name).
			Str("receiver", d.Receiver).
			Msg("receiver does not name a known class; dropping extension")
		return nil, false
	}
	if desc.Invalid {
		return desc, false
	}
	if !descriptorExportable(desc) {
		t.logger.Debug().
			Str("callable", d.Name).
			Str("receiver", d.Receiver).
			Msg("receiver class is outside the exported surface; dropping extension")
		return nil, false
	}
	return desc, false
}
