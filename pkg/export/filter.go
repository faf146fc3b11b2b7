package export

import (
	"github.com/stackb/interop-export/pkg/decl"
	"github.com/stackb/interop-export/pkg/resolver"
)

// Exportable decides export eligibility.  It is a pure function of the
// declaration's modifiers and kind: public visibility, no expect marker, not
// an enum-entry pseudo-member; annotation and value/inline classes have no
// native representation and are skipped; suspendable callables are excluded
// because the native caller has no matching calling convention.
func Exportable(d *decl.Declaration) bool {
	if d.Visibility != decl.VisibilityPublic {
		return false
	}
	if d.Expect {
		return false
	}
	switch d.Kind {
	case decl.KindClass, decl.KindInterface, decl.KindObject:
		return !d.Value
	case decl.KindFunction, decl.KindProperty:
		return !d.Suspend
	}
	return false
}

// descriptorExportable applies the Exportable rules to an already-resolved
// descriptor.  Used when deciding whether an extension's receiver class is
// part of the exported surface.
func descriptorExportable(desc *resolver.Descriptor) bool {
	if desc.Visibility != decl.VisibilityPublic {
		return false
	}
	if desc.Expect {
		return false
	}
	switch desc.Kind {
	case decl.KindClass, decl.KindInterface, decl.KindObject:
		return !desc.Value
	}
	return false
}
