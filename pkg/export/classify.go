package export

import "github.com/stackb/interop-export/pkg/decl"

// Skeleton is the classification of a declaration's output shape.
type Skeleton struct {
	// Protocol is true when the declaration becomes a protocol stub.
	Protocol bool
	// Final is true when the class stub carries the subclassing-restricted
	// attribute.  Meaningless for protocols.
	Final bool
}

// Classify decides whether a declaration becomes a protocol or class stub.
// A pure function of kind and modality; it never requires resolution.
func Classify(d *decl.Declaration) Skeleton {
	if d.Kind == decl.KindInterface {
		return Skeleton{Protocol: true}
	}
	return Skeleton{Final: Final(d.Modality)}
}

// Final reports whether the modality restricts subclassing: an unset
// modality is treated the same as an explicit final, while open and abstract
// classes stay subclassable.
func Final(m decl.Modality) bool {
	return m == decl.ModalityUnset || m == decl.ModalityFinal
}
