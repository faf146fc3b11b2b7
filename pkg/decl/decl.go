package decl

import "fmt"

// Visibility is the declared visibility of a declaration.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityInternal
	VisibilityProtected
	VisibilityPrivate
)

// String implements fmt.Stringer
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityInternal:
		return "internal"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Modality is the declared modality of a class-like declaration.  The zero
// value means the source carried no explicit modality, which the export
// surface treats the same as an explicit final.
type Modality int

const (
	ModalityUnset Modality = iota
	ModalityFinal
	ModalityOpen
	ModalityAbstract
)

// String implements fmt.Stringer
func (m Modality) String() string {
	switch m {
	case ModalityUnset:
		return "unset"
	case ModalityFinal:
		return "final"
	case ModalityOpen:
		return "open"
	case ModalityAbstract:
		return "abstract"
	default:
		return fmt.Sprintf("Modality(%d)", int(m))
	}
}

// Kind classifies a declaration.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindObject
	KindAnnotation
	KindEnumEntry
	KindFunction
	KindProperty
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindObject:
		return "object"
	case KindAnnotation:
		return "annotation"
	case KindEnumEntry:
		return "enum-entry"
	case KindFunction:
		return "function"
	case KindProperty:
		return "property"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Module identifies the compilation module a declaration belongs to.
type Module struct {
	// Name is the module name as configured by the build.
	Name string
	// Stdlib marks the standard library module.
	Stdlib bool
}

// File is a single source file and its top-level declarations, in source
// order.
type File struct {
	// Name is the file path as reported by the host compiler.
	Name string
	// Module is the module the file belongs to.
	Module *Module
	// Decls are the top-level declarations in source order.
	Decls []*Declaration
}

// Declaration is a source-language entity handed in by the host compiler.
// The export core treats it as read-only and never mutates it.
type Declaration struct {
	// Name is the declared simple name.
	Name string
	// Kind classifies the declaration.
	Kind Kind
	// Visibility is the declared visibility.
	Visibility Visibility
	// Modality applies to class-like declarations.
	Modality Modality
	// Expect marks a cross-platform declaration awaiting a platform
	// implementation.
	Expect bool
	// Suspend marks an asynchronous callable.
	Suspend bool
	// Value marks a value/inline class.
	Value bool
	// Receiver is the receiver type expression; present only for extension
	// callables.
	Receiver string
	// TypeParams are the declared type parameter names.
	TypeParams []string
	// Module is the declaring module.
	Module *Module
	// Nested are the declarations nested in this one, in source order.
	Nested []*Declaration
}

// ClassLike reports whether the declaration declares a type.
func (d *Declaration) ClassLike() bool {
	switch d.Kind {
	case KindClass, KindInterface, KindObject, KindAnnotation:
		return true
	}
	return false
}

// Callable reports whether the declaration is a function or property.
func (d *Declaration) Callable() bool {
	return d.Kind == KindFunction || d.Kind == KindProperty
}

// String implements fmt.Stringer
func (d *Declaration) String() string {
	return fmt.Sprintf("(%s %s<%v>)", d.Kind, d.Name, d.Visibility)
}
