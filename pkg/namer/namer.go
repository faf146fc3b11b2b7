package namer

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/stackb/interop-export/pkg/decl"
	"github.com/stackb/interop-export/pkg/resolver"
)

// StdlibPrefix is the reserved prefix for standard library declarations.
const StdlibPrefix = "Std"

// topLevelSuffix is appended to the bare name of per-file container stubs.
const topLevelSuffix = "TopLevel"

// Option configures a Namer.
type Option func(*Namer)

// WithIncluded sets the predicate deciding whether a module's declarations
// are part of the current export (as opposed to a pre-built dependency that
// is only referenced by name).
func WithIncluded(included func(*decl.Module) bool) Option {
	return func(n *Namer) {
		n.included = included
	}
}

// WithModuleName sets the function used to obtain a module's configured
// name.
func WithModuleName(moduleName func(*decl.Module) string) Option {
	return func(n *Namer) {
		n.moduleName = moduleName
	}
}

// WithPrefixes sets explicit per-module prefix overrides, keyed by module
// name.
func WithPrefixes(prefixes map[string]string) Option {
	return func(n *Namer) {
		n.prefixes = prefixes
	}
}

// Namer computes collision-avoiding external names from syntactic
// information only.  It never triggers resolution and is read-only after
// construction, so concurrent use needs no synchronization.
type Namer struct {
	top        string
	included   func(*decl.Module) bool
	moduleName func(*decl.Module) string
	prefixes   map[string]string
}

// New constructs a Namer whose top-level prefix is abbreviated from the
// given framework name.
func New(frameworkName string, options ...Option) *Namer {
	n := &Namer{
		top:        Abbreviate(frameworkName),
		included:   func(*decl.Module) bool { return true },
		moduleName: func(m *decl.Module) string { return m.Name },
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

// TopPrefix returns the prefix used for declarations of the current export.
func (n *Namer) TopPrefix() string {
	return n.top
}

// ModulePrefix returns the naming prefix for the given module: the reserved
// prefix for the standard library, the top-level prefix for modules included
// in the export, and an abbreviation of the dependency's own name otherwise.
func (n *Namer) ModulePrefix(m *decl.Module) string {
	if m == nil {
		return n.top
	}
	if m.Stdlib {
		return StdlibPrefix
	}
	if n.included(m) {
		return n.top
	}
	name := n.moduleName(m)
	if prefix, ok := n.prefixes[name]; ok {
		return prefix
	}
	return Abbreviate(name)
}

// ClassName returns the external name of a class-like declaration.  The
// enclosing argument is the bare name of the lexically enclosing class, or
// empty for a top-level declaration; nested names concatenate onto it.
func (n *Namer) ClassName(d *decl.Declaration, enclosing string) ClassOrProtocolName {
	return ClassOrProtocolName{
		Prefix: n.ModulePrefix(d.Module),
		Bare:   enclosing + d.Name,
	}
}

// DescriptorName returns the external name for an already-resolved
// descriptor.  It reads the descriptor only; no resolution is triggered.  A
// descriptor in an error state short-circuits to the fixed sentinel pair.
func (n *Namer) DescriptorName(desc *resolver.Descriptor) ClassOrProtocolName {
	if desc == nil || desc.Invalid {
		return ErrorName
	}
	return ClassOrProtocolName{
		Prefix: n.ModulePrefix(desc.Module),
		Bare:   strings.ReplaceAll(desc.Name, ".", ""),
	}
}

// FileClassName returns the name of the synthetic per-file container stub
// holding the file's non-extension top-level callables.
func (n *Namer) FileClassName(f *decl.File) ClassOrProtocolName {
	return ClassOrProtocolName{
		Prefix: n.ModulePrefix(f.Module),
		Bare:   upperCamel(fileBase(f.Name)) + topLevelSuffix,
	}
}

// CategoryName returns the category name used for extension stubs generated
// from the given file.  Deriving it from the file name keeps categories from
// different files on the same class distinct.
func (n *Namer) CategoryName(f *decl.File) string {
	return upperCamel(fileBase(f.Name))
}

// Abbreviate deterministically shortens a module or framework name to a
// naming prefix: the name is split on non-alphanumeric boundaries and camel
// humps and the first letter of each word is uppercased.  A single-word name
// is used unchanged so short framework names do not collapse to meaningless
// single letters.
func Abbreviate(name string) string {
	words := splitWords(name)
	if len(words) <= 1 {
		return name
	}
	var buf strings.Builder
	for _, word := range words {
		r := []rune(word)
		buf.WriteRune(unicode.ToUpper(r[0]))
	}
	return buf.String()
}

// splitWords breaks a name on non-alphanumeric runes and lower-to-upper camel
// humps.
func splitWords(name string) (words []string) {
	var current []rune
	var prev rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}
	for _, r := range name {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
		prev = r
	}
	flush()
	return
}

// upperCamel joins the words of a name, capitalizing the first letter of
// each.
func upperCamel(name string) string {
	var buf strings.Builder
	for _, word := range splitWords(name) {
		r := []rune(word)
		buf.WriteRune(unicode.ToUpper(r[0]))
		buf.WriteString(string(r[1:]))
	}
	return buf.String()
}

// fileBase strips the directory and extension from a file path.
func fileBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
