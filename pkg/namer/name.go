package namer

import "fmt"

// ClassOrProtocolName is the external name of an exported class or protocol:
// a collision-avoiding prefix plus the bare declared name.
type ClassOrProtocolName struct {
	// Prefix is the module-derived naming prefix.
	Prefix string
	// Bare is the unprefixed declared name.
	Bare string
}

// ErrorName is the sentinel pair used when a descriptor is in an error
// state.  Naming never propagates resolution failure.
var ErrorName = ClassOrProtocolName{Prefix: "ERROR", Bare: "ERROR"}

// FullName returns the final external name.
func (n ClassOrProtocolName) FullName() string {
	return n.Prefix + n.Bare
}

// SourceNameAttribute returns the synthesized attribute recording the
// unprefixed bare name, so downstream tooling can still show a readable
// name.
func (n ClassOrProtocolName) SourceNameAttribute() string {
	return fmt.Sprintf("source_name(%q)", n.Bare)
}

// String implements fmt.Stringer
func (n ClassOrProtocolName) String() string {
	return n.FullName()
}
