package stub

import (
	"github.com/stackb/interop-export/pkg/namer"
	"github.com/stackb/interop-export/pkg/resolver"
)

// SubclassingRestrictedAttribute marks a class stub whose source class is
// final.
const SubclassingRestrictedAttribute = "subclassing_restricted"

// Stub is a lazily-materializable skeleton of an exported class or protocol.
// Name and attributes are fixed at construction time and cheap; Members
// triggers materialization on first access.  Concrete stubs are *ClassStub
// and *ProtocolStub; consumers distinguish them with a type switch.
type Stub interface {
	// Name returns the external name, fixed at construction.
	Name() namer.ClassOrProtocolName
	// Attributes returns the synthesized attributes, fixed at construction.
	Attributes() []string
	// Members returns the materialized member list, computing it on first
	// call.
	Members() []*Member
}

// lazyContents is the shared lazy-materialization shape of both stub
// variants.  The resolve step runs on demand at first access, not earlier,
// and each stub owns its slots exclusively.
type lazyContents struct {
	resolve  func() *resolver.Descriptor
	compute  func(desc *resolver.Descriptor) *Contents
	descSlot LazySlot[*resolver.Descriptor]
	slot     LazySlot[*Contents]
}

// Descriptor returns the stub's resolved descriptor, resolving it on first
// call.  Category and file-container stubs have no single backing
// descriptor and return nil.
func (c *lazyContents) Descriptor() *resolver.Descriptor {
	if c.resolve == nil {
		return nil
	}
	return c.descSlot.Force(c.resolve)
}

func (c *lazyContents) contents() *Contents {
	return c.slot.Force(func() *Contents {
		return c.compute(c.Descriptor())
	})
}

// Members implements part of the Stub interface.
func (c *lazyContents) Members() []*Member {
	return c.contents().Members
}

// ClassStub is the skeleton of an exported class, category, or per-file
// container.
type ClassStub struct {
	lazyContents

	name       namer.ClassOrProtocolName
	attributes []string
	category   string
	generics   []string
}

// ClassOption configures a ClassStub at construction.
type ClassOption func(*ClassStub)

// WithCategory marks the stub as a category of the named class.
func WithCategory(category string) ClassOption {
	return func(s *ClassStub) {
		s.category = category
	}
}

// WithGenerics sets the stub's generic parameter names.
func WithGenerics(generics []string) ClassOption {
	return func(s *ClassStub) {
		s.generics = generics
	}
}

// WithClassDescriptor sets the on-demand descriptor resolution step.
func WithClassDescriptor(resolve func() *resolver.Descriptor) ClassOption {
	return func(s *ClassStub) {
		s.resolve = resolve
	}
}

// NewClass constructs an unmaterialized class stub.  Construction is cheap:
// neither resolve nor compute run until members or supertypes are first
// consulted.
func NewClass(name namer.ClassOrProtocolName, attributes []string, compute func(desc *resolver.Descriptor) *Contents, options ...ClassOption) *ClassStub {
	s := &ClassStub{
		name:       name,
		attributes: attributes,
	}
	s.compute = compute
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Name implements part of the Stub interface.
func (s *ClassStub) Name() namer.ClassOrProtocolName {
	return s.name
}

// Attributes implements part of the Stub interface.
func (s *ClassStub) Attributes() []string {
	return s.attributes
}

// Category returns the category name, or empty for a plain class stub.
func (s *ClassStub) Category() string {
	return s.category
}

// Generics returns the stub's generic parameter names.
func (s *ClassStub) Generics() []string {
	return s.generics
}

// Superclass returns the materialized superclass name, if any.
func (s *ClassStub) Superclass() *namer.ClassOrProtocolName {
	return s.contents().Superclass
}

// SuperclassGenerics returns the materialized superclass generic arguments.
func (s *ClassStub) SuperclassGenerics() []string {
	return s.contents().SuperclassGenerics
}

// Protocols returns the materialized adopted protocol names.
func (s *ClassStub) Protocols() []string {
	return s.contents().Protocols
}

// ProtocolStub is the skeleton of an exported protocol.
type ProtocolStub struct {
	lazyContents

	name       namer.ClassOrProtocolName
	attributes []string
}

// NewProtocol constructs an unmaterialized protocol stub.
func NewProtocol(name namer.ClassOrProtocolName, attributes []string, resolve func() *resolver.Descriptor, compute func(desc *resolver.Descriptor) *Contents) *ProtocolStub {
	s := &ProtocolStub{
		name:       name,
		attributes: attributes,
	}
	s.resolve = resolve
	s.compute = compute
	return s
}

// Name implements part of the Stub interface.
func (s *ProtocolStub) Name() namer.ClassOrProtocolName {
	return s.name
}

// Attributes implements part of the Stub interface.
func (s *ProtocolStub) Attributes() []string {
	return s.attributes
}
