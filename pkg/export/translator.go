package export

import (
	"log"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/stackb/interop-export/pkg/decl"
	"github.com/stackb/interop-export/pkg/exportconfig"
	"github.com/stackb/interop-export/pkg/namer"
	"github.com/stackb/interop-export/pkg/resolver"
	"github.com/stackb/interop-export/pkg/stub"
)

// baseClassName is the bare name of the root scaffolding class every
// exported class descends from.
const baseClassName = "Base"

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithProgress sets the progress output used by TranslateAll.
func WithProgress(output mobyprogress.Output) Option {
	return func(t *Translator) {
		t.progress = output
	}
}

// Translator turns a forest of declarations into lazily-materialized stubs.
// Skeleton construction is cheap and purely syntactic; the Resolver and
// Materializer collaborators are consulted only during receiver lookup and
// on first access to a stub's members.
type Translator struct {
	logger       zerolog.Logger
	config       *exportconfig.Config
	namer        *namer.Namer
	resolver     resolver.Resolver
	materializer stub.Materializer
	// scope indexes the classes known to the embedding environment, for
	// receiver type resolution.
	scope    resolver.Scope
	progress mobyprogress.Output
}

// New constructs a Translator.
func New(config *exportconfig.Config, res resolver.Resolver, mat stub.Materializer, scope resolver.Scope, options ...Option) *Translator {
	t := &Translator{
		logger:       zerolog.Nop(),
		config:       config,
		namer:        config.Namer(),
		resolver:     res,
		materializer: mat,
		scope:        scope,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// Namer returns the name allocator used by this translator.
func (t *Translator) Namer() *namer.Namer {
	return t.namer
}

// BaseDeclarations returns the framework-wide scaffolding stubs, independent
// of any file.
func (t *Translator) BaseDeclarations() []stub.Stub {
	name := namer.ClassOrProtocolName{Prefix: t.namer.TopPrefix(), Bare: baseClassName}
	attributes := []string{name.SourceNameAttribute()}
	return []stub.Stub{
		stub.NewClass(name, attributes, t.groupCompute(name, nil)),
	}
}

// Translate returns the stubs for one file: a class or protocol stub per
// exportable declared type (nested types included), one category stub per
// extension owner class, and at most one container stub holding the file's
// plain top-level callables.
func (t *Translator) Translate(file *decl.File) []stub.Stub {
	var stubs []stub.Stub
	var callables []*decl.Declaration

	for _, d := range file.Decls {
		switch {
		case d.ClassLike():
			stubs = append(stubs, t.classLike(d, "")...)
		case d.Callable():
			if Exportable(d) {
				callables = append(callables, d)
			}
		case d.Kind == decl.KindEnumEntry:
			// enum entries are pseudo-members, never exported on their own
		default:
			// A kind without a translation rule is a coverage bug, not a
			// recoverable runtime condition.
			log.Panicf("no translation rule for declaration kind %v: %s", d.Kind, d.Name)
		}
	}

	stubs = append(stubs, t.translateCallables(file, callables)...)

	t.logger.Debug().
		Str("file", file.Name).
		Int("stubs", len(stubs)).
		Msg("translated file")

	return stubs
}

// TranslateAll runs a whole export pass over the given files, reporting
// per-file progress when configured.  The base declarations lead the result.
func (t *Translator) TranslateAll(files []*decl.File) []stub.Stub {
	stubs := t.BaseDeclarations()
	for i, file := range files {
		stubs = append(stubs, t.Translate(file)...)
		t.writeTranslateProgress(i+1, len(files))
	}
	return stubs
}

// classLike emits the stub for one declared type and recurses into its
// nested declarations.  Nested classes are exported independently even when
// the outer stub itself was skipped.  Annotation and value classes are
// opaque: no stub, and their nested scope is not entered.
func (t *Translator) classLike(d *decl.Declaration, enclosing string) []stub.Stub {
	if d.Kind == decl.KindAnnotation || d.Value {
		return nil
	}
	var stubs []stub.Stub
	if Exportable(d) {
		stubs = append(stubs, t.classOrProtocol(d, enclosing))
	}
	for _, nested := range d.Nested {
		if nested.ClassLike() {
			stubs = append(stubs, t.classLike(nested, enclosing+d.Name)...)
		}
	}
	return stubs
}

// classOrProtocol builds the unmaterialized skeleton for a declared type.
// Construction never consults the Resolver: names and attributes are pure
// functions of the declaration.
func (t *Translator) classOrProtocol(d *decl.Declaration, enclosing string) stub.Stub {
	name := t.namer.ClassName(d, enclosing)
	skeleton := Classify(d)

	if skeleton.Protocol {
		attributes := []string{name.SourceNameAttribute()}
		return stub.NewProtocol(name, attributes, t.resolveDeclaration(d), t.protocolCompute(name))
	}

	var attributes []string
	if skeleton.Final {
		attributes = append(attributes, stub.SubclassingRestrictedAttribute)
	}
	attributes = append(attributes, name.SourceNameAttribute())

	options := []stub.ClassOption{stub.WithClassDescriptor(t.resolveDeclaration(d))}
	if t.config.SupportGenerics && len(d.TypeParams) > 0 {
		options = append(options, stub.WithGenerics(d.TypeParams))
	}
	return stub.NewClass(name, attributes, t.classCompute(name), options...)
}

// translateCallables partitions a file's top-level callables into extension
// groups and a plain list, then emits one category stub per owner class and
// at most one per-file container.  A file with no plain callables yields no
// container.
func (t *Translator) translateCallables(file *decl.File, callables []*decl.Declaration) []stub.Stub {
	groups := newExtensionGroups()
	var plain []*decl.Declaration

	for _, d := range callables {
		owner, isPlain := t.receiverOwner(d)
		switch {
		case isPlain:
			plain = append(plain, d)
		case owner != nil:
			groups.add(owner, d)
		}
	}

	var stubs []stub.Stub
	category := t.namer.CategoryName(file)
	for _, group := range groups.order {
		name := t.namer.DescriptorName(group.owner)
		attributes := []string{name.SourceNameAttribute()}
		stubs = append(stubs, stub.NewClass(name, attributes, t.groupCompute(name, group.decls), stub.WithCategory(category)))
	}
	if len(plain) > 0 {
		name := t.namer.FileClassName(file)
		attributes := []string{stub.SubclassingRestrictedAttribute, name.SourceNameAttribute()}
		stubs = append(stubs, stub.NewClass(name, attributes, t.groupCompute(name, plain)))
	}
	return stubs
}

// resolveDeclaration returns the on-demand resolution step for a stub.  A
// resolution failure degrades to the error descriptor so the rest of the
// file still exports.
func (t *Translator) resolveDeclaration(d *decl.Declaration) func() *resolver.Descriptor {
	return func() *resolver.Descriptor {
		desc, err := t.resolver.ResolveDeclaration(d)
		if err != nil || desc == nil {
			t.logger.Warn().
				Err(err).
				Str("decl", d.Name).
				Msg("declaration resolution failed; degrading to error descriptor")
			return resolver.ErrorDescriptor
		}
		return desc
	}
}

func (t *Translator) classCompute(name namer.ClassOrProtocolName) func(*resolver.Descriptor) *stub.Contents {
	return func(desc *resolver.Descriptor) *stub.Contents {
		contents, err := t.materializer.ClassContents(desc)
		if err != nil {
			return t.degrade(name, err)
		}
		return t.stripGenerics(contents)
	}
}

func (t *Translator) protocolCompute(name namer.ClassOrProtocolName) func(*resolver.Descriptor) *stub.Contents {
	return func(desc *resolver.Descriptor) *stub.Contents {
		contents, err := t.materializer.ProtocolContents(desc)
		if err != nil {
			return t.degrade(name, err)
		}
		return t.stripGenerics(contents)
	}
}

func (t *Translator) groupCompute(name namer.ClassOrProtocolName, members []*decl.Declaration) func(*resolver.Descriptor) *stub.Contents {
	return func(*resolver.Descriptor) *stub.Contents {
		contents, err := t.materializer.GroupContents(members)
		if err != nil {
			return t.degrade(name, err)
		}
		return t.stripGenerics(contents)
	}
}

// degrade logs a materialization failure and substitutes empty contents; one
// bad declaration must not block exporting the rest of the file.
func (t *Translator) degrade(name namer.ClassOrProtocolName, err error) *stub.Contents {
	t.logger.Warn().
		Err(err).
		Str("stub", name.FullName()).
		Msg("materialization failed; exporting empty stub")
	return &stub.Contents{}
}

// stripGenerics enforces the degraded zero-generics mode on materialized
// contents.
func (t *Translator) stripGenerics(contents *stub.Contents) *stub.Contents {
	if t.config.SupportGenerics || len(contents.SuperclassGenerics) == 0 {
		return contents
	}
	stripped := *contents
	stripped.SuperclassGenerics = nil
	return &stripped
}

func (t *Translator) writeTranslateProgress(current, total int) {
	if t.progress == nil {
		return
	}
	t.progress.WriteProgress(mobyprogress.Progress{
		ID:         "translate",
		Action:     "translating declarations",
		Current:    int64(current),
		Total:      int64(total),
		Units:      "files",
		LastUpdate: current == total,
	})
}
