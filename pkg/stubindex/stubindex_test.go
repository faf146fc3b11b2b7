package stubindex_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/stackb/interop-export/pkg/decl"
	"github.com/stackb/interop-export/pkg/namer"
	"github.com/stackb/interop-export/pkg/resolver"
	"github.com/stackb/interop-export/pkg/stub"
	"github.com/stackb/interop-export/pkg/stubindex"
)

func testStubs() []stub.Stub {
	superclass := &namer.ClassOrProtocolName{Prefix: "MCF", Bare: "Base"}
	shape := namer.ClassOrProtocolName{Prefix: "MCF", Bare: "Shape"}
	walker := namer.ClassOrProtocolName{Prefix: "MCF", Bare: "Walker"}

	classContents := func(*resolver.Descriptor) *stub.Contents {
		return &stub.Contents{
			Members: []*stub.Member{
				{Name: "area", Kind: decl.KindFunction},
				{Name: "name", Kind: decl.KindProperty},
			},
			Superclass: superclass,
			Protocols:  []string{"MCFWalker"},
		}
	}
	protocolContents := func(*resolver.Descriptor) *stub.Contents {
		return &stub.Contents{
			Members: []*stub.Member{{Name: "walk", Kind: decl.KindFunction}},
		}
	}
	resolve := func() *resolver.Descriptor {
		return &resolver.Descriptor{Name: "Shape", Qualified: "corp/app.Shape"}
	}

	return []stub.Stub{
		stub.NewClass(shape,
			[]string{stub.SubclassingRestrictedAttribute, shape.SourceNameAttribute()},
			classContents,
			stub.WithClassDescriptor(resolve),
			stub.WithGenerics([]string{"T"}),
			stub.WithCategory("Shapes")),
		stub.NewProtocol(walker,
			[]string{walker.SourceNameAttribute()},
			resolve,
			protocolContents),
	}
}

func TestSnapshot(t *testing.T) {
	snapshot, err := stubindex.Snapshot(testStubs())
	if err != nil {
		t.Fatal(err)
	}

	entries := snapshot.Fields["stubs"].GetListValue().Values
	if len(entries) != 2 {
		t.Fatalf("stubs: want 2 entries, got %d", len(entries))
	}

	class := entries[0].GetStructValue().Fields
	if got := class["name"].GetStringValue(); got != "MCFShape" {
		t.Errorf("class name: want MCFShape, got %q", got)
	}
	if got := class["kind"].GetStringValue(); got != "class" {
		t.Errorf("class kind: want class, got %q", got)
	}
	if got := class["category"].GetStringValue(); got != "Shapes" {
		t.Errorf("class category: want Shapes, got %q", got)
	}
	if got := class["superclass"].GetStringValue(); got != "MCFBase" {
		t.Errorf("class superclass: want MCFBase, got %q", got)
	}
	members := class["members"].GetListValue().Values
	if len(members) != 2 || members[0].GetStringValue() != "area" {
		t.Errorf("class members: got %v", members)
	}

	protocol := entries[1].GetStructValue().Fields
	if got := protocol["kind"].GetStringValue(); got != "protocol" {
		t.Errorf("protocol kind: want protocol, got %q", got)
	}
	if _, ok := protocol["category"]; ok {
		t.Error("protocol entry must not carry a category")
	}
}

func TestWriteReadFile(t *testing.T) {
	stubs := testStubs()
	want, err := stubindex.Snapshot(stubs)
	if err != nil {
		t.Fatal(err)
	}

	for _, ext := range []string{".json", ".pb"} {
		t.Run(ext, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "index"+ext)
			if err := stubindex.WriteFile(filename, stubs); err != nil {
				t.Fatal(err)
			}
			got, err := stubindex.ReadFile(filename)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
				t.Errorf("roundtrip (-want +got):\n%s", diff)
			}
		})
	}
}
