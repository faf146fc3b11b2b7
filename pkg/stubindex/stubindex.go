// Package stubindex renders a finished stub tree into a schemaless protobuf
// snapshot.  Downstream tooling uses snapshots to diff export surfaces
// between runs; writing one forces materialization of every stub.
package stubindex

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stackb/interop-export/pkg/protobuf"
	"github.com/stackb/interop-export/pkg/stub"
)

// Snapshot renders the stubs into a structpb.Struct.  Output is
// deterministic for a deterministic input order.
func Snapshot(stubs []stub.Stub) (*structpb.Struct, error) {
	entries := make([]interface{}, 0, len(stubs))
	for _, s := range stubs {
		entries = append(entries, stubEntry(s))
	}
	return structpb.NewStruct(map[string]interface{}{
		"stubs": entries,
	})
}

// WriteFile snapshots the stubs and writes the result to a file; json or
// binary wire format is chosen by extension.
func WriteFile(filename string, stubs []stub.Stub) error {
	snapshot, err := Snapshot(stubs)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return protobuf.WriteFile(filename, snapshot)
}

// ReadFile reads a previously written snapshot.
func ReadFile(filename string) (*structpb.Struct, error) {
	snapshot := &structpb.Struct{}
	if err := protobuf.ReadFile(filename, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func stubEntry(s stub.Stub) map[string]interface{} {
	entry := map[string]interface{}{
		"name":       s.Name().FullName(),
		"bare_name":  s.Name().Bare,
		"attributes": stringValues(s.Attributes()),
		"members":    memberNames(s.Members()),
	}
	switch s := s.(type) {
	case *stub.ClassStub:
		entry["kind"] = "class"
		if s.Category() != "" {
			entry["category"] = s.Category()
		}
		if len(s.Generics()) > 0 {
			entry["generics"] = stringValues(s.Generics())
		}
		if superclass := s.Superclass(); superclass != nil {
			entry["superclass"] = superclass.FullName()
		}
		if protocols := s.Protocols(); len(protocols) > 0 {
			entry["protocols"] = stringValues(protocols)
		}
	case *stub.ProtocolStub:
		entry["kind"] = "protocol"
	default:
		// A stub variant without a snapshot rule is a coverage bug.
		panic(fmt.Sprintf("no snapshot rule for stub type %T", s))
	}
	return entry
}

func memberNames(members []*stub.Member) []interface{} {
	names := make([]interface{}, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}

func stringValues(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
