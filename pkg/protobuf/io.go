package protobuf

import (
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type marshaler func(m protoreflect.ProtoMessage) ([]byte, error)
type unmarshaler func(b []byte, m protoreflect.ProtoMessage) error

func unmarshalerForFilename(filename string) unmarshaler {
	if filepath.Ext(filename) == ".json" {
		return protojson.Unmarshal
	}
	return proto.Unmarshal
}

func marshalerForFilename(filename string) marshaler {
	if filepath.Ext(filename) == ".json" {
		marshaler := protojson.MarshalOptions{
			Multiline: true,
			Indent:    "  ",
		}
		return marshaler.Marshal
	}
	return proto.Marshal
}

// ReadFile reads a proto message from a file; json or binary wire format is
// chosen by extension.
func ReadFile(filename string, message protoreflect.ProtoMessage) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %q: %w", filename, err)
	}
	if err := unmarshalerForFilename(filename)(data, message); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

// WriteFile writes a proto message to a file; json or binary wire format is
// chosen by extension.
func WriteFile(filename string, message protoreflect.ProtoMessage) error {
	data, err := marshalerForFilename(filename)(message)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
