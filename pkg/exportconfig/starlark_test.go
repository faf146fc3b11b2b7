package exportconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/interop-export/pkg/exportconfig"
	"github.com/stackb/interop-export/pkg/testutil"
)

func loadString(t *testing.T, content string) (*exportconfig.Config, error) {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "export.star")
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return exportconfig.LoadFile(filename, testutil.NewTestLogger(t).Printf)
}

func TestLoadFile(t *testing.T) {
	config, err := loadString(t, `
framework_name = "MyCoolFramework"
support_generics = True
include = ["corp/**", "shared-*"]
module_prefixes = {"third-party-http": "TPH"}

print("loaded config for " + framework_name)
`)
	if err != nil {
		t.Fatal(err)
	}
	want := &exportconfig.Config{
		FrameworkName:   "MyCoolFramework",
		SupportGenerics: true,
		Include:         []string{"corp/**", "shared-*"},
		Prefixes:        map[string]string{"third-party-http": "TPH"},
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("LoadFile (-want +got):\n%s", diff)
	}
}

func TestLoadFileMinimal(t *testing.T) {
	config, err := loadString(t, `framework_name = "App"`)
	if err != nil {
		t.Fatal(err)
	}
	if config.SupportGenerics {
		t.Error("SupportGenerics must default to false")
	}
	if len(config.Include) != 0 {
		t.Errorf("Include must default to empty, got %v", config.Include)
	}
}

func TestLoadFileErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		content string
		want    string
	}{
		"missing framework_name": {
			content: `include = ["corp/**"]`,
			want:    "framework_name must be set",
		},
		"empty framework_name": {
			content: `framework_name = ""`,
			want:    "framework_name must be set",
		},
		"framework_name type": {
			content: `framework_name = 42`,
			want:    "framework_name: want string",
		},
		"support_generics type": {
			content: "framework_name = \"App\"\nsupport_generics = \"yes\"",
			want:    "support_generics: want bool",
		},
		"include element type": {
			content: "framework_name = \"App\"\ninclude = [1]",
			want:    "include: want string element",
		},
		"module_prefixes value type": {
			content: "framework_name = \"App\"\nmodule_prefixes = {\"m\": 1}",
			want:    "want string value",
		},
		"evaluation failure": {
			content: `framework_name = undefined_symbol`,
			want:    "undefined: undefined_symbol",
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := loadString(t, tc.content)
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}
