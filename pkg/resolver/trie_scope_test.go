package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/interop-export/pkg/resolver"
)

func TestTrieScopeGetSymbol(t *testing.T) {
	for name, tc := range map[string]struct {
		known []*resolver.Symbol
		query string
		want  string // name of the symbol found, empty for a miss
	}{
		"exact match": {
			known: []*resolver.Symbol{
				{Kind: resolver.SymbolClass, Name: "app.Widget"},
			},
			query: "app.Widget",
			want:  "app.Widget",
		},
		"deepest symbol along the path wins": {
			known: []*resolver.Symbol{
				{Kind: resolver.SymbolClass, Name: "app.Widget"},
				{Kind: resolver.SymbolClass, Name: "app.Widget.Handle"},
			},
			query: "app.Widget.Handle.Missing",
			want:  "app.Widget.Handle",
		},
		"miss": {
			known: []*resolver.Symbol{
				{Kind: resolver.SymbolClass, Name: "app.Widget"},
			},
			query: "other.Widget",
			want:  "",
		},
	} {
		t.Run(name, func(t *testing.T) {
			scope := resolver.NewTrieScope()
			for _, symbol := range tc.known {
				if err := scope.PutSymbol(symbol); err != nil {
					t.Fatal(err)
				}
			}
			got, ok := scope.GetSymbol(tc.query)
			if tc.want == "" {
				if ok {
					t.Fatalf("GetSymbol: want miss, got %v", got)
				}
				return
			}
			if !ok {
				t.Fatalf("GetSymbol: want %q, got miss", tc.want)
			}
			if got.Name != tc.want {
				t.Errorf("GetSymbol: want %q, got %q", tc.want, got.Name)
			}
		})
	}
}

func TestTrieScopeGetSymbols(t *testing.T) {
	scope := resolver.NewTrieScope()
	for _, symbol := range []*resolver.Symbol{
		{Kind: resolver.SymbolClass, Name: "app.ui.Window"},
		{Kind: resolver.SymbolClass, Name: "app.ui.Button"},
		{Kind: resolver.SymbolClass, Name: "app.net.Socket"},
	} {
		if err := scope.PutSymbol(symbol); err != nil {
			t.Fatal(err)
		}
	}

	var names []string
	for _, symbol := range scope.GetSymbols("app.ui") {
		names = append(names, symbol.Name)
	}
	want := []string{"app.ui.Button", "app.ui.Window"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("GetSymbols (-want +got):\n%s", diff)
	}
}
