package resolver

import (
	"sort"
	"strings"

	"github.com/dghubble/trie"
)

// TrieScope implements Scope using a trie keyed by dotted qualified names.
type TrieScope struct {
	trie *trie.PathTrie
}

// NewTrieScope constructs a new TrieScope.
func NewTrieScope() *TrieScope {
	return &TrieScope{
		trie: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: nameSegmenter,
		}),
	}
}

// GetSymbol implements part of the resolver.Scope interface.  Lookup walks
// the dotted path and returns the deepest symbol along it, so a nested name
// resolves to its innermost known enclosing class.
func (s *TrieScope) GetSymbol(name string) (*Symbol, bool) {
	var last interface{}
	s.trie.WalkPath(name, func(key string, value interface{}) error {
		last = value
		return nil
	})
	if last == nil {
		return nil, false
	}
	return last.(*Symbol), true
}

// GetSymbols implements part of the resolver.Scope interface.
func (s *TrieScope) GetSymbols(prefix string) (symbols []*Symbol) {
	s.trie.Walk(func(key string, value interface{}) error {
		if strings.HasPrefix(key, prefix) {
			symbols = append(symbols, value.(*Symbol))
		}
		return nil
	})
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Name < symbols[j].Name
	})
	return
}

// PutSymbol implements part of the Scope interface.
func (s *TrieScope) PutSymbol(symbol *Symbol) error {
	s.trie.Put(symbol.Name, symbol)
	return nil
}

// String implements the fmt.Stringer interface.
func (s *TrieScope) String() string {
	var lines []string
	s.trie.Walk(func(key string, value interface{}) error {
		lines = append(lines, value.(*Symbol).String())
		return nil
	})
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// nameSegmenter segments string key paths by dot separators. For example,
// "a.b.c" -> ("a", 2), (".b", 4), (".c", -1) in successive calls. It does
// not allocate any heap memory.
func nameSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
