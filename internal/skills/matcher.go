package skills

import (
	"sort"
)

// Matcher finds vocabulary phrases in free text. It is built once from a Vocabulary
// and is safe for concurrent use since it is never mutated after construction.
type Matcher struct {
	vocabulary *Vocabulary
	root       *trieNode
}

type trieKey struct {
	text        string
	spaceBefore bool
}

type trieNode struct {
	children map[trieKey]*trieNode
	phrase   string
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[trieKey]*trieNode)}
}

// NewMatcher compiles the vocabulary into a token trie.
func NewMatcher(v *Vocabulary) *Matcher {
	m := &Matcher{
		vocabulary: v,
		root:       newTrieNode(),
	}

	for _, phrase := range v.phrases {
		tokens := Tokenize(phrase)
		if len(tokens) == 0 {
			continue
		}

		node := m.root
		for i, tok := range tokens {
			key := trieKey{text: tok.Text, spaceBefore: tok.SpaceBefore}
			// the first token may follow anything
			if i == 0 {
				key.spaceBefore = false
			}
			next, ok := node.children[key]
			if !ok {
				next = newTrieNode()
				node.children[key] = next
			}
			node = next
		}
		if node.phrase == "" {
			node.phrase = phrase
		}
	}

	return m
}

// Vocabulary returns the vocabulary the matcher was built from.
func (m *Matcher) Vocabulary() *Vocabulary {
	return m.vocabulary
}

// Extract returns the sorted set of vocabulary phrases present in text. A phrase matches
// when its tokens appear contiguously and in order, ignoring case, with the same
// spacing between tokens ("c + +" is not "c++"). The result is never nil.
func (m *Matcher) Extract(text string) []string {
	tokens := Tokenize(text)
	found := make(map[string]struct{})

	for i := range tokens {
		node := m.root.children[trieKey{text: tokens[i].Text}]
		for j := i; node != nil; {
			if node.phrase != "" {
				found[node.phrase] = struct{}{}
			}
			j++
			if j >= len(tokens) {
				break
			}
			node = node.children[trieKey{text: tokens[j].Text, spaceBefore: tokens[j].SpaceBefore}]
		}
	}

	out := make([]string, 0, len(found))
	for phrase := range found {
		out = append(out, phrase)
	}
	sort.Strings(out)
	return out
}
