/*
Package strie wraps the generic persistent trie for the most common use case:
sets of strings. Words are split into runes at the package boundary, queries
come back as strings; all trie semantics, including copy-on-write behaviour
and structural sharing, are those of package trie.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package strie

import (
	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/fptrie/persistent/trie"
)

// Trie is an immutable persistent trie storing a set of strings. The zero
// value is an empty trie, ready to use.
type Trie struct {
	words trie.Trie[rune]
}

// Of constructs a trie containing the given words.
func Of(first string, rest ...string) Trie {
	t := Trie{}.With(first)
	for _, word := range rest {
		t = t.With(word)
	}
	return t
}

// FromWords folds With over an empty trie, inserting words in slice order.
func FromWords(words []string) Trie {
	var t Trie
	for _, word := range words {
		t = t.With(word)
	}
	return t
}

// With returns a copy of a trie with word inserted.
func (t Trie) With(word string) Trie {
	return Trie{words: t.words.With([]rune(word))}
}

// WithDeleted returns a copy of a trie with word deleted, if present.
func (t Trie) WithDeleted(word string) Trie {
	return Trie{words: t.words.WithDeleted([]rune(word))}
}

// Has reports whether word is a stored word.
func (t Trie) Has(word string) bool {
	return t.words.Has([]rune(word))
}

// Search returns every stored word that has prefix as a prefix, in the
// deterministic order documented for trie.Search.
func (t Trie) Search(prefix string) []string {
	matches := t.words.Search([]rune(prefix))
	if matches == nil {
		return nil
	}
	words := make([]string, len(matches))
	for i, match := range matches {
		words[i] = string(match)
	}
	return words
}

// HasPrefixOf reports whether some stored word is a prefix of word.
func (t Trie) HasPrefixOf(word string) bool {
	return t.words.HasPrefixOf([]rune(word))
}

// LongestPrefixOf returns the longest stored word that is a prefix of word,
// if there is one.
func (t Trie) LongestPrefixOf(word string) maybe.Maybe[string] {
	if match, found := t.words.LongestPrefixOf([]rune(word)); found {
		return maybe.Just(string(match))
	}
	return maybe.Nothing[string]()
}

// Words returns every stored word, in search order.
func (t Trie) Words() []string {
	return t.Search("")
}

// Len returns the number of stored words.
func (t Trie) Len() int {
	return t.words.Len()
}

// IsEmpty reports whether the trie stores no words at all.
func (t Trie) IsEmpty() bool {
	return t.words.IsEmpty()
}
