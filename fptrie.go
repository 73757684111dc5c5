/*
Package fptrie provides a point-free surface for the persistent trie in
persistent/trie: every operation comes as op(word) returning a function over
tries, ready for pipelining and composition (e.g. with fp.Compose). The
wrappers reorder arguments only and delegate to the trie unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fptrie

import (
	"github.com/npillmayer/fptrie/persistent/trie"
)

// With returns a function inserting word into a trie.
func With[S comparable](word []S) func(trie.Trie[S]) trie.Trie[S] {
	return func(t trie.Trie[S]) trie.Trie[S] {
		return t.With(word)
	}
}

// Without returns a function deleting word from a trie.
func Without[S comparable](word []S) func(trie.Trie[S]) trie.Trie[S] {
	return func(t trie.Trie[S]) trie.Trie[S] {
		return t.WithDeleted(word)
	}
}

// Has returns a predicate testing a trie for exact membership of word.
func Has[S comparable](word []S) func(trie.Trie[S]) bool {
	return func(t trie.Trie[S]) bool {
		return t.Has(word)
	}
}

// Search returns a function collecting every stored word of a trie that has
// prefix as a prefix.
func Search[S comparable](prefix []S) func(trie.Trie[S]) [][]S {
	return func(t trie.Trie[S]) [][]S {
		return t.Search(prefix)
	}
}

// HasPrefixOf returns a predicate testing whether some word stored in a trie
// is a prefix of word.
func HasPrefixOf[S comparable](word []S) func(trie.Trie[S]) bool {
	return func(t trie.Trie[S]) bool {
		return t.HasPrefixOf(word)
	}
}

// LongestPrefixOf returns a function selecting the longest word stored in a
// trie that is a prefix of word.
func LongestPrefixOf[S comparable](word []S) func(trie.Trie[S]) ([]S, bool) {
	return func(t trie.Trie[S]) ([]S, bool) {
		return t.LongestPrefixOf(word)
	}
}
