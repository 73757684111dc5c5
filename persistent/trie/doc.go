/*
Package trie implements a persistent (immutable) in-memory prefix tree.

A persistent trie has copy-on-write behaviour: each “modification” of the trie
(insertion or deletion of a word) creates a copy, leaving the original
unmodified. Under the hood, copy-on-write clones only the nodes on the path
touched by an operation, and shares every untouched subtree between the
original and the copy, transparently to clients.

Tries store sets of words, where a word is a sequence of symbols. Symbols may
be anything usable as a map key: runes, bytes, or arbitrary tokens. Besides
exact membership, tries answer prefix queries in both directions: enumerating
every stored word extending a query prefix, and testing whether some stored
word is itself a prefix of a query.

Immutable tries are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fptrie.trie'.
func tracer() tracing.Trace {
	return tracing.Select("fptrie.trie")
}
