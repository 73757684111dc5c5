package trie

// Trie is an in-memory persistent prefix tree over symbols of type S, storing
// sets of words (symbol sequences). An empty instance is usable as an empty
// trie, i.e. this is legal:
//
//     t := trie.Trie[rune]{}.With([]rune("hello"))
//
// returning a trie containing the single word "hello".
//
// Every operation leaves its receiver unchanged; operations that modify the
// word set return a new trie incarnation sharing all untouched subtrees with
// the old one. Clients must never modify word slices handed out by a trie.
type Trie[S comparable] struct {
	root   *xnode[S]
	length int
}

// Of constructs a trie containing the given words.
//
// Use it like this:
//
//     t := trie.Of([]rune("hello"), []rune("world"))
//
func Of[S comparable](first []S, rest ...[]S) Trie[S] {
	t := Trie[S]{}.With(first)
	for _, word := range rest {
		t = t.With(word)
	}
	return t
}

// FromSlice folds With over an empty trie, inserting words in slice order.
func FromSlice[S comparable](words [][]S) Trie[S] {
	var t Trie[S]
	for _, word := range words {
		t = t.With(word)
	}
	return t
}

// --- API -------------------------------------------------------------------

// With returns a copy of a trie with word inserted. If word is already
// present, the trie is returned unchanged (insertion is idempotent). The
// empty word is a legal word, stored as a terminal mark on the root.
func (t Trie[S]) With(word []S) Trie[S] {
	path, complete := t.locate(word, make(slotPath[S], 0, len(word)+1))
	tracer().Debugf("insert: slot path = %s", path)
	if complete {
		end := path.last()
		if end.node.terminal {
			return t // word already present, no need for modification
		}
		cow := end.node.clone() // copy-on-write
		cow.terminal = true
		cow.word = copyWord(word)
		root := path.dropLast().foldR(cloneSeam[S], &cow)
		return Trie[S]{root: root, length: t.length + 1}
	}
	// grow a fresh chain for the missing suffix, bottom-up
	d := len(path) - 1 // depth of the deepest existing node; -1 for a virgin trie
	tail := &xnode[S]{terminal: true, word: copyWord(word)}
	for i := len(word) - 1; i > d; i-- {
		node := &xnode[S]{}
		node.link(word[i], tail)
		tail = node
	}
	if d < 0 { // virgin trie => fresh chain is the whole tree
		return Trie[S]{root: tail, length: 1}
	}
	end := path.last()
	cow := end.node.clone() // copy-on-write
	cow.link(end.sym, tail)
	tracer().Debugf("insert: attached fresh chain below %s", &cow)
	root := path.dropLast().foldR(cloneSeam[S], &cow)
	return Trie[S]{root: root, length: t.length + 1}
}

// WithDeleted returns a copy of a trie with word deleted, if present. If word
// is not found, the trie is returned unchanged. A deleted word that other
// words extend leaves its node in place as a branching point; a childless
// node is detached, as is every ancestor left childless and non-terminal by
// that. Deleting the empty word is a defined no-op.
func (t Trie[S]) WithDeleted(word []S) Trie[S] {
	if len(word) == 0 {
		return t
	}
	path, complete := t.locate(word, make(slotPath[S], 0, len(word)+1))
	if !complete || !path.last().node.terminal {
		return t // word not present, no need for modification
	}
	tracer().Debugf("deletion: slot path = %s", path)
	end := path.last()
	var child *xnode[S]
	if len(end.node.children) > 0 {
		// other words extend this one => demote the node to a branching point
		cow := end.node.clone() // copy-on-write
		cow.terminal = false
		cow.word = nil
		child = &cow
	} // else: childless leaf, child stays nil and the seam prunes it
	path = path.dropLast()
	child = path[1:].foldR(pruneSeam[S], child)
	// the root takes part in the seam but is never pruned itself
	rootSlot := path[0]
	cow := rootSlot.node.clone()
	if child == nil {
		cow.unlink(rootSlot.sym)
	} else {
		cow.link(rootSlot.sym, child)
	}
	tracer().Debugf("deletion: new root = %s", &cow)
	return Trie[S]{root: &cow, length: t.length - 1}
}

// Has reports whether word exactly matches a stored word. A word that is
// merely a proper prefix of stored words is not contained:
// Has of "hel" over a trie storing just "hello" is false.
func (t Trie[S]) Has(word []S) bool {
	node := t.root
	if node == nil {
		return false
	}
	for _, sym := range word {
		child, ok := node.children[sym]
		if !ok {
			return false
		}
		node = child
	}
	return node.terminal
}

// Search returns every stored word that has prefix as a prefix; the empty
// prefix matches every stored word. Words are collected depth-first, a word
// before its extensions, with child branches visited in the order their edge
// symbols were first inserted, a deterministic order for a given trie value.
func (t Trie[S]) Search(prefix []S) [][]S {
	node := t.root
	if node == nil {
		return nil
	}
	for _, sym := range prefix {
		child, ok := node.children[sym]
		if !ok {
			return nil
		}
		node = child
	}
	return node.collectWords(nil)
}

// HasPrefixOf reports whether some stored word is a prefix of word. The walk
// short-circuits at the first terminal node met; with the empty word stored,
// every input matches.
func (t Trie[S]) HasPrefixOf(word []S) bool {
	node := t.root
	if node == nil {
		return false
	}
	if node.terminal {
		return true
	}
	for _, sym := range word {
		child, ok := node.children[sym]
		if !ok {
			return false
		}
		node = child
		if node.terminal {
			return true
		}
	}
	return false
}

// LongestPrefixOf returns the longest stored word that is a prefix of word,
// together with found=true if there is one.
func (t Trie[S]) LongestPrefixOf(word []S) (match []S, found bool) {
	node := t.root
	if node == nil {
		return nil, false
	}
	if node.terminal {
		match, found = node.word, true
	}
	for _, sym := range word {
		child, ok := node.children[sym]
		if !ok {
			break
		}
		node = child
		if node.terminal {
			match, found = node.word, true
		}
	}
	return match, found
}

// Words returns every stored word, in search order.
func (t Trie[S]) Words() [][]S {
	return t.Search(nil)
}

// Len returns the number of words stored in the trie.
func (t Trie[S]) Len() int {
	return t.length
}

// IsEmpty reports whether the trie stores no words at all.
func (t Trie[S]) IsEmpty() bool {
	return t.length == 0
}

// locate walks the path for word from the root, recording a slot for every
// node visited, including the edge symbol consumed there. complete is true
// iff the full path exists; the final slot of a complete path holds the node
// where word ends, with a zero edge symbol.
func (t Trie[S]) locate(word []S, pathBuf slotPath[S]) (path slotPath[S], complete bool) {
	path = pathBuf[:0]
	if t.root == nil {
		return path, false
	}
	node := t.root // walking nodes, start at the top
	for _, sym := range word {
		path = append(path, slot[S]{node: node, sym: sym})
		child, ok := node.children[sym]
		if !ok {
			return path, false
		}
		node = child
	}
	path = append(path, slot[S]{node: node})
	return path, true
}
