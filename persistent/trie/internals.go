package trie

import "fmt"

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables
  holding clones of nodes.

- Mutating helpers (link, unlink, …) are only ever called on freshly created
  clones, never on nodes reachable from a published trie value.

- A new modified incarnation of a trie always is reflected by a new trie.root.

*/

// xnode is a trie node. Child nodes hang off a map keyed by edge symbol;
// `order` keeps the edge symbols in the order they were first inserted, so
// that every traversal of the children is deterministic for a given trie
// value. `word` caches the complete word ending at this node and is set iff
// `terminal` is true.
type xnode[S comparable] struct {
	children map[S]*xnode[S]
	order    []S
	word     []S
	terminal bool
}

func (node *xnode[S]) String() string {
	if node == nil {
		return "⟨nil⟩"
	}
	if node.terminal {
		return fmt.Sprintf("⟨%v:%d⟩", node.word, len(node.order))
	}
	return fmt.Sprintf("⟨·:%d⟩", len(node.order))
}

// clone copies a node one level deep: the children mapping and the edge order
// are duplicated, the child nodes themselves stay shared with the original.
func (node *xnode[S]) clone() xnode[S] {
	cow := xnode[S]{terminal: node.terminal, word: node.word}
	if len(node.children) > 0 {
		cow.children = make(map[S]*xnode[S], len(node.children))
		for sym, child := range node.children {
			cow.children[sym] = child
		}
		cow.order = append([]S(nil), node.order...)
	}
	return cow
}

// link attaches child under the edge symbol sym, keeping the insertion order
// of edges intact. Replacing an existing edge does not change its position.
func (node *xnode[S]) link(sym S, child *xnode[S]) {
	if node.children == nil {
		node.children = make(map[S]*xnode[S], 1)
	}
	if _, ok := node.children[sym]; !ok {
		node.order = append(node.order, sym)
	}
	node.children[sym] = child
}

// unlink detaches the child under the edge symbol sym.
func (node *xnode[S]) unlink(sym S) {
	assertThat(node.children != nil, "attempt to unlink edge from childless node")
	delete(node.children, sym)
	for i, s := range node.order {
		if s == sym {
			node.order = append(node.order[:i], node.order[i+1:]...)
			break
		}
	}
}

// collectWords appends every word stored in the subtree rooted at node,
// depth-first, a word before its extensions, children in edge order.
func (node *xnode[S]) collectWords(words [][]S) [][]S {
	if node.terminal {
		words = append(words, node.word)
	}
	for _, sym := range node.order {
		words = node.children[sym].collectWords(words)
	}
	return words
}

// cloneSeam clones a parent node and relinks it to an already cloned child,
// stitching the copied spine back together on the way up.
func cloneSeam[S comparable](parent slot[S], child *xnode[S]) *xnode[S] {
	tracer().Debugf("seam: parent = %s, child = %s", parent, child)
	cow := parent.node.clone()
	cow.link(parent.sym, child)
	return &cow
}

// pruneSeam is the upward half of deletion. A nil child means the child has
// been detached; an ancestor that thereby becomes childless and non-terminal
// is detached as well. The first ancestor that keeps children or is terminal
// stops the pruning, and everything above it is a plain clone-and-relink.
func pruneSeam[S comparable](parent slot[S], child *xnode[S]) *xnode[S] {
	if child != nil {
		return cloneSeam(parent, child)
	}
	tracer().Debugf("prune: parent = %s", parent)
	cow := parent.node.clone()
	cow.unlink(parent.sym)
	if len(cow.children) == 0 && !cow.terminal {
		return nil
	}
	return &cow
}

// --- Helpers ---------------------------------------------------------------

func copyWord[S comparable](word []S) []S {
	return append(make([]S, 0, len(word)), word...)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("trie: "+msg, msgargs...)
		panic(msg)
	}
}
