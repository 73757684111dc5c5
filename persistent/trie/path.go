package trie

import (
	"fmt"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node visited on the way down, together with
// the edge symbol consumed at that node.
type slot[S comparable] struct {
	node *xnode[S]
	sym  S
}

func (s slot[S]) String() string {
	return fmt.Sprintf("%v@%s", s.sym, s.node)
}

// --- Path ------------------------------------------------------------------

// slotPath records the downward walk for a word, from the root to the node
// where the word ends (or to the deepest existing node of its path). It is
// the navigational parent relation during deletion: pruning climbs by folding
// over the path, so nodes never carry back-pointers to their parents.
type slotPath[S comparable] []slot[S]

func (path slotPath[S]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[S]) last() slot[S] {
	if len(path) == 0 {
		return slot[S]{}
	}
	return path[len(path)-1]
}

func (path slotPath[S]) dropLast() slotPath[S] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

func (path slotPath[S]) foldR(f func(slot[S], *xnode[S]) *xnode[S], zero *xnode[S]) *xnode[S] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}
