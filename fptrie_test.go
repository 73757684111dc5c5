package fptrie_test

import (
	"testing"

	"github.com/npillmayer/fp"
	"github.com/npillmayer/fptrie"
	"github.com/npillmayer/fptrie/persistent/trie"
)

func TestCurriedWith(t *testing.T) {
	insert := fptrie.With([]rune("hello"))
	tr := insert(trie.Trie[rune]{})
	if !tr.Has([]rune("hello")) {
		t.Error("expected curried insertion to store 'hello', didn't")
	}
}

func TestCurriedWithout(t *testing.T) {
	tr := trie.Of([]rune("a"), []rune("aa"))
	tr = fptrie.Without([]rune("a"))(tr)
	if tr.Has([]rune("a")) || !tr.Has([]rune("aa")) {
		t.Error("expected curried deletion to delegate to WithDeleted, didn't")
	}
}

func TestCurriedPredicates(t *testing.T) {
	tr := trie.Of([]rune("hello"))
	if !fptrie.Has([]rune("hello"))(tr) {
		t.Error("expected curried Has to find 'hello', didn't")
	}
	if fptrie.HasPrefixOf([]rune("hell"))(tr) {
		t.Error("did not expect curried HasPrefixOf to match 'hell'")
	}
	if !fptrie.HasPrefixOf([]rune("hello world"))(tr) {
		t.Error("expected curried HasPrefixOf to match 'hello world', didn't")
	}
}

func TestCurriedSearch(t *testing.T) {
	tr := trie.Of([]rune("hello"), []rune("hello world"), []rune("world"))
	matches := fptrie.Search([]rune("hello"))(tr)
	if len(matches) != 2 {
		t.Errorf("expected curried search to yield 2 words, got %d", len(matches))
	}
}

func TestCurriedComposition(t *testing.T) {
	// insert a word, then test membership, as one composed pipeline step
	h := fp.Compose(fptrie.With([]rune("hello")), fptrie.Has([]rune("hello")))
	if !h(trie.Trie[rune]{}) {
		t.Error("expected composed insert∘has pipeline to yield true, didn't")
	}
	g := fp.Compose(fptrie.With([]rune("hello")), fptrie.Without([]rune("hello")))
	if g(trie.Trie[rune]{}).Has([]rune("hello")) {
		t.Error("expected composed insert∘delete pipeline to yield an empty trie, didn't")
	}
}

func TestCurriedLongestPrefixOf(t *testing.T) {
	tr := trie.Of([]rune("he"), []rune("hello"))
	match, found := fptrie.LongestPrefixOf([]rune("hello!"))(tr)
	if !found || string(match) != "hello" {
		t.Errorf("expected longest stored prefix 'hello', got %q", string(match))
	}
}
