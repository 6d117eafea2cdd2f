// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Tree holds the persistent state of an element and its children.
type Tree struct {
	Tag      string
	State    any
	Children []Tree
}

// NewTree builds a fresh state tree for e.
func NewTree(e Element) Tree {
	t := Tree{Tag: e.Tag(), State: e.NewState()}
	children := e.Children()
	if len(children) > 0 {
		t.Children = make([]Tree, len(children))
		for i, c := range children {
			t.Children[i] = NewTree(c)
		}
	}
	return t
}

// Diff reconciles t with e. State survives where the tag at the same
// position is unchanged.
func (t *Tree) Diff(e Element) {
	if t.Tag != e.Tag() {
		*t = NewTree(e)
		return
	}
	children := e.Children()
	if len(t.Children) > len(children) {
		t.Children = t.Children[:len(children)]
	}
	for i, c := range children {
		if i < len(t.Children) {
			t.Children[i].Diff(c)
			continue
		}
		t.Children = append(t.Children, NewTree(c))
	}
}

// Cache carries widget state from one UserInterface to the next. The zero
// value is an empty cache.
type Cache struct {
	tree *Tree
}

// NewCache returns an empty cache.
func NewCache() Cache { return Cache{} }

// Empty reports whether the cache holds no state.
func (c Cache) Empty() bool { return c.tree == nil }
