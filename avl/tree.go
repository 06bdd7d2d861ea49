// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl provides an ordered key-value index backed by an AVL tree.
//
// Every Insert and Remove rebalances the nodes on its path, so that sibling
// subtree heights never differ by more than one and lookups stay
// logarithmic. A Tree is not safe for concurrent use; callers that share
// one between goroutines must serialize access themselves.
package avl

import (
	"cmp"
	"iter"
)

// Tree is an ordered map from K to V. The zero value is not usable, create
// trees with New or NewFunc.
type Tree[K, V any] struct {
	root    *node[K, V]
	size    int
	compare func(a, b K) int
}

// New returns an empty tree ordering keys with cmp.Compare.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty tree ordering keys with compare, which must
// define a strict total order: negative when a < b, zero when a == b and
// positive when a > b.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{compare: compare}
}

// Insert stores value under key. If key is already present its value is
// overwritten and no node is added.
func (tree *Tree[K, V]) Insert(key K, value V) {
	var created bool
	tree.root, created = tree.insertRecursive(tree.root, key, value)
	if created {
		tree.size++
	}
}

func (tree *Tree[K, V]) insertRecursive(n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return newLeaf(key, value), true
	}

	var created bool
	switch c := tree.compare(key, n.key); {
	case c < 0:
		n.left, created = tree.insertRecursive(n.left, key, value)
	case c > 0:
		n.right, created = tree.insertRecursive(n.right, key, value)
	default:
		// last write wins
		n.value = value
		return n, false
	}

	if !created {
		return n, false
	}
	return n.balance(), true
}

// Remove deletes key from the tree and reports whether it was present.
// Removing a missing key leaves the tree untouched.
func (tree *Tree[K, V]) Remove(key K) bool {
	var removed bool
	tree.root, removed = tree.removeRecursive(tree.root, key)
	if removed {
		tree.size--
	}
	return removed
}

func (tree *Tree[K, V]) removeRecursive(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false // Key not found
	}

	var removed bool
	switch c := tree.compare(key, n.key); {
	case c < 0:
		n.left, removed = tree.removeRecursive(n.left, key)
	case c > 0:
		n.right, removed = tree.removeRecursive(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}

		// Two children: take over the in-order successor's entry and
		// remove the successor, which has no left child.
		successor := n.right.findMin()
		n.key, n.value = successor.key, successor.value
		n.right, _ = tree.removeRecursive(n.right, successor.key)
		removed = true
	}

	if !removed {
		return n, false
	}
	return n.balance(), true
}

// Find returns the value stored under key and whether it was found.
func (tree *Tree[K, V]) Find(key K) (V, bool) {
	return tree.searchNode(tree.root, key)
}

func (tree *Tree[K, V]) searchNode(n *node[K, V], key K) (V, bool) {
	if n == nil {
		var zero V
		return zero, false
	}

	switch c := tree.compare(key, n.key); {
	case c < 0:
		return tree.searchNode(n.left, key)
	case c > 0:
		return tree.searchNode(n.right, key)
	default:
		return n.value, true
	}
}

// InOrder calls visit for every entry in ascending key order. visit must
// not modify the tree.
func (tree *Tree[K, V]) InOrder(visit func(key K, value V)) {
	tree.root.inorder(visit)
}

// All returns an iterator over the entries in ascending key order.
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.root.walk(yield)
	}
}

// Len returns the number of entries.
func (tree *Tree[K, V]) Len() int {
	return tree.size
}

// Height returns the number of nodes on the longest root-to-leaf path, 0
// for an empty tree.
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Empty reports whether the tree holds no entries.
func (tree *Tree[K, V]) Empty() bool {
	return tree.root == nil
}
