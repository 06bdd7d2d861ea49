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

package avl

// node is a single entry of the tree. It exclusively owns its children and
// caches the height of the subtree it roots (a leaf has height 1).
type node[K, V any] struct {
	key    K
	value  V
	height int
	left   *node[K, V]
	right  *node[K, V]
}

func newLeaf[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, height: 1}
}

// height returns 0 for an absent subtree.
func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[K, V]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is positive when the node is left-heavy.
func (n *node[K, V]) balanceFactor() int {
	return height(n.left) - height(n.right)
}

func (n *node[K, V]) rotateRight() *node[K, V] {
	pivot := n.left
	if pivot == nil {
		panic("avl: right rotation on a node without a left child")
	}

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

func (n *node[K, V]) rotateLeft() *node[K, V] {
	pivot := n.right
	if pivot == nil {
		panic("avl: left rotation on a node without a right child")
	}

	n.right = pivot.left
	pivot.left = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// balance restores the height invariant at n after its subtree changed and
// returns the new subtree root.
func (n *node[K, V]) balance() *node[K, V] {
	n.updateHeight()

	switch bf := n.balanceFactor(); {
	case bf > 1:
		// Left-Right case
		if n.left.balanceFactor() < 0 {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	case bf < -1:
		// Right-Left case
		if n.right.balanceFactor() > 0 {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}

	return n
}

func (n *node[K, V]) findMin() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) inorder(visit func(K, V)) {
	if n == nil {
		return
	}
	n.left.inorder(visit)
	visit(n.key, n.value)
	n.right.inorder(visit)
}

// walk is inorder with early termination: it returns false once yield does.
func (n *node[K, V]) walk(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.key, n.value) && n.right.walk(yield)
}
