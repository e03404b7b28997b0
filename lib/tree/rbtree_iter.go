package tree

import (
	"iter"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/queue"
)

// All traversals are lazy and restartable. Each range over the
// returned sequence walks the tree again from the root. Mutating
// the tree while ranging is not supported.

func (tree *rbTree[K, V]) newStack() []*rbNode[K, V] {
	// 2*log2(n+1) bounds the depth, 64 covers any realistic tree.
	return make([]*rbNode[K, V], 0, 64)
}

// PreOrder visits node, left, right.
func (tree *rbTree[K, V]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		if tree.root == tree.sentinel {
			return
		}
		stack := append(tree.newStack(), tree.root)
		for len(stack) > 0 {
			aux := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(aux.key) {
				return
			}
			if aux.right != tree.sentinel {
				stack = append(stack, aux.right)
			}
			if aux.left != tree.sentinel {
				stack = append(stack, aux.left)
			}
		}
	}
}

// inOrder feeds fn the nodes in key order until it returns false.
func (tree *rbTree[K, V]) inOrder(fn func(node *rbNode[K, V]) bool) {
	stack := tree.newStack()
	for aux := tree.root; aux != tree.sentinel || len(stack) > 0; {
		for ; aux != tree.sentinel; aux = aux.left {
			stack = append(stack, aux)
		}
		aux = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(aux) {
			return
		}
		aux = aux.right
	}
}

// InOrder visits left, node, right, i.e. the keys sorted.
func (tree *rbTree[K, V]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.inOrder(func(node *rbNode[K, V]) bool {
			return yield(node.key)
		})
	}
}

// PostOrder visits left, right, node.
func (tree *rbTree[K, V]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		var (
			stack     = tree.newStack()
			lastVisit *rbNode[K, V]
		)
		for aux := tree.root; aux != tree.sentinel || len(stack) > 0; {
			if aux != tree.sentinel {
				stack = append(stack, aux)
				aux = aux.left
				continue
			}
			top := stack[len(stack)-1]
			if top.right != tree.sentinel && top.right != lastVisit {
				aux = top.right
				continue
			}
			if !yield(top.key) {
				return
			}
			lastVisit = top
			stack = stack[:len(stack)-1]
		}
	}
}

type levelNode[K infra.OrderedKey, V any] struct {
	node  *rbNode[K, V]
	depth int
}

// levelOrder feeds fn every node breadth first with its depth, the root is at 1.
func (tree *rbTree[K, V]) levelOrder(fn func(node *rbNode[K, V], depth int) bool) {
	if tree.root == tree.sentinel {
		return
	}
	q := queue.NewLinkedQueue[levelNode[K, V]]()
	q.Enqueue(levelNode[K, V]{node: tree.root, depth: 1})
	for !q.IsEmpty() {
		e, _ := q.Dequeue()
		if !fn(e.node, e.depth) {
			return
		}
		if e.node.left != tree.sentinel {
			q.Enqueue(levelNode[K, V]{node: e.node.left, depth: e.depth + 1})
		}
		if e.node.right != tree.sentinel {
			q.Enqueue(levelNode[K, V]{node: e.node.right, depth: e.depth + 1})
		}
	}
}

// LevelOrder visits the nodes breadth first, left to right.
func (tree *rbTree[K, V]) LevelOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.levelOrder(func(node *rbNode[K, V], _ int) bool {
			return yield(node.key)
		})
	}
}

// Foreach is an in-order walk exposing the colors.
func (tree *rbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	if action == nil {
		return
	}
	idx := int64(0)
	tree.inOrder(func(node *rbNode[K, V]) bool {
		if !action(idx, node.color, node.key, node.val) {
			return false
		}
		idx++
		return true
	})
}

func (tree *rbTree[K, V]) Height() int {
	height := 0
	tree.levelOrder(func(_ *rbNode[K, V], depth int) bool {
		height = max(height, depth)
		return true
	})
	return height
}
