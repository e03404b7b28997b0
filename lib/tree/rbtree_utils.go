package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xalgo/lib/infra"
)

// rbtree rule validation utilities over the read-only views,
// a nil link is a black sentinel leaf.

func isBlack[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return node == nil || node.Color() == Black
}

func isRed[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return node != nil && node.Color() == Red
}

// blackDepthTo counts the black nodes from target up to the root, both inclusive.
func blackDepthTo[K infra.OrderedKey, V any](target RBNode[K, V]) int {
	depth := 0
	for aux := target; aux != nil; aux = aux.Parent() {
		if isBlack[K, V](aux) {
			depth++
		}
	}
	return depth
}

// inorder walks the views in key order until fn returns false.
func inorder[K infra.OrderedKey, V any](tree RBTree[K, V], fn func(node RBNode[K, V]) bool) {
	stack := make([]RBNode[K, V], 0, 64)
	defer func() {
		clear(stack)
	}()
	for aux := tree.Root(); aux != nil || len(stack) > 0; {
		for ; aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
		aux = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(aux) {
			return
		}
		aux = aux.Right()
	}
}

// RedViolationValidate checks that no red node has a red child.
func RedViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	var err error
	inorder[K, V](tree, func(node RBNode[K, V]) bool {
		if isRed[K, V](node) && (isRed[K, V](node.Left()) || isRed[K, V](node.Right())) {
			err = fmt.Errorf("%w: red node %v has a red child", ErrRedViolation, node.Key())
			return false
		}
		return true
	})
	return err
}

/*
<X> is a RED node.
[X] is a BLACK node (or the sentinel).

	        [13]
	        /  \
	     <8>    [15]
	     / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            <16>

Every node missing a child is the parent of a sentinel leaf, the black
depth from each of them to the root must be the same.
*/
func BlackViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	blackDepth := -1
	var err error
	inorder[K, V](tree, func(node RBNode[K, V]) bool {
		if node.Left() != nil && node.Right() != nil {
			return true
		}
		depth := blackDepthTo[K, V](node)
		if blackDepth < 0 {
			blackDepth = depth
		} else if depth != blackDepth {
			err = fmt.Errorf("%w: black depth %d at %v, expected %d",
				ErrBlackViolation, depth, node.Key(), blackDepth)
			return false
		}
		return true
	})
	return err
}

// OrderViolationValidate checks that the in-order keys never decrease under cmp.
func OrderViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V], cmp infra.OrderedKeyComparator[K]) error {
	if cmp == nil {
		cmp = infra.DefaultOrderedKeyComparator[K]
	}
	var (
		prev    RBNode[K, V]
		err     error
		visited int64
	)
	inorder[K, V](tree, func(node RBNode[K, V]) bool {
		visited++
		if prev != nil && cmp(prev.Key(), node.Key()) > 0 {
			err = fmt.Errorf("%w: %v is visited before %v", ErrOrderViolation, prev.Key(), node.Key())
			return false
		}
		prev = node
		return true
	})
	if err == nil && visited != tree.Len() {
		err = fmt.Errorf("%w: %d nodes reachable, %d counted", ErrCountViolation, visited, tree.Len())
	}
	return err
}

// linkViolationValidate checks the parent links and that the sentinel is untouched.
func (tree *rbTree[K, V]) linkViolationValidate() error {
	var (
		zero K
		s    = tree.sentinel
		err  error
	)
	if s.color != Black || s.parent != nil || s.left != nil || s.right != nil || s.key != zero || s.tree != nil {
		err = multierr.Append(err, fmt.Errorf("%w: the sentinel has been written", ErrLinkViolation))
	}
	if tree.root != s && tree.root.parent != s {
		err = multierr.Append(err, fmt.Errorf("%w: the root parent is not the sentinel", ErrLinkViolation))
	}
	tree.inOrder(func(node *rbNode[K, V]) bool {
		if node.tree != tree {
			err = multierr.Append(err, fmt.Errorf("%w: %v is not owned by the tree", ErrLinkViolation, node.key))
			return false
		}
		for _, child := range []*rbNode[K, V]{node.left, node.right} {
			if child != s && child.parent != node {
				err = multierr.Append(err, fmt.Errorf("%w: %v has a stale parent", ErrLinkViolation, child.key))
				return false
			}
		}
		return true
	})
	return err
}

// Validate aggregates every broken invariant.
func (tree *rbTree[K, V]) Validate() error {
	var err error
	if tree.root.color != Black {
		err = multierr.Append(err, ErrRootViolation)
	}
	return multierr.Combine(
		err,
		tree.linkViolationValidate(),
		RedViolationValidate[K, V](tree),
		BlackViolationValidate[K, V](tree),
		OrderViolationValidate[K, V](tree, tree.cmp),
	)
}
