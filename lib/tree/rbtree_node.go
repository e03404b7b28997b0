package tree

import "github.com/benz9527/xalgo/lib/infra"

var _ RBNode[int, struct{}] = (*rbNode[int, struct{}])(nil) // Type check assertion

// Every leaf link and the parent of the root point to the
// tree's sentinel. The sentinel is black and never written.
type rbNode[K infra.OrderedKey, V any] struct {
	parent *rbNode[K, V]
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	tree   *rbTree[K, V] // The owner, nil for the sentinel and once deleted.
	key    K
	val    V
	color  RBColor
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *rbNode[K, V]) isDetached() bool {
	return node == nil || node.tree == nil
}

// view hides the sentinel behind a nil interface.
func (node *rbNode[K, V]) view(link *rbNode[K, V]) RBNode[K, V] {
	if node.isDetached() || link == nil || link == node.tree.sentinel {
		return nil
	}
	return link
}

func (node *rbNode[K, V]) Left() RBNode[K, V] {
	if node.isDetached() {
		return nil
	}
	return node.view(node.left)
}

func (node *rbNode[K, V]) Right() RBNode[K, V] {
	if node.isDetached() {
		return nil
	}
	return node.view(node.right)
}

func (node *rbNode[K, V]) Parent() RBNode[K, V] {
	if node.isDetached() {
		return nil
	}
	return node.view(node.parent)
}

func (node *rbNode[K, V]) child(dir RBDirection) *rbNode[K, V] {
	if dir == Left {
		return node.left
	}
	return node.right
}

// detach drops the links so a deleted node cannot be
// walked back into the tree.
func (node *rbNode[K, V]) detach() {
	node.parent, node.left, node.right = nil, nil, nil
	node.tree = nil
}
