package tree

import (
	"iter"

	"github.com/benz9527/xalgo/lib/infra"
)

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "Unknown"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

func (d RBDirection) String() string {
	switch d {
	case Left:
		return "Left"
	case Root:
		return "Root"
	case Right:
		return "Right"
	default:
	}
	return "Unknown"
}

func (d RBDirection) opposite() RBDirection {
	return -d
}

// RBNode is a read-only view of a tree node.
// Links to the sentinel leaves are reported as nil.
type RBNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

type RBTree[K infra.OrderedKey, V any] interface {
	Len() int64
	Root() RBNode[K, V]
	// Height is the number of nodes on the longest root to leaf path.
	Height() int
	// BlackHeight counts the black nodes from the root (exclusive)
	// down to a sentinel leaf (inclusive).
	BlackHeight() int

	Search(key K) RBNode[K, V]
	Minimum() RBNode[K, V]
	Maximum() RBNode[K, V]
	Predecessor(node RBNode[K, V]) RBNode[K, V]
	Successor(node RBNode[K, V]) RBNode[K, V]

	// Insert always adds a new node. Equal keys go to the right.
	Insert(key K, val V) RBNode[K, V]
	// Upsert replaces the value of an equal key or inserts a new node.
	Upsert(key K, val V) (node RBNode[K, V], inserted bool)
	// Delete panics if the node is not owned by the tree.
	Delete(node RBNode[K, V])
	Remove(key K) (RBNode[K, V], error)
	RemoveMin() (RBNode[K, V], error)
	Release()

	PreOrder() iter.Seq[K]
	InOrder() iter.Seq[K]
	PostOrder() iter.Seq[K]
	LevelOrder() iter.Seq[K]
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)

	Validate() error
}
