package tree

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FixUpCase tags a rebalancing branch. Each one runs on the
// left or the right side, mirrored.
type FixUpCase uint8

const (
	InsertUncleRed FixUpCase = iota
	InsertInnerChild
	InsertOuterChild
	DeleteRedSibling
	DeleteBlackNephews
	DeleteNearNephewRed
	DeleteFarNephewRed
)

func (c FixUpCase) String() string {
	switch c {
	case InsertUncleRed:
		return "insert-uncle-red"
	case InsertInnerChild:
		return "insert-inner-child"
	case InsertOuterChild:
		return "insert-outer-child"
	case DeleteRedSibling:
		return "delete-red-sibling"
	case DeleteBlackNephews:
		return "delete-black-nephews"
	case DeleteNearNephewRed:
		return "delete-near-nephew-red"
	case DeleteFarNephewRed:
		return "delete-far-nephew-red"
	default:
	}
	return "unknown"
}

func (tree *rbTree[K, V]) traceFixUp(c FixUpCase, side RBDirection) {
	tree.stats.IncreaseFixUp(c, side)
	if !tree.logger.Enabled(zapcore.DebugLevel) {
		return
	}
	msg := "[rbtree] insert fix-up"
	if c >= DeleteRedSibling {
		msg = "[rbtree] delete fix-up"
	}
	tree.logger.Debug(msg, zap.String("case", c.String()), zap.String("side", side.String()))
}

// insert links a red leaf by a plain BST descent, equal keys go right.
func (tree *rbTree[K, V]) insert(key K, val V) *rbNode[K, V] {
	y, x := tree.sentinel, tree.root
	for x != tree.sentinel {
		y = x
		if tree.keyCompare(key, x.key) < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}

	z := &rbNode[K, V]{
		parent: y,
		left:   tree.sentinel,
		right:  tree.sentinel,
		tree:   tree,
		key:    key,
		val:    val,
		color:  Red,
	}
	switch {
	case y == tree.sentinel:
		tree.root = z
	case tree.keyCompare(key, y.key) < 0:
		y.left = z
	default:
		y.right = z
	}
	tree.count++
	tree.stats.RecordNodeCount(1)

	tree.insertFixUp(z)
	return z
}

func (tree *rbTree[K, V]) Insert(key K, val V) RBNode[K, V] {
	return tree.insert(key, val)
}

func (tree *rbTree[K, V]) Upsert(key K, val V) (RBNode[K, V], bool) {
	if x := tree.search(key); x != tree.sentinel {
		x.val = val
		return x, false
	}
	return tree.insert(key, val), true
}

/*
<X> is a RED node.
[X] is a BLACK node (or the sentinel).
Shown for the parent P on the left side of the grandpa G, mirrored otherwise.

Uncle red, recolor and move up to G.

	      [G]                <G>
	      / \                / \
	    <P> <U>    ====>   [P] [U]
	    /                  /
	  <Z>                <Z>

Inner child, rotate P toward the outside, then the outer child case.

	      [G]                [G]
	      / \                / \
	    <P> [U]    ====>   <Z> [U]
	      \                /
	      <Z>            <P>

Outer child, recolor and rotate G toward the uncle.

	      [G]                [P]
	      / \                / \
	    <P> [U]    ====>   <Z> <G>
	    /                        \
	  <Z>                        [U]
*/
func (tree *rbTree[K, V]) insertFixUp(z *rbNode[K, V]) {
	for z.parent.color == Red {
		// A red parent is never the root, so the grandpa is a real node.
		p := z.parent
		g := p.parent
		side := tree.direction(p)
		uncle := g.child(side.opposite())

		if uncle.color == Red {
			tree.traceFixUp(InsertUncleRed, side)
			p.color = Black
			uncle.color = Black
			g.color = Red
			z = g
			continue
		}

		if tree.direction(z) != side {
			tree.traceFixUp(InsertInnerChild, side)
			z = p
			tree.rotate(z, side)
			p = z.parent
		}

		tree.traceFixUp(InsertOuterChild, side)
		p.color = Black
		g.color = Red
		tree.rotate(g, side.opposite())
	}
	tree.root.color = Black
}
