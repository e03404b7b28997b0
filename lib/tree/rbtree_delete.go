package tree

// transplant replaces the subtree rooted at u with the one rooted at v.
// The sentinel's parent link is never written.
func (tree *rbTree[K, V]) transplant(u, v *rbNode[K, V]) {
	if u == tree.sentinel || u.tree != tree {
		tree.violated(1, "transplant", "node is not owned by the tree")
	}

	switch tree.direction(u) {
	case Root:
		tree.root = v
	case Left:
		u.parent.left = v
	case Right:
		u.parent.right = v
	}
	if v != tree.sentinel {
		v.parent = u.parent
	}
}

// delete unlinks z. x is the node taking the removed black's place
// and xParent its parent, tracked here since x may be the sentinel.
func (tree *rbTree[K, V]) delete(z *rbNode[K, V]) {
	var (
		y          = z
		yOrigColor = z.color
		x, xParent *rbNode[K, V]
	)

	switch {
	case z.left == tree.sentinel:
		x, xParent = z.right, z.parent
		tree.transplant(z, z.right)
	case z.right == tree.sentinel:
		x, xParent = z.left, z.parent
		tree.transplant(z, z.left)
	default:
		// Borrow the successor, it has no left child.
		y = tree.minimum(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			tree.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		tree.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOrigColor == Black {
		tree.deleteFixUp(x, xParent)
	}
	tree.count--
	tree.stats.RecordNodeCount(-1)
	z.detach()
}

func (tree *rbTree[K, V]) Delete(node RBNode[K, V]) {
	tree.delete(tree.mustOwn("delete", node))
}

func (tree *rbTree[K, V]) Remove(key K) (RBNode[K, V], error) {
	if tree.count <= 0 {
		return nil, ErrEmptyTree
	}
	z := tree.search(key)
	if z == tree.sentinel {
		return nil, ErrKeyNotFound
	}
	tree.delete(z)
	return z, nil
}

func (tree *rbTree[K, V]) RemoveMin() (RBNode[K, V], error) {
	if tree.count <= 0 {
		return nil, ErrEmptyTree
	}
	z := tree.minimum(tree.root)
	tree.delete(z)
	return z, nil
}

/*
<X> is a RED node.
[X] is a BLACK node (or the sentinel).
{X} is either a RED node or a BLACK node.
X carries an extra black. Shown for X on the left side of P, mirrored otherwise.

Red sibling, rotate P toward X, the new sibling is black.

	      [P]                  [S]
	      / \                  / \
	    [X] <S>     ====>    <P> [Sr]
	        / \              / \
	     [Sl] [Sr]         [X] [Sl]

Black sibling with black nephews, paint S red and move the extra black up.

	      {P}                  {P} <- new X
	      / \                  / \
	    [X] [S]     ====>    [X] <S>
	        / \                  / \
	     [Sl] [Sr]            [Sl] [Sr]

Near nephew red, far nephew black, rotate S away from X.

	      {P}                  {P}
	      / \                  / \
	    [X] [S]     ====>    [X] [Sl]
	        / \                    \
	     <Sl> [Sr]                 <S>
	                                 \
	                                 [Sr]

Far nephew red, rotate P toward X, S takes P's color, done.

	      {P}                  {S}
	      / \                  / \
	    [X] [S]     ====>    [P] [Sr]
	        / \              / \
	      {Sl} <Sr>        [X] {Sl}
*/
func (tree *rbTree[K, V]) deleteFixUp(x, xParent *rbNode[K, V]) {
	for x != tree.root && x.color == Black {
		// A sentinel x with a sentinel sibling is impossible by p5,
		// so both links being the sentinel means x is on the left.
		side := Right
		if x == xParent.left {
			side = Left
		}
		w := xParent.child(side.opposite())

		if w.color == Red {
			tree.traceFixUp(DeleteRedSibling, side)
			w.color = Black
			xParent.color = Red
			tree.rotate(xParent, side)
			w = xParent.child(side.opposite())
		}

		near, far := w.child(side), w.child(side.opposite())
		if near.color == Black && far.color == Black {
			tree.traceFixUp(DeleteBlackNephews, side)
			w.color = Red
			x, xParent = xParent, xParent.parent
			continue
		}

		if far.color == Black {
			tree.traceFixUp(DeleteNearNephewRed, side)
			near.color = Black
			w.color = Red
			tree.rotate(w, side.opposite())
			w = xParent.child(side.opposite())
			far = w.child(side.opposite())
		}

		tree.traceFixUp(DeleteFarNephewRed, side)
		w.color = xParent.color
		xParent.color = Black
		far.color = Black
		tree.rotate(xParent, side)
		x = tree.root
	}
	if x != tree.sentinel {
		x.color = Black
	}
}
