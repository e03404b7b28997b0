package tree

/*
		 |                         |
		 X                         Y
		/ \     leftRotate(X)     / \
	   A   Y    ============>    X   C
		  / \                   / \
		 B   C                 A   B

Colors and the in-order sequence are unchanged.
*/
func (tree *rbTree[K, V]) leftRotate(x *rbNode[K, V]) {
	y := x.right
	if x == tree.sentinel || y == tree.sentinel {
		tree.violated(1, "left rotate", "right child is the sentinel")
	}

	x.right = y.left
	if y.left != tree.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	switch tree.direction(x) {
	case Root:
		tree.root = y
	case Left:
		x.parent.left = y
	case Right:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	tree.stats.IncreaseRotation(Left)
}

/*
		   |                       |
		   Y                       X
		  / \   rightRotate(Y)    / \
		 X   C  ============>    A   Y
		/ \                         / \
	   A   B                       B   C
*/
func (tree *rbTree[K, V]) rightRotate(y *rbNode[K, V]) {
	x := y.left
	if y == tree.sentinel || x == tree.sentinel {
		tree.violated(1, "right rotate", "left child is the sentinel")
	}

	y.left = x.right
	if x.right != tree.sentinel {
		x.right.parent = y
	}
	x.parent = y.parent
	switch tree.direction(y) {
	case Root:
		tree.root = x
	case Left:
		y.parent.left = x
	case Right:
		y.parent.right = x
	}
	x.right = y
	y.parent = x
	tree.stats.IncreaseRotation(Right)
}

// rotate brings x down toward dir.
func (tree *rbTree[K, V]) rotate(x *rbNode[K, V], dir RBDirection) {
	if dir == Left {
		tree.leftRotate(x)
		return
	}
	tree.rightRotate(x)
}

// direction must not be called on the sentinel.
func (tree *rbTree[K, V]) direction(x *rbNode[K, V]) RBDirection {
	switch {
	case x.parent == tree.sentinel:
		return Root
	case x == x.parent.left:
		return Left
	default:
	}
	return Right
}
