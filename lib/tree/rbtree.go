package tree

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/xlog"
)

var _ RBTree[int, struct{}] = (*rbTree[int, struct{}])(nil) // Type check assertion

// References:
// Cormen et al., Introduction to Algorithms, chapter 13.
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. The root is black.
// p3. Every sentinel leaf is black.
// p4. A red node does not have a red child. (red-violation)
// p5. Every path from a given node to any of its descendant
//   sentinel leaves goes through the same number of black nodes. (black-violation)
// The longest root to leaf path is at most twice the shortest one,
// so the height is at most 2*log2(n+1).

// rbTree is not thread safe.
type rbTree[K infra.OrderedKey, V any] struct {
	root     *rbNode[K, V]
	sentinel *rbNode[K, V]
	count    int64
	cmp      infra.OrderedKeyComparator[K]
	isDesc   bool
	logger   xlog.XLogger
	stats    *rbTreeStats
}

type RBTreeOpt[K infra.OrderedKey, V any] func(*rbTree[K, V])

func WithRBTreeDesc[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isDesc = true
	}
}

// WithRBTreeComparator replaces the natural order of the keys.
// It must be a total order.
func WithRBTreeComparator[K infra.OrderedKey, V any](cmp infra.OrderedKeyComparator[K]) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		if cmp != nil {
			tree.cmp = cmp
		}
	}
}

func WithRBTreeLogger[K infra.OrderedKey, V any](logger xlog.XLogger) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.logger = logger
	}
}

// WithRBTreeStats records the node count, rotations and fix-up branches.
// The global otel meter provider is used if none is passed.
func WithRBTreeStats[K infra.OrderedKey, V any](name string, provider ...metric.MeterProvider) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		mp := otel.GetMeterProvider()
		if len(provider) > 0 && provider[0] != nil {
			mp = provider[0]
		}
		tree.stats = newRBTreeStats(mp, name)
	}
}

func NewRBTree[K infra.OrderedKey, V any](opts ...RBTreeOpt[K, V]) RBTree[K, V] {
	sentinel := &rbNode[K, V]{color: Black}
	tree := &rbTree[K, V]{
		root:     sentinel,
		sentinel: sentinel,
		count:    0,
		cmp:      infra.DefaultOrderedKeyComparator[K],
		isDesc:   false,
	}

	for _, o := range opts {
		o(tree)
	}
	if tree.logger == nil {
		tree.logger = xlog.NewNopXLogger()
	}
	if tree.isDesc {
		tree.cmp = infra.ReverseOrderedKeyComparator(tree.cmp)
	}
	return tree
}

func (tree *rbTree[K, V]) keyCompare(k1, k2 K) int64 {
	return tree.cmp(k1, k2)
}

// violated reports a broken contract and panics. depth counts the
// frames above violated to blame, 1 is its direct caller.
func (tree *rbTree[K, V]) violated(depth int, op, reason string) {
	err := &PreconditionError{
		Op:     op,
		Reason: reason,
		At:     infra.CallerFrame(depth),
	}
	tree.logger.Error(err, "[rbtree] precondition violation",
		zap.String("op", op),
		zap.String("reason", reason),
		zap.Stringer("at", err.At),
	)
	panic(err)
}

// mustOwn unwraps a node handed in by the caller of a public operation.
func (tree *rbTree[K, V]) mustOwn(op string, node RBNode[K, V]) *rbNode[K, V] {
	x, ok := node.(*rbNode[K, V])
	switch {
	case !ok || x == nil:
		tree.violated(3, op, "nil or unknown node")
	case x == tree.sentinel:
		tree.violated(3, op, "sentinel node")
	case x.tree == nil:
		tree.violated(3, op, "node has been deleted")
	case x.tree != tree:
		tree.violated(3, op, "node is owned by another tree")
	}
	return x
}

func (tree *rbTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K, V]) Root() RBNode[K, V] {
	if tree.root == tree.sentinel {
		return nil
	}
	return tree.root
}

// search returns the sentinel if the key is absent. With duplicates,
// the equal key closest to the root wins.
func (tree *rbTree[K, V]) search(key K) *rbNode[K, V] {
	x := tree.root
	for x != tree.sentinel {
		res := tree.keyCompare(key, x.key)
		if res == 0 {
			return x
		} else if res < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return tree.sentinel
}

func (tree *rbTree[K, V]) Search(key K) RBNode[K, V] {
	if x := tree.search(key); x != tree.sentinel {
		return x
	}
	return nil
}

func (tree *rbTree[K, V]) minimum(x *rbNode[K, V]) *rbNode[K, V] {
	if x == tree.sentinel {
		return x
	}
	for x.left != tree.sentinel {
		x = x.left
	}
	return x
}

func (tree *rbTree[K, V]) maximum(x *rbNode[K, V]) *rbNode[K, V] {
	if x == tree.sentinel {
		return x
	}
	for x.right != tree.sentinel {
		x = x.right
	}
	return x
}

func (tree *rbTree[K, V]) Minimum() RBNode[K, V] {
	if x := tree.minimum(tree.root); x != tree.sentinel {
		return x
	}
	return nil
}

func (tree *rbTree[K, V]) Maximum() RBNode[K, V] {
	if x := tree.maximum(tree.root); x != tree.sentinel {
		return x
	}
	return nil
}

// predecessor climbs while x is a left child when there is no left subtree.
func (tree *rbTree[K, V]) predecessor(x *rbNode[K, V]) *rbNode[K, V] {
	if x.left != tree.sentinel {
		return tree.maximum(x.left)
	}
	y := x.parent
	for y != tree.sentinel && x == y.left {
		x, y = y, y.parent
	}
	return y
}

func (tree *rbTree[K, V]) successor(x *rbNode[K, V]) *rbNode[K, V] {
	if x.right != tree.sentinel {
		return tree.minimum(x.right)
	}
	y := x.parent
	for y != tree.sentinel && x == y.right {
		x, y = y, y.parent
	}
	return y
}

func (tree *rbTree[K, V]) Predecessor(node RBNode[K, V]) RBNode[K, V] {
	x := tree.mustOwn("predecessor", node)
	if y := tree.predecessor(x); y != tree.sentinel {
		return y
	}
	return nil
}

func (tree *rbTree[K, V]) Successor(node RBNode[K, V]) RBNode[K, V] {
	x := tree.mustOwn("successor", node)
	if y := tree.successor(x); y != tree.sentinel {
		return y
	}
	return nil
}

func (tree *rbTree[K, V]) BlackHeight() int {
	if tree.root == tree.sentinel {
		return 0
	}
	// p5 makes any path good, the leftmost one is the cheapest.
	height := 1 // sentinel
	for x := tree.root.left; x != tree.sentinel; x = x.left {
		if x.color == Black {
			height++
		}
	}
	return height
}

// Release detaches every node, the tree is empty afterwards.
func (tree *rbTree[K, V]) Release() {
	aux := tree.root
	tree.root = tree.sentinel
	if aux == tree.sentinel {
		return
	}

	stack := make([]*rbNode[K, V], 0, 64)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)
	for len(stack) > 0 {
		aux = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if aux.left != tree.sentinel {
			stack = append(stack, aux.left)
		}
		if aux.right != tree.sentinel {
			stack = append(stack, aux.right)
		}
		aux.detach()
	}
	tree.stats.RecordNodeCount(-tree.count)
	tree.count = 0
}
