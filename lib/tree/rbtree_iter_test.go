package tree

import (
	"iter"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRbtreeTraversals(t *testing.T) {
	tree := NewRBTree[int, struct{}]()
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(key, struct{}{})
	}

	testcases := []struct {
		name     string
		seq      iter.Seq[int]
		expected []int
	}{
		{
			name:     "pre-order",
			seq:      tree.PreOrder(),
			expected: []int{50, 30, 20, 40, 70, 60, 80},
		},
		{
			name:     "in-order",
			seq:      tree.InOrder(),
			expected: []int{20, 30, 40, 50, 60, 70, 80},
		},
		{
			name:     "post-order",
			seq:      tree.PostOrder(),
			expected: []int{20, 40, 30, 60, 80, 70, 50},
		},
		{
			name:     "level-order",
			seq:      tree.LevelOrder(),
			expected: []int{50, 30, 70, 20, 40, 60, 80},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, collect(tc.seq))
			// restartable
			require.Equal(tt, tc.expected, collect(tc.seq))

			// stops early
			visited := make([]int, 0, 3)
			for key := range tc.seq {
				visited = append(visited, key)
				if len(visited) == 3 {
					break
				}
			}
			require.Equal(tt, tc.expected[:3], visited)
		})
	}
}

func TestRbtreeTraversals_Random(t *testing.T) {
	keys := lo.Shuffle(lo.Range(512))
	tree := NewRBTree[int, struct{}]()
	for _, key := range keys {
		tree.Insert(key, struct{}{})
	}

	inorder := collect(tree.InOrder())
	require.True(t, slices.IsSorted(inorder))
	require.Len(t, inorder, len(keys))

	// Every traversal visits each key once.
	for _, seq := range []iter.Seq[int]{tree.PreOrder(), tree.PostOrder(), tree.LevelOrder()} {
		visited := collect(seq)
		require.Len(t, visited, len(keys))
		require.Equal(t, inorder, lo.Uniq(slices.Sorted(slices.Values(visited))))
	}

	// Pre-order starts and post-order ends at the root, level order too.
	root := tree.Root().Key()
	require.Equal(t, root, collect(tree.PreOrder())[0])
	require.Equal(t, root, collect(tree.LevelOrder())[0])
	post := collect(tree.PostOrder())
	require.Equal(t, root, post[len(post)-1])
}

func TestRbtreeTraversals_LevelOrderIsByDepth(t *testing.T) {
	tree := NewRBTree[int, struct{}]()
	for _, key := range lo.Shuffle(lo.Range(200)) {
		tree.Insert(key, struct{}{})
	}

	depthOf := func(key int) int {
		depth := 0
		for x := tree.Search(key); x != nil; x = x.Parent() {
			depth++
		}
		return depth
	}
	last := 0
	for key := range tree.LevelOrder() {
		depth := depthOf(key)
		require.GreaterOrEqual(t, depth, last)
		last = depth
	}
	require.Equal(t, tree.Height(), last)
}
