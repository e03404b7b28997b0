package tree

import (
	"math"
	randv2 "math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func requireBalanced[K int | uint64, V any](t *testing.T, tree RBTree[K, V]) {
	t.Helper()
	require.NoError(t, tree.Validate())
	require.LessOrEqual(t, float64(tree.Height()), 2*math.Log2(float64(tree.Len()+1)))
}

func rbtreeRandomInsertAndRemoveRunCore(t *testing.T, total int, violationCheck bool) {
	keys := lo.Shuffle(lo.Range(total))
	tree := NewRBTree[int, int]()
	for i, key := range keys {
		tree.Insert(key, i)
		if violationCheck {
			requireBalanced[int, int](t, tree)
		}
	}
	requireBalanced[int, int](t, tree)
	require.Equal(t, lo.Range(total), collect(tree.InOrder()))

	for i, key := range lo.Shuffle(keys) {
		x, err := tree.Remove(key)
		require.NoError(t, err)
		require.Equal(t, key, x.Key())
		require.Equal(t, int64(total-i-1), tree.Len())
		if violationCheck {
			requireBalanced[int, int](t, tree)
		}
	}
	require.Equal(t, int64(0), tree.Len())
	require.Nil(t, tree.Root())
}

func TestRbtreeRandomInsertAndRemove(t *testing.T) {
	testcases := []struct {
		name           string
		total          int
		violationCheck bool
	}{
		{
			name:           "small with violation check",
			total:          128,
			violationCheck: true,
		},
		{
			name:           "medium with violation check",
			total:          1024,
			violationCheck: true,
		},
		{
			name:  "large",
			total: 100_000,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			rbtreeRandomInsertAndRemoveRunCore(tt, tc.total, tc.violationCheck)
		})
	}
}

func TestRbtreeSequentialInsertAndRemove(t *testing.T) {
	testcases := []struct {
		name  string
		keys  []uint64
		order func([]uint64) []uint64
	}{
		{
			name: "ascending inserts, ascending removes",
			keys: lo.RangeFrom[uint64](0, 1000),
			order: func(keys []uint64) []uint64 {
				return keys
			},
		},
		{
			name: "ascending inserts, descending removes",
			keys: lo.RangeFrom[uint64](0, 1000),
			order: func(keys []uint64) []uint64 {
				return lo.Reverse(append([]uint64(nil), keys...))
			},
		},
		{
			name: "descending inserts, middle out removes",
			keys: lo.Reverse(lo.RangeFrom[uint64](0, 1000)),
			order: func(keys []uint64) []uint64 {
				res := make([]uint64, 0, len(keys))
				for l, h := len(keys)/2, len(keys)/2+1; l >= 0 || h < len(keys); l, h = l-1, h+1 {
					if l >= 0 {
						res = append(res, keys[l])
					}
					if h < len(keys) {
						res = append(res, keys[h])
					}
				}
				return res
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := NewRBTree[uint64, uint64]()
			for _, key := range tc.keys {
				tree.Insert(key, key)
			}
			requireBalanced[uint64, uint64](tt, tree)

			for _, key := range tc.order(tc.keys) {
				x := tree.Search(key)
				require.NotNil(tt, x)
				tree.Delete(x)
				requireBalanced[uint64, uint64](tt, tree)
			}
			require.Equal(tt, int64(0), tree.Len())
		})
	}
}

// The gods red-black tree acts as the oracle of an ordered map.
func TestRbtreeDifferentialAgainstGods(t *testing.T) {
	rnd := randv2.New(randv2.NewPCG(20240519, 97))
	oracle := redblacktree.NewWithIntComparator()
	tree := NewRBTree[int, int]()

	for op := 0; op < 20_000; op++ {
		key := rnd.IntN(2048)
		switch rnd.IntN(3) {
		case 0, 1:
			oracle.Put(key, op)
			tree.Upsert(key, op)
		default:
			_, found := oracle.Get(key)
			oracle.Remove(key)
			_, err := tree.Remove(key)
			if found {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		}

		if op%500 == 0 {
			requireBalanced[int, int](t, tree)
		}
		require.Equal(t, int64(oracle.Size()), tree.Len())
	}

	expected := lo.Map(oracle.Keys(), func(k interface{}, _ int) int {
		return k.(int)
	})
	require.Equal(t, expected, collect(tree.InOrder()))
	for _, key := range expected {
		v, _ := oracle.Get(key)
		require.Equal(t, v, tree.Search(key).Val())
	}
	if oracle.Size() > 0 {
		require.Equal(t, oracle.Left().Key, tree.Minimum().Key())
		require.Equal(t, oracle.Right().Key, tree.Maximum().Key())
	}
	requireBalanced[int, int](t, tree)
}

func TestRbtreeRandomDuplicates(t *testing.T) {
	rnd := randv2.New(randv2.NewPCG(7, 11))
	tree := NewRBTree[int, struct{}]()
	counts := map[int]int{}
	for i := 0; i < 4096; i++ {
		key := rnd.IntN(32)
		if rnd.IntN(4) == 0 && counts[key] > 0 {
			_, err := tree.Remove(key)
			require.NoError(t, err)
			counts[key]--
		} else {
			tree.Insert(key, struct{}{})
			counts[key]++
		}
	}
	requireBalanced[int, struct{}](t, tree)

	total := 0
	for key, n := range counts {
		total += n
		seen := 0
		for k := range tree.InOrder() {
			if k == key {
				seen++
			}
		}
		require.Equal(t, n, seen, "key %d", key)
	}
	require.Equal(t, int64(total), tree.Len())
}
