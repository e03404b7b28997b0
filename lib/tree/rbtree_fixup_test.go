package tree

import (
	"io"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benz9527/xalgo/lib/xlog"
)

func newObservedRBTree(lvl zapcore.Level) (RBTree[int, struct{}], *observer.ObservedLogs) {
	core, logs := observer.New(lvl)
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriter(io.Discard),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
		xlog.WithXLoggerCore(core),
	)
	return NewRBTree[int, struct{}](WithRBTreeLogger[int, struct{}](logger)), logs
}

func fixUpEntries(logs *observer.ObservedLogs, c FixUpCase, side RBDirection) int {
	msg := "[rbtree] insert fix-up"
	if c >= DeleteRedSibling {
		msg = "[rbtree] delete fix-up"
	}
	return logs.FilterMessage(msg).
		FilterField(zap.String("case", c.String())).
		FilterField(zap.String("side", side.String())).
		Len()
}

func TestRbtreeFixUp_AscendingThree(t *testing.T) {
	tree, logs := newObservedRBTree(zapcore.DebugLevel)
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key, struct{}{})
	}
	// One outer child rebalance on the right side, nothing else.
	require.Equal(t, 1, logs.Len())
	require.Equal(t, 1, fixUpEntries(logs, InsertOuterChild, Right))
}

func TestRbtreeFixUp_Cases(t *testing.T) {
	testcases := []struct {
		name    string
		inserts []int
		removes []int
		c       FixUpCase
		side    RBDirection
	}{
		{
			name:    "insert uncle red",
			inserts: []int{20, 10, 30, 5},
			c:       InsertUncleRed,
			side:    Left,
		},
		{
			name:    "insert inner child left",
			inserts: []int{30, 10, 20},
			c:       InsertInnerChild,
			side:    Left,
		},
		{
			name:    "insert inner child right",
			inserts: []int{10, 30, 20},
			c:       InsertInnerChild,
			side:    Right,
		},
		{
			name:    "insert outer child left",
			inserts: []int{30, 20, 10},
			c:       InsertOuterChild,
			side:    Left,
		},
		{
			name:    "delete red sibling left",
			inserts: []int{10, 5, 20, 15, 25, 30},
			removes: []int{5},
			c:       DeleteRedSibling,
			side:    Left,
		},
		{
			name:    "delete red sibling right",
			inserts: []int{30, 35, 20, 25, 15, 10},
			removes: []int{35},
			c:       DeleteRedSibling,
			side:    Right,
		},
		{
			// The red 5 is removed first, so 10 and 30 are black leaves.
			name:    "delete black nephews left",
			inserts: []int{20, 10, 30, 5},
			removes: []int{5, 10},
			c:       DeleteBlackNephews,
			side:    Left,
		},
		{
			name:    "delete black nephews right",
			inserts: []int{20, 10, 30, 5},
			removes: []int{5, 30},
			c:       DeleteBlackNephews,
			side:    Right,
		},
		{
			name:    "delete far nephew red left",
			inserts: []int{20, 10, 30, 40},
			removes: []int{10},
			c:       DeleteFarNephewRed,
			side:    Left,
		},
		{
			name:    "delete far nephew red right",
			inserts: []int{20, 10, 30, 5},
			removes: []int{30},
			c:       DeleteFarNephewRed,
			side:    Right,
		},
		{
			name:    "delete near nephew red left",
			inserts: []int{20, 10, 30, 25},
			removes: []int{10},
			c:       DeleteNearNephewRed,
			side:    Left,
		},
		{
			name:    "delete near nephew red right",
			inserts: []int{20, 10, 30, 15},
			removes: []int{30},
			c:       DeleteNearNephewRed,
			side:    Right,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree, logs := newObservedRBTree(zapcore.DebugLevel)
			for _, key := range tc.inserts {
				tree.Insert(key, struct{}{})
			}
			for _, key := range tc.removes {
				_, err := tree.Remove(key)
				require.NoError(tt, err)
			}
			require.GreaterOrEqual(tt, fixUpEntries(logs, tc.c, tc.side), 1)
			require.NoError(tt, tree.Validate())
		})
	}
}

// Random workloads hit all fourteen branches.
func TestRbtreeFixUp_AllBranches(t *testing.T) {
	tree, logs := newObservedRBTree(zapcore.DebugLevel)
	keys := lo.Shuffle(lo.Range(4096))
	for _, key := range keys {
		tree.Insert(key, struct{}{})
	}
	for _, key := range lo.Shuffle(keys)[:3072] {
		_, err := tree.Remove(key)
		require.NoError(t, err)
	}
	require.NoError(t, tree.Validate())

	cases := []FixUpCase{
		InsertUncleRed, InsertInnerChild, InsertOuterChild,
		DeleteRedSibling, DeleteBlackNephews, DeleteNearNephewRed, DeleteFarNephewRed,
	}
	for _, c := range cases {
		for _, side := range []RBDirection{Left, Right} {
			require.Positive(t, fixUpEntries(logs, c, side), "%s on %s", c, side)
		}
	}
}

func TestRbtreeFixUp_MutedAboveDebug(t *testing.T) {
	tree, logs := newObservedRBTree(zapcore.InfoLevel)
	for _, key := range lo.Range(100) {
		tree.Insert(key, struct{}{})
	}
	require.Equal(t, 0, logs.Len())
}
