package tree

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RBTreeStatsName = "xalgo/rbtree"
)

// rbTreeStats is nil when the stats are disabled, every method
// is a no-op then.
type rbTreeStats struct {
	nodeCount     metric.Int64UpDownCounter
	rotationCount metric.Int64Counter
	fixUpCount    metric.Int64Counter
}

func (stats *rbTreeStats) RecordNodeCount(delta int64) {
	if stats == nil || delta == 0 {
		return
	}
	stats.nodeCount.Add(context.Background(), delta)
}

func (stats *rbTreeStats) IncreaseRotation(dir RBDirection) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("rbtree.rotation.direction", dir.String()),
	)
	stats.rotationCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
}

func (stats *rbTreeStats) IncreaseFixUp(c FixUpCase, side RBDirection) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("rbtree.fixup.case", c.String()),
		attribute.String("rbtree.fixup.side", side.String()),
	)
	stats.fixUpCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
}

func newRBTreeStats(provider metric.MeterProvider, name string) *rbTreeStats {
	meterName := RBTreeStatsName
	if name != "" {
		meterName = fmt.Sprintf("%s/%s", RBTreeStatsName, name)
	}
	meter := provider.Meter(meterName)
	return &rbTreeStats{
		nodeCount: lo.Must[metric.Int64UpDownCounter](meter.
			Int64UpDownCounter(
				"rbtree.node.count",
				metric.WithDescription("The number of nodes in the red-black tree."),
			),
		),
		rotationCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.rotation.count",
				metric.WithDescription("The number of rotations done by the red-black tree."),
			),
		),
		fixUpCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.fixup.count",
				metric.WithDescription("The number of rebalancing branches taken after inserts and deletes."),
			),
		),
	}
}
