package spatialindex

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-os/museum-editor/internal/geom"
)

func TestIndex_BuildAndQueryNearby(t *testing.T) {
	items := []Item{
		{ElementID: uuid.New(), Kind: KindRoomVertex, Point: geom.NewPoint(0, 0)},
		{ElementID: uuid.New(), Kind: KindRoomVertex, Point: geom.NewPoint(10, 0)},
		{ElementID: uuid.New(), Kind: KindRoomVertex, Point: geom.NewPoint(0.2, 0.1)},
		{ElementID: uuid.New(), Kind: KindRoomVertex, Point: geom.NewPoint(50, 50)},
	}
	idx := New()
	idx.Build(items)

	near := idx.QueryNearby(geom.NewPoint(0, 0), 0.5)
	require.Len(t, near, 2)
	assert.Equal(t, geom.NewPoint(0, 0), near[0].Point, "closest result must be sorted first")
}

func TestIndex_QueryNearbyExcludesFarPoints(t *testing.T) {
	idx := New()
	idx.Build([]Item{
		{ElementID: uuid.New(), Kind: KindWallEndpoint, Point: geom.NewPoint(0, 0)},
		{ElementID: uuid.New(), Kind: KindWallEndpoint, Point: geom.NewPoint(100, 100)},
	})
	near := idx.QueryNearby(geom.NewPoint(0, 0), 1)
	require.Len(t, near, 1)
}

func TestIndex_InsertGrowsRootBeyondInitialBounds(t *testing.T) {
	idx := New()
	idx.Insert(Item{ElementID: uuid.New(), Point: geom.NewPoint(0, 0)})
	idx.Insert(Item{ElementID: uuid.New(), Point: geom.NewPoint(1000, 1000)})

	near := idx.QueryNearby(geom.NewPoint(1000, 1000), 0.5)
	require.Len(t, near, 1)
}

func TestIndex_SplitsAfterMaxObjectsAndPreservesAllItems(t *testing.T) {
	idx := New()
	var items []Item
	for i := 0; i < 40; i++ {
		items = append(items, Item{
			ElementID: uuid.New(),
			Point:     geom.NewPoint(float64(i), float64(i)),
		})
	}
	idx.Build(items)

	all := idx.QueryBounds(Bounds{MinX: -1 << 40, MinY: -1 << 40, MaxX: 1 << 40, MaxY: 1 << 40})
	assert.Len(t, all, 40, "split must redistribute every item, not drop any")
}
