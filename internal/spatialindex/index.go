package spatialindex

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/geom"
)

// Kind tags what an indexed anchor point belongs to, so a snap hit can
// be routed to the right candidate builder (spec §4.3).
type Kind string

const (
	KindRoomVertex    Kind = "room_vertex"
	KindWallEndpoint  Kind = "wall_endpoint"
	KindDoorEndpoint  Kind = "door_endpoint"
	KindLinkEndpoint  Kind = "link_endpoint"
	KindArtworkCorner Kind = "artwork_corner"
)

// Item is one indexed anchor point.
type Item struct {
	ElementID uuid.UUID
	Kind      Kind
	Point     geom.Point
	EdgeIndex int // vertex/edge position within the owning element, where meaningful
}

const (
	defaultMaxObjects = 10
	defaultMaxDepth   = 8
)

// Index is a quadtree over element anchor points, adapted from the
// teacher's SpatialIndex (core/wall_composition/spatial/spatial_index.go)
// with two corrections: child bounds actually test each item's own
// coordinate on split (the teacher's splitNode distributed objects
// round-robin regardless of position), and QueryNearby filters the
// bounding-box candidates down to the true circle via DistanceTo.
type Index struct {
	root       *node
	maxObjects int
	maxDepth   int
}

type node struct {
	bounds   Bounds
	items    []Item
	children [4]*node
	isLeaf   bool
	depth    int
}

// New returns an empty index.
func New() *Index {
	return &Index{maxObjects: defaultMaxObjects, maxDepth: defaultMaxDepth}
}

// Build replaces the index contents with items, sizing the root bounds
// to their combined extent.
func (idx *Index) Build(items []Item) {
	idx.root = nil
	if len(items) == 0 {
		return
	}
	bounds := FromPoint(items[0].Point)
	for _, it := range items[1:] {
		x, y := it.Point.Grid()
		bounds.Expand(x, y)
	}
	idx.root = &node{bounds: bounds.Pad(1), isLeaf: true}
	for _, it := range items {
		idx.insert(idx.root, it)
	}
}

// Insert adds a single item, growing the root if necessary.
func (idx *Index) Insert(it Item) {
	x, y := it.Point.Grid()
	if idx.root == nil {
		idx.root = &node{bounds: FromPoint(it.Point).Pad(1), isLeaf: true}
	}
	for !idx.root.bounds.Contains(x, y) {
		idx.growRoot(x, y)
	}
	idx.insert(idx.root, it)
}

// growRoot doubles the root's bounds toward (x, y) and re-parents the
// existing tree as one of the four new children.
func (idx *Index) growRoot(x, y int64) {
	old := idx.root
	w := old.bounds.MaxX - old.bounds.MinX
	h := old.bounds.MaxY - old.bounds.MinY
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	grown := old.bounds
	if x < grown.MinX {
		grown.MinX -= w
	} else if x > grown.MaxX {
		grown.MaxX += w
	}
	if y < grown.MinY {
		grown.MinY -= h
	} else if y > grown.MaxY {
		grown.MaxY += h
	}
	items := idx.collect(old)
	idx.root = &node{bounds: grown, isLeaf: true}
	for _, it := range items {
		idx.insert(idx.root, it)
	}
}

func (idx *Index) collect(n *node) []Item {
	if n == nil {
		return nil
	}
	if n.isLeaf {
		return append([]Item(nil), n.items...)
	}
	var out []Item
	for _, c := range n.children {
		out = append(out, idx.collect(c)...)
	}
	return out
}

func (idx *Index) insert(n *node, it Item) {
	x, y := it.Point.Grid()
	if !n.bounds.Contains(x, y) {
		return
	}
	if n.isLeaf {
		n.items = append(n.items, it)
		if len(n.items) > idx.maxObjects && n.depth < idx.maxDepth {
			idx.split(n)
		}
		return
	}
	for _, child := range n.children {
		if child != nil && child.bounds.Contains(x, y) {
			idx.insert(child, it)
			return
		}
	}
}

func (idx *Index) split(n *node) {
	midX := (n.bounds.MinX + n.bounds.MaxX) / 2
	midY := (n.bounds.MinY + n.bounds.MaxY) / 2

	n.children[0] = &node{bounds: Bounds{n.bounds.MinX, midY, midX, n.bounds.MaxY}, depth: n.depth + 1, isLeaf: true}
	n.children[1] = &node{bounds: Bounds{midX, midY, n.bounds.MaxX, n.bounds.MaxY}, depth: n.depth + 1, isLeaf: true}
	n.children[2] = &node{bounds: Bounds{n.bounds.MinX, n.bounds.MinY, midX, midY}, depth: n.depth + 1, isLeaf: true}
	n.children[3] = &node{bounds: Bounds{midX, n.bounds.MinY, n.bounds.MaxX, midY}, depth: n.depth + 1, isLeaf: true}

	pending := n.items
	n.items = nil
	n.isLeaf = false
	for _, it := range pending {
		idx.insert(n, it)
	}
}

// QueryBounds returns every indexed item whose point falls within bb.
func (idx *Index) QueryBounds(bb Bounds) []Item {
	var results []Item
	idx.query(idx.root, bb, &results)
	return results
}

func (idx *Index) query(n *node, bb Bounds, out *[]Item) {
	if n == nil || !n.bounds.Intersects(bb) {
		return
	}
	if n.isLeaf {
		for _, it := range n.items {
			x, y := it.Point.Grid()
			if bb.Contains(x, y) {
				*out = append(*out, it)
			}
		}
		return
	}
	for _, c := range n.children {
		idx.query(c, bb, out)
	}
}

// QueryNearby returns every indexed item within radius (grid units) of
// center, sorted nearest-first.
func (idx *Index) QueryNearby(center geom.Point, radius float64) []Item {
	rx := int64(radius * geom.SubgridScale)
	candidates := idx.QueryBounds(FromPoint(center).Pad(rx))

	results := candidates[:0:0]
	for _, it := range candidates {
		if center.DistanceTo(it.Point) <= radius {
			results = append(results, it)
		}
	}
	insertionSortByDistance(results, center)
	return results
}

func insertionSortByDistance(items []Item, center geom.Point) {
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && center.DistanceTo(items[j-1].Point) > center.DistanceTo(items[j].Point) {
			items[j-1], items[j] = items[j], items[j-1]
			j--
		}
	}
}
