package tui

import (
	"strings"

	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/pkg/editor"
)

// renderCanvas draws the kernel's current floor onto a fixed-size ASCII
// grid centred on cursor, following the teacher's FloorPlanRenderer role
// (services/tile-server aside, internal/tui/models/floor_plan.go's
// renderer field) but as a single pure function rather than a stateful
// service, since the kernel itself already owns all plan state.
func renderCanvas(k *editor.Kernel, cursor geom.Point, scale float64) string {
	grid := make([][]rune, canvasHeight)
	for i := range grid {
		grid[i] = make([]rune, canvasWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	cx, cy := cursor.Grid()
	originCol := canvasWidth / 2
	originRow := canvasHeight / 2

	toCell := func(p geom.Point) (col, row int, ok bool) {
		x, y := p.Grid()
		col = originCol + int((x-cx)*scale)
		row = originRow + int((y-cy)*scale)
		return col, row, col >= 0 && col < canvasWidth && row >= 0 && row < canvasHeight
	}

	plot := func(p geom.Point, r rune) {
		if col, row, ok := toCell(p); ok {
			grid[row][col] = r
		}
	}

	line := func(a, b geom.Point, r rune) {
		ax, ay, aok := toCell(a)
		bx, by, bok := toCell(b)
		if !aok && !bok {
			return
		}
		plotLine(grid, ax, ay, bx, by, r)
	}

	floor := k.Plan.CurrentFloorPtr()
	if floor != nil {
		for _, room := range floor.Rooms {
			n := len(room.Vertices)
			for i := 0; i < n; i++ {
				line(room.Vertices[i], room.Vertices[(i+1)%n], '#')
			}
		}
		for _, wall := range floor.Walls {
			line(wall.Segment.A, wall.Segment.B, '=')
		}
		for _, door := range floor.Doors {
			line(door.Segment.A, door.Segment.B, 'D')
		}
		for _, link := range floor.Links {
			line(link.Segment.A, link.Segment.B, 'L')
		}
		for _, art := range floor.Artworks {
			rect := art.Rect()
			for i := range rect {
				plot(rect[i], 'A')
			}
		}
	}

	if col, row, ok := toCell(cursor); ok {
		grid[row][col] = '@'
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// plotLine draws a line between two grid cells with Bresenham's
// algorithm; either endpoint may fall outside the canvas, in which case
// only the in-bounds portion is written.
func plotLine(grid [][]rune, x0, y0, x1, y1 int, r rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) {
			grid[y][x] = r
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
