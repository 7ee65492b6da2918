package generator

import (
	"math/rand"

	"batteryrush/pkg/engine/world"
)

// BSPGenerator generates mazes using Binary Space Partitioning: rectangular
// clearings joined by one cell wide corridors.
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a clearing within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() (row, col int) {
	return r.y + r.height/2, r.x + r.width/2
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 3 // Minimum size of a clearing
	roomPadding = 2 // Padding between clearing and node edge
)

type bspBuilder struct {
	rng  *rand.Rand
	grid *world.Grid
}

// Generate creates a new grid using the BSP algorithm
func (g *BSPGenerator) Generate(rng *rand.Rand, lvl int) *world.Grid {
	lvl = level(lvl)

	// Level 1: 16x30, capped at 40x80
	rows := min(12+lvl*4, 40)
	cols := min(24+lvl*6, 80)

	b := &bspBuilder{rng: rng, grid: newWallGrid(rows, cols)}

	// Leave 1 cell border for perimeter walls
	root := &bspNode{x: 1, y: 1, width: cols - 2, height: rows - 2}

	// More splits at higher levels for more clearings
	minSize := max(minNodeSize-lvl/3, 6)
	b.split(root, minSize)
	b.createRooms(root)
	b.carveRooms(root)
	b.connectRooms(root)

	rooms := collectRooms(root)
	startRoom := rooms[rng.Intn(len(rooms))]
	startRow, startCol := startRoom.center()
	placeStartAndExit(b.grid, startRow, startCol)

	return b.grid
}

// split recursively splits a BSP node
func (b *bspBuilder) split(node *bspNode, minSize int) {
	canSplitWidth := node.width >= minSize*2
	canSplitHeight := node.height >= minSize*2

	var splitHorizontal bool
	switch {
	case canSplitWidth && canSplitHeight:
		if node.width == node.height {
			splitHorizontal = b.rng.Intn(2) == 0
		} else {
			splitHorizontal = node.height > node.width
		}
	case canSplitWidth:
		splitHorizontal = false
	case canSplitHeight:
		splitHorizontal = true
	default:
		return
	}

	if splitHorizontal {
		splitPoint := minSize + b.rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + b.rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	b.split(node.left, minSize)
	b.split(node.right, minSize)
}

// createRooms places a clearing in every leaf node
func (b *bspBuilder) createRooms(node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			b.createRooms(node.left)
		}
		if node.right != nil {
			b.createRooms(node.right)
		}
		return
	}

	roomWidth := minRoomSize + b.rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + b.rng.Intn(node.height-minRoomSize-roomPadding+1)

	node.room = &bspRoom{
		x:      node.x + b.rng.Intn(node.width-roomWidth),
		y:      node.y + b.rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms turns every clearing into floor
func (b *bspBuilder) carveRooms(node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				carve(b.grid, row, col)
			}
		}
	}

	if node.left != nil {
		b.carveRooms(node.left)
	}
	if node.right != nil {
		b.carveRooms(node.right)
	}
}

// connectRooms joins sibling subtrees with L-shaped corridors
func (b *bspBuilder) connectRooms(node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := b.pickRoom(node.left)
	rightRoom := b.pickRoom(node.right)

	if leftRoom != nil && rightRoom != nil {
		leftRow, leftCol := leftRoom.center()
		rightRow, rightCol := rightRoom.center()

		if b.rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			b.corridorHorizontal(leftRow, leftCol, rightCol)
			b.corridorVertical(rightCol, leftRow, rightRow)
		} else {
			// Vertical first, then horizontal
			b.corridorVertical(leftCol, leftRow, rightRow)
			b.corridorHorizontal(rightRow, leftCol, rightCol)
		}
	}

	b.connectRooms(node.left)
	b.connectRooms(node.right)
}

func (b *bspBuilder) corridorHorizontal(row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		carve(b.grid, row, col)
	}
}

func (b *bspBuilder) corridorVertical(col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		carve(b.grid, row, col)
	}
}

// pickRoom returns a clearing from a subtree, choosing a random leaf
func (b *bspBuilder) pickRoom(node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = b.pickRoom(node.left)
	}
	if node.right != nil {
		rightRoom = b.pickRoom(node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if b.rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all clearings from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
