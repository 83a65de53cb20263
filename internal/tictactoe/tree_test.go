package tictactoe

import (
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fullTreeNodes  = 549946
	fullTreeLeaves = 255168
)

var (
	fullTreeOnce sync.Once
	fullTreeRoot *Node
)

// fullTree - the tree of the empty board with FirstPlayer to move, built once per test binary.
func fullTree(t *testing.T) *Node {
	t.Helper()

	fullTreeOnce.Do(func() {
		fullTreeRoot = NewTree(entity.Board{}, entity.FirstPlayer)
	})

	return fullTreeRoot
}

func walk(node *Node, visit func(parent, node *Node)) {
	for _, child := range node.Children {
		visit(node, child)
		walk(child, visit)
	}
}

func TestNewTree(t *testing.T) {
	t.Run("Empty board has nine first moves", func(t *testing.T) {
		root := fullTree(t)

		assert.Equal(t, 0, root.Level)
		require.Len(t, root.Children, 9)
		for _, child := range root.Children {
			assert.Equal(t, 1, child.Level)
			assert.Equal(t, 1, child.Board.Count(entity.FirstPlayer))
		}
	})

	t.Run("Complete enumeration", func(t *testing.T) {
		stats := Stats(fullTree(t))

		assert.Equal(t, fullTreeNodes, stats.Nodes)
		assert.Equal(t, fullTreeLeaves, stats.Leaves)
		assert.Equal(t, 9, stats.MaxDepth)
	})

	t.Run("Only finished positions have no children", func(t *testing.T) {
		root := fullTree(t)

		failures := 0
		check := func(node *Node) {
			_, resolved := node.Outcome()
			if node.IsTerminal() != (resolved || node.Board.IsFull()) {
				failures++
			}
			if resolved && len(node.Children) > 0 {
				failures++
			}
		}

		check(root)
		walk(root, func(_, node *Node) { check(node) })

		assert.Zero(t, failures)
	})

	t.Run("Each ply places exactly one mark of the side to move", func(t *testing.T) {
		root := fullTree(t)

		failures := 0
		walk(root, func(parent, node *Node) {
			row, col, ok := parent.Board.Diff(node.Board)
			side := entity.FirstPlayer
			if parent.Level%2 == 1 {
				side = entity.SecondPlayer
			}

			if !ok || node.Board[row][col] != side || node.Level != parent.Level+1 || node.Level > 9 {
				failures++
			}
			if parent.Turn != side || node.Turn != side.Opponent() {
				failures++
			}
		})

		assert.Zero(t, failures)
	})

	t.Run("Won position is resolved without children", func(t *testing.T) {
		// Given: a board already won by Cross
		board := mustParse(t, "XXX/OO./...")

		// When: building from it
		root := NewTree(board, entity.Naught)

		// Then: the root is terminal with Cross's win
		outcome, ok := root.Outcome()
		require.True(t, ok)
		assert.Equal(t, entity.SecondPlayerWin, outcome)
		assert.True(t, root.IsTerminal())
	})

	t.Run("Full board without a winner is an unresolved leaf", func(t *testing.T) {
		root := NewTree(mustParse(t, "OXO/OXX/XOO"), entity.Naught)

		_, ok := root.Outcome()
		assert.False(t, ok)
		assert.True(t, root.IsTerminal())
	})

	t.Run("Transpositions are not merged", func(t *testing.T) {
		// Given: a board reachable by two move orders
		root := fullTree(t)
		target := mustParse(t, "OX./O../...")

		// When: counting nodes holding that board
		count := 0
		walk(root, func(_, node *Node) {
			if node.Board == target {
				count++
			}
		})

		// Then: both move orders keep their own node
		assert.Equal(t, 2, count)
	})
}

func TestFind(t *testing.T) {
	t.Run("Root matches itself", func(t *testing.T) {
		root := fullTree(t)

		found, ok := Find(root, entity.Board{})

		require.True(t, ok)
		assert.Same(t, root, found)
	})

	t.Run("Finds the first node in depth-first order", func(t *testing.T) {
		root := fullTree(t)
		target := mustParse(t, "OX./O../...")

		found, ok := Find(root, target)

		// Then: the path through the first child (O at 0,0) is taken
		require.True(t, ok)
		assert.Equal(t, 3, found.Level)
		assert.True(t, found.Board.Equal(target))

		first, ok := Find(root.Children[0], target)
		require.True(t, ok)
		assert.Same(t, first, found)
	})

	t.Run("Unreachable position is not found", func(t *testing.T) {
		// Given: the board often quoted for "Cross closes row 1". Cross has more
		// marks than Naught, impossible when Naught opens. The reachable form of
		// that scenario, O.O/.XX/OOX, is covered by TestBestBranch.
		target := mustParse(t, ".../.XX/..O")

		// When: searching the tree
		found, ok := Find(fullTree(t), target)

		// Then: not found
		assert.False(t, ok)
		assert.Nil(t, found)
	})
}
