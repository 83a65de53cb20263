package tictactoe

import "github.com/rocketscienceinc/tictactoe-advisor/internal/entity"

// Node is one position in the game tree. It owns its board copy and its
// children; a node with a resolved outcome never has children.
type Node struct {
	Board    entity.Board
	Children []*Node
	Level    int
	// Turn is the side placing the next mark; the children depend only on
	// Board and Turn.
	Turn entity.Cell

	outcome  entity.Outcome
	resolved bool
}

// Outcome - returns the resolved outcome of a won position. Draw leaves are
// not resolved here: they are the childless nodes without an outcome.
func (that *Node) Outcome() (entity.Outcome, bool) {
	return that.outcome, that.resolved
}

// IsTerminal reports whether the game is over at this node.
func (that *Node) IsTerminal() bool {
	return len(that.Children) == 0
}

// NewTree - builds the complete game tree rooted at board, with next placing
// the first mark.
func NewTree(board entity.Board, next entity.Cell) *Node {
	root := &Node{Board: board}
	Build(root, next)

	return root
}

// Build - populates node's descendants in place. A won position is resolved
// and gets no children; a full board simply yields none.
func Build(node *Node, next entity.Cell) {
	node.Turn = next

	if winner, ok := Winner(node.Board); ok {
		// Winner only reports sides, so the mapping cannot fail.
		node.outcome, _ = entity.OutcomeFor(winner)
		node.resolved = true

		return
	}

	boards := NextBoards(node.Board, next)
	node.Children = make([]*Node, 0, len(boards))
	for _, board := range boards {
		node.Children = append(node.Children, &Node{
			Board: board,
			Level: node.Level + 1,
		})
	}

	for _, child := range node.Children {
		Build(child, next.Opponent())
	}
}

// Find - returns the first node equal to target in depth-first order, root included.
func Find(root *Node, target entity.Board) (*Node, bool) {
	if root.Board.Equal(target) {
		return root, true
	}

	for _, child := range root.Children {
		if found, ok := Find(child, target); ok {
			return found, true
		}
	}

	return nil, false
}
