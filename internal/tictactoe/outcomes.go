package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
)

// BranchScore is the tally of one child subtree and its score for a side.
type BranchScore struct {
	Child *Node
	Tally entity.Tally
	Score int
}

// Tally - adds one count per terminal leaf under node to acc.
func Tally(node *Node, acc *entity.Tally) {
	if outcome, ok := node.Outcome(); ok {
		acc.Add(outcome)
		return
	}

	if len(node.Children) == 0 {
		acc.Add(entity.Draw)
		return
	}

	for _, child := range node.Children {
		Tally(child, acc)
	}
}

// Summarize - returns the tally of the subtree rooted at node.
func Summarize(node *Node) entity.Tally {
	var tally entity.Tally
	Tally(node, &tally)

	return tally
}

// ScoreBranches - scores every child of node for favored, in generator order.
// The score is the number of leaves favored does not lose.
func ScoreBranches(node *Node, favored entity.Cell) ([]BranchScore, error) {
	if !favored.IsSide() {
		return nil, fmt.Errorf("%w: favored side %s", apperror.ErrInvalidArgument, favored)
	}

	scores := make([]BranchScore, 0, len(node.Children))
	for _, child := range node.Children {
		tally := Summarize(child)
		scores = append(scores, BranchScore{
			Child: child,
			Tally: tally,
			Score: tally.NonLosing(favored),
		})
	}

	return scores, nil
}

// BestBranch - returns the child with the highest score for favored. On a tie
// the earliest child wins. A terminal node has no branches and is rejected.
func BestBranch(node *Node, favored entity.Cell) (*Node, error) {
	best, err := BestScore(node, favored)
	if err != nil {
		return nil, err
	}

	return best.Child, nil
}

// BestScore - like BestBranch, but keeps the winning branch's tally and score.
func BestScore(node *Node, favored entity.Cell) (BranchScore, error) {
	if len(node.Children) == 0 {
		return BranchScore{}, fmt.Errorf("%w: node at level %d has no children", apperror.ErrInvalidArgument, node.Level)
	}

	scores, err := ScoreBranches(node, favored)
	if err != nil {
		return BranchScore{}, err
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if score.Score > best.Score {
			best = score
		}
	}

	return best, nil
}
