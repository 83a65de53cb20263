package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/tictactoe"
)

type recommendationRepo interface {
	Save(ctx context.Context, rec *entity.Recommendation) error
	Get(ctx context.Context, favored, turn entity.Cell, position entity.Board) (*entity.Recommendation, error)
}

// Advisor answers questions about positions of a single, already built tree.
// The tree is only read, so an Advisor may be shared between goroutines.
type Advisor struct {
	logger *slog.Logger
	tree   *tictactoe.Node

	// recRepo is optional; nil disables caching.
	recRepo recommendationRepo
}

func NewAdvisor(logger *slog.Logger, tree *tictactoe.Node, recRepo recommendationRepo) *Advisor {
	return &Advisor{
		logger: logger,
		tree:   tree,

		recRepo: recRepo,
	}
}

func (that *Advisor) Tree() *tictactoe.Node {
	return that.tree
}

// Recommend - returns the best continuation of position for favored.
func (that *Advisor) Recommend(ctx context.Context, position entity.Board, favored entity.Cell) (*entity.Recommendation, error) {
	log := that.logger.With("method", "Recommend", "position", position.String(), "favored", favored.String())

	if !favored.IsSide() {
		return nil, fmt.Errorf("%w: favored side %s", apperror.ErrInvalidArgument, favored)
	}

	node, err := that.locate(position)
	if err != nil {
		return nil, err
	}

	if node.IsTerminal() {
		return nil, fmt.Errorf("%w: position %s", apperror.ErrGameFinished, position)
	}

	if rec := that.getCached(ctx, log, node, favored); rec != nil {
		return rec, nil
	}

	best, err := tictactoe.BestScore(node, favored)
	if err != nil {
		return nil, fmt.Errorf("failed to select branch: %w", err)
	}

	row, col, ok := position.Diff(best.Child.Board)
	if !ok {
		return nil, fmt.Errorf("%w: branch is not a single move from %s", apperror.ErrInvalidBoard, position)
	}

	rec := &entity.Recommendation{
		Position: position,
		Turn:     node.Turn,
		Favored:  favored,
		Next:     best.Child.Board,
		Row:      row,
		Col:      col,
		Cell:     row*entity.Size + col,
		Score:    best.Score,
		Tally:    best.Tally,
	}

	log.Debug("recommendation computed", "next", rec.Next.String(), "score", rec.Score)

	that.saveCached(ctx, log, rec)

	return rec, nil
}

// Analyze - returns the outcome tally of every game continuing from position.
func (that *Advisor) Analyze(_ context.Context, position entity.Board) (entity.Tally, error) {
	node, err := that.locate(position)
	if err != nil {
		return entity.Tally{}, err
	}

	return tictactoe.Summarize(node), nil
}

func (that *Advisor) locate(position entity.Board) (*tictactoe.Node, error) {
	node, ok := tictactoe.Find(that.tree, position)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrPositionNotFound, position)
	}

	return node, nil
}

// getCached - a hit is only trusted when its move is one of node's children.
func (that *Advisor) getCached(ctx context.Context, log *slog.Logger, node *tictactoe.Node, favored entity.Cell) *entity.Recommendation {
	if that.recRepo == nil {
		return nil
	}

	rec, err := that.recRepo.Get(ctx, favored, node.Turn, node.Board)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil
	}

	if err != nil {
		log.Error("failed to read cached recommendation", "error", err)
		return nil
	}

	if rec == nil || !isChild(node, rec.Next) {
		log.Warn("cached recommendation is not a move from this position", "next", rec.Next.String())
		return nil
	}

	log.Debug("recommendation served from cache")

	return rec
}

func isChild(node *tictactoe.Node, board entity.Board) bool {
	for _, child := range node.Children {
		if child.Board.Equal(board) {
			return true
		}
	}

	return false
}

func (that *Advisor) saveCached(ctx context.Context, log *slog.Logger, rec *entity.Recommendation) {
	if that.recRepo == nil {
		return
	}

	if err := that.recRepo.Save(ctx, rec); err != nil {
		log.Error("failed to cache recommendation", "error", err)
	}
}
