package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/config"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/render"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/repository"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/usecase"
)

// analysis is the parsed form of config.Analysis.
type analysis struct {
	start    entity.Board
	first    entity.Cell
	position entity.Board
	favored  entity.Cell
}

func parseAnalysis(conf config.Analysis) (*analysis, error) {
	start, err := entity.ParseBoard(conf.StartBoard)
	if err != nil {
		return nil, fmt.Errorf("start board: %w", err)
	}

	first, err := entity.ParseSide(conf.FirstToMove)
	if err != nil {
		return nil, fmt.Errorf("first to move: %w", err)
	}

	position, err := entity.ParseBoard(conf.GetPosition())
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}

	favored, err := entity.ParseSide(conf.Favored)
	if err != nil {
		return nil, fmt.Errorf("favored: %w", err)
	}

	return &analysis{
		start:    start,
		first:    first,
		position: position,
		favored:  favored,
	}, nil
}

// RunApp - builds the game tree and prints the recommendation for the configured position.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	params, err := parseAnalysis(conf.Analysis)
	if err != nil {
		return fmt.Errorf("invalid analysis config: %w", err)
	}

	var recRepo repository.RecommendationRepository
	if conf.Redis.Enabled {
		redisStorage, connErr := storage.New(ctx, conf.Redis.GetRedisAddr())
		if connErr != nil {
			return fmt.Errorf("could not connect to redis storage: %w", connErr)
		}

		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		recRepo = repository.NewRecommendationRepository(redisStorage)
	}

	started := time.Now()
	tree := tictactoe.NewTree(params.start, params.first)
	stats := tictactoe.Stats(tree)

	log.Info("game tree built",
		"start", params.start.String(),
		"first", params.first.String(),
		"nodes", stats.Nodes,
		"leaves", stats.Leaves,
		"max_depth", stats.MaxDepth,
		"elapsed", time.Since(started).String(),
	)

	advisor := usecase.NewAdvisor(logger, tree, recRepo)

	tally, err := advisor.Analyze(ctx, params.position)
	if err != nil {
		return fmt.Errorf("failed to analyze position: %w", err)
	}

	log.Info("position analyzed",
		"position", params.position.String(),
		"first_player_wins", tally.FirstPlayer,
		"second_player_wins", tally.SecondPlayer,
		"draws", tally.Draw,
	)

	rec, err := advisor.Recommend(ctx, params.position, params.favored)
	if err != nil {
		return fmt.Errorf("failed to recommend a move: %w", err)
	}

	log.Info("move recommended",
		"favored", rec.Favored.String(),
		"cell", rec.Cell,
		"next", rec.Next.String(),
		"score", rec.Score,
	)

	renderer := render.New(os.Stdout)
	if err = renderer.Print(renderer.Recommendation(rec)); err != nil {
		return fmt.Errorf("failed to print recommendation: %w", err)
	}

	return nil
}
