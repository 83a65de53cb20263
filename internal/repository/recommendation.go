package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
)

type RecommendationRepository interface {
	Save(ctx context.Context, rec *entity.Recommendation) error
	Get(ctx context.Context, favored, turn entity.Cell, position entity.Board) (*entity.Recommendation, error)
	Delete(ctx context.Context, favored, turn entity.Cell, position entity.Board) error
}

type dbRecommendation struct {
	client *redis.Client
}

func NewRecommendationRepository(client *redis.Client) RecommendationRepository {
	return &dbRecommendation{
		client: client,
	}
}

// recommendationKey - the same board with another side to move has other
// children, so the turn is part of the key.
func recommendationKey(favored, turn entity.Cell, position entity.Board) string {
	return "recommendation:" + favored.String() + ":" + turn.String() + ":" + position.String()
}

func (that *dbRecommendation) Save(ctx context.Context, rec *entity.Recommendation) error {
	recJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not marshal recommendation: %w", err)
	}

	err = that.client.Set(ctx, recommendationKey(rec.Favored, rec.Turn, rec.Position), recJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set recommendation: %w", err)
	}

	return nil
}

func (that *dbRecommendation) Get(ctx context.Context, favored, turn entity.Cell, position entity.Board) (*entity.Recommendation, error) {
	response, err := that.client.Get(ctx, recommendationKey(favored, turn, position)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}

	var rec entity.Recommendation
	if err = json.Unmarshal([]byte(response), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendation: %w", err)
	}

	return &rec, nil
}

func (that *dbRecommendation) Delete(ctx context.Context, favored, turn entity.Cell, position entity.Board) error {
	deleted, err := that.client.Del(ctx, recommendationKey(favored, turn, position)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrNotFound
	}

	return nil
}
