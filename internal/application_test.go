package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/config"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("Position defaults to the start board", func(t *testing.T) {
		// Given: a config without a position
		conf := config.Analysis{
			StartBoard:  "O../.../...",
			FirstToMove: "X",
			Favored:     "O",
		}

		// When: parsing it
		params, err := parseAnalysis(conf)

		// Then: the start board is analyzed
		require.NoError(t, err)
		assert.Equal(t, params.start, params.position)
		assert.Equal(t, entity.Naught, params.start[0][0])
		assert.Equal(t, entity.Cross, params.first)
		assert.Equal(t, entity.Naught, params.favored)
	})

	t.Run("Error on bad board", func(t *testing.T) {
		conf := config.Analysis{StartBoard: "OOO", FirstToMove: "O", Favored: "O"}

		_, err := parseAnalysis(conf)

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Error on favored side that is not a player", func(t *testing.T) {
		conf := config.Analysis{StartBoard: ".../.../...", FirstToMove: "O", Favored: "."}

		_, err := parseAnalysis(conf)

		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}
