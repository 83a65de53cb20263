package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/apperror"
)

// Outcome is how a finished game ended. It is deliberately not a Cell.
type Outcome uint8

const (
	FirstPlayerWin Outcome = iota + 1
	SecondPlayerWin
	Draw
)

const (
	outcomeFirstPlayerWin  = "first-player-win"
	outcomeSecondPlayerWin = "second-player-win"
	outcomeDraw            = "draw"
)

func (that Outcome) String() string {
	switch that {
	case FirstPlayerWin:
		return outcomeFirstPlayerWin
	case SecondPlayerWin:
		return outcomeSecondPlayerWin
	case Draw:
		return outcomeDraw
	default:
		return fmt.Sprintf("outcome(%d)", uint8(that))
	}
}

// OutcomeFor - maps a winning side to its outcome.
func OutcomeFor(side Cell) (Outcome, error) {
	switch side {
	case FirstPlayer:
		return FirstPlayerWin, nil
	case SecondPlayer:
		return SecondPlayerWin, nil
	default:
		return 0, fmt.Errorf("%w: %s is not a side", apperror.ErrInvalidArgument, side)
	}
}

// Tally counts terminal leaves per outcome.
type Tally struct {
	FirstPlayer  int `json:"first_player"`
	SecondPlayer int `json:"second_player"`
	Draw         int `json:"draw"`
}

func (that *Tally) Add(outcome Outcome) {
	switch outcome {
	case FirstPlayerWin:
		that.FirstPlayer++
	case SecondPlayerWin:
		that.SecondPlayer++
	case Draw:
		that.Draw++
	}
}

func (that Tally) Count(outcome Outcome) int {
	switch outcome {
	case FirstPlayerWin:
		return that.FirstPlayer
	case SecondPlayerWin:
		return that.SecondPlayer
	case Draw:
		return that.Draw
	default:
		return 0
	}
}

func (that Tally) Total() int {
	return that.FirstPlayer + that.SecondPlayer + that.Draw
}

// NonLosing - wins for side plus draws. Zero for anything that is not a side.
func (that Tally) NonLosing(side Cell) int {
	win, err := OutcomeFor(side)
	if err != nil {
		return 0
	}

	return that.Count(win) + that.Draw
}
