package entity

// Recommendation is the advised continuation of a position for one side.
// Turn is the side to move at Position.
type Recommendation struct {
	Position Board `json:"position"`
	Turn     Cell  `json:"turn"`
	Favored  Cell  `json:"favored"`
	Next     Board `json:"next"`
	Row      int   `json:"row"`
	Col      int   `json:"col"`
	Cell     int   `json:"cell"`
	Score    int   `json:"score"`
	Tally    Tally `json:"tally"`
}
