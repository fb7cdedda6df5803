package elo

// Change is one player's rating movement after a match.
type Change struct {
	Before int `json:"before" msgpack:"before"`
	After  int `json:"after" msgpack:"after"`
	Change int `json:"change" msgpack:"change"`
}

// EloChanges holds the rating movement of the four player slots of a match.
// Player1 and Player2 played for team 1, Player3 and Player4 for team 2.
type EloChanges struct {
	Player1 Change `json:"player1" msgpack:"player1"`
	Player2 Change `json:"player2" msgpack:"player2"`
	Player3 Change `json:"player3" msgpack:"player3"`
	Player4 Change `json:"player4" msgpack:"player4"`
}

// Slots returns the changes in slot order.
func (c EloChanges) Slots() [4]Change {
	return [4]Change{c.Player1, c.Player2, c.Player3, c.Player4}
}

func (c *EloChanges) set(slot int, change Change) {
	switch slot {
	case 0:
		c.Player1 = change
	case 1:
		c.Player2 = change
	case 2:
		c.Player3 = change
	case 3:
		c.Player4 = change
	}
}
