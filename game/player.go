package game

// Player is one of the two monorail players.
type Player uint8

const (
	YeonSeung Player = iota
	JunSeok
)

// Opponent swaps the two players. It is its own inverse.
func (p Player) Opponent() Player {
	if p == YeonSeung {
		return JunSeok
	}
	return YeonSeung
}

func (p Player) String() string {
	if p == YeonSeung {
		return "YeonSeung"
	}
	return "JunSeok"
}
