package game

// State is a phase of the game flow.
type State int

const (
	Intro State = iota
	Cinematic
	Countdown
	Playing
	Winning
	GameOver
)

var stateNames = [...]string{"intro", "cinematic", "countdown", "playing", "winning", "gameover"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// transitions lists every legal edge.
var transitions = map[State][]State{
	Intro:     {Cinematic},
	Cinematic: {Countdown},
	Countdown: {Playing},
	Playing:   {Winning, GameOver},
	Winning:   {Cinematic},
	GameOver:  {Intro},
}

// CanTransition reports whether from may move to to.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
