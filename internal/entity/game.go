package entity

// Outcome is the terminal result of a board, or OutcomeNone while play continues.
type Outcome string

const (
	OutcomeNone  Outcome = ""
	OutcomeXWins Outcome = "x_wins"
	OutcomeOWins Outcome = "o_wins"
	OutcomeDraw  Outcome = "draw"
)

func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeXWins:
		return X
	case OutcomeOWins:
		return O
	default:
		return Empty
	}
}

// Message - the text shown when the game ends.
func (that Outcome) Message() string {
	switch that {
	case OutcomeXWins, OutcomeOWins:
		return string(that.Winner()) + " wins!"
	case OutcomeDraw:
		return "Draw!"
	default:
		return ""
	}
}

// State of the turn-taking machine.
type State string

const (
	StateAwaitingHumanMove    State = "awaiting_human_move"
	StateAwaitingComputerMove State = "awaiting_computer_move"
	StateGameOver             State = "game_over"
)

// Session is the stored state of one game in flight.
type Session struct {
	ID               string  `json:"id"`
	Board            Board   `json:"board"`
	State            State   `json:"state"`
	Result           Outcome `json:"result"`
	LastHumanMove    *Move   `json:"last_human_move,omitempty"`
	LastComputerMove *Move   `json:"last_computer_move,omitempty"`
}

func (that *Session) IsFinished() bool {
	return that.State == StateGameOver
}
