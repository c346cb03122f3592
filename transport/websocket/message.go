package websocket

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionGetGame = "game:get"
	actionTurn    = "game:turn"
	actionReset   = "game:reset"
	actionError   = "error"
)

// Message is the envelope for both directions.
type Message struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

type gamePayload struct {
	ID string `mapstructure:"id"`
}

type turnPayload struct {
	ID  string `mapstructure:"id"`
	Row int    `mapstructure:"row"`
	Col int    `mapstructure:"col"`
}

func decodePayload(msg *Message, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err = decoder.Decode(msg.Payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", msg.Action, err)
	}

	return nil
}

func gameReply(action string, session *entity.Session) *Message {
	return &Message{
		Action:  action,
		Payload: map[string]any{"game": session},
	}
}

func errorReply(action, message string) *Message {
	return &Message{
		Action: actionError,
		Payload: map[string]any{
			"request": action,
			"message": message,
		},
	}
}
