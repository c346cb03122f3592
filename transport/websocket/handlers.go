package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message) *Message {
	session, err := that.uGame.NewGame(ctx)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	return gameReply(msg.Action, session)
}

func (that *Server) handleGetGame(ctx context.Context, msg *Message) *Message {
	var payload gamePayload
	if err := decodePayload(msg, &payload); err != nil {
		return errorReply(msg.Action, err.Error())
	}

	session, err := that.uGame.GetGame(ctx, payload.ID)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	return gameReply(msg.Action, session)
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) *Message {
	var payload turnPayload
	if err := decodePayload(msg, &payload); err != nil {
		return errorReply(msg.Action, err.Error())
	}

	session, err := that.uGame.MakeTurn(ctx, payload.ID, entity.Move{Row: payload.Row, Col: payload.Col})
	if err != nil {
		return that.failure(msg.Action, err)
	}

	return gameReply(msg.Action, session)
}

func (that *Server) handleReset(ctx context.Context, msg *Message) *Message {
	var payload gamePayload
	if err := decodePayload(msg, &payload); err != nil {
		return errorReply(msg.Action, err.Error())
	}

	session, err := that.uGame.Reset(ctx, payload.ID)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	return gameReply(msg.Action, session)
}

// failure - client errors are echoed, anything else is logged and hidden.
func (that *Server) failure(action string, err error) *Message {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrNotYourTurn):
		return errorReply(action, err.Error())
	default:
		that.logger.Error("request failed", "action", action, "error", err)
		return errorReply(action, "internal error")
	}
}
