package websocket

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lukev/innovation_server/internal/game"
	"github.com/lukev/innovation_server/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512 * 1024
)

var (
	newline = []byte{'\n'}
	space   = []byte{' '}
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	hub *Hub

	conn *websocket.Conn
	send chan []byte
	id   string

	deps ServerDeps

	seatsByGame map[string]int
}

type inboundMsg struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type outboundMsg struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type createGamePayload struct {
	Name    string `json:"name"`
	Creator string `json:"creator"`
	Seed    int64  `json:"seed"`
}

type joinGamePayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type startGamePayload struct {
	GameID string `json:"gameID"`
}

type gameStatePayload struct {
	GameID string `json:"gameID"`
	Name   string `json:"name,omitempty"`
}

type performActionPayload struct {
	GameID           string        `json:"gameID"`
	ActionID         string        `json:"actionId,omitempty"`
	ExpectedRevision *int          `json:"expectedRevision,omitempty"`
	Action           models.Action `json:"action"`
}

type submitChoicePayload struct {
	GameID           string              `json:"gameID"`
	ActionID         string              `json:"actionId,omitempty"`
	ExpectedRevision *int                `json:"expectedRevision,omitempty"`
	Answer           models.ChoiceAnswer `json:"answer"`
}

func (c *Client) bindSeat(gameID string, seat int) {
	if c.seatsByGame == nil {
		c.seatsByGame = make(map[string]int)
	}
	c.seatsByGame[gameID] = seat
}

func (c *Client) seatForGame(gameID string) (int, bool) {
	seat, ok := c.seatsByGame[gameID]
	return seat, ok
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}
		message = bytes.TrimSpace(bytes.ReplaceAll(message, newline, space))

		var env inboundMsg
		if err := json.Unmarshal(message, &env); err != nil {
			log.Printf("Received non-JSON message from %s: %s", c.id, string(message))
			continue
		}

		c.handleInboundMessage(env)
	}
}

func (c *Client) handleInboundMessage(env inboundMsg) {
	switch env.Type {
	case "list_games":
		c.reply("lobby_state", c.deps.Lobby.ListGames())

	case "create_game":
		c.handleCreateGame(env.Payload)

	case "join_game":
		c.handleJoinGame(env.Payload)

	case "start_game":
		c.handleStartGame(env.Payload)

	case "get_game_state":
		c.handleGetGameState(env.Payload)

	case "get_legal_actions":
		c.handleGetLegalActions(env.Payload)

	case "perform_action":
		c.handlePerformAction(env.Payload)

	case "submit_choice":
		c.handleSubmitChoice(env.Payload)

	default:
		log.Printf("Unknown message type: %s", env.Type)
	}
}

func (c *Client) handleCreateGame(payload json.RawMessage) {
	var p createGamePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("error parsing create_game payload: %v", err)
		return
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}

	meta := c.deps.Lobby.CreateGame(p.Name, p.Creator, p.Seed)
	c.bindSeat(meta.ID, 0)
	c.hub.JoinGame(c, meta.ID)
	c.reply("game_created", meta)
}

func (c *Client) handleJoinGame(payload json.RawMessage) {
	var p joinGamePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("error parsing join_game payload: %v", err)
		return
	}

	seat, ok := c.deps.Lobby.JoinGame(p.ID, p.Name)
	if !ok {
		c.sendError("join_failed")
		return
	}
	c.bindSeat(p.ID, seat)
	c.hub.JoinGame(c, p.ID)
	meta, _ := c.deps.Lobby.GetGame(p.ID)
	c.reply("game_joined", meta)
}

func (c *Client) handleStartGame(payload json.RawMessage) {
	var p startGamePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("error parsing start_game payload: %v", err)
		return
	}

	meta, ok := c.deps.Lobby.GetGame(p.GameID)
	if !ok {
		c.sendError("game_not_found")
		return
	}
	if !meta.Full() {
		c.sendError("game_not_full")
		return
	}
	if _, ok := c.seatForGame(p.GameID); !ok {
		c.sendError("not_in_game")
		return
	}

	_, err := c.deps.Games.CreateGame(p.GameID, meta.Seed, [game.NumPlayers]string{meta.Seats[0], meta.Seats[1]})
	if err != nil && err.Error() != "game already exists" {
		log.Printf("error creating game: %v", err)
		c.sendError("create_game_failed")
		return
	}
	c.deps.Lobby.MarkStarted(p.GameID)

	c.broadcastGameState(p.GameID)
}

func (c *Client) handleGetGameState(payload json.RawMessage) {
	var p gameStatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("error parsing get_game_state payload: %v", err)
		return
	}

	if _, ok := c.seatForGame(p.GameID); !ok {
		// Allow rebinding by name after a reconnect.
		if meta, found := c.deps.Lobby.GetGame(p.GameID); found && p.Name != "" {
			if seat := meta.SeatOf(p.Name); seat >= 0 {
				c.bindSeat(p.GameID, seat)
			}
		}
		if _, ok := c.seatForGame(p.GameID); !ok {
			c.sendError("not_in_game")
			return
		}
	}

	c.hub.JoinGame(c, p.GameID)
	if state := c.deps.Games.SerializeGameState(p.GameID); state != nil {
		c.reply("game_state_update", state)
	}
}

func (c *Client) handleGetLegalActions(payload json.RawMessage) {
	var p gameStatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("error parsing get_legal_actions payload: %v", err)
		return
	}

	seat, ok := c.seatForGame(p.GameID)
	if !ok {
		c.sendError("not_in_game")
		return
	}
	actions, err := c.deps.Games.LegalActions(p.GameID, seat)
	if err != nil {
		c.sendError("game_not_found")
		return
	}
	c.reply("legal_actions", map[string]any{"gameID": p.GameID, "actions": actions})
}

func (c *Client) handlePerformAction(payload json.RawMessage) {
	var p performActionPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("error parsing perform_action payload: %v", err)
		return
	}

	seat, ok := c.seatForGame(p.GameID)
	if !ok {
		c.sendError("not_in_game")
		return
	}
	p.Action.PlayerID = seat

	meta := game.ActionMeta{ActionID: p.ActionID, ExpectedRevision: -1}
	if p.ExpectedRevision != nil {
		meta.ExpectedRevision = *p.ExpectedRevision
	}

	outcome, err := c.deps.Games.ExecuteAction(p.GameID, p.Action, meta)
	if err != nil {
		c.sendEngineError(err)
		return
	}
	c.finishMutation(p.GameID, outcome)
}

func (c *Client) handleSubmitChoice(payload json.RawMessage) {
	var p submitChoicePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("error parsing submit_choice payload: %v", err)
		return
	}

	seat, ok := c.seatForGame(p.GameID)
	if !ok {
		c.sendError("not_in_game")
		return
	}
	p.Answer.PlayerID = seat

	meta := game.ActionMeta{ActionID: p.ActionID, ExpectedRevision: -1}
	if p.ExpectedRevision != nil {
		meta.ExpectedRevision = *p.ExpectedRevision
	}

	outcome, err := c.deps.Games.ExecuteChoice(p.GameID, p.Answer, meta)
	if err != nil {
		c.sendEngineError(err)
		return
	}
	c.finishMutation(p.GameID, outcome)
}

// finishMutation acknowledges the caller and pushes the fresh state to
// every subscriber, including the pending choice when the engine
// suspended.
func (c *Client) finishMutation(gameID string, outcome *game.ActionOutcome) {
	ack := map[string]any{
		"gameID":    gameID,
		"revision":  outcome.Revision,
		"duplicate": outcome.Duplicate,
	}
	if outcome.Step != nil {
		ack["events"] = outcome.Step.Events
		ack["phase"] = outcome.Step.NextPhase.String()
		if outcome.Step.PendingChoice != nil {
			ack["pendingChoice"] = outcome.Step.PendingChoice
		}
		if outcome.Step.Winner != nil {
			ack["winner"] = *outcome.Step.Winner
			ack["winCondition"] = string(outcome.Step.WinCondition)
		}
	}
	c.reply("action_result", ack)
	c.broadcastGameState(gameID)
}

func (c *Client) broadcastGameState(gameID string) {
	state := c.deps.Games.SerializeGameState(gameID)
	if state == nil {
		return
	}
	out, _ := json.Marshal(outboundMsg{Type: "game_state_update", Payload: state})
	c.hub.BroadcastToGame(gameID, out)
}

// sendEngineError maps engine error families onto coded client errors.
func (c *Client) sendEngineError(err error) {
	var actErr *game.IllegalActionError
	var chErr *game.IllegalChoiceError
	var revErr *game.RevisionMismatchError

	switch {
	case errors.As(err, &actErr):
		c.reply("error", map[string]any{"error": "illegal_action", "reason": string(actErr.Reason), "detail": actErr.Detail})
	case errors.As(err, &chErr):
		c.reply("error", map[string]any{"error": "illegal_choice", "reason": string(chErr.Reason), "detail": chErr.Detail})
	case errors.As(err, &revErr):
		c.reply("error", map[string]any{"error": "revision_mismatch", "expected": revErr.Expected, "current": revErr.Current})
	default:
		log.Printf("engine error: %v", err)
		c.sendError("internal_error")
	}
}

func (c *Client) reply(typ string, payload any) {
	out, err := json.Marshal(outboundMsg{Type: typ, Payload: payload})
	if err != nil {
		log.Printf("error encoding %s message: %v", typ, err)
		return
	}
	c.send <- out
}

func (c *Client) sendError(code string) {
	c.reply("error", map[string]any{"error": code})
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = w.Write(message)

			// Drain any queued messages into the same frame batch.
			n := len(c.send)
			for i := 0; i < n; i++ {
				_, _ = w.Write(newline)
				_, _ = w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
