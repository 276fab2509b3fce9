package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// connection is the part of a websocket connection the hub uses.
type connection interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// client serialises writes to one connection.
type client struct {
	mu   sync.Mutex
	conn connection
}

func (cl *client) send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteMessage(websocket.TextMessage, data)
}

func (cl *client) close() error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.Close()
}

// hub tracks the websocket clients watching each game.
type hub struct {
	mu      sync.Mutex
	clients map[string]map[*client]struct{} // game id -> clients
}

func newHub() *hub {
	return &hub{clients: make(map[string]map[*client]struct{})}
}

func (h *hub) register(gameID string, conn connection) *client {
	cl := &client{conn: conn}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[gameID] == nil {
		h.clients[gameID] = make(map[*client]struct{})
	}
	h.clients[gameID][cl] = struct{}{}
	return cl
}

func (h *hub) unregister(gameID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[gameID], cl)
	if len(h.clients[gameID]) == 0 {
		delete(h.clients, gameID)
	}
}

// closeGame closes and forgets every client of a deleted game. Closing the
// connection ends the client's read loop.
func (h *hub) closeGame(gameID string) {
	clients := h.watching(gameID)
	h.mu.Lock()
	delete(h.clients, gameID)
	h.mu.Unlock()

	for _, cl := range clients {
		cl.close() //nolint:errcheck,gosec // G104: the game is gone either way
	}
}

// watching returns the clients of gameID at the time of the call.
func (h *hub) watching(gameID string) []*client {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*client, 0, len(h.clients[gameID]))
	for cl := range h.clients[gameID] {
		out = append(out, cl)
	}
	return out
}

// broadcastState sends snapshot to every client of gameID. Write failures
// are left to each connection's read loop to notice.
func (h *hub) broadcastState(gameID string, snapshot *output.JSONSnapshot) {
	msg, err := newMessage(MessageTypeGameState, snapshot)
	if err != nil {
		return
	}
	for _, cl := range h.watching(gameID) {
		cl.send(msg) //nolint:errcheck // a dead connection is dropped by its reader
	}
}

// upgrade admits only websocket upgrades for games that exist.
func (s *Server) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if _, err := s.games.Get(c.Params("id")); err != nil {
		return err
	}
	return c.Next()
}

// serveGame runs one websocket connection: it sends the current position,
// then applies move messages until the client disconnects. Each move gets
// a moveResult reply; accepted moves also reach every client as gameState.
func (s *Server) serveGame(conn *websocket.Conn) {
	gameID := conn.Params("id")
	g, err := s.games.Get(gameID)
	if err != nil {
		conn.Close()
		return
	}

	// Registering under the game lock keeps the first gameState ahead of
	// any broadcast from a later move.
	var cl *client
	err = g.Do(func(ctrl *engine.Controller) error {
		cl = s.hub.register(gameID, conn)
		msg, err := newMessage(MessageTypeGameState, output.ControllerToJSON(ctrl))
		if err != nil {
			return err
		}
		return cl.send(msg)
	})
	if cl != nil {
		defer s.hub.unregister(gameID, cl)
	}
	if err != nil {
		s.cfg.Logf(2, "game %s: websocket client dropped: %v", gameID, err)
		conn.Close()
		return
	}
	s.cfg.Logf(2, "game %s: websocket client connected", gameID)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			s.cfg.Logf(2, "game %s: websocket client gone: %v", gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		result, err := s.handleMessage(g, data)
		if err != nil {
			s.sendError(cl, err)
			continue
		}
		if msg, err := newMessage(MessageTypeMoveResult, result); err == nil {
			cl.send(msg) //nolint:errcheck // the read loop notices a dead connection
		}
	}
}

// handleMessage applies one client message to g. A move the engine rejects
// is reported in the result; the error is reserved for messages that are
// not moves at all and for games that no longer exist.
func (s *Server) handleMessage(g *session.Game, data []byte) (*output.JSONMoveResult, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", chesserrors.ErrMalformedNotation, err)
	}

	switch msg.Type {
	case MessageTypeMove:
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, fmt.Errorf("%w: %v", chesserrors.ErrMalformedNotation, err)
		}
		snapshot, err := s.play(g, req)
		var moveErr *chesserrors.MoveError
		switch {
		case err == nil:
			return output.MoveResultToJSON(snapshot, nil), nil
		case errors.As(err, &moveErr):
			current, snapErr := s.snapshot(g)
			if snapErr != nil {
				return nil, snapErr
			}
			return output.MoveResultToJSON(current, err), nil
		default:
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown message type %q: %w", msg.Type, chesserrors.ErrMalformedNotation)
	}
}

func (s *Server) sendError(cl *client, err error) {
	resp := ErrorResponse{Error: err.Error()}
	var moveErr *chesserrors.MoveError
	if errors.As(err, &moveErr) {
		resp.Reason = moveErr.Reason
	}
	if msg, mErr := newMessage(MessageTypeError, resp); mErr == nil {
		cl.send(msg) //nolint:errcheck // the read loop notices a dead connection
	}
}
