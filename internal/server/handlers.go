package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

func (s *Server) createGame(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	var g *session.Game
	if req.FEN == "" {
		g = s.games.Create()
	} else {
		var err error
		if g, err = s.games.CreateFromFEN(req.FEN); err != nil {
			return err
		}
	}

	snapshot, err := s.snapshot(g)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(CreateResponse{ID: g.ID, Snapshot: snapshot})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	snapshot, err := s.snapshot(g)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.games.Delete(id); err != nil {
		return err
	}
	s.hub.closeGame(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) submitMove(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	snapshot, err := s.play(g, req)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

func (s *Server) setupGame(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	var req SetupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	placements, toMove, err := req.Parse()
	if err != nil {
		return err
	}

	var snapshot *output.JSONSnapshot
	err = g.Do(func(ctrl *engine.Controller) error {
		if err := ctrl.ManualSetup(placements, toMove); err != nil {
			return err
		}
		snapshot = output.ControllerToJSON(ctrl)
		s.hub.broadcastState(g.ID, snapshot)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	from, err := chess.ParseCoordinate(c.Query("from"))
	if err != nil {
		return err
	}

	var moves []chess.MoveRequest
	err = g.Do(func(ctrl *engine.Controller) error {
		moves = ctrl.LegalMovesFrom(from)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(output.LegalMovesToJSON(from, moves))
}

// play submits req to g. An accepted move is broadcast to the game's
// websocket clients while the game is still locked, so clients see
// positions in the order they were played.
func (s *Server) play(g *session.Game, req MoveRequest) (*output.JSONSnapshot, error) {
	m, err := req.Parse()
	if err != nil {
		return nil, err
	}

	var snapshot *output.JSONSnapshot
	err = g.Do(func(ctrl *engine.Controller) error {
		if err := ctrl.SubmitMove(m); err != nil {
			return err
		}
		snapshot = output.ControllerToJSON(ctrl)
		s.hub.broadcastState(g.ID, snapshot)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *Server) snapshot(g *session.Game) (*output.JSONSnapshot, error) {
	var snapshot *output.JSONSnapshot
	err := g.Do(func(ctrl *engine.Controller) error {
		snapshot = output.ControllerToJSON(ctrl)
		return nil
	})
	return snapshot, err
}
