package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestSnapshotToJSON(t *testing.T) {
	c := testutil.MustController(t, engine.InitialFEN)
	testutil.MustPlay(t, c, "E2-E4")

	js := ControllerToJSON(c)
	testutil.AssertEqual(t, len(js.Squares), 64)
	testutil.AssertEqual(t, js.Squares[0], JSONSquare{Square: "A1", Piece: "R", Colour: "white", Kind: "rook"})
	testutil.AssertEqual(t, js.Squares[12], JSONSquare{Square: "E2"})
	testutil.AssertEqual(t, js.Squares[28], JSONSquare{Square: "E4", Piece: "P", Colour: "white", Kind: "pawn"})
	testutil.AssertEqual(t, js.ToMove, "black")
	testutil.AssertEqual(t, js.State, "InProgress")
	testutil.AssertEqual(t, js.EnPassant, "E4")
	testutil.AssertEqual(t, js.Castling.White, JSONCastlingRights{KingSide: true, QueenSide: true})
	testutil.AssertEqual(t, js.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	data, err := json.Marshal(js)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), `"toMove":"black"`)
	testutil.AssertContains(t, string(data), `"inCheck":false`)
	testutil.AssertContains(t, string(data), `{"square":"E2"}`)
}

func TestLegalMovesToJSON(t *testing.T) {
	c := testutil.MustController(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	from := testutil.MustCoordinate(t, "A7")

	jl := LegalMovesToJSON(from, c.LegalMovesFrom(from))
	testutil.AssertEqual(t, jl.From, "A7")
	testutil.AssertEqual(t, jl.Destinations, []string{"A8"})
	testutil.AssertEqual(t, len(jl.Moves), 4)

	empty := LegalMovesToJSON(testutil.MustCoordinate(t, "D4"), nil)
	data, err := json.Marshal(empty)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), `"destinations":[]`)
}

func TestWriteBoard(t *testing.T) {
	c := testutil.MustController(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	testutil.MustPlay(t, c, "A1-A8")

	var buf bytes.Buffer
	WriteBoard(&buf, c.Snapshot())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	testutil.AssertEqual(t, len(lines), 10)
	testutil.AssertEqual(t, lines[0], "8  R . . . . . k .")
	testutil.AssertEqual(t, lines[1], "7  . . . . . p p p")
	testutil.AssertEqual(t, lines[7], "1  . . . . . . K .")
	testutil.AssertEqual(t, lines[8], "   A B C D E F G H")
	testutil.AssertEqual(t, lines[9], "Black to move, WhiteWin, check")
}

func TestWriteMoves(t *testing.T) {
	c := testutil.MustController(t, engine.InitialFEN)

	var buf bytes.Buffer
	WriteMoves(&buf, c.LegalMoves(), 30)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		testutil.AssertTrue(t, len(line) <= 30, "line %q too long", line)
	}
	testutil.AssertEqual(t, len(strings.Fields(buf.String())), 20)
}

func TestMoveResultToJSON(t *testing.T) {
	c := testutil.MustController(t, engine.InitialFEN)

	m, err := testutil.ParseMove("E2-E5")
	testutil.AssertNoError(t, err)
	err = c.SubmitMove(m)
	rejected := MoveResultToJSON(ControllerToJSON(c), err)
	testutil.AssertFalse(t, rejected.Valid)
	testutil.AssertEqual(t, rejected.Reason, engine.ReasonBadShape)
	testutil.AssertEqual(t, rejected.Snapshot.ToMove, "white")

	testutil.MustPlay(t, c, "E2-E4")
	accepted := MoveResultToJSON(ControllerToJSON(c), nil)
	testutil.AssertTrue(t, accepted.Valid)
	testutil.AssertEqual(t, accepted.Reason, "")
	testutil.AssertEqual(t, accepted.Snapshot.ToMove, "black")

	data, jsonErr := json.Marshal(accepted)
	testutil.AssertNoError(t, jsonErr)
	testutil.AssertContains(t, string(data), `"valid":true`)
}
