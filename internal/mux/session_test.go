package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/room"
	"pokertrainer-server/pkg/session"
	"pokertrainer-server/pkg/table"
)

var headsUpSB10 = table.Settings{
	GameType:     table.Cash,
	PlayerCount:  2,
	UserPosition: table.SB,
	BigBlinds:    10,
}

func TestMux_session(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	var s session.Session
	assertPost(t, ts, "/session", headsUpSB10, &s, http.StatusCreated)
	a.NotEmpty(s.UUID)
	a.Equal(headsUpSB10, s.Settings)
	a.Empty(s.Puzzle.CorrectAction)
	a.Empty(s.Puzzle.ActionDescription)

	var got session.Session
	assertGet(t, ts, "/session/"+s.UUID, &got, http.StatusOK)
	a.Equal(s.Puzzle.ID, got.Puzzle.ID)

	var errObj errorResponse
	assertPost(t, ts, "/session/"+s.UUID+"/answer", map[string]string{"action": "CHECK"}, &errObj, http.StatusBadRequest)
	assertPost(t, ts, "/session/"+s.UUID+"/answer", map[string]string{"action": "shove"}, &errObj, http.StatusBadRequest)
	a.Equal("unknown action for identifier: shove", errObj.Message)

	var res session.Result
	assertPost(t, ts, "/session/"+s.UUID+"/answer", map[string]string{"action": "fold"}, &res, http.StatusOK)
	a.True(res.Correct)
	a.Equal(action.Fold, res.CorrectAction)
	a.True(strings.HasPrefix(res.Feedback, "Correct! Fold with 32s."))
	a.Equal(session.Stats{Correct: 1, Total: 1}, res.Stats)

	assertPost(t, ts, "/session/"+s.UUID+"/answer", map[string]string{"action": "fold"}, &errObj, http.StatusConflict)

	// the answer is revealed once graded
	assertGet(t, ts, "/session/"+s.UUID, &got, http.StatusOK)
	a.True(got.Answered)
	a.Equal(action.Fold, got.Puzzle.CorrectAction)

	var next session.Session
	assertPost(t, ts, "/session/"+s.UUID+"/next", nil, &next, http.StatusOK)
	a.False(next.Answered)
	a.NotEqual(s.Puzzle.ID, next.Puzzle.ID)
	a.Equal(1, next.Stats.Total)

	settings := table.Settings{
		GameType:     table.MTT,
		PlayerCount:  9,
		UserPosition: table.HJ,
		BigBlinds:    25,
	}

	var updated session.Session
	assertPost(t, ts, "/session/"+s.UUID+"/settings", settings, &updated, http.StatusOK)
	a.Equal(settings, updated.Settings)
	a.Len(updated.Puzzle.Players, 9)

	settings.PlayerCount = 1
	assertPost(t, ts, "/session/"+s.UUID+"/settings", settings, &errObj, http.StatusBadRequest)
}

func TestMux_sessionNotFound(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/session/"+uuid.New().String(), &errObj, http.StatusNotFound)
	assert.Equal(t, "Not Found", errObj.Message)

	assertPost(t, ts, "/session/"+uuid.New().String()+"/next", nil, &errObj, http.StatusNotFound)

	// not a UUID, so no route matches
	assertGet(t, ts, "/session/abc", nil, http.StatusNotFound)
}

func TestMux_postSessionInvalid(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/session", table.Settings{
		GameType:     "POKER",
		PlayerCount:  2,
		UserPosition: table.SB,
		BigBlinds:    10,
	}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "invalid argument: unknown game type: POKER", errObj.Message)
}

func readResponse(t *testing.T, conn *websocket.Conn) *room.Response {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 2))
	var res room.Response
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatal(err)
	}

	return &res
}

func TestMux_getSessionUUIDWS(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	var s session.Session
	assertPost(t, ts, "/session", headsUpSB10, &s, http.StatusCreated)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/session/" + s.UUID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if !a.NoError(err) {
		return
	}
	defer conn.Close()

	res := readResponse(t, conn)
	a.Equal("session", res.Key)

	a.NoError(conn.WriteJSON(room.PayloadIn{Action: "answer", Subject: "RAISE", Context: "1"}))
	res = readResponse(t, conn)
	a.Equal("result", res.Key)
	a.Equal("FOLD", res.Value)
	a.Equal("1", res.Context)

	res = readResponse(t, conn)
	a.Equal("session", res.Key)

	var got session.Session
	assertGet(t, ts, "/session/"+s.UUID, &got, http.StatusOK)
	a.False(got.Answered)
	a.Equal(session.Stats{Incorrect: 1, Total: 1}, got.Stats)
}
