package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pokertrainer-server/internal/rng"
	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/deck"
	"pokertrainer-server/pkg/puzzle"
	"pokertrainer-server/pkg/session"
	"pokertrainer-server/pkg/table"
)

func newTestSession(t *testing.T) (*session.Manager, *session.Session) {
	t.Helper()

	// identity shuffle: the small blind is dealt 2c3c, a 10bb fold
	asm, err := puzzle.New(puzzle.DefaultOptions(),
		puzzle.WithGenerator(rng.Last{}),
		puzzle.WithShuffler(deck.NewShuffler(rng.Last{})),
	)
	assert.NoError(t, err)

	m := session.NewManager(session.NewMemoryStore(), asm)
	s, err := m.Start(context.Background(), table.Settings{
		GameType:     table.Cash,
		PlayerCount:  2,
		UserPosition: table.SB,
		BigBlinds:    10,
	})
	assert.NoError(t, err)

	return m, s
}

func receive(t *testing.T, c *Client) *Response {
	t.Helper()

	select {
	case msg := <-c.SendChan():
		return msg.(*Response)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a message")
		return nil
	}
}

func TestDealer_AddClient(t *testing.T) {
	m, s := newTestSession(t)
	d := NewDealer(s.UUID, m, time.Hour)
	d.StartShift()
	defer d.EndShift()

	c := NewClient(nil, s.UUID)
	c2 := NewClient(nil, s.UUID)

	d.AddClient(c)
	d.AddClient(c2)

	res := receive(t, c)
	assert.Equal(t, "session", res.Key)
	view := res.Data.(*session.Session)
	assert.Equal(t, s.UUID, view.UUID)
	assert.Empty(t, view.Puzzle.CorrectAction)

	assert.Equal(t, "session", receive(t, c2).Key)
	assert.Len(t, d.Clients(), 2)

	assert.False(t, d.RemoveClient(c))
	assert.True(t, d.RemoveClient(c2))
}

func TestDealer_Answer(t *testing.T) {
	a := assert.New(t)

	m, s := newTestSession(t)
	d := NewDealer(s.UUID, m, time.Millisecond*10)
	d.StartShift()
	defer d.EndShift()

	c := NewClient(nil, s.UUID)
	d.AddClient(c)
	a.Equal("session", receive(t, c).Key)

	c.ReceivedMessage(&PayloadIn{Action: "answer", Subject: "fold", Context: "a1"})
	res := receive(t, c)
	a.Equal("result", res.Key)
	a.Equal("FOLD", res.Value)
	a.Equal("a1", res.Context)
	result := res.Data.(*session.Result)
	a.True(result.Correct)
	a.Equal(1, result.Stats.Total)

	// the next puzzle follows on its own
	res = receive(t, c)
	a.Equal("session", res.Key)
	view := res.Data.(*session.Session)
	a.False(view.Answered)
	a.NotEqual(s.Puzzle.ID, view.Puzzle.ID)
	a.Equal(1, view.Stats.Total)
}

func TestDealer_Next(t *testing.T) {
	a := assert.New(t)

	m, s := newTestSession(t)
	d := NewDealer(s.UUID, m, time.Hour)
	d.StartShift()
	defer d.EndShift()

	c := NewClient(nil, s.UUID)
	d.AddClient(c)
	a.Equal("session", receive(t, c).Key)

	c.ReceivedMessage(&PayloadIn{Action: "answer", Subject: "RAISE"})
	result := receive(t, c).Data.(*session.Result)
	a.False(result.Correct)
	a.Equal(action.Fold, result.CorrectAction)

	c.ReceivedMessage(&PayloadIn{Action: "next", Context: "n1"})
	res := receive(t, c)
	a.Equal("session", res.Key)
	a.Equal("n1", res.Context)
	a.False(res.Data.(*session.Session).Answered)
}

func TestDealer_Errors(t *testing.T) {
	a := assert.New(t)

	m, s := newTestSession(t)
	d := NewDealer(s.UUID, m, time.Hour)
	d.StartShift()
	defer d.EndShift()

	c := NewClient(nil, s.UUID)
	d.AddClient(c)
	a.Equal("session", receive(t, c).Key)

	c.ReceivedMessage(&PayloadIn{Action: "answer", Subject: "shove", Context: "e1"})
	res := receive(t, c)
	a.Equal("error", res.Key)
	a.Equal("unknown action for identifier: shove", res.Value)
	a.Equal("e1", res.Context)

	c.ReceivedMessage(&PayloadIn{Action: "answer", Subject: "CHECK"})
	a.Equal("error", receive(t, c).Key)

	c.ReceivedMessage(&PayloadIn{Action: "dance"})
	res = receive(t, c)
	a.Equal("error", res.Key)
	a.Equal("unknown action", res.Value)

	c.ReceivedMessage(&PayloadIn{Action: "answer", Subject: "FOLD"})
	a.Equal("result", receive(t, c).Key)
	c.ReceivedMessage(&PayloadIn{Action: "answer", Subject: "FOLD"})
	res = receive(t, c)
	a.Equal("error", res.Key)
	a.Equal(session.ErrAlreadyAnswered.Error(), res.Value)
}

func TestClient_ReceivedMessageWithoutDealer(t *testing.T) {
	c := NewClient(nil, "x")
	c.ReceivedMessage(&PayloadIn{Action: "next"})
	assert.Len(t, c.SendChan(), 0)
}

func TestClient_Send(t *testing.T) {
	c := NewClient(nil, "x")
	for i := 0; i < 256; i++ {
		assert.True(t, c.Send(OK()))
	}

	assert.False(t, c.Send(OK()))
	assert.Equal(t, "x", c.String())
}

func TestPitBoss(t *testing.T) {
	m, s := newTestSession(t)
	p := NewPitBoss(m, time.Hour)
	p.StartShift()

	c := NewClient(nil, s.UUID)
	p.ClientConnected(c)
	assert.Equal(t, "session", receive(t, c).Key)

	p.ClientDisconnected(c)
}

func TestOK(t *testing.T) {
	assert.Equal(t, &Response{Key: "status", Value: "OK"}, OK())
	assert.Equal(t, &Response{Key: "status", Value: "OK", Context: "ctx"}, OK("ctx"))
}
