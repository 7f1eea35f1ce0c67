package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/session"
)

// Sessions grades and deals for a session
type Sessions interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	Answer(ctx context.Context, id string, a action.Action) (*session.Result, error)
	Next(ctx context.Context, id string) (*session.Session, error)
}

// Dealer runs the drill for one session and keeps every connected client in sync
type Dealer struct {
	sessionUUID     string
	sessions        Sessions
	nextPuzzleDelay time.Duration

	clients map[*Client]bool
	lock    sync.RWMutex

	// nextDeal and generation are only touched in the run loop
	nextDeal   *time.Timer
	generation int

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(sessionUUID string, sessions Sessions, nextPuzzleDelay time.Duration) *Dealer {
	return &Dealer{
		sessionUUID:     sessionUUID,
		sessions:        sessions,
		nextPuzzleDelay: nextPuzzleDelay,
		clients:         make(map[*Client]bool),
		execInRunLoop:   make(chan func(), 256),
		close:           make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop and any pending deal
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) runLoop() {
	log := logrus.WithField("session", d.sessionUUID)

	log.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			if d.nextDeal != nil {
				d.nextDeal.Stop()
			}

			log.Debug("terminating dealer run loop")
			return
		}
	}
}

func (d *Dealer) exec(fn func()) {
	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
	}
}

// AddClient adds a client and sends it the current session
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.exec(func() {
		d.sendSession(client, "")
	})
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	defer d.lock.Unlock()

	delete(d.clients, client)
	return len(d.clients) == 0
}

// ReceivedMessage handles a message from a client in the run loop
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	d.exec(func() {
		d.handle(c, msg)
	})
}

func (d *Dealer) handle(c *Client, msg *PayloadIn) {
	ctx := context.Background()

	switch msg.Action {
	case "answer":
		a, err := action.FromString(msg.Subject)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		res, err := d.sessions.Answer(ctx, d.sessionUUID, a)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		d.broadcast(&Response{
			Key:     "result",
			Value:   string(res.CorrectAction),
			Data:    res,
			Context: msg.Context,
		})

		d.scheduleNextDeal()
	case "next":
		d.cancelNextDeal()
		d.deal(msg.Context)
	case "session":
		d.sendSession(c, msg.Context)
	default:
		c.Send(newErrorResponse(msg.Context, errors.New("unknown action")))
	}
}

// scheduleNextDeal deals a new puzzle after the configured delay
func (d *Dealer) scheduleNextDeal() {
	d.cancelNextDeal()

	generation := d.generation
	d.nextDeal = time.AfterFunc(d.nextPuzzleDelay, func() {
		d.exec(func() {
			if generation != d.generation {
				return
			}

			d.nextDeal = nil
			d.deal("")
		})
	})
}

func (d *Dealer) cancelNextDeal() {
	d.generation++
	if d.nextDeal != nil {
		d.nextDeal.Stop()
		d.nextDeal = nil
	}
}

func (d *Dealer) deal(ctx string) {
	s, err := d.sessions.Next(context.Background(), d.sessionUUID)
	if err != nil {
		logrus.WithError(err).WithField("session", d.sessionUUID).Error("could not deal")
		d.broadcast(newErrorResponse(ctx, err))
		return
	}

	d.broadcast(&Response{
		Key:     "session",
		Data:    s.View(),
		Context: ctx,
	})
}

func (d *Dealer) sendSession(c *Client, ctx string) {
	s, err := d.sessions.Get(context.Background(), d.sessionUUID)
	if err != nil {
		c.Send(newErrorResponse(ctx, err))
		return
	}

	c.Send(&Response{
		Key:     "session",
		Data:    s.View(),
		Context: ctx,
	})
}

func (d *Dealer) broadcast(res *Response) {
	for _, client := range d.Clients() {
		if !client.Send(res) {
			logrus.WithField("session", d.sessionUUID).Warn("client send buffer is full")
		}
	}
}
