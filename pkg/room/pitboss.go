package room

import (
	"time"

	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for dispatching clients to the dealer of their session
type PitBoss struct {
	sessions        Sessions
	nextPuzzleDelay time.Duration

	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(sessions Sessions, nextPuzzleDelay time.Duration) *PitBoss {
	return &PitBoss{
		sessions:        sessions,
		nextPuzzleDelay: nextPuzzleDelay,
		dealers:         make(map[string]*Dealer),
		connect:         make(chan *Client, 256),
		disconnect:      make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("session", client.String()).Debug("client connected")
			dealer, found := p.dealers[client.sessionUUID]
			if !found {
				dealer = NewDealer(client.sessionUUID, p.sessions, p.nextPuzzleDelay)
				dealer.StartShift()
				p.dealers[client.sessionUUID] = dealer
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("session", client.String()).Debug("client disconnected")
			dealer, found := p.dealers[client.sessionUUID]
			if !found {
				logrus.WithField("session", client.sessionUUID).WithField("type", "exception").Error("dealer not found")
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(p.dealers, client.sessionUUID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
