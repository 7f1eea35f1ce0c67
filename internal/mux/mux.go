package mux

import (
	"context"
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"pokertrainer-server/pkg/puzzle"
	"pokertrainer-server/pkg/room"
	"pokertrainer-server/pkg/session"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

const uuidPattern = `{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}`

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version   string
	assembler *puzzle.Assembler
	sessions  *session.Manager
	pitBoss   *room.PitBoss
}

// NewMux returns a new HTTP mux.
// nextPuzzleDelay is how long a drill client sees its result before the next puzzle is dealt.
func NewMux(version string, assembler *puzzle.Assembler, sessions *session.Manager, nextPuzzleDelay time.Duration) *Mux {
	pitBoss := room.NewPitBoss(sessions, nextPuzzleDelay)
	pitBoss.StartShift()

	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		assembler: assembler,
		sessions:  sessions,
		pitBoss:   pitBoss,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/positions").Handler(this.getPositions())
		r.Methods(http.MethodPost).Path("/puzzle").Handler(this.postPuzzle())
		r.Methods(http.MethodGet).Path("/range/{stack:[0-9]+}").Handler(this.getRangeStack())
		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	}

	{
		sr := this.Router.PathPrefix("/session/" + uuidPattern).Subrouter()
		sr.Use(this.sessionMiddleware)

		sr.Methods(http.MethodGet).Path("").Handler(this.getSessionUUID())
		sr.Methods(http.MethodGet).Path("/ws").Handler(this.getSessionUUIDWS())
		sr.Methods(http.MethodPost).Path("/settings").Handler(this.postSessionUUIDSettings())
		sr.Methods(http.MethodPost).Path("/answer").Handler(this.postSessionUUIDAnswer())
		sr.Methods(http.MethodPost).Path("/next").Handler(this.postSessionUUIDNext())
	}

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		s, err := m.sessions.Get(r.Context(), uuid)
		if err != nil {
			writeError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, s)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func sessionFromContext(r *http.Request) *session.Session {
	return r.Context().Value(ctxSessionKey).(*session.Session)
}
