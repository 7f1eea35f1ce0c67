package mux

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"pokertrainer-server/pkg/preflop"
	"pokertrainer-server/pkg/table"
)

type getPositionsResponse struct {
	PlayerCount int              `json:"playerCount"`
	Positions   []table.Position `json:"positions"`
}

func (m *Mux) getPositions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := strconv.Atoi(r.FormValue("players"))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("players must be a number"))
			return
		}

		positions, err := table.PositionsForPlayerCount(count)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, getPositionsResponse{
			PlayerCount: count,
			Positions:   positions,
		})
	}
}

// postPuzzle deals a single puzzle that is not attached to a session.
// The answer is included so the caller can grade it.
func (m *Mux) postPuzzle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings table.Settings
		if !decodeRequest(w, r, &settings) {
			return
		}

		p, err := m.assembler.Create(settings)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

func (m *Mux) getRangeStack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stack, err := strconv.Atoi(mux.Vars(r)["stack"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rt, ok := preflop.HeadsUpSB(stack)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, rt.Chart())
	}
}
