package mux

import (
	"net/http"

	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/table"
)

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings table.Settings
		if !decodeRequest(w, r, &settings) {
			return
		}

		s, err := m.sessions.Start(r.Context(), settings)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, s.View())
	}
}

func (m *Mux) getSessionUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionFromContext(r).View())
	}
}

func (m *Mux) postSessionUUIDSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings table.Settings
		if !decodeRequest(w, r, &settings) {
			return
		}

		s, err := m.sessions.UpdateSettings(r.Context(), sessionFromContext(r).UUID, settings)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, s.View())
	}
}

type postSessionUUIDAnswerPayload struct {
	Action string `json:"action"`
}

func (m *Mux) postSessionUUIDAnswer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postSessionUUIDAnswerPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		a, err := action.FromString(payload.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		res, err := m.sessions.Answer(r.Context(), sessionFromContext(r).UUID, a)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

func (m *Mux) postSessionUUIDNext() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := m.sessions.Next(r.Context(), sessionFromContext(r).UUID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, s.View())
	}
}
