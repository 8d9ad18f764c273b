package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	sessions *sessionRegistry
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		sessions: newSessionRegistry(),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Use(this.sessionMiddleware)

	gr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
	gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameUUIDWS())
	gr.Methods(http.MethodPost).Path("/bet").Handler(this.postGameUUIDBet())
	gr.Methods(http.MethodPost).Path("/deal").Handler(this.postGameUUIDDeal())
	gr.Methods(http.MethodPost).Path("/hit").Handler(this.postGameUUIDHit())
	gr.Methods(http.MethodPost).Path("/stand").Handler(this.postGameUUIDStand())
	gr.Methods(http.MethodPost).Path("/new-hand").Handler(this.postGameUUIDNewHand())
	gr.Methods(http.MethodPost).Path("/reset-balance").Handler(this.postGameUUIDResetBalance())

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := gmux.Vars(r)["uuid"]

		sess, ok := m.sessions.get(id)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		ctx := context.WithValue(r.Context(), ctxSessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
