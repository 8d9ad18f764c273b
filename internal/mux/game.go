package mux

import (
	"net/http"

	"blackjack-server/internal/config"
	"blackjack-server/pkg/blackjack"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type createGameRequest struct {
	StartingBalance *int   `json:"startingBalance"`
	TargetBalance   *int   `json:"targetBalance"`
	Mode            string `json:"mode"`
}

type createGameResponse struct {
	ID    string               `json:"id"`
	Name  string               `json:"name"`
	State *blackjack.GameState `json:"state"`
}

// actionResponse pairs an operation's result with the resulting state so a
// client doesn't need a follow-up GET
type actionResponse struct {
	Result interface{}          `json:"result,omitempty"`
	State  *blackjack.GameState `json:"state"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createGameRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		defaults := config.Instance().Game
		opts := blackjack.Options{
			StartingBalance: defaults.StartingBalance,
			TargetBalance:   defaults.TargetBalance,
			Mode:            blackjack.Mode(defaults.Mode),
		}

		if payload.StartingBalance != nil {
			opts.StartingBalance = *payload.StartingBalance
		}

		if payload.TargetBalance != nil {
			opts.TargetBalance = *payload.TargetBalance
		}

		if payload.Mode != "" {
			opts.Mode = blackjack.Mode(payload.Mode)
		}

		id := uuid.New().String()
		game, err := blackjack.NewGame(logrus.WithField("session", id), opts)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sess := newSession(id, game)
		m.sessions.add(sess)
		logrus.WithFields(logrus.Fields{
			"session": sess.ID,
			"name":    sess.Name,
			"mode":    opts.Mode,
		}).Info("game session created")

		writeJSON(w, http.StatusCreated, createGameResponse{
			ID:    sess.ID,
			Name:  sess.Name,
			State: game.GetState(),
		})
	}
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)
		writeJSON(w, http.StatusOK, sess.Game.GetState())
	}
}

type betRequest struct {
	Amount int `json:"amount"`
}

func (m *Mux) postGameUUIDBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		var payload betRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		// bet failures are game results, not HTTP errors; the client re-prompts
		result := sess.Game.PlaceBet(payload.Amount)
		sess.broadcast()

		writeJSON(w, http.StatusOK, actionResponse{
			Result: result,
			State:  sess.Game.GetState(),
		})
	}
}

func (m *Mux) postGameUUIDDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.Game.DealInitialHands()
		sess.broadcast()

		writeJSON(w, http.StatusOK, actionResponse{
			State: sess.Game.GetState(),
		})
	}
}

func (m *Mux) postGameUUIDHit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		result := sess.Game.PlayerHit()
		sess.broadcast()

		writeJSON(w, http.StatusOK, actionResponse{
			Result: result,
			State:  sess.Game.GetState(),
		})
	}
}

func (m *Mux) postGameUUIDStand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		result := sess.Game.PlayerStand()
		sess.broadcast()

		writeJSON(w, http.StatusOK, actionResponse{
			Result: result,
			State:  sess.Game.GetState(),
		})
	}
}

func (m *Mux) postGameUUIDNewHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.Game.ResetForNewHand()
		sess.broadcast()

		writeJSON(w, http.StatusOK, actionResponse{
			State: sess.Game.GetState(),
		})
	}
}

func (m *Mux) postGameUUIDResetBalance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.Game.ResetBalanceOnBroke()
		sess.broadcast()

		writeJSON(w, http.StatusOK, actionResponse{
			State: sess.Game.GetState(),
		})
	}
}
