package mux

import (
	"net/http"
	"time"

	"blackjack-server/pkg/blackjack"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

func (m *Mux) getGameUUIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		sess := r.Context().Value(ctxSessionKey).(*session)

		states := sess.subscribe()
		done := make(chan bool)

		defer func() {
			sess.unsubscribe(states)
			_ = conn.Close()
			close(done)
		}()

		go m.webSocketWriteLoop(conn, sess, states, done)
		m.webSocketReadLoop(conn)
	}
}

// webSocketWriteLoop sends an initial snapshot, then a snapshot after every
// game mutation, plus periodic pings
func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, sess *session, states <-chan *blackjack.GameState, done <-chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(sess.Game.GetState()); err != nil {
		return
	}

	for {
		select {
		case state := <-states:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(state); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// webSocketReadLoop discards inbound messages and returns when the client
// goes away. All mutations arrive over the REST endpoints.
func (m *Mux) webSocketReadLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).Debug("websocket closed unexpectedly")
			}

			return
		}
	}
}
