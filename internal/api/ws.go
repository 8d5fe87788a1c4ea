package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ericogr/guessdex/internal/constants"
	"github.com/ericogr/guessdex/internal/engine"
	"github.com/ericogr/guessdex/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClientMessage is what the browser sends back over the play channel:
// an answer while questions are flowing, or the confirmation after the
// final guess.
type wsClientMessage struct {
	Answer  *bool `json:"answer,omitempty"`
	Guessed *bool `json:"guessed,omitempty"`
}

// PlaySocket runs a whole game over one websocket: the server pushes each
// outcome, the client answers, and the connection closes on a terminal
// outcome. The socket owns the session for its lifetime; concurrent HTTP
// answers against the same token are serialized by the session lock.
func (h *GameHandler) PlaySocket(c *gin.Context) {
	token := c.Param("token")
	if _, ok := h.sessions.Get(token); !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldToken: token})
		return
	}
	defer conn.Close()

	for {
		// Re-fetch every turn: it refreshes the idle timestamp and notices
		// when the sweeper dropped the session mid-game.
		ls, ok := h.sessions.Get(token)
		if !ok {
			return
		}

		ls.Lock()
		resp := buildResponse(ls, false)
		kind := ls.Current.Kind
		ls.Unlock()

		if err := conn.WriteJSON(resp); err != nil {
			return
		}

		switch kind {
		case engine.OutcomeError:
			return
		case engine.OutcomeFinalGuess:
			var msg wsClientMessage
			if err := conn.ReadJSON(&msg); err != nil || msg.Guessed == nil {
				return
			}
			ls.Lock()
			if !ls.ResultReported {
				repo, _ := h.snapshot()
				if err := repo.RecordGameResult(ls.Current.EntityName, *msg.Guessed); err != nil {
					logging.Error("failed to record game result", err, logging.Fields{
						constants.LogFieldToken:  token,
						constants.LogFieldEntity: ls.Current.EntityName,
					})
				} else {
					ls.ResultReported = true
				}
			}
			ls.Unlock()
			return
		}

		var msg wsClientMessage
		if err := conn.ReadJSON(&msg); err != nil || msg.Answer == nil {
			return
		}

		ls.Lock()
		if ls.Current.Kind == engine.OutcomeQuestion {
			if err := ls.Game.ApplyAnswer(ls.Current.Attribute, ls.Current.Value, *msg.Answer); err != nil {
				ls.Unlock()
				return
			}
			ls.Current = ls.Game.NextQuestion()
		}
		ls.Unlock()
	}
}
