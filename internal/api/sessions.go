package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/guessdex/internal/constants"
	"github.com/ericogr/guessdex/internal/engine"
	"github.com/ericogr/guessdex/internal/logging"
	"github.com/ericogr/guessdex/internal/prompt"
	"github.com/ericogr/guessdex/internal/store"
)

// showNamesThreshold mirrors the console host: the remaining candidate
// names are only exposed once the set is small enough to be a hint rather
// than a spoiler.
const showNamesThreshold = 5

type outcomeResponse struct {
	Token          string         `json:"token,omitempty"`
	Outcome        engine.Outcome `json:"outcome"`
	Text           string         `json:"text"`
	RemainingCount int            `json:"remaining_count"`
	RemainingNames []string       `json:"remaining_names,omitempty"`
}

func buildResponse(ls *store.LiveSession, includeToken bool) outcomeResponse {
	resp := outcomeResponse{
		Outcome:        ls.Current,
		Text:           prompt.Outcome(ls.Current),
		RemainingCount: ls.Game.RemainingCount(),
	}
	if includeToken {
		resp.Token = ls.Token
	}
	if resp.RemainingCount <= showNamesThreshold {
		resp.RemainingNames = ls.Game.RemainingNames()
	}
	return resp
}

// CreateSession starts a new game over the current catalog and returns the
// session token together with the first outcome.
func (h *GameHandler) CreateSession(c *gin.Context) {
	_, catalog := h.snapshot()
	gameSession := engine.NewSession(catalog)
	gameSession.SetTrace(func(event string, fields map[string]any) {
		logging.Debug(event, logging.Fields(fields))
	})

	ls := h.sessions.Create(gameSession)
	ls.Lock()
	ls.Current = ls.Game.NextQuestion()
	resp := buildResponse(ls, true)
	ls.Unlock()

	logging.Info("session created", logging.Fields{
		constants.LogFieldToken:     ls.Token,
		constants.LogFieldRemaining: resp.RemainingCount,
	})
	c.JSON(http.StatusCreated, resp)
}

// GetSession returns the outcome currently awaiting an answer.
func (h *GameHandler) GetSession(c *gin.Context) {
	ls, ok := h.sessions.Get(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	ls.Lock()
	resp := buildResponse(ls, false)
	ls.Unlock()
	c.JSON(http.StatusOK, resp)
}

type answerRequest struct {
	Attribute string `json:"attribute" binding:"required"`
	Value     string `json:"value" binding:"required"`
	Answer    *bool  `json:"answer" binding:"required"`
}

// SubmitAnswer applies the player's answer to the question it names and
// returns the next outcome.
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	ls, ok := h.sessions.Get(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	ls.Lock()
	defer ls.Unlock()

	err := ls.Game.ApplyAnswer(engine.Attribute(req.Attribute), req.Value, *req.Answer)
	switch {
	case errors.Is(err, engine.ErrSessionTerminal):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionFinished})
		return
	case errors.Is(err, engine.ErrQuestionNotIssued):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrAnswerRejected})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	// Terminal markers leave the candidate set untouched; only advance the
	// game when a real filter was applied.
	if ls.Current.Kind == engine.OutcomeQuestion {
		ls.Current = ls.Game.NextQuestion()
	}
	c.JSON(http.StatusOK, buildResponse(ls, false))
}

type resultRequest struct {
	Guessed *bool `json:"guessed" binding:"required"`
}

// ReportResult records whether the final guess was right, updating the
// aggregate per-entity counters.
func (h *GameHandler) ReportResult(c *gin.Context) {
	ls, ok := h.sessions.Get(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	var req resultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	ls.Lock()
	defer ls.Unlock()

	if ls.Current.Kind != engine.OutcomeFinalGuess {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionFinished})
		return
	}
	if ls.ResultReported {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrResultAlreadyStored})
		return
	}

	repo, _ := h.snapshot()
	if err := repo.RecordGameResult(ls.Current.EntityName, *req.Guessed); err != nil {
		logging.Error("failed to record game result", err, logging.Fields{
			constants.LogFieldToken:  ls.Token,
			constants.LogFieldEntity: ls.Current.EntityName,
		})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreResult})
		return
	}
	ls.ResultReported = true
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Result recorded"})
}

// DeleteSession abandons a game.
func (h *GameHandler) DeleteSession(c *gin.Context) {
	token := c.Param("token")
	if _, ok := h.sessions.Get(token); !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	h.sessions.Delete(token)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Session deleted"})
}
