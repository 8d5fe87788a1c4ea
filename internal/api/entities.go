package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/guessdex/internal/constants"
)

// ListEntities returns the full catalog with derived attributes.
func (h *GameHandler) ListEntities(c *gin.Context) {
	repo, _ := h.snapshot()
	entities, err := repo.GetEntities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchEntities})
		return
	}
	c.JSON(http.StatusOK, entities)
}

// ListTopEntities returns the most-guessed entities, default 10.
func (h *GameHandler) ListTopEntities(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		limit = n
	}
	repo, _ := h.snapshot()
	entities, err := repo.GetTopEntities(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchTop})
		return
	}
	c.JSON(http.StatusOK, entities)
}
