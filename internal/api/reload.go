package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/guessdex/internal/config"
	"github.com/ericogr/guessdex/internal/constants"
	"github.com/ericogr/guessdex/internal/dedupe"
	"github.com/ericogr/guessdex/internal/logging"
)

// ReloadCatalog re-reads the catalog config file and swaps the in-memory
// catalog and repository. Games already in progress keep playing against
// the catalog they started with. Concurrent reload requests are collapsed
// into a single config read.
func (h *GameHandler) ReloadCatalog(c *gin.Context) {
	result, err, _ := dedupe.ReloadGroup.Do(h.configPath, func() (interface{}, error) {
		cfg, err := config.LoadConfig(h.configPath)
		if err != nil {
			return nil, err
		}
		h.mu.Lock()
		h.catalog = cfg.Entities
		if h.rebuild != nil {
			h.repo = h.rebuild(cfg)
		}
		h.mu.Unlock()
		return len(cfg.Entities), nil
	})
	if err != nil {
		logging.Error("catalog reload failed", err, logging.Fields{"config_path": h.configPath})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedReloadCatalog})
		return
	}

	count := result.(int)
	logging.Info("catalog reloaded", logging.Fields{"entities": count})
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Catalog reloaded", "entities": count})
}
