package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ericogr/guessdex/internal/game"
)

type entityEntry struct {
	ID         int                    `json:"id"`
	Name       string                 `json:"name"`
	Categories []string               `json:"categories"`
	Height     *float64               `json:"height"`
	Weight     *float64               `json:"weight"`
	Visual     *game.VisualAttributes `json:"visual_attributes"`
	Chain      []int                  `json:"chain"`
}

type rawConfig struct {
	EntityList []entityEntry `json:"entity_list"`
	Server     *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Optional idle timeout for live game sessions, e.g. "30m". Sessions
	// with no activity for this long are discarded by the server host.
	SessionIdleTimeout string `json:"session_idle_timeout"`
}

// LoadedConfig contains the derived catalog and the server settings.
type LoadedConfig struct {
	Entities           []game.Entity
	ServerAddress      string
	SessionIdleTimeout time.Duration
}

const defaultSessionIdleTimeout = 30 * time.Minute

// LoadConfig reads the catalog configuration file at path, validates it and
// returns the catalog with all derived attributes computed. It requires the
// key `entity_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.EntityList
	if len(entries) == 0 {
		return nil, fmt.Errorf("config file %s: entity_list is empty (provide an 'entity_list' array)", path)
	}

	out := make([]game.Entity, 0, len(entries))
	nameSet := make(map[string]struct{}, len(entries))
	idSet := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("config file %s: entity entry missing 'name'", path)
		}
		if len(e.Categories) == 0 {
			return nil, fmt.Errorf("config file %s: entity '%s' has no categories", path, e.Name)
		}
		ln := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate entity name '%s'", path, e.Name)
		}
		nameSet[ln] = struct{}{}
		if _, exists := idSet[e.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate entity id %d", path, e.ID)
		}
		idSet[e.ID] = struct{}{}

		out = append(out, game.Entity{
			CatalogID:  e.ID,
			Name:       e.Name,
			Categories: e.Categories,
			Height:     e.Height,
			Weight:     e.Weight,
			Visual:     e.Visual,
			Chain:      e.Chain,
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	idle := defaultSessionIdleTimeout
	if rc.SessionIdleTimeout != "" {
		d, err := time.ParseDuration(rc.SessionIdleTimeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("config file %s: invalid session_idle_timeout '%s'", path, rc.SessionIdleTimeout)
		}
		idle = d
	}

	return &LoadedConfig{
		Entities:           game.DeriveAll(out),
		ServerAddress:      addr,
		SessionIdleTimeout: idle,
	}, nil
}
