package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "GUESSDEX_CONFIG"
	EnvDBPath     = "GUESSDEX_DB"

	// Default file locations used when flags and env are absent
	DefaultConfigPath = "./data/catalog.json"
	DefaultDBPath     = "./data/guessdex.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteEntities      = "/entities"
	RouteTopEntities   = "/top-entities"
	RouteVersion       = "/version"
	RouteReload        = "/reload"
	RouteSessions      = "/sessions"
	RouteSessionByID   = "/sessions/:token"
	RouteSessionAnswer = "/sessions/:token/answer"
	RouteSessionResult = "/sessions/:token/result"
	RouteSessionWS     = "/sessions/:token/ws"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrSessionNotFound     = "Session not found"
	ErrSessionFinished     = "Session already finished"
	ErrAnswerRejected      = "Answer does not match the current question"
	ErrResultAlreadyStored = "Result already reported for this session"
	ErrFailedFetchEntities = "Failed to fetch entities"
	ErrFailedFetchTop      = "Failed to fetch top entities"
	ErrFailedStoreResult   = "Failed to store game result"
	ErrFailedReloadCatalog = "Failed to reload catalog"
)

// Logging field names
const (
	LogFieldToken     = "session_token"
	LogFieldAttribute = "attribute"
	LogFieldValue     = "value"
	LogFieldRemaining = "remaining"
	LogFieldAddr      = "addr"
	LogFieldEntity    = "entity"
)
