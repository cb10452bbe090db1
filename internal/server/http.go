package server

import (
	"sync"
	"time"

	"outreachr/internal/config"
	outreachrErrors "outreachr/internal/errors"
	"outreachr/internal/history"
)

// ExtractRequest represents the request body for the extract endpoint
type ExtractRequest struct {
	ProfileText string `json:"profileText"`
}

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	Experience     []string `json:"experience"`
	TargetPosition string   `json:"targetPosition"`
}

// ComposeRequest represents the request body for the compose endpoint
type ComposeRequest struct {
	ProfileText       string `json:"profileText"`
	TargetPosition    string `json:"targetPosition"`
	CompanyHighlights string `json:"companyHighlights,omitempty"`
	Tone              string `json:"tone,omitempty"`
	Length            string `json:"length,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// messageHistory guards the composition log for concurrent handlers. The
// log itself is plain caller-owned state.
type messageHistory struct {
	mu  sync.Mutex
	log *history.Log
}

func newMessageHistory(capacity int) *messageHistory {
	return &messageHistory{log: history.NewLog(capacity)}
}

func (h *messageHistory) Add(entry history.Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.log.Add(entry)
}

func (h *messageHistory) Snapshot() (entries []history.Entry, capacity int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.log.Entries(), h.log.Cap()
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Composed message history
	History *messageHistory

	// Logger
	Logger *outreachrErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
	HistorySize    int
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *outreachrErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		History:        newMessageHistory(cfg.HistorySize),
		Logger:         logger,
	}
}
