package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"outreachr/internal/ai"
	"outreachr/internal/history"
	"outreachr/internal/observability"
	"outreachr/internal/profile"
	"outreachr/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createExtractHandler wraps the section extraction handler with observability
func (s *Server) createExtractHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("outreachr.api")
		ctx, span := tracer.Start(ctx, "api.extract")
		defer span.End()

		// Parse request
		var req ExtractRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.ProfileText) == "" {
			err := fmt.Errorf("missing profile text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing profile text", "profileText field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.profile_length", len(req.ProfileText)),
			attribute.String("operation", "extract"),
		)

		result := profile.Extract(req.ProfileText)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "sections_extracted", true, om,
			attribute.Int("output.experience_entries", len(result.Experience)),
			attribute.Int("output.skills_entries", len(result.Skills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.experience_entries", len(result.Experience)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createScoreHandler wraps the relevance scoring handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("outreachr.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.TargetPosition) == "" {
			err := fmt.Errorf("missing target position")
			span.RecordError(err)
			writeErrorResponse(w, "Missing target position", "targetPosition field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.experience_entries", len(req.Experience)),
			attribute.String("operation", "score"),
		)

		result := profile.ScoreRelevance(req.Experience, req.TargetPosition)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "relevance_scored", true, om,
			attribute.Int("output.results", len(result)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.results", len(result)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createComposeHandler wraps the message composition handler with observability
func (s *Server) createComposeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("outreachr.api")
		ctx, span := tracer.Start(ctx, "api.compose")
		defer span.End()

		var req ComposeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.ProfileText) == "" {
			err := fmt.Errorf("missing profile text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing profile text", "profileText field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.TargetPosition) == "" {
			err := fmt.Errorf("missing target position")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing target position", "targetPosition field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ProfileText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("profile text too large: %d chars", len(req.ProfileText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Profile text too large", fmt.Sprintf("profileText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.profile_length", len(req.ProfileText)),
			attribute.String("request.tone", req.Tone),
			attribute.String("request.length", req.Length),
			attribute.String("operation", "compose"),
		)

		input := types.ComposeMessageInput{
			ProfileText:       req.ProfileText,
			TargetPosition:    req.TargetPosition,
			CompanyHighlights: req.CompanyHighlights,
			Tone:              req.Tone,
			Length:            req.Length,
		}

		// Create AI service for compose operation
		composeConfig := s.AppConfig.GetComposeConfig()
		aiService, err := ai.NewService(&composeConfig, "compose", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		// Track AI operation with observability and token usage
		metrics := om.GetMetrics()
		var result types.ComposeMessageOutput
		err = metrics.TrackAIOperationWithTokens(ctx, "compose", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.ComposeMessage(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "message_composed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to compose message", err.Error(), http.StatusInternalServerError)
			return
		}

		// Record the composed message in the bounded history
		s.History.Add(history.Entry{
			Timestamp:      time.Now(),
			TargetPosition: result.TargetPosition,
			Tone:           result.Tone,
			Length:         result.Length,
			Provider:       composeConfig.Provider,
			Message:        result.Message,
		})

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "message_composed", true, om,
			attribute.Int("output.message_length", len(result.Message)),
			attribute.String("tone", result.Tone),
			attribute.String("length", result.Length))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.message_length", len(result.Message)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
