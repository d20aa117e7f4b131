package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"resumescan/internal/ai"
	"resumescan/internal/analyze"
	"resumescan/internal/extract"
	"resumescan/internal/observability"
	"resumescan/internal/types"
	"resumescan/internal/utils"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the deterministic scoring handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	analyzer := analyze.New(s.AppConfig, s.Logger)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescan.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		// Parse request
		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ResumeText) > int(s.MaxRequestSize) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "score"),
		)

		result := analyzer.Score(types.ScoreResumeInput{ResumeText: req.ResumeText})

		// Record success metrics
		metrics := om.GetMetrics()
		metrics.RecordScoringMetric(ctx, "resume_scored", true, om,
			attribute.Int("score.overall", result.OverallScore),
			attribute.Int("score.total_issues", result.TotalIssues))
		metrics.RecordResumeScore(ctx, result.OverallScore, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.overall", result.OverallScore),
			attribute.Int("score.critical_issues", result.CriticalIssues),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	analyzer := analyze.New(s.AppConfig, s.Logger)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescan.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		if len(req.ResumeText) > int(s.MaxRequestSize) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
			return
		}

		opts := analyzeOptionsFromRequest(req)

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "analyze"),
			attribute.Bool("enrich.details", opts.Details),
			attribute.Bool("enrich.narrative", opts.Narrative),
			attribute.Bool("enrich.insights", opts.Insights),
		)

		result := s.runAnalysis(ctx, om, analyzer, req.ResumeText, opts)

		metrics := om.GetMetrics()
		metrics.RecordScoringMetric(ctx, "resume_analyzed", true, om,
			attribute.Int("score.overall", result.Report.OverallScore),
			attribute.Bool("enriched.details", result.Details != nil),
			attribute.Bool("enriched.narrative", result.Narrative != nil),
			attribute.Bool("enriched.insights", result.Insights != nil))
		metrics.RecordResumeScore(ctx, result.Report.OverallScore, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.overall", result.Report.OverallScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createUploadHandler accepts a multipart resume file, extracts its text and
// runs the full analysis on it
func (s *Server) createUploadHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	analyzer := analyze.New(s.AppConfig, s.Logger)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescan.api")
		ctx, span := tracer.Start(ctx, "api.upload")
		defer span.End()

		if err := r.ParseMultipartForm(s.MaxUploadSize); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid multipart request", err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume file", "multipart field 'resume' is required", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				s.Logger.Warn("Failed to close uploaded file", "error", err.Error())
			}
		}()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !slices.Contains(extract.SupportedExtensions, ext) {
			err := fmt.Errorf("unsupported file type: %s", ext)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Unsupported file type",
				fmt.Sprintf("supported extensions: %s", strings.Join(extract.SupportedExtensions, ", ")), http.StatusBadRequest)
			return
		}

		if s.MaxUploadSize > 0 && header.Size > s.MaxUploadSize {
			err := fmt.Errorf("uploaded file too large: %d bytes", header.Size)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Uploaded file too large",
				fmt.Sprintf("file exceeds size limit of %s", utils.FormatFileSize(s.MaxUploadSize)), http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to read uploaded file", err.Error(), http.StatusInternalServerError)
			return
		}

		resumeText, err := extract.FromBytes(data, header.Filename)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			writeErrorResponse(w, "Failed to extract resume text", err.Error(), http.StatusUnprocessableEntity)
			return
		}

		if err := extract.ValidateContent(resumeText); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid resume content", err.Error(), http.StatusUnprocessableEntity)
			return
		}

		span.SetAttributes(
			attribute.String("upload.filename", header.Filename),
			attribute.String("upload.extension", ext),
			attribute.Int64("upload.size_bytes", header.Size),
			attribute.String("operation", "upload"),
		)

		result := s.runAnalysis(ctx, om, analyzer, resumeText, analyze.EnrichAll())

		metrics := om.GetMetrics()
		metrics.RecordScoringMetric(ctx, "resume_uploaded", true, om,
			attribute.String("file_extension", ext),
			attribute.Int("score.overall", result.Report.OverallScore))
		metrics.RecordResumeScore(ctx, result.Report.OverallScore, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.overall", result.Report.OverallScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// analyzeOptionsFromRequest maps optional request flags onto enrichment
// options, enabling every operation that is not explicitly disabled
func analyzeOptionsFromRequest(req AnalyzeRequest) analyze.Options {
	opts := analyze.EnrichAll()
	if req.Details != nil {
		opts.Details = *req.Details
	}
	if req.Narrative != nil {
		opts.Narrative = *req.Narrative
	}
	if req.Insights != nil {
		opts.Insights = *req.Insights
	}
	return opts
}

// runAnalysis produces the deterministic report and runs each requested AI
// enrichment operation instrumented with metrics and token usage tracking.
// AI failures degrade to nil output fields rather than failing the request.
func (s *Server) runAnalysis(ctx context.Context, om *observability.ObservabilityManager, analyzer *analyze.Analyzer, resumeText string, opts analyze.Options) types.AnalyzeResumeOutput {
	output := types.AnalyzeResumeOutput{
		Report: analyzer.Score(types.ScoreResumeInput{ResumeText: resumeText}),
	}

	if opts.Details {
		output.Details = s.enrichDetails(ctx, om, resumeText)
	}
	if opts.Narrative {
		output.Narrative = s.enrichNarrative(ctx, om, resumeText, output.Report.OverallScore)
	}
	if opts.Insights {
		output.Insights = s.enrichInsights(ctx, om, resumeText, output.Report.CategoryScores)
	}

	return output
}

func (s *Server) enrichDetails(ctx context.Context, om *observability.ObservabilityManager, resumeText string) *types.PersonalDetails {
	detailsConfig := s.AppConfig.GetDetailsConfig()
	aiService, err := ai.NewService(&detailsConfig, ai.OpDetails, s.Logger)
	if err != nil {
		s.Logger.Warn("Skipping personal detail extraction", "operation", ai.OpDetails, "error", err.Error())
		return nil
	}
	defer func() { _ = aiService.Provider.Close() }()

	metrics := om.GetMetrics()
	var details types.PersonalDetails
	err = metrics.TrackAIOperationWithTokens(ctx, ai.OpDetails, func(ctx context.Context) *observability.AIOperationResult {
		output, tokenUsage, aiErr := aiService.Provider.ExtractDetails(ctx, types.ScoreResumeInput{ResumeText: resumeText})
		details = output
		return &observability.AIOperationResult{
			Error:      aiErr,
			TokenUsage: (*observability.TokenUsage)(tokenUsage),
		}
	}, om)
	if err != nil {
		s.Logger.Warn("Personal detail extraction failed", "operation", ai.OpDetails, "error", err.Error())
		return nil
	}

	return &details
}

func (s *Server) enrichNarrative(ctx context.Context, om *observability.ObservabilityManager, resumeText string, overallScore int) *types.Narrative {
	narrativeConfig := s.AppConfig.GetNarrativeConfig()
	aiService, err := ai.NewService(&narrativeConfig, ai.OpNarrative, s.Logger)
	if err != nil {
		s.Logger.Warn("Skipping narrative generation", "operation", ai.OpNarrative, "error", err.Error())
		return nil
	}
	defer func() { _ = aiService.Provider.Close() }()

	metrics := om.GetMetrics()
	var narrative types.Narrative
	err = metrics.TrackAIOperationWithTokens(ctx, ai.OpNarrative, func(ctx context.Context) *observability.AIOperationResult {
		output, tokenUsage, aiErr := aiService.Provider.GenerateNarrative(ctx, types.NarrativeInput{
			ResumeText:   resumeText,
			OverallScore: overallScore,
		})
		narrative = output
		return &observability.AIOperationResult{
			Error:      aiErr,
			TokenUsage: (*observability.TokenUsage)(tokenUsage),
		}
	}, om)
	if err != nil {
		s.Logger.Warn("Narrative generation failed", "operation", ai.OpNarrative, "error", err.Error())
		return nil
	}

	return &narrative
}

func (s *Server) enrichInsights(ctx context.Context, om *observability.ObservabilityManager, resumeText string, scores types.CategoryScores) *types.Insights {
	insightsConfig := s.AppConfig.GetInsightsConfig()
	aiService, err := ai.NewService(&insightsConfig, ai.OpInsights, s.Logger)
	if err != nil {
		s.Logger.Warn("Skipping insight generation", "operation", ai.OpInsights, "error", err.Error())
		return nil
	}
	defer func() { _ = aiService.Provider.Close() }()

	metrics := om.GetMetrics()
	var insights types.Insights
	err = metrics.TrackAIOperationWithTokens(ctx, ai.OpInsights, func(ctx context.Context) *observability.AIOperationResult {
		output, tokenUsage, aiErr := aiService.Provider.GenerateInsights(ctx, types.InsightsInput{
			ResumeText:     resumeText,
			CategoryScores: scores,
		})
		insights = output
		return &observability.AIOperationResult{
			Error:      aiErr,
			TokenUsage: (*observability.TokenUsage)(tokenUsage),
		}
	}, om)
	if err != nil {
		s.Logger.Warn("Insight generation failed", "operation", ai.OpInsights, "error", err.Error())
		return nil
	}

	return &insights
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
				metrics.RecordScoringMetric(r.Context(), "rate_limit_hit", true, om,
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
