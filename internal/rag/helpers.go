package rag

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/gita/characters"
	"github.com/gitalabs/GitaAPI/internal/gita/verseRef"
	"github.com/gitalabs/GitaAPI/internal/metrics"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

func traceFrom(ctx context.Context) string {
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return trace
	}
	return "untraced"
}

// returnAnswer finalizes a successful job: greeting applied exactly once,
// sources and confidence stamped, the answering layer counted.
func (s *service) returnAnswer(job jobModel.Job, ans string, sources []string, confidence float64, source string) jobModel.Job {
	metrics.CaptureAnswerSource(source)
	job.JobPayload.Answer = formatAnswer(ans)
	job.JobPayload.Sources = sources
	job.JobPayload.Confidence = confidence
	job.CurrentStep = jobModel.Complete
	return job
}

func formatAnswer(ans string) string {
	if strings.HasPrefix(ans, config.AnswerGreeting) {
		return ans
	}
	return config.AnswerGreeting + " " + ans
}

func logOutput(job jobModel.Job, status jobModel.InternalStatus, log *logger_i.Logger) jobModel.Job {
	job.CurrentStep = status
	log.Debug("ProcessRequest", "Current Status", job.CurrentStep)
	return job
}

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: "Internal Server Error",
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func (s *service) executeNameCorrectionStep(log *logger_i.Logger, job *jobModel.Job) string {
	*job = logOutput(*job, jobModel.NameCorrection, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("name_correction", time.Since(start)) }()

	// The payload keeps the question as asked, the corrected form only
	// drives the matching layers
	corrected, corrections := characters.CorrectText(job.JobPayload.Question)
	if len(corrections) > 0 {
		log.Debug("Corrected character names", "corrections", corrections)
	}
	return corrected
}

func (s *service) executeVerseLookupStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, question string) (string, []string, bool) {
	ref, ok := verseRef.Parse(question)
	if !ok {
		return "", nil, false
	}
	*job = logOutput(*job, jobModel.VerseLookup, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("verse_lookup", time.Since(start)) }()

	matches, sources, err := s.vectorDB.LookupVerse(ctx, ref.Chapter, ref.Verse)
	if err != nil || len(matches) == 0 {
		// A cited verse missing from the index falls through to retrieval
		log.Warn("Verse citation not found in index", "ref", ref.String(), "error", err)
		return "", nil, false
	}

	answer := fmt.Sprintf("Bhagavad-gita %s:\n\n%s", ref.String(), strings.Join(matches, "\n\n"))
	return answer, sources, true
}

func (s *service) executeEmbeddingStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, question string) ([]float32, error) {
	*job = logOutput(*job, jobModel.EmbeddingAPICall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.GetEmbedding(ctx, question)
}

func (s *service) executeCacheCheckStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, emb []float32) (string, []string, bool) {
	*job = logOutput(*job, jobModel.CacheCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_lookup", time.Since(start)) }()

	ans, sources, found, _ := s.vectorDB.GetCachedAnswer(ctx, emb)
	return ans, sources, found
}

func (s *service) executeVectorSearchStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, emb []float32) ([]string, error) {
	*job = logOutput(*job, jobModel.VectorDBCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	matches, sources, err := s.vectorDB.Search(ctx, emb)
	job.JobPayload.Sources = sources
	return matches, err
}

func (s *service) executeLLMStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, question string, matches []string, history []string) (string, error) {
	*job = logOutput(*job, jobModel.LLMCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, question, matches, history)
}
