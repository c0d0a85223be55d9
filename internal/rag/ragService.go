package rag

import (
	"context"
	"errors"
	"time"

	"github.com/gitalabs/GitaAPI/internal/adapter/utils"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/gita/curated"
	"github.com/gitalabs/GitaAPI/internal/gita/guidance"
	"github.com/gitalabs/GitaAPI/internal/metrics"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding"
	"github.com/gitalabs/GitaAPI/internal/rag/ingest"
	"github.com/gitalabs/GitaAPI/internal/rag/llm"
	"github.com/gitalabs/GitaAPI/internal/rag/vectorDB"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

/*
ARCHITECTURE NOTE: OPAQUE INTERFACE PATTERN
---------------------------------------------------------

Workers only ever see the Service interface, the private service struct
underneath holds the actual clients (qdrant, gemini, embedder). Methods on
(*service) satisfy the interface implicitly - if it quacks like a duck,
it's a duck. NewService wires the two together, which is also what lets
the tests swap every dependency for a mock.

The answer itself is layered, cheap certain layers run first and each one
short-circuits everything below it:

	name correction
	verse citation lookup        (confidence 1.0)
	modern-life guidance         (0.95)
	curated QA + chapters        (0.9 / 0.95)
	semantic cache               (0.95)
	vector search + LLM          (0.75)
	fallback apology             (0.0)

Only a question that falls through every knowledge layer pays for an
embedding call, and only one with usable matches pays for the LLM.
*/

// Service Worker will only call this service - it doesn't need to know the llm or the vector
type Service interface {
	ProcessRequest(ctx context.Context, job jobModel.Job, messageHistory []string) jobModel.Job
	IngestDocument(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	vectorDB    vectorDB.DataProcessor
	llmProvider llm.Provider
	embedder    embedding.Embedder
	logger      *logger_i.Logger
}

// NewService constructor
func NewService(vector vectorDB.DataProcessor, llm llm.Provider, em embedding.Embedder) Service {
	return &service{
		vectorDB:    vector,
		llmProvider: llm,
		embedder:    em,
		logger:      logger_i.NewLogger("RAG Service :"),
	}
}

func (s *service) ProcessRequest(ctx context.Context, jobt jobModel.Job, messageHistory []string) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", traceFrom(ctx), "JobId", jobt.Id)

	processContext, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	jobt.CurrentStep = jobModel.RAGCall

	// Name correction ("krisna" -> "Krishna") feeds every later layer
	question := s.executeNameCorrectionStep(inMethodLogger, &jobt)

	// Verse citation fast path, exact scripture needs no model
	if answer, sources, ok := s.executeVerseLookupStep(processContext, inMethodLogger, &jobt, question); ok {
		return s.returnAnswer(jobt, answer, sources, config.VerseAnswerConfidence, "verse")
	}

	// Modern-life guidance topics
	if match, ok := guidance.MatchQuestion(question); ok {
		jobt = logOutput(jobt, jobModel.CuratedLookup, inMethodLogger)
		return s.returnAnswer(jobt, match.Answer, match.Sources, match.Confidence, "guidance")
	}

	// Curated QA bank and chapter summaries
	if match, ok := curated.MatchQuestion(question); ok {
		jobt = logOutput(jobt, jobModel.CuratedLookup, inMethodLogger)
		return s.returnAnswer(jobt, match.Answer, match.Sources, match.Confidence, "curated")
	}

	// Embedding
	embeddingStep, err := s.executeEmbeddingStep(processContext, inMethodLogger, &jobt, question)
	if err != nil {
		return s.jobError(jobt, err, "EMBEDDING_FAILURE", true)
	}

	// Cache Check
	cachedAnswer, cachedSources, found := s.executeCacheCheckStep(ctx, inMethodLogger, &jobt, embeddingStep)
	if found {
		return s.returnAnswer(jobt, cachedAnswer, cachedSources, config.CachedAnswerConfidence, "cache")
	}

	// Vector DB Search
	matches, err := s.executeVectorSearchStep(processContext, inMethodLogger, &jobt, embeddingStep)
	if err != nil {
		return s.jobError(jobt, err, "VECTOR_DB_FAILURE", true)
	}

	// Nothing close enough in the index, admit it instead of inventing
	if len(matches) == 0 {
		return s.returnAnswer(jobt, config.FallbackAnswer, nil, config.FallbackAnswerConfidence, "fallback")
	}

	// LLM Generation
	answer, err := s.executeLLMStep(processContext, inMethodLogger, &jobt, question, matches, messageHistory)
	if err != nil {
		return s.jobError(jobt, err, "LLM_GENERATION_FAILURE", true)
	}

	// Background Cache Save. WithoutCancel keeps the trace id but lets the
	// save outlive the request.
	saveCtx := context.WithoutCancel(ctx)
	answerSources := jobt.JobPayload.Sources
	go func() {
		if err := s.vectorDB.SaveToCache(saveCtx, utils.GetNewUUID(), embeddingStep, answer, answerSources); err != nil {
			s.logger.Error("Failed to save to cache")
		}
	}()

	return s.returnAnswer(jobt, answer, jobt.JobPayload.Sources, config.RetrievalAnswerConfidence, "retrieval")
}

func (s *service) IngestDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("Document_ingestion", time.Since(start)) }()
	j := ingest.ProcessDocumentIngestion(ctx, job, s.embedder, s.vectorDB)
	if j.Status != jobModel.JobStatusComplete {
		return s.jobError(j, errors.New("ingest Document Failed"), "INGESTION_FAILURE", true)
	}
	return j
}
