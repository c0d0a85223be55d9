package rag_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/commonModels"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/rag"
)

func TestProcessRequest_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		question        string
		setupMocks      func(e *MockEmbedder, v *MockVectorDB, l *MockLLM)
		expectError     bool
		expectedAnswer  string
		answerContains  string
		expectedConf    float64
		expectedSource  string
		forbidEmbedding bool
		forbidLLM       bool
	}{
		{
			name:     "Verse_Citation_Lookup",
			question: "What does Bg 2.47 say?",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				v.OnLookupVerse = func(ctx context.Context, chapter int, verse int) ([]string, []string, error) {
					if chapter != 2 || verse != 47 {
						t.Errorf("LookupVerse got %d.%d, want 2.47", chapter, verse)
					}
					return []string{"Karmany evadhikaras te ma phaleshu kadachana."}, []string{"BG 2.47 (p. 143)"}, nil
				}
			},
			answerContains:  "Bhagavad-gita 2.47",
			expectedConf:    config.VerseAnswerConfidence,
			expectedSource:  "BG 2.47 (p. 143)",
			forbidEmbedding: true,
			forbidLLM:       true,
		},
		{
			name:            "Guidance_Short_Circuit",
			question:        "I am feeling stressed about my exams",
			setupMocks:      func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {},
			answerContains:  "wisdom about stress",
			expectedConf:    config.GuidanceAnswerConfidence,
			forbidEmbedding: true,
			forbidLLM:       true,
		},
		{
			name:            "Curated_Short_Circuit",
			question:        "What is Karma Yoga?",
			setupMocks:      func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {},
			answerContains:  "path of selfless action",
			expectedConf:    config.CuratedAnswerConfidence,
			forbidEmbedding: true,
			forbidLLM:       true,
		},
		{
			name:     "Success_Cache_Hit",
			question: "test question",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				v.OnGetCachedAnswer = func(ctx context.Context, emb []float32) (string, []string, bool, error) {
					return "cached answer", []string{"Bhagavad-gita As It Is, p. 42"}, true, nil
				}
			},
			expectedAnswer: "Hare Krishna! cached answer",
			expectedConf:   config.CachedAnswerConfidence,
			expectedSource: "Bhagavad-gita As It Is, p. 42",
			forbidLLM:      true,
		},
		{
			name:     "Zero_Match_Fallback",
			question: "test question",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				v.OnSearch = func(ctx context.Context, emb []float32) ([]string, []string, error) {
					return nil, nil, nil
				}
			},
			expectedAnswer: config.AnswerGreeting + " " + config.FallbackAnswer,
			expectedConf:   config.FallbackAnswerConfidence,
			forbidLLM:      true,
		},
		{
			name:     "Success_Full_Flow",
			question: "test question",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				l.OnGenerate = func(ctx context.Context, q string, m []string, h []string) (string, error) {
					return "final answer", nil
				}
			},
			expectedAnswer: "Hare Krishna! final answer",
			expectedConf:   config.RetrievalAnswerConfidence,
			expectedSource: "Bhagavad-gita As It Is, p. 100",
		},
		{
			name:     "Greeting_Not_Doubled",
			question: "test question",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				l.OnGenerate = func(ctx context.Context, q string, m []string, h []string) (string, error) {
					return "Hare Krishna! the model already greeted", nil
				}
			},
			expectedAnswer: "Hare Krishna! the model already greeted",
			expectedConf:   config.RetrievalAnswerConfidence,
		},
		{
			name:     "Failure_Embedding",
			question: "test question",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				e.OnGetEmbedding = func(ctx context.Context, text string) ([]float32, error) {
					return nil, errors.New("api limit")
				}
			},
			expectError: true,
		},
		{
			name:     "Failure_Vector_Search",
			question: "test question",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				v.OnSearch = func(ctx context.Context, emb []float32) ([]string, []string, error) {
					return nil, nil, errors.New("db timeout")
				}
			},
			expectError: true,
		},
		{
			name:     "Failure_LLM_Generation",
			question: "test question",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				l.OnGenerate = func(ctx context.Context, q string, m []string, h []string) (string, error) {
					return "", errors.New("provider down")
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEmbed := &MockEmbedder{}
			mVec := &MockVectorDB{}
			mLLM := &MockLLM{}

			var embedderCalled, llmCalled bool
			mEmbed.OnGetEmbedding = func(ctx context.Context, text string) ([]float32, error) {
				embedderCalled = true
				return []float32{0.1}, nil
			}
			mLLM.OnGenerate = func(ctx context.Context, q string, m []string, h []string) (string, error) {
				llmCalled = true
				return "mocked llm response", nil
			}

			tt.setupMocks(mEmbed, mVec, mLLM)

			s := rag.NewService(mVec, mLLM, mEmbed)

			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
			job := jobModel.Job{
				Id: "test-job",
				JobPayload: jobModel.JobPayload{
					Question: tt.question,
				},
			}

			result := s.ProcessRequest(ctx, job, []string{})

			if tt.expectError {
				if result.Status != jobModel.JobStatusError {
					t.Errorf("Status got %v, want %v", result.Status, jobModel.JobStatusError)
				}
				if result.Error.Code != http.StatusInternalServerError {
					t.Errorf("Error Code got %d, want %d", result.Error.Code, http.StatusInternalServerError)
				}
				return
			}

			if result.Status == jobModel.JobStatusError {
				t.Fatalf("unexpected job error: %+v", result.Error)
			}
			if result.CurrentStep != jobModel.Complete {
				t.Errorf("CurrentStep got %v, want %v", result.CurrentStep, jobModel.Complete)
			}

			answer := result.JobPayload.Answer
			if tt.expectedAnswer != "" && answer != tt.expectedAnswer {
				t.Errorf("Answer got %q, want %q", answer, tt.expectedAnswer)
			}
			if tt.answerContains != "" && !strings.Contains(answer, tt.answerContains) {
				t.Errorf("Answer %q does not contain %q", answer, tt.answerContains)
			}
			if !strings.HasPrefix(answer, config.AnswerGreeting) {
				t.Errorf("Answer is missing the greeting: %q", answer)
			}
			if strings.HasPrefix(answer, config.AnswerGreeting+" "+config.AnswerGreeting) {
				t.Errorf("Greeting applied twice: %q", answer)
			}

			if result.JobPayload.Confidence != tt.expectedConf {
				t.Errorf("Confidence got %v, want %v", result.JobPayload.Confidence, tt.expectedConf)
			}
			if tt.expectedSource != "" {
				if len(result.JobPayload.Sources) == 0 || result.JobPayload.Sources[0] != tt.expectedSource {
					t.Errorf("Sources got %v, want first %q", result.JobPayload.Sources, tt.expectedSource)
				}
			}

			if tt.forbidEmbedding && embedderCalled {
				t.Error("embedder was called for a short-circuit answer")
			}
			if tt.forbidLLM && llmCalled {
				t.Error("llm was called when a cheaper layer should have answered")
			}
		})
	}
}

func TestIngestDocument_Scenarios(t *testing.T) {
	dummyFile := "test_ingest.txt"
	os.WriteFile(dummyFile, []byte("test content for ingestion"), 0644)
	defer os.Remove(dummyFile)

	tests := []struct {
		name           string
		keepSource     bool
		setupMocks     func(e *MockEmbedder, v *MockVectorDB)
		expectedStatus jobModel.JobStatus
		wantFileKept   bool
	}{
		{
			name:           "Ingestion_Success",
			setupMocks:     func(e *MockEmbedder, v *MockVectorDB) {},
			expectedStatus: jobModel.JobStatusComplete,
		},
		{
			name:       "Ingestion_Keeps_Corpus_Asset",
			keepSource: true,
			setupMocks: func(e *MockEmbedder, v *MockVectorDB) {},

			expectedStatus: jobModel.JobStatusComplete,
			wantFileKept:   true,
		},
		{
			name: "Failure_Collection_Creation",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB) {
				v.OnCreateCollection = func(ctx context.Context, name string) error {
					return errors.New("connection refused")
				}
			},
			expectedStatus: jobModel.JobStatusError,
		},
		{
			name: "Failure_Batch_Upsert",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB) {
				v.OnUpsertBatch = func(ctx context.Context, coll string, chunks []commonModels.DocChunk, vectors [][]float32) error {
					return errors.New("disk full")
				}
			},
			expectedStatus: jobModel.JobStatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEmbed := &MockEmbedder{}
			mVec := &MockVectorDB{}

			tt.setupMocks(mEmbed, mVec)

			s := rag.NewService(mVec, &MockLLM{}, mEmbed)

			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "ingest-trace")
			job := jobModel.Job{
				Id: "ingest-job-1",
				JobPayload: jobModel.JobPayload{
					IngestFileName:   "test_ingest.txt",
					IngestURL:        dummyFile,
					IngestKeepSource: tt.keepSource,
				},
			}

			// Re-create file if deleted by previous successful test run
			if _, err := os.Stat(dummyFile); os.IsNotExist(err) {
				os.WriteFile(dummyFile, []byte("test content"), 0644)
			}

			result := s.IngestDocument(ctx, job)

			if result.Status != tt.expectedStatus {
				t.Errorf("Status got %v, want %v", result.Status, tt.expectedStatus)
			}

			if result.Status == jobModel.JobStatusError && result.Error.Code != http.StatusInternalServerError {
				t.Errorf("Error Code got %d, want %d", result.Error.Code, http.StatusInternalServerError)
			}

			if tt.wantFileKept {
				if _, err := os.Stat(dummyFile); os.IsNotExist(err) {
					t.Error("corpus asset was removed despite the keep-source flag")
				}
			}
		})
	}
}
