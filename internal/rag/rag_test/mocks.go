package rag_test

import (
	"context"

	"github.com/gitalabs/GitaAPI/internal/domain/commonModels"
)

// MockVectorDB implements vectorDB.DataProcessor
type MockVectorDB struct {
	// Control fields to simulate different behaviors
	OnSearch           func(ctx context.Context, vectorVal []float32) ([]string, []string, error)
	OnLookupVerse      func(ctx context.Context, chapter int, verse int) ([]string, []string, error)
	OnGetCachedAnswer  func(ctx context.Context, queryVector []float32) (string, []string, bool, error)
	OnSaveToCache      func(ctx context.Context, id string, vector []float32, answer string, sources []string) error
	OnCreateCollection func(ctx context.Context, name string) error
	OnUpsertBatch      func(ctx context.Context, name string, chunks []commonModels.DocChunk, vectors [][]float32) error
	OnCountPoints      func(ctx context.Context, name string) (uint64, error)
}

func (m *MockVectorDB) Search(ctx context.Context, v []float32) ([]string, []string, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, v)
	}
	return []string{"default context"}, []string{"Bhagavad-gita As It Is, p. 100"}, nil
}

func (m *MockVectorDB) LookupVerse(ctx context.Context, chapter int, verse int) ([]string, []string, error) {
	if m.OnLookupVerse != nil {
		return m.OnLookupVerse(ctx, chapter, verse)
	}
	// No verse in the index by default, the pipeline falls through
	return nil, nil, nil
}

func (m *MockVectorDB) GetCachedAnswer(ctx context.Context, v []float32) (string, []string, bool, error) {
	if m.OnGetCachedAnswer != nil {
		return m.OnGetCachedAnswer(ctx, v)
	}
	return "", nil, false, nil
}

func (m *MockVectorDB) SaveToCache(ctx context.Context, id string, v []float32, a string, sources []string) error {
	if m.OnSaveToCache != nil {
		return m.OnSaveToCache(ctx, id, v, a, sources)
	}
	return nil
}

func (m *MockVectorDB) CreateCollection(ctx context.Context, name string) error {
	if m.OnCreateCollection != nil {
		return m.OnCreateCollection(ctx, name)
	}
	return nil
}

func (m *MockVectorDB) UpsertBatch(ctx context.Context, name string, chunks []commonModels.DocChunk, vectors [][]float32) error {
	if m.OnUpsertBatch != nil {
		return m.OnUpsertBatch(ctx, name, chunks, vectors)
	}
	return nil
}

func (m *MockVectorDB) CountPoints(ctx context.Context, name string) (uint64, error) {
	if m.OnCountPoints != nil {
		return m.OnCountPoints(ctx, name)
	}
	return 0, nil
}

type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, text string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error)
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks, isHuge)
	}
	// Return dummy vectors matching chunk size
	return make([][]float32, len(chunks)), nil
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1}, nil
}

func (m *MockEmbedder) ModelName() string {
	return "mock-embedding-model"
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, query string, matches []string, history []string) (string, error)
}

func (m *MockLLM) Generate(ctx context.Context, q string, mth []string, hist []string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, q, mth, hist)
	}
	return "mocked llm response", nil
}
