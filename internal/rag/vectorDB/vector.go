package vectorDB

import (
	"context"

	"github.com/gitalabs/GitaAPI/internal/domain/commonModels"
)

type DataProcessor interface {
	// Search returns the closest passages to the query vector along with
	// one formatted citation per passage.
	Search(ctx context.Context, vectorVal []float32) ([]string, []string, error)
	// LookupVerse returns the indexed passages annotated with the exact
	// chapter and verse, no vector math involved.
	LookupVerse(ctx context.Context, chapter int, verse int) ([]string, []string, error)
	// GetCachedAnswer returns a previously generated answer whose question
	// embedding is close enough, along with the citations it was built from.
	GetCachedAnswer(ctx context.Context, queryVector []float32) (string, []string, bool, error)
	SaveToCache(ctx context.Context, id string, vector []float32, answer string, sources []string) error

	// CreateCollection Ingest document call
	CreateCollection(ctx context.Context, collectionName string) error
	UpsertBatch(ctx context.Context, collectionName string, chunks []commonModels.DocChunk, vectors [][]float32) error
	// CountPoints backs the startup check for an empty index
	CountPoints(ctx context.Context, collectionName string) (uint64, error)
}
