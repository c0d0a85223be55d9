package embedding

import "context"

type Embedder interface {
	GetEmbedding(ctx context.Context, query string) ([]float32, error)
	BatchEmbedding(ctx context.Context, chunks []string, isHugeDataSet bool) ([][]float32, error)
	// ModelName names the model producing the vectors. Stored on every chunk
	// so a later model migration can tell old vectors from new.
	ModelName() string
}
