package openaiEmbedding

import (
	"context"
	"errors"
	"sync"

	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/customHttpClient"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var logger *logger_i.Logger
var once sync.Once
var embeddingClient *client
var dimension = int64(config.EmbeddingOutputDimensionality)

// OpenAI takes up to 2048 inputs per embeddings call. Our ingestion batches
// are far smaller, the cap only matters if someone bypasses BatchIngest.
const maxInputsPerCall = 2048

type client struct {
	api   openai.Client
	model openai.EmbeddingModel
}

func GetOpenAIEmbeddingClient(modelName string, apikey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("openai_embedding")
		api := openai.NewClient(
			option.WithAPIKey(apikey),
			option.WithHTTPClient(customHttpClient.PooledClient()),
		)
		embeddingClient = &client{
			api:   api,
			model: openai.EmbeddingModel(modelName),
		}
		logger.Debug("OpenAI Embedding model name: " + modelName)
		logger.Info("OpenAI Embedding client created")
	})

	if embeddingClient == nil {
		return nil
	}
	return &client{api: embeddingClient.api, model: embeddingClient.model}
}

func (c *client) ModelName() string {
	return string(c.model)
}

func traceValue(ctx context.Context) string {
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return trace
	}
	return "untraced"
}

func (c *client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	log := logger.With("traceId", traceValue(ctx))

	vectors, err := c.doCall(ctx, []string{query})
	if err != nil {
		log.Error("Error getting Embedding from OpenAI", "error", err.Error())
		return nil, err
	}
	return vectors[0], nil
}

func (c *client) BatchEmbedding(ctx context.Context, chunks []string, isHugeDataSet bool) ([][]float32, error) {
	log := logger.With("traceId", traceValue(ctx))
	if isHugeDataSet {
		// No separate batch-job machinery here, a huge dataset just
		// means more round trips.
		log.Debug("Huge dataset, embedding inline", "chunks", len(chunks))
	}

	var results [][]float32
	for i := 0; i < len(chunks); i += maxInputsPerCall {
		end := i + maxInputsPerCall
		if end > len(chunks) {
			end = len(chunks)
		}
		vectors, err := c.doCall(ctx, chunks[i:end])
		if err != nil {
			log.Error("Error getting Embeddings from OpenAI", "error", err.Error())
			return nil, err
		}
		results = append(results, vectors...)
	}
	return results, nil
}

// doCall embeds one request worth of texts. Rate limits need no handling
// here, the SDK retries 429s on its own.
func (c *client) doCall(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model:      c.model,
		Dimensions: openai.Int(dimension),
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Data) != len(texts) {
		return nil, errors.New("embedding response does not match request size")
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}
