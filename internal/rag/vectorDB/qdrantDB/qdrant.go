package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/commonModels"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var quadrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)

// A verse and its purport span a handful of chunks at most
const verseScrollLimit = 10

type ClientHolder struct {
	QObj *qdrant.Client
}

func GetQuadrantClient(ctx context.Context) *ClientHolder {

	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient()
		if res != nil {
			quadrantInstance = res
			initCacheCollection(ctx, quadrantInstance)
			go closeQdrant(ctx, quadrantInstance)
		}
	})

	if quadrantInstance == nil {
		return nil
	}
	return &ClientHolder{
		QObj: quadrantInstance,
	}
}

func newClient() *qdrant.Client {

	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))

	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}

	err = createCollection(context.Background(), client, config.VerseCollectionName)
	if err != nil {
		logger.Error("could not create collection: ", "collectionName", config.VerseCollectionName, "error:", err)
		return nil
	}

	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	err := qi.Close()
	if err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
	logger.Info("Closed Qdrant")
}

func (db *ClientHolder) Search(ctx context.Context, vectorFloat []float32) ([]string, []string, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: config.VerseCollectionName, //TODO:with access control this collection should be dynamic ie parameterized
		Query:          qdrant.NewQuery(vectorFloat...),
		Limit:          qdrant.PtrOf(uint64(config.SearchResultLimit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		loggr.Error("Error querying Qdrant: ", "error:", err)
		return nil, nil, err
	}

	var matches []string
	var sources []string
	seen := make(map[string]bool)
	for _, hit := range result {
		matches = append(matches, formatMatch(hit.Payload))

		source := formatSource(hit.Payload)
		if !seen[source] {
			seen[source] = true
			sources = append(sources, source)
		}
	}

	loggr.Debug("Vector search done", "matches", len(matches))
	return matches, sources, nil
}

// LookupVerse pulls the chunks annotated with the exact chapter and verse,
// ordered as they appear in the book.
func (db *ClientHolder) LookupVerse(ctx context.Context, chapter int, verse int) ([]string, []string, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	result, err := db.QObj.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: config.VerseCollectionName,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatchInt("chapter", int64(chapter)),
				qdrant.NewMatchInt("verse", int64(verse)),
			},
		},
		Limit:       qdrant.PtrOf(uint32(verseScrollLimit)),
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		loggr.Error("Error scrolling Qdrant for verse: ", "chapter", chapter, "verse", verse, "error:", err)
		return nil, nil, err
	}

	// Scroll order is by point id, put the chunks back in book order
	sort.Slice(result, func(i, j int) bool {
		pi, pj := result[i].Payload, result[j].Payload
		if pi["page_num"].GetIntegerValue() != pj["page_num"].GetIntegerValue() {
			return pi["page_num"].GetIntegerValue() < pj["page_num"].GetIntegerValue()
		}
		return pi["chunk_order"].GetIntegerValue() < pj["chunk_order"].GetIntegerValue()
	})

	var matches []string
	var sources []string
	seen := make(map[string]bool)
	for _, hit := range result {
		matches = append(matches, hit.Payload["content"].GetStringValue())

		source := formatSource(hit.Payload)
		if !seen[source] {
			seen[source] = true
			sources = append(sources, source)
		}
	}

	loggr.Debug("Verse lookup done", "chapter", chapter, "verse", verse, "matches", len(matches))
	return matches, sources, nil
}

// formatMatch shapes a hit for the LLM prompt, verse tag first when the
// chunk carries one.
func formatMatch(payload map[string]*qdrant.Value) string {
	content := payload["content"].GetStringValue()
	chapter := payload["chapter"].GetIntegerValue()
	verse := payload["verse"].GetIntegerValue()
	if chapter > 0 && verse > 0 {
		return fmt.Sprintf("(BG %d.%d) %s", chapter, verse, content)
	}
	return content
}

// formatSource builds the citation shown to the user. Absent payload keys
// come back as protobuf zero values rather than panicking.
func formatSource(payload map[string]*qdrant.Value) string {
	chapter := payload["chapter"].GetIntegerValue()
	verse := payload["verse"].GetIntegerValue()
	pageNum := payload["page_num"].GetIntegerValue()
	if chapter > 0 && verse > 0 {
		return fmt.Sprintf("BG %d.%d (p. %d)", chapter, verse, pageNum)
	}
	docName := payload["doc_name"].GetStringValue()
	return fmt.Sprintf("%s, p. %d", docName, pageNum)
}

func (db *ClientHolder) CreateCollection(ctx context.Context, collectionName string) error {
	return createCollection(ctx, db.QObj, collectionName)
}

func (db *ClientHolder) UpsertBatch(ctx context.Context, collectionName string, chunks []commonModels.DocChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	qdrantPoints := make([]*qdrant.PointStruct, len(chunks))

	for i, chunk := range chunks {
		qdrantPoints[i] = &qdrant.PointStruct{
			// Converts my UUID string to Qdrant's ID format
			Id: qdrant.NewID(chunk.ChunkId),

			// Converts []float32 to Qdrant's Vector format
			Vectors: qdrant.NewVectors(vectors[i]...),

			Payload: qdrant.NewValueMap(map[string]any{
				"content":        chunk.Chunk,
				"page_num":       chunk.PageNum,
				"chapter":        chunk.Chapter,
				"verse":          chunk.Verse,
				"source_doc_id":  chunk.Doc.Id,
				"doc_name":       chunk.Doc.Name,
				"chunk_order":    chunk.ChunkPageOrder,
				"chunk_id":       chunk.ChunkId,
				"embeddingModel": chunk.EmbeddingModel,
				"ingested_at":    chunk.Doc.LastIngestTimestamp.Unix(),
			}),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         qdrantPoints,
		Wait:           qdrant.PtrOf(true),
	})

	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}

	return nil

}

// CountPoints backs the bootstrap decision to ingest the corpus on first run.
func (db *ClientHolder) CountPoints(ctx context.Context, collectionName string) (uint64, error) {
	count, err := db.QObj.Count(ctx, &qdrant.CountPoints{
		CollectionName: collectionName,
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("qdrant count failed: %w", err)
	}
	return count, nil
}

func createCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {

		return nil
	}

	err = client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension, //TODO:this shouldnt be hardcoded
			Distance: qdrant.Distance_Cosine,
		}),
	})
	return err
}
