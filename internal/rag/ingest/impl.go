package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gitalabs/GitaAPI/internal/adapter/utils"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/commonModels"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding"
	"github.com/gitalabs/GitaAPI/internal/rag/vectorDB"
)

//splitter

func splitTextIntoChunks(text string, limit int, overlap int) []string {
	var chunks []string

	// If text is already small enough, just return it
	if len(text) <= limit {
		return []string{text}
	}

	// Separators ordered from "best" to "worst" for semantic meaning
	separators := []string{"\n\n", "\n", ". ", " ", ""}

	var splitChar string
	found := false
	for _, s := range separators {
		if strings.Contains(text, s) {
			splitChar = s
			found = true
			break
		}
	}

	if !found {
		// Hard cut if no separator found (rare)
		return []string{text[:limit]}
	}

	parts := strings.Split(text, splitChar)
	var currentChunk strings.Builder

	for _, part := range parts {
		// If adding the part exceeds the limit
		if currentChunk.Len()+len(part)+len(splitChar) > limit {
			if currentChunk.Len() > 0 {
				chunks = append(chunks, currentChunk.String())
			}

			// Handle overlap: start the next chunk with the end of the previous one
			// (Simple version: take last N chars)
			overlapContent := ""
			if currentChunk.Len() > overlap {
				overlapContent = currentChunk.String()[currentChunk.Len()-overlap:]
			}

			currentChunk.Reset()
			currentChunk.WriteString(overlapContent)
		}

		if currentChunk.Len() > 0 && splitChar != "" {
			currentChunk.WriteString(splitChar)
		}
		currentChunk.WriteString(part)
	}

	if currentChunk.Len() > 0 {
		chunks = append(chunks, currentChunk.String())
	}

	return chunks
}

func getDocType(docPath string) commonModels.DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return commonModels.PDF
	case ".txt":
		return commonModels.TXT
	case ".docx", ".rtf":
		return commonModels.DOCX
	default:
		return commonModels.ERR
	}
}

func extractText(url string, contentType commonModels.DocType) ([]rawPage, error) {
	switch contentType {
	case commonModels.PDF:
		return extractPDF(url)
	case commonModels.DOCX, commonModels.TXT:
		return extractdocxTxtRtf(url)

	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}

func PrepareChunks(pages []rawPage, doc commonModels.Document, embeddingModel string) []commonModels.DocChunk {
	var allChunks []commonModels.DocChunk

	// Position carries across page boundaries. A verse's purport can run
	// for pages without restating its number.
	var tracker verseTracker

	for _, page := range pages {
		cleaned := CleanPage(page.Content)
		if cleaned == "" {
			continue
		}

		stringChunks := splitTextIntoChunks(cleaned, config.MaxChunkSize, config.ChunkOverlap)

		for i, text := range stringChunks {
			tracker.observe(text)
			chapter, verse := tracker.current()
			allChunks = append(allChunks, commonModels.DocChunk{
				Doc:            doc,
				ChunkId:        utils.GetNewUUID(),
				Chunk:          text,
				PageNum:        page.Number,
				ChunkPageOrder: i,
				Chapter:        chapter,
				Verse:          verse,
				EmbeddingModel: embeddingModel, //this can help us later if we want to have multiple embedding models

			})
		}
	}

	return allChunks
}

func BatchIngest(ctx context.Context, chunks []commonModels.DocChunk, vectorDB vectorDB.DataProcessor, embedder embedding.Embedder) error {
	log := logger.With("traceId", traceFrom(ctx))

	batchSize := 100
	isHugeDataSet := false

	if len(chunks) > 1000000 { //we only want to do this if there is a huge document
		isHugeDataSet = true
		log.Debug("Is a huge dataset")
	}

	for i := 0; i < len(chunks); i += batchSize {
		end := i + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		//TODO:each batch can be its own go routine
		//but we will monitor the memory before introducing its own worker routine

		// Chunks and texts stay aligned. An empty chunk gets no vector
		// back from the embedder, so it must not reach the upsert either.
		var kept []commonModels.DocChunk
		var texts []string
		for _, c := range chunks[i:end] {
			if c.Chunk != "" {
				kept = append(kept, c)
				texts = append(texts, c.Chunk)
			}
		}
		if len(texts) == 0 {
			continue
		}

		log.Debug("Staring embedding call", "current batch length ", len(kept), "length of texts", len(texts))
		// vectors is [][]float32
		vectors, err := embedder.BatchEmbedding(ctx, texts, isHugeDataSet)
		if err != nil {
			return fmt.Errorf("embedding batch failed: %w", err)
		}

		err = vectorDB.UpsertBatch(ctx, config.VerseCollectionName, kept, vectors)
		if err != nil {
			return fmt.Errorf("upserting to qdrant failed: %w", err)
		}
	}

	return nil
}
