package ingest

import (
	"context"
	"os"
	"time"

	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/commonModels"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding"
	"github.com/gitalabs/GitaAPI/internal/rag/vectorDB"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

type rawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

var logger = logger_i.NewLogger("Document Ingestion ")

// traceFrom reads the trace id without assuming one is set. The corpus
// bootstrap ingests without a request trace.
func traceFrom(ctx context.Context) string {
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return trace
	}
	return "untraced"
}

func ProcessDocumentIngestion(ctx context.Context, job jobModel.Job, e embedding.Embedder, vectorDatabase vectorDB.DataProcessor) jobModel.Job {
	log := logger.With("traceId", traceFrom(ctx), "JobId", job.Id)

	docName := job.JobPayload.IngestFileName
	docPath := job.JobPayload.IngestURL

	log.Debug("Processing document", "filename", docName, "path", docPath)

	job.CurrentStep = jobModel.IngestProcessing
	err := vectorDatabase.CreateCollection(ctx, config.VerseCollectionName)
	if err != nil {
		log.Error("Error creating collection", "error", err)
		job.Status = jobModel.JobStatusError
		return job
	}

	docType := getDocType(docPath)
	log.Debug("Processing document", "type", docType)
	if docType == commonModels.ERR {
		log.Error("Unsupported document type", "filename", docName)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Unsupported document type"
		return job
	}

	doc := commonModels.Document{
		Id:                  job.Id,
		Name:                docName,
		LastIngestTimestamp: time.Now(),
		ContentType:         docType,
	}

	rawPages, err := extractText(docPath, doc.ContentType)
	if err != nil {
		log.Error("Error processing document", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Error extracting document content"
		return job
	}

	pages := filterFrontMatter(rawPages, job.JobPayload.IngestStartPage)
	log.Debug("Processing document", "raw pages", len(rawPages), "pages kept", len(pages))

	chunks := PrepareChunks(pages, doc, e.ModelName())
	log.Debug("Processing document", "Number of chunks: ", len(chunks))

	err = BatchIngest(ctx, chunks, vectorDatabase, e)
	if err != nil {
		job.Status = jobModel.JobStatusError
		log.Error("Error processing document", "error", err)
		return job
	}

	// Uploaded files are staged in a temp directory and cleaned up here.
	// Corpus assets are ingested in place and must survive the job.
	if !job.JobPayload.IngestKeepSource {
		if err := os.Remove(docPath); err != nil {
			log.Error("Error removing file", "error", err)
		}
	}
	job.Status = jobModel.JobStatusComplete
	job.CurrentStep = jobModel.Complete
	return job
}

// filterFrontMatter drops pages before startPage. Scanned books open with
// covers, dedications and a table of contents that only pollute the index.
func filterFrontMatter(pages []rawPage, startPage int) []rawPage {
	if startPage <= 1 {
		return pages
	}
	kept := make([]rawPage, 0, len(pages))
	for _, page := range pages {
		if page.Number >= startPage {
			kept = append(kept, page)
		}
	}
	return kept
}
