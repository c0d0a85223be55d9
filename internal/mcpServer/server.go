package mcpServer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gitalabs/GitaAPI/internal/adapter/utils"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/gita/verseRef"
	"github.com/gitalabs/GitaAPI/internal/rag"
	"github.com/gitalabs/GitaAPI/internal/rag/vectorDB"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// The MCP surface exposes the answering pipeline as tools over stdio so an
// LLM host can ground itself in the scripture. Tool calls are stateless, the
// host carries its own conversation.

type AskInput struct {
	Question string `json:"question" jsonschema:"the question to ask about the Bhagavad-gita"`
}

type AskOutput struct {
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources,omitempty"`
	Confidence float64  `json:"confidence"`
}

type VerseInput struct {
	Chapter int `json:"chapter" jsonschema:"chapter number, 1 to 18"`
	Verse   int `json:"verse" jsonschema:"verse number within the chapter"`
}

type VerseOutput struct {
	Reference string   `json:"reference"`
	Text      string   `json:"text"`
	Sources   []string `json:"sources,omitempty"`
}

type toolHost struct {
	ragService rag.Service
	vector     vectorDB.DataProcessor
	logger     *logger_i.Logger
}

func New(ragService rag.Service, vector vectorDB.DataProcessor) *mcp.Server {
	host := &toolHost{
		ragService: ragService,
		vector:     vector,
		logger:     logger_i.NewLogger("MCP Server"),
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "gita-qa", Version: "1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_gita",
		Description: "Answer a question from the Bhagavad-gita As It Is. Returns a grounded answer with verse citations and a confidence score.",
	}, host.askGita)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup_verse",
		Description: "Fetch the indexed text of an exact Bhagavad-gita verse by chapter and verse number.",
	}, host.lookupVerse)

	return server
}

func (h *toolHost) askGita(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, AskOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, AskOutput{}, errors.New("question is empty")
	}

	traceId := utils.GetNewUUID()
	ctx = context.WithValue(ctx, config.TRACE_ID_KEY, traceId)
	log := h.logger.With("traceId", traceId)
	log.Debug("ask_gita", "question", input.Question)

	askJob := jobModel.Job{
		Id:          utils.GetNewUUID(),
		TraceId:     traceId,
		JobType:     jobModel.JobTypeQuery,
		CreatedTime: time.Now(),
		Status:      jobModel.JobStatusRunning,
		CurrentStep: jobModel.UserQueryInit,
		JobPayload:  jobModel.JobPayload{Question: input.Question},
	}

	result := h.ragService.ProcessRequest(ctx, askJob, nil)
	if result.Status == jobModel.JobStatusError {
		log.Error("ask_gita failed", "message", result.Error.Message)
		return nil, AskOutput{}, fmt.Errorf("answering failed: %s", result.Error.Message)
	}

	out := AskOutput{
		Answer:     result.JobPayload.Answer,
		Sources:    result.JobPayload.Sources,
		Confidence: result.JobPayload.Confidence,
	}
	return nil, out, nil
}

func (h *toolHost) lookupVerse(ctx context.Context, req *mcp.CallToolRequest, input VerseInput) (*mcp.CallToolResult, VerseOutput, error) {
	ref := verseRef.Ref{Chapter: input.Chapter, Verse: input.Verse}
	if !ref.Valid() {
		return nil, VerseOutput{}, fmt.Errorf("no such verse: %s", ref.String())
	}

	traceId := utils.GetNewUUID()
	ctx = context.WithValue(ctx, config.TRACE_ID_KEY, traceId)
	log := h.logger.With("traceId", traceId)

	matches, sources, err := h.vector.LookupVerse(ctx, ref.Chapter, ref.Verse)
	if err != nil {
		log.Error("lookup_verse failed", "ref", ref.String(), "error", err)
		return nil, VerseOutput{}, err
	}
	if len(matches) == 0 {
		return nil, VerseOutput{}, fmt.Errorf("verse %s is not in the index", ref.String())
	}

	log.Debug("lookup_verse", "ref", ref.String(), "matches", len(matches))
	out := VerseOutput{
		Reference: "Bhagavad-gita " + ref.String(),
		Text:      strings.Join(matches, "\n\n"),
		Sources:   sources,
	}
	return nil, out, nil
}
