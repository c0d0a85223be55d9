package main

import (
	"context"
	"os"

	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/mcpServer"
	"github.com/gitalabs/GitaAPI/internal/rag"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding/googleEmbedding"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/gitalabs/GitaAPI/internal/rag/llm/gemini"
	"github.com/gitalabs/GitaAPI/internal/rag/vectorDB/qdrantDB"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// stdout carries the protocol, logs go to stderr
	logger_i.InitTo(os.Stderr)
	logger := logger_i.NewLogger("MCP Main")

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file, reading the process environment")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vector := qdrantDB.GetQuadrantClient(ctx)
	if vector == nil {
		logger.Error("Qdrant is unreachable, exiting")
		os.Exit(1)
	}

	var embedder embedding.Embedder
	switch config.EmbeddingProvider() {
	case "openai":
		embedder = openaiEmbedding.GetOpenAIEmbeddingClient(config.OpenAIEmbeddingModel, config.OpenAIAPIKey())
	default:
		embedder = googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, config.GoogleAPIKey())
	}
	if embedder == nil {
		logger.Error("Embedding client failed to initialize, exiting")
		os.Exit(1)
	}

	llmProvider := gemini.GetGeminiClient(ctx, config.GeminiModelName, config.GoogleAPIKey())
	if llmProvider == nil {
		logger.Error("Gemini client failed to initialize, exiting")
		os.Exit(1)
	}

	ragService := rag.NewService(vector, llmProvider, embedder)

	server := mcpServer.New(ragService, vector)
	logger.Info("MCP server listening on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
