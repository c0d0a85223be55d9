// @title           Gita QA API
// @version         1.0
// @description     Retrieval-augmented question answering over the Bhagavad-gita
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email   dev@gitalabs.io

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gitalabs/GitaAPI/internal/adapter/utils"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/data/store"
	jobmodel "github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/handlers"
	"github.com/gitalabs/GitaAPI/internal/job"
	"github.com/gitalabs/GitaAPI/internal/metrics"
	"github.com/gitalabs/GitaAPI/internal/rag"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding/googleEmbedding"
	"github.com/gitalabs/GitaAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/gitalabs/GitaAPI/internal/rag/llm/gemini"
	"github.com/gitalabs/GitaAPI/internal/rag/vectorDB/qdrantDB"
	"github.com/gitalabs/GitaAPI/internal/server"
	"github.com/gitalabs/GitaAPI/internal/worker"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
	"github.com/joho/godotenv"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file, reading the process environment")
	}

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and job store
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	// The nil checks must run on the concrete pointers. A nil pointer wrapped
	// in the interface would not compare equal to nil anymore.
	redisJobStore := store.GetRedisJobStore(serviceContext)
	redisMessageStore := store.GetRedisMessageStore(serviceContext)
	if redisJobStore == nil || redisMessageStore == nil {
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			logger.Error("Redis stores are offline and the in-memory fallback is disabled. Shutting down.")
			return
		}
		logger.Error("Redis stores are offline, falling back to in-memory stores")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.MessageStore = store.InitMessageStore()
	} else {
		serviceConfig.JobStore = redisJobStore
		serviceConfig.MessageStore = redisMessageStore
	}
	service := job.InitJobService(serviceConfig)

	vectorDB := qdrantDB.GetQuadrantClient(serviceContext)

	var embeddingService embedding.Embedder
	switch config.EmbeddingProvider() {
	case "openai":
		embeddingService = openaiEmbedding.GetOpenAIEmbeddingClient(config.OpenAIEmbeddingModel, config.OpenAIAPIKey())
	default:
		embeddingService = googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey())
	}

	llmProvider := gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GoogleAPIKey())

	if vectorDB == nil || embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	ragService := rag.NewService(vectorDB, llmProvider, embeddingService)

	handlers.InitJobHandler(service, ragService)

	//init worker pool
	worker.InitServices(service, ragService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	bootstrapCorpus(serviceContext, vectorDB, jobChannel, dispatcherChannel, logger)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

// bootstrapCorpus queues the fixed corpus for ingestion when the index is
// empty. First boot of a fresh deployment, a no-op everywhere else.
func bootstrapCorpus(ctx context.Context, vectorDB *qdrantDB.ClientHolder, jobChannel chan jobmodel.Job, dispatcherChannel chan bool, logger *logger_i.Logger) {
	manifest, err := config.LoadCorpusManifest(config.DefaultCorpusManifest)
	if err != nil {
		logger.Warn("No corpus manifest, skipping corpus bootstrap", "error", err)
		return
	}

	if _, err := os.Stat(manifest.Document.Path); err != nil {
		logger.Warn("Corpus asset is missing, skipping corpus bootstrap", "path", manifest.Document.Path, "error", err)
		return
	}

	count, err := vectorDB.CountPoints(ctx, manifest.Collection)
	if err != nil {
		logger.Warn("Could not count indexed points, skipping corpus bootstrap", "error", err)
		return
	}
	if count > 0 {
		logger.Info("Corpus already indexed", "collection", manifest.Collection, "points", count)
		return
	}

	ingestJob := jobmodel.Job{
		Id:          utils.GetNewUUID(),
		TraceId:     utils.GetNewUUID(),
		JobType:     jobmodel.JobTypeIngest,
		CreatedTime: time.Now(),
		Status:      jobmodel.JobStatusQueued,
		CurrentStep: jobmodel.IngestInit,
		JobPayload: jobmodel.JobPayload{
			IngestFileName:  manifest.Document.Name,
			IngestURL:       manifest.Document.Path,
			IngestStartPage: manifest.Document.StartPage,
			// The corpus asset lives in the repo, only uploads are staged copies
			IngestKeepSource: true,
		},
	}

	metrics.IncrementJobsInQueue()
	jobChannel <- ingestJob
	dispatcherChannel <- true
	logger.Info("Queued corpus for ingestion", "document", manifest.Document.Name, "startPage", manifest.Document.StartPage)
}
