package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5
	CacheSimilarityCutoff           = 0.97

	EmbeddingOutputDimensionality int32 = 1536
	VerseCollectionName                 = "gita-verses"
	CacheCollectionName                 = "semantic-cache"

	//answer confidence per pipeline layer
	VerseAnswerConfidence     = 1.0
	GuidanceAnswerConfidence  = 0.95
	ChapterAnswerConfidence   = 0.95
	CuratedAnswerConfidence   = 0.9
	CachedAnswerConfidence    = 0.95
	RetrievalAnswerConfidence = 0.75
	FallbackAnswerConfidence  = 0.0

	AnswerGreeting = "Hare Krishna!"
	// Served when nothing in the index comes close, the LLM is not called
	FallbackAnswer = "I couldn't find a satisfactory answer to your question in the Bhagavad Gita. Please try rephrasing your question or asking about a different topic from the scripture."

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//job deadlines. Ingesting a full book can sit behind a batch embedding
	//job that is polled on a long interval, so it gets hours, not seconds.
	QueryJobTimeout  = 60 * time.Second
	IngestJobTimeout = 4 * time.Hour

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second //sync /ask waits on the full pipeline
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":8080"

	//job requests buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantConnectionTimeout = 30 * time.Second
	QdrantHost              = ""
	QdrantPort              = 6333 //http
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false //set for https
	QdrantPoolSize          = 1     //2-5 is preferred for prod according to documentation
	QdrantKeepAliveTimeout  = 30 * time.Second
	SearchResultLimit       = 5

	//chunking
	MaxChunkSize = 1000 //characters
	ChunkOverlap = 150  //generous overlap helps semantic continuity

	//llm
	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel = "gemini-embedding-001"
	OpenAIEmbeddingModel = "text-embedding-3-small"

	ModelTemperature float32 = 0.7
	ModelContext             = "You are a humble servant answering questions about the Bhagavad-gita As It Is. " +
		"Answer only from the scripture passages provided in the context and cite the verse references (like Bg 2.47) you rely on. " +
		"Keep the tone respectful and devotional. If the context does not contain the answer, say you do not know rather than inventing one."

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore     = 0
	RedisSessionStore = 1

	//redis timeouts
	RedisJobStoreTTL     = 24 * time.Hour
	RedisSessionStoreTTL = 24 * time.Hour

	//prior exchanges fed back into the model per question
	MessageHistoryLimit int64 = 5

	//suggestions returned by /questions/related
	RelatedQuestionsLimit = 5

	//corpus
	DefaultCorpusManifest = "corpus.yaml"

	//reported by /health, tells probes which deployment answered
	ServiceName = "gita-qa-api"
)

// Env-dependent values go through functions so that godotenv loading in main
// happens before the first read.

func GoogleAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// EmbeddingProvider selects the embedder backend: "google" (default) or "openai".
func EmbeddingProvider() string {
	p := os.Getenv("EMBEDDING_PROVIDER")
	if p == "" {
		return "google"
	}
	return p
}

func AuthToken() string {
	return os.Getenv("AUTH_TOKEN")
}

func NoAuthBypass() bool {
	return os.Getenv("NO_AUTH_BYPASS") == "true"
}

func RedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}
