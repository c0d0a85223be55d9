package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/job"
	"github.com/gitalabs/GitaAPI/internal/metrics"
	"github.com/gitalabs/GitaAPI/internal/rag"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
	// The synchronous /ask path runs the pipeline in the request, bypassing
	// the queue. Everything else goes through the job channel.
	ragService rag.Service
}

func InitJobHandler(jobService *job.Service, ragService rag.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService, ragService: ragService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})

}

func CreateNewJob(newJob newJobData) {
	log := logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	log.Info("To create new job")
	handlerInstance.pushToJobChannel(newJob)
	if newJob.isNewSession {
		log.Info("Create new session")
		handlerInstance.initNewSession(newJob.sessionId, newJob.traceId)
	}
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

func ValidateQuestionRequest(question string, sessionId string) bool {
	if handlerInstance == nil {
		return false
	}
	logJH.Debug("Validating session id", "sessionId :", sessionId)
	if question == "" {
		return false
	}
	if sessionId == "" {
		return true
	}
	return handlerInstance.service.MessageStore.ValidateSessionId(context.Background(), sessionId)
}

// private methods

// answerInRequest runs the pipeline synchronously for /ask. Session history
// is read before and the exchange written after, same as the worker path.
func (h *JobHandler) answerInRequest(ctx context.Context, askJob jobModel.Job) jobModel.Job {
	// The connection can only carry the answer within the server write
	// window, the pipeline must not outlive it.
	ctx, cancel := context.WithTimeout(ctx, config.WriteTimeout)
	defer cancel()

	var history []string
	if askJob.SessionId != "" {
		err, past := h.service.MessageStore.GetMessageHistory(ctx, askJob.SessionId)
		if err != nil {
			logJH.Error("Failed to get message history", "err", err)
		}
		history = past
	}
	result := h.ragService.ProcessRequest(ctx, askJob, history)
	if result.Status != jobModel.JobStatusError && result.SessionId != "" {
		if err := h.service.MessageStore.TrySaveExchange(ctx, result.SessionId, result.JobPayload); err != nil {
			logJH.Error("Failed to save session history", "err", err)
		}
	}
	return result
}

func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued

	if newJob.isDocumentIngest {
		_job.CurrentStep = jobModel.IngestInit
		_job.JobType = jobModel.JobTypeIngest
		_job.JobPayload.IngestFileName = newJob.documentName
		_job.JobPayload.IngestURL = newJob.documentSource
		_job.JobPayload.IngestStartPage = newJob.ingestStartPage
		_job.JobPayload.IngestKeepSource = newJob.keepSource

	} else {
		_job.JobType = jobModel.JobTypeQuery
		_job.SessionId = newJob.sessionId
		_job.JobPayload.Question = newJob.question
		_job.CurrentStep = jobModel.UserQueryInit
	}

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//we will start a new worker every 10 requests - can also be configured
	// or
	//for performance - a new worker is added  for a document ingestion type job
	//ingestion involves batch processing which might take time - external system call
	//worker will be removed if it has idle time - so it should be ok
	//this also allows us to only keep 1 worker running at most times therefore cutting resource spend

	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1) //after sending a request increment counter
	if accurateCount%config.RequestsPerNewWorkerCount == 0 || _job.JobType == jobModel.JobTypeIngest {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Worker count ", accurateCount)
		h.service.DispatcherChannel <- true
	}
}

func (h *JobHandler) initNewSession(sessionId string, traceId string) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	err := h.service.MessageStore.InitNewSession(ctxC, sessionId)
	if err != nil {
		logJH.Error("Error initiating new session", "sessionId", sessionId, "error", err)
		return
	}
}
