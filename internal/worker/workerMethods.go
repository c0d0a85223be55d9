package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gitalabs/GitaAPI/internal/config"
	jobmodel "github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/metrics"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	timeout := config.QueryJobTimeout
	if job.JobType == jobmodel.JobTypeIngest {
		timeout = config.IngestJobTimeout
	}
	ctx, cancel := context.WithTimeout(ctxTrace, timeout)
	defer cancel()
	log := logger.With("traceId", job.TraceId, "jobId", job.Id)
	log.Debug("Processing job")

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	if job.JobType == jobmodel.JobTypeIngest {
		job.CurrentStep = jobmodel.IngestProcessing
		job = ingestDocument(ctx, job)

	} else {
		job.CurrentStep = jobmodel.RedisCall
		job = processQuery(ctx, job, log)
		if job.Status != jobmodel.JobStatusError && job.SessionId != "" {
			if err := _jobService.MessageStore.TrySaveExchange(ctx, job.SessionId, job.JobPayload); err != nil {
				log.Error("Failed to save session history", "err", err)
			}
		}
	}

	job.EndTime = time.Now()
	// An errored job stays errored, everything else lands on COMPLETE.
	if job.Status != jobmodel.JobStatusError {
		job.Status = jobmodel.JobStatusComplete
	}
	saveJobState(ctx, job, job.Status)
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}

func ingestDocument(ctx context.Context, job jobmodel.Job) jobmodel.Job {
	return _ragService.IngestDocument(ctx, job)
}

func processQuery(ctx context.Context, job jobmodel.Job, log *logger_i.Logger) jobmodel.Job {
	var messageHistory []string
	if job.SessionId != "" {
		err, history := _jobService.MessageStore.GetMessageHistory(ctx, job.SessionId)
		if err != nil {
			log.Error("Failed to get message history", "err", err)
		}
		messageHistory = history
	}
	return _ragService.ProcessRequest(ctx, job, messageHistory)
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update status in Redis", "err", err)
	}
}
