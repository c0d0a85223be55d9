package store

import (
	"context"
	"sync"
	"time"

	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem JobStore")

// storedJob carries the save time so the fallback honors the same retention
// the redis store gets from key TTLs.
type storedJob struct {
	job     jobModel.Job
	savedAt time.Time
}

type InMemoryJobStore struct {
	jobMutex *sync.RWMutex
	jobMap   map[string]storedJob
}

func InitInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{
		jobMutex: new(sync.RWMutex),
		jobMap:   make(map[string]storedJob),
	}
}

func (store *InMemoryJobStore) SaveJob(ctx context.Context, jobToStored jobModel.Job) error {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	store.evictExpired()
	store.jobMap[jobToStored.Id] = storedJob{job: jobToStored, savedAt: time.Now()}
	inMemLogger.Debug("Saved job to store", "jobId", jobToStored.Id)
	return nil
}

func (store *InMemoryJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	store.jobMutex.RLock()
	defer store.jobMutex.RUnlock()
	entry, found := store.jobMap[jobId]
	if found && time.Since(entry.savedAt) > config.RedisJobStoreTTL {
		// Expired entries linger until the next save but never serve reads.
		found = false
	}
	inMemLogger.Debug("Job lookup", "jobId", jobId, "found", found)
	if !found {
		return jobModel.Job{}, false
	}
	return entry.job, true
}

func (store *InMemoryJobStore) DeleteJob(ctx context.Context, jobID string) {
	store.jobMutex.Lock()
	defer store.jobMutex.Unlock()
	delete(store.jobMap, jobID)
}

// evictExpired runs with the write lock held.
func (store *InMemoryJobStore) evictExpired() {
	cutoff := time.Now().Add(-config.RedisJobStoreTTL)
	for id, entry := range store.jobMap {
		if entry.savedAt.Before(cutoff) {
			delete(store.jobMap, id)
		}
	}
}
