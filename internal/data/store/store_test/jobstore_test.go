package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/data/redisStore"
	"github.com/gitalabs/GitaAPI/internal/data/store"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/redis/go-redis/v9"
)

func TestRedisJobStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	internalStore := redisStore.NewTestStore(client)
	jobStore := store.TestJobStore(internalStore)

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	jobID := "job_abc_123"

	testJob := jobModel.Job{
		Id:     jobID,
		Status: jobModel.JobStatusRunning,
		JobPayload: jobModel.JobPayload{
			Question: "How do I mock Redis?",
		},
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		err := jobStore.SaveJob(ctx, testJob)
		if err != nil {
			t.Fatalf("SaveJob failed: %v", err)
		}

		retrievedJob, found := jobStore.GetJob(ctx, jobID)
		if !found {
			t.Fatal("Job was saved but not found in Redis")
		}

		if retrievedJob.JobPayload.Question != testJob.JobPayload.Question {
			t.Errorf("Data mismatch! Got %s, want %s",
				retrievedJob.JobPayload.Question, testJob.JobPayload.Question)
		}
	})

	t.Run("Saved Job Expires", func(t *testing.T) {
		if ttl := mr.TTL(jobID); ttl != config.RedisJobStoreTTL {
			t.Errorf("Job TTL got %v, want %v", ttl, config.RedisJobStoreTTL)
		}
	})

	t.Run("Get Non-Existent Job", func(t *testing.T) {
		_, found := jobStore.GetJob(ctx, "ghost-id")
		if found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Job", func(t *testing.T) {
		jobStore.DeleteJob(ctx, jobID)

		if mr.Exists(jobID) {
			t.Error("Job still exists in Redis after DeleteJob call")
		}
	})
}

func TestInMemoryJobStore_Fallback(t *testing.T) {
	jobStore := store.InitInMemoryJobStore()
	ctx := context.Background()

	testJob := jobModel.Job{
		Id:     "mem-job-1",
		Status: jobModel.JobStatusQueued,
		JobPayload: jobModel.JobPayload{
			Question: "What does chapter 2 teach?",
		},
	}

	if err := jobStore.SaveJob(ctx, testJob); err != nil {
		t.Fatalf("SaveJob failed: %v", err)
	}

	retrieved, found := jobStore.GetJob(ctx, "mem-job-1")
	if !found {
		t.Fatal("Job was saved but not found")
	}
	if retrieved.JobPayload.Question != testJob.JobPayload.Question {
		t.Errorf("Question got %q, want %q", retrieved.JobPayload.Question, testJob.JobPayload.Question)
	}

	if _, ok := jobStore.GetJob(ctx, "ghost"); ok {
		t.Error("Expected found=false for unknown id")
	}

	jobStore.DeleteJob(ctx, "mem-job-1")
	if _, ok := jobStore.GetJob(ctx, "mem-job-1"); ok {
		t.Error("Job still present after delete")
	}
}

func TestRedisJobStore_Race(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	jobStore := store.TestJobStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "race-trace")
	job := jobModel.Job{Id: "race-job"}

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = jobStore.SaveJob(ctx, job)
			_, _ = jobStore.GetJob(ctx, "race-job")
		}()
	}
	wg.Wait()
}
