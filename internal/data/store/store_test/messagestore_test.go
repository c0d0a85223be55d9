package store_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/data/redisStore"
	"github.com/gitalabs/GitaAPI/internal/data/store"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/redis/go-redis/v9"
)

func TestRedisMessageStore_SessionLifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	messageStore := store.TestMessageStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	sessionId := "session_xyz_789"

	t.Run("Unknown Session Is Invalid", func(t *testing.T) {
		if messageStore.ValidateSessionId(ctx, "ghost-session") {
			t.Error("Expected false for a session that was never initialized")
		}
	})

	t.Run("Init Makes Session Valid", func(t *testing.T) {
		if err := messageStore.InitNewSession(ctx, sessionId); err != nil {
			t.Fatalf("InitNewSession failed: %v", err)
		}
		if !messageStore.ValidateSessionId(ctx, sessionId) {
			t.Error("Session not found after init")
		}
		if ttl := mr.TTL(sessionId); ttl != config.RedisSessionStoreTTL {
			t.Errorf("Session TTL got %v, want %v", ttl, config.RedisSessionStoreTTL)
		}
	})

	t.Run("Exchange Roundtrip Skips Init Marker", func(t *testing.T) {
		exchange := jobModel.JobPayload{
			Question: "What is dharma?",
			Answer:   "Hare Krishna! Dharma is one's prescribed duty.",
			Sources:  []string{"BG 2.31 (p. 131)"},
		}
		if err := messageStore.TrySaveExchange(ctx, sessionId, exchange); err != nil {
			t.Fatalf("TrySaveExchange failed: %v", err)
		}

		err, history := messageStore.GetMessageHistory(ctx, sessionId)
		if err != nil {
			t.Fatalf("GetMessageHistory failed: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("History length got %d, want 1 (init marker must be dropped)", len(history))
		}
		if !strings.Contains(history[0], "What is dharma?") {
			t.Errorf("History entry %q does not carry the question", history[0])
		}
	})

	t.Run("Save To Unknown Session Fails", func(t *testing.T) {
		err := messageStore.TrySaveExchange(ctx, "ghost-session", jobModel.JobPayload{Question: "lost"})
		if err == nil {
			t.Error("Expected an error saving to a session that does not exist")
		}
	})

	t.Run("History Is Capped And Newest First", func(t *testing.T) {
		for i := 1; i <= 7; i++ {
			exchange := jobModel.JobPayload{
				Question: fmt.Sprintf("question %d", i),
				Answer:   fmt.Sprintf("answer %d", i),
			}
			if err := messageStore.TrySaveExchange(ctx, sessionId, exchange); err != nil {
				t.Fatalf("TrySaveExchange %d failed: %v", i, err)
			}
		}

		err, history := messageStore.GetMessageHistory(ctx, sessionId)
		if err != nil {
			t.Fatalf("GetMessageHistory failed: %v", err)
		}
		if int64(len(history)) != config.MessageHistoryLimit {
			t.Fatalf("History length got %d, want %d", len(history), config.MessageHistoryLimit)
		}
		if !strings.Contains(history[0], "question 7") {
			t.Errorf("Newest exchange should come first, got %q", history[0])
		}
		if !strings.Contains(history[len(history)-1], "question 3") {
			t.Errorf("Oldest kept exchange should be question 3, got %q", history[len(history)-1])
		}
	})
}

func TestInMemoryMessageStore_Fallback(t *testing.T) {
	messageStore := store.InitMessageStore()
	ctx := context.Background()
	sessionId := "inmem-session"

	if err := messageStore.TrySaveExchange(ctx, sessionId, jobModel.JobPayload{Question: "early"}); err == nil {
		t.Error("Expected an error saving before the session exists")
	}

	if err := messageStore.InitNewSession(ctx, sessionId); err != nil {
		t.Fatalf("InitNewSession failed: %v", err)
	}
	if !messageStore.ValidateSessionId(ctx, sessionId) {
		t.Fatal("Session not found after init")
	}

	for i := 1; i <= 7; i++ {
		exchange := jobModel.JobPayload{Question: fmt.Sprintf("question %d", i)}
		if err := messageStore.TrySaveExchange(ctx, sessionId, exchange); err != nil {
			t.Fatalf("TrySaveExchange %d failed: %v", i, err)
		}
	}

	err, history := messageStore.GetMessageHistory(ctx, sessionId)
	if err != nil {
		t.Fatalf("GetMessageHistory failed: %v", err)
	}
	if int64(len(history)) != config.MessageHistoryLimit {
		t.Fatalf("History length got %d, want %d", len(history), config.MessageHistoryLimit)
	}
	if !strings.Contains(history[0], "question 7") {
		t.Errorf("Newest exchange should come first, got %q", history[0])
	}
}
