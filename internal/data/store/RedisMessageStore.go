package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gitalabs/GitaAPI/internal/adapter/utils"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/data/redisStore"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

// Sessions live in their own redis DB as lists of JSON exchanges. The first
// list entry is an empty marker, redis drops empty lists so the marker is
// what makes a fresh session exist at all.
type RedisMessageStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisMessageStore(ctx context.Context) *RedisMessageStore {
	redisBacked := redisStore.GetRedisStore(ctx, config.RedisSessionStore)
	if redisBacked == nil {
		return nil
	}
	return &RedisMessageStore{
		store:  redisBacked,
		logger: logger_i.NewLogger("MessageStore"),
	}
}

func (s *RedisMessageStore) ValidateSessionId(ctx context.Context, sessionId string) bool {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)
	log.Debug("validating sessionId")
	isFound, err := s.store.Exists(ctx, sessionId)
	if err != nil {
		log.Error("Failed to check if sessionId exists", "err", err)
		return false
	}
	return isFound
}

func (s *RedisMessageStore) TrySaveExchange(ctx context.Context, id string, exchange jobModel.JobPayload) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", id)
	if s.ValidateSessionId(ctx, id) == false {
		err := errors.New("invalid session id")
		log.Error("Failed Validation before saving", "err", err)
		return err
	}
	return s.saveExchange(ctx, id, exchange)
}

func (s *RedisMessageStore) saveExchange(ctx context.Context, id string, exchange jobModel.JobPayload) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", id)
	err := s.store.ListPush(ctx, id, marshallJson(exchange, s.logger), config.RedisSessionStoreTTL)
	if err != nil {
		log.Error("error saving exchange", "error:", err)
		return err
	}
	log.Debug("Saved exchange successfully")
	return nil
}

func (s *RedisMessageStore) InitNewSession(ctx context.Context, id string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", id)
	log.Debug("Initializing new session")
	if err := s.store.Del(ctx, id); err != nil {
		log.Error("Error clearing previous session", "error", err)
	}
	return s.saveExchange(ctx, id, jobModel.JobPayload{})
}

func marshallJson(payload jobModel.JobPayload, logger *logger_i.Logger) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshalling json :", "error", err)
	}
	return data
}

func (s *RedisMessageStore) GetMessageHistory(ctx context.Context, sessionId string) (error, []string) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)
	log.Debug("Getting message history")

	res, err := s.store.ListGetRecent(ctx, sessionId, config.MessageHistoryLimit)

	if err != nil {
		log.Error("Error getting history", "error:", err)
		return err, nil
	}
	return nil, utils.ReverseStringArray(dropSessionMarker(res))
}

func TestMessageStore(store *redisStore.Store) *RedisMessageStore {
	return &RedisMessageStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}

// The init marker is an empty payload, not an exchange worth prompting with.
func dropSessionMarker(entries []string) []string {
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if e == "{}" {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
