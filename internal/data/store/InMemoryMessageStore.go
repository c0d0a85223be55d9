package store

import (
	"context"
	"errors"
	"sync"

	"github.com/gitalabs/GitaAPI/internal/adapter/utils"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
)

type InMemoryMessageStore struct {
	sessionLock *sync.RWMutex
	sessionMap  map[string][]jobModel.JobPayload
}

func InitMessageStore() *InMemoryMessageStore {
	return &InMemoryMessageStore{
		sessionLock: new(sync.RWMutex),
		sessionMap:  make(map[string][]jobModel.JobPayload),
	}
}

func (store *InMemoryMessageStore) ValidateSessionId(ctx context.Context, sessionId string) bool {
	store.sessionLock.RLock()
	defer store.sessionLock.RUnlock()
	_, ok := store.sessionMap[sessionId]
	return ok
}

func (store *InMemoryMessageStore) saveExchange(id string, exchange jobModel.JobPayload) {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()
	store.sessionMap[id] = append(store.sessionMap[id], exchange)
	inMemLogger.Debug("Saved exchange to session store", "sessionId", id)
}

func (store *InMemoryMessageStore) TrySaveExchange(ctx context.Context, id string, exchange jobModel.JobPayload) error {
	if store.ValidateSessionId(ctx, id) == false {
		return errors.New("invalid session id")
	}
	store.saveExchange(id, exchange)
	return nil
}

func (store *InMemoryMessageStore) InitNewSession(ctx context.Context, id string) error {
	store.sessionLock.Lock()
	defer store.sessionLock.Unlock()
	store.sessionMap[id] = make([]jobModel.JobPayload, 0)
	return nil
}

func (store *InMemoryMessageStore) GetMessageHistory(ctx context.Context, sessionId string) (error, []string) {
	store.sessionLock.RLock()
	defer store.sessionLock.RUnlock()

	exchanges, ok := store.sessionMap[sessionId]
	if !ok {
		return nil, nil
	}
	if n := int(config.MessageHistoryLimit); len(exchanges) > n {
		exchanges = exchanges[len(exchanges)-n:]
	}

	history := make([]string, 0, len(exchanges))
	for _, e := range exchanges {
		history = append(history, string(marshallJson(e, inMemLogger)))
	}
	return nil, utils.ReverseStringArray(history)
}
