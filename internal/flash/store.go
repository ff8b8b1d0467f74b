package flash

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	redisutil "github.com/ikkim/fyyur/pkg/redis"
	"github.com/redis/go-redis/v9"
)

// Message is one flash message.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

const (
	CategorySuccess = "success"
	CategoryError   = "error"
)

// Store keeps pending messages per browser session until they are shown.
type Store interface {
	Push(ctx context.Context, sessionID string, msgs ...Message) error
	// Pop returns and forgets every pending message of the session.
	Pop(ctx context.Context, sessionID string) ([]Message, error)
}

type memoryEntry struct {
	messages []Message
	expires  time.Time
}

// MemoryStore is a process-local Store. Entries expire ttl after the last
// push.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Push(_ context.Context, sessionID string, msgs ...Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &memoryEntry{}
		s.entries[sessionID] = entry
	}
	entry.messages = append(entry.messages, msgs...)
	entry.expires = now.Add(s.ttl)
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, sessionID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, nil
	}
	delete(s.entries, sessionID)
	if !s.now().Before(entry.expires) {
		return nil, nil
	}
	return entry.messages, nil
}

// sweep drops expired entries. Callers hold mu.
func (s *MemoryStore) sweep(now time.Time) {
	for id, entry := range s.entries {
		if !now.Before(entry.expires) {
			delete(s.entries, id)
		}
	}
}

// RedisStore keeps messages in a Redis list per session.
type RedisStore struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	prefix string
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, prefix: "flash:"}
}

func (s *RedisStore) Push(ctx context.Context, sessionID string, msgs ...Message) error {
	values := make([]string, 0, len(msgs))
	for _, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, string(b))
	}
	return redisutil.AppendList(ctx, s.rdb, s.prefix+sessionID, s.ttl, values...)
}

func (s *RedisStore) Pop(ctx context.Context, sessionID string) ([]Message, error) {
	values, err := redisutil.DrainList(ctx, s.rdb, s.prefix+sessionID)
	if err != nil {
		return nil, err
	}
	msgs := make([]Message, 0, len(values))
	for _, v := range values {
		var m Message
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
