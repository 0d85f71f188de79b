package session

import (
	"log"
	"sync"
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"
)

// MemoryStore keeps conversation sessions in process memory. Sessions idle for
// longer than the TTL are swept by a background janitor, which caps memory on
// abandoned conversations.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

func NewMemoryStore(ttl, sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]entities.Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go s.janitor(sweepInterval)
	return s
}

func (s *MemoryStore) Get(phone string) (entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[phone]
	return sess, ok
}

func (s *MemoryStore) Put(sess entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.Phone] = sess
}

func (s *MemoryStore) Delete(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, phone)
}

func (s *MemoryStore) All() []entities.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}

// Stop terminates the janitor goroutine. Safe to call more than once.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if n := s.sweep(now); n > 0 {
				log.Printf("[session][store] swept %d expired sessions", n)
			}
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for phone, sess := range s.sessions {
		if now.Sub(sess.UpdatedAt) > s.ttl {
			delete(s.sessions, phone)
			removed++
		}
	}
	return removed
}
