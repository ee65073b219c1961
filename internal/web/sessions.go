package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizview/internal/quiz"
)

// session is one browser's quiz. mu serializes controller access.
type session struct {
	mu       sync.Mutex
	id       string
	ctrl     *quiz.Controller
	lastSeen time.Time
}

// maxSessions caps live sessions. At the cap the least recently seen
// session is evicted.
const maxSessions = 10000

// sessionStore keeps sessions in memory only; they are dropped after ttl
// without activity or when the process exits.
type sessionStore struct {
	mu      sync.Mutex
	byID    map[string]*session
	ttl     time.Duration
	max     int
	now     func() time.Time
	newCtrl func() *quiz.Controller
}

func newSessionStore(ttl time.Duration, newCtrl func() *quiz.Controller) *sessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionStore{
		byID:    make(map[string]*session),
		ttl:     ttl,
		max:     maxSessions,
		now:     time.Now,
		newCtrl: newCtrl,
	}
}

// get returns the live session for id, or creates a fresh one. created is
// true when the caller must hand the new id back to the client.
func (s *sessionStore) get(id string) (sess *session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	if sess, ok := s.byID[id]; ok && id != "" {
		sess.lastSeen = now
		return sess, false
	}

	if s.max > 0 && len(s.byID) >= s.max {
		s.evictOldestLocked()
	}

	sess = &session{
		id:       uuid.New().String(),
		ctrl:     s.newCtrl(),
		lastSeen: now,
	}
	s.byID[sess.id] = sess
	return sess, true
}

// len returns the number of live sessions.
func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *sessionStore) sweepLocked(now time.Time) {
	for id, sess := range s.byID {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.byID, id)
		}
	}
}

func (s *sessionStore) evictOldestLocked() {
	var oldest *session
	for _, sess := range s.byID {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	if oldest != nil {
		delete(s.byID, oldest.id)
	}
}
