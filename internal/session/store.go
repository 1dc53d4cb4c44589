// Package session keeps per-conversation state between chat turns.
package session

import (
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"hathor-chatbot/pkg"
)

// HeaderName is the request header carrying the session token.
const HeaderName = "X-Session-Id"

// DefaultKey is used when a client supplies no session header.  Anonymous
// clients collide on this key; the bounded TTL'd store keeps the blast
// radius of that collision limited.
const DefaultKey = "default"

const (
	DefaultCacheSize = 1024
	DefaultTTL       = time.Hour
)

// Context is the stored record of the last turn for one session.  Once set,
// LastResponse is exactly the text returned to the client for that turn so
// the prescription document reproduces what the user saw.
type Context struct {
	LastType     pkg.ResponseType
	LastResponse string
	Prescription *pkg.Prescription
	UpdatedAt    time.Time
}

// Store is the conversation-context contract used by the responder and the
// download path.
type Store interface {
	Get(sessionID string) (Context, bool)
	Put(sessionID string, ctx Context)
	Evict(sessionID string)
}

// KeyFunc derives the session key for a request.  It is injectable so the
// header-or-default policy stays a deliberate choice rather than an
// implicit fallback.
type KeyFunc func(r *http.Request) string

// HeaderKey returns the standard key policy: the session header when
// present, DefaultKey otherwise.
func HeaderKey(r *http.Request) string {
	if id := r.Header.Get(HeaderName); id != "" {
		return id
	}
	return DefaultKey
}

// LRUStore bounds conversation state with an expirable LRU so entries never
// accumulate for the lifetime of the process.
type LRUStore struct {
	cache *lru.LRU[string, Context]
}

// NewLRUStore builds a store holding at most size entries, each expiring
// ttl after its last write.  Non-positive arguments fall back to the
// package defaults.
func NewLRUStore(size int, ttl time.Duration) *LRUStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LRUStore{cache: lru.NewLRU[string, Context](size, nil, ttl)}
}

func (s *LRUStore) Get(sessionID string) (Context, bool) {
	return s.cache.Get(sessionID)
}

func (s *LRUStore) Put(sessionID string, ctx Context) {
	if ctx.UpdatedAt.IsZero() {
		ctx.UpdatedAt = time.Now()
	}
	s.cache.Add(sessionID, ctx)
}

func (s *LRUStore) Evict(sessionID string) {
	s.cache.Remove(sessionID)
}
