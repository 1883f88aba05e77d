package ledger

import (
	"sync"
	"time"
)

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type (
	NoticeKind string

	// Notice is a transient, display-only status message. It carries an
	// explicit expiry timestamp instead of relying on a timer, so the
	// presentation layer simply checks it on each render.
	Notice struct {
		Kind      NoticeKind
		Message   string
		ExpiresAt time.Time
	}
)

// Notices holds the single current notice. Posting replaces the previous
// one; reading an expired notice clears it.
type Notices struct {
	mu  sync.Mutex
	ttl time.Duration
	cur Notice
	set bool
	now func() time.Time
}

func NewNotices(ttl time.Duration) *Notices {
	return &Notices{ttl: ttl, now: time.Now}
}

func (n *Notices) Success(message string) {
	n.post(NoticeSuccess, message)
}

func (n *Notices) Error(message string) {
	n.post(NoticeError, message)
}

func (n *Notices) post(kind NoticeKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cur = Notice{Kind: kind, Message: message, ExpiresAt: n.now().Add(n.ttl)}
	n.set = true
}

// Current returns the active notice, or false when none is set or the
// latest one has expired.
func (n *Notices) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.set {
		return Notice{}, false
	}
	if n.now().After(n.cur.ExpiresAt) {
		n.set = false
		return Notice{}, false
	}
	return n.cur, true
}

// TTL exposes the configured lifetime, e.g. for client-side auto-dismiss.
func (n *Notices) TTL() time.Duration {
	return n.ttl
}
