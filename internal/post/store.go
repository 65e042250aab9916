package post

import (
	"slices"
	"strings"
	"sync"
	"time"

	"scribe/internal/logging"
	"scribe/internal/store"
)

var logger = logging.For("post")

// Store owns the post collection and the editing pointer. It is the only
// thing that mutates either. Each successful mutation is written through to
// the slot before the call returns.
//
// Store is safe for concurrent use, but the editing pointer is shared: it
// models one form session, not one per caller.
type Store struct {
	mu      sync.Mutex
	slot    store.Slot
	posts   []Post
	editing string // "" when idle
	saveErr error

	now   func() time.Time
	newID IDFunc
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides NewID.
func WithIDFunc(f IDFunc) Option {
	return func(s *Store) { s.newID = f }
}

// Open returns a Store populated from slot. A missing, unreadable or corrupt
// slot yields an empty collection; the failure is logged, not returned.
// A nil slot gives a Store that keeps posts in memory only.
func Open(slot store.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.posts = s.load()
	if s.repairIDs() {
		s.persist()
	}
	return s
}

// repairIDs gives a fresh id to every loaded post whose id is empty or
// already taken by an earlier post, so ids are unique and "" never names a
// post. Reports whether anything changed.
func (s *Store) repairIDs() bool {
	seen := make(map[string]bool, len(s.posts))
	changed := false
	for i := range s.posts {
		id := s.posts[i].ID
		if id != "" && !seen[id] {
			seen[id] = true
			continue
		}
		fresh := s.newID()
		for seen[fresh] {
			fresh = s.newID()
		}
		logger.Warn("re-identifying stored post", "old_id", id, "new_id", fresh, "index", i)
		s.posts[i].ID = fresh
		seen[fresh] = true
		changed = true
	}
	return changed
}

func (s *Store) load() []Post {
	if s.slot == nil {
		return nil
	}
	data, ok, err := s.slot.Load()
	if err != nil {
		logger.Warn("reading post slot, starting empty", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	posts, err := Decode(data)
	if err != nil {
		logger.Warn("corrupt post slot, starting empty", "err", err, "bytes", len(data))
		return nil
	}
	logger.Debug("loaded posts", "count", len(posts))
	return posts
}

// persist writes the full collection. Caller holds s.mu.
func (s *Store) persist() {
	if s.slot == nil {
		return
	}
	data, err := Encode(s.posts)
	if err == nil {
		err = s.slot.Save(data)
	}
	s.saveErr = err
	if err != nil {
		logger.Error("saving posts", "count", len(s.posts), "err", err)
	}
}

// ListAll returns a copy of the collection in insertion order.
func (s *Store) ListAll() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.posts)
}

// Len returns the number of posts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

// Get returns the post with id.
func (s *Store) Get(id string) (Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.posts[i], true
	}
	return Post{}, false
}

// BeginEdit points the next Submit at id and returns the post so a form can
// be pre-filled. An unknown id returns ErrNotFound and leaves the pointer
// as it was.
func (s *Store) BeginEdit(id string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return Post{}, ErrNotFound
	}
	s.editing = id
	return s.posts[i], nil
}

// Editing returns the id the next Submit will update, if any.
func (s *Store) Editing() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing, s.editing != ""
}

// CancelEdit clears the editing pointer.
func (s *Store) CancelEdit() {
	s.mu.Lock()
	s.editing = ""
	s.mu.Unlock()
}

// Submit validates title and content (both trimmed, both required) and then
// either updates the post under the editing pointer or appends a new one.
// On validation failure it returns a *ValidationError and changes nothing.
// A pointer to a post that no longer exists falls back to creating.
func (s *Store) Submit(title, content string) (Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if verr := validate(title, content); verr != nil {
		return Post{}, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var p Post
	if i := s.index(s.editing); s.editing != "" && i >= 0 {
		s.posts[i].Title = title
		s.posts[i].Content = content
		p = s.posts[i]
		logger.Info("post updated", "id", p.ID)
	} else {
		if s.editing != "" {
			logger.Warn("editing target gone, creating instead", "id", s.editing)
		}
		p = Post{
			ID:        s.newID(),
			Title:     title,
			Content:   content,
			Timestamp: s.now().UnixMilli(),
		}
		s.posts = append(s.posts, p)
		logger.Info("post created", "id", p.ID)
	}
	s.editing = ""
	s.persist()
	return p, nil
}

// Delete removes the post with id and reports whether one was removed. The
// collection is persisted either way. Deleting the post under the editing
// pointer clears the pointer.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	if i := s.index(id); i >= 0 {
		s.posts = slices.Delete(s.posts, i, i+1)
		removed = true
		logger.Info("post deleted", "id", id)
	}
	if removed && s.editing == id {
		s.editing = ""
	}
	s.persist()
	return removed
}

// PersistErr returns the error from the most recent slot write, or nil if
// it succeeded (or nothing has been written yet).
func (s *Store) PersistErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}

// index returns the position of id, or -1. Caller holds s.mu.
func (s *Store) index(id string) int {
	return slices.IndexFunc(s.posts, func(p Post) bool { return p.ID == id })
}
