package repository

import (
	"sort"
	"sync"

	"user_registry/internal/models"
)

// UserStore keeps all records in memory behind a single mutex so the id
// index and the login-id index can never drift apart. Callers always get
// value copies, never pointers into the maps.
type UserStore struct {
	mu        sync.Mutex
	seq       int64
	byID      map[int64]*models.User
	byLoginID map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:      make(map[int64]*models.User),
		byLoginID: make(map[string]*models.User),
	}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserStore)(nil)

// NextID returns a fresh identifier. Values are strictly increasing and never
// reused, even after records are deleted.
func (s *UserStore) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Insert adds the record to both indexes as one atomic step. It fails with
// ErrLoginIDTaken if the login id is already present, so concurrent
// registrations for the same login id cannot both succeed.
func (s *UserStore) Insert(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byLoginID[u.LoginID]; exists {
		return ErrLoginIDTaken
	}
	rec := u
	s.byID[rec.ID] = &rec
	s.byLoginID[rec.LoginID] = &rec
	return nil
}

func (s *UserStore) GetByID(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return models.User{}, false
	}
	return *rec, true
}

func (s *UserStore) GetByLoginID(loginID string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byLoginID[loginID]
	if !ok {
		return models.User{}, false
	}
	return *rec, true
}

// Update applies mutate to the record under the lock, so readers never
// observe a half-applied change. The mutator must not touch ID or LoginID.
func (s *UserStore) Update(id int64, mutate func(*models.User)) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return models.User{}, false
	}
	mutate(rec)
	return *rec, true
}

// RemoveByID evicts the record from both indexes together and returns the
// removed record.
func (s *UserStore) RemoveByID(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return models.User{}, false
	}
	delete(s.byID, id)
	delete(s.byLoginID, rec.LoginID)
	return *rec, true
}

// List returns a snapshot of every record, ordered by ascending id. Callers
// must not rely on the ordering.
func (s *UserStore) List() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Clear empties both indexes and returns how many records were present.
// The sequence counter is deliberately left alone: ids are never reused.
func (s *UserStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.byID)
	s.byID = make(map[int64]*models.User)
	s.byLoginID = make(map[string]*models.User)
	return n
}

func (s *UserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
