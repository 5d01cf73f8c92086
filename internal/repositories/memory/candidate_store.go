// Package memory is the fallback candidate store: a fixed, process-lifetime
// dataset served when Postgres is unreachable, and a lightweight repository
// for tests.
package memory

import (
	"context"
	"sync"

	"github.com/zhiren/talenthub/internal/models"
	"github.com/zhiren/talenthub/internal/utils"
)

type CandidateStore struct {
	mu    sync.RWMutex
	cands []models.Candidate
}

// NewCandidateStore returns a store holding the given candidates, or the
// built-in seed roster when none are supplied.
func NewCandidateStore(cands ...models.Candidate) *CandidateStore {
	if len(cands) == 0 {
		cands = SeedCandidates()
	}
	return &CandidateStore{cands: cands}
}

func (s *CandidateStore) List(_ context.Context) ([]models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Candidate, len(s.cands))
	copy(out, s.cands)
	return out, nil
}

func (s *CandidateStore) FindByIDs(_ context.Context, ids []string) ([]models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	var out []models.Candidate
	for _, c := range s.cands {
		if _, ok := want[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *CandidateStore) FindByEmail(_ context.Context, email string) (*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.cands {
		if s.cands[i].Email == email {
			c := s.cands[i]
			return &c, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (s *CandidateStore) Create(_ context.Context, c *models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cands = append(s.cands, *c)
	return nil
}

func (s *CandidateStore) Save(_ context.Context, c *models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cands {
		if s.cands[i].ID == c.ID {
			s.cands[i] = *c
			return nil
		}
	}
	return utils.ErrNotFound
}

func (s *CandidateStore) SaveAll(_ context.Context, cands []models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range cands {
		for i := range s.cands {
			if s.cands[i].ID == c.ID {
				s.cands[i] = c
				break
			}
		}
	}
	return nil
}

func (s *CandidateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cands)
}
