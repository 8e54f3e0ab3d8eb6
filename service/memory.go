package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shekokarmahesh/contract-intelligence-parser/model"
	"github.com/shekokarmahesh/contract-intelligence-parser/pipeline"
)

// MemoryStore is an in-memory ContractStore. It backs tests and local runs
// without a MongoDB instance; data does not survive a restart.
type MemoryStore struct {
	mu           sync.RWMutex
	contracts    map[string]*model.Contract
	maxContracts int // 0 = unlimited
}

// NewMemoryStore creates an in-memory store keeping at most maxContracts
// documents, oldest evicted first. Zero means unlimited.
func NewMemoryStore(maxContracts int) *MemoryStore {
	if maxContracts < 0 {
		maxContracts = 0
	}
	return &MemoryStore{
		contracts:    make(map[string]*model.Contract),
		maxContracts: maxContracts,
	}
}

func (s *MemoryStore) Save(_ context.Context, contract *model.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract.UpdatedAt = time.Now()
	s.contracts[contract.ID] = contract

	s.cleanupIfNeeded()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*model.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contracts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryStore) List(_ context.Context, opts ListOptions) ([]*model.Contract, int64, error) {
	opts.Normalize()

	s.mu.RLock()
	var filtered []*model.Contract
	for _, c := range s.contracts {
		if opts.Status != "" && c.Status != opts.Status {
			continue
		}
		cp := *c
		filtered = append(filtered, &cp)
	}
	s.mu.RUnlock()

	sortContracts(filtered, opts)

	total := int64(len(filtered))
	start := (opts.Page - 1) * opts.PageSize
	if start >= len(filtered) {
		return nil, total, nil
	}
	end := start + opts.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contracts[id]; !ok {
		return ErrNotFound
	}
	delete(s.contracts, id)
	return nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id, status, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contracts[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	c.Error = errMsg
	c.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) UpdateProgress(_ context.Context, id string, progress int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contracts[id]
	if !ok {
		return ErrNotFound
	}
	c.Progress = progress
	c.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) SetAnalysis(_ context.Context, id string, result *pipeline.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contracts[id]
	if !ok {
		return ErrNotFound
	}
	c.Analysis = result
	c.Status = model.StatusCompleted
	c.Progress = 100
	c.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

// Count returns the number of contracts in the store.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contracts)
}

func sortContracts(contracts []*model.Contract, opts ListOptions) {
	less := func(a, b *model.Contract) bool { return a.CreatedAt.Before(b.CreatedAt) }
	switch opts.SortBy {
	case "filename":
		less = func(a, b *model.Contract) bool { return a.Filename < b.Filename }
	case "status":
		less = func(a, b *model.Contract) bool { return a.Status < b.Status }
	case "score":
		less = func(a, b *model.Contract) bool { return contractScore(a) < contractScore(b) }
	}

	sort.SliceStable(contracts, func(i, j int) bool {
		if opts.Ascending {
			return less(contracts[i], contracts[j])
		}
		return less(contracts[j], contracts[i])
	})
}

func contractScore(c *model.Contract) int {
	if c.Analysis == nil {
		return -1
	}
	return c.Analysis.Score
}

// cleanupIfNeeded removes oldest contracts if store exceeds maxContracts.
// Must be called with lock held.
func (s *MemoryStore) cleanupIfNeeded() {
	if s.maxContracts <= 0 {
		return
	}
	if len(s.contracts) <= s.maxContracts {
		return
	}

	contracts := make([]*model.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].CreatedAt.Before(contracts[j].CreatedAt)
	})

	removeCount := len(contracts) - s.maxContracts
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old contract",
			"contract_id", contracts[i].ID,
			"created_at", contracts[i].CreatedAt,
		)
		delete(s.contracts, contracts[i].ID)
	}
}
