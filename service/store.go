package service

import (
	"context"
	"errors"

	"github.com/shekokarmahesh/contract-intelligence-parser/model"
	"github.com/shekokarmahesh/contract-intelligence-parser/pipeline"
)

// ErrNotFound is returned when a contract does not exist in the store.
var ErrNotFound = errors.New("contract not found")

// ListOptions controls pagination, filtering and ordering of List.
type ListOptions struct {
	Status    string // filter by status, empty for all
	Page      int    // 1-based
	PageSize  int
	SortBy    string // created_at, filename, status, score
	Ascending bool
}

// Normalize clamps pagination to sane values and defaults the sort field.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = 10
	}
	if o.PageSize > 100 {
		o.PageSize = 100
	}
	switch o.SortBy {
	case "created_at", "filename", "status", "score":
	default:
		o.SortBy = "created_at"
	}
}

// ContractStore persists contract documents and their analysis results.
type ContractStore interface {
	Save(ctx context.Context, contract *model.Contract) error
	Get(ctx context.Context, id string) (*model.Contract, error)
	List(ctx context.Context, opts ListOptions) ([]*model.Contract, int64, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status, errMsg string) error
	UpdateProgress(ctx context.Context, id string, progress int) error
	SetAnalysis(ctx context.Context, id string, result *pipeline.Result) error
	Close(ctx context.Context) error
}
