package model

import (
	"time"

	"github.com/shekokarmahesh/contract-intelligence-parser/pipeline"
)

// Contract is one uploaded contract document and its processing state.
type Contract struct {
	ID         string           `json:"contract_id" bson:"contract_id"`
	Filename   string           `json:"filename" bson:"filename"`
	FileSize   int64            `json:"file_size" bson:"file_size"`
	ObjectName string           `json:"-" bson:"object_name"`
	Status     string           `json:"status" bson:"status"` // pending, processing, completed, failed
	Progress   int              `json:"progress" bson:"progress"`
	Error      string           `json:"error,omitempty" bson:"error,omitempty"`
	Analysis   *pipeline.Result `json:"analysis,omitempty" bson:"analysis,omitempty"`
	CreatedAt  time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" bson:"updated_at"`
}

// ContractStatus constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ValidStatus reports whether s is a known contract status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}
