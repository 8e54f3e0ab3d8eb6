package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shekokarmahesh/contract-intelligence-parser/model"
	"github.com/shekokarmahesh/contract-intelligence-parser/pkg/logger"
	"github.com/shekokarmahesh/contract-intelligence-parser/service"
)

// FileStore is the object storage surface the handler needs. MinioService
// implements it.
type FileStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFile(ctx context.Context, objectName string) (io.ReadCloser, int64, error)
	DeleteFile(ctx context.Context, objectName string) error
}

// Enqueuer schedules a stored contract for analysis.
type Enqueuer interface {
	Enqueue(contractID, objectName string) error
}

type ContractHandler struct {
	store       service.ContractStore
	files       FileStore
	processor   Enqueuer
	maxFileSize int64
}

func NewContractHandler(store service.ContractStore, files FileStore, processor Enqueuer, maxFileSize int64) *ContractHandler {
	return &ContractHandler{
		store:       store,
		files:       files,
		processor:   processor,
		maxFileSize: maxFileSize,
	}
}

// Upload accepts a PDF, stores it, and queues it for analysis. The response
// is the contract ID to poll; parsing happens asynchronously.
func (h *ContractHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}
	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File exceeds the %d MB limit", h.maxFileSize>>20),
		})
		return
	}

	// Check the magic bytes, not just the extension.
	magic := make([]byte, 4)
	if _, err := io.ReadFull(file, magic); err != nil || !service.IsPDF(magic) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is not a valid PDF"})
		return
	}

	contractID := uuid.New().String()
	objectName := fmt.Sprintf("contracts/%s.pdf", contractID)
	c.Set("contract_id", contractID)

	body := io.MultiReader(bytes.NewReader(magic), file)
	if err := h.files.UploadFile(c.Request.Context(), objectName, body, header.Size, "application/pdf"); err != nil {
		logger.Error(c.Request.Context(), "failed to store upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	contract := &model.Contract{
		ID:         contractID,
		Filename:   header.Filename,
		FileSize:   header.Size,
		ObjectName: objectName,
		Status:     model.StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := h.store.Save(c.Request.Context(), contract); err != nil {
		logger.Error(c.Request.Context(), "failed to save contract", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contract"})
		return
	}

	if err := h.processor.Enqueue(contractID, objectName); err != nil {
		if errors.Is(err, service.ErrQueueFull) {
			if err := h.store.UpdateStatus(c.Request.Context(), contractID, model.StatusFailed, "processing queue full"); err != nil {
				logger.Error(c.Request.Context(), "failed to mark contract failed", "error", err)
			}
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Processing queue is full, try again later"})
			return
		}
		logger.Error(c.Request.Context(), "failed to enqueue contract", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue contract"})
		return
	}

	logger.Info(c.Request.Context(), "contract uploaded",
		"contract_id", contractID,
		"filename", header.Filename,
		"size", header.Size,
	)

	c.JSON(http.StatusAccepted, gin.H{
		"contract_id": contractID,
		"filename":    header.Filename,
		"status":      model.StatusPending,
	})
}

// List returns contracts with pagination, optional status filter and sort.
func (h *ContractHandler) List(c *gin.Context) {
	opts := service.ListOptions{
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by"),
		Ascending: c.Query("order") == "asc",
	}
	opts.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	opts.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))

	if opts.Status != "" && !model.ValidStatus(opts.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
		return
	}

	contracts, total, err := h.store.List(c.Request.Context(), opts)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to list contracts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contracts"})
		return
	}

	opts.Normalize()
	result := make([]gin.H, len(contracts))
	for i, contract := range contracts {
		item := gin.H{
			"contract_id": contract.ID,
			"filename":    contract.Filename,
			"file_size":   contract.FileSize,
			"status":      contract.Status,
			"progress":    contract.Progress,
			"created_at":  contract.CreatedAt.Format(time.RFC3339),
			"updated_at":  contract.UpdatedAt.Format(time.RFC3339),
		}
		if contract.Analysis != nil {
			item["score"] = contract.Analysis.Score
		}
		result[i] = item
	}

	c.JSON(http.StatusOK, gin.H{
		"contracts": result,
		"total":     total,
		"page":      opts.Page,
		"page_size": opts.PageSize,
	})
}

// Get returns the analysis of a completed contract.
func (h *ContractHandler) Get(c *gin.Context) {
	contract, ok := h.lookup(c)
	if !ok {
		return
	}

	switch contract.Status {
	case model.StatusCompleted:
		c.JSON(http.StatusOK, contract)
	case model.StatusFailed:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"contract_id": contract.ID,
			"status":      contract.Status,
			"error":       contract.Error,
		})
	default:
		// Still pending or processing: point the caller at the status
		// endpoint instead of returning partial data.
		c.JSON(http.StatusConflict, gin.H{
			"contract_id": contract.ID,
			"status":      contract.Status,
			"progress":    contract.Progress,
			"message":     "Analysis not ready yet",
		})
	}
}

// GetStatus returns processing state and progress for polling.
func (h *ContractHandler) GetStatus(c *gin.Context) {
	contract, ok := h.lookup(c)
	if !ok {
		return
	}

	resp := gin.H{
		"contract_id": contract.ID,
		"status":      contract.Status,
		"progress":    contract.Progress,
	}
	if contract.Error != "" {
		resp["error"] = contract.Error
	}
	c.JSON(http.StatusOK, resp)
}

// Download streams the original PDF back to the client.
func (h *ContractHandler) Download(c *gin.Context) {
	contract, ok := h.lookup(c)
	if !ok {
		return
	}

	file, size, err := h.files.GetFile(c.Request.Context(), contract.ObjectName)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to fetch stored file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file"})
		return
	}
	defer file.Close()

	c.DataFromReader(http.StatusOK, size, "application/pdf", file, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", contract.Filename),
	})
}

// Delete removes a contract and its stored file.
func (h *ContractHandler) Delete(c *gin.Context) {
	contract, ok := h.lookup(c)
	if !ok {
		return
	}

	if err := h.files.DeleteFile(c.Request.Context(), contract.ObjectName); err != nil {
		// The record is still removed; an orphaned object is preferable to
		// a contract the client cannot delete.
		logger.Warn(c.Request.Context(), "failed to delete stored file",
			"object", contract.ObjectName, "error", err)
	}

	if err := h.store.Delete(c.Request.Context(), contract.ID); err != nil {
		logger.Error(c.Request.Context(), "failed to delete contract", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contract"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contract deleted"})
}

func (h *ContractHandler) lookup(c *gin.Context) (*model.Contract, bool) {
	id := c.Param("id")
	c.Set("contract_id", id)

	contract, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return nil, false
	}
	if err != nil {
		logger.Error(c.Request.Context(), "failed to load contract", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contract"})
		return nil, false
	}
	return contract, true
}
