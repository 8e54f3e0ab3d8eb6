package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/shekokarmahesh/contract-intelligence-parser/config"
	"github.com/shekokarmahesh/contract-intelligence-parser/model"
	"github.com/shekokarmahesh/contract-intelligence-parser/pipeline"
	"github.com/shekokarmahesh/contract-intelligence-parser/pkg/logger"
	"github.com/shekokarmahesh/contract-intelligence-parser/scoring"
)

// ErrQueueFull is returned by Enqueue when the processing queue is at
// capacity. Callers should surface it as a retryable condition.
var ErrQueueFull = errors.New("processing queue is full")

// Progress milestones reported while a contract moves through the pipeline.
const (
	progressStarted   = 10
	progressExtracted = 30
	progressParsed    = 60
	progressScored    = 80
)

// FileSource fetches the stored PDF bytes for processing. MinioService
// implements it; tests substitute their own.
type FileSource interface {
	GetFile(ctx context.Context, objectName string) (io.ReadCloser, int64, error)
}

// Processor runs contract analysis on a bounded worker pool.
type Processor struct {
	store      ContractStore
	files      FileSource
	weights    scoring.Weights
	jobs       chan job
	workers    int
	retryCount int
	retryDelay time.Duration
	wg         sync.WaitGroup
}

type job struct {
	contractID string
	objectName string
}

// NewProcessor builds a processor over the given store and file source.
func NewProcessor(store ContractStore, files FileSource, cfg *config.ProcessingConfig) *Processor {
	return &Processor{
		store:      store,
		files:      files,
		weights:    scoring.DefaultWeights(),
		jobs:       make(chan job, cfg.QueueSize),
		workers:    cfg.Workers,
		retryCount: cfg.RetryCount,
		retryDelay: cfg.RetryDelay(),
	}
}

// Start launches the worker goroutines. They exit when ctx is cancelled
// and the queue has drained, or immediately on cancel if idle.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.jobs:
					if !ok {
						return
					}
					p.process(ctx, j)
				}
			}
		}()
	}
}

// Enqueue schedules a contract for processing without blocking.
func (p *Processor) Enqueue(contractID, objectName string) error {
	select {
	case p.jobs <- job{contractID: contractID, objectName: objectName}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Processor) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

func (p *Processor) process(ctx context.Context, j job) {
	ctx = context.WithValue(ctx, logger.ContractIDKey, j.contractID)

	var lastErr error
	for attempt := 0; attempt <= p.retryCount; attempt++ {
		if attempt > 0 {
			logger.Warn(ctx, "retrying contract processing",
				"attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.retryDelay):
			}
		}

		if lastErr = p.processOnce(ctx, j); lastErr == nil {
			return
		}
		if errors.Is(lastErr, ErrNoUsableText) {
			// A scanned PDF will not grow a text layer on retry.
			break
		}
	}

	logger.Error(ctx, "contract processing failed", "error", lastErr)
	if err := p.store.UpdateStatus(ctx, j.contractID, model.StatusFailed, lastErr.Error()); err != nil {
		logger.Error(ctx, "failed to record failure", "error", err)
	}
}

func (p *Processor) processOnce(ctx context.Context, j job) error {
	if err := p.store.UpdateStatus(ctx, j.contractID, model.StatusProcessing, ""); err != nil {
		return err
	}
	if err := p.store.UpdateProgress(ctx, j.contractID, progressStarted); err != nil {
		return err
	}

	file, _, err := p.files.GetFile(ctx, j.objectName)
	if err != nil {
		return err
	}
	pages, err := ExtractText(file)
	file.Close()
	if err != nil {
		return err
	}
	p.reportProgress(ctx, j.contractID, progressExtracted)

	pipe, err := pipeline.New(p.weights, pipeline.ReporterFunc(func(state string) {
		switch state {
		case pipeline.StateAggregating:
			p.reportProgress(ctx, j.contractID, progressParsed)
		case pipeline.StateGapAnalysis:
			p.reportProgress(ctx, j.contractID, progressScored)
		}
	}))
	if err != nil {
		return err
	}

	result := pipe.Run(pages)
	logger.Info(ctx, "contract analyzed",
		"score", result.Score,
		"pages", result.Record.Metadata.TotalPages,
		"gaps", len(result.Gaps),
	)

	return p.store.SetAnalysis(ctx, j.contractID, &result)
}

// reportProgress is best effort: a progress write failing must not fail
// the job.
func (p *Processor) reportProgress(ctx context.Context, contractID string, progress int) {
	if err := p.store.UpdateProgress(ctx, contractID, progress); err != nil {
		logger.Warn(ctx, "failed to update progress", "progress", progress, "error", err)
	}
}
