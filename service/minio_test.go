package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shekokarmahesh/contract-intelligence-parser/config"
)

func TestNewMinioService(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "test",
		UseSSL:    false,
	}

	// The client is created lazily; no connection happens until the first
	// operation, so construction should succeed with any endpoint.
	svc, err := NewMinioService(cfg)
	if err != nil {
		t.Fatalf("Failed to create MinIO service: %v", err)
	}
	if svc == nil {
		t.Fatal("Expected non-nil service")
	}
	if svc.bucket != "test" {
		t.Errorf("Expected bucket 'test', got %q", svc.bucket)
	}
}

func TestNewMinioServiceInvalidEndpoint(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint:  "not a valid endpoint",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "test",
	}

	if _, err := NewMinioService(cfg); err == nil {
		t.Error("Expected error for malformed endpoint")
	}
}

// Test context cancellation
func TestMinioServiceWithContext(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "test",
		UseSSL:    false,
	}

	svc, err := NewMinioService(cfg)
	if err != nil {
		t.Skip("Could not create MinIO service")
	}

	// Test with cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// These operations should fail fast with cancelled context
	err = svc.UploadFile(ctx, "test", strings.NewReader("test"), 4, "text/plain")
	if err == nil {
		t.Log("Upload with cancelled context - error handling depends on client implementation")
	}
}
