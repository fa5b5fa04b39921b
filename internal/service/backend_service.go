package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	config "github.com/maheshrc27/reviewdeck/configs"
	"github.com/maheshrc27/reviewdeck/internal/models"
	"github.com/maheshrc27/reviewdeck/internal/transfer"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBase     = 500 * time.Millisecond
)

// BackendService is the typed client for the content backend. Reads and
// idempotent writes retry with exponential backoff; Rephrase and
// ApproveAndPublish never retry because a duplicate call bills a generation
// or double-posts.
type BackendService interface {
	CheckHealth(ctx context.Context) bool
	FetchAll(ctx context.Context) ([]*models.Post, error)
	SetStatus(ctx context.Context, id, remoteStatus string) error
	SetText(ctx context.Context, id, text string) error
	Rephrase(ctx context.Context, id, instructions string) (string, error)
	ApproveAndPublish(ctx context.Context, id string) error
}

type backendService struct {
	baseURL       string
	httpClient    *http.Client
	retryAttempts int
	retryBase     time.Duration
}

func NewBackendService(cfg config.Config) BackendService {
	return &backendService{
		baseURL: cfg.BackendURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryAttempts: defaultRetryAttempts,
		retryBase:     defaultRetryBase,
	}
}

func (s *backendService) CheckHealth(ctx context.Context) bool {
	var resp transfer.HealthResponse
	if err := s.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		slog.Info("backend health probe failed", "error", err)
		return false
	}
	return resp.Message == "healthy"
}

func (s *backendService) FetchAll(ctx context.Context) ([]*models.Post, error) {
	var items []transfer.ContentItem
	if err := s.doWithRetry(ctx, http.MethodGet, "/content", nil, &items); err != nil {
		return nil, err
	}

	posts := make([]*models.Post, 0, len(items))
	for _, item := range items {
		post, recognized := models.PostFromRemote(item)
		if !recognized {
			slog.Warn("unrecognized content status, defaulting to posted",
				"id", item.ID, "status", item.Status)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *backendService) SetStatus(ctx context.Context, id, remoteStatus string) error {
	body := transfer.UpdateStatusRequest{Status: remoteStatus}
	return s.doWithRetry(ctx, http.MethodPut, "/content/"+id+"/status", body, nil)
}

func (s *backendService) SetText(ctx context.Context, id, text string) error {
	body := transfer.UpdateContentRequest{Content: text}
	return s.doWithRetry(ctx, http.MethodPut, "/content/"+id+"/update", body, nil)
}

func (s *backendService) Rephrase(ctx context.Context, id, instructions string) (string, error) {
	body := transfer.RephraseRequest{Instructions: instructions}

	var resp transfer.RephraseResponse
	if err := s.do(ctx, http.MethodPost, "/content/"+id+"/rephrase", body, &resp); err != nil {
		return "", err
	}
	if resp.Content == "" {
		return "", &EmptyResultError{Op: "rephrase"}
	}
	return resp.Content, nil
}

func (s *backendService) ApproveAndPublish(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodPost, "/content/"+id+"/approve", nil, nil)
}

// doWithRetry runs the request through a small exponential backoff budget.
// Only idempotent operations go through here.
func (s *backendService) doWithRetry(ctx context.Context, method, path string, body any, result any) error {
	var lastErr error

	for attempt := 0; attempt < s.retryAttempts; attempt++ {
		if attempt > 0 {
			wait := s.retryBase << (attempt - 1)
			select {
			case <-ctx.Done():
				return &TransportError{Op: method + " " + path, Err: ctx.Err()}
			case <-time.After(wait):
			}
		}

		lastErr = s.do(ctx, method, path, body, result)
		if lastErr == nil {
			return nil
		}
	}

	return lastErr
}

func (s *backendService) do(ctx context.Context, method, path string, body any, result any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Info("backend request failed", "op", op, "error", err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Info("backend returned non-2xx", "op", op, "status", resp.StatusCode)
		return &TransportError{Op: op, Status: resp.StatusCode}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%s: unmarshal response: %w", op, err)
		}
	}

	return nil
}
