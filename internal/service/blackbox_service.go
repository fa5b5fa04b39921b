package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	config "github.com/maheshrc27/reviewdeck/configs"
	"github.com/maheshrc27/reviewdeck/internal/transfer"
)

const (
	blackboxChatModel   = "blackboxai-pro"
	blackboxSpeechModel = "blackbox-tts"
	blackboxSpeechVoice = "alloy"
)

// BlackboxService talks to the Blackbox AI API directly. It is the degraded
// path used when the content backend is unreachable, so there is no retry
// here at all; every call may be billed.
type BlackboxService interface {
	Rephrase(ctx context.Context, text string, tone int) (string, error)
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}

type blackboxService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewBlackboxService(cfg config.Config) BlackboxService {
	return &blackboxService{
		baseURL: cfg.BlackboxBaseURL,
		apiKey:  cfg.BlackboxAPIKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (s *blackboxService) Rephrase(ctx context.Context, text string, tone int) (string, error) {
	reqBody := transfer.ChatCompletionRequest{
		Model: blackboxChatModel,
		Messages: []transfer.ChatMessage{
			{Role: "system", Content: ToneInstruction(tone) + " Return only the rephrased content without any additional commentary."},
			{Role: "user", Content: text},
		},
	}

	respBody, err := s.post(ctx, "/chat/completions", reqBody)
	if err != nil {
		return "", err
	}

	var resp transfer.ChatCompletionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &ProviderError{Provider: "blackbox", Err: err}
	}
	if resp.Error != nil {
		return "", &ProviderError{Provider: "blackbox", Err: errors.New(resp.Error.Message)}
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &ProviderError{Provider: "blackbox", Err: errors.New("no choices returned")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *blackboxService) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	reqBody := transfer.SpeechRequest{
		Model: blackboxSpeechModel,
		Input: text,
		Voice: blackboxSpeechVoice,
	}

	audio, err := s.post(ctx, "/audio/speech", reqBody)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, &ProviderError{Provider: "blackbox", Err: errors.New("empty audio response")}
	}
	return audio, nil
}

func (s *blackboxService) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Info("blackbox request failed", "path", path, "error", err)
		return nil, &ProviderError{Provider: "blackbox", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: "blackbox", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		slog.Info("blackbox returned non-200", "path", path, "status", resp.StatusCode)
		return nil, &ProviderError{
			Provider: "blackbox",
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	return respBody, nil
}
