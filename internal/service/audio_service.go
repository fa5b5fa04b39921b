package service

import (
	"context"
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// AudioService turns a post's content into playable audio: synthesize with
// the AI provider, park the file in R2, hand the URL back to the frontend.
type AudioService interface {
	ReadAloud(ctx context.Context, postID string) (string, error)
}

type audioService struct {
	sync SyncService
	ai   BlackboxService
	r2   *R2Service
}

func NewAudioService(sync SyncService, ai BlackboxService, r2 *R2Service) AudioService {
	return &audioService{sync: sync, ai: ai, r2: r2}
}

func (s *audioService) ReadAloud(ctx context.Context, postID string) (string, error) {
	post, err := s.sync.Post(postID)
	if err != nil {
		return "", err
	}

	audio, err := s.ai.SynthesizeSpeech(ctx, post.Content)
	if err != nil {
		slog.Info("speech synthesis failed", "id", postID, "error", err)
		return "", err
	}

	suffix, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate audio key: %w", err)
	}
	key := fmt.Sprintf("audio/%s-%s.mp3", postID, suffix)

	url, err := s.r2.UploadAudio(ctx, key, audio, "audio/mpeg")
	if err != nil {
		return "", err
	}
	return url, nil
}
