package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/maheshrc27/reviewdeck/internal/models"
)

// SyncService owns the canonical in-memory post table and the derived
// push-group view. Every mutation goes through it so the flat list and the
// group entries can never disagree: both views share the same *Post and are
// updated under one lock.
//
// Mutating operations only apply to pending posts with no operation already
// in flight for the same id. Gateway calls happen with the lock released;
// completions merge back by id lookup, so a response that outlives the post
// it targeted is simply discarded.
type SyncService interface {
	Ingest(posts []*models.Post)
	Refresh(ctx context.Context) error
	Groups() []*models.PushGroup
	SelectGroup(originKey string, mobile bool) (*models.PushGroup, bool, error)
	Posts() []*models.Post
	Post(id string) (*models.Post, error)
	EditText(ctx context.Context, id, text string) error
	SetStatus(ctx context.Context, id, localStatus string) error
	Rephrase(ctx context.Context, id string, tone int) (string, error)
	Approve(ctx context.Context, id string) error
	Disapprove(ctx context.Context, id string) error
	SetHealthy(healthy bool)
	Healthy() bool
}

type syncService struct {
	backend BackendService
	ai      BlackboxService
	n       *Notifier

	mu         sync.Mutex
	table      map[string]*models.Post
	all        []*models.Post
	groups     []*models.PushGroup
	groupIndex map[string]*models.PushGroup
	selected   string
	busy       map[string]bool
	healthy    bool
}

func NewSyncService(backend BackendService, ai BlackboxService, notifier *Notifier) SyncService {
	return &syncService{
		backend:    backend,
		ai:         ai,
		n:          notifier,
		table:      make(map[string]*models.Post),
		groupIndex: make(map[string]*models.PushGroup),
		busy:       make(map[string]bool),
	}
}

// Ingest replaces the whole table with the given posts. Origin keys are
// recomputed, groups are rebuilt in ingest order, and the current group
// selection survives when its key still exists.
func (s *syncService) Ingest(posts []*models.Post) {
	table := make(map[string]*models.Post, len(posts))
	all := make([]*models.Post, 0, len(posts))
	groups := make([]*models.PushGroup, 0)
	index := make(map[string]*models.PushGroup)

	for _, p := range posts {
		if _, seen := table[p.ID]; seen {
			slog.Warn("duplicate post id in ingest, keeping first", "id", p.ID)
			continue
		}
		p.OriginKey = models.OriginKey(p.Repository, p.Branch)
		table[p.ID] = p
		all = append(all, p)

		g, ok := index[p.OriginKey]
		if !ok {
			g = &models.PushGroup{ID: p.OriginKey}
			index[p.OriginKey] = g
			groups = append(groups, g)
		}
		g.Posts = append(g.Posts, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.all = all
	s.groups = groups
	s.groupIndex = index
	if s.selected != "" {
		if _, ok := index[s.selected]; !ok {
			s.selected = ""
		}
	}
}

func (s *syncService) Refresh(ctx context.Context) error {
	posts, err := s.backend.FetchAll(ctx)
	if err != nil {
		s.n.Error("Could not refresh content from the backend.")
		return err
	}
	s.Ingest(posts)
	return nil
}

func (s *syncService) Groups() []*models.PushGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.PushGroup, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, cloneGroup(g))
	}
	return out
}

// SelectGroup makes originKey the active group. The second return value is a
// collapse-navigation hint for mobile viewports; it is a UI signal only.
func (s *syncService) SelectGroup(originKey string, mobile bool) (*models.PushGroup, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groupIndex[originKey]
	if !ok {
		return nil, false, ErrGroupNotFound
	}
	s.selected = originKey
	return cloneGroup(g), mobile, nil
}

// Posts returns the currently displayed list: the selected group's posts, or
// the full flat list when no group is selected.
func (s *syncService) Posts() []*models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.all
	if s.selected != "" {
		src = s.groupIndex[s.selected].Posts
	}

	out := make([]*models.Post, 0, len(src))
	for _, p := range src {
		out = append(out, clonePost(p))
	}
	return out
}

func (s *syncService) Post(id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.table[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	return clonePost(p), nil
}

// EditText applies the edit locally first and then pushes it to the backend.
// A failed push is not rolled back: last write wins, and the user gets a
// notification instead of losing the edit.
func (s *syncService) EditText(ctx context.Context, id, text string) error {
	s.mu.Lock()
	p, err := s.pending(id)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	p.Content = text
	s.mu.Unlock()

	if err := s.backend.SetText(ctx, id, text); err != nil {
		slog.Info("content edit not persisted", "id", id, "error", err)
		s.n.Error("The edit could not be saved to the backend. It is kept locally.")
	}
	return nil
}

// SetStatus pushes a status change and only commits it locally after the
// backend confirmed. Status changes gate publishing, so unlike EditText this
// path is failure-guarded.
func (s *syncService) SetStatus(ctx context.Context, id, localStatus string) error {
	s.mu.Lock()
	if _, err := s.pending(id); err != nil {
		s.mu.Unlock()
		return err
	}
	s.busy[id] = true
	s.mu.Unlock()
	defer s.clearBusy(id)

	if err := s.backend.SetStatus(ctx, id, models.StatusToRemote(localStatus)); err != nil {
		s.n.Error("Could not update the content status.")
		return err
	}

	s.mu.Lock()
	if p, ok := s.table[id]; ok {
		p.Status = localStatus
	}
	s.mu.Unlock()
	return nil
}

// Rephrase regenerates the post's content in the requested tone. While the
// call is in flight the post is busy and rejects every other mutation. When
// the backend was unhealthy at startup the call goes straight to the AI
// provider and the new text stays local.
func (s *syncService) Rephrase(ctx context.Context, id string, tone int) (string, error) {
	s.mu.Lock()
	p, err := s.pending(id)
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	original := p.Content
	healthy := s.healthy
	s.busy[id] = true
	s.mu.Unlock()
	defer s.clearBusy(id)

	var newText string
	if healthy {
		newText, err = s.backend.Rephrase(ctx, id, ToneInstruction(tone))
	} else {
		newText, err = s.ai.Rephrase(ctx, original, tone)
	}
	if err != nil {
		var empty *EmptyResultError
		if errors.As(err, &empty) {
			s.n.Error("The rephrase came back empty. The original content was kept.")
		} else {
			s.n.Error("Rephrasing failed. The original content was kept.")
		}
		return "", err
	}

	s.mu.Lock()
	if cur, ok := s.table[id]; ok && cur.Status == models.StatusPending {
		cur.Content = newText
	} else {
		slog.Info("discarding stale rephrase result", "id", id)
	}
	s.mu.Unlock()
	return newText, nil
}

// Approve publishes the post. The backend call is never retried here; a
// duplicate would double-post.
func (s *syncService) Approve(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, err := s.pending(id); err != nil {
		s.mu.Unlock()
		return err
	}
	s.busy[id] = true
	s.mu.Unlock()
	defer s.clearBusy(id)

	if err := s.backend.ApproveAndPublish(ctx, id); err != nil {
		s.n.Error("Publishing failed. The content is still pending.")
		return err
	}

	s.mu.Lock()
	if p, ok := s.table[id]; ok {
		p.Status = models.StatusPosted
	}
	s.mu.Unlock()

	s.n.Info("Approved & Posted!")
	return nil
}

func (s *syncService) Disapprove(ctx context.Context, id string) error {
	if err := s.SetStatus(ctx, id, models.StatusDisapproved); err != nil {
		return err
	}
	s.n.Info("Content rejected.")
	return nil
}

func (s *syncService) SetHealthy(healthy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthy = healthy
}

func (s *syncService) Healthy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.healthy
}

// pending is the single authorization rule of the core: only a known,
// not-busy, still-pending post accepts a mutation. Callers must hold the lock.
func (s *syncService) pending(id string) (*models.Post, error) {
	p, ok := s.table[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	if s.busy[id] {
		return nil, ErrPostBusy
	}
	if p.Status != models.StatusPending {
		return nil, ErrNotPending
	}
	return p, nil
}

func (s *syncService) clearBusy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, id)
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.Media = append([]models.Media(nil), p.Media...)
	return &c
}

func cloneGroup(g *models.PushGroup) *models.PushGroup {
	c := &models.PushGroup{ID: g.ID, Posts: make([]*models.Post, 0, len(g.Posts))}
	for _, p := range g.Posts {
		c.Posts = append(c.Posts, clonePost(p))
	}
	return c
}
