package service

import (
	"sync"
	"time"

	"github.com/maheshrc27/reviewdeck/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Notifier collects short-lived user-facing messages. The frontend drains
// them on poll; nothing here persists.
type Notifier struct {
	mu    sync.Mutex
	items []models.Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(level, message string) {
	id, err := gonanoid.New()
	if err != nil {
		id = time.Now().Format("20060102150405.000000000")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, models.Notification{
		ID:        id,
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}

func (n *Notifier) Info(message string)  { n.Notify(models.NotificationInfo, message) }
func (n *Notifier) Error(message string) { n.Notify(models.NotificationError, message) }

// Drain returns all pending notifications and clears the feed.
func (n *Notifier) Drain() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	items := n.items
	n.items = nil
	return items
}
