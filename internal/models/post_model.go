package models

import (
	"path"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maheshrc27/reviewdeck/internal/transfer"
)

type Author struct {
	Name      string `json:"name"`
	Title     string `json:"title,omitempty"`
	Handle    string `json:"handle,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Media struct {
	URL     string `json:"url"`
	Kind    string `json:"kind"` // image, video
	Caption string `json:"caption,omitempty"`
}

type Post struct {
	ID         string  `json:"id"`
	OriginKey  string  `json:"origin_key"`
	Platform   string  `json:"platform"`
	Author     Author  `json:"author"`
	Content    string  `json:"content"`
	Status     string  `json:"status"` // pending, approved, disapproved, posted
	Media      []Media `json:"media"`
	Repository string  `json:"repository,omitempty"`
	CommitSha  string  `json:"commit_sha,omitempty"`
	Branch     string  `json:"branch,omitempty"`
}

const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusDisapproved = "disapproved"
	StatusPosted      = "posted"
)

const (
	PlatformLinkedIn = "LinkedIn"
	PlatformX        = "X"
	PlatformEmail    = "Email"
	PlatformTikTok   = "TikTok"
)

const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
)

// DefaultAuthor is the placeholder identity used when the backend record
// carries no author.
var DefaultAuthor = Author{
	Name:      "Content Bot",
	Title:     "AI Content Publisher",
	AvatarURL: "https://api.dicebear.com/7.x/bottts/svg?seed=reviewdeck",
}

// OriginKey derives the push-group key from provenance metadata. Posts with
// no repository or branch still land in a deterministic bucket.
func OriginKey(repository, branch string) string {
	if repository == "" {
		repository = "unknown"
	}
	if branch == "" {
		branch = "main"
	}
	return repository + "-" + branch
}

// StatusFromRemote maps the backend status vocabulary onto the local one.
// The second return value reports whether the remote value was recognized;
// unrecognized values fall back to posted so a draft never shows up editable
// by accident.
func StatusFromRemote(remote string) (string, bool) {
	switch remote {
	case "pending", "pending_validation":
		return StatusPending, true
	case "approved", "rephrased":
		return StatusApproved, true
	case "rejected":
		return StatusDisapproved, true
	case "posted", "published":
		return StatusPosted, true
	default:
		return StatusPosted, false
	}
}

// StatusToRemote maps a local status to the vocabulary the backend accepts
// on writes.
func StatusToRemote(local string) string {
	switch local {
	case StatusDisapproved:
		return "rejected"
	case StatusPosted:
		return "published"
	default:
		return local
	}
}

func PlatformFromRemote(remote string) string {
	switch strings.ToLower(remote) {
	case "x", "twitter":
		return PlatformX
	case "email":
		return PlatformEmail
	case "tiktok":
		return PlatformTikTok
	default:
		return PlatformLinkedIn
	}
}

// MediaKindFromURL infers the media kind from the file extension when the
// backend record omits it.
func MediaKindFromURL(rawURL string) string {
	ext := path.Ext(rawURL)
	if i := strings.IndexAny(ext, "?#"); i >= 0 {
		ext = ext[:i]
	}
	t := filetype.GetType(strings.TrimPrefix(ext, "."))
	if t.MIME.Type == "video" {
		return MediaKindVideo
	}
	return MediaKindImage
}

// PostFromRemote converts a backend ContentItem into a Post, defaulting every
// optional or unrecognized field deterministically. The recognized flag is
// false when the remote status was unknown and fell back to posted.
func PostFromRemote(item transfer.ContentItem) (*Post, bool) {
	status, recognized := StatusFromRemote(item.Status)

	author := DefaultAuthor
	if item.Author != nil && item.Author.Name != "" {
		author = Author{
			Name:      item.Author.Name,
			Title:     item.Author.Title,
			Handle:    item.Author.Handle,
			AvatarURL: item.Author.AvatarURL,
		}
	}

	media := make([]Media, 0, len(item.Media))
	for _, m := range item.Media {
		kind := m.Kind
		if kind != MediaKindImage && kind != MediaKindVideo {
			kind = MediaKindFromURL(m.URL)
		}
		media = append(media, Media{URL: m.URL, Kind: kind, Caption: m.Caption})
	}

	return &Post{
		ID:         item.ID,
		OriginKey:  OriginKey(item.Repository, item.Branch),
		Platform:   PlatformFromRemote(item.Platform),
		Author:     author,
		Content:    item.Content,
		Status:     status,
		Media:      media,
		Repository: item.Repository,
		CommitSha:  item.CommitSha,
		Branch:     item.Branch,
	}, recognized
}
