package models

import (
	"testing"

	"github.com/maheshrc27/reviewdeck/internal/transfer"
	"github.com/stretchr/testify/assert"
)

func TestOriginKey(t *testing.T) {
	tests := []struct {
		name       string
		repository string
		branch     string
		want       string
	}{
		{name: "both present", repository: "r1", branch: "main", want: "r1-main"},
		{name: "missing repository", repository: "", branch: "dev", want: "unknown-dev"},
		{name: "missing branch", repository: "r1", branch: "", want: "r1-main"},
		{name: "both missing", repository: "", branch: "", want: "unknown-main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OriginKey(tt.repository, tt.branch))
		})
	}
}

func TestStatusFromRemote(t *testing.T) {
	tests := []struct {
		remote     string
		want       string
		recognized bool
	}{
		{remote: "pending", want: StatusPending, recognized: true},
		{remote: "pending_validation", want: StatusPending, recognized: true},
		{remote: "approved", want: StatusApproved, recognized: true},
		{remote: "rephrased", want: StatusApproved, recognized: true},
		{remote: "rejected", want: StatusDisapproved, recognized: true},
		{remote: "posted", want: StatusPosted, recognized: true},
		{remote: "published", want: StatusPosted, recognized: true},
		{remote: "something_else", want: StatusPosted, recognized: false},
		{remote: "", want: StatusPosted, recognized: false},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			got, recognized := StatusFromRemote(tt.remote)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.recognized, recognized)
		})
	}
}

// Local statuses survive a write-read round trip through the remote
// vocabulary, except approved which the backend reports as rephrased or
// approved depending on how it got there.
func TestStatusRoundTrip(t *testing.T) {
	for _, local := range []string{StatusPending, StatusDisapproved, StatusPosted} {
		got, recognized := StatusFromRemote(StatusToRemote(local))
		assert.True(t, recognized)
		assert.Equal(t, local, got, "round trip for %s", local)
	}

	got, recognized := StatusFromRemote(StatusToRemote(StatusApproved))
	assert.True(t, recognized)
	assert.Equal(t, StatusApproved, got)
}

func TestPlatformFromRemote(t *testing.T) {
	assert.Equal(t, PlatformX, PlatformFromRemote("twitter"))
	assert.Equal(t, PlatformX, PlatformFromRemote("X"))
	assert.Equal(t, PlatformEmail, PlatformFromRemote("email"))
	assert.Equal(t, PlatformTikTok, PlatformFromRemote("tiktok"))
	assert.Equal(t, PlatformLinkedIn, PlatformFromRemote("linkedin"))
	assert.Equal(t, PlatformLinkedIn, PlatformFromRemote(""))
	assert.Equal(t, PlatformLinkedIn, PlatformFromRemote("myspace"))
}

func TestMediaKindFromURL(t *testing.T) {
	assert.Equal(t, MediaKindVideo, MediaKindFromURL("https://cdn.example.com/clip.mp4"))
	assert.Equal(t, MediaKindVideo, MediaKindFromURL("https://cdn.example.com/clip.mov?sig=abc"))
	assert.Equal(t, MediaKindImage, MediaKindFromURL("https://cdn.example.com/pic.png"))
	assert.Equal(t, MediaKindImage, MediaKindFromURL("https://cdn.example.com/no-extension"))
}

func TestPostFromRemoteDefaults(t *testing.T) {
	post, recognized := PostFromRemote(transfer.ContentItem{
		ID:      "abc123",
		Content: "hello",
		Status:  "pending_validation",
		Media: []transfer.ContentMedia{
			{URL: "https://cdn.example.com/clip.mp4"},
			{URL: "https://cdn.example.com/pic.jpg", Kind: "image", Caption: "a caption"},
		},
	})

	assert.True(t, recognized)
	assert.Equal(t, "abc123", post.ID)
	assert.Equal(t, "unknown-main", post.OriginKey)
	assert.Equal(t, PlatformLinkedIn, post.Platform)
	assert.Equal(t, DefaultAuthor, post.Author)
	assert.Equal(t, StatusPending, post.Status)
	assert.Equal(t, MediaKindVideo, post.Media[0].Kind)
	assert.Equal(t, MediaKindImage, post.Media[1].Kind)
	assert.Equal(t, "a caption", post.Media[1].Caption)
}

func TestPostFromRemoteUnknownStatus(t *testing.T) {
	post, recognized := PostFromRemote(transfer.ContentItem{
		ID:         "abc123",
		Repository: "r1",
		Branch:     "dev",
		Status:     "archived",
		Author:     &transfer.ContentAuthor{Name: "Mahesh", Handle: "@mahesh"},
	})

	assert.False(t, recognized)
	assert.Equal(t, StatusPosted, post.Status)
	assert.Equal(t, "r1-dev", post.OriginKey)
	assert.Equal(t, "Mahesh", post.Author.Name)
	assert.Equal(t, "@mahesh", post.Author.Handle)
}
