package transfer

// ContentItem is the backend's wire representation of a generated draft.
// Most fields are optional upstream; defaulting happens at the ingest
// boundary, not here.
type ContentItem struct {
	ID         string         `json:"_id"`
	Repository string         `json:"repository"`
	CommitSha  string         `json:"commit_sha"`
	Branch     string         `json:"branch"`
	Content    string         `json:"content"`
	Status     string         `json:"status"`
	Media      []ContentMedia `json:"media"`
	Platform   string         `json:"platform"`
	Author     *ContentAuthor `json:"author"`
}

type ContentMedia struct {
	URL     string `json:"url"`
	Kind    string `json:"kind"`
	Caption string `json:"caption"`
}

type ContentAuthor struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatar_url"`
}

type HealthResponse struct {
	Message string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateContentRequest struct {
	Content string `json:"content"`
}

type RephraseRequest struct {
	Instructions string `json:"instructions"`
}

type RephraseResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
