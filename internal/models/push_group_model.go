package models

// PushGroup is a bucket of posts that came out of the same repository and
// branch. Posts keep their ingest order inside the group.
type PushGroup struct {
	ID    string  `json:"id"` // the origin key
	Posts []*Post `json:"posts"`
}
