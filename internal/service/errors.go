package service

import (
	"errors"
	"fmt"
)

// TransportError covers network failures and non-2xx responses from the
// content backend after the retry budget is spent.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// EmptyResultError means the backend answered 2xx but without usable content.
type EmptyResultError struct {
	Op string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s: backend returned no content", e.Op)
}

// ProviderError wraps a failure from a direct third-party call on the
// fallback path.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrPostBusy      = errors.New("an operation is already in flight for this post")
	ErrNotPending    = errors.New("post is no longer pending")
	ErrGroupNotFound = errors.New("push group not found")
)
