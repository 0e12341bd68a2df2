package models

// ListResponse is the envelope the content service wraps collection reads in
type ListResponse[T any] struct {
	Items []T `json:"items"`
}
