// Package post holds the post collection and the form-driven operations that
// mutate it. Every mutation rewrites the whole collection to a store.Slot.
package post

import "time"

// Post is a single entry. The JSON shape is the persisted slot format and
// must stay readable by, and from, earlier versions.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // creation time, ms since epoch
}

// Created returns Timestamp as a time.Time.
func (p Post) Created() time.Time {
	return time.UnixMilli(p.Timestamp)
}
