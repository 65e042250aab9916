package post

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the collection as a JSON array. An empty collection
// encodes as [] rather than null.
func Encode(posts []Post) ([]byte, error) {
	if posts == nil {
		posts = []Post{}
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return nil, fmt.Errorf("encoding posts: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array written by Encode.
func Decode(data []byte) ([]Post, error) {
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decoding posts: %w", err)
	}
	return posts, nil
}
