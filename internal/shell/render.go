package shell

import (
	"fmt"
	"io"
	"strings"

	"scribe/internal/post"
)

const timeLayout = "2006-01-02 15:04"

// RenderPosts writes the post list in display order.
func RenderPosts(w io.Writer, posts []post.Post) {
	if len(posts) == 0 {
		_, _ = fmt.Fprintln(w, "No posts yet.")
		return
	}
	_, _ = fmt.Fprintf(w, "Posts (%d):\n", len(posts))
	for i, p := range posts {
		_, _ = fmt.Fprintf(w, "  [%d] %s  %s  (%s)\n", i+1, p.ID, p.Title, p.Created().Format(timeLayout))
		for _, line := range strings.Split(p.Content, "\n") {
			_, _ = fmt.Fprintf(w, "      %s\n", line)
		}
	}
}

// RenderValidation writes one line per missing field.
func RenderValidation(w io.Writer, verr *post.ValidationError) {
	for _, msg := range verr.Messages() {
		_, _ = fmt.Fprintln(w, msg)
	}
}
