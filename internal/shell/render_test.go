package shell

import (
	"bytes"
	"strings"
	"testing"

	"scribe/internal/post"
)

func TestRenderPostsOrderAndContent(t *testing.T) {
	var buf bytes.Buffer
	RenderPosts(&buf, []post.Post{
		{ID: "b", Title: "Second", Content: "two\nlines", Timestamp: 2},
		{ID: "a", Title: "First", Content: "one", Timestamp: 1},
	})
	out := buf.String()
	if !strings.HasPrefix(out, "Posts (2):\n") {
		t.Fatalf("header: %q", out)
	}
	if strings.Index(out, "Second") > strings.Index(out, "First") {
		t.Error("posts should render in slice order")
	}
	if !strings.Contains(out, "      two\n      lines\n") {
		t.Errorf("multi-line content not indented: %q", out)
	}
	if !strings.Contains(out, "[1] b  Second") || !strings.Contains(out, "[2] a  First") {
		t.Errorf("numbering: %q", out)
	}
}

func TestRenderValidation(t *testing.T) {
	var buf bytes.Buffer
	RenderValidation(&buf, &post.ValidationError{MissingTitle: true, MissingContent: true})
	if buf.String() != post.MsgTitleRequired+"\n"+post.MsgContentRequired+"\n" {
		t.Fatalf("got %q", buf.String())
	}
}
