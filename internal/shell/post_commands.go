package shell

import (
	"errors"
	"fmt"

	"scribe/internal/post"
)

func (s *Shell) registerPostCommands() {
	s.commands.Register("/list", Command{
		Help:    "list all posts",
		Handler: s.handleList,
	})
	s.commands.Register("/title", Command{
		Usage:   "/title <text>",
		Help:    "set the draft title",
		Handler: s.handleTitle,
	})
	s.commands.Register("/content", Command{
		Usage:   "/content <text>",
		Help:    "set the draft content",
		Handler: s.handleContent,
	})
	s.commands.Register("/append", Command{
		Usage:   "/append <text>",
		Help:    "add a line to the draft content",
		Handler: s.handleAppend,
	})
	s.commands.Register("/show", Command{
		Help:    "show the draft",
		Handler: s.handleShow,
	})
	s.commands.Register("/edit", Command{
		Usage:   "/edit <id>",
		Help:    "load a post into the draft for editing",
		Handler: s.handleEdit,
	})
	s.commands.Register("/submit", Command{
		Help:    "save the draft (create, or update when editing)",
		Handler: s.handleSubmit,
	})
	s.commands.Register("/cancel", Command{
		Help:    "stop editing and clear the draft",
		Handler: s.handleCancel,
	})
	s.commands.Register("/delete", Command{
		Usage:   "/delete <id>",
		Help:    "delete a post",
		Handler: s.handleDelete,
	})
}

func (s *Shell) handleList(ctx CommandContext) bool {
	RenderPosts(ctx.Out, s.posts.ListAll())
	return false
}

func (s *Shell) handleTitle(ctx CommandContext) bool {
	s.form.Title = ctx.Rest
	return false
}

func (s *Shell) handleContent(ctx CommandContext) bool {
	s.form.Content = ctx.Rest
	return false
}

func (s *Shell) handleAppend(ctx CommandContext) bool {
	if s.form.Content == "" {
		s.form.Content = ctx.Rest
	} else {
		s.form.Content += "\n" + ctx.Rest
	}
	return false
}

func (s *Shell) handleShow(ctx CommandContext) bool {
	mode := "new post"
	if id, ok := s.posts.Editing(); ok {
		mode = "editing " + id
	}
	_, _ = fmt.Fprintf(ctx.Out, "Draft (%s)\n", mode)
	_, _ = fmt.Fprintf(ctx.Out, "  title:   %s\n", s.form.Title)
	_, _ = fmt.Fprintf(ctx.Out, "  content: %s\n", s.form.Content)
	return false
}

func (s *Shell) handleEdit(ctx CommandContext) bool {
	if len(ctx.Args) != 1 {
		_, _ = fmt.Fprintln(ctx.Out, "Usage: /edit <id>")
		return false
	}
	p, err := s.posts.BeginEdit(ctx.Args[0])
	if err != nil {
		_, _ = fmt.Fprintf(ctx.Out, "%s: %v\n", ctx.Args[0], err)
		return false
	}
	s.form = Form{Title: p.Title, Content: p.Content}
	_, _ = fmt.Fprintf(ctx.Out, "Editing %s. Change /title or /content, then /submit.\n", p.ID)
	return false
}

func (s *Shell) handleSubmit(ctx CommandContext) bool {
	editingID, editing := s.posts.Editing()

	p, err := s.posts.Submit(s.form.Title, s.form.Content)
	var verr *post.ValidationError
	if errors.As(err, &verr) {
		RenderValidation(ctx.Out, verr)
		return false
	}

	if editing && p.ID == editingID {
		_, _ = fmt.Fprintf(ctx.Out, "Updated %s\n", p.ID)
	} else {
		_, _ = fmt.Fprintf(ctx.Out, "Created %s\n", p.ID)
	}
	if perr := s.posts.PersistErr(); perr != nil {
		_, _ = fmt.Fprintf(ctx.Out, "Warning: not saved to disk: %v\n", perr)
	}
	s.form.Clear()
	return false
}

func (s *Shell) handleCancel(ctx CommandContext) bool {
	s.posts.CancelEdit()
	s.form.Clear()
	_, _ = fmt.Fprintln(ctx.Out, "Draft cleared.")
	return false
}

func (s *Shell) handleDelete(ctx CommandContext) bool {
	if len(ctx.Args) != 1 {
		_, _ = fmt.Fprintln(ctx.Out, "Usage: /delete <id>")
		return false
	}
	id := ctx.Args[0]
	editingID, wasEditing := s.posts.Editing()
	if !s.posts.Delete(id) {
		_, _ = fmt.Fprintf(ctx.Out, "%s: not found\n", id)
		return false
	}
	_, _ = fmt.Fprintf(ctx.Out, "Deleted %s\n", id)
	if wasEditing && editingID == id {
		_, _ = fmt.Fprintln(ctx.Out, "The post being edited is gone; /submit will create a new post.")
	}
	return false
}
