// Package shell is a line-oriented front end for a post.Store. It keeps one
// form (draft title and content) and maps slash commands onto the store's
// Submit, BeginEdit, Delete and CancelEdit.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"scribe/internal/logging"
	"scribe/internal/post"

	"golang.org/x/term"
)

var shlog = logging.For("shell")

// Form is the draft being composed.
type Form struct {
	Title   string
	Content string
}

// Clear empties both fields.
func (f *Form) Clear() {
	f.Title, f.Content = "", ""
}

// Shell drives a post.Store from typed commands.
type Shell struct {
	posts    *post.Store
	commands *CommandRegistry
	prompt   string
	form     Form
}

// New creates a shell with the built-in and post commands registered.
func New(posts *post.Store, prompt string) *Shell {
	s := &Shell{
		posts:    posts,
		commands: NewCommandRegistry(),
		prompt:   prompt,
	}
	s.registerPostCommands()
	s.registerBuiltins()
	return s
}

// Commands exposes registration for extra commands. Run freezes it.
func (s *Shell) Commands() CommandRegistrar {
	return s.commands
}

// Form returns the current draft.
func (s *Shell) Form() Form {
	return s.form
}

// Exec runs a single command line and reports whether the shell should exit.
func (s *Shell) Exec(line string, out io.Writer) bool {
	return s.commands.Dispatch(line, out)
}

type readResult struct {
	line string
	err  error
}

// Run reads lines from rw until /quit, EOF or ctx is done. rw is typically
// stdin/stdout in raw mode; any io.ReadWriter works.
//
// Lines are read on a separate goroutine, one per request, so a cancelled ctx
// ends Run even while a read is pending. That goroutine stays blocked until
// the pending read returns.
func (s *Shell) Run(ctx context.Context, rw io.ReadWriter) error {
	s.commands.Freeze()
	if ctx.Err() != nil {
		return nil
	}
	terminal := term.NewTerminal(rw, s.prompt)

	_, _ = fmt.Fprintf(terminal, "scribe: %d post(s). Type /help for commands.\n", s.posts.Len())

	next := make(chan struct{})
	results := make(chan readResult, 1)
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for range next {
			line, err := terminal.ReadLine()
			results <- readResult{line: line, err: err}
		}
	}()

	blocked := false
	defer func() {
		close(next)
		if !blocked {
			<-readerDone
		}
	}()

	for {
		next <- struct{}{}
		var r readResult
		select {
		case <-ctx.Done():
			blocked = true
			shlog.Debug("shell cancelled")
			return nil
		case r = <-results:
		}

		if r.err != nil {
			if errors.Is(r.err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", r.err)
		}
		line := strings.TrimSpace(r.line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			_, _ = fmt.Fprintln(terminal, "Commands start with / (try /help).")
			continue
		}
		if s.commands.Dispatch(line, terminal) {
			return nil
		}
	}
}

func (s *Shell) registerBuiltins() {
	s.commands.Register("/help", Command{
		Help: "show this help",
		Handler: func(ctx CommandContext) bool {
			_, _ = fmt.Fprint(ctx.Out, s.commands.HelpText())
			return false
		},
	})
	s.commands.Register("/quit", Command{
		Help: "leave the shell",
		Handler: func(ctx CommandContext) bool {
			_, _ = fmt.Fprintln(ctx.Out, "Goodbye.")
			return true
		},
	})
}
