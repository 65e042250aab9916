package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scribe/internal/shell"
)

func newShellCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive editor",
		Long: `Open an interactive editor over stdin/stdout.

Compose a draft with /title and /content, then /submit it. /edit <id>
loads an existing post into the draft so the next /submit updates it
instead of creating a new one. Type /help inside the shell for the full
command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, flags)
		},
	}
}

func runShell(cmd *cobra.Command, flags *globalFlags) error {
	in := cmd.InOrStdin()
	fd, interactive := terminalFD(in)

	logOut := io.Writer(cmd.ErrOrStderr())
	if interactive {
		logOut = io.Discard
		if !flags.ephemeral {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			f, err := logFile(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			logOut = f
		}
	}

	a, err := openApp(flags, logOut)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	// Raw mode swallows Ctrl-C as input; SIGTERM still cancels a pending read.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := shell.New(a.posts, a.cfg.Shell.Prompt)

	var rw io.ReadWriter = struct {
		io.Reader
		io.Writer
	}{in, cmd.OutOrStdout()}

	if interactive {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, old) }()
	}

	applog.Info("shell started", "posts", a.posts.Len())
	return sh.Run(ctx, rw)
}

// terminalFD reports whether r is a terminal and, if so, its descriptor.
func terminalFD(r io.Reader) (int, bool) {
	f, ok := r.(*os.File)
	if !ok {
		return -1, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
