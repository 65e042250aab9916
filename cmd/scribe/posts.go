package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/post"
	"scribe/internal/shell"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			out := cmd.OutOrStdout()
			if !asJSON {
				shell.RenderPosts(out, a.posts.ListAll())
				return nil
			}
			data, err := post.Encode(a.posts.ListAll())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored JSON array")
	return cmd
}

func newAddCmd(flags *globalFlags) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a post",
		Example: `  scribe add --title "Hello" --content "First post"
  scribe add -t "Notes" -b "$(cat notes.txt)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			p, err := a.posts.Submit(title, content)
			if err != nil {
				return submitError(err)
			}
			if err := a.saved(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", p.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "post title")
	cmd.Flags().StringVarP(&content, "content", "b", "", "post content")
	return cmd
}

func newEditCmd(flags *globalFlags) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a post's title and/or content",
		Long: `Update an existing post. Fields not given on the command line keep
their current value. The post's id and creation time never change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			cur, err := a.posts.BeginEdit(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if !cmd.Flags().Changed("title") {
				title = cur.Title
			}
			if !cmd.Flags().Changed("content") {
				content = cur.Content
			}

			p, err := a.posts.Submit(title, content)
			if err != nil {
				a.posts.CancelEdit()
				return submitError(err)
			}
			if err := a.saved(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", p.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "b", "", "new content")
	return cmd
}

func newDeleteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a post",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if !a.posts.Delete(args[0]) {
				return fmt.Errorf("%s: %w", args[0], post.ErrNotFound)
			}
			if err := a.saved(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newPurgeCmd(flags *globalFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove every post by clearing the slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to purge without --yes")
			}
			a, err := openApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			n := a.posts.Len()
			if err := a.slot.Clear(); err != nil {
				return fmt.Errorf("clearing %s: %w", a.slot.Name(), err)
			}
			applog.Info("slot purged", "slot", a.slot.Name(), "posts", n)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d post(s)\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}

// submitError renders a validation failure as the form's field messages.
func submitError(err error) error {
	var verr *post.ValidationError
	if errors.As(err, &verr) {
		return errors.New(strings.Join(verr.Messages(), " "))
	}
	return err
}
