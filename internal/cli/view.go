package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/diffpane/internal/diffview"
	"github.com/interpretive-systems/diffpane/internal/gitx"
	"github.com/interpretive-systems/diffpane/internal/prefs"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view BASE REVISED",
		Short: "Compare two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			title := args[0] + " → " + args[1]
			return s.run(title, workingDir(), "", func() ([]diffview.Segment, error) {
				return diffFiles(args[0], args[1])
			})
		},
	}
	addWatchFlags(cmd)
	return cmd
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch [FILE]",
		Short: "Show a unified diff read from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			// stdin can only be read once, so read it before the TUI starts
			title := "stdin"
			var text []byte
			if len(args) == 1 && args[0] != "-" {
				title = args[0]
				text, err = os.ReadFile(args[0])
			} else {
				text, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read patch: %w", err)
			}
			segs, err := diffview.ParseUnified(string(text))
			if err != nil {
				return fmt.Errorf("parse patch %s: %w", title, err)
			}
			return s.run(title, workingDir(), "", func() ([]diffview.Segment, error) {
				return segs, nil
			})
		},
	}
	return cmd
}

func newHeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head PATH",
		Short: "Compare a file in the working tree with HEAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			root, err := gitx.RepoRoot(filepath.Dir(args[0]))
			if err != nil {
				return fmt.Errorf("not a git repo: %w", err)
			}
			rel, err := gitx.RelPath(root, args[0])
			if err != nil {
				return err
			}
			if p := prefs.Load(root); p.ModeSet && !s.modeSet {
				s.mode = p.Mode
			}
			return s.run(rel, root, root, func() ([]diffview.Segment, error) {
				base, working, err := gitx.HeadAndWorking(root, rel)
				if err != nil {
					return nil, err
				}
				return diffview.LineDiff(base, working), nil
			})
		},
	}
	addWatchFlags(cmd)
	return cmd
}

func diffFiles(basePath, revisedPath string) ([]diffview.Segment, error) {
	base, err := os.ReadFile(basePath)
	if err != nil {
		return nil, fmt.Errorf("read base: %w", err)
	}
	revised, err := os.ReadFile(revisedPath)
	if err != nil {
		return nil, fmt.Errorf("read revised: %w", err)
	}
	return diffview.LineDiff(string(base), string(revised)), nil
}
