package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/interpretive-systems/diffpane/internal/logging"
	"github.com/interpretive-systems/diffpane/internal/scrollsync"
	"github.com/interpretive-systems/diffpane/internal/theme"
	"github.com/interpretive-systems/diffpane/internal/tui"
)

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "diffpane",
		Short:         "Diff viewer with split and unified panes",
		Long:          "diffpane: Reconcile two texts into change blocks and browse them in a split or unified TUI.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("mode", "m", "split", "View mode: split or unified")
	root.PersistentFlags().String("theme", "dark", "Base theme: dark or light")
	root.PersistentFlags().String("log-file", "", "Write JSON logs to this file")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newViewCmd())
	root.AddCommand(newPatchCmd())
	root.AddCommand(newHeadCmd())
	root.AddCommand(newBlocksCmd())
	return root
}

// session carries what every interactive command needs.
type session struct {
	log     zerolog.Logger
	closer  io.Closer
	mode    scrollsync.Mode
	modeSet bool
	theme   string
	refresh time.Duration // 0 loads once
}

func newSession(cmd *cobra.Command) (*session, error) {
	mode, err := scrollsync.ParseMode(mustGetStringFlag(cmd, "mode"))
	if err != nil {
		return nil, err
	}
	log, closer, err := logging.New(mustGetStringFlag(cmd, "log-file"), mustGetStringFlag(cmd, "log-level"))
	if err != nil {
		return nil, err
	}
	return &session{
		log:     log,
		closer:  closer,
		mode:    mode,
		modeSet: cmd.Flags().Changed("mode"),
		theme:   mustGetStringFlag(cmd, "theme"),
		refresh: refreshInterval(cmd),
	}, nil
}

// addWatchFlags registers --watch and --interval on commands whose source
// can be read again.
func addWatchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("watch", "w", false, "Reload the diff periodically")
	cmd.Flags().Duration("interval", time.Second, "Reload interval used with --watch")
}

func refreshInterval(cmd *cobra.Command) time.Duration {
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil || !watch {
		return 0
	}
	d, err := cmd.Flags().GetDuration("interval")
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// run opens the viewer. dir is where a .diffpane/theme.json override is
// looked up.
func (s *session) run(title, dir, repoRoot string, load tui.Loader) error {
	defer s.closer.Close()
	s.log.Info().Str("source", title).Stringer("mode", s.mode).Dur("refresh", s.refresh).Msg("open viewer")
	return tui.Run(tui.Options{
		Title:    title,
		Load:     load,
		Mode:     s.mode,
		Theme:    theme.Load(dir, s.theme),
		RepoRoot: repoRoot,
		Refresh:  s.refresh,
		Logger:   s.log,
	})
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
