package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/diffpane/internal/diffview"
)

func newBlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks BASE REVISED",
		Short: "Print the change blocks between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}
			segs, err := diffFiles(args[0], args[1])
			if err != nil {
				return err
			}
			pass := diffview.Reconcile(segs)
			if asJSON {
				return writeBlocksJSON(cmd.OutOrStdout(), pass)
			}
			return writeBlocks(cmd.OutOrStdout(), pass)
		},
	}
	cmd.Flags().Bool("json", false, "Print blocks and stats as JSON")
	return cmd
}

// writeBlocks prints one block per line; L is the 1-based first line in
// the unified view.
func writeBlocks(w io.Writer, pass diffview.Pass) error {
	for _, b := range pass.Blocks {
		if _, err := fmt.Fprintf(w, "%s  %-7s  L%d +%d  %s\n", b.ID, b.Kind, b.LineStart+1, b.LineCount, b.Preview); err != nil {
			return err
		}
	}
	st := pass.Stats()
	_, err := fmt.Fprintf(w, "%d changes, %d added, %d removed, %d unchanged\n", st.Blocks, st.Added, st.Removed, st.Unchanged)
	return err
}

func writeBlocksJSON(w io.Writer, pass diffview.Pass) error {
	out := struct {
		Blocks []diffview.ChangeBlock `json:"blocks"`
		Stats  diffview.Stats         `json:"stats"`
	}{Blocks: pass.Blocks, Stats: pass.Stats()}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
