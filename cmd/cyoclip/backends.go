package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go.klb.dev/cyoclip/internal/clip"
)

// probeBackends is swapped out in tests.
var probeBackends = clip.Probe

func newBackendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backends",
		Short: "List clipboard backends and whether they work on this host",
		Long: `Tries to construct every clipboard backend and reports the result.
AUTO is the position of the backend in the order --backend=auto tries them;
"-" means auto never tries it on this platform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			return printBackends(cmd.OutOrStdout(), probeBackends(), jsonOut)
		},
	}
	cmd.Flags().Bool("json", false, "output raw JSON")
	return cmd
}

func printBackends(out io.Writer, statuses []clip.Status, jsonOut bool) error {
	if jsonOut {
		enc, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		fmt.Fprintln(out, string(enc))
		return nil
	}

	tw := tabwriter.NewWriter(out, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "NAME\tAUTO\tSTATUS\n")
	_, _ = fmt.Fprintf(tw, "----\t----\t------\n")
	for _, st := range statuses {
		rank := "-"
		if st.Auto > 0 {
			rank = strconv.Itoa(st.Auto)
		}
		status := "ok: " + st.Display
		if st.Err != "" {
			status = "unavailable: " + st.Err
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", st.Name, rank, status)
	}
	return tw.Flush()
}
