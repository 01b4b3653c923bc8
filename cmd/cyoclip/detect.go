package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cyoclip/internal/bom"
	"go.klb.dev/cyoclip/internal/input"
)

type detectReport struct {
	Encoding     string `json:"encoding"`
	Wide         bool   `json:"wide"`
	MarkerBytes  int    `json:"marker_bytes"`
	PayloadBytes int    `json:"payload_bytes"`
	Truncated    bool   `json:"truncated"`
}

func newDetectCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Report how stdin would be copied, without touching the clipboard",
		Long: `Reads stdin exactly as the copy action does and prints the detected
encoding, the clipboard text format it maps to and the payload size.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runDetect(cmd, v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDetect(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(cmd, v)

	res, err := input.Read(cmd.InOrStdin(), input.MaxBytes)
	if err != nil {
		return err
	}
	enc := bom.Detect(res.Data)
	rep := detectReport{
		Encoding:     enc.String(),
		Wide:         enc.Wide(),
		MarkerBytes:  enc.MarkerLen(),
		PayloadBytes: len(enc.Payload(res.Data)),
		Truncated:    res.Truncated,
	}

	out := cmd.OutOrStdout()
	if v.GetBool("json") {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		fmt.Fprintln(out, string(b))
		return nil
	}

	format := "text"
	if rep.Wide {
		format = "unicode text"
	}
	w := tabwriter.NewWriter(out, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Encoding:\t%s\n", rep.Encoding)
	fmt.Fprintf(w, "Format:\t%s\n", format)
	fmt.Fprintf(w, "Marker:\t%d bytes\n", rep.MarkerBytes)
	fmt.Fprintf(w, "Payload:\t%d bytes\n", rep.PayloadBytes)
	if rep.Truncated {
		fmt.Fprintf(w, "Truncated:\tyes (limit %d bytes)\n", input.MaxBytes)
	}
	return w.Flush()
}
