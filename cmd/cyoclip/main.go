// cyoclip: copy standard input to the system clipboard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cyoclip/internal/clip"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

// newBackend is swapped out in tests.
var newBackend = clip.New

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "cyoclip",
		Short: "Copy standard input to the system clipboard",
		Long: `cyoclip reads up to 1 MiB from standard input and places it on the
system clipboard as text, replacing whatever was there.

A leading byte-order mark selects the text format and is not copied:
  FF FE     UTF-16 little-endian (wide text)
  FE FF     UTF-16 big-endian    (wide text)
  EF BB BF  UTF-8
Anything else is copied as-is as narrow text. Input past 1 MiB is ignored.

  git log -1 | cyoclip
  type notes.txt | cyoclip

Config file search order (first found wins):
  /etc/cyoclip/cyoclip.toml
  $HOME/.config/cyoclip/cyoclip.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → CYOCLIP_* env vars → flags`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(cmd *cobra.Command, _ []string) error { return runCopy(cmd, v) },
	}

	f := root.Flags()
	f.String("backend", clip.BackendAuto, "clipboard backend: auto|native|command|osc52")
	f.Bool("hold", true, "stay running until another application takes the clipboard, for backends whose content dies with cyoclip (X11)")
	addLoggingFlags(root)
	addConfigFlag(root)

	root.AddCommand(
		newDetectCmd(),
		newBackendsCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cyoclip %s\n", Version)
		},
	}
}
