package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "gcr",
		Short: "Google Chat Recap - message statistics from a Google Takeout export",
		Long: `Reads a Google Chat Takeout export (Takeout/Google Chat/Groups) and reports
who you message most, per-group leaderboards, most common words and top emoji.

Run without a subcommand for the interactive menu.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()
			return runMenu(a)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/gcr/config.toml)")
	pf.StringVar(&flags.archive, "archive", "", "Takeout, 'Google Chat' or 'Groups' directory")
	pf.StringVar(&flags.userName, "user-name", "", "Your display name in Google Chat")
	pf.StringVar(&flags.userEmail, "user-email", "", "Your email in Google Chat")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flags.copy, "copy", false, "Copy the printed report to the clipboard")

	rootCmd.AddCommand(contactsCmd())
	rootCmd.AddCommand(dmCmd())
	rootCmd.AddCommand(groupCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
