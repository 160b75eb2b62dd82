package main

import (
	"github.com/spf13/cobra"
)

func dmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dm <conversationId>",
		Short: "Recap of one conversation: message count, top word, top emoji",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := showConversation(a, args[0], ""); err != nil {
				return err
			}
			return a.finish()
		},
	}
}
