package main

import (
	"github.com/Zuo-Peng/chat-recap/internal/open"
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <conversationId>",
		Short: "Open a conversation's messages.json in $EDITOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			return open.OpenConversation(a.archive, args[0])
		},
	}
}
