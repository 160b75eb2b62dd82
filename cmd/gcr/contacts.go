package main

import (
	"fmt"

	"github.com/Zuo-Peng/chat-recap/internal/render"
	"github.com/Zuo-Peng/chat-recap/internal/report"
	"github.com/Zuo-Peng/chat-recap/internal/tui"
	"github.com/spf13/cobra"
)

func contactsCmd() *cobra.Command {
	var pick string
	var noDrill bool

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Rank DM contacts by number of messages exchanged",
		Long: `Counts the messages of every direct-message conversation, attributes them to the
other participant and ranks contacts, most messaged first. Afterwards one contact
can be picked for a detailed recap (or pass --pick N).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()
			return runContacts(a, pick, noDrill)
		},
	}

	cmd.Flags().StringVar(&pick, "pick", "", "Show the recap of the contact at this rank")
	cmd.Flags().BoolVar(&noDrill, "no-detail", false, "Only print the ranking")

	return cmd
}

func runContacts(a *app, pick string, noDrill bool) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}

	rep, err := ctrl.Run(report.RankContacts(user))
	if err != nil {
		return err
	}
	a.emit(render.Contacts(rep.Contacts, a.render))
	if n := len(rep.Skipped); n > 0 {
		fmt.Fprintf(a.out, "\n(%d direct messages skipped; raise log_level to see why)\n", n)
	}

	if noDrill || len(rep.Contacts) == 0 {
		return a.finish()
	}

	items := make([]tui.Item, len(rep.Contacts))
	for i, c := range rep.Contacts {
		items[i] = tui.Item{
			Title:  render.ParticipantLabel(c.Participant),
			Note:   fmt.Sprintf("%d messages", c.Count),
			Detail: fmt.Sprintf("%s\n\nConversation: %s\nMessages: %d", c.Participant.ID(), c.ConversationID, c.Count),
		}
	}
	idx, err := a.selectIndex(pick, "Contacts",
		"\nEnter a number to view detailed stats or press Enter to exit: ", items, true)
	if err != nil {
		return a.reportSelectionError(err)
	}
	if idx < 0 {
		return a.finish()
	}

	c := rep.Contacts[idx]
	if err := showConversation(a, c.ConversationID, c.Participant.ID()); err != nil {
		return err
	}
	return a.finish()
}

// showConversation prints the recap of one DM. title overrides the catalog
// display name when set.
func showConversation(a *app, conversationID, title string) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}
	rep, err := ctrl.Run(report.AnalyzeConversation(conversationID))
	if err != nil {
		return fmt.Errorf("analyze %s: %w", conversationID, err)
	}
	if title != "" {
		rep.Title = title
	}
	a.emit(render.Recap(rep, a.render))
	return nil
}
