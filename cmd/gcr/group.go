package main

import (
	"fmt"

	"github.com/Zuo-Peng/chat-recap/internal/render"
	"github.com/Zuo-Peng/chat-recap/internal/report"
	"github.com/Zuo-Peng/chat-recap/internal/tui"
	"github.com/spf13/cobra"
)

func groupCmd() *cobra.Command {
	var pick string

	cmd := &cobra.Command{
		Use:   "group [conversationId]",
		Short: "Activity recap of a group chat or space",
		Long: `Ranks the members of a group chat or space by messages sent and shows the most
common word and top emoji. Without an id, the groups are listed for selection
(or pass --pick N).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runGroup(a, id, pick)
		},
	}

	cmd.Flags().StringVar(&pick, "pick", "", "Analyze the group at this position in the list")

	return cmd
}

func runGroup(a *app, id, pick string) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	if id == "" {
		groups, err := ctrl.Catalog().Groups()
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			fmt.Fprintln(a.out, "No group chats or spaces found.")
			return nil
		}

		items := make([]tui.Item, len(groups))
		for i, g := range groups {
			items[i] = tui.Item{
				Title:  g.DisplayName,
				Note:   fmt.Sprintf("%d members", len(g.Participants)),
				Detail: memberList(g.Participants),
			}
		}
		if pick == "" && !a.interactive {
			fmt.Fprint(a.out, render.Groups(groups, a.render))
		}
		idx, err := a.selectIndex(pick, "Group chats & spaces",
			"\nEnter the number of the group chat to analyze: ", items, false)
		if err != nil {
			return a.reportSelectionError(err)
		}
		if idx < 0 {
			return nil
		}
		id = groups[idx].ID
	}

	rep, err := ctrl.Run(report.AnalyzeGroup(id))
	if err != nil {
		return fmt.Errorf("analyze %s: %w", id, err)
	}
	a.emit(render.Recap(rep, a.render))
	return a.finish()
}
