package main

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/chat-recap/internal/catalog"
	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/tui"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var kind, filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations as TSV: id, kind, members, name",
		Long: `Lists the classified conversations of the archive, DMs first. Use --filter to
fuzzy-match conversation names, and the printed ids with 'gcr dm', 'gcr group'
or 'gcr open'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctrl, err := a.controller()
			if err != nil {
				return err
			}

			var kinds []catalog.Kind
			switch kind {
			case "", "all":
				kinds = []catalog.Kind{catalog.KindDM, catalog.KindGroup}
			case "dm":
				kinds = []catalog.Kind{catalog.KindDM}
			case "group":
				kinds = []catalog.Kind{catalog.KindGroup}
			default:
				return fmt.Errorf("unknown kind %q (want dm, group or all)", kind)
			}

			var entries []catalog.Entry
			for _, k := range kinds {
				es, err := ctrl.Catalog().List(k)
				if err != nil {
					return fmt.Errorf("list %s: %w", k, err)
				}
				entries = append(entries, es...)
			}

			items := make([]tui.Item, len(entries))
			for i, e := range entries {
				items[i] = tui.Item{Title: e.DisplayName}
			}
			for _, i := range tui.Filter(items, filter) {
				e := entries[i]
				name := strings.ReplaceAll(e.DisplayName, "\t", " ")
				fmt.Fprintf(a.out, "%s\t%s\t%d\t%s\n", e.ID, e.Kind, len(e.Participants), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "all", "Conversation kind: dm, group or all")
	cmd.Flags().StringVar(&filter, "filter", "", "Fuzzy filter on conversation names")

	return cmd
}

// memberList renders one participant per line.
func memberList(ps []chat.Participant) string {
	lines := make([]string, len(ps))
	for i, p := range ps {
		lines[i] = p.ID()
	}
	return strings.Join(lines, "\n")
}
