package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Zuo-Peng/chat-recap/internal/archive"
	"github.com/Zuo-Peng/chat-recap/internal/catalog"
	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/config"
	"github.com/Zuo-Peng/chat-recap/internal/stats"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, archive layout and current user, and show stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := flags.configPath
			if cfgPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return fmt.Errorf("config: %w", err)
				}
				cfgPath = p
			}

			// check config
			fmt.Println("=== Config ===")
			if _, err := os.Stat(cfgPath); err != nil {
				fmt.Printf("  %s (not present, using defaults)\n", cfgPath)
			} else {
				fmt.Printf("  %s (OK)\n", cfgPath)
			}
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if flags.archive != "" {
				cfg.Archive = flags.archive
			}
			if flags.userName != "" && flags.userEmail != "" {
				cfg.UserName, cfg.UserEmail = flags.userName, flags.userEmail
			}

			// check archive
			fmt.Println("\n=== Archive ===")
			a, err := archive.Open(cfg.Archive)
			var notFound *chat.ArchiveNotFoundError
			if errors.As(err, &notFound) {
				fmt.Printf("  Groups: %s (NOT FOUND)\n", notFound.Path)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("  Groups: %s (OK)\n", a.Root())

			// scan
			fmt.Println("\n=== Scan ===")
			res, err := a.Scan()
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
				return nil
			}
			fmt.Printf("  %s\n", res.Stats)
			for _, s := range res.Skipped {
				fmt.Printf("  skipped: %v\n", s)
			}

			// classification
			fmt.Println("\n=== Conversations ===")
			cat, err := catalog.Open()
			if err != nil {
				return err
			}
			defer cat.Close()
			if err := cat.Load(stats.Classify(res.Conversations)); err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			dms, err := cat.Count(catalog.KindDM)
			if err != nil {
				return err
			}
			groups, err := cat.Count(catalog.KindGroup)
			if err != nil {
				return err
			}
			fmt.Printf("  Direct messages: %d\n", dms)
			fmt.Printf("  Groups/spaces:   %d\n", groups)

			// current user
			fmt.Println("\n=== Current user ===")
			switch user, ok := a.ResolveCurrentUser(); {
			case cfg.HasUser():
				fmt.Printf("  %s - %s (from config)\n", cfg.UserName, cfg.UserEmail)
			case ok:
				fmt.Printf("  %s (from Users/ folder)\n", user.ID())
			default:
				fmt.Println("  NOT FOUND (will be asked for, or set user_name/user_email)")
			}

			return nil
		},
	}
}
