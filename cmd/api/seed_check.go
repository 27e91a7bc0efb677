package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wichananm65/social-backend/internal/infrastructure/seed"
)

func newSeedCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-check [file]",
		Short: "Validate a member type seed file and print what it would load",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			f, err := seed.Load(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, mt := range f.MemberTypes {
				fmt.Fprintf(out, "%s\tdiscount=%d\tmonthPostsLimit=%d\n", mt.ID, mt.Discount, mt.MonthPostsLimit)
			}
			fmt.Fprintf(out, "%d member type(s)\n", len(f.MemberTypes))
			return nil
		},
	}
}
