package main

import (
	"github.com/spf13/cobra"
)

func newDeletedCmd(a *app) *cobra.Command {
	var since int64
	cmd := &cobra.Command{
		Use:   "deleted",
		Short: "List ids of contacts deleted at or after --since (ms)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := a.aggregator()
			if err != nil {
				return err
			}
			ids, err := agg.FetchDeletedSince(cmd.Context(), since)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().Int64Var(&since, "since", 0, "Deletion timestamp watermark in milliseconds")
	return cmd
}
