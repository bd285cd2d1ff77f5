package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kama_contact_sync/internal/dao/database"
	"kama_contact_sync/internal/infrastructure/mq"
)

func newMigrateCmd(a *app) *cobra.Command {
	var topics bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the contacts provider tables (and optionally the Kafka topics)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			zap.L().Info("database migrated")

			if topics {
				return mq.CreateTopics(a.conf.KafkaConfig)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&topics, "topics", false, "Also create the snapshot and deletion Kafka topics")
	return cmd
}
