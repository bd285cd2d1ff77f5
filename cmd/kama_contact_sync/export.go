package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/internal/infrastructure/mq"
	"kama_contact_sync/internal/service/contacts"
	"kama_contact_sync/pkg/enum/field_type_enum"
	"kama_contact_sync/pkg/util/snowflake"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		fields    []string
		sortOrder string
		output    string
		toKafka   bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Aggregate all contacts and write them as JSON or publish them to Kafka",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := fields
			if len(names) == 0 {
				names = a.conf.AggregateConfig.EnabledFields
			}
			enabled, err := field_type_enum.ParseList(names)
			if err != nil {
				return err
			}
			if sortOrder == "" {
				sortOrder = a.conf.AggregateConfig.SortOrder
			}

			agg, err := a.aggregator()
			if err != nil {
				return err
			}
			records, err := agg.FetchAll(cmd.Context(), contacts.FetchOptions{Fields: enabled, SortOrder: sortOrder})
			if err != nil {
				return err
			}

			if toKafka {
				return publishRecords(cmd, a, records)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			zap.L().Info("export finished", zap.Int("contacts", len(records)))
			return writeJSON(w, records)
		},
	}
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "Attribute categories to include (default: aggregateConfig.enabledFields)")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "Primary table ORDER BY clause (default: aggregateConfig.sortOrder)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")
	cmd.Flags().BoolVar(&toKafka, "kafka", false, "Publish to kafkaConfig.snapshotTopic instead of writing JSON")
	return cmd
}

func publishRecords(cmd *cobra.Command, a *app, records []*respond.ContactData) error {
	if err := mq.CreateTopics(a.conf.KafkaConfig); err != nil {
		zap.L().Warn("ensure kafka topics", zap.Error(err))
	}
	publisher := mq.NewSnapshotPublisher(a.conf.KafkaConfig)
	defer publisher.Close()

	snapshotID := snowflake.NextSnapshotID()
	if err := publisher.PublishSnapshot(cmd.Context(), snapshotID, records); err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), respond.PublishSnapshotRespond{
		SnapshotId:   snapshotID,
		ContactCount: len(records),
	})
}
