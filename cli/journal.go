package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/blogem/goodhome/config"
	"github.com/blogem/goodhome/database"
	"github.com/blogem/goodhome/models"
	"github.com/blogem/goodhome/repositories"
	"github.com/blogem/goodhome/services"
)

func newJournalCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect recorded server errors",
	}

	cmd.AddCommand(newJournalListCmd(configPath), newJournalPurgeCmd(configPath))
	return cmd
}

func newJournalListCmd(configPath *string) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent server errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, db, err := openJournal(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := journal.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if records == nil {
					records = []models.ErrorRecord{}
				}
				return enc.Encode(records)
			}

			if len(records) == 0 {
				fmt.Fprintln(out, "no errors recorded")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tSTATUS\tMETHOD\tPATH\tREQUEST ID\tMESSAGE")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
					models.FormatDateTime(r.Timestamp.Local()), r.Status, r.Method, r.Path, r.RequestID, r.Message)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", services.DefaultRecentLimit, "maximum number of errors to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")
	return cmd
}

func newJournalPurgeCmd(configPath *string) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete recorded errors older than a given age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, db, err := openJournal(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			deleted, err := journal.Purge(cmd.Context(), olderThan)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d record(s)\n", deleted)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "delete records older than this age")
	return cmd
}

func openJournal(configPath string) (services.JournalService, *sql.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DatabasePath == "" {
		return nil, nil, errNoDatabase
	}

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return services.NewServices(repositories.NewRepositories(db)).Journal, db, nil
}
