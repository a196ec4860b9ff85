package cli

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/friber/move-to-go/internal/client"
	"github.com/friber/move-to-go/internal/client/limego"
	"github.com/friber/move-to-go/internal/repository"
	"github.com/friber/move-to-go/internal/service"
)

// openService opens the store and builds a SyncService. The sender is only built when a
// token is configured.
func (a *app) openService() (*service.SyncService, *sql.DB, error) {
	db, err := repository.InitDB(a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	var sender client.PayloadSender
	if a.cfg.Token != "" {
		sender = limego.NewClient(a.cfg.RemoteURL, a.cfg.Token)
	}

	svc := service.NewSyncService(
		sender,
		repository.NewSyncRunRepository(db),
		repository.NewEntitySyncRepository(db),
		a.cfg.FingerprintTTL,
		a.log,
	)
	return svc, db, nil
}

func (a *app) pushCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Push the entities of an import document to the remote CRM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireRemote(); err != nil {
				return err
			}
			result, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			svc, db, err := a.openService()
			if err != nil {
				return err
			}
			defer db.Close()

			if source == "" {
				source = args[0]
			}
			run, err := svc.Push(cmd.Context(), source, result.Entities())
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), run)
			}
			renderRuns(cmd, []repository.SyncRun{run})
			if run.Status != repository.RunStatusCompleted {
				return fmt.Errorf("run %s finished with status %s, see 'move-to-go runs %s'", run.ID, run.Status, run.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "label stored with the run (defaults to the file name)")
	return cmd
}

func (a *app) runsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "List sync runs, or show the entities of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, db, err := a.openService()
			if err != nil {
				return err
			}
			defer db.Close()

			if len(args) == 0 {
				runs, err := svc.ListRuns(limit)
				if err != nil {
					return err
				}
				if a.jsonOutput() {
					return printJSON(cmd.OutOrStdout(), runs)
				}
				renderRuns(cmd, runs)
				return nil
			}

			run, err := svc.GetRun(args[0])
			if err != nil {
				return err
			}
			entities, err := svc.RunEntities(run.ID)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), map[string]any{"run": run, "entities": entities})
			}
			renderRuns(cmd, []repository.SyncRun{run})
			renderEntitySyncs(cmd, entities)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list (0 for all)")
	return cmd
}

func renderRuns(cmd *cobra.Command, runs []repository.SyncRun) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"ID", "Source", "Status", "Total", "Sent", "Failed", "Skipped", "Started", "Duration"})
	for _, r := range runs {
		duration := "-"
		if r.CompletedAt != nil {
			duration = r.CompletedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
		}
		tw.AppendRow(table.Row{
			r.ID, r.Source, r.Status, r.Total, r.Succeeded, r.Failed, r.Skipped,
			humanize.Time(r.StartedAt), duration,
		})
	}
	tw.Render()
}

func renderEntitySyncs(cmd *cobra.Command, syncs []repository.EntitySync) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"Type", "Integration ID", "Status", "Remote ID", "Message"})
	for _, s := range syncs {
		msg, _, _ := strings.Cut(s.Message, "\n")
		tw.AppendRow(table.Row{s.TypeName, s.IntegrationID, s.Status, s.RemoteID, msg})
	}
	tw.Render()
}
