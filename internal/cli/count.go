package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Hari-prashath-123/art-finity/internal/config"
	"github.com/Hari-prashath-123/art-finity/internal/registrations"
	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

type countOptions struct {
	sheet   string
	gid     string
	baseURL string
	timeout time.Duration
	output  string
	debug   bool
}

func newCountCmd() *cobra.Command {
	var opts countOptions

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Fetch the registration count once",
		Long: `Read the registration spreadsheet once and print the widget snapshot.

Defaults come from REGISTRATION_SHEET_ID and REGISTRATION_SHEET_GID. The
command fails when the fetch ends in the error state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sheet") {
				cfg.Registration.SheetID = opts.sheet
			}
			if cmd.Flags().Changed("gid") {
				cfg.Registration.GID = opts.gid
			}
			if opts.baseURL != "" {
				cfg.Registration.BaseURL = opts.baseURL
			}
			if opts.timeout > 0 {
				cfg.Registration.Timeout = opts.timeout
			}

			log := logger.Discard()
			if opts.debug {
				log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			snap := fetchSnapshot(cmd.Context(), cfg, log)
			if err := printSnapshot(cmd.OutOrStdout(), opts.output, snap); err != nil {
				return err
			}
			if snap.State == registrations.StateError {
				return errors.New(snap.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "spreadsheet id (default REGISTRATION_SHEET_ID)")
	cmd.Flags().StringVar(&opts.gid, "gid", "", "sub-sheet id (default REGISTRATION_SHEET_GID)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "spreadsheet host (default REGISTRATION_BASE_URL)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (default REGISTRATION_TIMEOUT)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log the fetch to stderr")

	return cmd
}

// fetchSnapshot mounts a poller, waits for its single fetch and unmounts.
func fetchSnapshot(ctx context.Context, cfg *config.Config, log *slog.Logger) registrations.Snapshot {
	poller := registrations.NewPoller(registrations.NewClient(cfg, log), log)
	poller.Mount(ctx, registrations.Params{SheetID: cfg.Registration.SheetID, GID: cfg.Registration.GID})
	poller.Wait()
	poller.Unmount()

	return poller.Snapshot()
}

func printSnapshot(w io.Writer, format string, snap registrations.Snapshot) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "table", "":
		table := tablewriter.NewWriter(w)
		table.Header("Teams Registered", "State", "Updated")
		table.Append(snap.Display(), string(snap.State), snap.UpdatedAt.Format(time.RFC3339))
		if err := table.Render(); err != nil {
			return err
		}
		if snap.Error != "" {
			fmt.Fprintln(w, snap.Error)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
