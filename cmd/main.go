package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/art12345678655/wellness-mini-app/config"
	"github.com/art12345678655/wellness-mini-app/routes"
	"github.com/art12345678655/wellness-mini-app/services"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "wellness-mini-app",
		Short: "Daily nutrition summary service",
	}
	root.AddCommand(serveCmd(), backfillCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var scheduleDays int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server and the scheduled repair backfill",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()

			hub := services.NewRealtimeHub()

			scheduler := services.NewBackfillScheduler(
				services.NewBackfillService(config.DB),
				config.BackfillCron(),
				scheduleDays,
			)
			if err := scheduler.Start(); err != nil {
				return fmt.Errorf("start backfill scheduler: %w", err)
			}
			defer scheduler.Stop()

			r := routes.SetupRouter(config.DB, hub)
			return r.Run(config.ServerAddr())
		},
	}
	cmd.Flags().IntVar(&scheduleDays, "schedule-days", 2, "days covered by each scheduled backfill run")
	return cmd
}

func backfillCmd() *cobra.Command {
	var userID uint
	var daysBack int

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Re-materialize daily summaries for recent history",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()

			svc := services.NewBackfillService(config.DB)
			report, err := svc.Backfill(context.Background(), userID, daysBack)
			if err != nil {
				return err
			}

			log.Printf("backfill done: %d users, %d days back, %d recomputed",
				report.Users, report.DaysBack, report.Recomputed)
			for _, f := range report.Failures {
				log.Printf("backfill failure: user=%d day=%s: %s", f.UserID, f.Day, f.Error)
			}
			if len(report.Failures) > 0 {
				return fmt.Errorf("%d (user, day) pairs failed; re-issue the run to retry", len(report.Failures))
			}
			return nil
		},
	}
	cmd.Flags().UintVar(&userID, "user", 0, "user to backfill (0 = all users)")
	cmd.Flags().IntVar(&daysBack, "days", 7, "how many days back from today (UTC)")
	return cmd
}
