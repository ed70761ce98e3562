package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jiundev/gongmo/internal/calendar"
	"github.com/jiundev/gongmo/internal/logger"
	"github.com/jiundev/gongmo/internal/publisher"
	"github.com/jiundev/gongmo/internal/scraper"
)

// runPipeline is the default command: collect, then sync every derived
// event into the calendar.
func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	counters := logger.NewCounters()

	records, err := scraper.NewCollector(cfg).Collect()
	if err != nil {
		return fmt.Errorf("collecting schedules: %w", err)
	}
	counters.Add("collected", int64(len(records)))

	for i, rec := range records {
		logger.Info("collected schedule", logger.Fields{"index": i + 1, "schedule": rec.String()})
	}

	if len(records) == 0 {
		logger.Warn("no schedules collected", nil)
		return finish(counters)
	}

	if flagDryRun {
		logger.Info("dry run, skipping calendar sync", nil)
		return finish(counters)
	}

	client, err := newCalendarClient(cfg)
	if err != nil {
		return err
	}

	info, err := client.GetCalendarInfo()
	if err != nil {
		return fmt.Errorf("connecting to calendar: %w", err)
	}
	logger.Info("calendar connected", logger.Fields{"calendar": info.Summary})

	for _, rec := range records {
		tally(counters, client.SyncSchedule(rec))
	}

	return finish(counters)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Collect IPO schedules and sync them to the calendar",
		RunE:  runPipeline,
	}
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Collect only, skip calendar sync")
	return cmd
}

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming synced IPO events",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			client, err := newCalendarClient(cfg)
			if err != nil {
				return err
			}

			events, err := client.ListUpcoming(limit)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("등록된 공모주 이벤트가 없습니다.")
				return nil
			}

			fmt.Printf("다가오는 공모주 일정 (%d건):\n", len(events))
			for _, ev := range events {
				fmt.Printf("  - [%s] %s\n", ev.Start, ev.Title)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of events to list")
	return cmd
}

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Check calendar authentication status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			if calendar.CheckAuth(cfg) {
				fmt.Println("캘린더 인증 완료 상태입니다.")
				return nil
			}
			fmt.Println("캘린더 인증이 필요합니다.")
			fmt.Printf("토큰을 %s 환경변수로 지정하거나 %s 파일에 저장하세요.\n",
				"GONGMO_CALENDAR_TOKEN", cfg.TokenFile)
			return nil
		},
	}
}

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Generate static site data and push to the git remote",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			records, err := scraper.NewCollector(cfg).Collect()
			if err != nil {
				return fmt.Errorf("collecting schedules: %w", err)
			}

			if len(records) == 0 {
				logger.Warn("no schedules collected, skipping publish", nil)
				return nil
			}

			gen, err := publisher.NewGenerator(cfg.OutputDir, cfg.SiteURL)
			if err != nil {
				return err
			}

			dataPath, err := gen.Generate(records)
			if err != nil {
				return fmt.Errorf("generating site data: %w", err)
			}
			logger.Info("site data written", logger.Fields{"path": dataPath})

			if flagNoPush {
				logger.Info("push skipped (--no-push)", nil)
				return nil
			}

			message := fmt.Sprintf("Update IPO data (%d건) - %s", len(records), time.Now().Format("2006-01-02 15:04"))
			pushed, err := publisher.NewGitPublisher(".", cfg.GitRemote, cfg.GitBranch).Publish(message)
			if err != nil {
				return fmt.Errorf("publishing: %w", err)
			}
			if !pushed {
				logger.Info("nothing to push", nil)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagNoPush, "no-push", false, "Generate artifacts without pushing")
	return cmd
}

func newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup [company]",
		Short: "Delete bot-created events (all, or one company's)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			client, err := newCalendarClient(cfg)
			if err != nil {
				return err
			}

			counters := logger.NewCounters()
			if len(args) == 1 {
				logger.Info("cleaning up company events", logger.Fields{"company": args[0]})
				tally(counters, client.CleanupCompany(args[0]))
			} else {
				logger.Info("cleaning up all events", nil)
				tally(counters, client.CleanupAll())
			}

			return finish(counters)
		},
	}
}

func newResyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resync",
		Short: "Delete all bot events, re-collect and re-create",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			client, err := newCalendarClient(cfg)
			if err != nil {
				return err
			}

			counters := logger.NewCounters()

			logger.Info("clearing existing events", nil)
			tally(counters, client.CleanupAll())

			records, err := scraper.NewCollector(cfg).Collect()
			if err != nil {
				return fmt.Errorf("collecting schedules: %w", err)
			}
			counters.Add("collected", int64(len(records)))

			for _, rec := range records {
				tally(counters, client.SyncSchedule(rec))
			}

			return finish(counters)
		},
	}
}
