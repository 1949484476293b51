package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/intrack/internal/calendar"
)

var calendarPushDryRun bool

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Outlook calendar integration",
}

var calendarPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Create or update Outlook events for task deadlines",
	Args:  cobra.NoArgs,
	RunE:  runCalendarPush,
}

func init() {
	calendarPushCmd.Flags().BoolVar(&calendarPushDryRun, "dry-run", false, "Print planned operations without writing")
	calendarCmd.AddCommand(calendarPushCmd)
}

func runCalendarPush(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	dryTag := ""
	if calendarPushDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Pushing task deadlines to Outlook%s...\n", dryTag)
	fmt.Println()

	ctx := context.Background()

	// A dry run never writes, so it needs no sign-in.
	var writer calendar.EventWriter
	if !calendarPushDryRun {
		tok, oc, err := calendar.Authenticate(ctx, base, cfg.Calendar.TenantID, cfg.Calendar.ClientID, os.Stdout, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
			os.Exit(1)
		}
		writer = calendar.NewClient(ctx, base, tok, oc, logger)
	}

	opts := calendar.PushOptions{
		DryRun:          calendarPushDryRun,
		Timezone:        cfg.Calendar.Timezone,
		ReminderMinutes: cfg.Calendar.ReminderMinutes,
	}
	result, pushErr := calendar.Push(ctx, s.tracker, writer, opts, os.Stdout, logger)

	// Record the event IDs that were created before any failure.
	if err := s.save(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if pushErr != nil {
		fmt.Fprintf(os.Stderr, "Push error: %v\n", pushErr)
		os.Exit(2)
	}

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d created\n", result.Created)
	fmt.Printf("  %d updated\n", result.Updated)
	fmt.Printf("  %d skipped\n", result.Skipped)
	if result.Errors > 0 {
		fmt.Printf("  %d errors\n", result.Errors)
		os.Exit(2)
	}
	return nil
}
