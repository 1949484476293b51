// Package calendar mirrors task deadlines into an Outlook calendar through
// Microsoft Graph.
package calendar

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Tiliavir/intrack/internal/model"
)

// EventWriter creates and updates calendar events. *Client implements it.
type EventWriter interface {
	CreateEvent(ctx context.Context, ev Event) (string, error)
	UpdateEvent(ctx context.Context, id string, ev Event) error
}

// PushResult holds counters for a push run.
type PushResult struct {
	Created int
	Updated int
	Skipped int
	Errors  int
}

// PushOptions configures a push run.
type PushOptions struct {
	DryRun          bool
	Timezone        string
	ReminderMinutes int
}

// Category tags every event intrack creates.
const Category = "Internship"

// MapTaskToEvent builds the all-day event for a task deadline. The task
// must have a deadline.
func MapTaskToEvent(in model.Internship, task model.Task, opts PushOptions) Event {
	tz := opts.Timezone
	if tz == "" {
		tz = "UTC"
	}
	day := task.Deadline.Time()
	next := day.AddDate(0, 0, 1)
	const layout = "2006-01-02T15:04:05"

	return Event{
		Subject: fmt.Sprintf("%s – %s (%s)", task.Name, in.CompanyName, in.Role),
		Body: ItemBody{
			ContentType: "text",
			Content: fmt.Sprintf("Deadline for %q\nCompany: %s\nRole: %s\nStatus: %s",
				task.Name, in.CompanyName, in.Role, in.ApplicationStatus),
		},
		Start:                      DateTimeZone{DateTime: day.Format(layout), TimeZone: tz},
		End:                        DateTimeZone{DateTime: next.Format(layout), TimeZone: tz},
		IsAllDay:                   true,
		ShowAs:                     "free",
		IsReminderOn:               opts.ReminderMinutes > 0,
		ReminderMinutesBeforeStart: opts.ReminderMinutes,
		Categories:                 []string{Category},
	}
}

// Push creates or updates one event per task deadline and records the event
// IDs on the tasks through m. Progress lines are written to out.
func Push(ctx context.Context, m model.Model, w EventWriter, opts PushOptions, out io.Writer, log *zap.Logger) (PushResult, error) {
	var result PushResult

	for _, in := range m.Internships() {
		changed := false
		for i := range in.Tasks {
			task := &in.Tasks[i]
			if task.Deadline == nil {
				continue
			}
			label := fmt.Sprintf("%s: %s (%s)", in.CompanyName, task.Name, task.Deadline)
			ev := MapTaskToEvent(in, *task, opts)

			switch {
			case task.CalendarEventID == "":
				if !opts.DryRun {
					id, err := w.CreateEvent(ctx, ev)
					if err != nil {
						fmt.Fprintf(out, "  ! Error creating %s: %v\n", label, err)
						log.Warn("create event failed", zap.String("task", task.Name), zap.Error(err))
						result.Errors++
						continue
					}
					task.CalendarEventID = id
					task.CalendarDeadline = task.Deadline.String()
					changed = true
				}
				fmt.Fprintf(out, "  ✓ Created:  %s\n", label)
				result.Created++

			case task.CalendarDeadline != task.Deadline.String():
				if !opts.DryRun {
					if err := w.UpdateEvent(ctx, task.CalendarEventID, ev); err != nil {
						fmt.Fprintf(out, "  ! Error updating %s: %v\n", label, err)
						log.Warn("update event failed", zap.String("task", task.Name), zap.Error(err))
						result.Errors++
						continue
					}
					task.CalendarDeadline = task.Deadline.String()
					changed = true
				}
				fmt.Fprintf(out, "  ↑ Updated:  %s\n", label)
				result.Updated++

			default:
				fmt.Fprintf(out, "  – Skipped:  %s (up to date)\n", label)
				result.Skipped++
			}
		}

		if changed {
			if err := m.SetInternship(in.ID, in); err != nil {
				return result, fmt.Errorf("recording calendar events for %s: %w", in.CompanyName, err)
			}
		}
	}
	return result, nil
}
