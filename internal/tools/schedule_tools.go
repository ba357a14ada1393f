package tools

import (
	"context"
	"fmt"
	"strings"

	"medspa/internal/booking"
	"medspa/internal/model"
)

func (ts *Toolset) registerScheduleTools(r *Registry) {
	r.Register(Tool{
		Name:        "check_availability",
		Description: "Check appointment availability for a specific date.",
		Parameters: map[string]Param{
			"date":     {Type: "string", Description: "Date to check in YYYY-MM-DD format", Required: true},
			"staff_id": {Type: "string", Description: "Optional staff member ID to check specific provider availability"},
		},
		Execute: ts.checkAvailability,
	})

	r.Register(Tool{
		Name:        "get_daily_schedule",
		Description: "Get the complete schedule for a specific date.",
		Parameters: map[string]Param{
			"date": {Type: "string", Description: "Date in YYYY-MM-DD format", Required: true},
		},
		Execute: ts.getDailySchedule,
	})
}

func (ts *Toolset) checkAvailability(ctx context.Context, args map[string]any) (string, error) {
	date := argString(args, "date")

	days, dayName, err := ts.avail.DaySchedules(ctx, date, argString(args, "staff_id"))
	if err != nil {
		return "", err
	}

	if len(days) == 0 {
		return fmt.Sprintf("No staff members available on %ss", dayName), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "AVAILABILITY FOR %s (%s)\n", date, dayName)
	b.WriteString(rule("=", 60))
	b.WriteString("\n")

	for _, day := range days {
		fmt.Fprintf(&b, "%s (%s)\n", day.Member.Name, day.Member.Role)
		fmt.Fprintf(&b, "Working hours: %s - %s\n", day.Member.Hours.Start, day.Member.Hours.End)

		if len(day.Appointments) > 0 {
			fmt.Fprintf(&b, "Scheduled appointments (%d):\n", len(day.Appointments))
			for _, apt := range day.Appointments {
				fmt.Fprintf(&b, "  %s - %s: %s (%s)\n",
					apt.Time, endClock(apt.Time, apt.DurationMinutes), apt.ServiceName, apt.ClientName)
			}
		} else {
			b.WriteString("No appointments scheduled - fully available\n")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (ts *Toolset) getDailySchedule(ctx context.Context, args map[string]any) (string, error) {
	date := argString(args, "date")

	schedule, err := ts.bookings.DailySchedule(ctx, date)
	if err != nil {
		return "", err
	}

	if len(schedule.Appointments) == 0 {
		return fmt.Sprintf("No appointments scheduled for %s", date), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DAILY SCHEDULE - %s\n", schedule.DayLabel)
	b.WriteString(rule("=", 70))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total appointments: %d\n", len(schedule.Appointments))
	fmt.Fprintf(&b, "Expected revenue: %s\n\n", money(schedule.TotalRevenue))
	b.WriteString(rule("-", 70))
	b.WriteString("\n")

	for _, apt := range schedule.Appointments {
		fmt.Fprintf(&b, "%s - %s  [%s]\n", apt.Time, endClock(apt.Time, apt.DurationMinutes), apt.ID)
		fmt.Fprintf(&b, "  Service: %s (%s)\n", apt.ServiceName, money(apt.Price))
		fmt.Fprintf(&b, "  Client: %s (%s)\n", apt.ClientName, apt.ClientID)
		fmt.Fprintf(&b, "  Provider: %s\n", apt.StaffName)
		if apt.Notes != "" {
			fmt.Fprintf(&b, "  Notes: %s\n", apt.Notes)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// staffUpcoming lists a staff member's scheduled appointments in date and
// time order.
func (ts *Toolset) staffUpcoming(ctx context.Context, staffID string) ([]model.Appointment, error) {
	all, err := ts.bookings.List(ctx, booking.ListFilter{Status: model.StatusScheduled})
	if err != nil {
		return nil, err
	}
	out := make([]model.Appointment, 0)
	for _, apt := range all {
		if apt.StaffID == staffID {
			out = append(out, apt)
		}
	}
	return out, nil
}
