package tools

import (
	"context"
	"fmt"
	"strings"

	"medspa/internal/booking"
)

func (ts *Toolset) registerAppointmentTools(r *Registry) {
	r.Register(Tool{
		Name:        "create_appointment",
		Description: "Create a new appointment for a client.",
		Parameters: map[string]Param{
			"client_id":  {Type: "string", Description: "Client ID (e.g., 'CL0001')", Required: true},
			"service_id": {Type: "string", Description: "Service ID (e.g., 'SVC001')", Required: true},
			"staff_id":   {Type: "string", Description: "Staff member ID (e.g., 'STF001')", Required: true},
			"date":       {Type: "string", Description: "Appointment date in YYYY-MM-DD format", Required: true},
			"time":       {Type: "string", Description: "Appointment time in HH:MM format (24-hour)", Required: true},
			"notes":      {Type: "string", Description: "Optional notes for the appointment"},
		},
		Execute: ts.createAppointment,
	})

	r.Register(Tool{
		Name:        "list_appointments",
		Description: "List appointments with optional date, client and status filters.",
		Parameters: map[string]Param{
			"date":      {Type: "string", Description: "Filter by date (YYYY-MM-DD). Omit to show all dates"},
			"client_id": {Type: "string", Description: "Filter by client ID"},
			"status":    {Type: "string", Description: "Filter by status (scheduled, completed, cancelled, no-show)"},
		},
		Execute: ts.listAppointments,
	})

	r.Register(Tool{
		Name:        "update_appointment_status",
		Description: "Update the status of an appointment.",
		Parameters: map[string]Param{
			"appointment_id": {Type: "string", Description: "Appointment ID (e.g., 'APT0001')", Required: true},
			"status":         {Type: "string", Description: "New status (scheduled, completed, cancelled, no-show)", Required: true},
			"notes":          {Type: "string", Description: "Optional notes to add"},
		},
		Execute: ts.updateAppointmentStatus,
	})

	r.Register(Tool{
		Name:        "cancel_appointment",
		Description: "Cancel an appointment.",
		Parameters: map[string]Param{
			"appointment_id": {Type: "string", Description: "Appointment ID to cancel", Required: true},
			"reason":         {Type: "string", Description: "Optional cancellation reason"},
		},
		Execute: ts.cancelAppointment,
	})
}

func (ts *Toolset) createAppointment(ctx context.Context, args map[string]any) (string, error) {
	apt, err := ts.bookings.CreateAppointment(ctx,
		argString(args, "client_id"),
		argString(args, "service_id"),
		argString(args, "staff_id"),
		argString(args, "date"),
		argString(args, "time"),
		argString(args, "notes"),
	)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"✓ Appointment created successfully!\n\nID: %s\nClient: %s\nService: %s\nProvider: %s\nDate: %s at %s\nDuration: %d minutes\nPrice: %s",
		apt.ID, apt.ClientName, apt.ServiceName, apt.StaffName,
		apt.Date, apt.Time, apt.DurationMinutes, money(apt.Price),
	), nil
}

func (ts *Toolset) listAppointments(ctx context.Context, args map[string]any) (string, error) {
	filter := booking.ListFilter{
		Date:     argString(args, "date"),
		ClientID: argString(args, "client_id"),
		Status:   argString(args, "status"),
	}

	appointments, err := ts.bookings.List(ctx, filter)
	if err != nil {
		return "", err
	}

	if len(appointments) == 0 {
		if filter.Date == "" && filter.ClientID == "" && filter.Status == "" {
			return "No appointments found.", nil
		}
		return "No appointments found matching the criteria.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d appointment(s):\n\n", len(appointments))
	for _, apt := range appointments {
		fmt.Fprintf(&b, "[%s] %s at %s\n", apt.ID, apt.Date, apt.Time)
		fmt.Fprintf(&b, "  Client: %s (%s)\n", apt.ClientName, apt.ClientID)
		fmt.Fprintf(&b, "  Service: %s\n", apt.ServiceName)
		fmt.Fprintf(&b, "  Provider: %s\n", apt.StaffName)
		fmt.Fprintf(&b, "  Duration: %d min | Price: %s\n", apt.DurationMinutes, money(apt.Price))
		fmt.Fprintf(&b, "  Status: %s\n", strings.ToUpper(apt.Status))
		if apt.Notes != "" {
			fmt.Fprintf(&b, "  Notes: %s\n", apt.Notes)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (ts *Toolset) updateAppointmentStatus(ctx context.Context, args map[string]any) (string, error) {
	status := argString(args, "status")
	apt, err := ts.bookings.SetStatus(ctx, argString(args, "appointment_id"), status, argString(args, "notes"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✓ Appointment %s status updated to: %s", apt.ID, strings.ToUpper(status)), nil
}

func (ts *Toolset) cancelAppointment(ctx context.Context, args map[string]any) (string, error) {
	apt, err := ts.bookings.Cancel(ctx, argString(args, "appointment_id"), argString(args, "reason"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✓ Appointment %s status updated to: CANCELLED", apt.ID), nil
}
