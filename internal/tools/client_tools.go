package tools

import (
	"context"
	"fmt"
	"strings"

	"medspa/internal/model"
)

func (ts *Toolset) registerClientTools(r *Registry) {
	r.Register(Tool{
		Name:        "add_client",
		Description: "Add a new client to the system.",
		Parameters: map[string]Param{
			"name":              {Type: "string", Description: "Client's full name", Required: true},
			"email":             {Type: "string", Description: "Client's email address", Required: true},
			"phone":             {Type: "string", Description: "Client's phone number", Required: true},
			"date_of_birth":     {Type: "string", Description: "Date of birth (YYYY-MM-DD)", Required: true},
			"address":           {Type: "string", Description: "Optional physical address"},
			"emergency_contact": {Type: "string", Description: "Optional emergency contact info"},
			"medical_notes":     {Type: "string", Description: "Optional medical history or allergies"},
		},
		Execute: ts.addClient,
	})

	r.Register(Tool{
		Name:        "get_client",
		Description: "Get detailed information about a client, including appointment history.",
		Parameters: map[string]Param{
			"client_id": {Type: "string", Description: "Client ID (e.g., 'CL0001')", Required: true},
		},
		Execute: ts.getClient,
	})

	r.Register(Tool{
		Name:        "list_clients",
		Description: "List all clients or search by name/email.",
		Parameters: map[string]Param{
			"search": {Type: "string", Description: "Optional search term to filter clients by name or email"},
		},
		Execute: ts.listClients,
	})
}

func (ts *Toolset) addClient(ctx context.Context, args map[string]any) (string, error) {
	client, err := ts.clients.Add(ctx, model.Client{
		Name:             argString(args, "name"),
		Email:            argString(args, "email"),
		Phone:            argString(args, "phone"),
		DateOfBirth:      argString(args, "date_of_birth"),
		Address:          argString(args, "address"),
		EmergencyContact: argString(args, "emergency_contact"),
		MedicalNotes:     argString(args, "medical_notes"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"✓ Client added successfully!\n\nID: %s\nName: %s\nEmail: %s\nPhone: %s",
		client.ID, client.Name, client.Email, client.Phone,
	), nil
}

func (ts *Toolset) getClient(ctx context.Context, args map[string]any) (string, error) {
	id := argString(args, "client_id")

	client, err := ts.clients.Get(ctx, id)
	if err != nil {
		return "", err
	}
	history, err := ts.clients.History(ctx, id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CLIENT PROFILE: %s\n", client.Name)
	b.WriteString(rule("=", 50))
	b.WriteString("\n")
	fmt.Fprintf(&b, "ID: %s\n", client.ID)
	fmt.Fprintf(&b, "Email: %s\n", client.Email)
	fmt.Fprintf(&b, "Phone: %s\n", client.Phone)
	fmt.Fprintf(&b, "Date of Birth: %s\n", client.DateOfBirth)

	if client.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", client.Address)
	}
	if client.EmergencyContact != "" {
		fmt.Fprintf(&b, "Emergency Contact: %s\n", client.EmergencyContact)
	}
	if client.MedicalNotes != "" {
		fmt.Fprintf(&b, "Medical Notes: %s\n", client.MedicalNotes)
	}

	since := client.CreatedAt
	if len(since) > 10 {
		since = since[:10]
	}
	fmt.Fprintf(&b, "\nTotal Visits: %d\n", client.TotalVisits)
	fmt.Fprintf(&b, "Total Spent: %s\n", money(client.TotalSpent))
	fmt.Fprintf(&b, "Client Since: %s\n", since)

	if len(history) > 0 {
		fmt.Fprintf(&b, "\n\nAPPOINTMENT HISTORY (%d total):\n", len(history))
		b.WriteString(rule("-", 50))
		recent := history
		if len(recent) > 5 {
			recent = recent[:5]
		}
		for _, apt := range recent {
			fmt.Fprintf(&b, "\n%s - %s\n", apt.Date, apt.ServiceName)
			fmt.Fprintf(&b, "  Provider: %s\n", apt.StaffName)
			fmt.Fprintf(&b, "  Status: %s\n", strings.ToUpper(apt.Status))
		}
	}

	return b.String(), nil
}

func (ts *Toolset) listClients(ctx context.Context, args map[string]any) (string, error) {
	search := argString(args, "search")

	list, err := ts.clients.List(ctx, search)
	if err != nil {
		return "", err
	}

	if len(list) == 0 {
		if search == "" {
			return "No clients found.", nil
		}
		return fmt.Sprintf("No clients found matching '%s'", search), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d client(s):\n\n", len(list))
	for _, client := range list {
		fmt.Fprintf(&b, "[%s] %s\n", client.ID, client.Name)
		fmt.Fprintf(&b, "  Email: %s | Phone: %s\n", client.Email, client.Phone)
		fmt.Fprintf(&b, "  Visits: %d | Total Spent: %s\n\n", client.TotalVisits, money(client.TotalSpent))
	}
	return b.String(), nil
}
