package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"medspa/internal/model"
)

func (ts *Toolset) registerCatalogTools(r *Registry) {
	r.Register(Tool{
		Name:        "list_services",
		Description: "List all available services with prices and details.",
		Parameters: map[string]Param{
			"category": {Type: "string", Description: "Optional category filter (Injectables, Facials, Laser Treatments, etc.)"},
		},
		Execute: ts.listServices,
	})

	r.Register(Tool{
		Name:        "get_service",
		Description: "Get detailed information about a specific service.",
		Parameters: map[string]Param{
			"service_id": {Type: "string", Description: "Service ID (e.g., 'SVC001')", Required: true},
		},
		Execute: ts.getService,
	})

	r.Register(Tool{
		Name:        "list_staff",
		Description: "List all staff members.",
		Parameters: map[string]Param{
			"specialty": {Type: "string", Description: "Optional filter by specialty (Injectables, Facials, etc.)"},
		},
		Execute: ts.listStaff,
	})

	r.Register(Tool{
		Name:        "get_staff",
		Description: "Get detailed information about a staff member, including upcoming appointments.",
		Parameters: map[string]Param{
			"staff_id": {Type: "string", Description: "Staff ID (e.g., 'STF001')", Required: true},
		},
		Execute: ts.getStaff,
	})
}

func (ts *Toolset) listServices(ctx context.Context, args map[string]any) (string, error) {
	category := argString(args, "category")

	services, err := ts.catalog.ListServices(ctx, category)
	if err != nil {
		return "", err
	}

	if len(services) == 0 {
		if category != "" {
			return fmt.Sprintf("No services found in category '%s'", category), nil
		}
		return "No services found.", nil
	}

	byCategory := make(map[string][]model.Service)
	for _, svc := range services {
		byCategory[svc.Category] = append(byCategory[svc.Category], svc)
	}
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("AVAILABLE SERVICES\n")
	b.WriteString(rule("=", 60))
	b.WriteString("\n")

	for _, cat := range categories {
		b.WriteString(strings.ToUpper(cat) + "\n")
		b.WriteString(rule("-", 60))
		group := byCategory[cat]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		for _, svc := range group {
			fmt.Fprintf(&b, "\n[%s] %s\n", svc.ID, svc.Name)
			fmt.Fprintf(&b, "  Price: %s | Duration: %d minutes\n", money(svc.Price), svc.DurationMinutes)
			fmt.Fprintf(&b, "  %s\n", svc.Description)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (ts *Toolset) getService(ctx context.Context, args map[string]any) (string, error) {
	svc, err := ts.catalog.GetService(ctx, argString(args, "service_id"))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("SERVICE DETAILS\n")
	b.WriteString(rule("=", 50))
	b.WriteString("\n")
	fmt.Fprintf(&b, "ID: %s\n", svc.ID)
	fmt.Fprintf(&b, "Name: %s\n", svc.Name)
	fmt.Fprintf(&b, "Category: %s\n", svc.Category)
	fmt.Fprintf(&b, "Price: %s\n", money(svc.Price))
	fmt.Fprintf(&b, "Duration: %d minutes\n", svc.DurationMinutes)
	fmt.Fprintf(&b, "Description: %s\n", svc.Description)
	return b.String(), nil
}

func (ts *Toolset) listStaff(ctx context.Context, args map[string]any) (string, error) {
	specialty := argString(args, "specialty")

	staff, err := ts.catalog.ListStaff(ctx, specialty)
	if err != nil {
		return "", err
	}

	if len(staff) == 0 {
		if specialty != "" {
			return fmt.Sprintf("No staff members found with specialty '%s'", specialty), nil
		}
		return "No staff members found.", nil
	}

	sort.Slice(staff, func(i, j int) bool { return staff[i].Name < staff[j].Name })

	var b strings.Builder
	fmt.Fprintf(&b, "STAFF DIRECTORY (%d members)\n", len(staff))
	b.WriteString(rule("=", 60))
	b.WriteString("\n")

	for _, member := range staff {
		fmt.Fprintf(&b, "[%s] %s\n", member.ID, member.Name)
		fmt.Fprintf(&b, "  Role: %s\n", member.Role)
		fmt.Fprintf(&b, "  Specialties: %s\n", strings.Join(member.Specialties, ", "))
		fmt.Fprintf(&b, "  Available: %s\n", strings.Join(member.AvailableDays, ", "))
		fmt.Fprintf(&b, "  Hours: %s - %s\n\n", member.Hours.Start, member.Hours.End)
	}
	return b.String(), nil
}

func (ts *Toolset) getStaff(ctx context.Context, args map[string]any) (string, error) {
	id := argString(args, "staff_id")

	member, err := ts.catalog.GetStaff(ctx, id)
	if err != nil {
		return "", err
	}

	upcoming, err := ts.staffUpcoming(ctx, id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "STAFF PROFILE: %s\n", member.Name)
	b.WriteString(rule("=", 50))
	b.WriteString("\n")
	fmt.Fprintf(&b, "ID: %s\n", member.ID)
	fmt.Fprintf(&b, "Role: %s\n", member.Role)
	fmt.Fprintf(&b, "Specialties: %s\n", strings.Join(member.Specialties, ", "))
	fmt.Fprintf(&b, "Available Days: %s\n", strings.Join(member.AvailableDays, ", "))
	fmt.Fprintf(&b, "Working Hours: %s - %s\n", member.Hours.Start, member.Hours.End)

	if len(upcoming) > 0 {
		fmt.Fprintf(&b, "\n\nUPCOMING APPOINTMENTS (%d):\n", len(upcoming))
		b.WriteString(rule("-", 50))
		shown := upcoming
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, apt := range shown {
			fmt.Fprintf(&b, "\n%s at %s - %s\n", apt.Date, apt.Time, apt.ServiceName)
			fmt.Fprintf(&b, "  Client: %s\n", apt.ClientName)
			fmt.Fprintf(&b, "  Duration: %d min\n", apt.DurationMinutes)
		}
	}

	return b.String(), nil
}
