package catalog

import (
	"context"
	"fmt"
	"strings"

	"medspa/internal/model"
	"medspa/internal/store"
	apperrors "medspa/pkg/errors"
	"medspa/pkg/logger"
)

// CatalogService reads the service and staff collections. Both are seeded
// once and otherwise static; there are no update operations.
type CatalogService interface {
	ListServices(ctx context.Context, category string) ([]model.Service, error)
	SearchServices(ctx context.Context, query string) (*SearchResult, error)
	GetService(ctx context.Context, id string) (*model.Service, error)
	ListStaff(ctx context.Context, specialty string) ([]model.StaffMember, error)
	GetStaff(ctx context.Context, id string) (*model.StaffMember, error)
}

// SearchResult is the structured "found or not" answer for voice lookups
// like "I want Botox".
type SearchResult struct {
	Found   bool           `json:"found"`
	Service *model.Service `json:"service,omitempty"`
	Note    string         `json:"note,omitempty"`
	Message string         `json:"message,omitempty"`
}

type catalogService struct {
	store *store.Store
	log   *logger.Logger
}

func NewCatalogService(st *store.Store, log *logger.Logger) CatalogService {
	return &catalogService{store: st, log: log}
}

func (s *catalogService) ListServices(_ context.Context, category string) ([]model.Service, error) {
	services, err := s.store.Services.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load services", err)
	}

	out := make([]model.Service, 0, len(services))
	for _, id := range store.SortedIDs(services) {
		svc := services[id]
		if category != "" && !strings.EqualFold(svc.Category, category) {
			continue
		}
		out = append(out, svc)
	}
	return out, nil
}

// SearchServices matches the query as a case-insensitive substring of the
// service name first, then of the category.
func (s *catalogService) SearchServices(_ context.Context, query string) (*SearchResult, error) {
	services, err := s.store.Services.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load services", err)
	}

	q := strings.ToLower(query)
	ids := store.SortedIDs(services)

	for _, id := range ids {
		svc := services[id]
		if strings.Contains(strings.ToLower(svc.Name), q) {
			return &SearchResult{Found: true, Service: &svc}, nil
		}
	}
	for _, id := range ids {
		svc := services[id]
		if strings.Contains(strings.ToLower(svc.Category), q) {
			return &SearchResult{Found: true, Service: &svc, Note: "Found by category"}, nil
		}
	}

	return &SearchResult{
		Found:   false,
		Message: fmt.Sprintf("No service found matching '%s'", query),
	}, nil
}

func (s *catalogService) GetService(_ context.Context, id string) (*model.Service, error) {
	services, err := s.store.Services.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load services", err)
	}
	svc, ok := services[id]
	if !ok {
		return nil, apperrors.NotFound("Service", id)
	}
	return &svc, nil
}

func (s *catalogService) ListStaff(_ context.Context, specialty string) ([]model.StaffMember, error) {
	staff, err := s.store.Staff.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load staff", err)
	}

	out := make([]model.StaffMember, 0, len(staff))
	for _, id := range store.SortedIDs(staff) {
		member := staff[id]
		if specialty != "" && !member.HasSpecialty(specialty) {
			continue
		}
		out = append(out, member)
	}
	return out, nil
}

func (s *catalogService) GetStaff(_ context.Context, id string) (*model.StaffMember, error) {
	staff, err := s.store.Staff.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load staff", err)
	}
	member, ok := staff[id]
	if !ok {
		return nil, apperrors.NotFound("Staff member", id)
	}
	return &member, nil
}
