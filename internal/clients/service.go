package clients

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"medspa/internal/model"
	"medspa/internal/store"
	apperrors "medspa/pkg/errors"
	"medspa/pkg/logger"
	"medspa/pkg/sanitizer"
)

// ClientService owns client records. Clients are created on first booking
// by a given phone number or explicitly, and never deleted.
type ClientService interface {
	Add(ctx context.Context, client model.Client) (*model.Client, error)
	Get(ctx context.Context, id string) (*model.Client, error)
	List(ctx context.Context, search string) ([]model.Client, error)
	FindByPhone(ctx context.Context, phone string) (*model.Client, error)
	FindOrCreateByPhone(ctx context.Context, name, phone, email string) (*model.Client, bool, error)
	RecordVisit(ctx context.Context, id string, price float64) error
	History(ctx context.Context, id string) ([]model.Appointment, error)
}

type clientService struct {
	store    *store.Store
	validate *validator.Validate
	log      *logger.Logger
}

func NewClientService(st *store.Store, log *logger.Logger) ClientService {
	return &clientService{
		store:    st,
		validate: model.NewValidate(),
		log:      log,
	}
}

func (s *clientService) Add(_ context.Context, client model.Client) (*model.Client, error) {
	client.Name = sanitizer.CleanText(client.Name)
	client.Email = sanitizer.CleanEmail(client.Email)
	client.Phone = sanitizer.CleanPhone(client.Phone)

	if err := s.validate.Struct(client); err != nil {
		return nil, apperrors.InvalidInput("Invalid client record: " + err.Error())
	}

	id, err := s.store.Seq.NextID(store.CollectionClients, store.PrefixClient)
	if err != nil {
		return nil, apperrors.Internal("Failed to allocate client ID", err)
	}

	client.ID = id
	client.CreatedAt = time.Now().Format(time.RFC3339)
	client.TotalVisits = 0
	client.TotalSpent = 0

	err = s.store.Clients.Update(func(records map[string]model.Client) error {
		records[id] = client
		return nil
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to save client", err)
	}

	s.log.Info("Client added", "client_id", id)
	return &client, nil
}

func (s *clientService) Get(_ context.Context, id string) (*model.Client, error) {
	clients, err := s.store.Clients.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load clients", err)
	}
	client, ok := clients[id]
	if !ok {
		return nil, apperrors.NotFound("Client", id)
	}
	return &client, nil
}

// List returns clients sorted by name, optionally filtered by a
// case-insensitive substring of name or email.
func (s *clientService) List(_ context.Context, search string) ([]model.Client, error) {
	clients, err := s.store.Clients.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load clients", err)
	}

	q := strings.ToLower(search)
	out := make([]model.Client, 0, len(clients))
	for _, client := range clients {
		if q != "" &&
			!strings.Contains(strings.ToLower(client.Name), q) &&
			!strings.Contains(strings.ToLower(client.Email), q) {
			continue
		}
		out = append(out, client)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// FindByPhone looks up a client by exact phone equality, the natural dedup
// key. Returns (nil, nil) when no client matches.
func (s *clientService) FindByPhone(_ context.Context, phone string) (*model.Client, error) {
	clients, err := s.store.Clients.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load clients", err)
	}

	for _, id := range store.SortedIDs(clients) {
		client := clients[id]
		if client.Phone == phone {
			return &client, nil
		}
	}
	return nil, nil
}

// FindOrCreateByPhone returns the existing client for a phone number or
// synthesizes a new one with the supplied contact fields and zero
// visit/spend counters. The second result reports whether a record was
// created.
func (s *clientService) FindOrCreateByPhone(_ context.Context, name, phone, email string) (*model.Client, bool, error) {
	var (
		result  model.Client
		created bool
	)

	err := s.store.Clients.Update(func(records map[string]model.Client) error {
		for _, id := range store.SortedIDs(records) {
			if records[id].Phone == phone {
				result = records[id]
				return nil
			}
		}

		id, err := s.store.Seq.NextID(store.CollectionClients, store.PrefixClient)
		if err != nil {
			return err
		}

		result = model.Client{
			ID:        id,
			Name:      name,
			Email:     email,
			Phone:     phone,
			CreatedAt: time.Now().Format(time.RFC3339),
		}
		records[id] = result
		created = true
		return nil
	})
	if err != nil {
		return nil, false, apperrors.Internal("Failed to resolve client", err)
	}

	if created {
		s.log.Info("Client created on booking", "client_id", result.ID)
	}
	return &result, created, nil
}

// RecordVisit bumps the client's aggregate stats after a booking.
func (s *clientService) RecordVisit(_ context.Context, id string, price float64) error {
	err := s.store.Clients.Update(func(records map[string]model.Client) error {
		client, ok := records[id]
		if !ok {
			return apperrors.NotFound("Client", id)
		}
		client.TotalVisits++
		client.TotalSpent += price
		records[id] = client
		return nil
	})
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.Internal("Failed to update client stats", err)
	}
	return nil
}

// History returns the client's appointments, newest first.
func (s *clientService) History(_ context.Context, id string) ([]model.Appointment, error) {
	appointments, err := s.store.Appointments.Load()
	if err != nil {
		return nil, apperrors.Internal("Failed to load appointments", err)
	}

	out := make([]model.Appointment, 0)
	for _, apt := range appointments {
		if apt.ClientID == id {
			out = append(out, apt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}
