package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	catalogrepo "greenscape_backend/internal/catalog/repository"
	"greenscape_backend/internal/events"
	"greenscape_backend/internal/leads/domain"
	"greenscape_backend/internal/leads/repository"
	"greenscape_backend/internal/leads/transport"
	"greenscape_backend/platform/apperr"
	"greenscape_backend/platform/logger"
)

type fakeRepo struct {
	leads  map[uuid.UUID]repository.Lead
	lastID uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{leads: make(map[uuid.UUID]repository.Lead)}
}

func (f *fakeRepo) CreateLead(_ context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	now := time.Now().Format(time.RFC3339)
	lead := repository.Lead{
		ID:             uuid.New(),
		Name:           params.Name,
		Email:          params.Email,
		Phone:          params.Phone,
		Address:        params.Address,
		City:           params.City,
		Zip:            params.Zip,
		ServiceID:      params.ServiceID,
		LocationID:     params.LocationID,
		Tier:           params.Tier,
		Frequency:      params.Frequency,
		LotSizeBracket: params.LotSizeBracket,
		Notes:          params.Notes,
		Score:          params.Score,
		Status:         domain.StatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.leads[lead.ID] = lead
	f.lastID = lead.ID
	return lead, nil
}

func (f *fakeRepo) GetLeadByID(_ context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	return lead, nil
}

func (f *fakeRepo) ListLeads(_ context.Context, params repository.ListLeadsParams) ([]repository.Lead, int, error) {
	var out []repository.Lead
	for _, lead := range f.leads {
		if params.Status != nil && lead.Status != *params.Status {
			continue
		}
		if params.MinScore != nil && lead.Score < *params.MinScore {
			continue
		}
		out = append(out, lead)
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateLeadStatus(_ context.Context, id uuid.UUID, status domain.LeadStatus) (repository.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	lead.Status = status
	f.leads[id] = lead
	return lead, nil
}

type fakeCatalog struct {
	services  map[uuid.UUID]catalogrepo.Service
	locations map[uuid.UUID]catalogrepo.Location
}

func (f *fakeCatalog) GetServiceByID(_ context.Context, id uuid.UUID) (catalogrepo.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return catalogrepo.Service{}, apperr.NotFound("service not found")
	}
	return svc, nil
}

func (f *fakeCatalog) GetLocationByID(_ context.Context, id uuid.UUID) (catalogrepo.Location, error) {
	loc, ok := f.locations[id]
	if !ok {
		return catalogrepo.Location{}, apperr.NotFound("location not found")
	}
	return loc, nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func newTestService(repo *fakeRepo, catalog *fakeCatalog, bus *recordingBus) *Service {
	return New(repo, catalog, bus, logger.New("test"))
}

func TestSubmitScoresAndPersists(t *testing.T) {
	serviceID := uuid.New()
	locationID := uuid.New()
	catalog := &fakeCatalog{
		services:  map[uuid.UUID]catalogrepo.Service{serviceID: {ID: serviceID, Name: "Lawn Mowing"}},
		locations: map[uuid.UUID]catalogrepo.Location{locationID: {ID: locationID, Name: "Maplewood"}},
	}
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := newTestService(repo, catalog, bus)

	got, err := svc.Submit(context.Background(), transport.SubmitLeadRequest{
		Name:       "Pat Jensen",
		Email:      "pat@example.com",
		Phone:      "(612) 555-0100",
		Address:    "123 Elm St",
		City:       "Maplewood",
		Zip:        "55109",
		ServiceID:  &serviceID,
		LocationID: &locationID,
		Tier:       "better",
		Frequency:  "biweekly",
		Notes:      "Gate code is 4417, dog stays inside.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Score != 95 {
		t.Errorf("expected score 95, got %d", got.Score)
	}
	if got.Status != string(domain.StatusNew) {
		t.Errorf("expected status new, got %s", got.Status)
	}
	if got.Phone != "+16125550100" {
		t.Errorf("expected normalized phone, got %q", got.Phone)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	submitted, ok := bus.published[0].(events.LeadSubmitted)
	if !ok {
		t.Fatalf("expected LeadSubmitted, got %T", bus.published[0])
	}
	if submitted.Score != 95 || submitted.ServiceName != "Lawn Mowing" || submitted.LocationName != "Maplewood" {
		t.Errorf("unexpected event payload: %+v", submitted)
	}
}

func TestSubmitUnknownServiceRejected(t *testing.T) {
	unknown := uuid.New()
	svc := newTestService(newFakeRepo(), &fakeCatalog{services: map[uuid.UUID]catalogrepo.Service{}}, &recordingBus{})

	_, err := svc.Submit(context.Background(), transport.SubmitLeadRequest{
		Name:      "Pat",
		Email:     "pat@example.com",
		Phone:     "+16125550100",
		Address:   "123 Elm St",
		ServiceID: &unknown,
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitStripsHTML(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeCatalog{}, &recordingBus{})

	got, err := svc.Submit(context.Background(), transport.SubmitLeadRequest{
		Name:    "Pat <b>Jensen</b>",
		Email:   "pat@example.com",
		Phone:   "+16125550100",
		Address: "123 Elm St",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Pat Jensen" {
		t.Errorf("expected sanitized name, got %q", got.Name)
	}
}

func TestPreviewScoreMatchesSubmitScore(t *testing.T) {
	serviceID := uuid.New()
	catalog := &fakeCatalog{services: map[uuid.UUID]catalogrepo.Service{serviceID: {ID: serviceID, Name: "Aeration"}}}
	repo := newFakeRepo()
	svc := newTestService(repo, catalog, &recordingBus{})

	preview := svc.PreviewScore(transport.PreviewScoreRequest{
		Email:     "pat@example.com",
		Phone:     "+16125550100",
		Address:   "123 Elm St",
		ServiceID: &serviceID,
		Tier:      "good",
	})

	submitted, err := svc.Submit(context.Background(), transport.SubmitLeadRequest{
		Name:      "Pat",
		Email:     "pat@example.com",
		Phone:     "+16125550100",
		Address:   "123 Elm St",
		ServiceID: &serviceID,
		Tier:      "good",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Score != submitted.Score {
		t.Fatalf("preview score %d diverges from stored score %d", preview.Score, submitted.Score)
	}
}

func TestUpdateStatusEnforcesTransitions(t *testing.T) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := newTestService(repo, &fakeCatalog{}, bus)

	created, err := svc.Submit(context.Background(), transport.SubmitLeadRequest{
		Name:    "Pat",
		Email:   "pat@example.com",
		Phone:   "+16125550100",
		Address: "123 Elm St",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := uuid.MustParse(created.ID)

	// new -> quoted skips contacted and must fail.
	if _, err := svc.UpdateStatus(context.Background(), id, domain.StatusQuoted); apperr.GetKind(err) != apperr.KindConflict {
		t.Fatalf("expected conflict for new -> quoted, got %v", err)
	}

	got, err := svc.UpdateStatus(context.Background(), id, domain.StatusContacted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(domain.StatusContacted) {
		t.Errorf("expected contacted, got %s", got.Status)
	}

	var statusEvents int
	for _, e := range bus.published {
		if _, ok := e.(events.LeadStatusChanged); ok {
			statusEvents++
		}
	}
	if statusEvents != 1 {
		t.Errorf("expected 1 status event, got %d", statusEvents)
	}
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeCatalog{}, &recordingBus{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), domain.LeadStatus("archived"))
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
