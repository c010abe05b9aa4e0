package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"greenscape_backend/platform/apperr"
)

const (
	serviceNotFoundMessage  = "service not found"
	locationNotFoundMessage = "location not found"
	catalogUnavailableMsg   = "catalog is temporarily unavailable"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetServiceByID retrieves a service by its ID.
func (r *Repo) GetServiceByID(ctx context.Context, id uuid.UUID) (Service, error) {
	query := `
		SELECT id, name, slug, category, description, is_active, display_order, created_at, updated_at
		FROM services
		WHERE id = $1`

	return r.scanService(r.pool.QueryRow(ctx, query, id), "get service by id")
}

// GetServiceBySlug retrieves a service by its slug.
func (r *Repo) GetServiceBySlug(ctx context.Context, slug string) (Service, error) {
	query := `
		SELECT id, name, slug, category, description, is_active, display_order, created_at, updated_at
		FROM services
		WHERE slug = $1`

	return r.scanService(r.pool.QueryRow(ctx, query, slug), "get service by slug")
}

// ListServices retrieves all services ordered by display order.
func (r *Repo) ListServices(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, slug, category, description, is_active, display_order, created_at, updated_at
		FROM services
		ORDER BY display_order ASC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapUnavailable("list services", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// ListActiveServices retrieves only active services ordered by display order.
func (r *Repo) ListActiveServices(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, slug, category, description, is_active, display_order, created_at, updated_at
		FROM services
		WHERE is_active = true
		ORDER BY display_order ASC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapUnavailable("list active services", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// CreateService inserts a new service.
func (r *Repo) CreateService(ctx context.Context, params CreateServiceParams) (Service, error) {
	query := `
		INSERT INTO services (id, name, slug, category, description, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, true, $6)
		RETURNING id, name, slug, category, description, is_active, display_order, created_at, updated_at`

	return r.scanService(r.pool.QueryRow(ctx, query,
		uuid.New(), params.Name, params.Slug, params.Category, params.Description, params.DisplayOrder,
	), "create service")
}

// UpdateService applies partial updates to a service.
func (r *Repo) UpdateService(ctx context.Context, params UpdateServiceParams) (Service, error) {
	query := `
		UPDATE services SET
			name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			category = COALESCE($4, category),
			description = COALESCE($5, description),
			display_order = COALESCE($6, display_order),
			updated_at = now()
		WHERE id = $1
		RETURNING id, name, slug, category, description, is_active, display_order, created_at, updated_at`

	return r.scanService(r.pool.QueryRow(ctx, query,
		params.ID, params.Name, params.Slug, params.Category, params.Description, params.DisplayOrder,
	), "update service")
}

// SetServiceActive toggles a service's active flag.
func (r *Repo) SetServiceActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE services SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return fmt.Errorf("set service active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(serviceNotFoundMessage)
	}
	return nil
}

// DeleteService removes a service and its dependent pricing rows and modifiers.
func (r *Repo) DeleteService(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(serviceNotFoundMessage)
	}
	return nil
}

// GetLocationByID retrieves a location by its ID.
func (r *Repo) GetLocationByID(ctx context.Context, id uuid.UUID) (Location, error) {
	query := `
		SELECT id, name, slug, is_active, latitude, longitude, created_at, updated_at
		FROM locations
		WHERE id = $1`

	return r.scanLocation(r.pool.QueryRow(ctx, query, id), "get location by id")
}

// GetLocationBySlug retrieves a location by its slug.
func (r *Repo) GetLocationBySlug(ctx context.Context, slug string) (Location, error) {
	query := `
		SELECT id, name, slug, is_active, latitude, longitude, created_at, updated_at
		FROM locations
		WHERE slug = $1`

	return r.scanLocation(r.pool.QueryRow(ctx, query, slug), "get location by slug")
}

// ListLocations retrieves all locations ordered by name.
func (r *Repo) ListLocations(ctx context.Context) ([]Location, error) {
	return r.listLocations(ctx, `
		SELECT id, name, slug, is_active, latitude, longitude, created_at, updated_at
		FROM locations
		ORDER BY name ASC`, "list locations")
}

// ListActiveLocations retrieves only active locations ordered by name.
func (r *Repo) ListActiveLocations(ctx context.Context) ([]Location, error) {
	return r.listLocations(ctx, `
		SELECT id, name, slug, is_active, latitude, longitude, created_at, updated_at
		FROM locations
		WHERE is_active = true
		ORDER BY name ASC`, "list active locations")
}

// CreateLocation inserts a new location.
func (r *Repo) CreateLocation(ctx context.Context, params CreateLocationParams) (Location, error) {
	query := `
		INSERT INTO locations (id, name, slug, is_active, latitude, longitude)
		VALUES ($1, $2, $3, true, $4, $5)
		RETURNING id, name, slug, is_active, latitude, longitude, created_at, updated_at`

	return r.scanLocation(r.pool.QueryRow(ctx, query,
		uuid.New(), params.Name, params.Slug, params.Latitude, params.Longitude,
	), "create location")
}

// SetLocationActive toggles a location's active flag.
func (r *Repo) SetLocationActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE locations SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return fmt.Errorf("set location active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(locationNotFoundMessage)
	}
	return nil
}

// DeleteLocation removes a location. Pricing rows scoped to it fall back to defaults.
func (r *Repo) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(locationNotFoundMessage)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *Repo) scanService(row rowScanner, op string) (Service, error) {
	var s Service
	var createdAt, updatedAt time.Time

	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Category, &s.Description, &s.IsActive, &s.DisplayOrder, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Service{}, apperr.NotFound(serviceNotFoundMessage)
		}
		return Service{}, wrapUnavailable(op, err)
	}

	s.CreatedAt = createdAt.Format(time.RFC3339)
	s.UpdatedAt = updatedAt.Format(time.RFC3339)
	return s, nil
}

func scanServices(rows pgx.Rows) ([]Service, error) {
	services := make([]Service, 0)
	for rows.Next() {
		var s Service
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Category, &s.Description, &s.IsActive, &s.DisplayOrder, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		s.CreatedAt = createdAt.Format(time.RFC3339)
		s.UpdatedAt = updatedAt.Format(time.RFC3339)
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *Repo) scanLocation(row rowScanner, op string) (Location, error) {
	var l Location
	var createdAt, updatedAt time.Time

	err := row.Scan(&l.ID, &l.Name, &l.Slug, &l.IsActive, &l.Latitude, &l.Longitude, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Location{}, apperr.NotFound(locationNotFoundMessage)
		}
		return Location{}, wrapUnavailable(op, err)
	}

	l.CreatedAt = createdAt.Format(time.RFC3339)
	l.UpdatedAt = updatedAt.Format(time.RFC3339)
	return l, nil
}

func (r *Repo) listLocations(ctx context.Context, query, op string) ([]Location, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapUnavailable(op, err)
	}
	defer rows.Close()

	locations := make([]Location, 0)
	for rows.Next() {
		var l Location
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&l.ID, &l.Name, &l.Slug, &l.IsActive, &l.Latitude, &l.Longitude, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		l.CreatedAt = createdAt.Format(time.RFC3339)
		l.UpdatedAt = updatedAt.Format(time.RFC3339)
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// wrapUnavailable converts a low-level query failure into the typed
// catalog-unavailable error so callers can show a fallback message.
func wrapUnavailable(op string, err error) error {
	return apperr.Wrap(apperr.KindUnavailable, catalogUnavailableMsg, fmt.Errorf("%s: %w", op, err))
}
