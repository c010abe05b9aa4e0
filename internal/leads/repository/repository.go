package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"greenscape_backend/internal/leads/domain"
	"greenscape_backend/platform/apperr"
)

const leadNotFoundMessage = "lead not found"

const leadColumns = `id, name, email, phone, address, city, zip, service_id, location_id,
	tier, frequency, lot_size_bracket, notes, score, status, created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lead repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// CreateLead inserts a scored lead with status new.
func (r *Repo) CreateLead(ctx context.Context, params CreateLeadParams) (Lead, error) {
	query := `
		INSERT INTO leads (name, email, phone, address, city, zip, service_id, location_id,
			tier, frequency, lot_size_bracket, notes, score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + leadColumns

	row := r.pool.QueryRow(ctx, query,
		params.Name, params.Email, params.Phone, params.Address, params.City, params.Zip,
		params.ServiceID, params.LocationID, params.Tier, params.Frequency,
		params.LotSizeBracket, params.Notes, params.Score, domain.StatusNew,
	)
	return r.scanLead(row, "create lead")
}

// GetLeadByID retrieves a lead by its ID.
func (r *Repo) GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	return r.scanLead(r.pool.QueryRow(ctx, query, id), "get lead by id")
}

// ListLeads retrieves leads newest first, filtered and paged, plus the
// total count matching the filter.
func (r *Repo) ListLeads(ctx context.Context, params ListLeadsParams) ([]Lead, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if params.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *params.Status)
		argPos++
	}
	if params.MinScore != nil {
		where += fmt.Sprintf(" AND score >= $%d", argPos)
		args = append(args, *params.MinScore)
		argPos++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM leads " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("SELECT %s FROM leads %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		leadColumns, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLeadRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, total, rows.Err()
}

// UpdateLeadStatus sets a lead's pipeline status. Transition rules are
// enforced by the service layer.
func (r *Repo) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus) (Lead, error) {
	query := `
		UPDATE leads
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + leadColumns

	return r.scanLead(r.pool.QueryRow(ctx, query, id, status), "update lead status")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *Repo) scanLead(row rowScanner, op string) (Lead, error) {
	lead, err := scanLeadRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("%s: %w", op, err)
	}
	return lead, nil
}

func scanLeadRow(row rowScanner) (Lead, error) {
	var l Lead
	var createdAt, updatedAt time.Time

	err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Address, &l.City, &l.Zip,
		&l.ServiceID, &l.LocationID, &l.Tier, &l.Frequency, &l.LotSizeBracket,
		&l.Notes, &l.Score, &l.Status, &createdAt, &updatedAt)
	if err != nil {
		return Lead{}, err
	}

	l.CreatedAt = createdAt.Format(time.RFC3339)
	l.UpdatedAt = updatedAt.Format(time.RFC3339)
	return l, nil
}
