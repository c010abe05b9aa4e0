package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"greenscape_backend/platform/apperr"
)

const pricingRowNotFoundMessage = "pricing row not found"

const pricingRowColumns = `id, service_id, location_id, tier, price_min, price_max, unit, lot_size_min, lot_size_max, includes, is_active, created_at, updated_at`

// ListPricingByService retrieves all pricing rows for a service (admin view).
func (r *Repo) ListPricingByService(ctx context.Context, serviceID uuid.UUID) ([]PricingRow, error) {
	query := `
		SELECT ` + pricingRowColumns + `
		FROM pricing_rows
		WHERE service_id = $1
		ORDER BY tier ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, serviceID)
	if err != nil {
		return nil, wrapUnavailable("list pricing by service", err)
	}
	defer rows.Close()

	return scanPricingRows(rows)
}

// ListPricingForQuote retrieves the active candidate rows for a quote:
// default rows plus rows scoped to the requested location. Creation order
// keeps first-match resolution stable across calls.
func (r *Repo) ListPricingForQuote(ctx context.Context, serviceID uuid.UUID, locationID *uuid.UUID) ([]PricingRow, error) {
	query := `
		SELECT ` + pricingRowColumns + `
		FROM pricing_rows
		WHERE service_id = $1
		  AND is_active = true
		  AND (location_id IS NULL OR location_id = $2)
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, serviceID, locationID)
	if err != nil {
		return nil, wrapUnavailable("list pricing for quote", err)
	}
	defer rows.Close()

	return scanPricingRows(rows)
}

// CreatePricingRow inserts a new pricing row.
func (r *Repo) CreatePricingRow(ctx context.Context, params CreatePricingRowParams) (PricingRow, error) {
	query := `
		INSERT INTO pricing_rows (id, service_id, location_id, tier, price_min, price_max, unit, lot_size_min, lot_size_max, includes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
		RETURNING ` + pricingRowColumns

	row := r.pool.QueryRow(ctx, query,
		uuid.New(), params.ServiceID, params.LocationID, params.Tier,
		params.PriceMin, params.PriceMax, params.Unit,
		params.LotSizeMin, params.LotSizeMax, params.Includes,
	)

	pr, err := scanPricingRow(row)
	if err != nil {
		return PricingRow{}, fmt.Errorf("create pricing row: %w", err)
	}
	return pr, nil
}

// SetPricingRowActive toggles a pricing row's active flag.
func (r *Repo) SetPricingRowActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE pricing_rows SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return fmt.Errorf("set pricing row active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(pricingRowNotFoundMessage)
	}
	return nil
}

// DeletePricingRow removes a pricing row.
func (r *Repo) DeletePricingRow(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pricing_rows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pricing row: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(pricingRowNotFoundMessage)
	}
	return nil
}

func scanPricingRow(row rowScanner) (PricingRow, error) {
	var pr PricingRow
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&pr.ID, &pr.ServiceID, &pr.LocationID, &pr.Tier,
		&pr.PriceMin, &pr.PriceMax, &pr.Unit,
		&pr.LotSizeMin, &pr.LotSizeMax, &pr.Includes,
		&pr.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return PricingRow{}, err
	}

	pr.CreatedAt = createdAt.Format(time.RFC3339)
	pr.UpdatedAt = updatedAt.Format(time.RFC3339)
	return pr, nil
}

func scanPricingRows(rows pgx.Rows) ([]PricingRow, error) {
	out := make([]PricingRow, 0)
	for rows.Next() {
		pr, err := scanPricingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pricing row: %w", err)
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}
