package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"greenscape_backend/platform/apperr"
)

const modifierNotFoundMessage = "seasonal modifier not found"

// ListModifiersByService retrieves a service's seasonal modifiers.
// Priority ordering (then creation time) makes first-match resolution
// explicit rather than an accident of storage return order.
func (r *Repo) ListModifiersByService(ctx context.Context, serviceID uuid.UUID) ([]SeasonalModifier, error) {
	query := `
		SELECT id, service_id, month_start, month_end, multiplier, label, priority, created_at
		FROM seasonal_modifiers
		WHERE service_id = $1
		ORDER BY priority ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, serviceID)
	if err != nil {
		return nil, wrapUnavailable("list seasonal modifiers", err)
	}
	defer rows.Close()

	modifiers := make([]SeasonalModifier, 0)
	for rows.Next() {
		var m SeasonalModifier
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.ServiceID, &m.MonthStart, &m.MonthEnd, &m.Multiplier, &m.Label, &m.Priority, &createdAt); err != nil {
			return nil, fmt.Errorf("scan seasonal modifier: %w", err)
		}
		m.CreatedAt = createdAt.Format(time.RFC3339)
		modifiers = append(modifiers, m)
	}
	return modifiers, rows.Err()
}

// CreateModifier inserts a new seasonal modifier.
func (r *Repo) CreateModifier(ctx context.Context, params CreateModifierParams) (SeasonalModifier, error) {
	query := `
		INSERT INTO seasonal_modifiers (id, service_id, month_start, month_end, multiplier, label, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, service_id, month_start, month_end, multiplier, label, priority, created_at`

	var m SeasonalModifier
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, query,
		uuid.New(), params.ServiceID, params.MonthStart, params.MonthEnd,
		params.Multiplier, params.Label, params.Priority,
	).Scan(&m.ID, &m.ServiceID, &m.MonthStart, &m.MonthEnd, &m.Multiplier, &m.Label, &m.Priority, &createdAt)
	if err != nil {
		return SeasonalModifier{}, fmt.Errorf("create seasonal modifier: %w", err)
	}

	m.CreatedAt = createdAt.Format(time.RFC3339)
	return m, nil
}

// DeleteModifier removes a seasonal modifier.
func (r *Repo) DeleteModifier(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM seasonal_modifiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seasonal modifier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(modifierNotFoundMessage)
	}
	return nil
}
