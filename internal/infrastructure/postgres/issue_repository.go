package postgres

import (
	"context"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

var _ repository.IssueRepository = (*IssueRepo)(nil)

// IssueRepo consumos de repuestos (tabla inventory_issue).
type IssueRepo struct {
	q Querier
}

// NewIssueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIssueRepository(q Querier) *IssueRepo {
	return &IssueRepo{q: q}
}

// Create persiste un consumo y asigna su ID.
func (r *IssueRepo) Create(ctx context.Context, is *entity.Issue) error {
	query := `
		INSERT INTO inventory_issue (spare_part_id, location_id, quantity, issued_by, reference, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		is.PartID, is.LocationID, is.Quantity, is.IssuedBy, is.Reference, is.CreatedAt,
	).Scan(&is.ID)
	if err != nil {
		return writeError("insert issue", err)
	}
	return nil
}
