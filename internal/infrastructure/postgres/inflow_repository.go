package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

var _ repository.InflowRepository = (*InflowRepo)(nil)

const inflowViewQuery = `
	SELECT i.id, i.spare_part_id, i.location_id, i.quantity, i.received_by, i.received_date,
		COALESCE(i.supplier, ''), COALESCE(i.reference_number, ''), i.unit_cost, i.created_at,
		m.part_code, m.part_name, l.name, u.username
	FROM inventory_inflow i
	JOIN inventory_master m ON m.id = i.spare_part_id
	JOIN locations l ON l.id = i.location_id
	JOIN users u ON u.id = i.received_by`

// InflowRepo implementación sobre PostgreSQL de las recepciones (tabla inventory_inflow, solo inserción).
type InflowRepo struct {
	q Querier
}

// NewInflowRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInflowRepository(q Querier) *InflowRepo {
	return &InflowRepo{q: q}
}

// Create persiste una recepción y asigna su ID.
func (r *InflowRepo) Create(ctx context.Context, in *entity.Inflow) error {
	query := `
		INSERT INTO inventory_inflow (spare_part_id, location_id, quantity, received_by, received_date,
			supplier, reference_number, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		in.PartID, in.LocationID, in.Quantity, in.ReceivedBy, in.ReceivedDate,
		in.Supplier, in.ReferenceNumber, in.UnitCost, in.CreatedAt,
	).Scan(&in.ID)
	if err != nil {
		return writeError("insert inflow", err)
	}
	return nil
}

// List recepciones de la más reciente a la más antigua.
func (r *InflowRepo) List(ctx context.Context, limit, offset int) ([]repository.InflowView, error) {
	return r.list(ctx, inflowViewQuery+` ORDER BY i.created_at DESC, i.id DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByPart recepciones de un repuesto, la más reciente primero.
func (r *InflowRepo) ListByPart(ctx context.Context, partID int64) ([]repository.InflowView, error) {
	return r.list(ctx, inflowViewQuery+` WHERE i.spare_part_id = $1 ORDER BY i.created_at DESC, i.id DESC`, partID)
}

func (r *InflowRepo) list(ctx context.Context, query string, args ...any) ([]repository.InflowView, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inflows: %w", err)
	}
	defer rows.Close()
	list := make([]repository.InflowView, 0)
	for rows.Next() {
		var v repository.InflowView
		if err := rows.Scan(
			&v.ID, &v.PartID, &v.LocationID, &v.Quantity, &v.ReceivedBy, &v.ReceivedDate,
			&v.Supplier, &v.ReferenceNumber, &v.UnitCost, &v.CreatedAt,
			&v.PartCode, &v.PartName, &v.LocationName, &v.ReceiverName,
		); err != nil {
			return nil, fmt.Errorf("scan inflow: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
