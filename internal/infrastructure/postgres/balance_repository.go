package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

const balanceColumns = `b.id, b.spare_part_id, b.location_id, b.in_stock, b.total_received,
	b.total_consumption, b.created_at, b.updated_at`

const balanceViewQuery = `
	SELECT ` + balanceColumns + `, m.part_code, m.part_name, COALESCE(m.unit_of_issue, ''), m.unit_price,
		m.minimum_quantity, COALESCE(m.criticality, ''), l.name
	FROM inventory_balances b
	JOIN inventory_master m ON m.id = b.spare_part_id
	JOIN locations l ON l.id = b.location_id`

// BalanceRepo implementación del libro de saldos sobre PostgreSQL (tabla inventory_balances).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get obtiene el saldo de un par sin bloquear. (nil, nil) si no existe.
func (r *BalanceRepo) Get(ctx context.Context, partID, locationID int64) (*entity.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM inventory_balances b
		WHERE b.spare_part_id = $1 AND b.location_id = $2`
	return r.getOne(ctx, "get balance", query, partID, locationID)
}

// GetForUpdate obtiene el saldo y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
// Debe llamarse con un Querier que sea una pgx.Tx.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, partID, locationID int64) (*entity.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM inventory_balances b
		WHERE b.spare_part_id = $1 AND b.location_id = $2
		FOR UPDATE`
	return r.getOne(ctx, "get balance for update", query, partID, locationID)
}

func (r *BalanceRepo) getOne(ctx context.Context, op, query string, partID, locationID int64) (*entity.Balance, error) {
	var b entity.Balance
	err := r.q.QueryRow(ctx, query, partID, locationID).Scan(
		&b.ID, &b.PartID, &b.LocationID, &b.InStock, &b.TotalReceived,
		&b.TotalConsumption, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}

// Create inserta el saldo de un par nuevo. Si otra transacción lo creó primero, la
// restricción única (spare_part_id, location_id) hace fallar el insert con domain.ErrConflict.
func (r *BalanceRepo) Create(ctx context.Context, b *entity.Balance) error {
	query := `
		INSERT INTO inventory_balances (spare_part_id, location_id, in_stock, total_received,
			total_consumption, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		b.PartID, b.LocationID, b.InStock, b.TotalReceived, b.TotalConsumption, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		return writeError("insert balance", err)
	}
	return nil
}

// Update persiste cantidades y acumulados. El CHECK in_stock >= 0 de la tabla es la última barrera.
func (r *BalanceRepo) Update(ctx context.Context, b *entity.Balance) error {
	query := `
		UPDATE inventory_balances
		SET in_stock = $2, total_received = $3, total_consumption = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, b.ID, b.InStock, b.TotalReceived, b.TotalConsumption, b.UpdatedAt)
	if err != nil {
		return writeError("update balance", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update balance %d: %w", b.ID, domain.ErrNotFound)
	}
	return nil
}

// ListByLocation saldos de una ubicación con código y nombre del repuesto.
func (r *BalanceRepo) ListByLocation(ctx context.Context, locationID int64) ([]repository.BalanceView, error) {
	return r.listViews(ctx, "list balances by location",
		balanceViewQuery+` WHERE b.location_id = $1 ORDER BY m.part_code`, locationID)
}

// ListByPart saldos de un repuesto en todas las ubicaciones.
func (r *BalanceRepo) ListByPart(ctx context.Context, partID int64) ([]repository.BalanceView, error) {
	return r.listViews(ctx, "list balances by part",
		balanceViewQuery+` WHERE b.spare_part_id = $1 ORDER BY l.name`, partID)
}

// ListBelowMinimum saldos con in_stock < minimum_quantity. locationID 0 = todas las ubicaciones.
func (r *BalanceRepo) ListBelowMinimum(ctx context.Context, locationID int64) ([]repository.BalanceView, error) {
	return r.listViews(ctx, "list balances below minimum",
		balanceViewQuery+` WHERE b.in_stock < m.minimum_quantity AND ($1::bigint = 0 OR b.location_id = $1::bigint)
		ORDER BY m.part_code, l.name`, locationID)
}

func (r *BalanceRepo) listViews(ctx context.Context, op, query string, args ...any) ([]repository.BalanceView, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]repository.BalanceView, 0)
	for rows.Next() {
		var v repository.BalanceView
		if err := rows.Scan(
			&v.ID, &v.PartID, &v.LocationID, &v.InStock, &v.TotalReceived,
			&v.TotalConsumption, &v.CreatedAt, &v.UpdatedAt,
			&v.PartCode, &v.PartName, &v.UnitOfIssue, &v.UnitPrice,
			&v.MinimumQuantity, &v.Criticality, &v.LocationName,
		); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
