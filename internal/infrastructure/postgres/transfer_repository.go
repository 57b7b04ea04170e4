package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

const transferViewQuery = `
	SELECT h.id, h.transfer_date, h.from_location_id, h.to_location_id, h.transferred_by, h.status,
		COALESCE(h.notes, ''), h.created_at, lf.name, lt.name, u.username
	FROM transfer_header h
	JOIN locations lf ON lf.id = h.from_location_id
	JOIN locations lt ON lt.id = h.to_location_id
	JOIN users u ON u.id = h.transferred_by`

// TransferRepo traslados sobre PostgreSQL (tablas transfer_header y transfer_item).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// CreateHeader persiste la cabecera y asigna su ID.
func (r *TransferRepo) CreateHeader(ctx context.Context, h *entity.TransferHeader) error {
	query := `
		INSERT INTO transfer_header (transfer_date, from_location_id, to_location_id, transferred_by,
			status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		h.TransferDate, h.FromLocationID, h.ToLocationID, h.TransferredBy, h.Status, h.Notes, h.CreatedAt,
	).Scan(&h.ID)
	if err != nil {
		return writeError("insert transfer header", err)
	}
	return nil
}

// CreateItem persiste una línea del traslado y asigna su ID.
func (r *TransferRepo) CreateItem(ctx context.Context, it *entity.TransferItem) error {
	query := `
		INSERT INTO transfer_item (transfer_id, spare_part_id, quantity, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, it.TransferID, it.PartID, it.Quantity, it.UnitCost, it.CreatedAt).Scan(&it.ID)
	if err != nil {
		return writeError("insert transfer item", err)
	}
	return nil
}

// GetByID obtiene un traslado con nombres e ítems. (nil, nil) si no existe.
func (r *TransferRepo) GetByID(ctx context.Context, id int64) (*repository.TransferView, error) {
	v, err := scanTransfer(r.q.QueryRow(ctx, transferViewQuery+` WHERE h.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	items, err := r.items(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	v.Items = items[id]
	if v.Items == nil {
		v.Items = []repository.TransferItemView{}
	}
	return v, nil
}

// List traslados del más reciente al más antiguo. Los ítems se cargan en una segunda consulta.
func (r *TransferRepo) List(ctx context.Context, limit, offset int) ([]repository.TransferView, error) {
	rows, err := r.q.Query(ctx, transferViewQuery+` ORDER BY h.transfer_date DESC, h.id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	list := make([]repository.TransferView, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		v, err := scanTransfer(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, *v)
		ids = append(ids, v.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	if len(ids) == 0 {
		return list, nil
	}

	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Items = items[list[i].ID]
		if list[i].Items == nil {
			list[i].Items = []repository.TransferItemView{}
		}
	}
	return list, nil
}

func (r *TransferRepo) items(ctx context.Context, transferIDs []int64) (map[int64][]repository.TransferItemView, error) {
	query := `
		SELECT t.transfer_id, t.spare_part_id, m.part_code, m.part_name, t.quantity, t.unit_cost
		FROM transfer_item t
		JOIN inventory_master m ON m.id = t.spare_part_id
		WHERE t.transfer_id = ANY($1)
		ORDER BY t.transfer_id, t.id`
	rows, err := r.q.Query(ctx, query, transferIDs)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]repository.TransferItemView, len(transferIDs))
	for rows.Next() {
		var transferID int64
		var it repository.TransferItemView
		if err := rows.Scan(&transferID, &it.PartID, &it.PartCode, &it.PartName, &it.Quantity, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		out[transferID] = append(out[transferID], it)
	}
	return out, rows.Err()
}

func scanTransfer(row pgx.Row) (*repository.TransferView, error) {
	var v repository.TransferView
	err := row.Scan(
		&v.ID, &v.TransferDate, &v.FromLocationID, &v.ToLocationID, &v.TransferredBy, &v.Status,
		&v.Notes, &v.CreatedAt, &v.FromLocationName, &v.ToLocationName, &v.TransferredByName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
