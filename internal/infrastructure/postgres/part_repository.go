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

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, part_code, part_name, COALESCE(description, ''), COALESCE(unit_of_issue, ''),
	unit_price, minimum_quantity, COALESCE(category, ''), COALESCE(criticality, ''), created_at, updated_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (tabla inventory_master).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste un repuesto y asigna su ID. part_code duplicado: domain.ErrConflict.
func (r *PartRepo) Create(ctx context.Context, p *entity.Part) error {
	query := `
		INSERT INTO inventory_master (part_code, part_name, description, unit_of_issue, unit_price,
			minimum_quantity, category, criticality, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Code, p.Name, p.Description, p.UnitOfIssue, p.UnitPrice,
		p.MinimumQuantity, p.Category, p.Criticality, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return writeError("insert part", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(ctx context.Context, id int64) (*entity.Part, error) {
	return r.getOne(ctx, `SELECT `+partColumns+` FROM inventory_master WHERE id = $1`, id)
}

// GetByCode obtiene un repuesto por part_code.
func (r *PartRepo) GetByCode(ctx context.Context, code string) (*entity.Part, error) {
	return r.getOne(ctx, `SELECT `+partColumns+` FROM inventory_master WHERE part_code = $1`, code)
}

func (r *PartRepo) getOne(ctx context.Context, query string, arg any) (*entity.Part, error) {
	p, err := scanPart(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// Update actualiza los campos descriptivos del repuesto. part_code no se modifica.
func (r *PartRepo) Update(ctx context.Context, p *entity.Part) error {
	query := `
		UPDATE inventory_master SET part_name = $2, description = NULLIF($3, ''),
			unit_of_issue = NULLIF($4, ''), unit_price = $5, minimum_quantity = $6,
			category = NULLIF($7, ''), criticality = NULLIF($8, ''), updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.UnitOfIssue, p.UnitPrice,
		p.MinimumQuantity, p.Category, p.Criticality, p.UpdatedAt,
	)
	if err != nil {
		return writeError("update part", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update part %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista repuestos filtrando por categoría, criticidad y texto (código o nombre).
func (r *PartRepo) List(ctx context.Context, f repository.PartFilter) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM inventory_master WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, f.Category)
		pos++
	}
	if f.Criticality != "" {
		query += fmt.Sprintf(" AND criticality = $%d", pos)
		args = append(args, f.Criticality)
		pos++
	}
	if f.Search != "" {
		query += fmt.Sprintf(" AND (part_code ILIKE $%d OR part_name ILIKE $%d)", pos, pos)
		args = append(args, "%"+f.Search+"%")
		pos++
	}
	query += " ORDER BY part_code"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Part, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Categories valores distintos de category.
func (r *PartRepo) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT category FROM inventory_master WHERE category IS NOT NULL ORDER BY category`)
}

// Criticalities valores distintos de criticality.
func (r *PartRepo) Criticalities(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT criticality FROM inventory_master WHERE criticality IS NOT NULL ORDER BY criticality`)
}

func (r *PartRepo) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct values: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect distinct values: %w", err)
	}
	return out, nil
}

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.UnitOfIssue,
		&p.UnitPrice, &p.MinimumQuantity, &p.Category, &p.Criticality, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
