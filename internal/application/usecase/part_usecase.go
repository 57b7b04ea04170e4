package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// PartUseCase casos de uso CRUD del catálogo de repuestos. El stock se maneja vía recepciones,
// traslados y consumos, nunca desde aquí.
type PartUseCase struct {
	repo repository.PartRepository
	now  func() time.Time
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo, now: time.Now}
}

// Create registra un repuesto. part_code duplicado: domain.ErrDuplicate.
func (uc *PartUseCase) Create(ctx context.Context, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	now := uc.now()
	part := &entity.Part{
		Code:            strings.TrimSpace(in.PartCode),
		Name:            strings.TrimSpace(in.PartName),
		Description:     in.Description,
		UnitOfIssue:     in.UnitOfIssue,
		UnitPrice:       in.UnitPrice,
		MinimumQuantity: in.MinimumQuantity,
		Category:        in.Category,
		Criticality:     in.Criticality,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if part.UnitOfIssue == "" {
		part.UnitOfIssue = "UND"
	}
	if err := validatePart(part); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, part.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, part); err != nil {
		return nil, err
	}
	out := dto.NewPartResponse(part)
	return &out, nil
}

// GetByID obtiene un repuesto; domain.ErrNotFound si no existe.
func (uc *PartUseCase) GetByID(ctx context.Context, id int64) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.Missing("repuesto", id)
	}
	out := dto.NewPartResponse(part)
	return &out, nil
}

// Update aplica un parche parcial. Solo cambian los campos presentes en el request.
func (uc *PartUseCase) Update(ctx context.Context, id int64, patch dto.UpdatePartRequest) (*dto.PartResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.Missing("repuesto", id)
	}
	// part_code identifica al repuesto: se acepta solo si coincide con el actual.
	if patch.PartCode != nil && strings.TrimSpace(*patch.PartCode) != current.Code {
		return nil, domain.Invalid("part_code no se puede modificar")
	}
	updated := ApplyPartPatch(*current, patch)
	if err := validatePart(&updated); err != nil {
		return nil, err
	}
	updated.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	out := dto.NewPartResponse(&updated)
	return &out, nil
}

// List lista el catálogo con filtros y paginación.
func (uc *PartUseCase) List(ctx context.Context, filter repository.PartFilter, page dto.PageRequest) (*dto.PartListResponse, error) {
	page.Normalize()
	filter.Limit, filter.Offset = page.Limit, page.Offset
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.NewPartResponse(p))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ApplyPartPatch devuelve base con los campos presentes en patch aplicados.
// La lista de campos es fija: un campo nuevo en el DTO debe agregarse aquí explícitamente.
// part_code no forma parte de la lista.
func ApplyPartPatch(base entity.Part, patch dto.UpdatePartRequest) entity.Part {
	if patch.PartName != nil {
		base.Name = strings.TrimSpace(*patch.PartName)
	}
	if patch.Description != nil {
		base.Description = *patch.Description
	}
	if patch.UnitOfIssue != nil {
		base.UnitOfIssue = *patch.UnitOfIssue
	}
	if patch.UnitPrice != nil {
		price := *patch.UnitPrice
		base.UnitPrice = &price
	}
	if patch.MinimumQuantity != nil {
		base.MinimumQuantity = *patch.MinimumQuantity
	}
	if patch.Category != nil {
		base.Category = *patch.Category
	}
	if patch.Criticality != nil {
		base.Criticality = *patch.Criticality
	}
	return base
}

func validatePart(p *entity.Part) error {
	if p.Code == "" || p.Name == "" {
		return domain.Invalid("part_code y part_name son requeridos")
	}
	if p.MinimumQuantity < 0 {
		return domain.Invalid("minimum_quantity no puede ser negativo")
	}
	if p.UnitPrice != nil && p.UnitPrice.IsNegative() {
		return domain.Invalid("unit_price no puede ser negativo")
	}
	switch p.Criticality {
	case "", entity.CriticalityHigh, entity.CriticalityMedium, entity.CriticalityLow:
	default:
		return domain.Invalid("criticality debe ser high, medium o low")
	}
	return nil
}
