package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// CreatePartRequest entrada para registrar un repuesto en el catálogo.
type CreatePartRequest struct {
	PartCode        string           `json:"part_code"`
	PartName        string           `json:"part_name"`
	Description     string           `json:"description"`
	UnitOfIssue     string           `json:"unit_of_issue"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	MinimumQuantity int64            `json:"minimum_quantity"`
	Category        string           `json:"category"`
	Criticality     string           `json:"criticality"`
}

// UpdatePartRequest parche parcial: solo se aplican los campos presentes (no nil).
// PartCode solo se admite igual al código actual.
type UpdatePartRequest struct {
	PartCode        *string          `json:"part_code"`
	PartName        *string          `json:"part_name"`
	Description     *string          `json:"description"`
	UnitOfIssue     *string          `json:"unit_of_issue"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	MinimumQuantity *int64           `json:"minimum_quantity"`
	Category        *string          `json:"category"`
	Criticality     *string          `json:"criticality"`
}

// PartResponse salida de un repuesto.
type PartResponse struct {
	ID              int64            `json:"id"`
	PartCode        string           `json:"part_code"`
	PartName        string           `json:"part_name"`
	Description     string           `json:"description"`
	UnitOfIssue     string           `json:"unit_of_issue"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	MinimumQuantity int64            `json:"minimum_quantity"`
	Category        string           `json:"category"`
	Criticality     string           `json:"criticality"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// PartListResponse lista paginada de repuestos.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// UpdateLocationRequest parche parcial de una ubicación.
type UpdateLocationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// NewPartResponse mapea la entidad al DTO de salida.
func NewPartResponse(p *entity.Part) PartResponse {
	return PartResponse{
		ID:              p.ID,
		PartCode:        p.Code,
		PartName:        p.Name,
		Description:     p.Description,
		UnitOfIssue:     p.UnitOfIssue,
		UnitPrice:       p.UnitPrice,
		MinimumQuantity: p.MinimumQuantity,
		Category:        p.Category,
		Criticality:     p.Criticality,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// NewLocationResponse mapea la entidad al DTO de salida.
func NewLocationResponse(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Address:     l.Address,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
