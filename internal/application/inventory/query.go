package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// QueryUseCase lecturas del inventario: saldos, historiales y detalle de repuesto.
// Cada respuesta se arma con llamadas explícitas a repositorios; nada se escribe.
type QueryUseCase struct {
	parts     repository.PartRepository
	locations repository.LocationRepository
	balances  repository.BalanceRepository
	inflows   repository.InflowRepository
	transfers repository.TransferRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	parts repository.PartRepository,
	locations repository.LocationRepository,
	balances repository.BalanceRepository,
	inflows repository.InflowRepository,
	transfers repository.TransferRepository,
) *QueryUseCase {
	return &QueryUseCase{
		parts:     parts,
		locations: locations,
		balances:  balances,
		inflows:   inflows,
		transfers: transfers,
	}
}

// GetBalance devuelve el saldo de un par. Si no hay registro responde con ceros (stock cero, no error).
func (uc *QueryUseCase) GetBalance(ctx context.Context, partID, locationID int64) (*dto.BalanceResponse, error) {
	b, err := uc.balances.Get(ctx, partID, locationID)
	if err != nil {
		return nil, err
	}
	out := &dto.BalanceResponse{SparePartID: partID, LocationID: locationID}
	if b != nil {
		out.ID = b.ID
		out.InStock = b.InStock
		out.TotalReceived = b.TotalReceived
		out.TotalConsumption = b.TotalConsumption
	}
	return out, nil
}

// BalancesByLocation lista los saldos de una ubicación. Ubicación inexistente: domain.ErrNotFound.
func (uc *QueryUseCase) BalancesByLocation(ctx context.Context, locationID int64) ([]dto.LocationBalanceResponse, error) {
	rows, _, err := uc.locationBalances(ctx, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationBalanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LocationBalanceResponse{
			ID:               r.ID,
			PartCode:         r.PartCode,
			PartName:         r.PartName,
			InStock:          r.InStock,
			TotalReceived:    r.TotalReceived,
			TotalConsumption: r.TotalConsumption,
		})
	}
	return out, nil
}

func (uc *QueryUseCase) locationBalances(ctx context.Context, locationID int64) ([]repository.BalanceView, string, error) {
	loc, err := uc.locations.GetByID(ctx, locationID)
	if err != nil {
		return nil, "", err
	}
	if loc == nil {
		return nil, "", domain.Missing("ubicación", locationID)
	}
	rows, err := uc.balances.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, "", err
	}
	return rows, loc.Name, nil
}

// TransferHistory lista traslados (más recientes primero) con nombres e ítems resueltos.
func (uc *QueryUseCase) TransferHistory(ctx context.Context, page dto.PageRequest) ([]dto.TransferResponse, error) {
	page.Normalize()
	list, err := uc.transfers.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for i := range list {
		out = append(out, toTransferResponse(&list[i]))
	}
	return out, nil
}

// GetTransfer devuelve un traslado o domain.ErrNotFound.
func (uc *QueryUseCase) GetTransfer(ctx context.Context, id int64) (*dto.TransferResponse, error) {
	t, err := uc.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.Missing("traslado", id)
	}
	out := toTransferResponse(t)
	return &out, nil
}

// ReceiptHistory lista recepciones (más recientes primero). Cada recepción es de un solo repuesto.
func (uc *QueryUseCase) ReceiptHistory(ctx context.Context, page dto.PageRequest) ([]dto.ReceiptResponse, error) {
	page.Normalize()
	list, err := uc.inflows.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.ReceiptResponse{
			ID:              r.ID,
			ReceivedDate:    r.ReceivedDate,
			ReceivedFrom:    r.Supplier,
			ReceivedToName:  r.LocationName,
			ReceivedBy:      r.ReceiverName,
			Supplier:        r.Supplier,
			ReferenceNumber: r.ReferenceNumber,
			Items: []dto.ReceiptLineResponse{{
				PartCode: r.PartCode,
				PartName: r.PartName,
				Quantity: r.Quantity,
				UnitCost: costOrZero(r.UnitCost),
			}},
		})
	}
	return out, nil
}

// PartDetails arma el detalle de un repuesto: catálogo, saldos por ubicación y recepciones.
func (uc *QueryUseCase) PartDetails(ctx context.Context, partID int64) (*dto.PartDetailsResponse, error) {
	part, err := uc.parts.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.Missing("repuesto", partID)
	}
	balances, err := uc.balances.ListByPart(ctx, partID)
	if err != nil {
		return nil, err
	}
	inflows, err := uc.inflows.ListByPart(ctx, partID)
	if err != nil {
		return nil, err
	}

	out := &dto.PartDetailsResponse{
		Part:     dto.NewPartResponse(part),
		Balances: make([]dto.PartBalanceResponse, 0, len(balances)),
		Inflows:  make([]dto.InflowDetailResponse, 0, len(inflows)),
	}
	for _, b := range balances {
		out.Balances = append(out.Balances, dto.PartBalanceResponse{
			ID:               b.ID,
			SparePartID:      b.PartID,
			LocationID:       b.LocationID,
			LocationName:     b.LocationName,
			InStock:          b.InStock,
			TotalReceived:    b.TotalReceived,
			TotalConsumption: b.TotalConsumption,
		})
	}
	for _, in := range inflows {
		cost := costOrZero(in.UnitCost)
		out.Inflows = append(out.Inflows, dto.InflowDetailResponse{
			ID:              in.ID,
			Quantity:        in.Quantity,
			LocationName:    in.LocationName,
			ReceivedBy:      in.ReceiverName,
			ReceivedDate:    in.ReceivedDate,
			Supplier:        in.Supplier,
			ReferenceNumber: in.ReferenceNumber,
			UnitCost:        cost,
			TotalCost:       cost.Mul(decimal.NewFromInt(in.Quantity)),
		})
	}
	return out, nil
}

// Filters devuelve ubicaciones, categorías y criticidades para los desplegables.
func (uc *QueryUseCase) Filters(ctx context.Context) (*dto.InventoryFiltersResponse, error) {
	locs, err := uc.locations.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	categories, err := uc.parts.Categories(ctx)
	if err != nil {
		return nil, err
	}
	criticalities, err := uc.parts.Criticalities(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryFiltersResponse{
		Locations:     make([]dto.LocationOption, 0, len(locs)),
		Categories:    categories,
		Criticalities: criticalities,
	}
	for _, l := range locs {
		out.Locations = append(out.Locations, dto.LocationOption{ID: l.ID, Name: l.Name})
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	if out.Criticalities == nil {
		out.Criticalities = []string{}
	}
	return out, nil
}

func toTransferResponse(t *repository.TransferView) dto.TransferResponse {
	items := make([]dto.TransferLineResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TransferLineResponse{
			SparePartID: it.PartID,
			PartCode:    it.PartCode,
			PartName:    it.PartName,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
		})
	}
	return dto.TransferResponse{
		ID:               t.ID,
		TransferDate:     t.TransferDate,
		FromLocationID:   t.FromLocationID,
		FromLocationName: t.FromLocationName,
		ToLocationID:     t.ToLocationID,
		ToLocationName:   t.ToLocationName,
		TransferredBy:    t.TransferredByName,
		Status:           t.Status,
		Notes:            t.Notes,
		Items:            items,
	}
}

func costOrZero(c *decimal.Decimal) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return *c
}
