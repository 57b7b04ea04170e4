package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// DocumentUseCase genera archivos descargables: planilla de saldos y comprobante de traslado.
type DocumentUseCase struct {
	locations repository.LocationRepository
	balances  repository.BalanceRepository
	transfers repository.TransferRepository
	sheet     BalanceSheetWriter
	slip      TransferSlipRenderer
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	locations repository.LocationRepository,
	balances repository.BalanceRepository,
	transfers repository.TransferRepository,
	sheet BalanceSheetWriter,
	slip TransferSlipRenderer,
) *DocumentUseCase {
	return &DocumentUseCase{
		locations: locations,
		balances:  balances,
		transfers: transfers,
		sheet:     sheet,
		slip:      slip,
	}
}

// ExportLocationBalances devuelve el xlsx de saldos de la ubicación y el nombre de archivo sugerido.
func (uc *DocumentUseCase) ExportLocationBalances(ctx context.Context, locationID int64) ([]byte, string, error) {
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
	data, err := uc.sheet.WriteBalances(ctx, loc.Name, rows)
	if err != nil {
		return nil, "", fmt.Errorf("generar planilla de saldos: %w", err)
	}
	return data, fmt.Sprintf("saldos-ubicacion-%d.xlsx", locationID), nil
}

// TransferSlip devuelve el PDF del traslado y el nombre de archivo sugerido.
func (uc *DocumentUseCase) TransferSlip(ctx context.Context, transferID int64) ([]byte, string, error) {
	t, err := uc.transfers.GetByID(ctx, transferID)
	if err != nil {
		return nil, "", err
	}
	if t == nil {
		return nil, "", domain.Missing("traslado", transferID)
	}
	data, err := uc.slip.RenderTransferSlip(ctx, t)
	if err != nil {
		return nil, "", fmt.Errorf("generar comprobante de traslado: %w", err)
	}
	return data, fmt.Sprintf("traslado-%d.pdf", transferID), nil
}
