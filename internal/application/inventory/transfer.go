package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	ledger "github.com/jhoicas/cmms-inventario/internal/domain/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// TransferItemInput línea de un traslado.
type TransferItemInput struct {
	PartID   int64
	Quantity int64
	UnitCost *decimal.Decimal
}

// TransferInput datos de un traslado entre ubicaciones.
type TransferInput struct {
	FromLocationID int64
	ToLocationID   int64
	TransferredBy  int64
	TransferDate   time.Time
	Notes          string
	Items          []TransferItemInput
}

// TransferPartsUseCase mueve stock de una ubicación a otra. Cabecera, ítems y saldos
// se escriben en una única transacción: o se aplica todo o nada.
type TransferPartsUseCase struct {
	txRunner  TxRunner
	parts     repository.PartRepository
	locations repository.LocationRepository
	users     repository.UserRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewTransferPartsUseCase construye el caso de uso.
func NewTransferPartsUseCase(
	txRunner TxRunner,
	parts repository.PartRepository,
	locations repository.LocationRepository,
	users repository.UserRepository,
	log zerolog.Logger,
) *TransferPartsUseCase {
	return &TransferPartsUseCase{
		txRunner:  txRunner,
		parts:     parts,
		locations: locations,
		users:     users,
		log:       log.With().Str("usecase", "transfer").Logger(),
		now:       time.Now,
	}
}

// Transfer valida, verifica referencias y ejecuta el traslado. Devuelve el ID de la cabecera.
//
// Dentro de la transacción se bloquean primero todos los saldos involucrados en orden
// ascendente (part_id, location_id); luego se procesan los ítems en el orden recibido.
// Si un ítem no tiene stock suficiente en origen se devuelve *domain.StockError y se
// revierte todo, incluida la cabecera y los ítems anteriores.
func (uc *TransferPartsUseCase) Transfer(ctx context.Context, in TransferInput) (int64, error) {
	if err := validateTransfer(in); err != nil {
		return 0, err
	}
	if err := uc.checkReferences(ctx, in); err != nil {
		return 0, err
	}

	now := uc.now()
	if in.TransferDate.IsZero() {
		in.TransferDate = now
	}

	keys := make([]ledger.Key, 0, 2*len(in.Items))
	for _, it := range in.Items {
		keys = append(keys,
			ledger.Key{PartID: it.PartID, LocationID: in.FromLocationID},
			ledger.Key{PartID: it.PartID, LocationID: in.ToLocationID},
		)
	}
	keys = ledger.SortedKeys(keys)

	var transferID int64
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		header := &entity.TransferHeader{
			TransferDate:   in.TransferDate,
			FromLocationID: in.FromLocationID,
			ToLocationID:   in.ToLocationID,
			TransferredBy:  in.TransferredBy,
			Status:         entity.TransferStatusCompleted,
			Notes:          in.Notes,
			CreatedAt:      now,
		}
		if err := repos.Transfers.CreateHeader(ctx, header); err != nil {
			return err
		}

		locked := make(map[ledger.Key]*entity.Balance, len(keys))
		for _, k := range keys {
			b, err := repos.Balances.GetForUpdate(ctx, k.PartID, k.LocationID)
			if err != nil {
				return err
			}
			locked[k] = b
		}

		for _, it := range in.Items {
			item := &entity.TransferItem{
				TransferID: header.ID,
				PartID:     it.PartID,
				Quantity:   it.Quantity,
				UnitCost:   it.UnitCost,
				CreatedAt:  now,
			}
			if err := repos.Transfers.CreateItem(ctx, item); err != nil {
				return err
			}

			srcKey := ledger.Key{PartID: it.PartID, LocationID: in.FromLocationID}
			src := locked[srcKey]
			if err := ledger.Withdraw(src, srcKey, it.Quantity, now); err != nil {
				return err
			}
			if err := repos.Balances.Update(ctx, src); err != nil {
				return err
			}

			dstKey := ledger.Key{PartID: it.PartID, LocationID: in.ToLocationID}
			if dst := locked[dstKey]; dst != nil {
				ledger.Deposit(dst, it.Quantity, now)
				if err := repos.Balances.Update(ctx, dst); err != nil {
					return err
				}
				continue
			}
			opening := ledger.Opening(dstKey, it.Quantity, now)
			if err := repos.Balances.Create(ctx, opening); err != nil {
				return err
			}
			locked[dstKey] = opening
		}

		transferID = header.ID
		return nil
	})
	if err != nil {
		var se *domain.StockError
		if errors.As(err, &se) {
			uc.log.Warn().
				Int64("part_id", se.PartID).
				Int64("from_location_id", in.FromLocationID).
				Int64("available", se.Available).
				Int64("requested", se.Requested).
				Msg("traslado rechazado por stock insuficiente")
		}
		return 0, err
	}

	uc.log.Info().
		Int64("transfer_id", transferID).
		Int64("from_location_id", in.FromLocationID).
		Int64("to_location_id", in.ToLocationID).
		Int("items", len(in.Items)).
		Msg("traslado completado")
	return transferID, nil
}

func validateTransfer(in TransferInput) error {
	if len(in.Items) == 0 {
		return domain.Invalid("el traslado debe tener al menos un ítem")
	}
	if in.FromLocationID <= 0 || in.ToLocationID <= 0 || in.TransferredBy <= 0 {
		return domain.Invalid("from_location_id, to_location_id y transferred_by son requeridos")
	}
	if in.FromLocationID == in.ToLocationID {
		return domain.Invalid("la ubicación de origen y destino deben ser distintas")
	}
	for i, it := range in.Items {
		if it.PartID <= 0 {
			return domain.Invalid("items[%d]: spare_part_id es requerido", i)
		}
		if it.Quantity <= 0 {
			return domain.Invalid("items[%d]: quantity debe ser un entero positivo", i)
		}
		if it.UnitCost != nil && it.UnitCost.IsNegative() {
			return domain.Invalid("items[%d]: unit_cost no puede ser negativo", i)
		}
	}
	return nil
}

func (uc *TransferPartsUseCase) checkReferences(ctx context.Context, in TransferInput) error {
	for _, id := range []int64{in.FromLocationID, in.ToLocationID} {
		loc, err := uc.locations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.Missing("ubicación", id)
		}
	}
	user, err := uc.users.GetByID(ctx, in.TransferredBy)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Missing("usuario", in.TransferredBy)
	}
	checked := make(map[int64]bool, len(in.Items))
	for _, it := range in.Items {
		if checked[it.PartID] {
			continue
		}
		part, err := uc.parts.GetByID(ctx, it.PartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.Missing("repuesto", it.PartID)
		}
		checked[it.PartID] = true
	}
	return nil
}
