package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	ledger "github.com/jhoicas/cmms-inventario/internal/domain/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// ReceiveInput datos de una recepción de proveedor.
type ReceiveInput struct {
	PartID          int64
	LocationID      int64
	Quantity        int64
	ReceivedBy      int64
	ReceivedDate    time.Time
	Supplier        string
	ReferenceNumber string
	UnitCost        *decimal.Decimal
}

// ReceivePartsUseCase registra recepciones: inserta la recepción y actualiza el saldo
// en una sola transacción, con la fila del saldo bloqueada (SELECT FOR UPDATE).
type ReceivePartsUseCase struct {
	txRunner  TxRunner
	parts     repository.PartRepository
	locations repository.LocationRepository
	users     repository.UserRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewReceivePartsUseCase construye el caso de uso.
func NewReceivePartsUseCase(
	txRunner TxRunner,
	parts repository.PartRepository,
	locations repository.LocationRepository,
	users repository.UserRepository,
	log zerolog.Logger,
) *ReceivePartsUseCase {
	return &ReceivePartsUseCase{
		txRunner:  txRunner,
		parts:     parts,
		locations: locations,
		users:     users,
		log:       log.With().Str("usecase", "receive").Logger(),
		now:       time.Now,
	}
}

// Receive valida la entrada, verifica que existan repuesto, ubicación y receptor, y
// ejecuta la unidad de trabajo. Devuelve el ID de la recepción creada.
func (uc *ReceivePartsUseCase) Receive(ctx context.Context, in ReceiveInput) (int64, error) {
	if in.Quantity <= 0 {
		return 0, domain.Invalid("quantity debe ser un entero positivo")
	}
	if in.PartID <= 0 || in.LocationID <= 0 || in.ReceivedBy <= 0 {
		return 0, domain.Invalid("spare_part_id, location_id y received_by son requeridos")
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		return 0, domain.Invalid("unit_cost no puede ser negativo")
	}
	if err := uc.checkReferences(ctx, in); err != nil {
		return 0, err
	}

	now := uc.now()
	if in.ReceivedDate.IsZero() {
		in.ReceivedDate = now
	}
	key := ledger.Key{PartID: in.PartID, LocationID: in.LocationID}

	var inflowID int64
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		inflow := &entity.Inflow{
			PartID:          in.PartID,
			LocationID:      in.LocationID,
			Quantity:        in.Quantity,
			ReceivedBy:      in.ReceivedBy,
			ReceivedDate:    in.ReceivedDate,
			Supplier:        in.Supplier,
			ReferenceNumber: in.ReferenceNumber,
			UnitCost:        in.UnitCost,
			CreatedAt:       now,
		}
		if err := repos.Inflows.Create(ctx, inflow); err != nil {
			return err
		}

		balance, err := repos.Balances.GetForUpdate(ctx, key.PartID, key.LocationID)
		if err != nil {
			return err
		}
		if balance == nil {
			if err := repos.Balances.Create(ctx, ledger.Opening(key, in.Quantity, now)); err != nil {
				return err
			}
		} else {
			ledger.Receive(balance, in.Quantity, now)
			if err := repos.Balances.Update(ctx, balance); err != nil {
				return err
			}
		}
		inflowID = inflow.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.log.Info().
		Int64("inflow_id", inflowID).
		Int64("part_id", in.PartID).
		Int64("location_id", in.LocationID).
		Int64("quantity", in.Quantity).
		Str("supplier", in.Supplier).
		Msg("recepción registrada")
	return inflowID, nil
}

func (uc *ReceivePartsUseCase) checkReferences(ctx context.Context, in ReceiveInput) error {
	part, err := uc.parts.GetByID(ctx, in.PartID)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.Missing("repuesto", in.PartID)
	}
	loc, err := uc.locations.GetByID(ctx, in.LocationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.Missing("ubicación", in.LocationID)
	}
	user, err := uc.users.GetByID(ctx, in.ReceivedBy)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Missing("usuario", in.ReceivedBy)
	}
	return nil
}
