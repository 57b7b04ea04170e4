package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	ledger "github.com/jhoicas/cmms-inventario/internal/domain/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// IssueInput datos de un consumo de repuestos.
type IssueInput struct {
	PartID     int64
	LocationID int64
	Quantity   int64
	IssuedBy   int64
	Reference  string
}

// IssueResult resultado de un consumo: ID del registro y stock restante.
type IssueResult struct {
	IssueID int64
	InStock int64
}

// IssuePartsUseCase descuenta stock por consumo y acumula total_consumption.
type IssuePartsUseCase struct {
	txRunner  TxRunner
	parts     repository.PartRepository
	locations repository.LocationRepository
	users     repository.UserRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewIssuePartsUseCase construye el caso de uso.
func NewIssuePartsUseCase(
	txRunner TxRunner,
	parts repository.PartRepository,
	locations repository.LocationRepository,
	users repository.UserRepository,
	log zerolog.Logger,
) *IssuePartsUseCase {
	return &IssuePartsUseCase{
		txRunner:  txRunner,
		parts:     parts,
		locations: locations,
		users:     users,
		log:       log.With().Str("usecase", "issue").Logger(),
		now:       time.Now,
	}
}

// Issue registra el consumo bajo bloqueo de fila. Sin stock suficiente devuelve *domain.StockError.
func (uc *IssuePartsUseCase) Issue(ctx context.Context, in IssueInput) (*IssueResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity debe ser un entero positivo")
	}
	if in.PartID <= 0 || in.LocationID <= 0 || in.IssuedBy <= 0 {
		return nil, domain.Invalid("spare_part_id, location_id e issued_by son requeridos")
	}
	part, err := uc.parts.GetByID(ctx, in.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.Missing("repuesto", in.PartID)
	}
	loc, err := uc.locations.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.Missing("ubicación", in.LocationID)
	}
	user, err := uc.users.GetByID(ctx, in.IssuedBy)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Missing("usuario", in.IssuedBy)
	}

	now := uc.now()
	key := ledger.Key{PartID: in.PartID, LocationID: in.LocationID}
	var out IssueResult
	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		balance, err := repos.Balances.GetForUpdate(ctx, key.PartID, key.LocationID)
		if err != nil {
			return err
		}
		if err := ledger.Consume(balance, key, in.Quantity, now); err != nil {
			return err
		}
		if err := repos.Balances.Update(ctx, balance); err != nil {
			return err
		}
		issue := &entity.Issue{
			PartID:     in.PartID,
			LocationID: in.LocationID,
			Quantity:   in.Quantity,
			IssuedBy:   in.IssuedBy,
			Reference:  in.Reference,
			CreatedAt:  now,
		}
		if err := repos.Issues.Create(ctx, issue); err != nil {
			return err
		}
		out = IssueResult{IssueID: issue.ID, InStock: balance.InStock}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("issue_id", out.IssueID).
		Int64("part_id", in.PartID).
		Int64("location_id", in.LocationID).
		Int64("quantity", in.Quantity).
		Str("reference", in.Reference).
		Msg("consumo registrado")
	return &out, nil
}
