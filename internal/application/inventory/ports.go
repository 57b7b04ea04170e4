package inventory

import (
	"context"

	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Balances  repository.BalanceRepository
	Inflows   repository.InflowRepository
	Transfers repository.TransferRepository
	Issues    repository.IssueRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback de todo lo escrito; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// BalanceSheetWriter genera la planilla de saldos de una ubicación (xlsx).
type BalanceSheetWriter interface {
	WriteBalances(ctx context.Context, locationName string, rows []repository.BalanceView) ([]byte, error)
}

// TransferSlipRenderer genera el comprobante imprimible de un traslado (PDF).
type TransferSlipRenderer interface {
	RenderTransferSlip(ctx context.Context, transfer *repository.TransferView) ([]byte, error)
}
