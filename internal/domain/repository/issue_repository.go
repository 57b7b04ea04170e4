package repository

import (
	"context"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
)

// IssueRepository define el puerto de persistencia para consumos.
type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) error
}
