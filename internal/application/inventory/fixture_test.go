package inventory_test

import (
	"github.com/rs/zerolog"

	appinv "github.com/jhoicas/cmms-inventario/internal/application/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/testutil"
)

// fixture catálogo mínimo: dos repuestos, tres ubicaciones y un usuario.
type fixture struct {
	store    *testutil.Store
	partP    int64
	partQ    int64
	locA     int64
	locB     int64
	locC     int64
	userID   int64
	receive  *appinv.ReceivePartsUseCase
	transfer *appinv.TransferPartsUseCase
	issue    *appinv.IssuePartsUseCase
	query    *appinv.QueryUseCase
}

func newFixture() *fixture {
	s := testutil.NewStore()
	f := &fixture{store: s}
	f.partP = s.AddPart(entity.Part{Code: "P-001", Name: "Rodamiento 6205", MinimumQuantity: 5, Criticality: entity.CriticalityHigh})
	f.partQ = s.AddPart(entity.Part{Code: "Q-001", Name: "Correa en V A42", MinimumQuantity: 2, Criticality: entity.CriticalityLow})
	f.locA = s.AddLocation("Almacén central")
	f.locB = s.AddLocation("Taller planta 2")
	f.locC = s.AddLocation("Bodega norte")
	f.userID = s.AddUser(entity.User{Username: "tecnico", FullName: "Técnico de turno", IsActive: true})

	log := zerolog.Nop()
	f.receive = appinv.NewReceivePartsUseCase(s, s.Parts(), s.Locations(), s.Users(), log)
	f.transfer = appinv.NewTransferPartsUseCase(s, s.Parts(), s.Locations(), s.Users(), log)
	f.issue = appinv.NewIssuePartsUseCase(s, s.Parts(), s.Locations(), s.Users(), log)
	f.query = appinv.NewQueryUseCase(s.Parts(), s.Locations(), s.Balances(), s.Inflows(), s.Transfers())
	return f
}
