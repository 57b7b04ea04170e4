// Package testutil provee implementaciones en memoria de los puertos de repositorio para tests.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	appinv "github.com/jhoicas/cmms-inventario/internal/application/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	ledger "github.com/jhoicas/cmms-inventario/internal/domain/inventory"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

type state struct {
	parts     map[int64]entity.Part
	locations map[int64]entity.Location
	users     map[int64]entity.User
	balances  map[ledger.Key]entity.Balance
	inflows   []entity.Inflow
	headers   []entity.TransferHeader
	items     []entity.TransferItem
	issues    []entity.Issue
	seq       int64
}

func (s state) clone() state {
	c := state{
		parts:     make(map[int64]entity.Part, len(s.parts)),
		locations: make(map[int64]entity.Location, len(s.locations)),
		users:     make(map[int64]entity.User, len(s.users)),
		balances:  make(map[ledger.Key]entity.Balance, len(s.balances)),
		inflows:   append([]entity.Inflow(nil), s.inflows...),
		headers:   append([]entity.TransferHeader(nil), s.headers...),
		items:     append([]entity.TransferItem(nil), s.items...),
		issues:    append([]entity.Issue(nil), s.issues...),
		seq:       s.seq,
	}
	for k, v := range s.parts {
		c.parts[k] = v
	}
	for k, v := range s.locations {
		c.locations[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	return c
}

// Store base de datos en memoria. Los repositorios devuelven copias: un cambio solo
// persiste tras Create/Update, igual que con Postgres.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	st   state

	// FailBalanceUpdate, si no es nil, lo devuelve Balances.Update (simula un fallo de persistencia).
	FailBalanceUpdate error
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{st: state{
		parts:     map[int64]entity.Part{},
		locations: map[int64]entity.Location{},
		users:     map[int64]entity.User{},
		balances:  map[ledger.Key]entity.Balance{},
	}}
}

func (s *Store) nextID() int64 {
	s.st.seq++
	return s.st.seq
}

// Parts repositorio de repuestos.
func (s *Store) Parts() repository.PartRepository { return partRepo{s} }

// Locations repositorio de ubicaciones.
func (s *Store) Locations() repository.LocationRepository { return locationRepo{s} }

// Users repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Balances repositorio de saldos.
func (s *Store) Balances() repository.BalanceRepository { return balanceRepo{s} }

// Inflows repositorio de recepciones.
func (s *Store) Inflows() repository.InflowRepository { return inflowRepo{s} }

// Transfers repositorio de traslados.
func (s *Store) Transfers() repository.TransferRepository { return transferRepo{s} }

// Issues repositorio de consumos.
func (s *Store) Issues() repository.IssueRepository { return issueRepo{s} }

// Run implementa inventory.TxRunner: las unidades de trabajo se serializan y, si fn falla,
// el estado vuelve a la foto tomada antes de empezar.
func (s *Store) Run(ctx context.Context, fn func(repos appinv.TxRepos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	err := fn(appinv.TxRepos{
		Balances:  s.Balances(),
		Inflows:   s.Inflows(),
		Transfers: s.Transfers(),
		Issues:    s.Issues(),
	})
	if err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// ── Helpers de siembra y consulta ────────────────────────────────────────────

// AddPart inserta un repuesto y devuelve su ID.
func (s *Store) AddPart(p entity.Part) int64 {
	_ = s.Parts().Create(context.Background(), &p)
	return p.ID
}

// AddLocation inserta una ubicación y devuelve su ID.
func (s *Store) AddLocation(name string) int64 {
	l := entity.Location{Name: name}
	_ = s.Locations().Create(context.Background(), &l)
	return l.ID
}

// AddUser inserta un usuario y devuelve su ID.
func (s *Store) AddUser(u entity.User) int64 {
	_ = s.Users().Create(context.Background(), &u)
	return u.ID
}

// SetBalance fija un saldo directamente.
func (s *Store) SetBalance(partID, locationID, inStock int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := ledger.Key{PartID: partID, LocationID: locationID}
	b, ok := s.st.balances[k]
	if !ok {
		b = entity.Balance{ID: s.nextID(), PartID: partID, LocationID: locationID}
	}
	b.InStock = inStock
	if b.TotalReceived < inStock {
		b.TotalReceived = inStock
	}
	s.st.balances[k] = b
}

// Balance devuelve una copia del saldo, o nil si no existe.
func (s *Store) Balance(partID, locationID int64) *entity.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.balances[ledger.Key{PartID: partID, LocationID: locationID}]
	if !ok {
		return nil
	}
	return &b
}

// BalanceCount número de saldos registrados.
func (s *Store) BalanceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.balances)
}

// InflowRows copia de las recepciones.
func (s *Store) InflowRows() []entity.Inflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Inflow(nil), s.st.inflows...)
}

// TransferHeaders copia de las cabeceras de traslado.
func (s *Store) TransferHeaders() []entity.TransferHeader {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.TransferHeader(nil), s.st.headers...)
}

// TransferItems copia de los ítems de traslado.
func (s *Store) TransferItems() []entity.TransferItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.TransferItem(nil), s.st.items...)
}

// IssueRows copia de los consumos.
func (s *Store) IssueRows() []entity.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Issue(nil), s.st.issues...)
}

// ── Repuestos ────────────────────────────────────────────────────────────────

type partRepo struct{ s *Store }

func (r partRepo) Create(_ context.Context, p *entity.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.parts {
		if existing.Code == p.Code {
			return domain.ErrConflict
		}
	}
	p.ID = r.s.nextID()
	r.s.st.parts[p.ID] = *p
	return nil
}

func (r partRepo) GetByID(_ context.Context, id int64) (*entity.Part, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.parts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r partRepo) GetByCode(_ context.Context, code string) (*entity.Part, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.st.parts {
		if p.Code == code {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r partRepo) Update(_ context.Context, p *entity.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.st.parts[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := *p
	updated.Code = current.Code
	r.s.st.parts[p.ID] = updated
	return nil
}

func (r partRepo) List(_ context.Context, f repository.PartFilter) ([]*entity.Part, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	search := strings.ToLower(f.Search)
	out := make([]*entity.Part, 0)
	for _, p := range r.s.st.parts {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Criticality != "" && p.Criticality != f.Criticality {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Code), search) &&
			!strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return paginate(out, f.Limit, f.Offset), nil
}

func (r partRepo) Categories(_ context.Context) ([]string, error) {
	return r.distinct(func(p entity.Part) string { return p.Category }), nil
}

func (r partRepo) Criticalities(_ context.Context) ([]string, error) {
	return r.distinct(func(p entity.Part) string { return p.Criticality }), nil
}

func (r partRepo) distinct(field func(entity.Part) string) []string {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, p := range r.s.st.parts {
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ── Ubicaciones ──────────────────────────────────────────────────────────────

type locationRepo struct{ s *Store }

func (r locationRepo) Create(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = r.s.nextID()
	r.s.st.locations[l.ID] = *l
	return nil
}

func (r locationRepo) GetByID(_ context.Context, id int64) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.st.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r locationRepo) Update(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.locations[l.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.locations[l.ID] = *l
	return nil
}

func (r locationRepo) List(_ context.Context, limit, offset int) ([]*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Location, 0, len(r.s.st.locations))
	for _, l := range r.s.st.locations {
		cp := l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.users {
		if existing.Username == u.Username {
			return domain.ErrConflict
		}
	}
	u.ID = r.s.nextID()
	r.s.st.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.st.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

// ── Saldos ───────────────────────────────────────────────────────────────────

type balanceRepo struct{ s *Store }

func (r balanceRepo) Get(_ context.Context, partID, locationID int64) (*entity.Balance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.st.balances[ledger.Key{PartID: partID, LocationID: locationID}]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// GetForUpdate no necesita bloquear filas: Run ya serializa las unidades de trabajo.
func (r balanceRepo) GetForUpdate(ctx context.Context, partID, locationID int64) (*entity.Balance, error) {
	return r.Get(ctx, partID, locationID)
}

func (r balanceRepo) Create(_ context.Context, b *entity.Balance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := ledger.Key{PartID: b.PartID, LocationID: b.LocationID}
	if _, ok := r.s.st.balances[k]; ok {
		return domain.ErrConflict
	}
	if _, ok := r.s.st.parts[b.PartID]; !ok {
		return domain.Missing("repuesto", b.PartID)
	}
	if _, ok := r.s.st.locations[b.LocationID]; !ok {
		return domain.Missing("ubicación", b.LocationID)
	}
	b.ID = r.s.nextID()
	r.s.st.balances[k] = *b
	return nil
}

func (r balanceRepo) Update(_ context.Context, b *entity.Balance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailBalanceUpdate != nil {
		return r.s.FailBalanceUpdate
	}
	k := ledger.Key{PartID: b.PartID, LocationID: b.LocationID}
	if _, ok := r.s.st.balances[k]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.balances[k] = *b
	return nil
}

func (r balanceRepo) ListByLocation(_ context.Context, locationID int64) ([]repository.BalanceView, error) {
	return r.views(func(b entity.Balance, _ entity.Part) bool { return b.LocationID == locationID }), nil
}

func (r balanceRepo) ListByPart(_ context.Context, partID int64) ([]repository.BalanceView, error) {
	return r.views(func(b entity.Balance, _ entity.Part) bool { return b.PartID == partID }), nil
}

func (r balanceRepo) ListBelowMinimum(_ context.Context, locationID int64) ([]repository.BalanceView, error) {
	return r.views(func(b entity.Balance, p entity.Part) bool {
		if locationID != 0 && b.LocationID != locationID {
			return false
		}
		return b.InStock < p.MinimumQuantity
	}), nil
}

func (r balanceRepo) views(keep func(entity.Balance, entity.Part) bool) []repository.BalanceView {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]repository.BalanceView, 0)
	for _, b := range r.s.st.balances {
		p := r.s.st.parts[b.PartID]
		if !keep(b, p) {
			continue
		}
		out = append(out, repository.BalanceView{
			Balance:         b,
			PartCode:        p.Code,
			PartName:        p.Name,
			UnitOfIssue:     p.UnitOfIssue,
			UnitPrice:       p.UnitPrice,
			MinimumQuantity: p.MinimumQuantity,
			Criticality:     p.Criticality,
			LocationName:    r.s.st.locations[b.LocationID].Name,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PartCode != out[j].PartCode {
			return out[i].PartCode < out[j].PartCode
		}
		return out[i].LocationID < out[j].LocationID
	})
	return out
}

// ── Recepciones ──────────────────────────────────────────────────────────────

type inflowRepo struct{ s *Store }

func (r inflowRepo) Create(_ context.Context, in *entity.Inflow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.parts[in.PartID]; !ok {
		return domain.Missing("repuesto", in.PartID)
	}
	in.ID = r.s.nextID()
	r.s.st.inflows = append(r.s.st.inflows, *in)
	return nil
}

func (r inflowRepo) List(_ context.Context, limit, offset int) ([]repository.InflowView, error) {
	return paginate(r.views(func(entity.Inflow) bool { return true }), limit, offset), nil
}

func (r inflowRepo) ListByPart(_ context.Context, partID int64) ([]repository.InflowView, error) {
	return r.views(func(in entity.Inflow) bool { return in.PartID == partID }), nil
}

// views devuelve las recepciones de la más reciente a la más antigua.
func (r inflowRepo) views(keep func(entity.Inflow) bool) []repository.InflowView {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]repository.InflowView, 0)
	for i := len(r.s.st.inflows) - 1; i >= 0; i-- {
		in := r.s.st.inflows[i]
		if !keep(in) {
			continue
		}
		p := r.s.st.parts[in.PartID]
		u := r.s.st.users[in.ReceivedBy]
		out = append(out, repository.InflowView{
			Inflow:       in,
			PartCode:     p.Code,
			PartName:     p.Name,
			LocationName: r.s.st.locations[in.LocationID].Name,
			ReceiverName: u.Username,
		})
	}
	return out
}

// ── Traslados ────────────────────────────────────────────────────────────────

type transferRepo struct{ s *Store }

func (r transferRepo) CreateHeader(_ context.Context, h *entity.TransferHeader) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h.ID = r.s.nextID()
	r.s.st.headers = append(r.s.st.headers, *h)
	return nil
}

func (r transferRepo) CreateItem(_ context.Context, it *entity.TransferItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.parts[it.PartID]; !ok {
		return domain.Missing("repuesto", it.PartID)
	}
	it.ID = r.s.nextID()
	r.s.st.items = append(r.s.st.items, *it)
	return nil
}

func (r transferRepo) GetByID(_ context.Context, id int64) (*repository.TransferView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, h := range r.s.st.headers {
		if h.ID == id {
			v := r.view(h)
			return &v, nil
		}
	}
	return nil, nil
}

func (r transferRepo) List(_ context.Context, limit, offset int) ([]repository.TransferView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]repository.TransferView, 0, len(r.s.st.headers))
	for i := len(r.s.st.headers) - 1; i >= 0; i-- {
		out = append(out, r.view(r.s.st.headers[i]))
	}
	return paginate(out, limit, offset), nil
}

func (r transferRepo) view(h entity.TransferHeader) repository.TransferView {
	v := repository.TransferView{
		TransferHeader:    h,
		FromLocationName:  r.s.st.locations[h.FromLocationID].Name,
		ToLocationName:    r.s.st.locations[h.ToLocationID].Name,
		TransferredByName: r.s.st.users[h.TransferredBy].Username,
		Items:             []repository.TransferItemView{},
	}
	for _, it := range r.s.st.items {
		if it.TransferID != h.ID {
			continue
		}
		p := r.s.st.parts[it.PartID]
		v.Items = append(v.Items, repository.TransferItemView{
			PartID:   it.PartID,
			PartCode: p.Code,
			PartName: p.Name,
			Quantity: it.Quantity,
			UnitCost: it.UnitCost,
		})
	}
	return v
}

// ── Consumos ─────────────────────────────────────────────────────────────────

type issueRepo struct{ s *Store }

func (r issueRepo) Create(_ context.Context, is *entity.Issue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	is.ID = r.s.nextID()
	r.s.st.issues = append(r.s.st.issues, *is)
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
