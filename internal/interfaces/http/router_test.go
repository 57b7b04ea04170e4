package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cmms-inventario/internal/application/auth"
	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	appinv "github.com/jhoicas/cmms-inventario/internal/application/inventory"
	"github.com/jhoicas/cmms-inventario/internal/application/usecase"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/infrastructure/report"
	"github.com/jhoicas/cmms-inventario/internal/infrastructure/session"
	apphttp "github.com/jhoicas/cmms-inventario/internal/interfaces/http"
	"github.com/jhoicas/cmms-inventario/internal/testutil"
	"github.com/jhoicas/cmms-inventario/pkg/config"
)

const testPassword = "Secreto#2024"

// testEnv API completa sobre el store en memoria, con un admin y un técnico ya autenticados.
type testEnv struct {
	app      *fiber.App
	store    *testutil.Store
	adminTok string
	techTok  string
	techID   int64
	partP    int64
	locA     int64
	locB     int64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := testutil.NewStore()
	sessions := session.NewMemoryStore(time.Minute, zerolog.Nop())
	t.Cleanup(func() { _ = sessions.Close() })

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	store.AddUser(entity.User{Username: "admin", FullName: "Administrador", PasswordHash: hash, IsActive: true, IsSuperuser: true})
	techID := store.AddUser(entity.User{Username: "tecnico", FullName: "Técnico de turno", PasswordHash: hash, IsActive: true})
	store.AddUser(entity.User{Username: "inactivo", PasswordHash: hash})

	env := &testEnv{store: store, techID: techID}
	env.partP = store.AddPart(entity.Part{Code: "P-001", Name: "Rodamiento 6205", MinimumQuantity: 5, Criticality: entity.CriticalityHigh})
	env.locA = store.AddLocation("Almacén central")
	env.locB = store.AddLocation("Taller planta 2")

	log := zerolog.Nop()
	authUC := auth.NewAuthUseCase(store.Users(), sessions, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "cmms-test"}, log)
	env.app = fiber.New()
	require.NoError(t, apphttp.Router(env.app, apphttp.RouterDeps{
		ServiceName:   "cmms-test",
		Log:           log,
		Security:      config.SecurityConfig{},
		CORSOrigins:   "*",
		AuthUC:        authUC,
		PartUC:        usecase.NewPartUseCase(store.Parts()),
		LocationUC:    usecase.NewLocationUseCase(store.Locations()),
		Receive:       appinv.NewReceivePartsUseCase(store, store.Parts(), store.Locations(), store.Users(), log),
		Transfer:      appinv.NewTransferPartsUseCase(store, store.Parts(), store.Locations(), store.Users(), log),
		Issue:         appinv.NewIssuePartsUseCase(store, store.Parts(), store.Locations(), store.Users(), log),
		Query:         appinv.NewQueryUseCase(store.Parts(), store.Locations(), store.Balances(), store.Inflows(), store.Transfers()),
		Replenishment: appinv.NewReplenishmentUseCase(store.Balances()),
		Documents: appinv.NewDocumentUseCase(store.Locations(), store.Balances(), store.Transfers(),
			report.NewBalanceSheetWriter(), report.NewTransferSlipRenderer("cmms-test")),
	}))

	env.adminTok = env.login(t, "admin")
	env.techTok = env.login(t, "tecnico")
	return env
}

func (e *testEnv) login(t *testing.T, username string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.TokenResponse
	decode(t, resp, &out)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	return out.AccessToken
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func errorCode(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	decode(t, resp, &out)
	return out
}

// ── Salud y auth ─────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/health", "", nil)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "cmms-test", body["service"])
}

func TestLogin_Errores(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "nadie", Password: testPassword})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "inactivo", Password: testPassword})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{})
	assert.Equal(t, "VALIDATION", errorCode(t, resp).Code)
}

func TestMeYLogout(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/auth/me", env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	decode(t, resp, &me)
	assert.Equal(t, "tecnico", me.Username)
	assert.False(t, me.IsSuperuser)

	resp = env.do(t, http.MethodPost, "/api/auth/logout", env.techTok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/auth/me", env.techTok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, resp).Code)
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/balances/%d", env.locA), "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ── Inventario ───────────────────────────────────────────────────────────────

func TestReceive_CreaSaldoYUsaUsuarioAutenticado(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/inventory/receive", env.techTok, dto.ReceivePartsRequest{
		SparePartID: env.partP, LocationID: env.locA, Quantity: 20,
		Supplier: "Acme", ReferenceNumber: "PO-1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.ReceivePartsResponse
	decode(t, resp, &out)
	assert.NotZero(t, out.InflowID)
	assert.NotEmpty(t, out.Message)

	inflows := env.store.InflowRows()
	require.Len(t, inflows, 1)
	assert.Equal(t, env.techID, inflows[0].ReceivedBy)

	b := env.store.Balance(env.partP, env.locA)
	require.NotNil(t, b)
	assert.Equal(t, int64(20), b.InStock)
	assert.Equal(t, int64(20), b.TotalReceived)
}

func TestReceive_Validaciones(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/inventory/receive", env.techTok, dto.ReceivePartsRequest{
		SparePartID: env.partP, LocationID: env.locA, Quantity: 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp).Code)

	resp = env.do(t, http.MethodPost, "/api/inventory/receive", env.techTok, dto.ReceivePartsRequest{
		SparePartID: 999, LocationID: env.locA, Quantity: 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/receive", bytes.NewBufferString("{no-json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+env.techTok)
	raw, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "INVALID_BODY", errorCode(t, raw).Code)

	assert.Zero(t, env.store.BalanceCount())
}

func TestTransfer_Completo(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetBalance(env.partP, env.locA, 10)

	resp := env.do(t, http.MethodPost, "/api/inventory/transfer", env.techTok, dto.TransferRequest{
		FromLocationID: env.locA, ToLocationID: env.locB,
		Items: []dto.TransferItemRequest{{SparePartID: env.partP, Quantity: 4}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.TransferCreatedResponse
	decode(t, resp, &out)
	assert.NotZero(t, out.TransferID)

	assert.Equal(t, int64(6), env.store.Balance(env.partP, env.locA).InStock)
	assert.Equal(t, int64(4), env.store.Balance(env.partP, env.locB).InStock)

	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/transfers/%d", out.TransferID), env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tr dto.TransferResponse
	decode(t, resp, &tr)
	assert.Equal(t, entity.TransferStatusCompleted, tr.Status)
	assert.Equal(t, "tecnico", tr.TransferredBy)
	require.Len(t, tr.Items, 1)
	assert.Equal(t, int64(4), tr.Items[0].Quantity)

	resp = env.do(t, http.MethodGet, "/api/inventory/transfers", env.techTok, nil)
	var history []dto.TransferResponse
	decode(t, resp, &history)
	assert.Len(t, history, 1)
}

func TestTransfer_StockInsuficienteCitaRepuestoYNoPersisteNada(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetBalance(env.partP, env.locA, 10)

	resp := env.do(t, http.MethodPost, "/api/inventory/transfer", env.techTok, dto.TransferRequest{
		FromLocationID: env.locA, ToLocationID: env.locB,
		Items: []dto.TransferItemRequest{{SparePartID: env.partP, Quantity: 15}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := errorCode(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)
	assert.Contains(t, e.Message, fmt.Sprintf("%d", env.partP))

	assert.Equal(t, int64(10), env.store.Balance(env.partP, env.locA).InStock)
	assert.Nil(t, env.store.Balance(env.partP, env.locB))
	assert.Empty(t, env.store.TransferHeaders())
	assert.Empty(t, env.store.TransferItems())
}

func TestTransfer_ListaVacia(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/inventory/transfer", env.techTok, dto.TransferRequest{
		FromLocationID: env.locA, ToLocationID: env.locB,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp).Code)
}

func TestIssue(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetBalance(env.partP, env.locA, 10)

	resp := env.do(t, http.MethodPost, "/api/inventory/issue", env.techTok, dto.IssuePartsRequest{
		SparePartID: env.partP, LocationID: env.locA, Quantity: 3, Reference: "OT-77",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.IssuePartsResponse
	decode(t, resp, &out)
	assert.Equal(t, int64(7), out.InStock)
	assert.Equal(t, int64(3), env.store.Balance(env.partP, env.locA).TotalConsumption)
}

func TestBalancesByLocation(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetBalance(env.partP, env.locA, 10)

	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/balances/%d", env.locA), env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []dto.LocationBalanceResponse
	decode(t, resp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "P-001", rows[0].PartCode)
	assert.Equal(t, int64(10), rows[0].InStock)

	resp = env.do(t, http.MethodGet, "/api/inventory/balances/999", env.techTok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/inventory/balances/abc", env.techTok, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPartBalance_AusenteEsCero(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/parts/%d/balance/%d", env.partP, env.locB), env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var b dto.BalanceResponse
	decode(t, resp, &b)
	assert.Zero(t, b.ID)
	assert.Zero(t, b.InStock)
}

func TestLowStockYFilters(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetBalance(env.partP, env.locA, 2)

	resp := env.do(t, http.MethodGet, "/api/inventory/low-stock", env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var low struct {
		Total int                         `json:"total"`
		Items []dto.LowStockSuggestionDTO `json:"items"`
	}
	decode(t, resp, &low)
	require.Equal(t, 1, low.Total)
	assert.Equal(t, int64(6), low.Items[0].SuggestedQty)
	assert.Equal(t, 1, low.Items[0].Priority)

	resp = env.do(t, http.MethodGet, "/api/inventory/filters", env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var filters dto.InventoryFiltersResponse
	decode(t, resp, &filters)
	assert.Len(t, filters.Locations, 2)
	assert.Contains(t, filters.Criticalities, entity.CriticalityHigh)
}

func TestDocumentos(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetBalance(env.partP, env.locA, 10)

	resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/balances/%d/export", env.locA), env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), fmt.Sprintf("saldos-ubicacion-%d.xlsx", env.locA))
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/inventory/transfer", env.techTok, dto.TransferRequest{
		FromLocationID: env.locA, ToLocationID: env.locB,
		Items: []dto.TransferItemRequest{{SparePartID: env.partP, Quantity: 1}},
	})
	var created dto.TransferCreatedResponse
	decode(t, resp, &created)

	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/transfers/%d/slip", created.TransferID), env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	pdf, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

// ── Catálogo ─────────────────────────────────────────────────────────────────

func TestCatalogo_EscrituraSoloAdmin(t *testing.T) {
	env := newTestEnv(t)
	body := dto.CreatePartRequest{PartCode: "V-100", PartName: "Válvula de bola 1\"", MinimumQuantity: 2}

	resp := env.do(t, http.MethodPost, "/api/parts", env.techTok, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/parts", env.adminTok, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.PartResponse
	decode(t, resp, &created)
	assert.Equal(t, "UND", created.UnitOfIssue)

	resp = env.do(t, http.MethodPost, "/api/parts", env.adminTok, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	name := "Válvula de bola 2\""
	resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/parts/%d", created.ID), env.adminTok, dto.UpdatePartRequest{PartName: &name})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.PartResponse
	decode(t, resp, &updated)
	assert.Equal(t, name, updated.PartName)
	assert.Equal(t, "V-100", updated.PartCode)
	assert.Equal(t, int64(2), updated.MinimumQuantity)

	code := "V-999"
	resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/parts/%d", created.ID), env.adminTok, dto.UpdatePartRequest{PartCode: &code})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/parts?search=V-1", env.techTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.PartListResponse
	decode(t, resp, &list)
	assert.Len(t, list.Items, 1)
}

func TestUbicaciones(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/locations", env.adminTok, dto.CreateLocationRequest{Name: "Bodega norte", Address: "Km 3"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var loc dto.LocationResponse
	decode(t, resp, &loc)

	addr := "Km 4"
	resp = env.do(t, http.MethodPatch, fmt.Sprintf("/api/locations/%d", loc.ID), env.adminTok, dto.UpdateLocationRequest{Address: &addr})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &loc)
	assert.Equal(t, "Bodega norte", loc.Name)
	assert.Equal(t, "Km 4", loc.Address)

	resp = env.do(t, http.MethodGet, "/api/locations/999", env.techTok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/locations", env.techTok, nil)
	var list dto.LocationListResponse
	decode(t, resp, &list)
	assert.Len(t, list.Items, 3)
}
