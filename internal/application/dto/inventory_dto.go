package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivePartsRequest body para POST /api/inventory/receive.
type ReceivePartsRequest struct {
	SparePartID     int64            `json:"spare_part_id"`
	LocationID      int64            `json:"location_id"`
	Quantity        int64            `json:"quantity"`
	ReceivedBy      int64            `json:"received_by"`
	ReceivedDate    time.Time        `json:"received_date"`
	Supplier        string           `json:"supplier"`
	ReferenceNumber string           `json:"reference_number"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
}

// ReceivePartsResponse salida de una recepción registrada.
type ReceivePartsResponse struct {
	Message  string `json:"message"`
	InflowID int64  `json:"inflow_id"`
}

// TransferItemRequest línea de un traslado.
type TransferItemRequest struct {
	SparePartID int64            `json:"spare_part_id"`
	Quantity    int64            `json:"quantity"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfer.
type TransferRequest struct {
	FromLocationID int64                 `json:"from_location_id"`
	ToLocationID   int64                 `json:"to_location_id"`
	TransferredBy  int64                 `json:"transferred_by"`
	TransferDate   time.Time             `json:"transfer_date"`
	Notes          string                `json:"notes,omitempty"`
	Items          []TransferItemRequest `json:"items"`
}

// TransferCreatedResponse salida de un traslado creado.
type TransferCreatedResponse struct {
	Message    string `json:"message"`
	TransferID int64  `json:"transfer_id"`
}

// IssuePartsRequest body para POST /api/inventory/issue (consumo).
type IssuePartsRequest struct {
	SparePartID int64  `json:"spare_part_id"`
	LocationID  int64  `json:"location_id"`
	Quantity    int64  `json:"quantity"`
	IssuedBy    int64  `json:"issued_by"`
	Reference   string `json:"reference,omitempty"`
}

// IssuePartsResponse salida de un consumo.
type IssuePartsResponse struct {
	Message string `json:"message"`
	IssueID int64  `json:"issue_id"`
	InStock int64  `json:"in_stock"`
}

// LocationBalanceResponse fila de GET /api/inventory/balances/:location_id.
type LocationBalanceResponse struct {
	ID               int64  `json:"id"`
	PartCode         string `json:"part_code"`
	PartName         string `json:"part_name"`
	InStock          int64  `json:"in_stock"`
	TotalReceived    int64  `json:"total_received"`
	TotalConsumption int64  `json:"total_consumption"`
}

// BalanceResponse saldo puntual de un par (repuesto, ubicación). ID 0 si no existe registro.
type BalanceResponse struct {
	ID               int64 `json:"id"`
	SparePartID      int64 `json:"spare_part_id"`
	LocationID       int64 `json:"location_id"`
	InStock          int64 `json:"in_stock"`
	TotalReceived    int64 `json:"total_received"`
	TotalConsumption int64 `json:"total_consumption"`
}

// PartBalanceResponse saldo de un repuesto en una ubicación (detalle de repuesto).
type PartBalanceResponse struct {
	ID               int64  `json:"id"`
	SparePartID      int64  `json:"spare_part_id"`
	LocationID       int64  `json:"location_id"`
	LocationName     string `json:"location_name"`
	InStock          int64  `json:"in_stock"`
	TotalReceived    int64  `json:"total_received"`
	TotalConsumption int64  `json:"total_consumption"`
}

// InflowDetailResponse recepción dentro del detalle de repuesto.
type InflowDetailResponse struct {
	ID              int64           `json:"id"`
	Quantity        int64           `json:"quantity"`
	LocationName    string          `json:"location_name"`
	ReceivedBy      string          `json:"received_by"`
	ReceivedDate    time.Time       `json:"received_date"`
	Supplier        string          `json:"supplier"`
	ReferenceNumber string          `json:"reference_number"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	TotalCost       decimal.Decimal `json:"total_cost"`
}

// PartDetailsResponse salida de GET /api/inventory/parts/:id/details.
type PartDetailsResponse struct {
	Part     PartResponse           `json:"inventory_item"`
	Balances []PartBalanceResponse  `json:"balances"`
	Inflows  []InflowDetailResponse `json:"inflows"`
}

// TransferLineResponse ítem dentro del historial de traslados.
type TransferLineResponse struct {
	SparePartID int64            `json:"spare_part_id"`
	PartCode    string           `json:"part_code"`
	PartName    string           `json:"part_name"`
	Quantity    int64            `json:"quantity"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
}

// TransferResponse traslado con nombres resueltos.
type TransferResponse struct {
	ID               int64                  `json:"id"`
	TransferDate     time.Time              `json:"transfer_date"`
	FromLocationID   int64                  `json:"from_location_id"`
	FromLocationName string                 `json:"from_location_name"`
	ToLocationID     int64                  `json:"to_location_id"`
	ToLocationName   string                 `json:"to_location_name"`
	TransferredBy    string                 `json:"transferred_by"`
	Status           string                 `json:"status"`
	Notes            string                 `json:"notes"`
	Items            []TransferLineResponse `json:"items"`
}

// ReceiptLineResponse ítem de una recepción en el historial.
type ReceiptLineResponse struct {
	PartCode string          `json:"part_code"`
	PartName string          `json:"part_name"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// ReceiptResponse recepción en el historial.
type ReceiptResponse struct {
	ID              int64                 `json:"id"`
	ReceivedDate    time.Time             `json:"received_date"`
	ReceivedFrom    string                `json:"received_from"`
	ReceivedToName  string                `json:"received_to_name"`
	ReceivedBy      string                `json:"received_by"`
	Supplier        string                `json:"supplier"`
	ReferenceNumber string                `json:"reference_number"`
	Items           []ReceiptLineResponse `json:"items"`
}

// InventoryFiltersResponse valores para los desplegables de filtros.
type InventoryFiltersResponse struct {
	Locations     []LocationOption `json:"locations"`
	Categories    []string         `json:"categories"`
	Criticalities []string         `json:"criticalities"`
}

// LocationOption par id/nombre para desplegables.
type LocationOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LowStockSuggestionDTO repuesto por debajo de su cantidad mínima en una ubicación,
// con la cantidad sugerida de pedido.
type LowStockSuggestionDTO struct {
	SparePartID     int64           `json:"spare_part_id"`
	PartCode        string          `json:"part_code"`
	PartName        string          `json:"part_name"`
	LocationID      int64           `json:"location_id"`
	LocationName    string          `json:"location_name"`
	Criticality     string          `json:"criticality"`
	InStock         int64           `json:"in_stock"`
	MinimumQuantity int64           `json:"minimum_quantity"`
	SuggestedQty    int64           `json:"suggested_qty"`  // ceil(minimum * 1.5) - in_stock
	UnitPrice       decimal.Decimal `json:"unit_price"`     // precio de referencia del catálogo
	EstimatedCost   decimal.Decimal `json:"estimated_cost"` // SuggestedQty * UnitPrice
	Priority        int             `json:"priority"`       // 1 = más urgente
}
