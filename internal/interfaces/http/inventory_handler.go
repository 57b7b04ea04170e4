package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	"github.com/jhoicas/cmms-inventario/internal/application/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InventoryHandler maneja recepciones, traslados, consumos y consultas de saldos (protegido).
type InventoryHandler struct {
	receive       *inventory.ReceivePartsUseCase
	transfer      *inventory.TransferPartsUseCase
	issue         *inventory.IssuePartsUseCase
	query         *inventory.QueryUseCase
	replenishment *inventory.ReplenishmentUseCase
	documents     *inventory.DocumentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	receive *inventory.ReceivePartsUseCase,
	transfer *inventory.TransferPartsUseCase,
	issue *inventory.IssuePartsUseCase,
	query *inventory.QueryUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	documents *inventory.DocumentUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		receive:       receive,
		transfer:      transfer,
		issue:         issue,
		query:         query,
		replenishment: replenishment,
		documents:     documents,
	}
}

// Receive godoc
// @Summary      Registrar recepción de proveedor
// @Description  Crea la recepción y suma la cantidad al saldo (repuesto, ubicación) en una sola transacción.
// @Description  received_by en 0 toma el usuario autenticado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceivePartsRequest  true  "Recepción"
// @Success      201   {object}  dto.ReceivePartsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/receive [post]
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceivePartsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ReceivedBy == 0 {
		in.ReceivedBy = GetUserID(c)
	}
	id, err := h.receive.Receive(c.UserContext(), inventory.ReceiveInput{
		PartID:          in.SparePartID,
		LocationID:      in.LocationID,
		Quantity:        in.Quantity,
		ReceivedBy:      in.ReceivedBy,
		ReceivedDate:    in.ReceivedDate,
		Supplier:        in.Supplier,
		ReferenceNumber: in.ReferenceNumber,
		UnitCost:        in.UnitCost,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReceivePartsResponse{
		Message:  "recepción registrada",
		InflowID: id,
	})
}

// Transfer godoc
// @Summary      Trasladar repuestos entre ubicaciones
// @Description  Todo o nada: si un ítem no tiene stock suficiente en origen no persiste ningún cambio.
// @Description  transferred_by en 0 toma el usuario autenticado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Traslado"
// @Success      201   {object}  dto.TransferCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse  "validación o stock insuficiente (cita el repuesto)"
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.TransferredBy == 0 {
		in.TransferredBy = GetUserID(c)
	}
	items := make([]inventory.TransferItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.TransferItemInput{
			PartID:   it.SparePartID,
			Quantity: it.Quantity,
			UnitCost: it.UnitCost,
		})
	}
	id, err := h.transfer.Transfer(c.UserContext(), inventory.TransferInput{
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		TransferredBy:  in.TransferredBy,
		TransferDate:   in.TransferDate,
		Notes:          in.Notes,
		Items:          items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferCreatedResponse{
		Message:    "traslado completado",
		TransferID: id,
	})
}

// Issue godoc
// @Summary      Registrar consumo de repuestos
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssuePartsRequest  true  "Consumo"
// @Success      201   {object}  dto.IssuePartsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/issue [post]
func (h *InventoryHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssuePartsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.IssuedBy == 0 {
		in.IssuedBy = GetUserID(c)
	}
	res, err := h.issue.Issue(c.UserContext(), inventory.IssueInput{
		PartID:     in.SparePartID,
		LocationID: in.LocationID,
		Quantity:   in.Quantity,
		IssuedBy:   in.IssuedBy,
		Reference:  in.Reference,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IssuePartsResponse{
		Message: "consumo registrado",
		IssueID: res.IssueID,
		InStock: res.InStock,
	})
}

// BalancesByLocation godoc
// @Summary      Saldos de una ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location_id  path  int  true  "ID de la ubicación"
// @Success      200  {array}   dto.LocationBalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/balances/{location_id} [get]
func (h *InventoryHandler) BalancesByLocation(c *fiber.Ctx) error {
	locationID, err := paramID(c, "location_id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.BalancesByLocation(c.UserContext(), locationID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportBalances godoc
// @Summary      Exportar saldos de una ubicación (xlsx)
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        location_id  path  int  true  "ID de la ubicación"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/balances/{location_id}/export [get]
func (h *InventoryHandler) ExportBalances(c *fiber.Ctx) error {
	locationID, err := paramID(c, "location_id")
	if err != nil {
		return writeError(c, err)
	}
	data, filename, err := h.documents.ExportLocationBalances(c.UserContext(), locationID)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, xlsxContentType, filename, data)
}

// PartBalance godoc
// @Summary      Saldo de un repuesto en una ubicación
// @Description  Si no hay registro de saldo devuelve ceros: ausencia equivale a stock cero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        part_id      path  int  true  "ID del repuesto"
// @Param        location_id  path  int  true  "ID de la ubicación"
// @Success      200  {object}  dto.BalanceResponse
// @Router       /api/inventory/parts/{part_id}/balance/{location_id} [get]
func (h *InventoryHandler) PartBalance(c *fiber.Ctx) error {
	partID, err := paramID(c, "part_id")
	if err != nil {
		return writeError(c, err)
	}
	locationID, err := paramID(c, "location_id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.GetBalance(c.UserContext(), partID, locationID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PartDetails godoc
// @Summary      Detalle de un repuesto
// @Description  Catálogo, saldos por ubicación y recepciones (más recientes primero).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del repuesto"
// @Success      200  {object}  dto.PartDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/parts/{id}/details [get]
func (h *InventoryHandler) PartDetails(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.PartDetails(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transfers godoc
// @Summary      Historial de traslados
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/inventory/transfers [get]
func (h *InventoryHandler) Transfers(c *fiber.Ctx) error {
	out, err := h.query.TransferHistory(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetTransfer godoc
// @Summary      Obtener traslado por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers/{id} [get]
func (h *InventoryHandler) GetTransfer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.GetTransfer(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TransferSlip godoc
// @Summary      Comprobante de traslado (PDF)
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del traslado"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers/{id}/slip [get]
func (h *InventoryHandler) TransferSlip(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	data, filename, err := h.documents.TransferSlip(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "application/pdf", filename, data)
}

// Receipts godoc
// @Summary      Historial de recepciones
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.ReceiptResponse
// @Router       /api/inventory/receipts [get]
func (h *InventoryHandler) Receipts(c *fiber.Ctx) error {
	out, err := h.query.ReceiptHistory(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Filters godoc
// @Summary      Valores para filtros de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryFiltersResponse
// @Router       /api/inventory/filters [get]
func (h *InventoryHandler) Filters(c *fiber.Ctx) error {
	out, err := h.query.Filters(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Repuestos bajo mínimo
// @Description  Saldos con in_stock menor a la cantidad mínima del repuesto, con cantidad sugerida
// @Description  de pedido y prioridad (criticidad, luego déficit).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  int  false  "Filtrar por ubicación. 0 = todas."
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	locationID := int64(c.QueryInt("location_id", 0))
	if locationID < 0 {
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "location_id no puede ser negativo")
	}
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), locationID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(list),
		"items": list,
	})
}

func sendFile(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
