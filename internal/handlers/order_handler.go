package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/protetiq/lab-orders-api/internal/domain/order"
	"github.com/protetiq/lab-orders-api/internal/httperr"
	"github.com/protetiq/lab-orders-api/internal/httpresp"
	"github.com/protetiq/lab-orders-api/internal/models"
	"github.com/protetiq/lab-orders-api/internal/validation"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewOrderHandler(db *gorm.DB, loc *time.Location) *OrderHandler {
	return &OrderHandler{db: db, loc: loc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOrderRequest struct {
	Code              string   `json:"code" binding:"required"`
	Status            string   `json:"status" binding:"omitempty,oneof=entrada producao finalizada entregue"`
	ClientID          uint     `json:"client_id" binding:"required"`
	DentistID         uint     `json:"dentist_id" binding:"required"`
	PatientID         uint     `json:"patient_id" binding:"required"`
	PieceTypeID       uint     `json:"piece_type_id" binding:"required"`
	ScheduledDelivery *string  `json:"scheduled_delivery"`
	TotalValue        *float64 `json:"total_value" binding:"required,gte=0"`
	Notes             string   `json:"notes"`
}

type UpdateOrderRequest struct {
	Code              *string  `json:"code,omitempty" binding:"omitempty,min=1"`
	Status            *string  `json:"status,omitempty" binding:"omitempty,oneof=entrada producao finalizada entregue"`
	ClientID          *uint    `json:"client_id,omitempty" binding:"omitempty,gt=0"`
	DentistID         *uint    `json:"dentist_id,omitempty" binding:"omitempty,gt=0"`
	PatientID         *uint    `json:"patient_id,omitempty" binding:"omitempty,gt=0"`
	PieceTypeID       *uint    `json:"piece_type_id,omitempty" binding:"omitempty,gt=0"`
	ScheduledDelivery *string  `json:"scheduled_delivery,omitempty"`
	TotalValue        *float64 `json:"total_value,omitempty" binding:"omitempty,gte=0"`
	Notes             *string  `json:"notes,omitempty"`
}

// ======================================================
// HELPERS
// ======================================================

func (h *OrderHandler) preloaded() *gorm.DB {
	return h.db.
		Preload("Client").
		Preload("Dentist").
		Preload("Patient").
		Preload("PieceType")
}

// assertReference garante que a FK aponta para uma linha existente antes
// da escrita (as quatro referências da ordem são obrigatórias).
func assertReference(db *gorm.DB, model any, id uint, field, message string) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &httperr.DomainError{
			Kind:    httperr.KindInvalidInput,
			Code:    "invalid_reference",
			Message: message,
			Fields:  []validation.FieldIssue{validation.Issue(field, "exists", message)},
		}
	}
	return nil
}

func (h *OrderHandler) parseScheduledDelivery(raw string) (*time.Time, *string, error) {
	t, err := parseISOTime(raw, h.loc)
	if err != nil {
		return nil, nil, err
	}
	return &t, domain.DeliveryDateOf(&t, h.loc), nil
}

// ======================================================
// LIST (filtro opcional de status; valor desconhecido é ignorado)
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	q := h.preloaded()

	if st, ok := domain.ParseStatus(c.Query("status")); ok {
		q = q.Where("status = ?", st)
	}

	var orders []models.Order
	if err := q.
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		httperr.Internal(c, "failed_to_list_orders", err.Error())
		return
	}

	httpresp.OK(c, orders)
}

// ======================================================
// GET
// ======================================================

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var order models.Order
	if err := h.preloaded().First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Ordem não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_order", err.Error())
		return
	}

	httpresp.OK(c, order)
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validation.Issues(err))
		return
	}

	if err := h.assertReferences(req.ClientID, req.DentistID, req.PatientID, req.PieceTypeID); err != nil {
		httperr.Respond(c, err)
		return
	}

	// status ausente cai no valor de entrada
	status := req.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}

	order := models.Order{
		Code:        req.Code,
		Status:      status,
		ClientID:    req.ClientID,
		DentistID:   req.DentistID,
		PatientID:   req.PatientID,
		PieceTypeID: req.PieceTypeID,
		TotalValue:  *req.TotalValue,
		Notes:       req.Notes,
		EntryDate:   time.Now().In(h.loc),
	}

	if req.ScheduledDelivery != nil && *req.ScheduledDelivery != "" {
		scheduled, deliveryDate, err := h.parseScheduledDelivery(*req.ScheduledDelivery)
		if err != nil {
			httperr.Validation(c, []validation.FieldIssue{
				validation.Issue("scheduled_delivery", "datetime", "Data de entrega inválida."),
			})
			return
		}
		order.ScheduledDelivery = scheduled
		order.DeliveryDate = deliveryDate
	}

	if err := h.db.Create(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "duplicate_code", "Código de ordem já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_order", err.Error())
		return
	}

	if err := h.preloaded().First(&order, order.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_order", err.Error())
		return
	}

	httpresp.Created(c, order)
}

func (h *OrderHandler) assertReferences(clientID, dentistID, patientID, pieceTypeID uint) error {
	if err := assertReference(h.db, &models.Client{}, clientID, "client_id", "Cliente não existe."); err != nil {
		return err
	}
	if err := assertReference(h.db, &models.Dentist{}, dentistID, "dentist_id", "Dentista não existe."); err != nil {
		return err
	}
	if err := assertReference(h.db, &models.Patient{}, patientID, "patient_id", "Paciente não existe."); err != nil {
		return err
	}
	return assertReference(h.db, &models.PieceType{}, pieceTypeID, "piece_type_id", "Tipo de peça não existe.")
}

// ======================================================
// UPDATE (parcial: campo ausente fica como está)
// ======================================================

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var order models.Order
	if err := h.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Ordem não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_order", err.Error())
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validation.Issues(err))
		return
	}

	if req.ClientID != nil {
		if err := assertReference(h.db, &models.Client{}, *req.ClientID, "client_id", "Cliente não existe."); err != nil {
			httperr.Respond(c, err)
			return
		}
		order.ClientID = *req.ClientID
	}
	if req.DentistID != nil {
		if err := assertReference(h.db, &models.Dentist{}, *req.DentistID, "dentist_id", "Dentista não existe."); err != nil {
			httperr.Respond(c, err)
			return
		}
		order.DentistID = *req.DentistID
	}
	if req.PatientID != nil {
		if err := assertReference(h.db, &models.Patient{}, *req.PatientID, "patient_id", "Paciente não existe."); err != nil {
			httperr.Respond(c, err)
			return
		}
		order.PatientID = *req.PatientID
	}
	if req.PieceTypeID != nil {
		if err := assertReference(h.db, &models.PieceType{}, *req.PieceTypeID, "piece_type_id", "Tipo de peça não existe."); err != nil {
			httperr.Respond(c, err)
			return
		}
		order.PieceTypeID = *req.PieceTypeID
	}

	if req.Code != nil {
		order.Code = *req.Code
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.TotalValue != nil {
		order.TotalValue = *req.TotalValue
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	if req.ScheduledDelivery != nil && *req.ScheduledDelivery != "" {
		scheduled, deliveryDate, err := h.parseScheduledDelivery(*req.ScheduledDelivery)
		if err != nil {
			httperr.Validation(c, []validation.FieldIssue{
				validation.Issue("scheduled_delivery", "datetime", "Data de entrega inválida."),
			})
			return
		}
		order.ScheduledDelivery = scheduled
		order.DeliveryDate = deliveryDate
	}

	if err := h.db.Save(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "duplicate_code", "Código de ordem já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_order", err.Error())
		return
	}

	if err := h.preloaded().First(&order, order.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_order", err.Error())
		return
	}

	httpresp.OK(c, order)
}

// ======================================================
// DELETE
// ======================================================

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var order models.Order
	if err := h.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Ordem não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_order", err.Error())
		return
	}

	if err := h.db.Delete(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_order", err.Error())
		return
	}

	httpresp.Ack(c)
}
