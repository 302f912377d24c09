package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/protetiq/lab-orders-api/internal/httperr"
	"github.com/protetiq/lab-orders-api/internal/httpresp"
	"github.com/protetiq/lab-orders-api/internal/models"
	"github.com/protetiq/lab-orders-api/internal/validation"
)

type PieceTypeHandler struct {
	db *gorm.DB
}

func NewPieceTypeHandler(db *gorm.DB) *PieceTypeHandler {
	return &PieceTypeHandler{db: db}
}

// --------- Requests ---------

// BasePrice é ponteiro: zero é preço válido e "required" do validator
// descartaria o zero como ausente.
type CreatePieceTypeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	BasePrice   *float64 `json:"base_price" binding:"required,gte=0"`
}

type UpdatePieceTypeRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	BasePrice   *float64 `json:"base_price,omitempty" binding:"omitempty,gte=0"`
}

// --------- Handlers ---------

func (h *PieceTypeHandler) List(c *gin.Context) {
	var types []models.PieceType
	if err := h.db.
		Order("name ASC").
		Find(&types).Error; err != nil {
		httperr.Internal(c, "failed_to_list_piece_types", err.Error())
		return
	}

	httpresp.OK(c, types)
}

func (h *PieceTypeHandler) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var pieceType models.PieceType
	if err := h.db.First(&pieceType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "piece_type_not_found", "Tipo de peça não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_piece_type", err.Error())
		return
	}

	httpresp.OK(c, pieceType)
}

func (h *PieceTypeHandler) Create(c *gin.Context) {
	var req CreatePieceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validation.Issues(err))
		return
	}

	pieceType := models.PieceType{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   *req.BasePrice,
	}

	if err := h.db.Create(&pieceType).Error; err != nil {
		httperr.Internal(c, "failed_to_create_piece_type", err.Error())
		return
	}

	httpresp.Created(c, pieceType)
}

func (h *PieceTypeHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var pieceType models.PieceType
	if err := h.db.First(&pieceType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "piece_type_not_found", "Tipo de peça não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_piece_type", err.Error())
		return
	}

	var req UpdatePieceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validation.Issues(err))
		return
	}

	if req.Name != nil {
		pieceType.Name = *req.Name
	}
	if req.Description != nil {
		pieceType.Description = *req.Description
	}
	if req.BasePrice != nil {
		pieceType.BasePrice = *req.BasePrice
	}

	if err := h.db.Save(&pieceType).Error; err != nil {
		httperr.Internal(c, "failed_to_update_piece_type", err.Error())
		return
	}

	httpresp.OK(c, pieceType)
}

func (h *PieceTypeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var pieceType models.PieceType
	if err := h.db.First(&pieceType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "piece_type_not_found", "Tipo de peça não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_piece_type", err.Error())
		return
	}

	if err := h.db.Delete(&pieceType).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.Conflict(c, "piece_type_in_use", "Tipo de peça possui ordens vinculadas.")
			return
		}
		httperr.Internal(c, "failed_to_delete_piece_type", err.Error())
		return
	}

	httpresp.Ack(c)
}
