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

type DentistHandler struct {
	db *gorm.DB
}

func NewDentistHandler(db *gorm.DB) *DentistHandler {
	return &DentistHandler{db: db}
}

// --------- Requests ---------

type CreateDentistRequest struct {
	Name   string  `json:"name" binding:"required"`
	CRO    *string `json:"cro"`
	Phone  string  `json:"phone"`
	Email  string  `json:"email" binding:"omitempty,email"`
	Clinic string  `json:"clinic"`
}

type UpdateDentistRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1"`
	CRO    *string `json:"cro,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Clinic *string `json:"clinic,omitempty"`
}

// --------- Handlers ---------

func (h *DentistHandler) List(c *gin.Context) {
	var dentists []models.Dentist
	if err := h.db.
		Order("name ASC").
		Find(&dentists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_dentists", err.Error())
		return
	}

	httpresp.OK(c, dentists)
}

func (h *DentistHandler) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var dentist models.Dentist
	if err := h.db.First(&dentist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "dentist_not_found", "Dentista não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_dentist", err.Error())
		return
	}

	httpresp.OK(c, dentist)
}

func (h *DentistHandler) Create(c *gin.Context) {
	var req CreateDentistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validation.Issues(err))
		return
	}

	dentist := models.Dentist{
		Name:   req.Name,
		CRO:    blankToNil(req.CRO),
		Phone:  req.Phone,
		Email:  req.Email,
		Clinic: req.Clinic,
	}

	if err := h.db.Create(&dentist).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "duplicate_cro", "CRO já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_dentist", err.Error())
		return
	}

	httpresp.Created(c, dentist)
}

func (h *DentistHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var dentist models.Dentist
	if err := h.db.First(&dentist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "dentist_not_found", "Dentista não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_dentist", err.Error())
		return
	}

	var req UpdateDentistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validation.Issues(err))
		return
	}

	if req.Name != nil {
		dentist.Name = *req.Name
	}
	if req.CRO != nil {
		dentist.CRO = blankToNil(req.CRO)
	}
	if req.Phone != nil {
		dentist.Phone = *req.Phone
	}
	if req.Email != nil {
		dentist.Email = *req.Email
	}
	if req.Clinic != nil {
		dentist.Clinic = *req.Clinic
	}

	if err := h.db.Save(&dentist).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "duplicate_cro", "CRO já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_dentist", err.Error())
		return
	}

	httpresp.OK(c, dentist)
}

func (h *DentistHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var dentist models.Dentist
	if err := h.db.First(&dentist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "dentist_not_found", "Dentista não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_dentist", err.Error())
		return
	}

	if err := h.db.Delete(&dentist).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.Conflict(c, "dentist_in_use", "Dentista possui ordens vinculadas.")
			return
		}
		httperr.Internal(c, "failed_to_delete_dentist", err.Error())
		return
	}

	httpresp.Ack(c)
}
