package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/protetiq/lab-orders-api/internal/httperr"
	"github.com/protetiq/lab-orders-api/internal/httpresp"
	"github.com/protetiq/lab-orders-api/internal/models"
	"github.com/protetiq/lab-orders-api/internal/validation"
)

type PatientHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewPatientHandler(db *gorm.DB, loc *time.Location) *PatientHandler {
	return &PatientHandler{db: db, loc: loc}
}

// --------- Requests ---------

type CreatePatientRequest struct {
	Name      string  `json:"name" binding:"required"`
	BirthDate *string `json:"birth_date"`
}

type UpdatePatientRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1"`
	BirthDate *string `json:"birth_date,omitempty"`
}

// --------- Handlers ---------

func (h *PatientHandler) List(c *gin.Context) {
	var patients []models.Patient
	if err := h.db.
		Order("name ASC").
		Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", err.Error())
		return
	}

	httpresp.OK(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var patient models.Patient
	if err := h.db.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "patient_not_found", "Paciente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", err.Error())
		return
	}

	httpresp.OK(c, patient)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validation.Issues(err))
		return
	}

	patient := models.Patient{Name: req.Name}

	if req.BirthDate != nil && *req.BirthDate != "" {
		t, err := parseISOTime(*req.BirthDate, h.loc)
		if err != nil {
			httperr.Validation(c, []validation.FieldIssue{
				validation.Issue("birth_date", "date", "Data de nascimento inválida."),
			})
			return
		}
		patient.BirthDate = &t
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", err.Error())
		return
	}

	httpresp.Created(c, patient)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var patient models.Patient
	if err := h.db.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "patient_not_found", "Paciente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", err.Error())
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validation.Issues(err))
		return
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.BirthDate != nil && *req.BirthDate != "" {
		t, err := parseISOTime(*req.BirthDate, h.loc)
		if err != nil {
			httperr.Validation(c, []validation.FieldIssue{
				validation.Issue("birth_date", "date", "Data de nascimento inválida."),
			})
			return
		}
		patient.BirthDate = &t
	}

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", err.Error())
		return
	}

	httpresp.OK(c, patient)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var patient models.Patient
	if err := h.db.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "patient_not_found", "Paciente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", err.Error())
		return
	}

	if err := h.db.Delete(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			httperr.Conflict(c, "patient_in_use", "Paciente possui ordens vinculadas.")
			return
		}
		httperr.Internal(c, "failed_to_delete_patient", err.Error())
		return
	}

	httpresp.Ack(c)
}
