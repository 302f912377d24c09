package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	infraRepo "github.com/protetiq/lab-orders-api/internal/infra/repository"
	"github.com/protetiq/lab-orders-api/internal/models"
	ucOrder "github.com/protetiq/lab-orders-api/internal/usecase/order"
)

func newKPIRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	repo := infraRepo.NewOrderGormRepository(db)
	h := NewKPIHandler(ucOrder.NewKPISummary(repo, testLoc))

	r.GET("/api/kpis/orders", h.OrderSummary)
	return r
}

func seedOrder(t *testing.T, db *gorm.DB, code, status string, value float64, entry time.Time) {
	t.Helper()

	client, dentist, patient, pieceType := models.Client{}, models.Dentist{}, models.Patient{}, models.PieceType{}
	require.NoError(t, db.FirstOrCreate(&client, models.Client{Name: "KPI Cliente"}).Error)
	require.NoError(t, db.FirstOrCreate(&dentist, models.Dentist{Name: "KPI Dentista"}).Error)
	require.NoError(t, db.FirstOrCreate(&patient, models.Patient{Name: "KPI Paciente"}).Error)
	require.NoError(t, db.FirstOrCreate(&pieceType, models.PieceType{Name: "KPI Peça"}).Error)

	order := models.Order{
		Code:        code,
		Status:      status,
		ClientID:    client.ID,
		DentistID:   dentist.ID,
		PatientID:   patient.ID,
		PieceTypeID: pieceType.ID,
		TotalValue:  value,
		EntryDate:   entry,
	}
	require.NoError(t, db.Create(&order).Error)
}

func TestKPISummaryEmpty(t *testing.T) {
	db := setupTestDB(t)
	r := newKPIRouter(db)

	w := doJSON(t, r, http.MethodGet, "/api/kpis/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	byStatus := body["by_status"].(map[string]any)

	// status ausentes valem zero
	for _, status := range []string{"entrada", "producao", "finalizada", "entregue"} {
		assert.Equal(t, float64(0), byStatus[status], "status %s", status)
	}
	assert.Equal(t, float64(0), body["total_value"])
	assert.Equal(t, float64(0), body["today"])
}

func TestKPISummaryCountsAndTotal(t *testing.T) {
	db := setupTestDB(t)
	r := newKPIRouter(db)

	now := time.Now().In(testLoc)
	statuses := []string{"entrada", "entrada", "producao", "finalizada", "entregue", "entregue"}
	for i, status := range statuses {
		seedOrder(t, db, fmt.Sprintf("ORD-%d", i+1), status, 100, now)
	}

	w := doJSON(t, r, http.MethodGet, "/api/kpis/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	byStatus := body["by_status"].(map[string]any)

	assert.Equal(t, float64(2), byStatus["entrada"])
	assert.Equal(t, float64(1), byStatus["producao"])
	assert.Equal(t, float64(1), byStatus["finalizada"])
	assert.Equal(t, float64(2), byStatus["entregue"])

	// as contagens por status fecham com o total de ordens
	sum := byStatus["entrada"].(float64) + byStatus["producao"].(float64) +
		byStatus["finalizada"].(float64) + byStatus["entregue"].(float64)
	assert.Equal(t, float64(len(statuses)), sum)

	// o valor soma TODAS as ordens, inclusive as em entrada
	assert.Equal(t, float64(600), body["total_value"])
}

func TestKPISummaryTodayBoundaries(t *testing.T) {
	db := setupTestDB(t)
	r := newKPIRouter(db)

	now := time.Now().In(testLoc)
	seedOrder(t, db, "ORD-NOW", "entrada", 100, now)
	seedOrder(t, db, "ORD-PAST", "entrada", 100, now.Add(-25*time.Hour))
	seedOrder(t, db, "ORD-FUTURE", "entrada", 100, now.Add(25*time.Hour))

	w := doJSON(t, r, http.MethodGet, "/api/kpis/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["today"])
	assert.Equal(t, float64(3), body["by_status"].(map[string]any)["entrada"])
}
