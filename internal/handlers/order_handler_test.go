package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderBody(clientID, dentistID, patientID, pieceTypeID uint) map[string]any {
	return map[string]any{
		"code":          "ORD-1",
		"status":        "entrada",
		"client_id":     clientID,
		"dentist_id":    dentistID,
		"patient_id":    patientID,
		"piece_type_id": pieceTypeID,
		"total_value":   500.0,
	}
}

func TestOrderCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)
	client, dentist, patient, pieceType := orderFixtures(t, db)

	body := validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID)
	body["scheduled_delivery"] = "2026-09-10T14:00:00-03:00"
	body["notes"] = "coroa anterior"

	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.Greater(t, created["id"].(float64), float64(0))
	assert.Equal(t, "ORD-1", created["code"])
	assert.Equal(t, "entrada", created["status"])
	assert.Equal(t, float64(500), created["total_value"])
	assert.Equal(t, "2026-09-10", created["delivery_date"])

	// referências vêm pré-carregadas
	assert.Equal(t, client.Name, created["client"].(map[string]any)["name"])
	assert.Equal(t, pieceType.Name, created["piece_type"].(map[string]any)["name"])

	w = doJSON(t, r, http.MethodGet, "/api/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, created["code"], got["code"])
	assert.Equal(t, created["total_value"], got["total_value"])
}

func TestOrderCreateWithoutStatus(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)
	client, dentist, patient, pieceType := orderFixtures(t, db)

	body := validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID)
	delete(body, "status")

	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "entrada", decodeBody(t, w)["status"])
}

func TestOrderCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)
	client, dentist, patient, pieceType := orderFixtures(t, db)

	tests := []struct {
		name   string
		mutate func(map[string]any)
		field  string
	}{
		{"missing code", func(b map[string]any) { delete(b, "code") }, "code"},
		{"unknown status", func(b map[string]any) { b["status"] = "cancelada" }, "status"},
		{"negative value", func(b map[string]any) { b["total_value"] = -10.0 }, "total_value"},
		{"missing value", func(b map[string]any) { delete(b, "total_value") }, "total_value"},
		{"missing client", func(b map[string]any) { delete(b, "client_id") }, "client_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID)
			tt.mutate(body)

			w := doJSON(t, r, http.MethodPost, "/api/orders", body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeBody(t, w)
			assert.Equal(t, "validation_error", resp["error_code"])

			fields := resp["fields"].([]any)
			require.NotEmpty(t, fields)
			assert.Equal(t, tt.field, fields[0].(map[string]any)["field"])
		})
	}
}

func TestOrderCreateUnknownReference(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)
	client, dentist, patient, pieceType := orderFixtures(t, db)

	body := validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID)
	body["patient_id"] = 999

	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_reference", decodeBody(t, w)["error_code"])
}

func TestOrderDuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)
	client, dentist, patient, pieceType := orderFixtures(t, db)

	first := validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID)
	w := doJSON(t, r, http.MethodPost, "/api/orders", first)
	require.Equal(t, http.StatusCreated, w.Code)

	second := validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID)
	second["status"] = "producao"
	second["total_value"] = 999.0

	w = doJSON(t, r, http.MethodPost, "/api/orders", second)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate_code", decodeBody(t, w)["error_code"])

	// a primeira ordem permanece como estava
	w = doJSON(t, r, http.MethodGet, "/api/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "entrada", got["status"])
	assert.Equal(t, float64(500), got["total_value"])
}

func TestOrderUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)
	client, dentist, patient, pieceType := orderFixtures(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/orders", validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	// transições são livres: qualquer status do ciclo pode ser gravado
	for _, status := range []string{"producao", "finalizada", "entregue", "entrada"} {
		w = doJSON(t, r, http.MethodPatch, "/api/orders/1", map[string]any{"status": status})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, status, decodeBody(t, w)["status"])
	}

	// fora do ciclo: rejeita sem persistir
	w = doJSON(t, r, http.MethodPatch, "/api/orders/1", map[string]any{"status": "cancelada"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders/1", nil)
	assert.Equal(t, "entrada", decodeBody(t, w)["status"])
}

func TestOrderEmptyPartialUpdateIsNoop(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)
	client, dentist, patient, pieceType := orderFixtures(t, db)

	body := validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID)
	body["notes"] = "sem alterações"
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)
	before := decodeBody(t, w)

	w = doJSON(t, r, http.MethodPatch, "/api/orders/1", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	after := decodeBody(t, w)

	for _, field := range []string{"code", "status", "total_value", "notes", "client_id", "entry_date"} {
		assert.Equal(t, before[field], after[field], "field %s should be untouched", field)
	}
}

func TestOrderListFilterAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)
	client, dentist, patient, pieceType := orderFixtures(t, db)

	for i, status := range []string{"entrada", "producao", "entrada"} {
		body := validOrderBody(client.ID, dentist.ID, patient.ID, pieceType.ID)
		body["code"] = fmt.Sprintf("ORD-%d", i+1)
		body["status"] = status
		w := doJSON(t, r, http.MethodPost, "/api/orders", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/orders?status=entrada", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 2)
	for _, item := range list {
		assert.Equal(t, "entrada", item["status"])
	}

	// filtro desconhecido é ignorado, não rejeitado
	w = doJSON(t, r, http.MethodGet, "/api/orders?status=whatever", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)
}

func TestOrderDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newOrderRouter(db)

	w := doJSON(t, r, http.MethodDelete, "/api/orders/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
