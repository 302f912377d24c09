package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/protetiq/lab-orders-api/internal/config"
	dbpkg "github.com/protetiq/lab-orders-api/internal/db"
	domain "github.com/protetiq/lab-orders-api/internal/domain/order"
	"github.com/protetiq/lab-orders-api/internal/models"
	"github.com/protetiq/lab-orders-api/internal/timezone"
)

// Popula o banco com dados de demonstração. Idempotente: roda quantas
// vezes quiser, as chaves de negócio (email, CRO, nome, código) seguram
// as duplicatas.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	loc := timezone.Location(cfg.LabTimezone)

	var clients []models.Client
	for i := 1; i <= 10; i++ {
		email := fmt.Sprintf("cliente%d@ex.com", i)
		client := models.Client{
			Name:  fmt.Sprintf("Cliente %d", i),
			Phone: fmt.Sprintf("(11) 9999-000%d", i-1),
			Email: &email,
		}
		if err := db.Where("email = ?", email).FirstOrCreate(&client).Error; err != nil {
			log.Fatalf("seed clients: %v", err)
		}
		clients = append(clients, client)
	}

	var dentists []models.Dentist
	for i := 1; i <= 10; i++ {
		cro := fmt.Sprintf("CRO%d", 999+i)
		dentist := models.Dentist{
			Name:  fmt.Sprintf("Dr. Dentista %d", i),
			CRO:   &cro,
			Phone: fmt.Sprintf("(11) 9888-000%d", i-1),
		}
		if err := db.Where("cro = ?", cro).FirstOrCreate(&dentist).Error; err != nil {
			log.Fatalf("seed dentists: %v", err)
		}
		dentists = append(dentists, dentist)
	}

	var patients []models.Patient
	for i := 1; i <= 10; i++ {
		patient := models.Patient{Name: fmt.Sprintf("Paciente %d", i)}
		if err := db.Where("name = ?", patient.Name).FirstOrCreate(&patient).Error; err != nil {
			log.Fatalf("seed patients: %v", err)
		}
		patients = append(patients, patient)
	}

	typeNames := []string{
		"Coroa de Porcelana",
		"Ponte Fixa",
		"Lente de Contato",
		"Inlay/Onlay",
		"Implante Unitário",
		"Reembasamento",
		"Zircônia",
		"PPR",
	}

	var pieceTypes []models.PieceType
	for i, name := range typeNames {
		pieceType := models.PieceType{
			Name:        name,
			Description: name + " - descrição",
			BasePrice:   float64(500 + i*100),
		}
		if err := db.Where("name = ?", name).FirstOrCreate(&pieceType).Error; err != nil {
			log.Fatalf("seed piece types: %v", err)
		}
		pieceTypes = append(pieceTypes, pieceType)
	}

	statuses := domain.AllStatuses()

	for i := 1; i <= 20; i++ {
		code := fmt.Sprintf("ORD-%d", 1000+i)

		scheduled := time.Now().In(loc).AddDate(0, 0, rand.Intn(14))
		order := models.Order{
			Code:              code,
			Status:            string(statuses[rand.Intn(len(statuses))]),
			ClientID:          clients[rand.Intn(len(clients))].ID,
			DentistID:         dentists[rand.Intn(len(dentists))].ID,
			PatientID:         patients[rand.Intn(len(patients))].ID,
			PieceTypeID:       pieceTypes[rand.Intn(len(pieceTypes))].ID,
			ScheduledDelivery: &scheduled,
			DeliveryDate:      domain.DeliveryDateOf(&scheduled, loc),
			TotalValue:        float64(300 + rand.Intn(1200)),
			EntryDate:         time.Now().In(loc),
		}
		if err := db.Where("code = ?", code).FirstOrCreate(&order).Error; err != nil {
			log.Fatalf("seed orders: %v", err)
		}
	}

	log.Println("seed finished")
}
