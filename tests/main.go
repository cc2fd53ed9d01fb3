// Command tests seeds a development database with a service catalogue,
// demo accounts and a spread of bookings, so the availability and booking
// endpoints have data to work against.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"quickmed/config"
	"quickmed/database"
	catalogRepo "quickmed/database/repository/catalog"
	"quickmed/models"
)

var seedServices = []models.Service{
	{Name: "Dental", Price: 50, Slots: []string{"9am", "10am", "11am", "12pm", "2pm", "3pm"}},
	{Name: "Cardiology", Price: 120, Slots: []string{"10am", "11am", "1pm", "2pm"}},
	{Name: "Dermatology", Price: 80, Slots: []string{"9am", "11am", "1pm", "3pm", "4pm"}},
	{Name: "Pediatrics", Price: 60, Slots: []string{"9am", "10am", "12pm", "2pm"}},
}

func main() {
	config.LoadConfig()

	client, err := database.Connect(config.AppConfig.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(config.AppConfig.MongoDatabase)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Start from a clean slate.
	for _, coll := range []string{"bookings", "services", "users", "doctors"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	catalogs, err := catalogRepo.NewMongoCatalogRepo(db)
	if err != nil {
		log.Fatalf("Catalog repository init failed: %v", err)
	}
	for i := range seedServices {
		if err := catalogs.Upsert(ctx, &seedServices[i]); err != nil {
			log.Fatalf("Failed to seed service %s: %v", seedServices[i].Name, err)
		}
	}
	fmt.Printf("Seeded %d services\n", len(seedServices))

	// One admin account and one approved doctor.
	if _, err := db.Collection("users").InsertOne(ctx, models.User{
		Email: "admin@quickmed.dev",
		Name:  "Demo Admin",
		Role:  models.RoleAdmin,
	}); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if _, err := db.Collection("doctors").InsertOne(ctx, models.Doctor{
		Email:     "doctor@quickmed.dev",
		Name:      "Dr. Demo",
		Specialty: "Dental",
		Role:      models.RoleDoctor,
	}); err != nil {
		log.Fatalf("Failed to seed doctor: %v", err)
	}

	// Scatter bookings over the next 7 days, leaving gaps so the
	// availability endpoint has something interesting to report.
	var weekDates []string
	today := time.Now()
	for i := 0; i < 7; i++ {
		weekDates = append(weekDates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}

	var bookings []interface{}
	counter := 1
	for _, date := range weekDates {
		for _, svc := range seedServices {
			for _, slot := range svc.Slots {
				if rand.Float64() > 0.4 {
					continue
				}
				bookings = append(bookings, models.Booking{
					ID:              uuid.New().String(),
					Service:         svc.Name,
					Email:           fmt.Sprintf("patient%d@example.com", counter),
					AppointmentDate: date,
					Slot:            slot,
					PatientName:     fmt.Sprintf("Patient %d", counter),
					Status:          models.StatusPending,
					CreatedAt:       time.Now(),
				})
				counter++
			}
		}
	}

	if len(bookings) > 0 {
		if _, err := db.Collection("bookings").InsertMany(ctx, bookings); err != nil {
			log.Fatalf("Failed to seed bookings: %v", err)
		}
	}
	fmt.Printf("Seeded %d bookings across %d days\n", len(bookings), len(weekDates))
}
