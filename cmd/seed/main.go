package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"invoicebox/internal/config"
	"invoicebox/internal/database"
	"invoicebox/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM vendors")
	db.Exec("DELETE FROM profiles")
	db.Exec("DELETE FROM organizations")
	db.Exec("DELETE FROM users")

	log.Println("Creating demo organization...")
	org := domain.Organization{
		ID:   uuid.NewString(),
		Name: "Acme Trading Co.",
	}
	db.Create(&org)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := domain.User{
		ID:           uuid.NewString(),
		Email:        "owner@acme.example",
		PasswordHash: string(hash),
	}
	db.Create(&user)
	db.Create(&domain.Profile{
		ID:             user.ID,
		OrganizationID: org.ID,
		Email:          user.Email,
	})

	log.Println("Creating vendors...")
	vendorNames := []string{"Northwind Supplies", "Globex Logistics", "Initech Services"}
	for i, name := range vendorNames {
		v := domain.Vendor{
			ID:             uuid.NewString(),
			OrganizationID: org.ID,
			Name:           name,
			UploadToken:    uuid.NewString(),
		}
		db.Create(&v)

		// a couple of sample invoices per vendor, metadata only
		for n := 0; n < 2; n++ {
			amount := int64((i + 1) * 10000 * (n + 1))
			created := time.Now().AddDate(0, 0, -(i*7 + n))
			inv := domain.Invoice{
				ID:             uuid.NewString(),
				VendorID:       v.ID,
				OrganizationID: org.ID,
				FilePath:       fmt.Sprintf("%s/%s/%d.pdf", org.ID, v.ID, created.UnixMilli()),
				FileName:       fmt.Sprintf("invoice-%d.pdf", n+1),
				Amount:         &amount,
				Status:         domain.InvoiceUnpaid,
				CreatedAt:      created,
			}
			db.Create(&inv)
		}

		log.Printf("  %s upload link: /upload/%s", name, v.UploadToken)
	}

	log.Println("Seed complete. Login: owner@acme.example / password123")
}
