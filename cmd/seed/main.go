package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a sandbox pro account with an offerer, venues, offers,
// stocks and bookings to work against.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PASS CULTURE PRO - Sandbox Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to databases")

	if err := config.Gorm.AutoMigrate(
		&models.Offerer{},
		&models.Venue{},
		&models.Offer{},
		&models.Stock{},
		&models.Booking{},
		&models.ProUser{},
		&models.ProSession{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	// Get input from user
	email, password, name := getProCredentials()

	// Check if the pro user already exists
	var existingUser models.ProUser
	if err := config.Gorm.Where("email = ?", email).First(&existingUser).Error; err == nil {
		fmt.Printf("❌ Pro user with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	authService := services.GetProAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	offerer := seedOfferer()
	venues := seedVenues(offerer)
	offers := seedOffers(venues)
	seedBookings(offers)

	// Create the pro user attached to the sandbox offerer
	proUser := models.ProUser{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		FirstName:    name,
		PasswordHash: passwordHash,
		OffererID:    &offerer.ID,
		Status:       "active",
	}
	if err := config.Gorm.Create(&proUser).Error; err != nil {
		log.Fatalf("Failed to create pro user: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Sandbox Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Pro user: %s (%s)\n", proUser.Email, proUser.ID)
	fmt.Printf("Offerer:  %s (%s)\n", offerer.Name, offerer.ID)
	fmt.Printf("Venues:   %d\n", len(venues))
	fmt.Printf("Offers:   %d\n", len(offers))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/pro/auth/login with email and password")
	fmt.Println("3. Browse offers at GET /api/v1/pro/offers")
	fmt.Println()
}

// seedOfferer creates the sandbox cultural structure
func seedOfferer() models.Offerer {
	offerer := models.Offerer{
		Name:       "Structure Culturelle Sandbox",
		SIREN:      "853318459",
		Address:    "12 rue Duhesme",
		PostalCode: "75018",
		City:       "Paris",
		Status:     "validated",
	}
	if err := config.Gorm.Create(&offerer).Error; err != nil {
		log.Fatalf("Failed to create offerer: %v", err)
	}
	log.Printf("✓ Offerer '%s' created", offerer.Name)
	return offerer
}

// seedVenues creates one physical and one virtual venue
func seedVenues(offerer models.Offerer) []models.Venue {
	siret := offerer.SIREN + "00016"
	publicName := "Le Petit Théâtre"
	venues := []models.Venue{
		{
			OffererID:  offerer.ID,
			Name:       "Théâtre de la Butte",
			PublicName: &publicName,
			Address:    "34 rue Lamarck",
			PostalCode: "75018",
			City:       "Paris",
			SIRET:      &siret,
			IsVirtual:  false,
		},
		{
			OffererID: offerer.ID,
			Name:      "Offre numérique",
			IsVirtual: true,
		},
	}
	for i := range venues {
		if err := config.Gorm.Create(&venues[i]).Error; err != nil {
			log.Fatalf("Failed to create venue: %v", err)
		}
	}
	log.Printf("✓ %d venues created", len(venues))
	return venues
}

// seedOffers creates one offer of each kind with stocks
func seedOffers(venues []models.Venue) []models.Offer {
	now := time.Now()
	in30Days := now.Add(30 * 24 * time.Hour)
	in25Days := now.Add(25 * 24 * time.Hour)
	qty50 := 50
	qty2 := 2
	bookingEmail := "reservations@theatredelabutte.fr"

	offers := []models.Offer{
		{
			Name:         "Concert de jazz au théâtre",
			Description:  "Une soirée jazz avec le quartet local",
			Kind:         models.OfferKindIndividual,
			RawStatus:    models.StatusActive,
			IsActive:     true,
			IsEditable:   true,
			CategoryID:   "CONCERT",
			CreationMode: models.CreationModeManual,
			BookingEmail: &bookingEmail,
			VenueID:      venues[0].ID,
			Stocks: []models.Stock{
				{
					Price:                15.00,
					RemainingQuantity:    &qty50,
					BookingLimitDatetime: &in25Days,
					BeginningDatetime:    &in30Days,
				},
			},
		},
		{
			Name:         "Atelier théâtre pour scolaires",
			Description:  "Initiation au jeu théâtral, du CE2 au CM2",
			Kind:         models.OfferKindCollectiveBookable,
			RawStatus:    models.StatusActive,
			IsActive:     true,
			IsEditable:   true,
			CategoryID:   "ATELIER",
			CreationMode: models.CreationModeManual,
			BookingEmail: &bookingEmail,
			VenueID:      venues[0].ID,
			Stocks: []models.Stock{
				{
					Price:                300.00,
					RemainingQuantity:    &qty2,
					BookingLimitDatetime: &in25Days,
					BeginningDatetime:    &in30Days,
				},
			},
		},
		{
			Name:         "Visite du théâtre et de ses coulisses",
			Description:  "Offre vitrine à adapter avec chaque établissement",
			Kind:         models.OfferKindCollectiveTemplate,
			RawStatus:    models.StatusActive,
			IsActive:     true,
			IsEditable:   true,
			CategoryID:   "VISITE",
			CreationMode: models.CreationModeManual,
			VenueID:      venues[0].ID,
		},
		{
			Name:         "Concert en streaming",
			Description:  "",
			Kind:         models.OfferKindIndividual,
			RawStatus:    models.StatusDraft,
			IsActive:     false,
			IsEditable:   true,
			CategoryID:   "CONCERT",
			CreationMode: models.CreationModeManual,
			VenueID:      venues[1].ID,
		},
	}
	for i := range offers {
		if err := config.Gorm.Create(&offers[i]).Error; err != nil {
			log.Fatalf("Failed to create offer: %v", err)
		}
	}
	log.Printf("✓ %d offers created", len(offers))
	return offers
}

// seedBookings creates a few bookings on the individual offer's stock
func seedBookings(offers []models.Offer) {
	if len(offers) == 0 || len(offers[0].Stocks) == 0 {
		return
	}
	stock := offers[0].Stocks[0]
	bookings := []models.Booking{
		{
			StockID:              stock.ID,
			Token:                "ABC234",
			BeneficiaryEmail:     "jeune1@example.com",
			BeneficiaryFirstName: "Léa",
			BeneficiaryLastName:  "Martin",
			Quantity:             1,
			Amount:               stock.Price,
			Status:               "confirmed",
		},
		{
			StockID:              stock.ID,
			Token:                "DEF567",
			BeneficiaryEmail:     "jeune2@example.com",
			BeneficiaryFirstName: "Hugo",
			BeneficiaryLastName:  "Bernard",
			Quantity:             2,
			Amount:               stock.Price * 2,
			Status:               "pending",
		},
	}
	for i := range bookings {
		if err := config.Gorm.Create(&bookings[i]).Error; err != nil {
			log.Fatalf("Failed to create booking: %v", err)
		}
	}
	log.Printf("✓ %d bookings created", len(bookings))
}

// getProCredentials prompts user for the sandbox pro account details
func getProCredentials() (email, password, name string) {
	fmt.Println("Enter Sandbox Pro Account Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Name
	for {
		fmt.Print("First name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 12 characters): ")
		fmt.Scanln(&password)

		authService := services.GetProAuthService()
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 12 characters")
			continue
		}
		break
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}
