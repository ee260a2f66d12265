package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"internship-management-api/config"
	"internship-management-api/controllers"
	"internship-management-api/middleware"
	"internship-management-api/models"
	"internship-management-api/routes"
	"internship-management-api/services"
	"internship-management-api/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add logging middleware
	router.Use(gin.Logger())

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// One in-memory store set per server process; state lives for the
	// process lifetime only.
	stores := store.NewStores()
	seedDemoData(stores)

	notifier := services.NewNotifier(stores.Users, stores.Notifications)
	journal := services.NewJournalClient(300 * time.Millisecond)

	dashboard := controllers.NewDashboardController(stores)
	defer dashboard.Close()

	routes.SetupRoutes(router, stores.Users, routes.Controllers{
		Auth:          controllers.NewAuthController(stores.Users),
		Applications:  controllers.NewApplicationController(stores.Applications, notifier),
		Logs:          controllers.NewLogController(stores.Logs, notifier),
		Jobs:          controllers.NewJobController(stores.Jobs),
		Interns:       controllers.NewInternController(stores.Interns),
		Journal:       controllers.NewJournalController(journal),
		Dashboard:     dashboard,
		Notifications: controllers.NewNotificationController(stores.Notifications),
	})

	// Periodic review-queue summary in the server log.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go services.Watch(ctx, time.Minute, func() {
		apps := stores.Applications.All()
		logs := stores.Logs.All()
		pending := 0
		for _, a := range apps {
			if a.Status == models.StatusPending {
				pending++
			}
		}
		for _, l := range logs {
			if l.Status == models.StatusPending {
				pending++
			}
		}
		log.Printf("review queue: %d applications, %d journals, %d awaiting decision", len(apps), len(logs), pending)
	})

	// Start server
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedDemoData loads the accounts and sample records the demo panels
// expect. Passwords come from SEED_PASSWORD (default "password123").
func seedDemoData(stores *store.Stores) {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password:", err)
	}

	stores.Users.Add(models.User{
		Name:          "Test Student",
		Email:         "student@example.com",
		Password:      string(hash),
		Role:          models.RoleStudent,
		StudentNumber: "2024001",
		Department:    "Computer Engineering",
	})
	stores.Users.Add(models.User{
		Name:     "Test Company",
		Email:    "company@example.com",
		Password: string(hash),
		Role:     models.RoleCompany,
		Company:  "ABC Technology",
	})
	stores.Users.Add(models.User{
		Name:     "Test University",
		Email:    "university@example.com",
		Password: string(hash),
		Role:     models.RoleUniversity,
	})

	stores.Jobs.Add(models.Job{
		Company:             "ABC Technology",
		Title:               "Backend Intern",
		Description:         "Work on API development with the platform team.",
		Requirements:        []string{"Go or similar backend language", "Basic SQL"},
		Location:            "Istanbul",
		StartDate:           "2026-06-01",
		EndDate:             "2026-08-31",
		ApplicationDeadline: "2026-05-15",
		Status:              models.JobActive,
		CompanyDetails: &models.CompanyDetails{
			Address: "Levent, Istanbul",
			Phone:   "+90 212 000 0000",
			Email:   "hr@abctech.example.com",
			Website: "https://abctech.example.com",
			About:   "Product company building developer tooling.",
		},
	})
	stores.Jobs.Add(models.Job{
		Company:             "ABC Technology",
		Title:               "Data Intern",
		Description:         "ML pipelines and reporting.",
		Requirements:        []string{"Python", "Statistics basics"},
		Location:            "Ankara",
		StartDate:           "2026-06-15",
		EndDate:             "2026-09-15",
		ApplicationDeadline: "2026-05-30",
		Status:              models.JobActive,
	})

	stores.Interns.Add(models.Intern{
		Name:       "John",
		Surname:    "Doe",
		Status:     models.ReviewNoReportMissing,
		Email:      "john.doe@example.com",
		University: "ABC University",
		Department: "Computer Engineering",
		StartDate:  "2024-01-01",
		EndDate:    "2024-03-01",
	})
	stores.Interns.Add(models.Intern{
		Name:       "Jane",
		Surname:    "Smith",
		Status:     models.ReviewApproved,
		University: "XYZ University",
		Department: "Software Engineering",
		Evaluation: &models.Evaluation{
			Approved:    true,
			Description: "A very successful internship period.",
		},
	})
	stores.Interns.Add(models.Intern{
		Name:       "Ahmet",
		Surname:    "Yilmaz",
		Status:     models.ReviewReportMissing,
		University: "DEF University",
		Department: "Electrical-Electronics Engineering",
	})
}
