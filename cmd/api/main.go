package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"invoicebox/internal/config"
	"invoicebox/internal/database"
	"invoicebox/internal/middleware"
	"invoicebox/internal/modules/auth"
	"invoicebox/internal/modules/file"
	"invoicebox/internal/modules/invoice"
	"invoicebox/internal/modules/upload"
	"invoicebox/internal/modules/vendor"
	jwtsvc "invoicebox/internal/pkg/jwt"
	"invoicebox/internal/pkg/storage"
	"invoicebox/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewDiskStore(cfg.StorageDir, cfg.PublicBaseURL, cfg.StorageSecret)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, orgRepo, profileRepo, j))
	vendorHandler := vendor.NewHandler(vendor.NewService(vendorRepo, profileRepo))
	invoiceHandler := invoice.NewHandler(invoice.NewService(invoiceRepo, profileRepo))
	uploadHandler := upload.NewHandler(upload.NewService(vendorRepo, invoiceRepo, orgRepo, store))
	fileHandler := file.NewHandler(file.NewService(profileRepo, store, cfg.SignedURLTTL))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	// signed-URL redemption lives outside /api/v1: the URL is the credential
	store.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		uploadHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			vendorHandler.RegisterRoutes(protected)
			invoiceHandler.RegisterRoutes(protected)
			fileHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
