package main

import (
	"context"

	"property-management-backend/config"
	"property-management-backend/jobs"
	"property-management-backend/middleware"
	"property-management-backend/seeds"
	"property-management-backend/token"
	"property-management-backend/utils"

	apartment_repositories "property-management-backend/apartments/repositories"
	billing_repositories "property-management-backend/billing/repositories"
	billing_services "property-management-backend/billing/services"
	complaint_repositories "property-management-backend/complaints/repositories"
	lease_repositories "property-management-backend/leases/repositories"
	lease_services "property-management-backend/leases/services"
	location_repositories "property-management-backend/locations/repositories"
	maintenance_repositories "property-management-backend/maintenance/repositories"
	report_repositories "property-management-backend/reports/repositories"
	tenant_repositories "property-management-backend/tenants/repositories"
	user_repositories "property-management-backend/users/repositories"

	apartment_routes "property-management-backend/apartments/routes"
	billing_routes "property-management-backend/billing/routes"
	complaint_routes "property-management-backend/complaints/routes"
	lease_routes "property-management-backend/leases/routes"
	location_routes "property-management-backend/locations/routes"
	maintenance_routes "property-management-backend/maintenance/routes"
	report_routes "property-management-backend/reports/routes"
	tenant_routes "property-management-backend/tenants/routes"
	user_routes "property-management-backend/users/routes"

	searchControllers "property-management-backend/search/controllers"
	search_routes "property-management-backend/search/routes"
	searchServices "property-management-backend/search/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()

	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file loaded, relying on environment", zap.Error(err))
	}

	if err := utils.InitializeDateLocation(); err != nil {
		config.Logger.Fatal("Failed to initialize date location", zap.Error(err))
	}

	app := fiber.New()
	middleware.InitCors(app)

	db := config.ConfigureDatabase()
	ctx := context.Background()
	redisClient := config.InitRedisServer(ctx)

	tokenMaker, err := token.NewPasetoMaker(config.GetEnv("TOKEN_SYMMETRIC_KEY"))
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	utils.InitializeMailer(config.Logger)

	indexPath := utils.GetenvDefault("BLEVE_INDEX_PATH", "./bleve_data")
	indexingService, err := searchServices.NewIndexingService(config.Logger, indexPath)
	if err != nil {
		config.Logger.Fatal("Cannot open search index", zap.String("path", indexPath), zap.Error(err))
	}
	defer indexingService.Close()

	// Repositories
	locationRepo := location_repositories.NewLocationRepository(db)
	apartmentRepo := apartment_repositories.NewApartmentRepository(db)
	tenantRepo := tenant_repositories.NewTenantRepository(db)
	leaseRepo := lease_repositories.NewLeaseRepository(db)
	invoiceRepo := billing_repositories.NewInvoiceRepository(db)
	paymentRepo := billing_repositories.NewPaymentRepository(db)
	complaintRepo := complaint_repositories.NewComplaintRepository(db)
	maintenanceRepo := maintenance_repositories.NewMaintenanceRepository(db)
	userRepo := user_repositories.NewUserRepository(db)
	reportRepo := report_repositories.NewReportRepository(db)

	// Services
	leaseService := lease_services.NewLeaseService(db, leaseRepo, apartmentRepo)
	paymentService := billing_services.NewPaymentService(db, paymentRepo)

	appCtx := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
		FetchUser:   userRepo.GetUserByUsername,
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Static("/public", "./public")

	// Routes
	location_routes.LocationRouterInit(app, appCtx, locationRepo)
	apartment_routes.ApartmentRouterInit(app, appCtx, apartmentRepo, indexingService)
	tenant_routes.TenantRouterInit(app, appCtx, tenantRepo, indexingService)
	lease_routes.LeaseRouterInit(app, appCtx, leaseRepo, leaseService)
	billing_routes.BillingRouterInit(app, appCtx, invoiceRepo, paymentRepo, paymentService)
	complaint_routes.ComplaintRouterInit(app, appCtx, complaintRepo)
	maintenance_routes.MaintenanceRouterInit(app, appCtx, maintenanceRepo)
	user_routes.UserRouterInit(app, appCtx, userRepo)
	report_routes.ReportRouterInit(app, appCtx, reportRepo)

	searchController := searchControllers.NewSearchController(indexingService)
	search_routes.SearchRouterInit(app, appCtx, searchController)

	if config.GetEnv("SEED_ON_START") == "true" {
		if err := seeds.SeedAll(db); err != nil {
			config.Logger.Error("Database seeding failed", zap.Error(err))
		}
	}

	reconciler := &jobs.Reconciler{DB: db, RedisClient: redisClient, Ctx: ctx}
	scheduler, err := jobs.StartScheduler(reconciler)
	if err != nil {
		config.Logger.Fatal("Cannot start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	port := utils.GetenvDefault("PORT", "8080")
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
