package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/auth"
	"github.com/Ncongwana-808/autorepair-erp/internal/config"
	"github.com/Ncongwana-808/autorepair-erp/internal/handler"
	"github.com/Ncongwana-808/autorepair-erp/internal/middleware"
	"github.com/Ncongwana-808/autorepair-erp/internal/repository"
	"github.com/Ncongwana-808/autorepair-erp/internal/service"
)

// New assembles the full HTTP surface: repositories over the shared gorm
// handle, services over repositories, handlers over services, and the
// route table with its per-group access policies.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	codec := auth.NewCodec(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	jobRepo := repository.NewJobRepository(db)
	jobNoteRepo := repository.NewJobNoteRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	authSvc := service.NewAuthService(userRepo, codec, cfg)
	customerSvc := service.NewCustomerService(customerRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	jobSvc := service.NewJobService(jobRepo, jobNoteRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	usersHandler := handler.NewUsersHandler(authSvc)
	customersHandler := handler.NewCustomersHandler(customerSvc)
	vehiclesHandler := handler.NewVehiclesHandler(vehicleSvc)
	jobsHandler := handler.NewJobsHandler(jobSvc)
	invoicesHandler := handler.NewInvoicesHandler(invoiceSvc)
	healthHandler := handler.NewHealthHandler(db)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// Public surface
	r.GET("/health", healthHandler.Check)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", middleware.LoginRateLimiter(), authHandler.Login)

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Every route below requires a valid token for a live active account.
	authed := r.Group("/", middleware.JWTAuth(codec, userRepo))

	authed.GET("/auth/me", authHandler.Me)

	// Reads are open to any authenticated staff member.
	authed.GET("/customers", customersHandler.List)
	authed.GET("/customers/:id", customersHandler.Get)
	authed.GET("/customers/:id/vehicles", vehiclesHandler.ListByCustomer)
	authed.GET("/vehicles", vehiclesHandler.List)
	authed.GET("/vehicles/:id", vehiclesHandler.Get)
	authed.GET("/jobs", jobsHandler.List)
	authed.GET("/jobs/:id", jobsHandler.Get)
	authed.GET("/jobs/:id/notes", jobsHandler.ListNotes)
	authed.GET("/jobs/:id/invoice", invoicesHandler.GetByJob)
	authed.GET("/invoices", invoicesHandler.List)

	// Writes and the personal work queue require worker or admin.
	staff := authed.Group("/", middleware.WorkerOrAdmin())
	staff.GET("/my-jobs", jobsHandler.MyJobs)
	staff.POST("/customers", customersHandler.Create)
	staff.PATCH("/customers/:id", customersHandler.Update)
	staff.POST("/vehicles", vehiclesHandler.Create)
	staff.POST("/jobs", jobsHandler.Create)
	staff.PATCH("/jobs/:id", jobsHandler.Update)
	staff.POST("/job-notes", jobsHandler.AddNote)
	staff.POST("/invoices", invoicesHandler.Create)
	staff.PATCH("/invoices/:id", invoicesHandler.Update)

	// Account administration is admin only.
	admin := authed.Group("/", middleware.AdminOnly())
	admin.GET("/users", usersHandler.List)
	admin.GET("/users/:id", usersHandler.Get)
	admin.PATCH("/users/:id", usersHandler.Update)

	return r
}
