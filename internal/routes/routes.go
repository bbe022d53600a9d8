package routes

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/auth"
	"github.com/BruksfildServices01/event-catering/internal/config"
	accountdomain "github.com/BruksfildServices01/event-catering/internal/domain/account"
	cateringdomain "github.com/BruksfildServices01/event-catering/internal/domain/catering"
	eventdomain "github.com/BruksfildServices01/event-catering/internal/domain/event"
	"github.com/BruksfildServices01/event-catering/internal/handlers"
	infraRepo "github.com/BruksfildServices01/event-catering/internal/infra/repository"
	"github.com/BruksfildServices01/event-catering/internal/mail"
	"github.com/BruksfildServices01/event-catering/internal/media"
	"github.com/BruksfildServices01/event-catering/internal/middleware"
	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/oauth"
	"github.com/BruksfildServices01/event-catering/internal/ratelimit"
	"github.com/BruksfildServices01/event-catering/internal/storage"
	"github.com/BruksfildServices01/event-catering/internal/timezone"
	ucAccount "github.com/BruksfildServices01/event-catering/internal/usecase/account"
	ucAdmin "github.com/BruksfildServices01/event-catering/internal/usecase/admin"
	ucCatering "github.com/BruksfildServices01/event-catering/internal/usecase/catering"
	ucEvent "github.com/BruksfildServices01/event-catering/internal/usecase/event"
	ucIdentity "github.com/BruksfildServices01/event-catering/internal/usecase/identity"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

// Repositories is every store the API talks to.
type Repositories struct {
	Users            accountdomain.Repository
	Codes            accountdomain.CodeRepository
	Events           eventdomain.Repository
	Packages         cateringdomain.CatalogRepository[models.CateringPackage]
	Inclusions       cateringdomain.CatalogRepository[models.Inclusion]
	MainDishPackages cateringdomain.CatalogRepository[models.MainDishPackage]
	MainDishes       cateringdomain.CatalogRepository[models.MainDish]
	SnackCorners     cateringdomain.CatalogRepository[models.SnackCorner]
	AddOns           cateringdomain.CatalogRepository[models.AddOn]
	Selections       cateringdomain.SelectionRepository
	AuditLogs        ucAdmin.AuditReader
}

func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:            infraRepo.NewUserGormRepository(db),
		Codes:            infraRepo.NewVerificationCodeGormRepository(db),
		Events:           infraRepo.NewEventGormRepository(db),
		Packages:         infraRepo.NewCatalogGormRepository[models.CateringPackage](db),
		Inclusions:       infraRepo.NewCatalogGormRepository[models.Inclusion](db),
		MainDishPackages: infraRepo.NewCatalogGormRepository[models.MainDishPackage](db),
		MainDishes:       infraRepo.NewCatalogGormRepository[models.MainDish](db),
		SnackCorners:     infraRepo.NewCatalogGormRepository[models.SnackCorner](db),
		AddOns:           infraRepo.NewCatalogGormRepository[models.AddOn](db),
		Selections:       infraRepo.NewSelectionGormRepository(db),
		AuditLogs:        audit.New(db),
	}
}

// Deps carries the infrastructure built in main. Optional pieces may be
// nil: Store disables uploads, Google disables OAuth, Counter disables
// rate limiting.
type Deps struct {
	Config  *config.Config
	Repos   Repositories
	Audit   *audit.Dispatcher
	Mailer  mail.Sender
	Store   storage.ObjectStore
	Google  *oauth.Google
	Counter ratelimit.Counter
	Ping    func(ctx context.Context) error
	Logger  *slog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	repos := d.Repos

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	if err := r.SetTrustedProxies(cfg.TrustedProxies()); err != nil {
		slog.Error("invalid trusted proxies, forwarding headers ignored", "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	if d.Logger != nil {
		r.Use(middleware.RequestLogger(d.Logger))
	}
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.Origins()))

	// ======================================================
	// INFRA
	// ======================================================
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)
	validator := validators.New(cfg.EmailDomainCheck)
	uploader := media.NewUploader(d.Store)

	// ======================================================
	// USE CASES
	// ======================================================
	accountUC := ucAccount.NewService(repos.Users, hasher, validator, uploader, d.Audit)
	identityUC := ucIdentity.NewService(
		repos.Users,
		repos.Codes,
		accountUC,
		hasher,
		tokens,
		validator,
		d.Mailer,
		d.Audit,
		cfg.VerificationCodeTTL,
	)
	eventUC := ucEvent.NewService(repos.Events, validator, uploader, d.Audit)

	packagesUC := ucCatering.NewCatalog[models.CateringPackage, *models.CateringPackage](repos.Packages, validator, d.Audit, "package")
	inclusionsUC := ucCatering.NewCatalog[models.Inclusion, *models.Inclusion](repos.Inclusions, validator, d.Audit, "inclusion")
	mainDishPackagesUC := ucCatering.NewCatalog[models.MainDishPackage, *models.MainDishPackage](repos.MainDishPackages, validator, d.Audit, "main_dish_package")
	mainDishesUC := ucCatering.NewCatalog[models.MainDish, *models.MainDish](repos.MainDishes, validator, d.Audit, "main_dish")
	snackCornersUC := ucCatering.NewCatalog[models.SnackCorner, *models.SnackCorner](repos.SnackCorners, validator, d.Audit, "snack_corner")
	addOnsUC := ucCatering.NewCatalog[models.AddOn, *models.AddOn](repos.AddOns, validator, d.Audit, "add_on")

	selectionsUC := ucCatering.NewSelections(repos.Selections, repos.Events, ucCatering.Catalogs{
		Packages:     repos.MainDishPackages,
		MainDishes:   repos.MainDishes,
		SnackCorners: repos.SnackCorners,
		AddOns:       repos.AddOns,
	}, validator, d.Audit)

	adminUC := ucAdmin.NewService(repos.Users, repos.Events, repos.Selections, repos.AuditLogs)

	// ======================================================
	// HANDLERS
	// ======================================================
	cookie := handlers.CookieConfig{Name: cfg.AuthCookieName, Secure: cfg.AuthCookieSecure}

	authHandler := handlers.NewAuthHandler(identityUC, d.Google, cookie, cfg.FrontendURL)
	accountHandler := handlers.NewAccountHandler(accountUC, cookie)
	eventHandler := handlers.NewEventHandler(eventUC)
	selectionHandler := handlers.NewSelectionHandler(selectionsUC)
	adminHandler := handlers.NewAdminHandler(adminUC, timezone.Location(cfg.Timezone))
	healthHandler := handlers.NewHealthHandler(d.Ping)

	authGate := middleware.Auth(middleware.AuthConfig{
		Tokens:     tokens,
		Users:      repos.Users,
		Sources:    cfg.TokenSources(),
		CookieName: cfg.AuthCookieName,
	})
	limited := middleware.RateLimit(d.Counter, cfg.AuthRateLimitPerMinute, time.Minute)

	// ======================================================
	// PLATFORM
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", middleware.MetricsHandler())

	// ======================================================
	// AUTH
	// ======================================================
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/sign-up", limited, authHandler.SignUp)
		authGroup.POST("/login", limited, authHandler.Login)
		authGroup.POST("/admin/login", limited, authHandler.AdminLogin)
		authGroup.GET("/log-out", authHandler.Logout)

		authGroup.GET("/google", authHandler.GoogleStart)
		authGroup.GET("/google/callback", authHandler.GoogleCallback)

		authGroup.POST("/forgot-password", limited, authHandler.ForgotPassword)
		authGroup.POST("/verify-code", limited, authHandler.VerifyCode)
		authGroup.POST("/reset-password", limited, authHandler.ResetPassword)
	}

	// ======================================================
	// SECURED
	// ======================================================
	secured := r.Group("/", authGate)

	secured.GET("/utils/verify-token", authHandler.VerifyToken)

	accounts := secured.Group("/account")
	{
		accounts.GET("/me", accountHandler.Me)
		accounts.GET("", accountHandler.List)
		accounts.GET("/:id", accountHandler.Get)
		accounts.POST("", middleware.RequireRole(models.RoleAdmin), accountHandler.Create)
		accounts.PUT("/:id", accountHandler.Update)
		accounts.PUT("/:id/avatar", accountHandler.UpdateAvatar)
		accounts.DELETE("/:id", accountHandler.Delete)
	}

	events := secured.Group("/event")
	{
		events.GET("", eventHandler.List)
		events.GET("/:id", eventHandler.Get)
		events.POST("", eventHandler.Create)
		events.PUT("/:id", eventHandler.Update)
		events.PATCH("/:id/status", eventHandler.ChangeStatus)
		events.PUT("/:id/image", eventHandler.UpdateImage)
		events.DELETE("/:id", eventHandler.Delete)
	}

	catering := secured.Group("/catering")
	{
		details := catering.Group("/details")
		handlers.NewCatalogHandler[models.CateringPackage, *models.CateringPackage, ucCatering.PackageInput](packagesUC).
			Register(details.Group("/packages"))
		handlers.NewCatalogHandler[models.Inclusion, *models.Inclusion, ucCatering.InclusionInput](inclusionsUC).
			Register(details.Group("/inclusions"))
		handlers.NewCatalogHandler[models.MainDishPackage, *models.MainDishPackage, ucCatering.MainDishPackageInput](mainDishPackagesUC).
			Register(details.Group("/main-dish-packages"))
		handlers.NewCatalogHandler[models.MainDish, *models.MainDish, ucCatering.MainDishInput](mainDishesUC).
			Register(details.Group("/main-dishes"))
		handlers.NewCatalogHandler[models.SnackCorner, *models.SnackCorner, ucCatering.SnackCornerInput](snackCornersUC).
			Register(details.Group("/snack-corner"))
		handlers.NewCatalogHandler[models.AddOn, *models.AddOn, ucCatering.AddOnInput](addOnsUC).
			Register(details.Group("/add-ons"))

		catering.GET("", selectionHandler.List)
		catering.GET("/event/:eventId", selectionHandler.GetByEvent)
		catering.GET("/:id", selectionHandler.Get)
		catering.POST("", selectionHandler.Create)
		catering.PUT("/:id", selectionHandler.Update)
		catering.DELETE("/:id", selectionHandler.Delete)
	}

	adminGroup := secured.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("", adminHandler.Summary)
		adminGroup.GET("/audit-logs", adminHandler.AuditLogs)
	}
}
