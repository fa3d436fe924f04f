package router

import (
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/config"
	"github.com/dhruv0307t-del/ERP-Farm/internal/handler"
	"github.com/dhruv0307t-del/ERP-Farm/internal/middleware"
	"github.com/dhruv0307t-del/ERP-Farm/internal/repository"
	"github.com/dhruv0307t-del/ERP-Farm/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	breedRepo := repository.NewBreedRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	milkRepo := repository.NewMilkRepository(db)
	breedingRepo := repository.NewBreedingRepository(db)
	gestationRepo := repository.NewGestationRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, farmRepo, cfg)
	animalSvc := service.NewAnimalService(animalRepo, breedRepo, milkRepo, breedingRepo, gestationRepo, reminderRepo)
	milkSvc := service.NewMilkService(milkRepo, animalRepo)
	breedingSvc := service.NewBreedingService(animalRepo, breedingRepo, gestationRepo, cfg.GestationDays)
	reminderSvc := service.NewReminderService(reminderRepo, animalRepo)
	dashboardSvc := service.NewDashboardService(animalRepo, milkRepo, breedingRepo, gestationRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	secureCookies := cfg.Env == "production"
	authH := handler.NewAuthHandler(authSvc, cfg.JWTExpirationHours*3600, secureCookies)
	homeH := handler.NewHomeHandler(dashboardSvc)
	animalsH := handler.NewAnimalsHandler(animalSvc)
	milkH := handler.NewMilkHandler(milkSvc)
	breedingH := handler.NewBreedingHandler(breedingSvc)
	remindersH := handler.NewRemindersHandler(reminderSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	r.GET("/login", authH.LoginForm)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.GET("/signup", authH.SignupForm)
	r.POST("/signup", middleware.LoginRateLimiter(), authH.Signup)
	r.GET("/logout", authH.Logout)

	// Landing page works anonymously but shows counts when logged in.
	optionalMW := middleware.OptionalAuth(cfg.JWTSecret)
	r.GET("/", optionalMW, homeH.Home)
	r.GET("/home", optionalMW, homeH.Home)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	authed := r.Group("/", jwtMW)
	{
		authed.GET("/dashboard", dashboardH.Stats)

		authed.GET("/animals", animalsH.List)
		authed.POST("/animals", animalsH.Create)
		authed.GET("/animals/:id", animalsH.Detail)
		authed.GET("/animals/:id/edit", animalsH.EditForm)
		authed.POST("/animals/:id/edit", animalsH.Update)
		authed.POST("/animals/:id/delete", animalsH.Delete)
		authed.POST("/animals/:id/vaccination_reminder", remindersH.Add)

		authed.POST("/milk/:id", milkH.Record)
		authed.POST("/breeding/:id/event", breedingH.AddEvent)
		authed.POST("/gestation/:id/calved", breedingH.MarkCalved)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
