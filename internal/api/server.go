package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/chefskiss/festival-api/docs"
	v1 "github.com/chefskiss/festival-api/internal/api/handler/v1"
	"github.com/chefskiss/festival-api/internal/api/middleware"
	"github.com/chefskiss/festival-api/internal/config"
	"github.com/chefskiss/festival-api/internal/metrics"
	"github.com/chefskiss/festival-api/internal/repository"
	"github.com/chefskiss/festival-api/internal/repository/dao"
	"github.com/chefskiss/festival-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	redis redis.Cmdable
}

type handlers struct {
	event     *v1.EventHandler
	vendor    *v1.VendorHandler
	workshop  *v1.WorkshopHandler
	dashboard *v1.DashboardHandler
}

// NewServer wires every handler against db. A nil redisClient disables the
// submission rate limiter.
func NewServer(conf *config.AppConfig, db *gorm.DB, redisClient redis.Cmdable) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		redis:  redisClient,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	vendorRepo := repository.NewVendorRepository(dao.NewVendorDAO(db))
	workshopRepo := repository.NewWorkshopRepository(dao.NewWorkshopDAO(db))

	eventSvc := service.NewEventService(eventRepo)
	vendorSvc := service.NewVendorService(vendorRepo)
	workshopSvc := service.NewWorkshopService(workshopRepo)
	dashboardSvc := service.NewDashboardService(eventRepo, vendorRepo, workshopRepo)

	return handlers{
		event:     v1.NewEventHandler(eventSvc),
		vendor:    v1.NewVendorHandler(eventSvc, vendorSvc),
		workshop:  v1.NewWorkshopHandler(eventSvc, workshopSvc),
		dashboard: v1.NewDashboardHandler(dashboardSvc),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(metrics.Middleware())
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	if s.redis != nil {
		limiter := middleware.NewRateLimiter(s.redis, s.Config.Redis.SubmitLimit, s.Config.Redis.SubmitWindow)
		public.Use(limiter.Limit("submit"))
	}
	{
		public.POST("/vendor-applications", h.vendor.HandleSubmit)
		public.POST("/workshop-applications", h.workshop.HandleSubmit)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/events", h.event.HandleListEvents)
		admin.GET("/events/active", h.event.HandleGetActiveEvent)
		admin.POST("/events", h.event.HandleCreateEvent)
		admin.POST("/events/:eventID/activate", h.event.HandleActivateEvent)

		admin.GET("/dashboard/stats", h.dashboard.HandleGetStats)

		admin.GET("/vendor-applications", h.vendor.HandleList)
		admin.GET("/vendor-applications/export", h.vendor.HandleExport)
		admin.GET("/vendor-applications/:applicationID", h.vendor.HandleGet)
		admin.PATCH("/vendor-applications/:applicationID/status", h.vendor.HandleUpdateStatus)

		admin.GET("/workshop-applications", h.workshop.HandleList)
		admin.GET("/workshop-applications/:applicationID", h.workshop.HandleGet)
		admin.PATCH("/workshop-applications/:applicationID/status", h.workshop.HandleUpdateStatus)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Festival Applications API"
	docs.SwaggerInfo.Description = "Vendor and workshop application intake and review."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
