package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/baolive/camping-api/docs"
	v1 "github.com/baolive/camping-api/internal/api/handler/v1"
	"github.com/baolive/camping-api/internal/api/middleware"
	"github.com/baolive/camping-api/internal/config"
	"github.com/baolive/camping-api/internal/repository"
	"github.com/baolive/camping-api/internal/repository/dao"
	"github.com/baolive/camping-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, backupSvc *service.BackupService) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler, err := s.initAuthHandler()
	if err != nil {
		return nil, err
	}

	familyHandler := s.initFamilyHandler(db)
	activityHandler := s.initActivityHandler(db)
	signupHandler := s.initSignupHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	exportHandler := s.initExportHandler(db)
	backupHandler := v1.NewBackupHandler(backupSvc)

	s.MountHandlers(authHandler, familyHandler, activityHandler, signupHandler, paymentHandler, exportHandler, backupHandler)

	return s, nil
}

func (s *Server) initAuthHandler() (*v1.AuthHandler, error) {
	svc, err := service.NewAuthService(s.Config.API.AdminPassword)
	if err != nil {
		return nil, err
	}

	return v1.NewAuthHandler(s.Config.API, svc), nil
}

func (s *Server) initFamilyHandler(db *gorm.DB) *v1.FamilyHandler {
	familyDAO := dao.NewFamilyDAO(db)
	repo := repository.NewFamilyRepository(familyDAO)
	svc := service.NewFamilyService(repo)

	return v1.NewFamilyHandler(svc)
}

func (s *Server) initActivityHandler(db *gorm.DB) *v1.ActivityHandler {
	activityDAO := dao.NewActivityDAO(db)
	repo := repository.NewActivityRepository(activityDAO)
	svc := service.NewActivityService(repo)

	return v1.NewActivityHandler(svc)
}

func (s *Server) initSignupHandler(db *gorm.DB) *v1.SignupHandler {
	repo := repository.NewSignupRepository(dao.NewSignupDAO(db))
	familyRepo := repository.NewFamilyRepository(dao.NewFamilyDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewSignupService(repo, familyRepo, activityRepo)

	return v1.NewSignupHandler(svc)
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	repo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))
	familyRepo := repository.NewFamilyRepository(dao.NewFamilyDAO(db))
	svc := service.NewPaymentService(repo, familyRepo)

	return v1.NewPaymentHandler(svc)
}

func (s *Server) initExportHandler(db *gorm.DB) *v1.ExportHandler {
	familyRepo := repository.NewFamilyRepository(dao.NewFamilyDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	svc := service.NewExportService(familyRepo, activityRepo)

	return v1.NewExportHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	familyHandler *v1.FamilyHandler,
	activityHandler *v1.ActivityHandler,
	signupHandler *v1.SignupHandler,
	paymentHandler *v1.PaymentHandler,
	exportHandler *v1.ExportHandler,
	backupHandler *v1.BackupHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signin", authHandler.HandleSignin)

		public.POST("/families", familyHandler.HandleRegisterFamily)
		public.GET("/families/access/:accessKey", familyHandler.HandleGetFamilyByAccessKey)
		public.GET("/families/booking/:bookingRef", familyHandler.HandleGetFamilyByBookingRef)
		public.GET("/families/check/:bookingRef", familyHandler.HandleCheckBookingRef)

		public.GET("/activities", activityHandler.HandleListActivities)

		public.GET("/activity-signups/family/:accessKey", signupHandler.HandleListFamilySignups)
		public.POST("/activity-signups", signupHandler.HandleUpsertSignup)

		public.GET("/payments/family/:accessKey", paymentHandler.HandleListFamilyPayments)
		public.POST("/payments", paymentHandler.HandleRecordPayment)

		public.GET("/public/participants", signupHandler.HandleParticipants)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).RequireAdmin())
	{
		admin.GET("/auth/session", authHandler.HandleSession)

		admin.GET("/families", familyHandler.HandleListFamilies)
		admin.DELETE("/families/:familyID", familyHandler.HandleDeleteFamily)

		admin.GET("/activities/all", activityHandler.HandleListAllActivities)
		admin.POST("/activities", activityHandler.HandleCreateActivity)
		admin.PUT("/activities/:activityID", activityHandler.HandleUpdateActivity)
		admin.PUT("/activities/:activityID/availability", activityHandler.HandleSetActivityAvailability)
		admin.DELETE("/activities/:activityID", activityHandler.HandleDeleteActivity)

		admin.GET("/activity-signups", signupHandler.HandleListSignups)

		admin.GET("/payments", paymentHandler.HandleListPayments)
		admin.POST("/payments/:paymentID/void", paymentHandler.HandleVoidPayment)
		admin.POST("/payments/:paymentID/reinstate", paymentHandler.HandleReinstatePayment)
		admin.PUT("/payments/:paymentID", paymentHandler.HandleEditPayment)
		admin.DELETE("/payments/:paymentID", paymentHandler.HandleDeletePayment)

		admin.GET("/export/families", exportHandler.HandleExportFamilies)
		admin.GET("/export/activities", exportHandler.HandleExportActivities)

		admin.GET("/backups", backupHandler.HandleListBackups)
		admin.POST("/backups", backupHandler.HandleCreateBackup)
		admin.GET("/backups/:fileName", backupHandler.HandleDownloadBackup)
		admin.DELETE("/backups/:fileName", backupHandler.HandleDeleteBackup)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Camping Trip API"
	docs.SwaggerInfo.Description = "Registration and payments API for the school camping trip."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
