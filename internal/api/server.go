package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/fstr-tourism/pereval-api/docs"
	v1 "github.com/fstr-tourism/pereval-api/internal/api/handler/v1"
	"github.com/fstr-tourism/pereval-api/internal/api/middleware"
	"github.com/fstr-tourism/pereval-api/internal/config"
	"github.com/fstr-tourism/pereval-api/internal/repository"
	"github.com/fstr-tourism/pereval-api/internal/repository/dao"
	"github.com/fstr-tourism/pereval-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, publisher service.Publisher) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler()
	userHandler := s.initUserHandler(db)
	perevalHandler := s.initPerevalHandler(db, publisher)
	moderationHandler := s.initModerationHandler(db, publisher)
	s.MountHandlers(authHandler, userHandler, perevalHandler, moderationHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	svc := service.NewAuthService(s.Config.Moderation)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initPerevalHandler(db *gorm.DB, publisher service.Publisher) *v1.PerevalHandler {
	perevalDAO := dao.NewPerevalDAO(db)
	repo := repository.NewPerevalRepository(perevalDAO)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewPerevalService(repo, userRepo, publisher)
	handler := v1.NewPerevalHandler(svc)

	return handler
}

func (s *Server) initModerationHandler(db *gorm.DB, publisher service.Publisher) *v1.ModerationHandler {
	perevalDAO := dao.NewPerevalDAO(db)
	repo := repository.NewPerevalRepository(perevalDAO)
	svc := service.NewModerationService(repo, publisher)
	handler := v1.NewModerationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Recovery is needed unless we use gin.Default(). Requests are logged
	// through zap instead of gin.Logger.
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Timeout(s.Config.API.RequestTimeout))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	perevalHandler *v1.PerevalHandler,
	moderationHandler *v1.ModerationHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	// The submit endpoints are also served at the root, where existing
	// mobile clients call them.
	for _, prefix := range []string{basePath, ""} {
		submit := s.Router.Group(prefix)
		{
			submit.POST("/submitData", perevalHandler.HandleCreate)
			submit.GET("/submitData/", perevalHandler.HandleGetByEmail)
			submit.GET("/submitData/:id", perevalHandler.HandleGetByID)
			submit.PATCH("/submitData/:id", perevalHandler.HandlePatch)
		}
	}

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	moderation := s.Router.Group(basePath+"/moderation", authenticator.VerifyJWT())
	{
		moderation.PATCH("/submitData/:id/status", moderationHandler.HandleSetStatus)
		moderation.GET("/users/:userID", userHandler.HandleGetUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "ФСТР pereval API"
	docs.SwaggerInfo.Description = "Mountain pass submissions for the FSTR mobile app."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
