package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/pasarku/pasarku-api/docs"
	v1 "github.com/pasarku/pasarku-api/internal/api/handler/v1"
	"github.com/pasarku/pasarku-api/internal/api/middleware"
	"github.com/pasarku/pasarku-api/internal/config"
	"github.com/pasarku/pasarku-api/internal/pkg/loginattempt"
	"github.com/pasarku/pasarku-api/internal/repository"
	"github.com/pasarku/pasarku-api/internal/repository/dao"
	"github.com/pasarku/pasarku-api/internal/service"
)

const (
	loginAttemptWindow   = 30 * time.Minute
	loginAttemptCapacity = 10000
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	pelangganHandler := s.initPelangganHandler(db)
	penjualHandler := s.initPenjualHandler(db)
	itemHandler := s.initItemHandler(db)
	s.MountHandlers(authHandler, userHandler, pelangganHandler, penjualHandler, itemHandler)

	return s
}

// initLoginAttemptTracker picks Redis when an address is configured so
// the counter survives restarts and is shared between instances.
func (s *Server) initLoginAttemptTracker() service.LoginAttemptTracker {
	if s.Config.Redis != nil && s.Config.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     s.Config.Redis.Addr,
			Password: s.Config.Redis.Password,
			DB:       s.Config.Redis.DB,
		})

		return loginattempt.NewRedisTracker(client, loginAttemptWindow)
	}

	return loginattempt.NewMemoryTracker(loginAttemptWindow, loginAttemptCapacity)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo, s.initLoginAttemptTracker())
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

func (s *Server) initPelangganHandler(db *gorm.DB) *v1.PelangganHandler {
	pelangganRepo := repository.NewPelangganRepository(dao.NewPelangganDAO(db))
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	purchaseRepo := repository.NewPurchaseRepository(dao.NewPurchaseDAO(db))

	svc := service.NewPelangganService(pelangganRepo)
	purchaseSvc := service.NewPurchaseService(itemRepo, pelangganRepo, purchaseRepo)
	itemSvc := service.NewItemService(itemRepo)
	handler := v1.NewPelangganHandler(svc, purchaseSvc, itemSvc)

	return handler
}

func (s *Server) initPenjualHandler(db *gorm.DB) *v1.PenjualHandler {
	penjualRepo := repository.NewPenjualRepository(dao.NewPenjualDAO(db))
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))

	svc := service.NewPenjualService(penjualRepo)
	itemSvc := service.NewItemService(itemRepo)
	handler := v1.NewPenjualHandler(svc, itemSvc)

	return handler
}

func (s *Server) initItemHandler(db *gorm.DB) *v1.ItemHandler {
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	penjualRepo := repository.NewPenjualRepository(dao.NewPenjualDAO(db))

	svc := service.NewItemService(itemRepo)
	penjualSvc := service.NewPenjualService(penjualRepo)
	handler := v1.NewItemHandler(svc, penjualSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, pelangganHandler *v1.PelangganHandler, penjualHandler *v1.PenjualHandler, itemHandler *v1.ItemHandler) {
	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	s.Router.POST("/users/login", authHandler.HandleLogin)

	users := s.Router.Group("/users", verifyJWT)
	{
		users.GET("/new-pagination", userHandler.HandleGetPaginationUsers)
		users.GET("/old", userHandler.HandleListUsers)
		users.POST("", userHandler.HandleCreateUser)
		users.GET("/:id", userHandler.HandleGetUser)
		users.PUT("/:id", userHandler.HandleUpdateUser)
		users.DELETE("/:id", userHandler.HandleDeleteUser)
		users.POST("/:id/change-password", userHandler.HandleChangePassword)
	}

	pelanggan := s.Router.Group("/pelanggan", verifyJWT)
	{
		pelanggan.PUT("/transaksi", pelangganHandler.HandleBuyItem)
		pelanggan.GET("/pagination", pelangganHandler.HandleGetPaginationItems)
		pelanggan.GET("/beranda", pelangganHandler.HandleGetBeranda)
		pelanggan.GET("", pelangganHandler.HandleListPelanggan)
		pelanggan.POST("", pelangganHandler.HandleCreatePelanggan)
		pelanggan.GET("/:id", pelangganHandler.HandleGetPelanggan)
		pelanggan.PUT("/:id", pelangganHandler.HandleUpdatePelanggan)
		pelanggan.DELETE("/:id", pelangganHandler.HandleDeletePelanggan)
		pelanggan.POST("/:id/change-password", pelangganHandler.HandleChangePassword)
		pelanggan.PUT("/:id/top-up", pelangganHandler.HandleTopUpSaldo)
	}

	penjual := s.Router.Group("/penjual", verifyJWT)
	{
		penjual.GET("/get-items", penjualHandler.HandleGetPenjualItems)
		penjual.GET("/get-users", penjualHandler.HandleListPenjual)
		penjual.POST("", penjualHandler.HandleCreatePenjual)
		penjual.GET("/:id", penjualHandler.HandleGetPenjual)
		penjual.PUT("/:id", penjualHandler.HandleUpdatePenjual)
		penjual.DELETE("/:id", penjualHandler.HandleDeletePenjual)
		penjual.POST("/:id/change-password", penjualHandler.HandleChangePassword)
	}

	item := s.Router.Group("/item", verifyJWT)
	{
		item.PUT("/reduceStok", itemHandler.HandleReduceStok)
		item.PUT("/addedStok", itemHandler.HandleAddedStok)
		item.POST("/uploud-item", itemHandler.HandleCreateItem)
		item.PUT("/:id", itemHandler.HandleUpdateItem)
		item.DELETE("/:id", itemHandler.HandleDeleteItem)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Pasarku API"
	docs.SwaggerInfo.Description = "Marketplace backend: items, pelanggan, penjual and purchases."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
