package router

import (
	"time"

	"monateg/config"
	"monateg/internal/cache"
	"monateg/internal/handler"
	"monateg/internal/middleware"
	"monateg/internal/repository"
	"monateg/internal/service"
	"monateg/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, rewardCache *cache.RewardConfigCache) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))
	r.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	earningRepo := repository.NewEarningRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	videoRepo := repository.NewWatchedVideoRepository(db)
	rewardConfigRepo := repository.NewRewardConfigRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	hub := ws.NewHub()

	// Services
	ledgerSvc := service.NewLedgerService(db)
	notifSvc := service.NewNotificationService(notificationRepo, hub)

	// Handlers
	userHandler := handler.NewUserHandler(cfg, userRepo)
	ledgerHandler := handler.NewLedgerHandler(ledgerSvc, earningRepo, withdrawalRepo)
	referralHandler := handler.NewReferralHandler(ledgerSvc, referralRepo)
	notificationHandler := handler.NewNotificationHandler(notificationRepo, notifSvc)
	rewardConfigHandler := handler.NewRewardConfigHandler(rewardConfigRepo, rewardCache)
	videoHandler := handler.NewVideoHandler(videoRepo)
	adminHandler := handler.NewAdminHandler(adminRepo, withdrawalRepo, ledgerSvc, hub)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api")
	{
		// Unauthenticated: how a client obtains its first token.
		api.GET("/user/:id", userHandler.GetOrCreate)

		api.PUT("/user/:id", authMw, userHandler.Update)
		api.POST("/earn", authMw, ledgerHandler.RecordEarning)
		api.POST("/withdraw", authMw, ledgerHandler.RequestWithdrawal)
		api.GET("/transactions/:userId", authMw, ledgerHandler.ListTransactions)
		api.GET("/withdrawals/:userId", authMw, ledgerHandler.ListWithdrawals)
		api.GET("/referrals/:userId", authMw, referralHandler.List)
		api.POST("/referral", authMw, referralHandler.Create)
		api.GET("/notifications/:userId", authMw, notificationHandler.List)
		api.PUT("/notifications/:id/read", authMw, notificationHandler.MarkRead)
		api.POST("/notifications", authMw, notificationHandler.Create)
		api.GET("/reward-config", authMw, rewardConfigHandler.GetCurrent)
		api.PUT("/reward-config", authMw, middleware.AdminRequired(), rewardConfigHandler.Append)
		api.GET("/watched-videos/:userId", authMw, videoHandler.List)
		api.POST("/watched-videos", authMw, videoHandler.Mark)

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/withdrawals", adminHandler.ListWithdrawals)
			admin.PUT("/withdrawals/:id/status", adminHandler.ResolveWithdrawal)
		}
	}

	r.GET("/ws/notifications", ws.UpgradeNotificationsWS(&cfg.JWT, hub))

	return r
}
