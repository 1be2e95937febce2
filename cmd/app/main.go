package main

import (
	"context"

	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/cmd/fx/account_fx"
	"tourline/cmd/fx/alert_fx"
	"tourline/cmd/fx/checkin_fx"
	"tourline/cmd/fx/controllers_fx"
	"tourline/cmd/fx/db_fx"
	"tourline/cmd/fx/flight_fx"
	"tourline/cmd/fx/group_fx"
	"tourline/cmd/fx/hotel_fx"
	"tourline/cmd/fx/itinerary_fx"
	"tourline/cmd/fx/ledger_fx"
	"tourline/cmd/fx/messaging_fx"
	"tourline/cmd/fx/roster_fx"
	"tourline/cmd/fx/spot_fx"
	"tourline/cmd/fx/tts_fx"
	"tourline/internal/api/controllers"
	"tourline/internal/infra"
	"tourline/internal/services"
	"tourline/pkg/logger"
	"tourline/pkg/middleware"
	"tourline/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	logger.Setup()

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		group_fx.Module,
		roster_fx.Module,
		checkin_fx.Module,
		messaging_fx.Module,
		alert_fx.Module,
		hotel_fx.Module,
		spot_fx.Module,
		itinerary_fx.Module,
		ledger_fx.Module,
		flight_fx.Module,
		tts_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config, hub *services.CheckinHub, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logrus.Infof("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					logrus.WithError(err).Fatal("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Stopping HTTP server")
			hub.Close()
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	groupController *controllers.GroupController,
	travelerController *controllers.TravelerController,
	checkinController *controllers.CheckinController,
	realtimeController *controllers.RealtimeController,
	messagingController *controllers.MessagingController,
	alertController *controllers.AlertController,
	hotelController *controllers.HotelController,
	spotController *controllers.SpotController,
	itineraryController *controllers.ItineraryController,
	ledgerController *controllers.LedgerController,
	flightController *controllers.FlightController,
	ttsController *controllers.TTSController,
	tokens *utils.JWTManager) *gin.Engine {

	r := gin.New()
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	RegisterRoutes(r,
		accountController, groupController, travelerController,
		checkinController, realtimeController, messagingController,
		alertController, hotelController, spotController,
		itineraryController, ledgerController, flightController,
		ttsController, tokens)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	groupController *controllers.GroupController,
	travelerController *controllers.TravelerController,
	checkinController *controllers.CheckinController,
	realtimeController *controllers.RealtimeController,
	messagingController *controllers.MessagingController,
	alertController *controllers.AlertController,
	hotelController *controllers.HotelController,
	spotController *controllers.SpotController,
	itineraryController *controllers.ItineraryController,
	ledgerController *controllers.LedgerController,
	flightController *controllers.FlightController,
	ttsController *controllers.TTSController,
	tokens *utils.JWTManager) {

	// Public surface: auth, the LIFF binding flow, the realtime stream, and
	// the read-only convenience endpoints the LIFF pages call.
	authGroup := r.Group("/auth")
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/signup", accountController.SignUp)

	r.POST("/messaging/bind", messagingController.Bind)
	r.GET("/ws/checkins", realtimeController.Subscribe)
	r.GET("/flights/:flightNo", flightController.Status)
	r.GET("/tts", ttsController.Speak)

	authed := r.Group("/", middleware.JWTAuthMiddleware(tokens))

	groupsGroup := authed.Group("/groups")
	groupsGroup.POST("", groupController.CreateGroup)
	groupsGroup.GET("", groupController.ListGroups)
	groupsGroup.GET("/:groupId", groupController.GetGroup)
	groupsGroup.PUT("/:groupId", groupController.UpdateGroup)
	groupsGroup.DELETE("/:groupId", groupController.DeleteGroup)

	travelersGroup := authed.Group("/travelers")
	travelersGroup.GET("/group/:groupId", travelerController.ListByGroup)
	travelersGroup.POST("", travelerController.Upsert)
	travelersGroup.POST("/import", travelerController.Import)
	travelersGroup.DELETE("/:id", travelerController.Delete)

	checkinsGroup := authed.Group("/checkins")
	checkinsGroup.POST("/toggle", checkinController.Toggle)
	checkinsGroup.GET("/group/:groupId", checkinController.ListByGroup)

	messagingGroup := authed.Group("/messaging")
	messagingGroup.POST("/push", messagingController.Push)
	messagingGroup.POST("/multicast", messagingController.Multicast)
	messagingGroup.POST("/broadcast", messagingController.Broadcast)

	alertsGroup := authed.Group("/alerts")
	alertsGroup.POST("/sos", alertController.Trigger)
	alertsGroup.GET("/group/:groupId", alertController.ListOpen)
	alertsGroup.PUT("/:id/resolve", alertController.Resolve)

	// Hotel and spot databases are shared across groups; writes are
	// restricted to leader accounts.
	hotelsGroup := authed.Group("/hotels")
	hotelsGroup.GET("", hotelController.List)
	hotelsGroup.POST("", middleware.RoleMiddleware("leader"), hotelController.Upsert)
	hotelsGroup.DELETE("/:id", middleware.RoleMiddleware("leader"), hotelController.Delete)

	spotsGroup := authed.Group("/spots")
	spotsGroup.GET("", spotController.List)
	spotsGroup.POST("", middleware.RoleMiddleware("leader"), spotController.Upsert)
	spotsGroup.DELETE("/:id", middleware.RoleMiddleware("leader"), spotController.Delete)

	itinerariesGroup := authed.Group("/itineraries")
	itinerariesGroup.POST("", itineraryController.Create)
	itinerariesGroup.GET("/:id", itineraryController.Get)
	itinerariesGroup.GET("/group/:groupId", itineraryController.ListByGroup)
	itinerariesGroup.POST("/days", itineraryController.AddDay)
	itinerariesGroup.POST("/activities", itineraryController.AddActivity)
	itinerariesGroup.PUT("/activities", itineraryController.UpdateActivity)
	itinerariesGroup.DELETE("/activities/:id", itineraryController.RemoveActivity)

	ledgerGroup := authed.Group("/ledger")
	ledgerGroup.POST("", ledgerController.AddEntry)
	ledgerGroup.GET("/group/:groupId", ledgerController.Summary)
	ledgerGroup.DELETE("/:id", ledgerController.Delete)
}
