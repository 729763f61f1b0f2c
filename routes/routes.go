package routes

import (
	"github.com/art12345678655/wellness-mini-app/controllers"
	"github.com/art12345678655/wellness-mini-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	entrySvc := services.NewEntryService(db, hub)
	summarySvc := services.NewSummaryService(db)
	backfillSvc := services.NewBackfillService(db)
	userSvc := services.NewUserService(db)

	entryCtl := controllers.NewEntryController(entrySvc)
	summaryCtl := controllers.NewSummaryController(summarySvc, backfillSvc)
	userCtl := controllers.NewUserController(userSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	users := r.Group("/users")
	{
		users.POST("", userCtl.CreateUser)
		users.GET("/:userID", userCtl.GetUser)
		users.PUT("/:userID/targets", userCtl.UpdateTargets)

		users.POST("/:userID/entries", entryCtl.LogEntry)
		users.GET("/:userID/entries", entryCtl.ListEntries)
		users.PUT("/:userID/entries/:entryID", entryCtl.UpdateEntry)
		users.DELETE("/:userID/entries/:entryID", entryCtl.DeleteEntry)

		users.GET("/:userID/summaries/:date", summaryCtl.GetDailySummary)
		users.GET("/:userID/ws", rtCtl.SummariesWS)
	}

	r.GET("/summaries/recent", summaryCtl.GetRecentSummaries)
	r.POST("/backfill", summaryCtl.RunBackfill)

	return r
}
