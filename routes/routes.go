package routes

import (
	"log"

	"github.com/suyogshejal2004/waterreminder/config"
	"github.com/suyogshejal2004/waterreminder/controllers"
	"github.com/suyogshejal2004/waterreminder/middlewares"
	"github.com/suyogshejal2004/waterreminder/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	services.InitEventDeps(hub)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}

	intake := services.NewIntakeService(config.DB)
	sched := services.NewReminderScheduler(config.DB, push)
	sched.RestoreAll()

	ic := controllers.NewIntakeController(intake)
	uc := controllers.NewUserController(sched)
	rc := controllers.NewReminderController(sched, push)
	dc := controllers.NewDeviceController(push)
	wc := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", uc.GetProfile)
		user.PUT("/profile", uc.UpdateProfile)
		user.POST("/reminders/toggle", rc.Toggle)
		user.POST("/devices", dc.Register)
	}

	// Intake ledger + views
	water := r.Group("/water")
	water.Use(middlewares.AuthMiddleware())
	{
		water.POST("", ic.Add)
		water.PUT("/:id", ic.Edit)
		water.DELETE("/:id", ic.Delete)
		water.POST("/undo", ic.Undo)
		water.GET("/dashboard", ic.Dashboard)
		water.GET("/history", ic.History)
	}

	// Live intake updates
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/water", wc.IntakeWS)
	}

	return r
}
