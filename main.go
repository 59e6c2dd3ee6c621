// File: meetplan/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetplan/config"
	"meetplan/cron"
	"meetplan/database"
	eventRepoPkg "meetplan/database/repository/event"
	eventTypeRepoPkg "meetplan/database/repository/eventtype"
	userRepoPkg "meetplan/database/repository/user"
	"meetplan/handlers"
	"meetplan/middleware"
	"meetplan/routes"
	"meetplan/services/availability"
	"meetplan/services/calendarsync"
	ai "meetplan/services/intelligence"
	"meetplan/services/meeting"
	"meetplan/services/notification"
	"meetplan/services/tasks"
	"meetplan/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	eventTypeRepo := eventTypeRepoPkg.NewMongoEventTypeRepo()

	// services.
	gemini, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}

	ctx := context.Background()
	notifSvc, err := notification.NewGmailNotificationService(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gmail service: %v", err)
	}

	var calSync calendarsync.CalendarSync
	if sync, err := calendarsync.NewGoogleCalendarSync(ctx); err != nil {
		logger.Sugar().Warnf("main: calendar sync disabled: %v", err)
	} else {
		calSync = sync
	}

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	planner := &meeting.DefaultPlanner{
		Users:        userRepo,
		Events:       eventRepo,
		Reader:       &availability.EventStoreReader{Events: eventRepo},
		Engine:       &availability.DefaultEngine{},
		Parser:       &ai.GeminiRequestParser{Generator: gemini},
		Selector:     &ai.GeminiSlotSelector{Generator: gemini},
		Writer:       &ai.GeminiInvitationWriter{Generator: gemini, Signature: config.AppConfig.EmailSignature},
		Notifier:     notifSvc,
		CalendarSync: calSync,
		Reminders:    reminderScheduler,
		ContextStore: ctxStore,
		Defaults: meeting.PlannerDefaults{
			WorkStartHour:   config.AppConfig.WorkStartHour,
			WorkEndHour:     config.AppConfig.WorkEndHour,
			StepMinutes:     config.AppConfig.SlotStepMinutes,
			DurationMinutes: config.AppConfig.DefaultDurationMinutes,
			SearchDays:      7,
		},
	}

	// Background reminder worker.
	cron.InitReminderWorker(notifSvc)

	plannerHandler := handlers.NewPlannerHandler(planner)
	availabilityHandler := handlers.NewAvailabilityHandler(planner)
	sttHandler := handlers.NewSTTHandler(planner)
	userHandler := handlers.NewUserHandler(userRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)
	eventTypeHandler := handlers.NewEventTypeHandler(eventTypeRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Planner endpoints.
		PlanMeetingHandler:     plannerHandler.PlanMeetingHandler,
		VoicePlanHandler:       sttHandler.VoicePlanHandler,
		GetAvailabilityHandler: availabilityHandler.GetAvailabilityHandler,

		// User endpoints.
		CreateUserHandler:     userHandler.CreateUserHandler,
		GetUserByIDHandler:    userHandler.GetUserByIDHandler,
		GetUserByEmailHandler: userHandler.GetUserByEmailHandler,
		GetAllUsersHandler:    userHandler.GetAllUsersHandler,
		UpdateUserHandler:     userHandler.UpdateUserHandler,
		DeleteUserHandler:     userHandler.DeleteUserHandler,

		// Event endpoints.
		CreateEventHandler:   eventHandler.CreateEventHandler,
		GetEventByIDHandler:  eventHandler.GetEventByIDHandler,
		GetUserEventsHandler: eventHandler.GetUserEventsHandler,
		UpdateEventHandler:   eventHandler.UpdateEventHandler,
		DeleteEventHandler:   eventHandler.DeleteEventHandler,

		// Event type endpoints.
		CreateEventTypeHandler:  eventTypeHandler.CreateEventTypeHandler,
		GetAllEventTypesHandler: eventTypeHandler.GetAllEventTypesHandler,
		DeleteEventTypeHandler:  eventTypeHandler.DeleteEventTypeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
