package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minutemind/minutemind/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                 *config.Config
	authHandler         *Auth
	meetingHandler      *Meeting
	taskHandler         *Task
	teamHandler         *Team
	notificationHandler *Notification
	authMW              echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	meetingHandler *Meeting,
	taskHandler *Task,
	teamHandler *Team,
	notificationHandler *Notification,
	authMW echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:                 cfg,
		authHandler:         authHandler,
		meetingHandler:      meetingHandler,
		taskHandler:         taskHandler,
		teamHandler:         teamHandler,
		notificationHandler: notificationHandler,
		authMW:              authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupTaskRoutes(v1)
	rt.setupTeamRoutes(v1)
	rt.setupNotificationRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.GET("/me", rt.authHandler.Me, rt.authMW)
}

// setupMeetingRoutes configures meeting and transcription routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	g.POST("/transcribe", rt.meetingHandler.Transcribe, rt.authMW)

	meetingGroup := g.Group("/meetings", rt.authMW)
	meetingGroup.POST("", rt.meetingHandler.Create)
	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
	meetingGroup.DELETE("/:id", rt.meetingHandler.Delete)
	meetingGroup.POST("/:id/analyze", rt.meetingHandler.Analyze)
	meetingGroup.POST("/:id/process-transcript", rt.meetingHandler.ProcessTranscript)
}

// setupTaskRoutes configures task lifecycle routes
func (rt *Router) setupTaskRoutes(g *echo.Group) {
	taskGroup := g.Group("/tasks", rt.authMW)

	taskGroup.GET("/assigned", rt.taskHandler.ListAssigned)
	taskGroup.GET("/:id", rt.taskHandler.Get)
	taskGroup.PATCH("/:id", rt.taskHandler.Assign)
	taskGroup.PUT("/:id", rt.taskHandler.Edit)
	taskGroup.PATCH("/:id/status", rt.taskHandler.UpdateStatus)
	taskGroup.POST("/:id/proof", rt.taskHandler.SubmitProof)
	taskGroup.DELETE("/:id", rt.taskHandler.Delete)
}

// setupTeamRoutes configures team management routes
func (rt *Router) setupTeamRoutes(g *echo.Group) {
	teamGroup := g.Group("/teams", rt.authMW)

	teamGroup.POST("", rt.teamHandler.Create)
	teamGroup.GET("", rt.teamHandler.ListMine)
	teamGroup.GET("/:id", rt.teamHandler.Get)
	teamGroup.DELETE("/:id", rt.teamHandler.Delete)
	teamGroup.POST("/:id/members", rt.teamHandler.AddMember)
	teamGroup.DELETE("/:id/members/:userId", rt.teamHandler.RemoveMember)
	teamGroup.GET("/:id/meetings", rt.teamHandler.ListMeetings)
}

// setupNotificationRoutes configures the notification feed routes
func (rt *Router) setupNotificationRoutes(g *echo.Group) {
	notificationGroup := g.Group("/notifications", rt.authMW)

	notificationGroup.GET("", rt.notificationHandler.List)
	notificationGroup.PATCH("/:id/read", rt.notificationHandler.MarkRead)
	notificationGroup.PATCH("/read-all", rt.notificationHandler.MarkAllRead)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
