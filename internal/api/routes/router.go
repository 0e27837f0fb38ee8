package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/docs"
	"github.com/Sahindou/ifrit-ticket/internal/api/handlers"
	"github.com/Sahindou/ifrit-ticket/internal/api/middleware"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
	"github.com/Sahindou/ifrit-ticket/internal/realtime"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/pkg/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the optional collaborators of the API. A nil Hub gets a private one.
type Dependencies struct {
	Hub      *realtime.Hub
	Storage  application.ObjectStore
	Notifier application.Notifier
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, deps Dependencies) *application.Services {
	utils.RegisterValidators()

	if deps.Hub == nil {
		deps.Hub = realtime.NewHub()
	}
	// init
	repos := repository.NewRepositories(db)
	svc := application.New(repos, application.Dependencies{
		Events:   deps.Hub,
		Storage:  deps.Storage,
		Notifier: deps.Notifier,
	})
	h := handlers.New(svc, deps.Hub)

	r.GET("/", handlers.Info)
	r.GET("/health", handlers.Health)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", middleware.AccessTokenMiddleware(), h.Auth.Me)
		auth.POST("/logout-all", middleware.AccessTokenMiddleware(), h.Auth.LogoutAll)
	}

	r.POST("/public/tickets", h.Public.SubmitTicket)

	tickets := r.Group("/tickets")
	{
		tickets.GET("", h.Ticket.GetTickets)
		tickets.POST("", h.Ticket.CreateTicket)
		tickets.GET("/:id", h.Ticket.GetTicket)
		tickets.PUT("/:id", h.Ticket.UpdateTicket)
		tickets.DELETE("/:id", h.Ticket.DeleteTicket)
		tickets.GET("/:id/history", middleware.AccessTokenMiddleware(), h.Audit.GetTicketHistory)

		attachments := tickets.Group("/:id/attachments", middleware.AccessTokenMiddleware())
		{
			attachments.GET("", h.Attachment.ListAttachments)
			attachments.POST("", h.Attachment.UploadAttachment)
			attachments.GET("/:aid", h.Attachment.DownloadAttachment)
			attachments.DELETE("/:aid", h.Attachment.DeleteAttachment)
		}
	}

	types := r.Group("/type-tickets")
	{
		types.GET("", h.TicketType.GetTicketTypes)
		types.POST("", h.TicketType.CreateTicketType)
		types.GET("/:id", h.TicketType.GetTicketType)
		types.PUT("/:id", h.TicketType.UpdateTicketType)
		types.DELETE("/:id", h.TicketType.DeleteTicketType)
	}

	authed := r.Group("/")
	authed.Use(middleware.AccessTokenMiddleware())
	{
		authed.GET("/ws/tickets", h.Board.StreamBoard)
		authed.GET("/audit/logs", middleware.RequireRole(user.RoleAdmin), h.Audit.GetAuditLogs)
	}

	return svc
}
