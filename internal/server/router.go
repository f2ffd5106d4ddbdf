package server

import (
	"taskboard/internal/handler"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "taskboard/docs"
)

type Handlers struct {
	Users  *handler.UserHandler
	Boards *handler.BoardHandler
	Todos  *handler.TodoHandler
	Drag   *handler.DragHandler
}

func NewRouter(h Handlers, authMiddleware gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	r.POST("/register", h.Users.Register)
	r.POST("/login", h.Users.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/logout", h.Users.Logout)
		authorized.GET("/me", h.Users.Me)

		// Board routes
		authorized.GET("/boards", h.Boards.GetAll)
		authorized.POST("/boards", h.Boards.Create)
		authorized.POST("/boards/reload", h.Boards.Reload)
		authorized.PUT("/boards/:id/select", h.Boards.Select)

		// Todo routes
		authorized.POST("/todos", h.Todos.Create)
		authorized.DELETE("/todos/:id", h.Todos.Delete)
		authorized.POST("/todos/:id/edit", h.Todos.StartEdit)
		authorized.GET("/edit", h.Todos.Editing)
		authorized.PUT("/edit", h.Todos.SaveEdit)
		authorized.DELETE("/edit", h.Todos.CancelEdit)

		// Drag and drop
		authorized.POST("/drag/start", h.Drag.Start)
		authorized.POST("/drag/end", h.Drag.End)
		authorized.GET("/drag", h.Drag.Active)
	}
	return r
}
