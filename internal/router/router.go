package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/jobtasks/backend/api/handler"
)

type Handlers struct {
	User   *apiHandler.UserHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// New builds the route table. CORS is applied around the resulting
// handler by the caller, mirroring an app-wide middleware.
func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/", handlers.Health.Root)
	r.GET("/health", handlers.Health.Check)

	r.POST("/users", handlers.User.Register)

	r.GET("/tasks", handlers.Task.GetTasks)
	r.POST("/tasks", handlers.Task.CreateTask)
	r.GET("/tasks/{id}", handlers.Task.GetTask)
	r.PUT("/tasks/{id}", handlers.Task.UpdateTask)
	r.DELETE("/tasks/{id}", handlers.Task.DeleteTask)

	return r
}
