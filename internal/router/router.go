package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/botfarm-io/botfarm/docs"
	"github.com/botfarm-io/botfarm/internal/middleware"
	"github.com/botfarm-io/botfarm/internal/modules/handler"
	"github.com/botfarm-io/botfarm/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Log            *zap.Logger
	UserHandler    *handler.UserHandler
	ProjectHandler *handler.ProjectHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/users")
	{
		users.POST("", d.UserHandler.CreateUser)
		users.GET("", d.UserHandler.GetUsers)
		users.GET("/:login", d.UserHandler.GetUser)
		users.PATCH("/:login", d.UserHandler.UpdateUser)
		users.DELETE("/:login", d.UserHandler.DeleteUser)
	}

	projects := r.Group("/projects")
	{
		projects.POST("", d.ProjectHandler.CreateProject)
		projects.GET("", d.ProjectHandler.ListProjects)
		projects.GET("/:name", d.ProjectHandler.GetProject)
		projects.PATCH("/:name", d.ProjectHandler.UpdateProject)
		projects.DELETE("/:name", d.ProjectHandler.DeleteProject)
	}

	return r
}
