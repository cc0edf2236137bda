package main

//	@title			Botfarm API
//	@version		1.0
//	@description	CRUD management backend for bot accounts grouped into projects.
//	@schemes		http
//	@BasePath		/

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/botfarm-io/botfarm/internal/bootstrap"
	"github.com/botfarm-io/botfarm/internal/config"
	"github.com/botfarm-io/botfarm/internal/modules/handler"
	"github.com/botfarm-io/botfarm/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// connecting also bootstraps the database and schema; without a
	// reachable database the process must not serve traffic
	if _, err := do.Invoke[*gorm.DB](inj); err != nil {
		log.Sugar().Fatalw("database init failed", "err", err)
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	userHandler := do.MustInvoke[*handler.UserHandler](inj)
	projectHandler := do.MustInvoke[*handler.ProjectHandler](inj)

	engine := router.NewRouter(router.RouterDeps{
		Log:            log,
		UserHandler:    userHandler,
		ProjectHandler: projectHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
