package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/jobtasks/backend/api/handler"
	"github.com/jobtasks/backend/internal/config"
	mongoInfra "github.com/jobtasks/backend/internal/infrastructure/mongo"
	"github.com/jobtasks/backend/internal/infrastructure/monitor"
	"github.com/jobtasks/backend/internal/middleware"
	"github.com/jobtasks/backend/internal/router"
	"github.com/jobtasks/backend/internal/services/lifecycle"
	"github.com/jobtasks/backend/pkg/httpcontext"
	"github.com/jobtasks/backend/pkg/logger"
	mongoRepo "github.com/jobtasks/backend/repository/mongo"
	taskUC "github.com/jobtasks/backend/usecase/task"
	userUC "github.com/jobtasks/backend/usecase/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	client, err := mongoInfra.Connect(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("mongodb connection failed", zap.Error(err))
	}
	manager.Register("mongodb", func(ctx context.Context) error {
		return mongoInfra.Disconnect(ctx, client, zapLogger)
	})

	db := client.Database(cfg.Database.Name)

	if err := mongoInfra.EnsureIndexes(appCtx, db, zapLogger); err != nil {
		zapLogger.Fatal("index bootstrap failed", zap.Error(err))
	}

	mon := monitor.New(client, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := mongoRepo.NewUserRepository(db)
	taskRepo := mongoRepo.NewTaskRepository(db)

	userUseCase := userUC.New(userRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		User:   apiHandler.NewUserHandler(userUseCase, ctxAdapter, zapLogger),
		Task:   apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)
	cors := middleware.CORS(zapLogger)

	server := &fasthttp.Server{
		Handler:      cors(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
