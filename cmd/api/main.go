package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	httpadp "bankloan-backend/internal/adapter/http"
	"bankloan-backend/internal/adapter/middleware"
	"bankloan-backend/internal/adapter/publisher"
	"bankloan-backend/internal/adapter/repository/mysql"
	"bankloan-backend/internal/adapter/storage"
	"bankloan-backend/internal/config"
	"bankloan-backend/internal/domain/outbox"
	"bankloan-backend/internal/infrastructure/cache"
	"bankloan-backend/internal/infrastructure/db"
	"bankloan-backend/internal/infrastructure/jwtauth"
	"bankloan-backend/internal/infrastructure/logger"
	"bankloan-backend/internal/usecase/account"
	"bankloan-backend/internal/usecase/admin"
	"bankloan-backend/internal/usecase/loan"
	"bankloan-backend/internal/usecase/relay"
	"bankloan-backend/internal/usecase/settings"
	"bankloan-backend/internal/usecase/verification"
	"bankloan-backend/internal/usecase/wallet"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), cfg.IsProduction(), log)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if cfg.DBDriver == config.DriverSQLite {
		err = mysql.AutoMigrate(gdb)
	} else {
		err = db.MigrateUp(cfg.MySQLDSN(), log)
	}
	if err != nil {
		log.Fatal("schema", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	defer rdb.Close()

	store, err := storage.NewLocal(afero.NewOsFs(), cfg.UploadDir)
	if err != nil {
		log.Fatal("upload dir", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	var pub outbox.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		k := publisher.NewKafka(cfg.KafkaBrokers, cfg.OutboxTopicPrefix)
		defer k.Close()
		pub = k
		log.Info("outbox publisher: kafka", zap.Strings("brokers", cfg.KafkaBrokers))
	} else {
		pub = publisher.NewLog(log)
		log.Info("outbox publisher: log only (KAFKA_BROKERS not set)")
	}

	users := mysql.NewUserRepository(gdb)
	contracts := mysql.NewContractRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	tokens := jwtauth.NewManager(cfg.JWTSecret, cfg.AdminTokenTTL())
	relayUC := relay.NewUsecase(mysql.NewOutboxRepository(gdb), pub, cfg.OutboxBatchSize, log)

	h := httpadp.NewHandler(httpadp.Usecases{
		Account:      account.NewUsecase(users, tx, store, log),
		Verification: verification.NewUsecase(users, mysql.NewDocumentRepository(gdb), tx, store, log),
		Loans:        loan.NewUsecase(contracts, users, tx, store, cfg.ContractIDMaxAttempts, log),
		Wallet:       wallet.NewUsecase(users, mysql.NewWalletRepository(gdb), mysql.NewNotificationRepository(gdb)),
		Settings:     settings.NewUsecase(mysql.NewSettingsRepository(gdb), rdb, cfg.SettingsCacheTTL(), log),
		Admin: admin.NewUsecase(admin.Credentials{
			Username:     cfg.AdminUsername,
			PasswordHash: cfg.AdminPasswordHash,
		}, tokens, users, tx, log),
		Relay: relayUC,
	}, httpadp.Options{PublicBaseURL: cfg.PublicBaseURL, MaxUploadBytes: cfg.MaxUploadBytes}, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.Recover(),
		middleware.RequestLogger(log),
		middleware.Metrics(),
		// base64 bodies are ~4/3 of the image
		echomw.BodyLimit(strconv.FormatInt(cfg.MaxUploadBytes*2/1024+64, 10)+"K"),
	)
	e.Static(storage.PublicPrefix, store.Root())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	httpadp.Register(e, h,
		middleware.Idempotency(rdb, cfg.IdempotencyTTL(), log),
		middleware.AdminAuth(tokens))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go relayUC.Run(ctx, cfg.OutboxRelayInterval())

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
