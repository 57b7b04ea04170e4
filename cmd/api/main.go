// @title        CMMS Inventario API
// @version      1.0
// @description  Inventario de repuestos de mantenimiento: recepciones, traslados entre ubicaciones, consumos y saldos.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/cmms-inventario/docs"
	"github.com/jhoicas/cmms-inventario/internal/application/auth"
	"github.com/jhoicas/cmms-inventario/internal/application/inventory"
	"github.com/jhoicas/cmms-inventario/internal/application/usecase"
	"github.com/jhoicas/cmms-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/cmms-inventario/internal/infrastructure/report"
	"github.com/jhoicas/cmms-inventario/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/cmms-inventario/internal/interfaces/http"
	"github.com/jhoicas/cmms-inventario/pkg/config"
	"github.com/jhoicas/cmms-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("session_backend", cfg.Session.Backend).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	sessions, closeSessions := newSessionStore(ctx, cfg, log)
	defer closeSessions()

	partRepo := postgres.NewPartRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	inflowRepo := postgres.NewInflowRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	invLog := log.Component("inventory")
	receiveUC := inventory.NewReceivePartsUseCase(txRunner, partRepo, locationRepo, userRepo, invLog)
	transferUC := inventory.NewTransferPartsUseCase(txRunner, partRepo, locationRepo, userRepo, invLog)
	issueUC := inventory.NewIssuePartsUseCase(txRunner, partRepo, locationRepo, userRepo, invLog)
	queryUC := inventory.NewQueryUseCase(partRepo, locationRepo, balanceRepo, inflowRepo, transferRepo)
	replenishmentUC := inventory.NewReplenishmentUseCase(balanceRepo)
	documentUC := inventory.NewDocumentUseCase(locationRepo, balanceRepo, transferRepo,
		report.NewBalanceSheetWriter(), report.NewTransferSlipRenderer(cfg.App.Name))

	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Component("auth"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CMMS Inventario API",
	}))

	err = httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:   cfg.App.Name,
		Log:           log.Component("http"),
		Security:      cfg.Security,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		AuthUC:        authUC,
		PartUC:        usecase.NewPartUseCase(partRepo),
		LocationUC:    usecase.NewLocationUseCase(locationRepo),
		Receive:       receiveUC,
		Transfer:      transferUC,
		Issue:         issueUC,
		Query:         queryUC,
		Replenishment: replenishmentUC,
		Documents:     documentUC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar rutas")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newSessionStore crea el store de sesiones según SESSION_BACKEND. Redis permite varias
// instancias del servidor compartiendo sesiones; memory solo sirve con una instancia.
func newSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (auth.SessionStore, func()) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		rdb, err := session.NewRedisClient(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr()).Msg("conexión a Redis")
		}
		store := session.NewRedisStore(rdb)
		return store, func() { _ = store.Close() }
	default:
		store := session.NewMemoryStore(cfg.Session.SweepEvery, log.Component("session"))
		return store, func() { _ = store.Close() }
	}
}
