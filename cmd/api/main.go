package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/arsenal-api/internal/application/auth"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/application/usecase"
	"github.com/jhoicas/arsenal-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/arsenal-api/internal/interfaces/http"
	"github.com/jhoicas/arsenal-api/pkg/config"
	"github.com/jhoicas/arsenal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	journal := postgres.NewLedgerJournal(pool)

	// El libro mayor vive en memoria; el journal escribe cada evento en
	// PostgreSQL antes de confirmarlo. Al arrancar se recupera el estado
	// completo desde la base de datos.
	store := appledger.NewStore(journal, nil)
	loader := postgres.NewSnapshotLoader(pool)
	snap, err := loader.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado del libro mayor")
	}
	store.Restore(snap)
	log.Info().
		Int("bases", len(snap.Bases)).
		Int("assets", len(snap.Assets)).
		Int("purchases", len(snap.Purchases)).
		Int("transfers", len(snap.Transfers)).
		Msg("libro mayor restaurado")

	authUC := auth.NewAuthUseCase(userRepo, store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Arsenal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		Store:     store,
		JWTSecret: cfg.JWT.Secret,
	})

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
