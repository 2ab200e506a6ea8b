package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/seu-usuario/farmacia-api/internal/application/auth"
	"github.com/seu-usuario/farmacia-api/internal/application/usecase"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
	"github.com/seu-usuario/farmacia-api/internal/infrastructure/gormdb"
	"github.com/seu-usuario/farmacia-api/internal/infrastructure/mailer"
	"github.com/seu-usuario/farmacia-api/internal/infrastructure/postgres"
	"github.com/seu-usuario/farmacia-api/internal/infrastructure/supabase"
	httpRouter "github.com/seu-usuario/farmacia-api/internal/interfaces/http"
	"github.com/seu-usuario/farmacia-api/pkg/config"
	"github.com/seu-usuario/farmacia-api/pkg/logger"
)

// repositories agrupa os adaptadores de persistência montados no arranque.
type repositories struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
	creds      repository.CredentialRepository
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicação")

	repos, err := buildRepositories(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexão com o banco")
	}
	defer repos.close()

	var mail auth.Mailer
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		mail = mailer.NewLogMailer(log)
	}

	categoryUC := usecase.NewCategoryUseCase(repos.categories)
	productUC := usecase.NewProductUseCase(repos.products, repos.categories)
	customerUC := usecase.NewCustomerUseCase(repos.customers)
	authUC := auth.NewAuthUseCase(repos.customers, repos.creds, mail, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		CustomerUC: customerUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

// buildRepositories monta o backend selecionado em DB_DRIVER: postgres
// (pgx), gorm (postgres ou sqlite) ou supabase (PostgREST).
func buildRepositories(cfg *config.Config, log *logger.Logger) (*repositories, error) {
	switch cfg.DB.Driver {
	case "postgres":
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		customerRepo := postgres.NewCustomerRepository(pool)
		return &repositories{
			categories: postgres.NewCategoryRepository(pool),
			products:   postgres.NewProductRepository(pool),
			customers:  customerRepo,
			creds:      customerRepo,
			close:      pool.Close,
		}, nil

	case "gorm":
		db, err := gormdb.Open(cfg.DB)
		if err != nil {
			return nil, err
		}
		customerRepo := gormdb.NewCustomerRepository(db)
		return &repositories{
			categories: gormdb.NewCategoryRepository(db),
			products:   gormdb.NewProductRepository(db),
			customers:  customerRepo,
			creds:      customerRepo,
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil

	case "supabase":
		client := supabase.NewClient(cfg.DB)
		customerRepo := supabase.NewCustomerRepository(client)
		log.Info().Str("url", cfg.DB.SupabaseURL).Msg("usando Supabase via PostgREST")
		return &repositories{
			categories: supabase.NewCategoryRepository(client),
			products:   supabase.NewProductRepository(client),
			customers:  customerRepo,
			creds:      customerRepo,
			close:      func() {},
		}, nil

	default:
		return nil, fmt.Errorf("DB_DRIVER desconhecido: %q", cfg.DB.Driver)
	}
}
