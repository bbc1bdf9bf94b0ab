package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freehunt_backend/internal/auth"
	"freehunt_backend/internal/config"
	"freehunt_backend/internal/email"
	"freehunt_backend/internal/handlers"
	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/models/chat"
	"freehunt_backend/internal/payment"
	"freehunt_backend/internal/repositories"
	"freehunt_backend/internal/routes"
	"freehunt_backend/internal/services"
	"freehunt_backend/internal/validator"
	"freehunt_backend/internal/workers"
	"freehunt_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// App holds everything needed to run and shut down the server.
type App struct {
	cfg    *config.Config
	server *http.Server
	worker *workers.CheckpointWorker
}

func New() (*App, error) {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	repos := repositories.NewRepos(db)
	tx := repositories.NewTxManager(db)

	var gateway payment.Gateway
	if cfg.Payment.MerchantID == "" {
		logger.Warn("no payment merchant configured, using stub gateway")
		gateway = &StubPaymentGateway{}
	} else {
		gateway = payment.NewProvider(cfg.Payment)
	}
	mailer := email.NewProvider(cfg.Email)

	sc := services.NewServiceContainer(repos, tx, gateway, mailer, cfg)

	if err := seedFirstAdmin(context.Background(), repos, tx, cfg); err != nil {
		return nil, fmt.Errorf("seed first admin: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	manager := ws.NewManager(sc.Chat)
	routes.Setup(engine, handlers.NewAppHandlers(sc, validator.New()), manager, cfg)

	worker := workers.NewCheckpointWorker(repos.Checkpoint,
		time.Duration(cfg.Worker.CheckpointSweepMinutes)*time.Minute)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{cfg: cfg, server: server, worker: worker}, nil
}

// Run starts the worker and the HTTP server and blocks until SIGINT/SIGTERM,
// then drains connections.
func (a *App) Run() error {
	a.worker.Start()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.worker.Stop()
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	a.worker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return a.server.Shutdown(ctx)
}

func migrate(db *gorm.DB) error {
	// Chat tables live in their own schema; uuid defaults need pgcrypto on
	// Postgres versions before 13.
	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS chat`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		logger.Warn("could not ensure pgcrypto extension", "error", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Freelance{},
		&models.Skill{},
		&models.JobPosting{},
		&models.Candidate{},
		&models.Checkpoint{},
		&models.Project{},
		&models.Document{},
		&models.PaymentTransaction{},
		&chat.Conversation{},
		&chat.Message{},
	)
}

// seedFirstAdmin creates the bootstrap admin account on an empty install.
func seedFirstAdmin(ctx context.Context, repos *repositories.Repos, tx repositories.TxManager, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	_, err := repos.User.GetByEmail(ctx, cfg.FirstAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	return tx.Do(ctx, func(r *repositories.Repos) error {
		admin := &models.User{
			Email:        cfg.FirstAdminEmail,
			PasswordHash: hash,
			Name:         "Administrator",
			Role:         models.UserRoleAdmin,
			IsActive:     true,
		}
		if err := r.User.Create(ctx, admin); err != nil {
			// Lost a race against another instance booting; fine.
			if errors.Is(err, repositories.ErrDuplicate) {
				return nil
			}
			return err
		}
		logger.Info("first admin seeded", "email", cfg.FirstAdminEmail)
		return nil
	})
}
