package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cornerstore/internal/config"
	"cornerstore/internal/handler"
	"cornerstore/internal/infra/db"
	infraRepo "cornerstore/internal/infra/repository"
	"cornerstore/internal/logger"
	"cornerstore/internal/server"
	"cornerstore/internal/usecase"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//deferでDBを閉じるため、終了はrunから戻ってから
	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	//DB接続
	gormDB, err := db.Connect(cfg, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	if err := db.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if cfg.Seed {
		if err := db.Seed(context.Background(), gormDB); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	cashierRepo := infraRepo.NewCashierGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, txm)
	orderUC := usecase.NewOrderUsecase(orderRepo, txm)
	cashierUC := usecase.NewCashierUsecase(cashierRepo)

	srv := server.New(cfg, log,
		handler.NewDocsHandler(cfg.IsDevelopment()),
		handler.NewHealthHandler(sqlDB),
		handler.NewCashierHandler(cashierUC),
		handler.NewProductHandler(productUC),
		handler.NewOrderHandler(orderUC),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
