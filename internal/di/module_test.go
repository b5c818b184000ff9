package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/venkateswarareddychalla/eatoes/internal/app"
	"github.com/venkateswarareddychalla/eatoes/internal/config"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/repository"
	"github.com/venkateswarareddychalla/eatoes/internal/storage/postgres"
	"github.com/venkateswarareddychalla/eatoes/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	menuRepo := test.NewMenuRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	analyticsRepo := &test.AnalyticsRepositoryStub{}

	var facade *app.RestaurantFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.MenuRepository(menuRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.AnalyticsRepository(analyticsRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected restaurant facade instance")
	}
}
