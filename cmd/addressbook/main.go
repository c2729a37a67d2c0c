package main

import (
	"context"
	"log/slog"
	"os"

	"addressbook/config"
	"addressbook/internal/delivery"
	"addressbook/internal/delivery/api"
	"addressbook/internal/delivery/api/router/handler"
	"addressbook/internal/domain/repository"
	"addressbook/internal/infra/lookup"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/infra/persistence/memory"
	"addressbook/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			seedAddressBook,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewAddressBookStore,
		),
	)
}

func injectService() fx.Option {
	return lookup.Module
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressBookService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressBookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedAddressBook bulk-loads the configured addresses before the server starts
func seedAddressBook(cfg *config.Config, book repository.AddressBookRepository, logger *slog.Logger) {
	if cfg.AddressBook == nil || len(cfg.AddressBook.Seed) == 0 {
		return
	}

	state := book.ReplaceAll(cfg.AddressBook.Seed)
	logger.Info("Address book seeded from configuration", slog.Int("size", state.Len()))
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
