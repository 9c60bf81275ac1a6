package main

import (
	"context"
	"log/slog"
	"os"

	"alvaqth/config"
	"alvaqth/internal/delivery"
	"alvaqth/internal/delivery/api"
	"alvaqth/internal/delivery/api/router/handler"
	"alvaqth/internal/domain/constants"
	"alvaqth/internal/infra/backend"
	"alvaqth/internal/infra/geocoding"
	"alvaqth/internal/infra/geolocation"
	logs "alvaqth/internal/infra/log"
	"alvaqth/internal/infra/persistence/blobstore"
	"alvaqth/internal/infra/prayertimes"
	"alvaqth/internal/infra/reminder"
	"alvaqth/internal/usecase"
	"alvaqth/internal/usecase/impl"

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
			announceWizardClose,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		blobstore.New,
		backend.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			blobstore.NewPreferenceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geolocation.New,
			geocoding.New,
			prayertimes.NewTimesClient,
			reminder.NewRegistrar,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewBoardService,
			impl.NewOptInWizard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBoardHandler,
			handler.NewLocationHandler,
			handler.NewOptInHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(constants.DeliveryGroupTag),
			),
		),
	)
}

// announceWizardClose logs when the wizard dismisses itself after a successful opt-in
func announceWizardClose(wizard usecase.OptInWizard, logger *slog.Logger) {
	notifier, ok := wizard.(interface{ OnClose(fn func()) })
	if !ok {
		return
	}

	notifier.OnClose(func() {
		logger.Info("Opt-in wizard closed after success")
	})
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
