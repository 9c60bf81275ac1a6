// Package reminder registers users with the WhatsApp accountability service.
package reminder

import (
	"context"
	"log/slog"

	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/service"
	"alvaqth/internal/errors"
	"alvaqth/internal/infra/backend"
)

const optInPath = "/rafeeq/opt-in"

type registrar struct {
	backend *backend.Client
	logger  *slog.Logger
}

// NewRegistrar creates a ReminderRegistrar on top of the backend transport
func NewRegistrar(client *backend.Client, logger *slog.Logger) service.ReminderRegistrar {
	return &registrar{
		backend: client,
		logger:  logger,
	}
}

// OptIn posts the registration. Any 2xx is success.
func (r *registrar) OptIn(ctx context.Context, registration *entity.OptInRegistration) error {
	if registration == nil {
		return errors.New("nil opt-in registration")
	}

	// encoding/json writes a nil slice as null
	if registration.Preferences.Prayers == nil {
		registration.Preferences.Prayers = []string{}
	}

	if err := r.backend.PostJSON(ctx, optInPath, registration, nil); err != nil {
		if detail := backend.DetailOf(err); detail != "" {
			return domainerrors.ErrOptInFailed.WithDetails(detail)
		}

		return errors.Wrap(domainerrors.ErrOptInFailed, err.Error())
	}

	r.logger.Info("Registered for reminders",
		slog.String("timezone", registration.Timezone),
		slog.Int("prayers", len(registration.Preferences.Prayers)),
	)

	return nil
}
