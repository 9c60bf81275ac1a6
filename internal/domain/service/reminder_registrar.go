package service

import (
	"context"

	"alvaqth/internal/domain/entity"
)

// ReminderRegistrar enrolls a user with the accountability reminder service.
type ReminderRegistrar interface {
	// OptIn submits the registration. Server rejections carry the server's detail message.
	OptIn(ctx context.Context, registration *entity.OptInRegistration) error
}
