package login

import (
	"context"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

type Service interface {
	Login(ctx context.Context, req models.DummyLogin) (*models.SessionUser, string, error)
}
