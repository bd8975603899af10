package register

import (
	"context"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

type Service interface {
	Register(ctx context.Context, req models.DummyRegister) (*models.SessionUser, string, error)
}
