package service

import (
	"context"

	"perkpal-backend/internal/shared/middleware"
)

func clientIPFromContext(ctx context.Context) string {
	return middleware.GetClientIPFromContext(ctx)
}
