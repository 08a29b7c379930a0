package auth

import (
	"context"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// LogoutUserUseCase revokes a session's refresh token.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokenService: tokenService}
}

// Execute invalidates the refresh token. Logout is idempotent: a token
// that is already revoked, expired or unknown is not an error, the
// session ends either way.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, refreshToken string) error {
	if err := uc.tokenService.InvalidateRefreshToken(ctx, refreshToken); err != nil {
		slog.DebugContext(ctx, "refresh token invalidation skipped", "error", err)
	}
	return nil
}
