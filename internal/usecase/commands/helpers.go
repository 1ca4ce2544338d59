package commands

import (
	"context"
	"log/slog"

	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/usecase/shared"
)

// invalidate drops cached rule data. A failure only delays visibility of the
// write until the cache entries expire, so it is logged and not returned.
func invalidate(ctx context.Context, cache shared.CacheInvalidator, logger *slog.Logger) {
	if err := cache.Invalidate(ctx); err != nil {
		logger.WarnContext(ctx, "failed to invalidate rule cache", "error", err.Error())
	}
}

func mapWriteErr(err error) error {
	if errs.Is(err, shared.ErrReadOnlyStore) {
		return err
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
