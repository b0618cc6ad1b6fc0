package storedata

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/shared"
)

// MigrateAllLegacyDataToRelational walks every legacy user and every
// store they own, fetching the store's legacy document and pushing it
// through the normal save path. One store's failure never aborts the
// batch; each store produces one human-readable log line. A top-level
// fault returns the partial log built so far alongside the error.
func (r *Reconciler) MigrateAllLegacyDataToRelational(ctx context.Context) ([]string, error) {
	log := make([]string, 0)

	users, err := r.legacy.ListUsers(ctx)
	if err != nil {
		return log, fmt.Errorf("listing legacy users: %w", err)
	}

	migrated, failed := 0, 0
	for _, user := range users {
		for _, storeID := range user.StoreIDs {
			doc, ferr := r.legacy.FetchStoreDocument(ctx, storeID)
			if errors.Is(ferr, shared.ErrNotFound) {
				log = append(log, fmt.Sprintf("store %s (user %s): no legacy document, skipped", storeID, user.Email))
				continue
			}
			if ferr != nil {
				failed++
				log = append(log, fmt.Sprintf("store %s (user %s): fetch failed: %v", storeID, user.Email, ferr))
				continue
			}
			doc.StoreID = storeID
			if serr := r.Save(ctx, doc); serr != nil {
				failed++
				log = append(log, fmt.Sprintf("store %s (user %s): save failed: %v", storeID, user.Email, serr))
				continue
			}
			migrated++
			log = append(log, fmt.Sprintf("store %s (user %s): migrated", storeID, user.Email))
		}
	}

	r.logger.Info("legacy migration finished",
		zap.Int("migrated", migrated),
		zap.Int("failed", failed),
		zap.Int("users", len(users)))
	return log, nil
}
