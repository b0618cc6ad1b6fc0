package persistence

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storeadmin/backend/internal/application/storedata"
)

// GormTableStore implements the reconciler's TableStore port over the
// relational database. Tables are addressed by name and rows travel as
// column maps; the reconciler owns the schema mapping.
type GormTableStore struct {
	db *gorm.DB
}

// NewGormTableStore creates a table store over an open connection.
func NewGormTableStore(db *gorm.DB) *GormTableStore {
	return &GormTableStore{db: db}
}

// Select returns all of the store's rows in the given table. The parent
// stores table is keyed by id, every entity table by store_id.
func (s *GormTableStore) Select(ctx context.Context, table string, storeID uuid.UUID) ([]storedata.Row, error) {
	query := s.db.WithContext(ctx).Table(table)
	if table == storedata.TableStores {
		query = query.Where("id = ?", storeID.String())
	} else {
		query = query.Where("store_id = ?", storeID.String())
	}

	var raw []map[string]any
	if err := query.Find(&raw).Error; err != nil {
		return nil, err
	}
	rows := make([]storedata.Row, len(raw))
	for i, r := range raw {
		rows[i] = storedata.Row(r)
	}
	return rows, nil
}

// Upsert inserts or updates rows, matching on the conflict columns. All
// rows in one batch must carry the same column set.
func (s *GormTableStore) Upsert(ctx context.Context, table string, conflictColumns []string, rows []storedata.Row) error {
	if len(rows) == 0 {
		return nil
	}

	conflict := make([]clause.Column, len(conflictColumns))
	conflictSet := make(map[string]bool, len(conflictColumns))
	for i, col := range conflictColumns {
		conflict[i] = clause.Column{Name: col}
		conflictSet[col] = true
	}

	updateColumns := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		if !conflictSet[col] {
			updateColumns = append(updateColumns, col)
		}
	}
	sort.Strings(updateColumns)

	onConflict := clause.OnConflict{Columns: conflict, DoNothing: true}
	if len(updateColumns) > 0 {
		onConflict = clause.OnConflict{
			Columns:   conflict,
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}
	}

	payload := make([]map[string]any, len(rows))
	for i, row := range rows {
		payload[i] = map[string]any(row)
	}
	return s.db.WithContext(ctx).Table(table).Clauses(onConflict).Create(&payload).Error
}

// DeleteByStore removes every row in the table belonging to the store.
func (s *GormTableStore) DeleteByStore(ctx context.Context, table string, storeID uuid.UUID) error {
	// Table names come from the reconciler's fixed schema constants,
	// never from request input.
	stmt := fmt.Sprintf("DELETE FROM %s WHERE store_id = ?", table)
	return s.db.WithContext(ctx).Exec(stmt, storeID.String()).Error
}
