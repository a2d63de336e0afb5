package counter

import (
	"context"
	"fmt"
	"time"

	"baratie/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dayLayout = "2006-01-02"

type (
	CounterRepository interface {
		// NextValue atomically increments the named sequence for the UTC day of day and returns the
		// new value. The first call of a day returns 1.
		NextValue(ctx context.Context, sequenceName string, day time.Time) (int64, error)
		WithTx(tx *gorm.DB) CounterRepository
	}

	counterRepository struct {
		db *gorm.DB
	}
)

func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &counterRepository{db: db}
}

// SequenceKey names the counter row of a sequence for one UTC day.
func SequenceKey(sequenceName string, day time.Time) string {
	return sequenceName + "_" + day.UTC().Format(dayLayout)
}

func (r *counterRepository) WithTx(tx *gorm.DB) CounterRepository {
	return &counterRepository{db: tx}
}

// upsertSequence inserts the first value of a sequence row or bumps the stored one, returning the
// resulting value into row.
func upsertSequence(db *gorm.DB, row *entities.Counter) *gorm.DB {
	return db.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"sequence_value": gorm.Expr("counters.sequence_value + 1"),
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "sequence_value"}}},
	).Create(row)
}

func (r *counterRepository) NextValue(ctx context.Context, sequenceName string, day time.Time) (int64, error) {
	row := entities.Counter{ID: SequenceKey(sequenceName, day), SequenceValue: 1}

	if err := upsertSequence(r.db.WithContext(ctx), &row).Error; err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", row.ID, err)
	}
	if row.SequenceValue < 1 {
		return 0, fmt.Errorf("counter %s returned %d", row.ID, row.SequenceValue)
	}
	return row.SequenceValue, nil
}
