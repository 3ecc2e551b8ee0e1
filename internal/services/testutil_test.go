package services

import (
	"fmt"
	"testing"

	"github.com/fittrackhq/fittrack-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a uniquely named in-memory SQLite database and migrates the
// domain schema. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.WorkoutRoutine{},
		&models.RoutineStep{},
		&models.Equipment{},
		&models.Workout{},
	))
	return db
}

func uintPtr(v uint) *uint        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
