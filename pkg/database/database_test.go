package database

import (
	"testing"

	"quizmaster_backend/internal/config"
	"quizmaster_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	dialector, err := Dialector(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: "file:" + t.Name() + "?mode=memory&cache=shared"})
	require.NoError(t, err)
	db, err := Open(dialector, gormlogger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })
	return db
}

func TestDialectorSelectsDriver(t *testing.T) {
	cases := map[string]string{
		config.DriverSQLite:   "sqlite",
		config.DriverMySQL:    "mysql",
		config.DriverPostgres: "postgres",
	}
	for driver, want := range cases {
		d, err := Dialector(&config.DatabaseConfig{Driver: driver, Path: "x.db", Host: "h", Port: 1})
		require.NoError(t, err)
		assert.Equal(t, want, d.Name())
	}

	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, SeedDemo(db))
	require.NoError(t, SeedDemo(db))

	var users, quizzes, questions, results int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Quiz{}).Count(&quizzes)
	db.Model(&model.Question{}).Count(&questions)
	db.Model(&model.ResultHistory{}).Count(&results)

	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 2, quizzes)
	assert.EqualValues(t, 2, questions)
	assert.EqualValues(t, 2, results)

	var admin model.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Equal(t, "a1", admin.ID)

	var q model.Question
	require.NoError(t, db.Where("quiz_id = ?", "react-hooks").First(&q).Error)
	assert.Equal(t, []string{"useState", "useContext", "useEffect", "useReducer"}, []string(q.Options))
	assert.Equal(t, 2, q.CorrectAnswer)
}
