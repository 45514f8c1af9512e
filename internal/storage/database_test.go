package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	ID   int `gorm:"primaryKey"`
	Name string
}

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open(DriverSQLite, "file:storage_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate(&probe{}))
	require.NoError(t, db.Create(&probe{ID: 1, Name: "ok"}).Error)

	var got probe
	require.NoError(t, db.First(&got, 1).Error)
	assert.Equal(t, "ok", got.Name)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "")
	assert.ErrorContains(t, err, "unsupported storage driver")
}
