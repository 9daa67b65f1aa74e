// internal/services/testdb_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raphaelcleo/storefront/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh connection would see a fresh in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Review{},
		&models.CartItem{},
		&models.Order{},
	))

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:  name,
		Price: price,
		Stock: 10,
		Image: "/static/img/" + name + ".png",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
