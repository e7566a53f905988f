package service

import (
	"testing"

	"Meadow/config"
	"Meadow/dao"
	"Meadow/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 每个测试用独立的内存库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.SupportMessage{},
		&models.Purchase{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App:    &config.App{Env: "test", Debug: true},
		Server: &config.Server{Http: 0},
		Sqlite: &config.Sqlite{Path: ":memory:"},
		Bot:    &config.Bot{Token: "test-token", AdminIDs: []int64{1}},
		Web:    &config.Web{Dir: t.TempDir()},
	}
}

func newTestCatalog(t *testing.T, db *gorm.DB) *CatalogService {
	t.Helper()
	return NewCatalogService(testConfig(t), dao.NewProduct(db))
}
