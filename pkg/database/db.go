package database

import (
	"Meadow/config"
	"Meadow/models"
	"Meadow/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接，建表是幂等的
func NewDB(conf *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(conf.Sqlite.Path), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.SupportMessage{},
		&models.Purchase{},
	); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}

	log.L.Info("connect database success", zap.String("path", conf.Sqlite.Path))
	return db
}
