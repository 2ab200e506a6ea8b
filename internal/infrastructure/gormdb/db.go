package gormdb

import (
	"fmt"

	"github.com/seu-usuario/farmacia-api/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open abre a conexão GORM no dialeto configurado (postgres ou sqlite) e
// roda o AutoMigrate das três tabelas. TranslateError liga a tradução de
// violações de constraint para gorm.ErrDuplicatedKey.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.GormDialect {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres", "":
		dialector = postgres.Open(cfg.ConnectionString())
	default:
		return nil, fmt.Errorf("dialeto gorm desconhecido: %q", cfg.GormDialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir gorm: %w", err)
	}
	if err := db.AutoMigrate(&Category{}, &Product{}, &Customer{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
