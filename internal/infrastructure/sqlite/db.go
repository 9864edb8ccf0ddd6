// Package sqlite implementa los repositorios sobre SQLite embebido con GORM.
// Es el almacenamiento por defecto (archivo tienda.sqlite3) cuando DB_DRIVER=sqlite.
package sqlite

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open abre (o crea) la base SQLite en path y aplica el esquema.
// path ":memory:" crea una base en memoria, útil en tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite sql.DB: %w", err)
	}
	// SQLite admite un solo escritor; una conexión evita "database is locked"
	// y mantiene viva la base en memoria.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate crea las tablas categoria y producto si no existen.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&categoriaModel{}, &productoModel{}); err != nil {
		return fmt.Errorf("migrar esquema sqlite: %w", err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + strings.TrimPrefix(path, "file:") + sep + "_foreign_keys=on&_busy_timeout=5000"
}
