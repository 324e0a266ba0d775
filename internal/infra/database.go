package infra

import (
	"fmt"

	"plastgest/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over every model. Error translation is enabled so unique constraint
// violations surface as gorm.ErrDuplicatedKey.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates all tables. gen_random_uuid() defaults
// require the pgcrypto extension on PostgreSQL < 13.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Produto{},
		&model.Receita{},
		&model.Constituinte{},
		&model.Cliente{},
		&model.Venda{},
		&model.ItemVenda{},
		&model.HistoricoVenda{},
		&model.HistoricoVendaItem{},
		&model.FichaExtrusao{},
		&model.FichaCorte{},
		&model.HistoricoEntrada{},
		&model.Maquina{},
	)
}
