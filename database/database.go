package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"digikala-dashboard/models"
)

// Connect opens the MySQL database holding the dashboard rows.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	log.Info().Msg("✅ Database connected successfully!")
	return db, nil
}

// LoadListingPrices reads every row of table. The table is only read; the
// dashboard never writes to it.
func LoadListingPrices(db *gorm.DB, table string) ([]models.ListingPrice, error) {
	var rows []models.ListingPrice
	err := db.Table(table).
		Where("brand IS NOT NULL AND brand <> ''").
		Where("category IS NOT NULL AND category <> ''").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("database: load %s: %w", table, err)
	}

	log.Info().Str("table", table).Int("rows", len(rows)).Msg("✅ Dataset rows loaded from database")
	return rows, nil
}
