// Migration runner for the portfolio schema
package main

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"portfolio/dao/query"
)

func main() {
	if err := query.InitDB(); err != nil {
		panic(fmt.Errorf("connect to postgres: %w", err))
	}
	db := query.DB

	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			// media updates were renamed to media items
			ID: "2026021015301",
			Migrate: func(tx *gorm.DB) error {
				if tx.Migrator().HasTable("media_updates") {
					return tx.Migrator().RenameTable("media_updates", "media_items")
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().RenameTable("media_items", "media_updates")
			},
		},
	})

	m.InitSchema(func(tx *gorm.DB) error {
		return query.AutoMigrate(tx)
	})

	if err := m.Migrate(); err != nil {
		panic(fmt.Errorf("could not migrate: %w", err))
	}
}
