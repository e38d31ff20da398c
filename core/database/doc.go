// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens the consumption column store on MySQL (default), PostgreSQL or SQLite.
// SQLite is used for local runs and repository tests.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table so the integrity check can compare them with
// the consumption model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "user_entity_consumption")
package database
