package db

import (
	"database/sql"
	"fmt"
	"log"
)

// migration is one idempotent schema step. Steps are applied in order on
// every startup; a failing step is logged and skipped so the remaining
// steps still run.
type migration struct {
	name string
	run  func(db *sql.DB) error
}

var migrations = []migration{
	{"create_trips", createTable("trips", `
		CREATE TABLE IF NOT EXISTS trips (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			start_date VARCHAR(32) NOT NULL,
			end_date VARCHAR(32) NOT NULL,
			transport VARCHAR(64),
			capacity INT NOT NULL
		)`)},
	{"create_customers", createTable("customers", `
		CREATE TABLE IF NOT EXISTS customers (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			national_id VARCHAR(64) NOT NULL UNIQUE,
			email VARCHAR(255),
			phone VARCHAR(64),
			notes TEXT
		)`)},
	{"create_bookings", createTable("bookings", `
		CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			customer_id BIGINT,
			item_ref VARCHAR(64),
			transport VARCHAR(64),
			lodging VARCHAR(255),
			payment_status VARCHAR(32) DEFAULT 'pending'
		)`)},
	{"create_points_ledger", createTable("points_ledger", `
		CREATE TABLE IF NOT EXISTS points_ledger (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			customer_id BIGINT,
			description VARCHAR(255),
			points INT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)},
	{"create_packages", createTable("packages", `
		CREATE TABLE IF NOT EXISTS packages (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			destination VARCHAR(255) NOT NULL,
			party_size INT NOT NULL,
			discount DOUBLE,
			discount_type VARCHAR(128) NOT NULL
		)`)},
	{"create_discount_types", createTable("discount_types", `
		CREATE TABLE IF NOT EXISTS discount_types (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(128) NOT NULL UNIQUE
		)`)},
	// columns added after initial release
	{"customers_points_column", addColumn("customers", "points", "INT", "0")},
	{"trips_price_column", addColumn("trips", "price", "DECIMAL(10,2)", "")},
	{"packages_price_column", addColumn("packages", "price", "DECIMAL(10,2)", "")},
}

// Migrate applies the schema steps. Safe to run on every startup: tables are
// created only when missing and columns only when absent. Errors never abort
// the walk.
func Migrate(db *sql.DB) {
	for _, m := range migrations {
		if err := m.run(db); err != nil {
			log.Printf("[SCHEMA] step %s failed: %v", m.name, err)
			continue
		}
		log.Printf("[SCHEMA] step %s ok", m.name)
	}
}

func createTable(table, stmt string) func(*sql.DB) error {
	return func(db *sql.DB) error {
		if HasTable(db, table) {
			log.Printf("[SCHEMA] table %s already present", table)
			return nil
		}
		// IF NOT EXISTS stays in the statement as a backstop
		_, err := db.Exec(stmt)
		return err
	}
}

func addColumn(table, column, colType, defaultValue string) func(*sql.DB) error {
	return func(db *sql.DB) error {
		if HasColumn(db, table, column) {
			log.Printf("[SCHEMA] column %s.%s already present", table, column)
			return nil
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, colType)
		if defaultValue != "" {
			stmt += " DEFAULT " + defaultValue
		}
		_, err := db.Exec(stmt)
		return err
	}
}
