// ABOUTME: Local store schema definitions
// ABOUTME: One table per entity kind plus the flat settings map
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS sales (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	amount REAL NOT NULL DEFAULT 0,
	synced INTEGER NOT NULL DEFAULT 0,
	timestamp INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_sales_synced ON sales(synced);
CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date);

CREATE TABLE IF NOT EXISTS expenses (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	amount REAL NOT NULL DEFAULT 0,
	synced INTEGER NOT NULL DEFAULT 0,
	timestamp INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_expenses_synced ON expenses(synced);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);

CREATE TABLE IF NOT EXISTS tenders (
	id TEXT PRIMARY KEY,
	reference TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL DEFAULT '',
	company_id TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL DEFAULT '',
	bid_amount REAL NOT NULL DEFAULT 0,
	award_amount REAL NOT NULL DEFAULT 0,
	expenses_json TEXT NOT NULL DEFAULT '[]',
	synced INTEGER NOT NULL DEFAULT 0,
	timestamp INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_tenders_synced ON tenders(synced);

CREATE TABLE IF NOT EXISTS services (
	id TEXT PRIMARY KEY,
	customer TEXT NOT NULL DEFAULT '',
	device TEXT NOT NULL DEFAULT '',
	problem TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	received TEXT NOT NULL DEFAULT '',
	due TEXT NOT NULL DEFAULT '',
	amount REAL NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT '',
	synced INTEGER NOT NULL DEFAULT 0,
	timestamp INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_services_synced ON services(synced);

CREATE TABLE IF NOT EXISTS customers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	balance REAL NOT NULL DEFAULT 0,
	synced INTEGER NOT NULL DEFAULT 0,
	timestamp INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_customers_synced ON customers(synced);

CREATE TABLE IF NOT EXISTS companies (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	contact TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	synced INTEGER NOT NULL DEFAULT 0,
	timestamp INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_companies_synced ON companies(synced);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL DEFAULT ''
);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
