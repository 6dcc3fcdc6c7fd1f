// ABOUTME: Per-kind SQL for record rows
// ABOUTME: Insert and scan helpers behind the generic Store operations
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/harperreed/shopbook/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx so ReplaceAll can reuse the
// insert path inside a transaction.
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// insertRecord writes rec exactly as given, including its sync metadata.
// Stamping unsynced/timestamp on collaborator writes happens in Put, not
// here, so pull-merge can re-insert pending records unchanged.
func insertRecord(e execer, rec models.Record) error {
	m := rec.Meta()
	switch r := rec.(type) {
	case *models.Sale:
		_, err := e.Exec(`
			INSERT OR REPLACE INTO sales (id, date, description, category, amount, synced, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Date, r.Description, r.Category, r.Amount, m.Synced, m.Timestamp)
		return err
	case *models.Expense:
		_, err := e.Exec(`
			INSERT OR REPLACE INTO expenses (id, date, description, category, amount, synced, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Date, r.Description, r.Category, r.Amount, m.Synced, m.Timestamp)
		return err
	case *models.Tender:
		expenses, err := json.Marshal(r.Expenses)
		if err != nil {
			return fmt.Errorf("encode tender expenses: %w", err)
		}
		if r.Expenses == nil {
			expenses = []byte("[]")
		}
		_, err = e.Exec(`
			INSERT OR REPLACE INTO tenders (id, reference, title, company_id, status, date, bid_amount, award_amount, expenses_json, synced, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Reference, r.Title, r.CompanyID, r.Status, r.Date, r.BidAmount, r.AwardAmount, string(expenses), m.Synced, m.Timestamp)
		return err
	case *models.Service:
		_, err := e.Exec(`
			INSERT OR REPLACE INTO services (id, customer, device, problem, status, received, due, amount, notes, synced, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Customer, r.Device, r.Problem, r.Status, r.Received, r.Due, r.Amount, r.Notes, m.Synced, m.Timestamp)
		return err
	case *models.Customer:
		_, err := e.Exec(`
			INSERT OR REPLACE INTO customers (id, name, phone, email, address, balance, synced, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Name, r.Phone, r.Email, r.Address, r.Balance, m.Synced, m.Timestamp)
		return err
	case *models.Company:
		_, err := e.Exec(`
			INSERT OR REPLACE INTO companies (id, name, contact, phone, email, synced, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Name, r.Contact, r.Phone, r.Email, m.Synced, m.Timestamp)
		return err
	default:
		return fmt.Errorf("unknown record type %T", rec)
	}
}

func (s *Store) queryRecords(kind models.Kind, unsyncedOnly bool) ([]models.Record, error) {
	cols, err := selectColumns(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", cols, kind)
	if unsyncedOnly {
		query += " WHERE synced = 0"
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		rec, err := scanRecord(kind, rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func selectColumns(kind models.Kind) (string, error) {
	switch kind {
	case models.KindSale, models.KindExpense:
		return "id, date, description, category, amount, synced, timestamp", nil
	case models.KindTender:
		return "id, reference, title, company_id, status, date, bid_amount, award_amount, expenses_json, synced, timestamp", nil
	case models.KindService:
		return "id, customer, device, problem, status, received, due, amount, notes, synced, timestamp", nil
	case models.KindCustomer:
		return "id, name, phone, email, address, balance, synced, timestamp", nil
	case models.KindCompany:
		return "id, name, contact, phone, email, synced, timestamp", nil
	default:
		return "", fmt.Errorf("unknown kind %q", kind)
	}
}

func scanRecord(kind models.Kind, rows *sql.Rows) (models.Record, error) {
	switch kind {
	case models.KindSale:
		r := &models.Sale{}
		err := rows.Scan(&r.ID, &r.Date, &r.Description, &r.Category, &r.Amount, &r.Sync.Synced, &r.Sync.Timestamp)
		return r, err
	case models.KindExpense:
		r := &models.Expense{}
		err := rows.Scan(&r.ID, &r.Date, &r.Description, &r.Category, &r.Amount, &r.Sync.Synced, &r.Sync.Timestamp)
		return r, err
	case models.KindTender:
		r := &models.Tender{}
		var expensesJSON string
		err := rows.Scan(&r.ID, &r.Reference, &r.Title, &r.CompanyID, &r.Status, &r.Date, &r.BidAmount, &r.AwardAmount, &expensesJSON, &r.Sync.Synced, &r.Sync.Timestamp)
		if err != nil {
			return nil, err
		}
		if jsonErr := json.Unmarshal([]byte(expensesJSON), &r.Expenses); jsonErr != nil {
			r.Expenses = nil
		}
		return r, nil
	case models.KindService:
		r := &models.Service{}
		err := rows.Scan(&r.ID, &r.Customer, &r.Device, &r.Problem, &r.Status, &r.Received, &r.Due, &r.Amount, &r.Notes, &r.Sync.Synced, &r.Sync.Timestamp)
		return r, err
	case models.KindCustomer:
		r := &models.Customer{}
		err := rows.Scan(&r.ID, &r.Name, &r.Phone, &r.Email, &r.Address, &r.Balance, &r.Sync.Synced, &r.Sync.Timestamp)
		return r, err
	case models.KindCompany:
		r := &models.Company{}
		err := rows.Scan(&r.ID, &r.Name, &r.Contact, &r.Phone, &r.Email, &r.Sync.Synced, &r.Sync.Timestamp)
		return r, err
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}
