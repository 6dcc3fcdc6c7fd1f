// ABOUTME: Positional row codec between records and sheet cells
// ABOUTME: Fixed column orders per kind; malformed cells default, never fail
package sheets

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/shopbook/models"
)

// lastColumn returns the rightmost data column letter for the kind. Column
// positions, not header names, are what gets read back.
func lastColumn(kind models.Kind) string {
	switch kind {
	case models.KindSale, models.KindExpense, models.KindCompany:
		return "E"
	case models.KindTender, models.KindService:
		return "I"
	case models.KindCustomer:
		return "F"
	}
	return ""
}

func headerRange(kind models.Kind) string {
	return fmt.Sprintf("%s!A1:%s1", kind.SheetName(), lastColumn(kind))
}

// dataRange skips the header row.
func dataRange(kind models.Kind) string {
	return fmt.Sprintf("%s!A2:%s", kind.SheetName(), lastColumn(kind))
}

func appendRange(kind models.Kind) string {
	return fmt.Sprintf("%s!A:%s", kind.SheetName(), lastColumn(kind))
}

func headerRow(kind models.Kind) []interface{} {
	switch kind {
	case models.KindSale, models.KindExpense:
		return []interface{}{"ID", "Date", "Description", "Category", "Amount"}
	case models.KindTender:
		return []interface{}{"ID", "Reference", "Title", "Client", "Status", "Date", "Bid Amount", "Award Amount", "Expenses"}
	case models.KindService:
		return []interface{}{"ID", "Customer", "Device", "Problem", "Status", "Received", "Due", "Amount", "Notes"}
	case models.KindCustomer:
		return []interface{}{"ID", "Name", "Phone", "Email", "Address", "Balance"}
	case models.KindCompany:
		return []interface{}{"ID", "Name", "Contact", "Phone", "Email"}
	}
	return nil
}

// rowValues serializes the record's fixed, ordered column set for its kind.
func rowValues(rec models.Record) []interface{} {
	switch r := rec.(type) {
	case *models.Sale:
		return []interface{}{r.ID, r.Date, r.Description, r.Category, r.Amount}
	case *models.Expense:
		return []interface{}{r.ID, r.Date, r.Description, r.Category, r.Amount}
	case *models.Tender:
		expenses, err := json.Marshal(r.Expenses)
		if err != nil || r.Expenses == nil {
			expenses = []byte("[]")
		}
		return []interface{}{r.ID, r.Reference, r.Title, r.CompanyID, r.Status, r.Date, r.BidAmount, r.AwardAmount, string(expenses)}
	case *models.Service:
		return []interface{}{r.ID, r.Customer, r.Device, r.Problem, r.Status, r.Received, r.Due, r.Amount, r.Notes}
	case *models.Customer:
		return []interface{}{r.ID, r.Name, r.Phone, r.Email, r.Address, r.Balance}
	case *models.Company:
		return []interface{}{r.ID, r.Name, r.Contact, r.Phone, r.Email}
	}
	return nil
}

// recordFromRow deserializes one data row into the kind's record shape.
// Missing or malformed cells default to empty string or zero; a bad row never
// fails the whole read.
func recordFromRow(kind models.Kind, row []interface{}) models.Record {
	switch kind {
	case models.KindSale:
		return &models.Sale{
			ID:          cellString(row, 0),
			Date:        cellString(row, 1),
			Description: cellString(row, 2),
			Category:    cellString(row, 3),
			Amount:      cellFloat(row, 4),
		}
	case models.KindExpense:
		return &models.Expense{
			ID:          cellString(row, 0),
			Date:        cellString(row, 1),
			Description: cellString(row, 2),
			Category:    cellString(row, 3),
			Amount:      cellFloat(row, 4),
		}
	case models.KindTender:
		tender := &models.Tender{
			ID:          cellString(row, 0),
			Reference:   cellString(row, 1),
			Title:       cellString(row, 2),
			CompanyID:   cellString(row, 3),
			Status:      cellString(row, 4),
			Date:        cellString(row, 5),
			BidAmount:   cellFloat(row, 6),
			AwardAmount: cellFloat(row, 7),
		}
		if raw := cellString(row, 8); raw != "" {
			if err := json.Unmarshal([]byte(raw), &tender.Expenses); err != nil {
				tender.Expenses = nil
			}
		}
		return tender
	case models.KindService:
		return &models.Service{
			ID:       cellString(row, 0),
			Customer: cellString(row, 1),
			Device:   cellString(row, 2),
			Problem:  cellString(row, 3),
			Status:   cellString(row, 4),
			Received: cellString(row, 5),
			Due:      cellString(row, 6),
			Amount:   cellFloat(row, 7),
			Notes:    cellString(row, 8),
		}
	case models.KindCustomer:
		return &models.Customer{
			ID:      cellString(row, 0),
			Name:    cellString(row, 1),
			Phone:   cellString(row, 2),
			Email:   cellString(row, 3),
			Address: cellString(row, 4),
			Balance: cellFloat(row, 5),
		}
	case models.KindCompany:
		return &models.Company{
			ID:      cellString(row, 0),
			Name:    cellString(row, 1),
			Contact: cellString(row, 2),
			Phone:   cellString(row, 3),
			Email:   cellString(row, 4),
		}
	}
	return nil
}

func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cellFloat(row []interface{}, i int) float64 {
	if i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
