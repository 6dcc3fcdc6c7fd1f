// ABOUTME: Data models for business record entities
// ABOUTME: Defines the Kind enum, sync metadata, and per-kind record structs
package models

// Kind identifies one of the six synced entity categories. The value doubles
// as the local table name for that kind.
type Kind string

const (
	KindSale     Kind = "sales"
	KindExpense  Kind = "expenses"
	KindTender   Kind = "tenders"
	KindService  Kind = "services"
	KindCustomer Kind = "customers"
	KindCompany  Kind = "companies"
)

// Kinds returns every synced record kind, in push order.
func Kinds() []Kind {
	return []Kind{KindSale, KindExpense, KindTender, KindService, KindCustomer, KindCompany}
}

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSale, KindExpense, KindTender, KindService, KindCustomer, KindCompany:
		return true
	}
	return false
}

// SheetName returns the remote sheet tab for the kind.
func (k Kind) SheetName() string {
	switch k {
	case KindSale:
		return "Sales"
	case KindExpense:
		return "Expenses"
	case KindTender:
		return "Tenders"
	case KindService:
		return "Services"
	case KindCustomer:
		return "Customers"
	case KindCompany:
		return "Companies"
	}
	return ""
}

// KindFromString resolves user input ("sale", "sales", ...) to a Kind.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "sale", "sales":
		return KindSale, true
	case "expense", "expenses":
		return KindExpense, true
	case "tender", "tenders":
		return KindTender, true
	case "service", "services":
		return KindService, true
	case "customer", "customers":
		return KindCustomer, true
	case "company", "companies":
		return KindCompany, true
	}
	return "", false
}

// SyncMeta tracks whether the remote store has acknowledged the current
// version of a record. Timestamp is the epoch-millis write time of the last
// local mutation; it is diagnostic only and plays no part in conflict
// resolution.
type SyncMeta struct {
	Synced    bool  `json:"synced"`
	Timestamp int64 `json:"timestamp"`
}

// Record is implemented by every synced entity kind. The reconciliation
// engine only touches this surface; kind-specific fields are opaque to it.
type Record interface {
	Kind() Kind
	RecordID() string
	SetRecordID(id string)
	Meta() *SyncMeta
}

type Sale struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Amount      float64  `json:"amount"`
	Sync        SyncMeta `json:"sync"`
}

func (s *Sale) Kind() Kind            { return KindSale }
func (s *Sale) RecordID() string      { return s.ID }
func (s *Sale) SetRecordID(id string) { s.ID = id }
func (s *Sale) Meta() *SyncMeta       { return &s.Sync }

type Expense struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Amount      float64  `json:"amount"`
	Sync        SyncMeta `json:"sync"`
}

func (e *Expense) Kind() Kind            { return KindExpense }
func (e *Expense) RecordID() string      { return e.ID }
func (e *Expense) SetRecordID(id string) { e.ID = id }
func (e *Expense) Meta() *SyncMeta       { return &e.Sync }

// TenderExpense is one cost line item attached to a tender. The remote store
// carries the whole list as a JSON-encoded cell.
type TenderExpense struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Tender struct {
	ID          string          `json:"id"`
	Reference   string          `json:"reference"`
	Title       string          `json:"title"`
	CompanyID   string          `json:"company_id"`
	Status      string          `json:"status"`
	Date        string          `json:"date"`
	BidAmount   float64         `json:"bid_amount"`
	AwardAmount float64         `json:"award_amount"`
	Expenses    []TenderExpense `json:"expenses,omitempty"`
	Sync        SyncMeta        `json:"sync"`
}

func (t *Tender) Kind() Kind            { return KindTender }
func (t *Tender) RecordID() string      { return t.ID }
func (t *Tender) SetRecordID(id string) { t.ID = id }
func (t *Tender) Meta() *SyncMeta       { return &t.Sync }

type Service struct {
	ID       string   `json:"id"`
	Customer string   `json:"customer"`
	Device   string   `json:"device"`
	Problem  string   `json:"problem"`
	Status   string   `json:"status"`
	Received string   `json:"received"`
	Due      string   `json:"due"`
	Amount   float64  `json:"amount"`
	Notes    string   `json:"notes,omitempty"`
	Sync     SyncMeta `json:"sync"`
}

func (s *Service) Kind() Kind            { return KindService }
func (s *Service) RecordID() string      { return s.ID }
func (s *Service) SetRecordID(id string) { s.ID = id }
func (s *Service) Meta() *SyncMeta       { return &s.Sync }

type Customer struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Address string   `json:"address,omitempty"`
	Balance float64  `json:"balance"`
	Sync    SyncMeta `json:"sync"`
}

func (c *Customer) Kind() Kind            { return KindCustomer }
func (c *Customer) RecordID() string      { return c.ID }
func (c *Customer) SetRecordID(id string) { c.ID = id }
func (c *Customer) Meta() *SyncMeta       { return &c.Sync }

// Company is a tendering counterparty, distinct from repair customers.
type Company struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Contact string   `json:"contact,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Sync    SyncMeta `json:"sync"`
}

func (c *Company) Kind() Kind            { return KindCompany }
func (c *Company) RecordID() string      { return c.ID }
func (c *Company) SetRecordID(id string) { c.ID = id }
func (c *Company) Meta() *SyncMeta       { return &c.Sync }

// NewRecord returns an empty record of the given kind, or nil for an unknown
// kind.
func NewRecord(k Kind) Record {
	switch k {
	case KindSale:
		return &Sale{}
	case KindExpense:
		return &Expense{}
	case KindTender:
		return &Tender{}
	case KindService:
		return &Service{}
	case KindCustomer:
		return &Customer{}
	case KindCompany:
		return &Company{}
	}
	return nil
}
