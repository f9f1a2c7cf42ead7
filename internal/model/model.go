package model

import "time"

type RentalPackage struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description,omitempty" json:"description,omitempty"`
	Category      string    `db:"category" json:"category"`
	PricePerDay   float64   `db:"price_per_day" json:"price_per_day"`
	ItemsIncluded string    `db:"items_included,omitempty" json:"items_included,omitempty"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type Customer struct {
	ID        int       `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone,omitempty" json:"phone,omitempty"`
	Company   string    `db:"company,omitempty" json:"company,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Quote struct {
	ID         int         `db:"id" json:"id"`
	CustomerID int         `db:"customer_id" json:"customer_id"`
	EventType  string      `db:"event_type" json:"event_type"`
	EventDate  time.Time   `db:"event_date" json:"event_date"`
	Notes      string      `db:"notes,omitempty" json:"notes,omitempty"`
	Status     string      `db:"status" json:"status"`
	Total      float64     `db:"total" json:"total"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
	Items      []QuoteItem `db:"-" json:"items,omitempty"`
}

type QuoteItem struct {
	ID        int     `db:"id" json:"id"`
	QuoteID   int     `db:"quote_id" json:"quote_id"`
	PackageID int     `db:"package_id" json:"package_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
	LineTotal float64 `db:"line_total" json:"line_total"`
}

type Message struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `db:"subject,omitempty" json:"subject,omitempty"`
	Body      string    `db:"body" json:"body"`
	Source    string    `db:"source" json:"source"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Admin struct {
	ID           int       `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"full_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type DashboardStats struct {
	TotalQuotes        int     `json:"total_quotes"`
	PendingQuotes      int     `json:"pending_quotes"`
	ApprovedQuotes     int     `json:"approved_quotes"`
	RejectedQuotes     int     `json:"rejected_quotes"`
	TotalCustomers     int     `json:"total_customers"`
	QuotationCustomers int     `json:"quotation_customers"`
	UnreadMessages     int     `json:"unread_messages"`
	ApprovedRevenue    float64 `json:"approved_revenue"`
}
