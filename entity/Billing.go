package entity

type BillingItem struct {
	UUID           string              `json:"uuid"`
	Title          string              `json:"title"`
	Category       string              `json:"category"`
	Price          Price               `json:"price"`
	Quantity       int                 `json:"quantity"`
	Subtotal       Price               `json:"subtotal"`
	Status         string              `json:"status"`
	IsPaid         bool                `json:"is_paid"`
	IsAddedByStaff bool                `json:"is_added_by_staff"`
	Configurations *LineConfigurations `json:"configurations,omitempty"`
	CreatedAt      string              `json:"created_at"`
}

type BillingCustomer struct {
	SessionID      int           `json:"session_id"`
	CustomerNumber int           `json:"customer_number"`
	Items          []BillingItem `json:"items"`
	SessionRevenue Price         `json:"session_revenue"`
}

type BillingTotals struct {
	TotalAmount   Price `json:"total_amount"`
	PaidAmount    Price `json:"paid_amount"`
	PendingAmount Price `json:"pending_amount"`
}

type BillingTable struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type BillingData struct {
	Table           BillingTable      `json:"table"`
	Customers       []BillingCustomer `json:"customers"`
	Totals          BillingTotals     `json:"totals"`
	AvailableTables []BillingTable    `json:"available_tables"`
}

// Items flattens all customer sessions into one list, the way the billing
// screen renders it.
func (b *BillingData) Items() []BillingItem {
	var all []BillingItem
	for _, c := range b.Customers {
		all = append(all, c.Items...)
	}
	return all
}
