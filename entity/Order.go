package entity

const (
	OrderSourceGuest = "guest"
	OrderSourceStaff = "staff"
)

// Order is a remote-owned snapshot; the client never mutates it directly,
// only through the explicit endpoints.
type Order struct {
	ID         int         `json:"id"`
	UUID       string      `json:"uuid"`
	CompanyID  int         `json:"company_id"`
	Status     string      `json:"status"`
	Source     string      `json:"source"`
	Subtotal   Price       `json:"subtotal"`
	TotalItems int         `json:"total_items"`
	Note       string      `json:"note,omitempty"`
	CreatedAt  string      `json:"created_at"`
	Items      []OrderItem `json:"order_items"`
}

// AllReady reports whether every line of the order has been marked ready.
func (o Order) AllReady() bool {
	for _, it := range o.Items {
		if !it.Ready() {
			return false
		}
	}
	return len(o.Items) > 0
}

type OrderItem struct {
	ID             int                 `json:"id"`
	UUID           string              `json:"uuid"`
	TableID        int                 `json:"table_id"`
	ItemID         int                 `json:"item_id"`
	Status         string              `json:"status"`
	Price          Price               `json:"price"`
	Quantity       Price               `json:"quantity"` // backend sends "2.00"
	Subtotal       Price               `json:"subtotal"`
	IsReady        int                 `json:"is_ready"`
	Note           string              `json:"note,omitempty"`
	Configurations *LineConfigurations `json:"configurations,omitempty"`
	IsAddedByStaff int                 `json:"is_added_by_staff"`
	CreatedAt      string              `json:"created_at"`
	Item           OrderMenuItem       `json:"item"`
}

func (i OrderItem) Ready() bool { return i.IsReady == 1 }

// OrderMenuItem is the reduced menu item embedded in an order line.
type OrderMenuItem struct {
	ID          int    `json:"id"`
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       Price  `json:"price"`
	Status      string `json:"status"`
}
