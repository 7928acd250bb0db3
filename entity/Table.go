package entity

const (
	TableFree     = "free"
	TableOccupied = "occupied"
)

type Table struct {
	ID             int    `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	IsActive       bool   `json:"is_active"`
	Status         string `json:"status"` // free | occupied
	SessionCount   int    `json:"session_count"`
	PendingRevenue Price  `json:"pending_revenue"`
}

func (t Table) Occupied() bool { return t.Status == TableOccupied }

type TableSession struct {
	ID            int    `json:"id"`
	CustomerCount int    `json:"customer_count"`
	StartedAt     string `json:"started_at"`
}

type TableDetails struct {
	Table          Table         `json:"table"`
	CurrentSession *TableSession `json:"current_session,omitempty"`
}

type DashboardStats struct {
	ActiveOrders   int   `json:"active_orders"`
	OccupiedTables int   `json:"occupied_tables"`
	OpenCalls      int   `json:"open_calls"`
	PendingRevenue Price `json:"pending_revenue"`
}
