package entity

type WaiterCall struct {
	ID         int    `json:"id"`
	TableID    int    `json:"table_id"`
	TableName  string `json:"table_name,omitempty"`
	Message    string `json:"message"`
	IsResolved bool   `json:"is_resolved"`
	CreatedAt  string `json:"created_at"`
}
