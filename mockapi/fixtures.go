package mockapi

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/serdvr66/orderQPro/entity"
)

// Seeded staff login for the stand-in backend.
const (
	StaffEmail    = "staff@orderq.test"
	StaffPassword = "geheim123"
)

func (s *Server) seed() {
	hash, _ := bcrypt.GenerateFromPassword([]byte(StaffPassword), bcrypt.DefaultCost)
	s.passwordHash = hash
	s.staff = entity.User{
		ID:          1,
		Name:        "Test Kellner",
		Email:       StaffEmail,
		CompanyID:   1,
		Roles:       []string{"waiter"},
		Permissions: []string{"pay_items", "cancel_items", "place_orders"},
	}

	s.menu = []entity.MenuCategory{
		{
			ID: 1, UUID: uuid.NewString(), Title: "Pizza", Order: 1, IsEnabled: true,
			Items: []entity.MenuItem{
				{
					ID: 11, UUID: "item-margherita", Title: "Pizza Margherita",
					Description: "Tomate, Mozzarella, Basilikum",
					Price:       entity.PriceFromString("8.50"),
					IsEnabled:   true,
					Configurations: []entity.ItemConfiguration{
						{
							ID: 1, Title: "Größe", Type: entity.ConfigurationSingle,
							Options: []entity.ConfigurationOption{
								{ID: 1, Title: "Klein", PriceChange: entity.PriceFromString("0.00"), Preselected: true},
								{ID: 2, Title: "Groß", PriceChange: entity.PriceFromString("1.50")},
							},
						},
						{
							ID: 2, Title: "Extras", Type: entity.ConfigurationMultiple,
							Options: []entity.ConfigurationOption{
								{ID: 3, Title: "Extra Käse", PriceChange: entity.PriceFromString("1.00")},
								{ID: 4, Title: "Knoblauch", PriceChange: entity.PriceFromString("0.50")},
							},
						},
					},
				},
				{
					ID: 12, UUID: "item-funghi", Title: "Pizza Funghi",
					Price: entity.PriceFromString("9.50"), IsEnabled: true,
				},
			},
		},
		{
			ID: 2, UUID: uuid.NewString(), Title: "Getränke", Order: 2, IsEnabled: true,
			Items: []entity.MenuItem{
				{ID: 21, UUID: "item-cola", Title: "Cola", Price: entity.PriceFromString("3.00"), IsEnabled: true},
				{ID: 22, UUID: "item-wasser", Title: "Wasser", Price: entity.PriceFromString("2.50"), IsEnabled: true},
			},
		},
	}

	s.tables = []entity.Table{
		{ID: 1, Code: "T1", Name: "Tisch 1", IsActive: true, Status: entity.TableFree},
		{ID: 2, Code: "T2", Name: "Tisch 2", IsActive: true, Status: entity.TableFree},
		{ID: 3, Code: "T3", Name: "Tisch 3", IsActive: true, Status: entity.TableFree},
	}
}

// PlaceGuestOrder injects a guest order directly into the board, the way a
// guest device would. Tests and the -mock demo use it to simulate traffic.
func (s *Server) PlaceGuestOrder(tableCode, itemTitle, price string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.tableByCode(tableCode)
	if table == nil {
		return
	}
	s.ensureSessionLocked(table)

	now := time.Now().UTC().Format(time.RFC3339)
	itemUUID := uuid.NewString()
	p := entity.PriceFromString(price)
	order := entity.Order{
		ID:         s.id(),
		UUID:       uuid.NewString(),
		CompanyID:  s.staff.CompanyID,
		Status:     "open",
		Source:     entity.OrderSourceGuest,
		Subtotal:   p,
		TotalItems: 1,
		CreatedAt:  now,
		Items: []entity.OrderItem{
			{
				ID: s.id(), UUID: itemUUID, TableID: table.ID,
				Status: "open", Price: p, Quantity: entity.PriceFromString("1"),
				Subtotal: p, CreatedAt: now,
				Item: entity.OrderMenuItem{Title: itemTitle, Price: p, Status: "active"},
			},
		},
	}
	s.orders = append(s.orders, order)
	s.billing[tableCode] = append(s.billing[tableCode], entity.BillingItem{
		UUID: itemUUID, Title: itemTitle, Category: "Gast",
		Price: p, Quantity: 1, Subtotal: p, Status: "open", CreatedAt: now,
	})
}

// CallWaiter injects an unresolved waiter call, as from a guest device.
func (s *Server) CallWaiter(tableCode, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.tableByCode(tableCode)
	if table == nil {
		return
	}
	s.calls = append(s.calls, entity.WaiterCall{
		ID:        s.id(),
		TableID:   table.ID,
		TableName: table.Name,
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) ensureSessionLocked(table *entity.Table) int {
	if id, ok := s.sessions[table.Code]; ok {
		return id
	}
	id := s.id()
	s.sessions[table.Code] = id
	table.Status = entity.TableOccupied
	table.SessionCount++
	return id
}
