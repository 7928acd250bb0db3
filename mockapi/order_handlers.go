package mockapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/serdvr66/orderQPro/entity"
	"github.com/serdvr66/orderQPro/pkg/resp"
	"github.com/serdvr66/orderQPro/utils"
)

func (s *Server) getOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]entity.Order(nil), s.orders...)
	resp.OK(c, out)
}

func (s *Server) placeOrder(c *gin.Context) {
	var req struct {
		TableCode     string             `json:"table_code" binding:"required"`
		Cart          []entity.OrderLine `json:"cart" binding:"required"`
		Note          string             `json:"note"`
		PlacedByStaff bool               `json:"placed_by_staff"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "table_code and cart are required")
		return
	}
	if len(req.Cart) == 0 {
		resp.BadRequest(c, "cart is empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.tableByCode(req.TableCode)
	if table == nil {
		resp.NotFound(c, "unknown table")
		return
	}
	s.ensureSessionLocked(table)

	now := time.Now().UTC().Format(time.RFC3339)
	source := entity.OrderSourceGuest
	staffFlag := 0
	if req.PlacedByStaff {
		source = entity.OrderSourceStaff
		staffFlag = 1
	}

	order := entity.Order{
		ID:        s.id(),
		UUID:      uuid.NewString(),
		CompanyID: utils.CurrentCompanyID(c),
		Status:    "open",
		Source:    source,
		Note:      req.Note,
		CreatedAt: now,
	}
	var subtotal entity.Price
	for _, line := range req.Cart {
		title := line.ItemID
		if item, ok := s.menuItemByUUID(line.ItemID); ok {
			title = item.Title
		}
		note := ""
		if len(line.Comments) > 0 {
			note = line.Comments[0]
		}
		itemUUID := uuid.NewString()
		lineTotal := line.Price.MulInt(line.Qty)
		order.Items = append(order.Items, entity.OrderItem{
			ID:             s.id(),
			UUID:           itemUUID,
			TableID:        table.ID,
			Status:         "open",
			Price:          line.Price,
			Quantity:       entity.PriceFromFloat(float64(line.Qty)),
			Subtotal:       lineTotal,
			Note:           note,
			Configurations: line.Configurations,
			IsAddedByStaff: staffFlag,
			CreatedAt:      now,
			Item:           entity.OrderMenuItem{Title: title, Price: line.BasePrice, Status: "active"},
		})
		subtotal = subtotal.Add(lineTotal)
		s.billing[req.TableCode] = append(s.billing[req.TableCode], entity.BillingItem{
			UUID:           itemUUID,
			Title:          title,
			Category:       "Bestellung",
			Price:          line.Price,
			Quantity:       line.Qty,
			Subtotal:       lineTotal,
			Status:         "open",
			IsAddedByStaff: req.PlacedByStaff,
			Configurations: line.Configurations,
			CreatedAt:      now,
		})
	}
	order.Subtotal = subtotal
	order.TotalItems = len(order.Items)
	s.orders = append(s.orders, order)

	resp.OKMessage(c, "order placed")
}

func (s *Server) toggleItemReady(c *gin.Context) {
	itemUUID := c.Param("uuid")

	s.mu.Lock()
	defer s.mu.Unlock()
	for oi := range s.orders {
		for ii := range s.orders[oi].Items {
			if s.orders[oi].Items[ii].UUID == itemUUID {
				s.orders[oi].Items[ii].IsReady = 1 - s.orders[oi].Items[ii].IsReady
				resp.OKMessage(c, "item updated")
				return
			}
		}
	}
	resp.NotFound(c, "unknown item")
}

func (s *Server) cancelOrderItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad item id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for oi := range s.orders {
		for ii, it := range s.orders[oi].Items {
			if it.ID != id {
				continue
			}
			s.removeBillingItemLocked(it.UUID)
			s.orders[oi].Items = append(s.orders[oi].Items[:ii], s.orders[oi].Items[ii+1:]...)
			if len(s.orders[oi].Items) == 0 {
				s.orders = append(s.orders[:oi], s.orders[oi+1:]...)
			}
			resp.OKMessage(c, "item cancelled")
			return
		}
	}
	resp.NotFound(c, "unknown item")
}

func (s *Server) completeOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			resp.OKMessage(c, "order completed")
			return
		}
	}
	resp.NotFound(c, "unknown order")
}

func (s *Server) completeAllOrders(c *gin.Context) {
	code := c.Param("code")

	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.tableByCode(code)
	if table == nil {
		resp.NotFound(c, "unknown table")
		return
	}
	kept := s.orders[:0]
	for _, o := range s.orders {
		if len(o.Items) > 0 && o.Items[0].TableID == table.ID {
			continue
		}
		kept = append(kept, o)
	}
	s.orders = kept
	resp.OKMessage(c, "orders completed")
}

func (s *Server) menuItemByUUID(itemUUID string) (entity.MenuItem, bool) {
	for _, cat := range s.menu {
		for _, item := range cat.Items {
			if item.UUID == itemUUID {
				return item, true
			}
		}
	}
	return entity.MenuItem{}, false
}
