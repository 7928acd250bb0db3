package mockapi

import (
	"github.com/gin-gonic/gin"

	"github.com/serdvr66/orderQPro/entity"
	"github.com/serdvr66/orderQPro/pkg/resp"
)

func (s *Server) getBilling(c *gin.Context) {
	code := c.Param("code")

	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.tableByCode(code)
	if table == nil {
		resp.NotFound(c, "unknown table")
		return
	}
	resp.OK(c, s.billingDataLocked(table))
}

func (s *Server) billingDataLocked(table *entity.Table) entity.BillingData {
	data := entity.BillingData{
		Table: entity.BillingTable{ID: table.ID, Code: table.Code, Name: table.Name},
	}
	items := s.billing[table.Code]
	if len(items) > 0 {
		data.Customers = []entity.BillingCustomer{
			{
				SessionID:      s.sessions[table.Code],
				CustomerNumber: 1,
				Items:          append([]entity.BillingItem(nil), items...),
			},
		}
	}
	for _, it := range items {
		data.Totals.TotalAmount = data.Totals.TotalAmount.Add(it.Subtotal)
		if it.IsPaid {
			data.Totals.PaidAmount = data.Totals.PaidAmount.Add(it.Subtotal)
		} else {
			data.Totals.PendingAmount = data.Totals.PendingAmount.Add(it.Subtotal)
		}
	}
	if len(data.Customers) == 1 {
		data.Customers[0].SessionRevenue = data.Totals.TotalAmount
	}
	for _, t := range s.tables {
		if t.ID != table.ID {
			data.AvailableTables = append(data.AvailableTables, entity.BillingTable{ID: t.ID, Code: t.Code, Name: t.Name})
		}
	}
	return data
}

func (s *Server) toggleItemPaid(c *gin.Context) {
	itemUUID := c.Param("uuid")

	s.mu.Lock()
	defer s.mu.Unlock()
	for code, items := range s.billing {
		for i := range items {
			if items[i].UUID == itemUUID {
				s.billing[code][i].IsPaid = !items[i].IsPaid
				resp.OKMessage(c, "item updated")
				return
			}
		}
	}
	resp.NotFound(c, "unknown item")
}

func (s *Server) cancelBillingItem(c *gin.Context) {
	itemUUID := c.Param("uuid")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, items := range s.billing {
		for _, it := range items {
			if it.UUID == itemUUID {
				s.removeBillingItemLocked(itemUUID)
				s.removeOrderItemLocked(itemUUID)
				resp.OKMessage(c, "item cancelled")
				return
			}
		}
	}
	resp.NotFound(c, "unknown item")
}

func (s *Server) bulkPay(c *gin.Context) {
	var req struct {
		ItemIDs []string `json:"item_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "item_ids is required")
		return
	}

	wanted := make(map[string]bool, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		wanted[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	paid := 0
	for code, items := range s.billing {
		for i := range items {
			if wanted[items[i].UUID] && !items[i].IsPaid {
				s.billing[code][i].IsPaid = true
				paid++
			}
		}
	}
	if paid == 0 {
		resp.BadRequest(c, "no matching unpaid items")
		return
	}
	resp.OKMessage(c, "items paid")
}

func (s *Server) paySession(c *gin.Context) {
	code := c.Param("code")

	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.tableByCode(code)
	if table == nil {
		resp.NotFound(c, "unknown table")
		return
	}
	for i := range s.billing[code] {
		s.billing[code][i].IsPaid = true
	}
	resp.OKMessage(c, "session paid")
}

func (s *Server) endSession(c *gin.Context) {
	code := c.Param("code")

	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.tableByCode(code)
	if table == nil {
		resp.NotFound(c, "unknown table")
		return
	}
	for _, it := range s.billing[code] {
		s.removeOrderItemLocked(it.UUID)
	}
	delete(s.billing, code)
	delete(s.sessions, code)
	table.Status = entity.TableFree
	resp.OKMessage(c, "session ended")
}

func (s *Server) moveOrder(c *gin.Context) {
	srcCode := c.Param("code")
	var req struct {
		TableCode string   `json:"table_code" binding:"required"`
		ItemIDs   []string `json:"item_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "table_code is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.tableByCode(srcCode)
	dst := s.tableByCode(req.TableCode)
	if src == nil || dst == nil {
		resp.NotFound(c, "unknown table")
		return
	}
	s.ensureSessionLocked(dst)

	moveAll := len(req.ItemIDs) == 0
	wanted := make(map[string]bool, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		wanted[id] = true
	}

	kept := s.billing[srcCode][:0]
	for _, it := range s.billing[srcCode] {
		if moveAll || wanted[it.UUID] {
			s.billing[req.TableCode] = append(s.billing[req.TableCode], it)
			s.retargetOrderItemLocked(it.UUID, dst.ID)
			continue
		}
		kept = append(kept, it)
	}
	s.billing[srcCode] = kept
	if len(s.billing[srcCode]) == 0 {
		delete(s.billing, srcCode)
		delete(s.sessions, srcCode)
		src.Status = entity.TableFree
	}
	resp.OKMessage(c, "order moved")
}

func (s *Server) removeBillingItemLocked(itemUUID string) {
	for code, items := range s.billing {
		for i, it := range items {
			if it.UUID == itemUUID {
				s.billing[code] = append(items[:i], items[i+1:]...)
				return
			}
		}
	}
}

func (s *Server) removeOrderItemLocked(itemUUID string) {
	for oi := range s.orders {
		for ii, it := range s.orders[oi].Items {
			if it.UUID == itemUUID {
				s.orders[oi].Items = append(s.orders[oi].Items[:ii], s.orders[oi].Items[ii+1:]...)
				if len(s.orders[oi].Items) == 0 {
					s.orders = append(s.orders[:oi], s.orders[oi+1:]...)
				}
				return
			}
		}
	}
}

func (s *Server) retargetOrderItemLocked(itemUUID string, tableID int) {
	for oi := range s.orders {
		for ii := range s.orders[oi].Items {
			if s.orders[oi].Items[ii].UUID == itemUUID {
				s.orders[oi].Items[ii].TableID = tableID
				return
			}
		}
	}
}
