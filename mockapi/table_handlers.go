package mockapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/serdvr66/orderQPro/entity"
	"github.com/serdvr66/orderQPro/pkg/resp"
)

func (s *Server) getMenu(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp.OK(c, s.menu)
}

func (s *Server) getTables(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Table, len(s.tables))
	for i, t := range s.tables {
		t.PendingRevenue = s.pendingRevenueLocked(t.Code)
		out[i] = t
	}
	resp.OK(c, out)
}

func (s *Server) getTableDetails(c *gin.Context) {
	code := c.Param("code")

	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.tableByCode(code)
	if table == nil {
		resp.NotFound(c, "unknown table")
		return
	}

	details := entity.TableDetails{Table: *table}
	details.Table.PendingRevenue = s.pendingRevenueLocked(code)
	if id, ok := s.sessions[code]; ok {
		details.CurrentSession = &entity.TableSession{
			ID:        id,
			StartedAt: time.Now().UTC().Format(time.RFC3339),
		}
	}
	resp.OK(c, details)
}

func (s *Server) startSession(c *gin.Context) {
	var req struct {
		TableCode string `json:"table_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "table_code is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.tableByCode(req.TableCode)
	if table == nil {
		resp.NotFound(c, "unknown table")
		return
	}
	id := s.ensureSessionLocked(table)
	resp.OK(c, entity.TableSession{ID: id, StartedAt: time.Now().UTC().Format(time.RFC3339)})
}

func (s *Server) getStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := entity.DashboardStats{ActiveOrders: len(s.orders)}
	for _, t := range s.tables {
		if t.Occupied() {
			stats.OccupiedTables++
		}
		stats.PendingRevenue = stats.PendingRevenue.Add(s.pendingRevenueLocked(t.Code))
	}
	for _, call := range s.calls {
		if !call.IsResolved {
			stats.OpenCalls++
		}
	}
	resp.OK(c, stats)
}

func (s *Server) pendingRevenueLocked(code string) entity.Price {
	var sum entity.Price
	for _, it := range s.billing[code] {
		if !it.IsPaid {
			sum = sum.Add(it.Subtotal)
		}
	}
	return sum
}
