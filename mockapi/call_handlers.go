package mockapi

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/serdvr66/orderQPro/entity"
	"github.com/serdvr66/orderQPro/pkg/resp"
)

func (s *Server) getWaiterCalls(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]entity.WaiterCall(nil), s.calls...)
	resp.OK(c, out)
}

func (s *Server) confirmWaiterCall(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad call id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.calls {
		if s.calls[i].ID == id {
			s.calls[i].IsResolved = true
			resp.OKMessage(c, "call confirmed")
			return
		}
	}
	resp.NotFound(c, "unknown call")
}
