package mockapi

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/serdvr66/orderQPro/pkg/resp"
	"github.com/serdvr66/orderQPro/utils"
)

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Email != s.staff.Email ||
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(s.staff.ID, s.staff.CompanyID, s.secret, s.ttl)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"user": s.staff, "token": token})
}

func (s *Server) registerPushToken(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		DeviceID string `json:"device_id"`
		Platform string `json:"platform"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "push token is required")
		return
	}
	s.mu.Lock()
	s.pushTokens[req.Token] = req.DeviceID
	s.mu.Unlock()
	resp.OKMessage(c, "token registered")
}

func (s *Server) unregisterPushToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "push token is required")
		return
	}
	s.mu.Lock()
	delete(s.pushTokens, req.Token)
	s.mu.Unlock()
	resp.OKMessage(c, "token unregistered")
}
