// Package mockapi is an in-memory stand-in for the OrderQ backend. It
// implements every endpoint the gateway consumes against seeded fixtures,
// answering the usual {success, data, message} envelope. Integration tests
// run it over httptest; `orderQPro -mock` serves it for local development.
package mockapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/golang-jwt/jwt/v5"

	"github.com/serdvr66/orderQPro/entity"
	"github.com/serdvr66/orderQPro/pkg/resp"
)

type Server struct {
	secret string
	ttl    time.Duration

	mu           sync.Mutex
	staff        entity.User
	passwordHash []byte
	pushTokens   map[string]string // token -> device id
	menu         []entity.MenuCategory
	tables       []entity.Table
	sessions     map[string]int              // table code -> session id
	orders       []entity.Order              // live board
	billing      map[string][]entity.BillingItem // table code -> session items
	calls        []entity.WaiterCall
	nextID       int
}

func New(secret string, ttl time.Duration) *Server {
	s := &Server{
		secret:     secret,
		ttl:        ttl,
		pushTokens: map[string]string{},
		sessions:   map[string]int{},
		billing:    map[string][]entity.BillingItem{},
		nextID:     100,
	}
	s.seed()
	return s
}

func (s *Server) id() int {
	s.nextID++
	return s.nextID
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.POST("/login", s.login)

	auth := r.Group("/", s.authRequired())
	{
		auth.GET("/menu", s.getMenu)
		auth.GET("/tables", s.getTables)
		auth.GET("/table/:code/details", s.getTableDetails)
		auth.POST("/table/start-session", s.startSession)
		auth.GET("/dashboard/stats", s.getStats)

		auth.GET("/orders", s.getOrders)
		auth.POST("/order/place", s.placeOrder)
		auth.POST("/order/:id/complete", s.completeOrder)
		auth.GET("/completeAllOrder/:code", s.completeAllOrders)
		auth.POST("/order-item/:id/cancel", s.cancelOrderItem)
		auth.POST("/item/:uuid/toggle-ready", s.toggleItemReady)

		auth.GET("/table/:code/billing", s.getBilling)
		auth.POST("/item/:uuid/toggle-paid", s.toggleItemPaid)
		auth.POST("/item/:uuid/cancel", s.cancelBillingItem)
		auth.POST("/items/bulk-pay", s.bulkPay)
		auth.POST("/session/:code/pay", s.paySession)
		auth.POST("/session/:code/end", s.endSession)
		auth.POST("/orders/:code/move", s.moveOrder)

		auth.GET("/waiter-calls", s.getWaiterCalls)
		auth.POST("/waiter-call/:id/confirm", s.confirmWaiterCall)

		auth.POST("/push-tokens", s.registerPushToken)
		auth.DELETE("/push-tokens", s.unregisterPushToken)
	}
	return r
}

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(s.secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("userId", claims["userId"])
			c.Set("companyId", claims["companyId"])
		}
		c.Next()
	}
}

func (s *Server) tableByCode(code string) *entity.Table {
	for i := range s.tables {
		if s.tables[i].Code == code {
			return &s.tables[i]
		}
	}
	return nil
}
