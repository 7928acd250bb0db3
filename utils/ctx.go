package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) int {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case int:
		return id
	case int64:
		return int(id)
	case float64:
		return int(id)
	default:
		return 0
	}
}

func CurrentCompanyID(c *gin.Context) int {
	v, _ := c.Get("companyId")
	switch id := v.(type) {
	case int:
		return id
	case int64:
		return int(id)
	case float64:
		return int(id)
	default:
		return 0
	}
}
