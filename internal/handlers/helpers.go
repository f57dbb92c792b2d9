package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func hasFormField(c *gin.Context, key string) bool {
	_, ok := c.GetPostForm(key)
	return ok
}

// parseQuantity parses a submitted quantity. Quantities are non-negative.
func parseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if quantity < 0 {
		return 0, fmt.Errorf("quantity %d must not be negative", quantity)
	}
	return quantity, nil
}

// parsePrice parses a submitted price. Prices are non-negative.
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, fmt.Errorf("price %v must not be negative", price)
	}
	return price, nil
}

func notFound(c *gin.Context, what string) {
	c.String(http.StatusNotFound, "%s not found", what)
}

func badRequest(c *gin.Context, format string, args ...interface{}) {
	c.String(http.StatusBadRequest, format, args...)
}

func methodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, "method not allowed")
}

func internalError(c *gin.Context, err error) {
	c.String(http.StatusInternalServerError, "internal error: %v", err)
}

func redirectTo(c *gin.Context, format string, args ...interface{}) {
	c.Redirect(http.StatusFound, fmt.Sprintf(format, args...))
}
