package handlers

import (
	"net/http"
	"strconv"

	"github.com/Mellettan/invent/internal/models"
	"github.com/Mellettan/invent/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService   services.OrderService
	productService services.ProductService
}

func NewOrderHandler(orderService services.OrderService, productService services.ProductService) *OrderHandler {
	return &OrderHandler{orderService: orderService, productService: productService}
}

// orderAction is the mutation mode of an order detail POST, decoded from the
// submitted form before any handling.
type orderAction int

const (
	orderActionUnknown orderAction = iota
	orderActionUpdateStatus
	orderActionUpdateItems
)

func parseOrderAction(c *gin.Context) orderAction {
	switch {
	case hasFormField(c, "update_status"):
		return orderActionUpdateStatus
	case hasFormField(c, "update_items"):
		return orderActionUpdateItems
	}
	return orderActionUnknown
}

// List renders all orders with their items and computed totals.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		internalError(c, err)
		return
	}

	ordersData := make([]gin.H, 0, len(orders))
	for i := range orders {
		ordersData = append(ordersData, gin.H{
			"order":       &orders[i],
			"items":       orders[i].Items,
			"total_price": orders[i].TotalPrice(),
		})
	}

	c.HTML(http.StatusOK, "orders.html", gin.H{"orders_data": ordersData})
}

// Detail renders one order with its items and total price.
func (h *OrderHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, "order")
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		notFound(c, "order")
		return
	}

	c.HTML(http.StatusOK, "order.html", gin.H{
		"order":       order,
		"order_items": order.Items,
		"total_price": order.TotalPrice(),
	})
}

// Update applies one of the order mutation modes and redirects back to the
// order's detail page.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, "order")
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		notFound(c, "order")
		return
	}

	switch parseOrderAction(c) {
	case orderActionUpdateStatus:
		status := models.OrderStatus(c.PostForm("status"))
		if err := h.orderService.UpdateStatus(order, status); err != nil {
			if err == services.ErrInvalidStatus {
				badRequest(c, "invalid status %q", status)
				return
			}
			internalError(c, err)
			return
		}
		redirectTo(c, "/orders/%d", order.ID)

	case orderActionUpdateItems:
		quantities := make(map[uint]int, len(order.Items))
		for i := range order.Items {
			item := &order.Items[i]
			raw, ok := c.GetPostForm("quantity_" + strconv.FormatUint(uint64(item.ID), 10))
			if !ok {
				continue // keep current quantity
			}
			quantity, err := parseQuantity(raw)
			if err != nil {
				badRequest(c, "invalid quantity for item %d", item.ID)
				return
			}
			quantities[item.ID] = quantity
		}
		if err := h.orderService.UpdateItemQuantities(order, quantities); err != nil {
			internalError(c, err)
			return
		}
		redirectTo(c, "/orders/%d", order.ID)

	default:
		methodNotAllowed(c)
	}
}

// CreateForm renders the product catalog for order composition.
func (h *OrderHandler) CreateForm(c *gin.Context) {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		internalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "order_create.html", gin.H{"products": products})
}

// Create places a Pending order from parallel product-id and quantity lists
// and redirects to the new order's detail page.
func (h *OrderHandler) Create(c *gin.Context) {
	productIDs := c.PostFormArray("product_ids")
	quantities := c.PostFormArray("quantities")

	if len(productIDs) == 0 || len(quantities) == 0 || len(productIDs) != len(quantities) {
		methodNotAllowed(c)
		return
	}

	lines := make([]services.OrderLine, 0, len(productIDs))
	for i := range productIDs {
		productID, err := strconv.ParseUint(productIDs[i], 10, 32)
		if err != nil {
			badRequest(c, "invalid product id %q", productIDs[i])
			return
		}
		quantity, err := parseQuantity(quantities[i])
		if err != nil {
			badRequest(c, "invalid quantity %q", quantities[i])
			return
		}
		lines = append(lines, services.OrderLine{ProductID: uint(productID), Quantity: quantity})
	}

	order, err := h.orderService.CreateOrder(lines)
	if err != nil {
		internalError(c, err)
		return
	}
	redirectTo(c, "/orders/%d", order.ID)
}
