package handlers

import (
	"net/http"

	"github.com/Mellettan/invent/internal/services"

	"github.com/gin-gonic/gin"
)

type WarehouseHandler struct {
	warehouseService services.WarehouseService
}

func NewWarehouseHandler(warehouseService services.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// List renders all warehouses with their stock rows and summed quantities.
func (h *WarehouseHandler) List(c *gin.Context) {
	warehouses, err := h.warehouseService.GetAllWarehouses()
	if err != nil {
		internalError(c, err)
		return
	}

	warehousesData := make([]gin.H, 0, len(warehouses))
	for i := range warehouses {
		stock, err := h.warehouseService.GetStock(warehouses[i].ID)
		if err != nil {
			internalError(c, err)
			return
		}
		warehousesData = append(warehousesData, gin.H{
			"warehouse":          &warehouses[i],
			"warehouse_products": stock,
			"total_quantity":     services.TotalStock(stock),
		})
	}

	c.HTML(http.StatusOK, "warehouses.html", gin.H{"warehouses_data": warehousesData})
}

// Detail renders one warehouse.
func (h *WarehouseHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, "warehouse")
		return
	}

	warehouse, err := h.warehouseService.GetWarehouseByID(id)
	if err != nil {
		notFound(c, "warehouse")
		return
	}

	c.HTML(http.StatusOK, "warehouse.html", gin.H{"warehouse": warehouse})
}

// Update overwrites the warehouse name and location and redirects back to
// its detail page.
func (h *WarehouseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, "warehouse")
		return
	}

	warehouse, err := h.warehouseService.GetWarehouseByID(id)
	if err != nil {
		notFound(c, "warehouse")
		return
	}

	if !hasFormField(c, "update_warehouse") {
		methodNotAllowed(c)
		return
	}

	name := c.PostForm("name")
	location := c.PostForm("location")
	if err := h.warehouseService.UpdateWarehouse(warehouse, name, location); err != nil {
		internalError(c, err)
		return
	}
	redirectTo(c, "/warehouses/%d", warehouse.ID)
}

// CreateForm renders the empty warehouse creation form.
func (h *WarehouseHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "warehouse_create.html", gin.H{})
}

// Create persists a new warehouse and redirects to its detail page. Name and
// location are both required.
func (h *WarehouseHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	location := c.PostForm("location")

	if name == "" || location == "" {
		methodNotAllowed(c)
		return
	}

	warehouse, err := h.warehouseService.CreateWarehouse(name, location)
	if err != nil {
		internalError(c, err)
		return
	}
	redirectTo(c, "/warehouses/%d", warehouse.ID)
}
