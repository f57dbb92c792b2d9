package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Mellettan/invent/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productService   services.ProductService
	warehouseService services.WarehouseService
}

func NewProductHandler(productService services.ProductService, warehouseService services.WarehouseService) *ProductHandler {
	return &ProductHandler{productService: productService, warehouseService: warehouseService}
}

type productAction int

const (
	productActionUnknown productAction = iota
	productActionUpdateQuantity
	productActionUpdatePrice
	productActionAddWarehouse
)

func parseProductAction(c *gin.Context) productAction {
	switch {
	case hasFormField(c, "update_quantity"):
		return productActionUpdateQuantity
	case hasFormField(c, "update_price"):
		return productActionUpdatePrice
	case hasFormField(c, "add_warehouse"):
		return productActionAddWarehouse
	}
	return productActionUnknown
}

// List renders all products with their per-warehouse stock and summed
// quantity.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		internalError(c, err)
		return
	}

	productsData := make([]gin.H, 0, len(products))
	for i := range products {
		stock, err := h.productService.GetStock(products[i].ID)
		if err != nil {
			internalError(c, err)
			return
		}
		productsData = append(productsData, gin.H{
			"product":        &products[i],
			"warehouses":     stock,
			"total_quantity": services.TotalStock(stock),
		})
	}

	c.HTML(http.StatusOK, "products.html", gin.H{"products_data": productsData})
}

// Detail renders one product, its stock rows and the warehouse catalog for
// the add-to-warehouse selector.
func (h *ProductHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, "product")
		return
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		notFound(c, "product")
		return
	}

	stock, err := h.productService.GetStock(product.ID)
	if err != nil {
		internalError(c, err)
		return
	}

	warehouses, err := h.warehouseService.GetAllWarehouses()
	if err != nil {
		internalError(c, err)
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"product":            product,
		"warehouse_products": stock,
		"total_quantity":     services.TotalStock(stock),
		"warehouses":         warehouses,
	})
}

// Update applies one of the product mutation modes and redirects back to the
// product's detail page.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, "product")
		return
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		notFound(c, "product")
		return
	}

	switch parseProductAction(c) {
	case productActionUpdateQuantity:
		stock, err := h.productService.GetStock(product.ID)
		if err != nil {
			internalError(c, err)
			return
		}
		quantities := make(map[uint]int, len(stock))
		for i := range stock {
			raw, ok := c.GetPostForm("quantity_" + strconv.FormatUint(uint64(stock[i].ID), 10))
			if !ok {
				continue // keep current quantity
			}
			quantity, err := parseQuantity(raw)
			if err != nil {
				badRequest(c, "invalid quantity for stock row %d", stock[i].ID)
				return
			}
			quantities[stock[i].ID] = quantity
		}
		if err := h.productService.UpdateStockQuantities(product.ID, quantities); err != nil {
			internalError(c, err)
			return
		}
		redirectTo(c, "/products/%d", product.ID)

	case productActionUpdatePrice:
		if raw := c.PostForm("price"); raw != "" {
			price, err := parsePrice(raw)
			if err != nil {
				badRequest(c, "invalid price %q", raw)
				return
			}
			if err := h.productService.UpdatePrice(product, price); err != nil {
				internalError(c, err)
				return
			}
		}
		redirectTo(c, "/products/%d", product.ID)

	case productActionAddWarehouse:
		warehouseID, err := strconv.ParseUint(c.PostForm("warehouse"), 10, 32)
		if err != nil {
			badRequest(c, "invalid warehouse id")
			return
		}
		quantity, err := parseQuantity(c.PostForm("new_quantity"))
		if err != nil {
			badRequest(c, "invalid quantity")
			return
		}
		if _, err := h.productService.AddToWarehouse(product.ID, uint(warehouseID), quantity); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound(c, "warehouse")
				return
			}
			internalError(c, err)
			return
		}
		redirectTo(c, "/products/%d", product.ID)

	default:
		methodNotAllowed(c)
	}
}

// CreateForm renders the empty product creation form.
func (h *ProductHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "product_create.html", gin.H{})
}

// Create persists a new product and redirects to its detail page. Name and
// price are required; missing either rejects the submission outright.
func (h *ProductHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	priceRaw := c.PostForm("price")
	description := c.PostForm("description")

	if name == "" || priceRaw == "" {
		methodNotAllowed(c)
		return
	}

	price, err := parsePrice(priceRaw)
	if err != nil {
		badRequest(c, "invalid price %q", priceRaw)
		return
	}

	product, err := h.productService.CreateProduct(name, description, price)
	if err != nil {
		internalError(c, err)
		return
	}
	redirectTo(c, "/products/%d", product.ID)
}
