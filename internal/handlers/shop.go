package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rajaram-gurukul/utsav-registration/internal/models"
	"gorm.io/gorm"
)

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

type PlaceOrderRequest struct {
	Body struct {
		EmailID  string `json:"email_id" required:"true" doc:"Email of the signed-in buyer"`
		Name     string `json:"name" required:"true"`
		Contact  string `json:"contact" required:"true"`
		BookName string `json:"book_name" required:"true"`
		Language string `json:"language" required:"true"`
	}
}

type PlaceOrderResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

// HandlePlaceOrder stores one book line item. The shop front end sends one
// request per selected book.
func (h *ShopHandler) HandlePlaceOrder(ctx context.Context, input *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	order := models.ShopOrder{
		EmailID:  input.Body.EmailID,
		Name:     input.Body.Name,
		Contact:  input.Body.Contact,
		BookName: input.Body.BookName,
		Language: input.Body.Language,
	}

	if err := h.db.Create(&order).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to place order: " + err.Error())
	}

	res := &PlaceOrderResponse{}
	res.Body.Message = "Order placed successfully"
	return res, nil
}

type DeleteOrderRequest struct {
	Body struct {
		EmailID  string `json:"email_id" required:"true"`
		Name     string `json:"name" required:"true"`
		Contact  string `json:"contact"`
		BookName string `json:"book_name" required:"true"`
	}
}

type DeleteOrderResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *ShopHandler) HandleDeleteOrder(ctx context.Context, input *DeleteOrderRequest) (*DeleteOrderResponse, error) {
	result := h.db.Where("email_id = ? AND name = ? AND contact = ? AND book_name = ?",
		input.Body.EmailID, input.Body.Name, input.Body.Contact, input.Body.BookName).
		Delete(&models.ShopOrder{})
	if result.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to delete order: " + result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Order not found")
	}

	res := &DeleteOrderResponse{}
	res.Body.Message = "Order deleted successfully"
	return res, nil
}

type ListOrdersRequest struct {
	Email string `path:"email" doc:"Buyer's email"`
}

type OrderView struct {
	EmailID  string `json:"email_id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	BookName string `json:"book_name"`
	Language string `json:"language"`
}

type ListOrdersResponse struct {
	Body struct {
		Orders []OrderView `json:"orders"`
	}
}

func (h *ShopHandler) HandleListOrders(ctx context.Context, input *ListOrdersRequest) (*ListOrdersResponse, error) {
	var rows []models.ShopOrder
	if err := h.db.Where("email_id = ?", input.Email).Order("id asc").Find(&rows).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list orders: " + err.Error())
	}

	res := &ListOrdersResponse{}
	res.Body.Orders = make([]OrderView, 0, len(rows))
	for _, row := range rows {
		res.Body.Orders = append(res.Body.Orders, OrderView{
			EmailID:  row.EmailID,
			Name:     row.Name,
			Contact:  row.Contact,
			BookName: row.BookName,
			Language: row.Language,
		})
	}
	return res, nil
}
