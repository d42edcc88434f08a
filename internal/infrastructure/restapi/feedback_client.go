package restapi

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// FeedbackClient implementa collaborator.FeedbackAPI (solo lectura).
type FeedbackClient struct {
	c *Client
}

// NewFeedbackClient construye el cliente de feedback.
func NewFeedbackClient(c *Client) *FeedbackClient {
	return &FeedbackClient{c: c}
}

// List trae los comentarios de clientes.
func (f *FeedbackClient) List(ctx context.Context) ([]entity.Feedback, error) {
	var wires []struct {
		ID           int64  `json:"id"`
		UnitID       int64  `json:"unit_id"`
		UnitName     string `json:"unit_name"`
		CustomerName string `json:"customer_name"`
		Comment      string `json:"comment"`
		Rating       int    `json:"rating"`
		CreatedAt    string `json:"created_at"`
	}
	if err := f.c.doJSON(ctx, http.MethodGet, "/feedback/list-feedbacks", nil, &wires, true); err != nil {
		return nil, err
	}
	out := make([]entity.Feedback, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.Feedback{
			ID:           w.ID,
			UnitID:       w.UnitID,
			UnitName:     w.UnitName,
			CustomerName: w.CustomerName,
			Comment:      w.Comment,
			Rating:       w.Rating,
			CreatedAt:    parseTime(w.CreatedAt),
		})
	}
	return out, nil
}

// NotificationClient implementa collaborator.NotificationAPI (solo lectura).
type NotificationClient struct {
	c *Client
}

// NewNotificationClient construye el cliente de notificaciones.
func NewNotificationClient(c *Client) *NotificationClient {
	return &NotificationClient{c: c}
}

// LowInventory trae las alertas de inventario bajo vigentes.
func (n *NotificationClient) LowInventory(ctx context.Context) ([]entity.Notification, error) {
	var wires []struct {
		ID                int64           `json:"id"`
		InventoryItemName string          `json:"inventory_item_name"`
		Message           string          `json:"message"`
		BusinessUnitName  string          `json:"business_unit_name"`
		Location          string          `json:"location"`
		Quantity          int             `json:"quantity"`
		Price             decimal.Decimal `json:"price"`
		TotalEmployees    int             `json:"total_employees"`
	}
	if err := n.c.doJSON(ctx, http.MethodGet, "/notifications/low-inventory", nil, &wires, true); err != nil {
		return nil, err
	}
	out := make([]entity.Notification, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.Notification{
			ID:                w.ID,
			InventoryItemName: w.InventoryItemName,
			Message:           w.Message,
			BusinessUnitName:  w.BusinessUnitName,
			Location:          w.Location,
			Quantity:          w.Quantity,
			Price:             w.Price,
			TotalEmployees:    w.TotalEmployees,
		})
	}
	return out, nil
}
