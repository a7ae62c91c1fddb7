package services

import (
	"guesthub/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Display messages pushed to kitchen/bar screens over the websocket hub
type displayMessage struct {
	Type       string      `json:"type"`
	Department string      `json:"department,omitempty"`
	Payload    interface{} `json:"payload"`
}

func broadcast(m *melody.Melody, msg displayMessage) {
	if m == nil {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	m.Broadcast(data)
}

// BroadcastNewOrder announces a fresh checkout to every connected display
func BroadcastNewOrder(m *melody.Melody, order models.Order) {
	broadcast(m, displayMessage{
		Type:    "order_created",
		Payload: order,
	})
}

// BroadcastItemUpdate pushes an item status change to the owning department
func BroadcastItemUpdate(m *melody.Melody, item models.OrderItem, orderStatus string) {
	broadcast(m, displayMessage{
		Type:       "item_updated",
		Department: item.Department,
		Payload: map[string]interface{}{
			"item":        item,
			"orderId":     item.OrderID,
			"orderStatus": orderStatus,
		},
	})
}

// BroadcastTicketUpdate pushes a service-request change to staff displays
func BroadcastTicketUpdate(m *melody.Melody, ticket models.ServiceRequest) {
	broadcast(m, displayMessage{
		Type:    "ticket_updated",
		Payload: ticket,
	})
}
