package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Order represents a complete customer order
type Order struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	OrderNumber      string            `json:"order_number"`
	AddressSnapshot  *datatypes.JSON   `json:"address_snapshot,omitempty" gorm:"type:jsonb"`
	Subtotal         float64           `json:"subtotal"`
	Tax              float64           `json:"tax"`
	ShippingCost     float64           `json:"shipping_cost"`
	Discount         float64           `json:"discount"`
	TotalAmount      float64           `json:"total_amount"`
	Status           string            `json:"status"`
	TrackingInfo     TrackingStepsList `json:"tracking_info,omitempty" gorm:"column:tracking_info;type:jsonb"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	ConfirmedAt      *time.Time        `json:"confirmed_at,omitempty"`
	ProcessingAt     *time.Time        `json:"processing_at,omitempty"`
	ShippedAt        *time.Time        `json:"shipped_at,omitempty"`
	OutForDeliveryAt *time.Time        `json:"out_for_delivery_at,omitempty"`
	DeliveredAt      *time.Time        `json:"delivered_at,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents an individual product in an order
type OrderItem struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Subtotal    float64   `json:"subtotal"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderWithItems combines order and its items
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderHistoryResponse for list view
type OrderHistoryResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ═══════════════════════════════════════════════════════════
// Shipment timeline
// ═══════════════════════════════════════════════════════════

// TrackingStep is one milestone on the shipment timeline.
type TrackingStep struct {
	Label       string     `json:"label"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type TrackingStepsList []TrackingStep

// TrackingResponse is the timeline plus the highlighted step.
type TrackingResponse struct {
	OrderNumber      string         `json:"order_number"`
	Status           string         `json:"status"`
	Steps            []TrackingStep `json:"steps"`
	CurrentStep      int            `json:"current_step"`
	CurrentStepLabel string         `json:"current_step_label"`
}

// milestoneStatuses maps each synthesized milestone to the order statuses
// that mark it complete. "Order Placed" is complete for any known status.
var milestoneStatuses = []struct {
	Label    string
	Statuses []string
}{
	{"Order Placed", []string{"placed", "pending", "confirmed", "processing", "shipped", "out_for_delivery", "delivered"}},
	{"Order Confirmed", []string{"confirmed", "processing", "shipped", "out_for_delivery", "delivered"}},
	{"Processing", []string{"processing", "shipped", "out_for_delivery", "delivered"}},
	{"Shipped", []string{"shipped", "out_for_delivery", "delivered"}},
	{"Out for Delivery", []string{"out_for_delivery", "delivered"}},
	{"Delivered", []string{"delivered"}},
}

// Timeline returns the shipment milestones for the order. Explicit tracking
// steps stored on the order win; otherwise six fixed milestones are
// synthesized from the status string. An unrecognized status degrades to
// "Order Placed" only.
func (o *Order) Timeline() []TrackingStep {
	if len(o.TrackingInfo) > 0 {
		return o.TrackingInfo
	}

	status := strings.ToLower(strings.TrimSpace(o.Status))
	timestamps := []*time.Time{nil, o.ConfirmedAt, o.ProcessingAt, o.ShippedAt, o.OutForDeliveryAt, o.DeliveredAt}
	placedAt := o.CreatedAt
	timestamps[0] = &placedAt

	steps := make([]TrackingStep, 0, len(milestoneStatuses))
	for i, m := range milestoneStatuses {
		completed := false
		for _, s := range m.Statuses {
			if status == s {
				completed = true
				break
			}
		}
		step := TrackingStep{Label: m.Label, Completed: completed}
		if completed {
			step.CompletedAt = timestamps[i]
		}
		steps = append(steps, step)
	}
	// The first milestone is always reached once the order exists.
	steps[0].Completed = true
	return steps
}

// CurrentStepIndex returns the index of the milestone to highlight: the
// predecessor of the first incomplete step, clamped to a valid index. All
// complete → the last milestone.
func CurrentStepIndex(steps []TrackingStep) int {
	for i, s := range steps {
		if !s.Completed {
			if i == 0 {
				return 0
			}
			return i - 1
		}
	}
	if len(steps) == 0 {
		return 0
	}
	return len(steps) - 1
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer
// ═══════════════════════════════════════════════════════════

func (l *TrackingStepsList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TrackingStepsList")
	}
	return json.Unmarshal(bytes, l)
}

func (l TrackingStepsList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}
