package pkg

import "time"

// ResponseType classifies the last reply stored for a conversation.  The
// follow-up shortcut and the prescription download both branch on it.
type ResponseType string

const (
	ResponseInventory ResponseType = "inventory"
	ResponseFollowUp  ResponseType = "follow-up"
	ResponseGeneral   ResponseType = "general"
	ResponseFallback  ResponseType = "fallback"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is returned for every chat turn.  Only the flags relevant to
// the path taken are populated; Success is true even when the reply is the
// fallback apology, so the conversation never surfaces a hard error.
type ChatResponse struct {
	Response              string        `json:"response"`
	Success               bool          `json:"success"`
	InventoryComplete     bool          `json:"inventoryComplete,omitempty"`
	FollowUpConfirmed     bool          `json:"followUpConfirmed,omitempty"`
	Fallback              bool          `json:"fallback,omitempty"`
	PrescriptionAvailable bool          `json:"prescriptionAvailable,omitempty"`
	PrescriptionData      *Prescription `json:"prescriptionData,omitempty"`
	Error                 *ErrorDetail  `json:"error,omitempty"`
}

// ErrorDetail carries diagnostic information about an absorbed upstream
// failure.  It is informational only; clients may ignore it.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// PrescribedProduct is one recommended product inside a prescription,
// in catalog order.
type PrescribedProduct struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Instructions is the fixed usage block attached to every prescription.
type Instructions struct {
	Frequency   string `json:"frequency"`
	Application string `json:"application"`
	Duration    string `json:"duration"`
}

// Prescription is the structured recommendation payload derived from a
// reply.  It is kept in the conversation context so the download endpoint
// can reuse it later.
type Prescription struct {
	Products     []PrescribedProduct `json:"products"`
	Instructions Instructions        `json:"instructions"`
	Precautions  []string            `json:"precautions"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// PurchaseItem is a single line of a purchase order.
type PurchaseItem struct {
	OilID    string `json:"oilId"`
	Quantity int    `json:"quantity"`
}

// Purchase is a recorded order keyed by user id.
type Purchase struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Items      []PurchaseItem `json:"items"`
	TotalItems int            `json:"totalItems"`
	CreatedAt  time.Time      `json:"date"`
}

// Subscription tracks the free-subscription perk granted once a purchase
// crosses the item threshold.
type Subscription struct {
	UserID    string     `json:"userId"`
	IsActive  bool       `json:"isActive"`
	IsFree    bool       `json:"isFree"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// PurchaseRequest is the body of POST /api/purchases.
type PurchaseRequest struct {
	UserID string         `json:"userId"`
	Items  []PurchaseItem `json:"items"`
}

// PurchaseResponse is returned after recording a purchase.
type PurchaseResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Subscription *Subscription `json:"subscription"`
}
