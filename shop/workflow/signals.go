package workflow

const (
	// Signal names
	CancelOrderSignalName = "cancel-order"
)

// CancelOrderSignal stops the fulfilment of a deleted order
type CancelOrderSignal struct {
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelled_by"`
}
