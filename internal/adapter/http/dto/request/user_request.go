package request

// UpdateSubscriptionRequest is posted by the billing integration when a plan
// or payment status changes.
type UpdateSubscriptionRequest struct {
	Plan   string `json:"plan" binding:"required"`
	Status string `json:"status" binding:"required"`
}
