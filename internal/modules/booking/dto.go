package booking

// ConfirmPaymentRequest is the payment-confirmation event. When LeadID is
// set the booking is built from the stored lead; Email overrides the lead's
// email and is what lead conversion matches on.
type ConfirmPaymentRequest struct {
	LeadID     string  `json:"lead_id"`
	Email      string  `json:"email"`
	AmountPaid float64 `json:"amount_paid" binding:"required"`
	Currency   string  `json:"currency"`
}
