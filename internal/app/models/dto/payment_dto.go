package dto

// PaymentVerificationRequest is the gateway payment-completion callback
// relayed by the client. Field names follow the gateway's checkout
// handler contract.
type PaymentVerificationRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	UserID            int64  `json:"userId" binding:"required"`
}

// FulfillmentResponse is the fulfillment success payload.
type FulfillmentResponse struct {
	Message   string `json:"message" example:"Email Sent successfully"`
	Success   bool   `json:"success" example:"true"`
	PaymentID string `json:"paymentId" example:"pay_NXhUQ2YcpKZzGV"`
	Email     string `json:"email" example:"arjun@example.com"`
	RegNo     string `json:"regNo" example:"ATH1714482000000"`
	Name      string `json:"name" example:"Arjun Sharma"`
	PDFURL    string `json:"pdfUrl" example:"https://res.cloudinary.com/demo/idcards/abc.pdf"`
}

// FulfillmentErrorResponse is the fulfillment failure payload, used for
// both signature rejection and internal errors.
type FulfillmentErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Payment verification failed"`
}
