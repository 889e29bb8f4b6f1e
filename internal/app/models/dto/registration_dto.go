package dto

// RegistrationRequest represents the applicant form fields of a
// multipart intake submission (file parts are handled separately).
type RegistrationRequest struct {
	AthleteName string `form:"athleteName" binding:"required"`
	FatherName  string `form:"fatherName" binding:"required"`
	MotherName  string `form:"motherName" binding:"required"`
	DOB         string `form:"dob" binding:"required"`
	Gender      string `form:"gender" binding:"required"`
	District    string `form:"district" binding:"required"`
	Mobile      string `form:"mob" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	AdharNumber string `form:"adharNumber" binding:"required"`
	Address     string `form:"address" binding:"required"`
	Pin         string `form:"pin" binding:"required"`
	PanNumber   string `form:"panNumber"`
	AcademyName string `form:"academyName"`
	CoachName   string `form:"coachName"`
}

// DocumentFieldNames lists the multipart file part names accepted by the
// intake endpoint.
var DocumentFieldNames = []string{
	"photo",
	"certificate",
	"residentCertificate",
	"adharFrontPhoto",
	"adharBackPhoto",
}

// RegistrationOrderResponse is the intake success payload: the pending
// gateway order the client completes payment against.
type RegistrationOrderResponse struct {
	Success  bool   `json:"success" example:"true"`
	OrderID  string `json:"orderId" example:"order_NXhT2K9crnOq7w"`
	Amount   int64  `json:"amount" example:"30000"`
	Currency string `json:"currency" example:"INR"`
	UserID   int64  `json:"userId" example:"1"`
}

// RegistrationErrorResponse is the intake failure payload.
type RegistrationErrorResponse struct {
	Error string `json:"error" example:"An error occurred while registering the user."`
}

// RegistrationListResponse wraps a paginated registration listing for
// the staff API.
type RegistrationListResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
