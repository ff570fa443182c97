package dto

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Role            string   `json:"role"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Pincode         string   `json:"pincode"`
	ProfilePhoto    string   `json:"profilePhoto"`
	Specialization  string   `json:"specialization"`
	Experience      string   `json:"experience"`
	ServiceCharge   *float64 `json:"serviceCharge"`
	CompanyName     string   `json:"companyName"`
	CompanyIDNumber string   `json:"companyIdNumber"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest payload for re-authentication checks.
type VerifyRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
