package models

// AdminRole is the role the bootstrap statement assigns.
const AdminRole = "ADMIN"

// RegisterRequest is the body posted to the registration endpoint
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// RegisterResponse is returned by the registration endpoint
type RegisterResponse struct {
	Token string         `json:"token"`
	User  RegisteredUser `json:"user"`

	// Raw is the response body as received.
	Raw string `json:"-"`
}

// RegisteredUser is the created account. ID is a json.Number for numeric
// identifiers and a string otherwise.
type RegisteredUser struct {
	ID       interface{} `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     string      `json:"role"`
}
