package dto

// LoginReq represents the request body for the /login endpoint.
type LoginReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResp represents the response body for a successful login or refresh.
type TokenResp struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
}

// ErrorResp represents a generic error response body.
type ErrorResp struct {
	Error string `json:"error"`
}

// MessageResp represents a generic message response body.
type MessageResp struct {
	Message string `json:"message"`
}
