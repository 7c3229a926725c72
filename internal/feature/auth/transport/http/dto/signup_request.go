// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// It uses Gin's binding tags for validation (required fields, password length).
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignupResp represents the response body for a successful signup.
type SignupResp struct {
	ID uint `json:"id"`
}
