// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

// CreateTaskReq represents the request body for POST /tasks.
type CreateTaskReq struct {
	Content string `json:"content" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// UpdateTaskReq represents the request body for PUT /tasks/:id.
type UpdateTaskReq struct {
	Content string `json:"content" binding:"required"`
	Date    string `json:"date" binding:"required"`
}
