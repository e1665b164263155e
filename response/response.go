package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Used by swagger to generate documentation
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

// FieldErrors maps a field name to the reason it was rejected.
type FieldErrors map[string]string

func wrapResponse(c *gin.Context, httpCode int, msg string, data any, code ErrorCode) {
	c.JSON(httpCode, gin.H{
		"code": code,
		"data": data,
		"msg":  msg,
	})
}

// Success sends a successful response to the client with the provided data.
func Success(c *gin.Context, data any) {
	wrapResponse(c, http.StatusOK, "", data, OK)
}

// Created sends a 201 response with the stored representation.
func Created(c *gin.Context, data any) {
	wrapResponse(c, http.StatusCreated, "", data, OK)
}

// NoContent acknowledges a delete.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends a 500 response with the specified message and error code.
func Error(c *gin.Context, msg string, errorCode ErrorCode) {
	wrapResponse(c, http.StatusInternalServerError, msg, nil, errorCode)
}

// HTTPError sends an HTTP error response with the specified HTTP code, error message, and error code.
func HTTPError(c *gin.Context, httpCode int, msg string, errorCode ErrorCode) {
	wrapResponse(c, httpCode, msg, nil, errorCode)
}

// ValidationError reports per-field validation failures as a 400 response.
func ValidationError(c *gin.Context, fields FieldErrors) {
	wrapResponse(c, http.StatusBadRequest, "validation failed", fields, ValidationFailed)
}

// NotFoundError reports an unknown resource id.
func NotFoundError(c *gin.Context, msg string) {
	wrapResponse(c, http.StatusNotFound, msg, nil, NotFound)
}

// UnauthorizedError reports a missing or invalid session.
func UnauthorizedError(c *gin.Context, msg string, errorCode ErrorCode) {
	wrapResponse(c, http.StatusUnauthorized, msg, nil, errorCode)
}

// 用于 Gin ShouldBindJSON、ShouldBindQuery 等绑定参数失败时返回错误
func BadRequestError(c *gin.Context, msg string) {
	wrapResponse(c, http.StatusBadRequest, msg, nil, InvalidRequest)
}
