package models

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitContextKey is where the throttle middleware leaves its snapshot
// for the response envelope.
const RateLimitContextKey = "rate_limit"

// ApiResponse is the envelope every storefront endpoint replies with. Data
// carries the payload, Meta the page info on list endpoints, and Rate the
// throttle snapshot whenever the route runs behind the rate limiter.
type ApiResponse struct {
	Message  string       `json:"message"`
	Data     any          `json:"data,omitempty"`
	Error    bool         `json:"error,omitempty"`
	Meta     *Pagination  `json:"meta"`
	Rate     *RateLimiter `json:"rate_limit,omitempty"`
	Endpoint string       `json:"endpoint,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"37"`
	TotalPages int `json:"total_pages" example:"4"`
}

// NewPagination derives the page count from the row total.
func NewPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
	}
}

// RateLimiter mirrors the limiter window this request fell in.
type RateLimiter struct {
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after_seconds"`
}

func rateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	v, ok := c.Get(RateLimitContextKey)
	if !ok {
		return nil
	}
	rate, _ := v.(*RateLimiter)
	return rate
}

func endpointOf(c *gin.Context) string {
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:  message,
		Data:     data,
		Rate:     rateFromContext(c),
		Endpoint: endpointOf(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:  message,
		Data:     data,
		Meta:     meta,
		Rate:     rateFromContext(c),
		Endpoint: endpointOf(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:  message,
		Error:    true,
		Rate:     rateFromContext(c),
		Endpoint: endpointOf(c),
	}
}
