package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Package common provides small, shared helpers used across handlers.
// KISS: tiny functions, no shared mutable state, and clear, focused behavior.

const (
	Businesses = "businesses"
	Reviews    = "reviews"

	// RequestIDKey is the gin context key holding the request id.
	RequestIDKey = "request_id"
)

// Error messages returned to clients. Bodies are always {"Error": msg}.
const (
	MsgMissingAttributes = "The request body is missing at least one of the required attributes"
	MsgBusinessNotFound  = "No business with this business_id exists"
	MsgReviewNotFound    = "No review with this review_id exists"
	MsgNotFound          = "Not found"
	MsgReviewExists      = "You have already submitted a review for this business. You can update your previous review, or delete it and submit a new review"
	// MsgCreateFailed is shared by business and review creation.
	MsgCreateFailed = "Unable to create lodging"
)

// Error writes the standard error body.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"Error": msg})
}

// BaseURL returns the scheme://host prefix for links. A configured value wins;
// otherwise it is derived from the request.
func BaseURL(c *gin.Context, configured string) string {
	if configured != "" {
		return configured
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if p := c.GetHeader("X-Forwarded-Proto"); p != "" {
		scheme = strings.TrimSpace(strings.Split(p, ",")[0])
	}
	return scheme + "://" + c.Request.Host
}

func BusinessURL(base string, id int64) string {
	return fmt.Sprintf("%s/%s/%d", base, Businesses, id)
}

func ReviewURL(base string, id int64) string {
	return fmt.Sprintf("%s/%s/%d", base, Reviews, id)
}

// ParamID parses an integer path parameter. ok is false for anything that is
// not a base-10 integer.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil
}

// Log returns an entry tagged with the request id, if any.
func Log(c *gin.Context, l logrus.FieldLogger) *logrus.Entry {
	e := l.WithField("path", c.FullPath())
	if id := c.GetString(RequestIDKey); id != "" {
		e = e.WithField(RequestIDKey, id)
	}
	return e
}
