package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Jeomhps/business-reviews/internal/handlers/businesses"
	"github.com/Jeomhps/business-reviews/internal/handlers/reviews"
	"github.com/Jeomhps/business-reviews/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const indexText = "Please navigate to /businesses to use this API"

// Store is everything the HTTP surface needs from the data store.
type Store interface {
	businesses.Store
	reviews.Store
	PingContext(ctx context.Context) error
}

type Options struct {
	// BaseURL overrides the request-derived scheme://host used in links.
	BaseURL     string
	CORSOrigins []string
	Log         logrus.FieldLogger

	// RequestTimeout is the deadline for each request's context; zero means none.
	RequestTimeout time.Duration
}

// New builds the gin engine with every route mounted.
func New(s Store, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(opts.Log))
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.Deadline(opts.RequestTimeout))

	bizH := businesses.New(s, opts.BaseURL, opts.Log)
	revH := reviews.New(s, opts.BaseURL, opts.Log)

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, indexText) })
	r.GET("/healthz", health(s))

	// Businesses
	r.POST("/businesses", bizH.Create)
	r.GET("/businesses", bizH.List)
	r.GET("/businesses/:id", bizH.Get)
	r.PUT("/businesses/:id", bizH.Update)
	r.DELETE("/businesses/:id", bizH.Delete)
	r.GET("/owners/:owner_id/businesses", bizH.ListByOwner)

	// Reviews
	r.POST("/reviews", revH.Create)
	r.GET("/reviews/:id", revH.Get)
	r.PUT("/reviews/:id", revH.Update)
	r.DELETE("/reviews/:id", revH.Delete)
	r.GET("/users/:user_id/reviews", revH.ListByUser)

	return r
}

func health(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
