package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/goalsplit/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// HeaderUserEmail names the user a request is made for.
const HeaderUserEmail = "X-User-Email"

type httpError struct {
	Error string `json:"error" example:"an error occurred on the server during your request"`
}

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.ContextURL), strings.TrimSuffix(url.String(), "/"))
		c.Next()
	}
}

// IdentityMiddleware resolves the user for the request and stores it in the
// context. Requests without the user header are made for fallbackEmail.
// Users are created on first use with defaultCurrency.
func IdentityMiddleware(fallbackEmail, defaultCurrency string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if email == "" {
			email = fallbackEmail
		}

		user, err := models.GetOrCreateUser(models.DB, email, defaultCurrency)
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

			status := http.StatusBadRequest
			if errors.Is(err, models.ErrGeneral) {
				status = http.StatusInternalServerError
			}

			c.AbortWithStatusJSON(status, httpError{
				Error: err.Error(),
			})
			return
		}

		c.Set(string(models.ContextUser), user)
		c.Next()
	}
}

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
}

// registerPrometheusMetrics registers all given Prometheus metrics
// with the default registry.
func registerPrometheusMetrics(collectors []prometheus.Collector) error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %v with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all given Prometheus metrics.
//
// This is needed to cleanly exit and to configure more than one router
// in the same process, e.g. in tests.
func unregisterPrometheusMetrics(collectors []prometheus.Collector) bool {
	ok := true
	for _, c := range collectors {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
