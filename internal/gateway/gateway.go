package gateway

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func NewRouter(fwd *Forwarder, logger *slog.Logger) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		users.POST("", forwardBody[userBody](fwd))
		users.GET("/:id", forward(fwd, bindID))
		users.PATCH("/:id", forwardBody[userPatchBody](fwd, bindID))
		users.DELETE("/:id", forward(fwd, bindID))
	}

	items := r.Group("/items")
	{
		items.POST("", forwardBody[itemBody](fwd, bindUser))
		items.GET("", forward(fwd, bindUser))
		items.GET("/search", forward(fwd))
		items.GET("/:id", forward(fwd, bindID))
		items.PATCH("/:id", forwardBody[itemPatchBody](fwd, bindUser, bindID))
		items.DELETE("/:id", forward(fwd, bindUser, bindID))
		items.POST("/:id/comment", forwardBody[commentBody](fwd, bindUser, bindID))
	}

	requests := r.Group("/requests")
	{
		requests.POST("", forwardBody[requestBody](fwd, bindUser))
		requests.GET("", forward(fwd, bindUser))
		requests.GET("/all", forward(fwd, bindUser))
		requests.GET("/:id", forward(fwd, bindUser, bindID))
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", forwardBody[bookingBody](fwd, bindUser))
		bookings.GET("", forward(fwd, bindUser, bindState))
		bookings.GET("/owner", forward(fwd, bindUser, bindState))
		bookings.GET("/:id", forward(fwd, bindUser, bindID))
		bookings.PATCH("/:id", forward(fwd, bindUser, bindID, bindApproved))
	}

	return r, nil
}

type check func(c *gin.Context) error

func bindUser(c *gin.Context) error {
	var h userHeader
	return c.ShouldBindHeader(&h)
}

func bindID(c *gin.Context) error {
	var p idURI
	return c.ShouldBindUri(&p)
}

func bindState(c *gin.Context) error {
	var q stateQuery
	return c.ShouldBindQuery(&q)
}

func bindApproved(c *gin.Context) error {
	var q approvedQuery
	return c.ShouldBindQuery(&q)
}

func runChecks(c *gin.Context, checks []check) bool {
	for _, chk := range checks {
		if err := chk(c); err != nil {
			reject(c, err)
			return false
		}
	}
	return true
}

func reject(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":       "InvalidRequest",
		"description": err.Error(),
	})
}

func forward(fwd *Forwarder, checks ...check) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !runChecks(c, checks) {
			return
		}
		fwd.Forward(c, nil)
	}
}

// forwardBody validates the JSON body as a T, then relays the raw bytes unchanged.
func forwardBody[T any](fwd *Forwarder, checks ...check) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !runChecks(c, checks) {
			return
		}

		var body T
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			reject(c, err)
			return
		}

		raw, _ := c.Get(gin.BodyBytesKey)
		b, _ := raw.([]byte)
		fwd.Forward(c, b)
	}
}
