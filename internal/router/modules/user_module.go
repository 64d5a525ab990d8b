package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/nexus-admin/internal/interface/http"
	"github.com/oksasatya/nexus-admin/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes under /api/users.
// Every route shares a per-IP budget; writes that fan out (create, welcome,
// export) get a tighter per-route budget on top.
type UserModule struct {
	Handler   *handlers.UserHandler
	Redis     *redis.Client
	PerMinute int
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, perMinute int) *UserModule {
	return &UserModule{Handler: h, Redis: rdb, PerMinute: perMinute}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RateLimit(m.Redis, m.PerMinute, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()))

	createLimiter := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	exportLimiter := middleware.RateLimit(m.Redis, 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	users.POST("", createLimiter, m.Handler.Create)
	users.GET("", m.Handler.List)
	users.GET("/search", m.Handler.SearchUsers)
	users.POST("/export", exportLimiter, m.Handler.ExportUsers)
	users.GET("/:id", m.Handler.Get)
	users.PATCH("/:id", m.Handler.Update)
	users.POST("/:id/activate", m.Handler.Activate)
	users.POST("/:id/deactivate", m.Handler.Deactivate)
	users.POST("/:id/welcome", createLimiter, m.Handler.ResendWelcome)
	users.DELETE("/:id", m.Handler.Delete)
}
