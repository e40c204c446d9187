package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"hotelbooking/internal/auth"
	"hotelbooking/internal/booking"
	bookingHttp "hotelbooking/internal/booking/http"
	"hotelbooking/internal/hotel"
	hotelHttp "hotelbooking/internal/hotel/http"
	"hotelbooking/internal/observability"
	"hotelbooking/internal/photo"
	photoHttp "hotelbooking/internal/photo/http"
	"hotelbooking/internal/room"
	roomHttp "hotelbooking/internal/room/http"
	"hotelbooking/internal/stats"
	statsHttp "hotelbooking/internal/stats/http"
	"hotelbooking/internal/user"
	userHttp "hotelbooking/internal/user/http"
)

// Config collects everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	RateLimitRPS int

	HotelService   hotel.Service
	RoomService    room.Service
	PhotoService   photo.Service
	UserService    user.Service
	BookingService booking.Service

	// StatsService is nil when no statistics store is configured; the
	// statistics endpoints are not registered in that case.
	StatsService stats.Service

	JWTManager *auth.JWTManager
	Logger     zerolog.Logger
	Registry   *prometheus.Registry
}

// NewRouter assembles middleware and registers routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery(), Metrics())

	if cfg.RateLimitRPS > 0 {
		r.Use(RateLimit(cfg.RateLimitRPS))
	}

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(observability.MetricsHandler(cfg.Registry)))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := auth.RequireRole(user.RoleAdmin)

	hotelHandler := hotelHttp.NewHandler(cfg.HotelService)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	v1 := r.Group("/v1")
	{
		hotelHttp.RegisterRoutes(v1, hotelHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, adminMiddleware)
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)

		if cfg.StatsService != nil {
			statsHandler := statsHttp.NewHandler(cfg.StatsService)
			statsHttp.RegisterRoutes(v1, statsHandler, authMiddleware, adminMiddleware)
		}
	}

	return r
}
