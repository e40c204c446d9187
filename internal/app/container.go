package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"hotelbooking/internal/api"
	"hotelbooking/internal/auth"
	"hotelbooking/internal/booking"
	"hotelbooking/internal/events"
	"hotelbooking/internal/hotel"
	"hotelbooking/internal/observability"
	"hotelbooking/internal/photo"
	"hotelbooking/internal/pkg/storage"
	"hotelbooking/internal/room"
	"hotelbooking/internal/stats"
	"hotelbooking/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	RateLimitRPS int

	DBPool *pgxpool.Pool

	// RedisClient is optional; without it events are dropped.
	RedisClient *redis.Client

	// MongoDB is optional; without it the statistics endpoints are disabled.
	MongoDB *mongo.Database

	JWTSecret   string
	JWTTTL      time.Duration
	BcryptCost  int
	StoragePath string

	Logger zerolog.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	registry := observability.InitRegistry()

	var publisher events.Publisher
	if cfg.RedisClient != nil {
		publisher = events.NewRedisPublisher(cfg.RedisClient)
	} else {
		publisher = events.NewNopPublisher(cfg.Logger)
	}

	// Hotel Module
	hotelRepo := hotel.NewPgxRepository(cfg.DBPool)
	hotelService := hotel.NewService(hotelRepo)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, hotelService)

	// Photo Module
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init photo storage failed: %w", err)
	}
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, roomService, store, cfg.Logger)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher, publisher, cfg.Logger)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, userService, roomService, publisher, cfg.Logger)

	// Statistics Module (read side only; the worker ingests events)
	var statsService stats.Service
	if cfg.MongoDB != nil {
		statsService = stats.NewService(stats.NewMongoRepository(cfg.MongoDB))
	}

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		HotelService:   hotelService,
		RoomService:    roomService,
		PhotoService:   photoService,
		UserService:    userService,
		BookingService: bookingService,
		StatsService:   statsService,
		JWTManager:     jwtManager,
		Logger:         cfg.Logger,
		Registry:       registry,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
