package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/vitalwatch/backend/handlers"
	"github.com/vitalwatch/backend/internal/auth"
	"github.com/vitalwatch/backend/internal/config"
	"github.com/vitalwatch/backend/internal/database"
	"github.com/vitalwatch/backend/internal/firebase"
	"github.com/vitalwatch/backend/internal/tokens"
	"github.com/vitalwatch/backend/internal/vitals/handler"
	"github.com/vitalwatch/backend/internal/vitals/repository"
	"github.com/vitalwatch/backend/internal/vitals/service"
	"github.com/vitalwatch/backend/pkg/logger"
	"github.com/vitalwatch/backend/pkg/metrics"
	"github.com/vitalwatch/backend/pkg/middleware"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: firebase=%v mongo=%v redis=%v", cfg.Firebase.ProjectID != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	ctx := context.Background()

	r := gin.New()

	// CORS open to all origins: the mobile app calls from device networks.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(middleware.RequestID())
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	// Rate limiting attaches to the authed routes below, after the auth gate,
	// so buckets key on the verified principal rather than the client IP.
	var limitMW gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			limitMW = middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			limitMW = middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	// Liveness probe stays ahead of the auth gate so unauthenticated
	// monitoring checks keep working.
	handler.RegisterHealth(r)

	// Expose Prometheus metrics and API docs
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)

	// Identity provider client. Preference order: full Admin SDK when a
	// service account is configured, securetoken OIDC discovery when only
	// the project id is known, shared-secret JWT only as an explicit
	// integration-mode opt-in.
	var verifier middleware.Verifier
	var fb *firebase.Clients
	if cfg.Firebase.CredentialsFile != "" {
		fb, err = firebase.Connect(ctx, &cfg.Firebase)
		if err != nil {
			logger.Fatalf("failed to initialize Firebase Admin SDK: %v", err)
		}
		verifier = auth.NewFirebaseVerifier(fb.Auth)
		logger.Infof("Firebase Admin SDK initialized successfully")
	} else if cfg.Firebase.ProjectID != "" {
		ver, err := auth.NewOIDCVerifier(ctx, cfg.Firebase.ProjectID)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier: %v", err)
		} else {
			verifier = ver
		}
	}
	if verifier == nil {
		val := strings.ToLower(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN")))
		if val == "true" && cfg.JWT.Secret != "" {
			logger.Warn("enabling shared-secret token verifier (integration mode)")
			verifier = tokens.NewHSVerifier(cfg.JWT.Secret)
		}
	}
	if verifier == nil {
		logger.Fatalf("no token verifier available: set FIREBASE_CREDENTIALS_FILE, FIREBASE_PROJECT_ID, or ALLOW_INSECURE_TOKEN with JWT_SECRET")
	}

	// Backing store: Realtime Database when configured, MongoDB as the
	// self-hosted alternative, in-memory only for development.
	var store repository.Store
	if fb != nil && fb.DB != nil {
		store = repository.NewFirebaseRepo(fb.DB)
		logger.Infof("Using Firebase Realtime Database for vitals storage")
	} else if cfg.MongoDB.URI != "" {
		client, errConn := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if errConn != nil {
			logger.Fatalf("%v", errConn)
		}
		defer func() { _ = client.Disconnect(ctx) }()
		col := client.Database(cfg.MongoDB.Database).Collection("vitals")
		store = repository.NewMongoRepo(col)
		logger.Infof("Using MongoDB for vitals storage")
	} else {
		logger.Warnf("no backing store configured, using in-memory store (development only)")
		store = repository.NewMemoryRepo()
	}

	// Vitals routes sit behind the auth gate; every request re-verifies.
	// The limiter runs after auth so it sees the principal set by the gate.
	authed := r.Group("/", middleware.AuthMiddleware(verifier))
	if limitMW != nil {
		authed.Use(limitMW)
	}
	handler.Register(authed, service.New(store))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting vitals gateway on http://%s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
