package app

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Dhiekson/ToolTrack/db"
	"github.com/Dhiekson/ToolTrack/engine"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Handler-friendly aliases.
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB      // nil when running on the in-memory store
	RDB    *redis.Client // nil when the cache is disabled
	Repo   engine.Repository
	Config Config
}

// Config is read from the environment.
type Config struct {
	DBDriver  string // "postgres" or "memory"
	RedisAddr string // empty disables the dashboard cache
	RedisPwd  string
	WebOrigin string
	CacheTTL  time.Duration
}

func MustNew() *App {
	cfg := loadConfig()

	a := &App{Config: cfg}

	switch cfg.DBDriver {
	case "memory":
		a.Repo = db.NewMemoryRepo()
		log.Println("using in-memory store")
	default:
		a.DB = db.ConnectDB()
		a.Repo = db.NewRepo(a.DB)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		a.RDB = rdb
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)
	a.Router = r
	return a
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	ttl := 30 * time.Second
	if d, err := time.ParseDuration(get("CACHE_TTL", "30s")); err == nil {
		ttl = d
	}
	return Config{
		DBDriver:  get("DB_DRIVER", "postgres"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPwd:  os.Getenv("REDIS_PASSWORD"),
		WebOrigin: get("WEB_ORIGIN", "http://localhost:5173"),
		CacheTTL:  ttl,
	}
}
