package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	cfg            config.ServerConfig
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       *repo.UserRepo
	mazeRepo       *repo.MazeRepo
	mazeCache      i.MazeCache
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	mazeService    i.MazeGenerator
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context) {
	userRepo = repo.NewUserRepo(mongoClient, cfg.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}

	mazeRepo = repo.NewMazeRepo(mongoClient, cfg.DBName, "mazes")
	if err := mazeRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Repositories initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	var err error
	mazeCache, err = cache.NewRedisMazeCache(redisClient, cfg.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(mazeRepo, mazeCache, newLogger("MAZE", config.ColorCyan), &service.MazeOptions{
		MaxAttempts: cfg.Maze.MaxAttempts,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	sprites, err := render.LoadSprites(cfg.Maze.StartSprite, cfg.Maze.GoalSprite, cfg.Maze.CellPixels)
	if err != nil {
		appLogger.Warning(fmt.Sprintf("Rendering without sprites: %v", err))
	}

	mazeController, err = mazeapi.NewMazeController(mazeapi.Config{
		Service: mazeService,
		Defaults: dmn.MazeParams{
			Size:           cfg.Maze.Size,
			ObstacleChance: cfg.Maze.ObstacleChance,
		},
		CellPixels: cfg.Maze.CellPixels,
		Sprites:    sprites,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	cfg = config.LoadServer()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRepos(ctx)

	initRedis(ctx)
	defer redisClient.Close()

	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
