package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Maze defaults, the reference scenario of an 8x8 grid with 30% obstacles.
const (
	DefaultMazeSize       = 8
	DefaultObstacleChance = 0.3
	DefaultCellPixels     = 60
	DefaultStartSprite    = "robot.png"
	DefaultGoalSprite     = "treasure2.png"
)

// MazeConfig holds the parameters of maze generation and drawing.
type MazeConfig struct {
	Size           int     // Number of rows and columns
	ObstacleChance float64 // Probability that a cell becomes a wall
	MaxAttempts    int     // Generation attempts before giving up, 0 for no limit
	CellPixels     int     // Side of a drawn cell in pixels
	StartSprite    string  // Path to the start marker image
	GoalSprite     string  // Path to the goal marker image
}

// ServerConfig holds the HTTP service's configuration values.
type ServerConfig struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	RedisAddr       string // host:port of the Redis cache
	RedisPassword   string // Password for the Redis cache
	CacheTTLSeconds int    // Lifetime of cached maze layouts
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	Maze            MazeConfig
}

// LoadMaze loads the maze configuration from a .env file and the environment.
func LoadMaze() MazeConfig {
	loadDotEnv()
	return mazeFromEnv()
}

func mazeFromEnv() MazeConfig {
	return MazeConfig{
		Size:           getEnvAsIntWithDefault("MAZE_SIZE", DefaultMazeSize),
		ObstacleChance: getEnvAsFloatWithDefault("MAZE_OBSTACLE_CHANCE", DefaultObstacleChance),
		MaxAttempts:    getEnvAsIntWithDefault("MAZE_MAX_ATTEMPTS", 0),
		CellPixels:     getEnvAsIntWithDefault("MAZE_CELL_PIXELS", DefaultCellPixels),
		StartSprite:    getEnvWithDefault("MAZE_START_SPRITE", DefaultStartSprite),
		GoalSprite:     getEnvWithDefault("MAZE_GOAL_SPRITE", DefaultGoalSprite),
	}
}

// LoadServer loads the service configuration. Missing required variables are fatal.
func LoadServer() ServerConfig {
	loadDotEnv()
	return ServerConfig{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		DBHost:          mustGetEnv("DB_HOST"),
		DBPort:          mustGetEnvAsInt("DB_PORT"),
		DBUser:          mustGetEnv("DB_USER"),
		DBPassword:      mustGetEnv("DB_PASS"),
		DBName:          mustGetEnv("DB_NAME"),
		RedisAddr:       mustGetEnv("REDIS_ADDR"),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTIssuer:       mustGetEnv("JWT_ISSUER"),
		Maze:            mazeFromEnv(),
	}
}

var loadEnvFile = godotenv.Load

func loadDotEnv() {
	if err := loadEnvFile(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	value, err := strconv.Atoi(mustGetEnv(key))
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	value, err := parseIntEnv(key, defaultValue)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	value, err := parseFloatEnv(key, defaultValue)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(raw, 64)
}
