package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Spoonacular configuration
	SpoonacularAPIKey  string `yaml:"SPOONACULAR_API_KEY"`
	SpoonacularBaseURL string `yaml:"SPOONACULAR_BASE_URL"`

	// HTTP server
	Port      string `yaml:"PORT"`
	ClientDir string `yaml:"CLIENT_DIR"`
}

const (
	DefaultPort               = "3000"
	DefaultDBPort             = "5432"
	DefaultSpoonacularBaseURL = "https://api.spoonacular.com"
)

var config Config

// LoadConfig reads config.yaml when present and lets environment variables
// override every key.
func LoadConfig() {
	loadConfigFile("config.yaml")
	applyEnv()
	applyDefaults()
}

func loadConfigFile(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading YAML file: %s\n", err)
		}
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}
}

func applyEnv() {
	for key, field := range map[string]*string{
		"DB_USER":              &config.DBUser,
		"DB_NAME":              &config.DBName,
		"DB_PASSWORD":          &config.DBPassword,
		"DB_PORT":              &config.DBPort,
		"DB_HOST":              &config.DBHost,
		"JWT_SECRET":           &config.JWTSecret,
		"SPOONACULAR_API_KEY":  &config.SpoonacularAPIKey,
		"SPOONACULAR_BASE_URL": &config.SpoonacularBaseURL,
		"PORT":                 &config.Port,
		"CLIENT_DIR":           &config.ClientDir,
	} {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}
}

func applyDefaults() {
	if config.Port == "" {
		config.Port = DefaultPort
	}
	if config.DBPort == "" {
		config.DBPort = DefaultDBPort
	}
	if config.DBHost == "" {
		config.DBHost = "localhost"
	}
	if config.DBName == "" {
		config.DBName = "recipe_db"
	}
	if config.SpoonacularBaseURL == "" {
		config.SpoonacularBaseURL = DefaultSpoonacularBaseURL
	}
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SPOONACULAR_API_KEY":
		return config.SpoonacularAPIKey
	case "SPOONACULAR_BASE_URL":
		return config.SpoonacularBaseURL
	case "PORT":
		return config.Port
	case "CLIENT_DIR":
		return config.ClientDir
	default:
		return ""
	}
}
