package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port               string  `mapstructure:"PORT"`
	DatabasePath       string  `mapstructure:"DATABASE_PATH"`
	UseMockData        bool    `mapstructure:"USE_MOCK_DATA"`
	JWTSecret          string  `mapstructure:"JWT_SECRET"`
	GoogleClientID     string  `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string  `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string  `mapstructure:"GOOGLE_REDIRECT_URL"`
	AIGatewayURL       string  `mapstructure:"AI_GATEWAY_URL"`
	AIGatewayKey       string  `mapstructure:"AI_GATEWAY_KEY"`
	AIModel            string  `mapstructure:"AI_MODEL"`
	PaymentDelayMs     int     `mapstructure:"PAYMENT_DELAY_MS"`
	PaymentSuccessRate float64 `mapstructure:"PAYMENT_SUCCESS_RATE"`
	DiscordBotToken    string  `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordOpsChannel  string  `mapstructure:"DISCORD_OPS_CHANNEL_ID"`
	FrontendURL        string  `mapstructure:"FRONTEND_URL"`
	EnableCORS         bool    `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "trek.db")
	viper.SetDefault("USE_MOCK_DATA", false)
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://127.0.0.1:8080/auth/google/callback")
	viper.SetDefault("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions")
	viper.SetDefault("AI_MODEL", "google/gemini-2.5-flash")
	viper.SetDefault("PAYMENT_DELAY_MS", 3000)
	viper.SetDefault("PAYMENT_SUCCESS_RATE", 0.8)
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:4000")

	viper.BindEnv("USE_MOCK_DATA")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("GOOGLE_CLIENT_ID")
	viper.BindEnv("GOOGLE_CLIENT_SECRET")
	viper.BindEnv("AI_GATEWAY_URL")
	viper.BindEnv("AI_GATEWAY_KEY")
	viper.BindEnv("AI_MODEL")
	viper.BindEnv("PAYMENT_DELAY_MS")
	viper.BindEnv("PAYMENT_SUCCESS_RATE")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_OPS_CHANNEL_ID")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
