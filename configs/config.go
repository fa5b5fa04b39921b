package config

import "os"

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	BackendURL      string
	BlackboxAPIKey  string
	BlackboxBaseURL string
	FrontendURL     string
	Port            string
	RefreshSchedule string
	R2              R2
}

func LoadConfig() *Config {
	return &Config{
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:8001"),
		BlackboxAPIKey:  getEnv("BLACKBOX_API_KEY", ""),
		BlackboxBaseURL: getEnv("BLACKBOX_BASE_URL", "https://api.blackbox.ai/v1"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
		Port:            getEnv("PORT", "3000"),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "@every 00h05m00s"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
