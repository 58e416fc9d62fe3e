package config

import (
	"os"
	"strconv"
)

// Helper untuk ambil environment variable dengan nilai default
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper untuk ambil environment variable sebagai integer
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret dipakai middleware Auth dan usecase login. Harus sama persis.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia-negara-sangat-kuat"))
}

// UploadRoot adalah folder dasar penyimpanan file (lampiran logbook, logo sekolah)
func UploadRoot() string {
	return GetEnv("UPLOAD_ROOT", "./uploads")
}
