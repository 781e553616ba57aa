package config

import "strings"

type HTTPConfig struct {
	Port        string
	Mode        string // debug | release
	CORSOrigins []string
}

func LoadHTTPConfig() *HTTPConfig {
	origins := getEnv("HTTP_CORS_ORIGINS", "http://localhost:3000")
	return &HTTPConfig{
		Port:        getEnv("HTTP_PORT", "8080"),
		Mode:        getEnv("HTTP_MODE", "debug"),
		CORSOrigins: splitOrigins(origins),
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
