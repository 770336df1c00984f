package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "devsecret", cfg.JWT.Secret)
	assert.Equal(t, "gemini-2.5-flash", cfg.Generator.Model)
	assert.Equal(t, true, cfg.Storage.UseMemory)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "inclusive-jobs-documents", cfg.Storage.Bucket)
	assert.Equal(t, false, cfg.Storage.UseSSL)
	assert.Equal(t, false, cfg.Subscription.EnforceExpiry)
	assert.Equal(t, true, cfg.SeedDemoJobs)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT": "9090",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "9090", cfg.HTTP.Port)
			},
		},
		{
			name: "generator config override",
			envVars: map[string]string{
				"GENERATOR_API_KEY": "test-key",
				"GENERATOR_MODEL":   "gemini-2.5-pro",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "test-key", cfg.Generator.APIKey)
				assert.Equal(t, "gemini-2.5-pro", cfg.Generator.Model)
			},
		},
		{
			name: "storage config override",
			envVars: map[string]string{
				"MINIO_USE_MEMORY":  "false",
				"MINIO_ENDPOINT":    "minio.internal:9000",
				"MINIO_ACCESS_KEY":  "access",
				"MINIO_SECRET_KEY":  "secret",
				"MINIO_BUCKET_NAME": "documents",
				"MINIO_USE_SSL":     "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, false, cfg.Storage.UseMemory)
				assert.Equal(t, "minio.internal:9000", cfg.Storage.Endpoint)
				assert.Equal(t, "access", cfg.Storage.AccessKey)
				assert.Equal(t, "secret", cfg.Storage.SecretKey)
				assert.Equal(t, "documents", cfg.Storage.Bucket)
				assert.Equal(t, true, cfg.Storage.UseSSL)
			},
		},
		{
			name: "subscription policy override",
			envVars: map[string]string{
				"SUBSCRIPTION_ENFORCE_EXPIRY": "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, true, cfg.Subscription.EnforceExpiry)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
