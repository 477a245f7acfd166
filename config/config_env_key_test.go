package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_SECRET", want: "auth.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeEnvKey_DoctorRegistrySections(t *testing.T) {
	existing := map[string]any{
		"rateLimit": map[string]any{
			"idleTTL": "15m",
		},
		"http": map[string]any{
			"trustedProxies": []any{},
		},
		"database": map[string]any{
			"autoMigrate": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_TRUSTEDPROXIES", want: "http.trustedProxies"},
		{envKey: "RATELIMIT_IDLETTL", want: "rateLimit.idleTTL"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
