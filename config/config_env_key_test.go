package config

import (
	"testing"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"amap": map[string]any{
			"baseUrl": "https://restapi.amap.com",
			"city":    "南京",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "wayfare",
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{name: "aligns to camelCase leaf", rawKey: "AMAP_BASEURL", expected: "amap.baseUrl"},
		{name: "postgres ssl mode", rawKey: "POSTGRES_SSLMODE", expected: "postgres.sslMode"},
		{name: "postgres db name", rawKey: "POSTGRES_DBNAME", expected: "postgres.dbName"},
		{name: "unknown segments pass through lowered", rawKey: "AMAP_KEY", expected: "amap.key"},
		{name: "fully unknown key", rawKey: "SOMETHING_ELSE", expected: "something.else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := canonicalizeEnvKey(tt.rawKey, existing); got != tt.expected {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.rawKey, got, tt.expected)
			}
		})
	}
}
