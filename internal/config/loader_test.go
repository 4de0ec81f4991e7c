package config

import (
	"testing"
)

func TestExpandEnv_SetVariable(t *testing.T) {
	t.Setenv("LF_TEST_HOST", "db.internal")
	got := expandEnv("host: ${LF_TEST_HOST:localhost}")
	if got != "host: db.internal" {
		t.Fatalf("expected env value, got %q", got)
	}
}

func TestExpandEnv_DefaultValue(t *testing.T) {
	got := expandEnv("host: ${LF_TEST_UNSET_VAR:localhost}")
	if got != "host: localhost" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestExpandEnv_EmptyDefault(t *testing.T) {
	got := expandEnv("password: ${LF_TEST_UNSET_PASSWORD:}")
	if got != "password: " {
		t.Fatalf("expected empty default, got %q", got)
	}
}

func TestExpandEnv_NoDefaultKeepsPlaceholder(t *testing.T) {
	got := expandEnv("key: ${LF_TEST_UNSET_NO_DEFAULT}")
	if got != "key: ${LF_TEST_UNSET_NO_DEFAULT}" {
		t.Fatalf("placeholder without default should survive, got %q", got)
	}
}

func TestExpandEnv_MultipleOccurrences(t *testing.T) {
	t.Setenv("LF_TEST_PORT", "5433")
	got := expandEnv("${LF_TEST_PORT:5432}/${LF_TEST_DB:app}")
	if got != "5433/app" {
		t.Fatalf("expected mixed expansion, got %q", got)
	}
}
