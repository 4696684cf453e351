package validation

import (
	"strings"
	"testing"
)

type dbConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"gte=1,lte=65535"`
}

func TestValidateValid(t *testing.T) {
	cfg := dbConfig{Host: "localhost", Port: 5432}
	if err := Validate(&cfg); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	cfg := dbConfig{Port: 5432}
	err := Validate(&cfg)
	if err == nil {
		t.Fatal("expected error for missing host")
	}
	if !strings.Contains(err.Error(), "host") {
		t.Errorf("expected mapstructure field name in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "is required") {
		t.Errorf("expected readable message, got %q", err.Error())
	}
}

func TestValidateRangeViolation(t *testing.T) {
	cfg := dbConfig{Host: "localhost", Port: 700000}
	err := Validate(&cfg)
	if err == nil {
		t.Fatal("expected error for out-of-range port")
	}
	if !strings.Contains(err.Error(), "port") {
		t.Errorf("expected field name in message, got %q", err.Error())
	}
}
