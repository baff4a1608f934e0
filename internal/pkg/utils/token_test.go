package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/spf13/viper"
)

func TestAuthToken(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "s3cret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	token, err := GenerateAuthToken(time.Minute)
	if err != nil {
		t.Fatalf("GenerateAuthToken: %v", err)
	}

	claims, err := ParseAuthToken(token)
	if err != nil {
		t.Fatalf("ParseAuthToken: %v", err)
	}
	if claims.Secret != "s3cret" {
		t.Fatalf("secret: %q", claims.Secret)
	}

	viper.Set(constants.ViperSecretKey, "rotated")
	if _, err := ParseAuthToken(token); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("token signed with old secret accepted: %v", err)
	}
}

func TestAuthToken_Expired(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "s3cret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	token, err := GenerateAuthToken(-time.Minute)
	if err != nil {
		t.Fatalf("GenerateAuthToken: %v", err)
	}
	if _, err := ParseAuthToken(token); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("expired token accepted: %v", err)
	}
}

func TestAuthToken_NoSecretConfigured(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "")
	if _, err := GenerateAuthToken(time.Minute); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("err: %v", err)
	}
	if _, err := ParseAuthToken("anything"); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("err: %v", err)
	}
}
