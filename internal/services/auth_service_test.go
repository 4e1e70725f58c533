package services

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func setupAuthConfig(t *testing.T) {
	t.Helper()
	viper.Set("pin.code", "1234")
	viper.Set("pin.hash", "")
	viper.Set("jwt.secret_key", "test-secret")
	viper.Set("jwt.expiry_hours", 1)
	viper.Set("argon2.time", 1)
	viper.Set("argon2.memory", 1024)
	viper.Set("argon2.threads", 1)
	viper.Set("argon2.key_length", 32)
	viper.Set("argon2.salt_length", 16)
}

func TestHashAndVerifyPIN(t *testing.T) {
	setupAuthConfig(t)

	hash, err := hashPIN("1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	t.Run("correct PIN verifies", func(t *testing.T) {
		assert.True(t, verifyPIN("1234", hash))
	})

	t.Run("wrong PIN fails", func(t *testing.T) {
		assert.False(t, verifyPIN("4321", hash))
	})

	t.Run("salting makes hashes unique", func(t *testing.T) {
		other, err := hashPIN("1234")
		assert.NoError(t, err)
		assert.NotEqual(t, hash, other)
		assert.True(t, verifyPIN("1234", other))
	})

	t.Run("garbage hash never verifies", func(t *testing.T) {
		assert.False(t, verifyPIN("1234", "not-a-hash"))
		assert.False(t, verifyPIN("1234", ""))
	})
}

func TestAuthService_VerifyPIN(t *testing.T) {
	setupAuthConfig(t)

	verify := func(service *AuthService, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/auth/verify-pin", strings.NewReader(body))
		service.VerifyPIN(w, r)
		return w
	}

	t.Run("correct PIN issues a token", func(t *testing.T) {
		service := NewAuthService(nil)

		w := verify(service, `{"pin": "1234"}`)
		assert.Equal(t, 200, w.Code)

		var resp struct {
			Success bool              `json:"success"`
			Data    map[string]string `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["token"])
	})

	t.Run("wrong PIN rejected", func(t *testing.T) {
		service := NewAuthService(nil)

		w := verify(service, `{"pin": "9999"}`)
		assert.Equal(t, 401, w.Code)
	})

	t.Run("malformed PIN rejected before verification", func(t *testing.T) {
		service := NewAuthService(nil)

		assert.Equal(t, 400, verify(service, `{"pin": "12"}`).Code)
		assert.Equal(t, 400, verify(service, `{"pin": "abcd"}`).Code)
		assert.Equal(t, 400, verify(service, `{}`).Code)
	})

	t.Run("rate limit blocks after repeated failures", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewAuthService(redisClient)

		redisMock.ExpectGet("pin_attempts:192.0.2.1").SetVal("5")

		w := verify(service, `{"pin": "1234"}`)
		assert.Equal(t, 429, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("failed attempt is recorded", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewAuthService(redisClient)

		redisMock.ExpectGet("pin_attempts:192.0.2.1").RedisNil()
		redisMock.ExpectIncr("pin_attempts:192.0.2.1").SetVal(1)
		redisMock.ExpectExpire("pin_attempts:192.0.2.1", pinAttemptWindow).SetVal(true)

		w := verify(service, `{"pin": "0000"}`)
		assert.Equal(t, 401, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("success clears the attempt counter", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewAuthService(redisClient)

		redisMock.ExpectGet("pin_attempts:192.0.2.1").SetVal("2")
		redisMock.ExpectDel("pin_attempts:192.0.2.1").SetVal(1)

		w := verify(service, `{"pin": "1234"}`)
		assert.Equal(t, 200, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestAuthService_Logout(t *testing.T) {
	setupAuthConfig(t)

	t.Run("token is blacklisted", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewAuthService(redisClient)

		token, err := GenerateSessionToken()
		assert.NoError(t, err)

		redisMock.ExpectSet("blacklist:"+token, "1", time.Hour).SetVal("OK")

		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		service.Logout(w, r)

		assert.Equal(t, 200, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("logout without token still succeeds", func(t *testing.T) {
		service := NewAuthService(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
		service.Logout(w, r)

		assert.Equal(t, 200, w.Code)
	})
}

func TestGenerateSessionToken(t *testing.T) {
	setupAuthConfig(t)

	token, err := GenerateSessionToken()
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)
}
