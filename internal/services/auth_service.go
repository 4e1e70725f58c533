package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"
)

const (
	pinAttemptKeyPrefix = "pin_attempts:"
	pinAttemptWindow    = 15 * time.Minute
	pinMaxAttempts      = 5
)

// AuthService verifies the edit PIN server-side and issues session tokens.
// The browser-side string comparison the original design used is not a
// security boundary; here the PIN is an argon2id-hashed credential and every
// mutating endpoint requires the resulting token.
type AuthService struct {
	redis     *redis.Client
	pinHash   string
	validator *ValidationHelper
}

// VerifyPINRequest is the PIN verification payload
type VerifyPINRequest struct {
	PIN string `json:"pin" validate:"required,len=4,numeric"`
}

func NewAuthService(redisClient *redis.Client) *AuthService {
	viper.SetDefault("pin.code", "1234")
	viper.SetDefault("jwt.expiry_hours", 12)
	viper.SetDefault("argon2.time", 1)
	viper.SetDefault("argon2.memory", 64*1024)
	viper.SetDefault("argon2.threads", 4)
	viper.SetDefault("argon2.key_length", 32)
	viper.SetDefault("argon2.salt_length", 16)

	pinHash := viper.GetString("pin.hash")
	if pinHash == "" {
		// Hash the configured plaintext PIN once at startup so verification
		// never compares plaintext.
		var err error
		pinHash, err = hashPIN(viper.GetString("pin.code"))
		if err != nil {
			log.Fatalf("[AUTH] Failed to hash PIN: %v", err)
		}
	}

	return &AuthService{
		redis:     redisClient,
		pinHash:   pinHash,
		validator: NewValidationHelper(),
	}
}

// VerifyPIN checks the PIN and returns a session token
// @Summary Verify PIN
// @Description Verify the edit PIN and issue a bearer token for mutating endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyPINRequest true "PIN"
// @Success 200 {object} services.Response
// @Failure 400 {object} services.Response
// @Failure 401 {object} services.Response
// @Failure 429 {object} services.Response
// @Router /auth/verify-pin [post]
func (s *AuthService) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AUTH] PIN verification attempt from IP: %s", r.RemoteAddr)

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req VerifyPINRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	if err := s.checkRateLimit(r.Context(), r.RemoteAddr); err != nil {
		log.Printf("[AUTH] PIN rate limit exceeded for %s", r.RemoteAddr)
		SendErrorResponse(w, "Too many attempts, try again later", http.StatusTooManyRequests, nil)
		return
	}

	if !verifyPIN(req.PIN, s.pinHash) {
		s.recordFailedAttempt(r.Context(), r.RemoteAddr)
		log.Printf("[AUTH] Invalid PIN from %s", r.RemoteAddr)
		SendErrorResponse(w, "Invalid PIN", http.StatusUnauthorized, nil)
		return
	}

	s.clearAttempts(r.Context(), r.RemoteAddr)

	token, err := GenerateSessionToken()
	if err != nil {
		log.Printf("[AUTH] Token generation failed: %v", err)
		SendErrorResponse(w, "Failed to generate token", http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[AUTH] PIN verified for %s", r.RemoteAddr)
	SendSuccessResponse(w, map[string]string{"token": token}, http.StatusOK)
}

// Logout blacklists the presented token
// @Summary Logout
// @Description Invalidate the current session token
// @Tags auth
// @Produce json
// @Success 200 {object} services.Response
// @Router /auth/logout [post]
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token != "" && len(token) > 7 {
		token = token[7:] // Remove "Bearer " prefix

		if s.redis != nil {
			ctx := context.Background()
			key := fmt.Sprintf("blacklist:%s", token)
			// Blacklist until the token would have expired anyway
			expiry := time.Duration(viper.GetInt("jwt.expiry_hours")) * time.Hour
			if err := s.redis.Set(ctx, key, "1", expiry).Err(); err != nil {
				log.Printf("[AUTH] Failed to blacklist token: %v", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Success: true, Message: "Logout successful"})
}

func (s *AuthService) checkRateLimit(ctx context.Context, remoteAddr string) error {
	if s.redis == nil {
		return nil
	}
	key := pinAttemptKeyPrefix + clientIP(remoteAddr)
	count, err := s.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		// Redis issues should not lock users out
		return nil
	}
	if count >= pinMaxAttempts {
		return fmt.Errorf("rate limit exceeded")
	}
	return nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, remoteAddr string) {
	if s.redis == nil {
		return
	}
	key := pinAttemptKeyPrefix + clientIP(remoteAddr)
	if err := s.redis.Incr(ctx, key).Err(); err != nil {
		log.Printf("[AUTH] Failed to record PIN attempt: %v", err)
		return
	}
	s.redis.Expire(ctx, key, pinAttemptWindow)
}

func (s *AuthService) clearAttempts(ctx context.Context, remoteAddr string) {
	if s.redis == nil {
		return
	}
	s.redis.Del(ctx, pinAttemptKeyPrefix+clientIP(remoteAddr))
}

func clientIP(remoteAddr string) string {
	if idx := strings.LastIndex(remoteAddr, ":"); idx != -1 {
		return remoteAddr[:idx]
	}
	return remoteAddr
}

// GenerateSessionToken issues a signed session JWT with the configured expiry.
func GenerateSessionToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session": true,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Duration(viper.GetInt("jwt.expiry_hours")) * time.Hour).Unix(),
	})

	return token.SignedString([]byte(viper.GetString("jwt.secret_key")))
}

func hashPIN(pin string) (string, error) {
	salt := make([]byte, viper.GetInt("argon2.salt_length"))
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(pin), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return fmt.Sprintf("%s$%s", base64.StdEncoding.EncodeToString(salt), base64.StdEncoding.EncodeToString(hash)), nil
}

func verifyPIN(pin, encodedHash string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	computedHash := argon2.IDKey([]byte(pin), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return subtle.ConstantTimeCompare(hash, computedHash) == 1
}
