package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client's idempotency key
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a stored key can be replayed
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

// bodyCapture wraps gin.ResponseWriter so the written body can be stored
// alongside the idempotency key.
type bodyCapture struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a request repeats an
// idempotency key. Requests without a key pass through untouched.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mutatingMethod(c.Request.Method) {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, ok := authenticatedUser(c)
		if !ok {
			c.Next()
			return
		}

		if replayStored(c, config.Repo, key, userID) {
			return
		}

		capture := &bodyCapture{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		storeResponse(c, config.Repo, key, userID, capture)
	}
}

// IdempotencyRequired rejects POST requests that do not carry an
// idempotency key. Only successful responses are stored for replay.
func IdempotencyRequired(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			response.BadRequest(c, "Idempotency-Key header is required for this request")
			c.Abort()
			return
		}

		userID, ok := authenticatedUser(c)
		if !ok {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		if replayStored(c, config.Repo, key, userID) {
			return
		}

		capture := &bodyCapture{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			storeResponse(c, config.Repo, key, userID, capture)
		}
	}
}

func mutatingMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := raw.(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// replayStored writes the previously stored response and reports whether
// the request was handled. Lookup failures fall through to normal handling.
func replayStored(c *gin.Context, repo repository.IdempotencyRepository, key string, userID uuid.UUID) bool {
	existing, err := repo.GetByKey(c.Request.Context(), key, userID)
	if err != nil || existing == nil || existing.IsExpired() {
		return false
	}

	c.Header("X-Idempotency-Replayed", "true")
	c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
	c.Abort()
	return true
}

func storeResponse(c *gin.Context, repo repository.IdempotencyRepository, key string, userID uuid.UUID, capture *bodyCapture) {
	ikey := &entity.IdempotencyKey{
		Key:          key,
		UserID:       userID,
		Endpoint:     c.Request.Method + " " + c.FullPath(),
		ResponseCode: c.Writer.Status(),
		ResponseBody: capture.body.String(),
		ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
	}

	_ = repo.Create(c.Request.Context(), ikey)
}
