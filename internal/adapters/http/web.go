package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"gymdesk/internal/adapters/http/middleware"
	checkinStore "gymdesk/internal/adapters/storage/checkin"
	historyStore "gymdesk/internal/adapters/storage/history"
	memberStore "gymdesk/internal/adapters/storage/member"
	paymentStore "gymdesk/internal/adapters/storage/payment"
	planStore "gymdesk/internal/adapters/storage/plan"
	"gymdesk/internal/application/orchestrators"
)

// Stores holds all storage dependencies.
type Stores struct {
	MemberStore  memberStore.Store
	PlanStore    planStore.Store
	PaymentStore paymentStore.Store
	CheckInStore checkinStore.Store
	HistoryStore historyStore.Store
}

// loadCSRFKey reads the CSRF secret from GYMDESK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("GYMDESK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("GYMDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("GYMDESK_ENV") == "production" {
		log.Fatal("GYMDESK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key. Set GYMDESK_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global reminder channel (set by NewMux)
var reminderSender orchestrators.ReminderSender

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(s *Stores, sender orchestrators.ReminderSender) http.Handler {
	stores = s
	reminderSender = sender

	mux := http.NewServeMux()
	registerRoutes(mux)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}
