package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	web "gymdesk/internal/adapters/http"
	"gymdesk/internal/adapters/messaging"
	"gymdesk/internal/adapters/storage"
	checkinStore "gymdesk/internal/adapters/storage/checkin"
	historyStore "gymdesk/internal/adapters/storage/history"
	memberStore "gymdesk/internal/adapters/storage/member"
	paymentStore "gymdesk/internal/adapters/storage/payment"
	planStore "gymdesk/internal/adapters/storage/plan"
	"gymdesk/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Best effort: a missing .env file is fine in production
	_ = godotenv.Load()

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("GYMDESK_DB", "gymdesk.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	// Wrap DB with slow-query logging
	timedDB := storage.NewTimedDB(db)

	plans := planStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		MemberStore:  memberStore.NewSQLiteStore(timedDB),
		PlanStore:    plans,
		PaymentStore: paymentStore.NewSQLiteStore(timedDB),
		CheckInStore: checkinStore.NewSQLiteStore(timedDB),
		HistoryStore: historyStore.NewSQLiteStore(timedDB),
	}

	// Seed the canonical duration plans (idempotent)
	if err := orchestrators.ExecuteSeedPlans(context.Background(), orchestrators.SeedPlansDeps{PlanStore: plans}); err != nil {
		log.Fatalf("failed to seed plans: %v", err)
	}

	// Configure the reminder channel
	var sender orchestrators.ReminderSender
	resendKey := os.Getenv("GYMDESK_RESEND_KEY")
	reminderFrom := envOrDefault("GYMDESK_REMINDER_FROM", "GymDesk <noreply@gymdesk.local>")
	if resendKey != "" {
		sender = messaging.NewEmailChannel(resendKey, reminderFrom)
		log.Println("Reminder channel configured (Resend)")
	} else {
		sender = messaging.NewNoopChannel()
		if os.Getenv("GYMDESK_ENV") == "production" {
			log.Println("WARNING: GYMDESK_RESEND_KEY is not set, reminder delivery is DISABLED in production")
		} else {
			log.Println("Reminder channel configured (noop, set GYMDESK_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux(stores, sender)

	addr := envOrDefault("GYMDESK_ADDR", ":8080")
	log.Printf("GymDesk %s starting on %s (env=%s)", version, addr, envOrDefault("GYMDESK_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
