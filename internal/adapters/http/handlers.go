package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gymdesk/internal/application/listutil"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/application/projections"
	"gymdesk/internal/domain/dates"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseDate accepts the tolerant roster date formats plus RFC 3339. A blank
// string maps to the zero time, which the orchestrators treat as "today" or
// "unchanged".
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return dates.ParseFlexible(s)
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/members", handleGetMemberList)
	mux.HandleFunc("POST /api/members", handleRegisterMember)
	mux.HandleFunc("GET /api/members/{id}", handleGetMemberProfile)
	mux.HandleFunc("PUT /api/members/{id}", handleUpdateMember)
	mux.HandleFunc("DELETE /api/members/{id}", handleDeleteMember)
	mux.HandleFunc("POST /api/members/{id}/renew", handleRenewMember)
	mux.HandleFunc("POST /api/members/{id}/payments", handleRecordPayment)
	mux.HandleFunc("POST /api/members/{id}/checkins", handleCheckInMember)
	mux.HandleFunc("GET /api/plans", handleGetPlans)
	mux.HandleFunc("PUT /api/plans/{name}", handleSetPlanPrice)
	mux.HandleFunc("POST /api/roster/import", handleImportRoster)
	mux.HandleFunc("GET /api/roster/export", handleExportRoster)
	mux.HandleFunc("GET /api/dashboard", handleGetDashboard)
	mux.HandleFunc("GET /api/analytics", handleGetAnalytics)
	mux.HandleFunc("POST /api/reminders", handleSendReminders)
}

// handleGetMemberList handles GET /api/members with ?q= search, ?status=
// lifecycle filtering, and page/per_page pagination.
func handleGetMemberList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := projections.QueryGetMemberList(r.Context(), projections.GetMemberListQuery{
		Search: q.Get("q"),
		Status: q.Get("status"),
	}, projections.GetMemberListDeps{MemberStore: stores.MemberStore})
	if err != nil {
		internalError(w, err)
		return
	}
	page, pageInfo := listutil.Paginate(result.Members, listutil.ParsePageParams(q))
	writeJSON(w, http.StatusOK, map[string]any{
		"members":   page,
		"page_info": pageInfo,
		"total":     result.Total,
	})
}

type registerMemberRequest struct {
	Name       string  `json:"name"`
	Contact    string  `json:"contact"`
	Gender     string  `json:"gender"`
	Plan       string  `json:"plan"`
	StartDate  string  `json:"start_date"` // blank means today
	Discount   float64 `json:"discount"`
	AmountPaid float64 `json:"amount_paid"`
	Photo      string  `json:"photo"`
}

// handleRegisterMember handles POST /api/members.
func handleRegisterMember(w http.ResponseWriter, r *http.Request) {
	var req registerMemberRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}

	m, err := orchestrators.ExecuteRegisterMember(r.Context(), orchestrators.RegisterMemberInput{
		Name:       req.Name,
		Contact:    req.Contact,
		Gender:     req.Gender,
		Plan:       req.Plan,
		StartDate:  start,
		Discount:   req.Discount,
		AmountPaid: req.AmountPaid,
		Photo:      req.Photo,
	}, orchestrators.RegisterMemberDeps{
		MemberStore:  stores.MemberStore,
		PlanStore:    stores.PlanStore,
		PaymentStore: stores.PaymentStore,
		HistoryStore: stores.HistoryStore,
		GenerateID:   generateID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// handleGetMemberProfile handles GET /api/members/{id}: the member with its
// lifecycle status, payment history, visit log, and membership transactions.
func handleGetMemberProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	m, err := stores.MemberStore.GetByID(ctx, id)
	if err != nil {
		http.Error(w, "member not found", http.StatusNotFound)
		return
	}
	payments, err := stores.PaymentStore.ListByMemberID(ctx, id)
	if err != nil {
		internalError(w, err)
		return
	}
	checkIns, err := stores.CheckInStore.ListByMemberID(ctx, id)
	if err != nil {
		internalError(w, err)
		return
	}
	records, err := stores.HistoryStore.ListByMemberID(ctx, id)
	if err != nil {
		internalError(w, err)
		return
	}

	c := member.Classify(m.ExpiryDate, time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"member":         m,
		"status":         c.Status,
		"days_remaining": c.DaysRemaining,
		"days_overdue":   c.DaysOverdue,
		"payments":       payments,
		"check_ins":      checkIns,
		"history":        records,
	})
}

type updateMemberRequest struct {
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Gender     string `json:"gender"`
	Plan       string `json:"plan"`
	StartDate  string `json:"start_date"`
	ExpiryDate string `json:"expiry_date"`
	Photo      string `json:"photo"`
}

// handleUpdateMember handles PUT /api/members/{id}.
func handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		http.Error(w, "Invalid expiry date", http.StatusBadRequest)
		return
	}

	m, err := orchestrators.ExecuteUpdateMember(r.Context(), orchestrators.UpdateMemberInput{
		MemberID:   r.PathValue("id"),
		Name:       req.Name,
		Contact:    req.Contact,
		Gender:     req.Gender,
		Plan:       req.Plan,
		StartDate:  start,
		ExpiryDate: expiry,
		Photo:      req.Photo,
	}, orchestrators.UpdateMemberDeps{
		MemberStore: stores.MemberStore,
		PlanStore:   stores.PlanStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// handleDeleteMember handles DELETE /api/members/{id}.
func handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteMember(r.Context(), orchestrators.DeleteMemberInput{
		MemberID: r.PathValue("id"),
	}, orchestrators.DeleteMemberDeps{MemberStore: stores.MemberStore})
	if err != nil {
		http.Error(w, "member not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type renewMemberRequest struct {
	Plan       string  `json:"plan"`
	Discount   float64 `json:"discount"`
	AmountPaid float64 `json:"amount_paid"`
}

// handleRenewMember handles POST /api/members/{id}/renew.
func handleRenewMember(w http.ResponseWriter, r *http.Request) {
	var req renewMemberRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	m, err := orchestrators.ExecuteRenewMember(r.Context(), orchestrators.RenewMemberInput{
		MemberID:   r.PathValue("id"),
		Plan:       req.Plan,
		Discount:   req.Discount,
		AmountPaid: req.AmountPaid,
	}, orchestrators.RenewMemberDeps{
		MemberStore:  stores.MemberStore,
		PlanStore:    stores.PlanStore,
		PaymentStore: stores.PaymentStore,
		HistoryStore: stores.HistoryStore,
		GenerateID:   generateID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type recordPaymentRequest struct {
	Amount float64 `json:"amount"`
}

// handleRecordPayment handles POST /api/members/{id}/payments.
func handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	result, err := orchestrators.ExecuteRecordPayment(r.Context(), orchestrators.RecordPaymentInput{
		MemberID: r.PathValue("id"),
		Amount:   req.Amount,
	}, orchestrators.RecordPaymentDeps{
		MemberStore:  stores.MemberStore,
		PaymentStore: stores.PaymentStore,
		GenerateID:   generateID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleCheckInMember handles POST /api/members/{id}/checkins.
func handleCheckInMember(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteCheckInMember(r.Context(), orchestrators.CheckInMemberInput{
		MemberID: r.PathValue("id"),
	}, orchestrators.CheckInMemberDeps{
		MemberStore:  stores.MemberStore,
		CheckInStore: stores.CheckInStore,
		GenerateID:   generateID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetPlans handles GET /api/plans.
func handleGetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := stores.PlanStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": plans})
}

type setPlanPriceRequest struct {
	Price float64 `json:"price"`
}

// handleSetPlanPrice handles PUT /api/plans/{name}. The name must be one of
// the canonical duration labels.
func handleSetPlanPrice(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if _, err := plan.DurationMonths(name); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req setPlanPriceRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	p := plan.Plan{Name: name, Price: req.Price}
	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := stores.PlanStore.Save(r.Context(), p); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleImportRoster handles POST /api/roster/import with a multipart "file"
// field.
func handleImportRoster(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "roster file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := orchestrators.ExecuteImportRoster(r.Context(), orchestrators.ImportRosterInput{
		Reader: file,
	}, orchestrators.ImportRosterDeps{
		MemberStore: stores.MemberStore,
		GenerateID:  generateID,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"imported":    result.Imported,
		"failed_rows": result.FailedRows,
	})
}

// handleExportRoster handles GET /api/roster/export as a CSV download.
func handleExportRoster(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="members.csv"`)
	_, err := orchestrators.ExecuteExportRoster(r.Context(), orchestrators.ExportRosterInput{
		Writer: w,
	}, orchestrators.ExportRosterDeps{MemberStore: stores.MemberStore})
	if err != nil {
		slog.Error("roster_export_failed", "error", err.Error())
	}
}

// handleGetDashboard handles GET /api/dashboard.
func handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardDeps{
		MemberStore:  stores.MemberStore,
		PaymentStore: stores.PaymentStore,
		CheckInStore: stores.CheckInStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleGetAnalytics handles GET /api/analytics. The revenue window is picked
// with ?range= (preset name, default this_month); a custom range needs both
// ?start= and ?end=.
func handleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	preset := q.Get("range")
	if preset == "" {
		preset = dates.PresetThisMonth
	}
	start, err := parseDate(q.Get("start"))
	if err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}
	end, err := parseDate(q.Get("end"))
	if err != nil {
		http.Error(w, "Invalid end date", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetAnalytics(r.Context(), projections.GetAnalyticsQuery{
		RevenuePreset: preset,
		CustomStart:   start,
		CustomEnd:     end,
	}, projections.GetAnalyticsDeps{
		MemberStore:  stores.MemberStore,
		PaymentStore: stores.PaymentStore,
	})
	if err != nil {
		if errors.Is(err, dates.ErrInvalidRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleSendReminders handles POST /api/reminders; ?include_expired=true
// widens the sweep past the expiring-soon window.
func handleSendReminders(w http.ResponseWriter, r *http.Request) {
	result, err := orchestrators.ExecuteSendReminders(r.Context(), orchestrators.SendRemindersInput{
		IncludeExpired: r.URL.Query().Get("include_expired") == "true",
	}, orchestrators.SendRemindersDeps{
		MemberStore: stores.MemberStore,
		Sender:      reminderSender,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"sent":    result.Sent,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	})
}
