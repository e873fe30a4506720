package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"starquest/internal/i18n"
	"starquest/internal/models"
	"starquest/internal/period"
	"starquest/internal/render"
	"starquest/internal/service"
)

// ReportHandler serves report downloads, period pickers and email triggers
type ReportHandler struct {
	reports *service.ReportService
	emails  *service.EmailService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService, emails *service.EmailService) *ReportHandler {
	return &ReportHandler{reports: reports, emails: emails}
}

// reportQuery is the validated request surface of the download endpoint
type reportQuery struct {
	familyID   int64
	periodType period.Type
	start      time.Time
	end        time.Time
	locale     string
	compare    bool
}

// parseReportQuery validates path and query parameters. Bounds default
// to the period containing "now" when absent; explicit bounds must be
// RFC 3339 and ordered, rejected here before the engine runs.
func parseReportQuery(r *http.Request) (*reportQuery, error) {
	familyID, err := strconv.ParseInt(r.PathValue("familyID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid family id")
	}

	pt, err := period.ParseType(r.URL.Query().Get("type"))
	if err != nil {
		return nil, err
	}

	q := &reportQuery{
		familyID:   familyID,
		periodType: pt,
		locale:     i18n.Normalize(r.URL.Query().Get("locale")),
		compare:    r.URL.Query().Get("compare") == "true",
	}

	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam == "" && endParam == "" {
		p, err := period.Bounds(pt, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		q.start, q.end = p.Start, p.End
		return q, nil
	}

	if q.start, err = time.Parse(time.RFC3339, startParam); err != nil {
		return nil, fmt.Errorf("invalid start: %v", err)
	}
	if q.end, err = time.Parse(time.RFC3339, endParam); err != nil {
		return nil, fmt.Errorf("invalid end: %v", err)
	}
	if q.end.Before(q.start) {
		return nil, fmt.Errorf("start must not be after end")
	}

	return q, nil
}

// DownloadReport renders the period report as a Markdown attachment.
// GET /families/{familyID}/report?type=weekly&start=...&end=...&locale=en&compare=true
func (h *ReportHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	q, err := parseReportQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	report, err := h.reports.AssembleReport(r.Context(), q.familyID, q.periodType, q.start, q.end, q.locale, q.compare)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			respondWithError(w, http.StatusNotFound, "Family not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to generate report", "report assembly failed", err)
		return
	}

	filename := period.Filename(q.periodType, q.start, q.end)
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	fmt.Fprint(w, render.Markdown(report))
}

// ListPeriods returns the recent periods for the picker as JSON. Uses
// current-week semantics: the running week is included.
// GET /families/{familyID}/report/periods?type=weekly&locale=en
func (h *ReportHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	pt, err := period.ParseType(r.URL.Query().Get("type"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	locale := i18n.Normalize(r.URL.Query().Get("locale"))

	periods, err := period.RecentPeriods(pt, locale, time.Now().UTC(), 0)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list periods", "", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(periods); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to encode periods", "", err)
	}
}

// EmailWeeklyReport assembles the last completed week and emails it to
// the family's contact address. Last-completed-week semantics: a report
// triggered mid-week covers the previous Sunday-to-Saturday window.
// POST /families/{familyID}/report/email
func (h *ReportHandler) EmailWeeklyReport(w http.ResponseWriter, r *http.Request) {
	familyID, err := strconv.ParseInt(r.PathValue("familyID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid family id", "", nil)
		return
	}

	family, err := h.reports.Family(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			respondWithError(w, http.StatusNotFound, "Family not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load family", "", err)
		return
	}

	week := period.LastCompletedWeek(time.Now().UTC())
	report, err := h.reports.AssembleReport(r.Context(), familyID, period.Weekly, week.Start, week.End, family.Locale, true)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to generate report", "weekly email assembly failed", err)
		return
	}

	if err := h.emails.SendWeeklyReport(r.Context(), family.Email, report); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send report email", "", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// EmailSettlementNotice accepts an externally computed settlement result
// and delivers the rendered notice to the family's contact address.
// POST /families/{familyID}/settlement/email
func (h *ReportHandler) EmailSettlementNotice(w http.ResponseWriter, r *http.Request) {
	familyID, err := strconv.ParseInt(r.PathValue("familyID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid family id", "", nil)
		return
	}

	var result models.SettlementResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid settlement payload", "", err)
		return
	}
	if result.FamilyID != familyID {
		respondWithError(w, http.StatusBadRequest, "settlement family mismatch", "", nil)
		return
	}

	family, err := h.reports.Family(r.Context(), familyID)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			respondWithError(w, http.StatusNotFound, "Family not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load family", "", err)
		return
	}

	if err := h.emails.SendSettlementNotice(r.Context(), family.Email, &result, family.Locale); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send settlement email", "", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
