package handler

import (
	"log/slog"
	"net/http"
	"time"

	"noticeboard/internal/model"

	"github.com/gin-gonic/gin"
)

type ReportStore interface {
	GetReports(limit, offset int, components []string) ([]model.LoadReport, error)
	GetReportTotal(components []string) (int, error)
}

type ReportHandler struct {
	repository ReportStore
}

func NewReportHandler(repository ReportStore) *ReportHandler {
	return &ReportHandler{repository: repository}
}

// GetReports lists recorded load reports, newest first. Repeat the
// component query parameter to filter by several components.
func (h *ReportHandler) GetReports(c *gin.Context) {
	limit := getQueryLimit(c, 20, 100)
	offset := getQueryOffset(c)
	components := c.QueryArray("component")

	reports, err := h.repository.GetReports(limit, offset, components)
	if err != nil {
		slog.Error("error fetching reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetReportTotal(components)
	if err != nil {
		slog.Error("error fetching report total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ReportsResponse{
		Reports: []ReportResponse{},
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, r := range reports {
		res.Reports = append(res.Reports, ReportResponse{
			ID:        r.ID,
			Component: r.Component,
			Outcome:   r.Outcome,
			Rows:      r.Rows,
			Skipped:   r.Skipped,
			Hidden:    r.Hidden,
			Eligible:  r.Eligible,
			Error:     r.Error,
			LoadedAt:  r.LoadedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}
