package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"noticeboard/db"
	"noticeboard/internal/model"
)

// ReportQueue hands load reports to the recorder worker through Redis.
type ReportQueue struct {
	key string
}

func NewReportQueue() *ReportQueue {
	return &ReportQueue{key: db.ReportQueueKey}
}

func (q *ReportQueue) Report(ctx context.Context, r model.LoadReport) error {
	data, err := EncodeReport(r)
	if err != nil {
		return err
	}
	return db.PushToQueue(ctx, q.key, data)
}

func EncodeReport(r model.LoadReport) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	return string(b), nil
}

func DecodeReport(data string) (*model.LoadReport, error) {
	var r model.LoadReport
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if r.ID == "" || r.Component == "" {
		return nil, fmt.Errorf("decode report: missing id or component")
	}
	return &r, nil
}
