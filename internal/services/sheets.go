package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsExporter appends verified attendance rows to a Google Sheet, one row
// per mark. Export is an observer-side convenience: it runs after the ledger
// write and its failures never reach the submitting client.
type SheetsExporter struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewSheetsExporter(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsExporter, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets client: %w", err)
	}

	return &SheetsExporter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (e *SheetsExporter) Append(ctx context.Context, roll, fullName string, verifiedAt time.Time) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{
			{roll, fullName, verifiedAt.Format(time.RFC3339)},
		},
	}

	_, err := e.svc.Spreadsheets.Values.
		Append(e.spreadsheetID, "Attendance!A:C", values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append attendance row: %w", err)
	}
	return nil
}
