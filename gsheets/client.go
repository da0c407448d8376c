package gsheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Config identifies one tabular range in one spreadsheet, read with a
// service account. Everything comes from env; LoadConfig reports every
// missing item in a single error so a misconfigured deploy fails fast.
type Config struct {
	SpreadsheetId   string
	TabName         string
	ReadRange       string
	CredentialsJSON string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		SpreadsheetId:   strings.TrimSpace(os.Getenv("GSHEET_SPREADSHEET_ID")),
		TabName:         strings.TrimSpace(os.Getenv("GSHEET_TAB_NAME")),
		ReadRange:       strings.TrimSpace(os.Getenv("GSHEET_RANGE")),
		CredentialsJSON: os.Getenv("GSHEET_CREDENTIALS_JSON"),
	}

	var missing []string
	if cfg.SpreadsheetId == "" {
		missing = append(missing, "GSHEET_SPREADSHEET_ID")
	}
	if cfg.TabName == "" {
		missing = append(missing, "GSHEET_TAB_NAME")
	}
	if cfg.ReadRange == "" {
		missing = append(missing, "GSHEET_RANGE")
	}
	if strings.TrimSpace(cfg.CredentialsJSON) == "" {
		missing = append(missing, "GSHEET_CREDENTIALS_JSON")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("google sheets config incomplete, missing: %s", strings.Join(missing, ", "))
	}
	if !strings.Contains(cfg.CredentialsJSON, "private_key") {
		return nil, errors.New("GSHEET_CREDENTIALS_JSON does not look like a service account key (no private_key field)")
	}
	return cfg, nil
}

// ReadTable fetches the configured range and splits it into a header row
// plus data rows, every cell rendered as a string.
func ReadTable(ctx context.Context, cfg *Config) ([]string, [][]string, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, nil, err
	}

	readRange := cfg.TabName + "!" + cfg.ReadRange
	resp, err := service.Spreadsheets.Values.Get(cfg.SpreadsheetId, readRange).Context(ctx).Do()
	if err != nil {
		return nil, nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil, errors.New("sheet range is empty")
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = fmt.Sprint(cell)
	}

	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make([]string, len(header))
		for i := range header {
			if i < len(raw) {
				row[i] = fmt.Sprint(raw[i])
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
