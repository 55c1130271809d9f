package database

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsConfig holds the service-account credentials and the range to read.
type SheetsConfig struct {
	ServiceAccountEmail string
	PrivateKey          string
	SpreadsheetID       string
	Range               string
}

func (c SheetsConfig) validate() error {
	var missing []error
	if c.ServiceAccountEmail == "" {
		missing = append(missing, errors.New("service account email is empty"))
	}
	if c.PrivateKey == "" {
		missing = append(missing, errors.New("private key is empty"))
	}
	if c.SpreadsheetID == "" {
		missing = append(missing, errors.New("spreadsheet id is empty"))
	}
	if c.Range == "" {
		missing = append(missing, errors.New("range is empty"))
	}
	return errors.Join(missing...)
}

// SheetsClient wraps the Google Sheets values API for read-only access.
type SheetsClient struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheetsClient authenticates with a service-account JWT and returns a client
// bound to one spreadsheet range.
func NewSheetsClient(ctx context.Context, cfg SheetsConfig, opts ...option.ClientOption) (*SheetsClient, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid sheets config: %w", err)
	}

	conf := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}

	opts = append([]option.ClientOption{option.WithTokenSource(conf.TokenSource(ctx))}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsClient{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.Range,
	}, nil
}

// ReadRows fetches the configured range. Every cell is rendered as a string.
func (c *SheetsClient) ReadRows(ctx context.Context) ([][]string, error) {
	if c == nil || c.svc == nil {
		return nil, fmt.Errorf("sheets client is nil")
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", c.readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			if cell != nil {
				row[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
