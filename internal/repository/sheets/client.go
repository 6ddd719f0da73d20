// Package sheets persists onboarding data in a Google Spreadsheet, one tab per
// table with a header row naming the columns.
package sheets

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client is the subset of the Sheets API the store needs. Row numbers are
// 1-based as shown in the spreadsheet UI; row 1 holds the header.
type Client interface {
	// Read returns every non-empty row of the tab, header included
	Read(ctx context.Context, sheet string) ([][]interface{}, error)
	Append(ctx context.Context, sheet string, row []interface{}) error
	Update(ctx context.Context, sheet string, rowNumber int, row []interface{}) error
	DeleteRow(ctx context.Context, sheet string, rowNumber int) error
	// EnsureSheet creates the tab when the spreadsheet does not have it yet
	EnsureSheet(ctx context.Context, sheet string) error
	Ping(ctx context.Context) error
}

// APIClient implements Client on top of the Sheets v4 API
type APIClient struct {
	svc           *sheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

var _ Client = (*APIClient)(nil)

// NewAPIClient authenticates as a service account with its email and PEM private key
func NewAPIClient(ctx context.Context, email, privateKey, spreadsheetID string) (*APIClient, error) {
	conf := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &APIClient{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}, nil
}

// Read returns the values of a tab
func (c *APIClient) Read(ctx context.Context, sheet string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheet, err)
	}
	return resp.Values, nil
}

// Append adds a row after the last non-empty row of the tab
func (c *APIClient) Append(ctx context.Context, sheet string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheet, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", sheet, err)
	}
	return nil
}

// Update overwrites the row at rowNumber
func (c *APIClient) Update(ctx context.Context, sheet string, rowNumber int, row []interface{}) error {
	rng := fmt.Sprintf("%s!A%d", sheet, rowNumber)
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}
	return nil
}

// DeleteRow removes the row at rowNumber, shifting later rows up
func (c *APIClient) DeleteRow(ctx context.Context, sheet string, rowNumber int) error {
	sheetID, err := c.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNumber - 1),
					EndIndex:   int64(rowNumber),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete row %d of %s: %w", rowNumber, sheet, err)
	}
	return nil
}

// EnsureSheet adds the tab if it is missing
func (c *APIClient) EnsureSheet(ctx context.Context, sheet string) error {
	if _, err := c.sheetID(ctx, sheet); err == nil {
		return nil
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: sheet}},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("add sheet %s: %w", sheet, err)
	}
	c.mu.Lock()
	c.sheetIDs = nil
	c.mu.Unlock()
	return nil
}

// Ping fetches the spreadsheet id to confirm credentials and access
func (c *APIClient) Ping(ctx context.Context) error {
	_, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("ping spreadsheet: %w", err)
	}
	return nil
}

func (c *APIClient) sheetID(ctx context.Context, sheet string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sheetIDs == nil {
		resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
		if err != nil {
			return 0, fmt.Errorf("load sheet ids: %w", err)
		}
		c.sheetIDs = make(map[string]int64, len(resp.Sheets))
		for _, sh := range resp.Sheets {
			if sh.Properties != nil {
				c.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
			}
		}
	}

	id, ok := c.sheetIDs[sheet]
	if !ok {
		return 0, fmt.Errorf("sheet %q not found", sheet)
	}
	return id, nil
}
