package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

const (
	// DefaultSheetsBaseURL is the Google Sheets v4 REST endpoint.
	DefaultSheetsBaseURL = "https://sheets.googleapis.com/v4"
	// ReadOnlyScope grants read access to spreadsheets.
	ReadOnlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

	maxErrorBody = 512
)

// LoadCredentials parses service-account JSON into a read-only JWT config.
func LoadCredentials(raw string) (*jwt.Config, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrMissingCredentials
	}
	cfg, err := google.JWTConfigFromJSON([]byte(raw), ReadOnlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	return cfg, nil
}

// SheetsClient reads one sheet of a Google spreadsheet through the values API.
type SheetsClient struct {
	// HTTPClient sends requests. It must attach credentials.
	HTTPClient *http.Client
	// BaseURL overrides DefaultSheetsBaseURL.
	BaseURL string
	// SpreadsheetID is the spreadsheet key from its URL.
	SpreadsheetID string
	// Sheet is the worksheet title.
	Sheet string
}

// NewSheetsClient returns a client authorized with read-only service-account credentials.
func NewSheetsClient(ctx context.Context, credentialsJSON, spreadsheetID, sheet string) (*SheetsClient, error) {
	cfg, err := LoadCredentials(credentialsJSON)
	if err != nil {
		return nil, err
	}
	return &SheetsClient{
		HTTPClient:    cfg.Client(ctx),
		SpreadsheetID: spreadsheetID,
		Sheet:         sheet,
	}, nil
}

type valueRange struct {
	Range          string  `json:"range"`
	MajorDimension string  `json:"majorDimension"`
	Values         [][]any `json:"values"`
}

// ReadGrid fetches every populated row of the sheet as formatted text.
func (c *SheetsClient) ReadGrid(ctx context.Context) ([][]string, error) {
	if c.SpreadsheetID == "" {
		return nil, ErrMissingSpreadsheetID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.valuesURL(), nil)
	if err != nil {
		return nil, err
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %q: %w", c.Sheet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))
		if resp.StatusCode == http.StatusBadRequest && strings.Contains(msg, "Unable to parse range") {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, c.Sheet)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: msg}
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode sheet values: %w", err)
	}

	rows := make([][]string, len(vr.Values))
	for i, row := range vr.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellText(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (c *SheetsClient) valuesURL() string {
	base := c.BaseURL
	if base == "" {
		base = DefaultSheetsBaseURL
	}
	q := url.Values{}
	q.Set("majorDimension", "ROWS")
	q.Set("valueRenderOption", "FORMATTED_VALUE")
	return fmt.Sprintf("%s/spreadsheets/%s/values/%s?%s",
		strings.TrimRight(base, "/"),
		url.PathEscape(c.SpreadsheetID),
		url.PathEscape(sheetRange(c.Sheet)),
		q.Encode())
}

// sheetRange quotes a sheet title as an A1 range covering the whole sheet.
func sheetRange(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// cellText renders a JSON cell value the way the sheet displays it.
func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(val)
	}
}

func (c *SheetsClient) String() string {
	return fmt.Sprintf("spreadsheet %s sheet %q", c.SpreadsheetID, c.Sheet)
}
