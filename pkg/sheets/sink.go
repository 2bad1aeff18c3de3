package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/perarneng/decksheet/pkg/interfaces"
)

// ErrAppend marks append failures. Row-scoped: the row is lost, the run
// continues.
var ErrAppend = errors.New("row append failed")

// Sink appends rows to one fixed spreadsheet range. Appends are not
// idempotent; re-running the pipeline on the same email adds a
// duplicate row.
type Sink struct {
	service       *sheets.Service
	spreadsheetID string
	writeRange    string
}

func NewSink(ctx context.Context, httpClient *http.Client, spreadsheetID, writeRange string) (interfaces.RowAppender, error) {
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %v", err)
	}
	return &Sink{service: srv, spreadsheetID: spreadsheetID, writeRange: writeRange}, nil
}

func (s *Sink) AppendRow(ctx context.Context, row []string) (int64, error) {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}
	body := &sheets.ValueRange{Values: [][]interface{}{values}}

	resp, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, s.writeRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAppend, err)
	}
	if resp.Updates == nil {
		return 0, nil
	}
	return resp.Updates.UpdatedRows, nil
}
