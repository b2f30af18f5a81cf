package dictionary

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// identifier guards the table and column names spliced into the query;
// BigQuery does not accept them as parameters.
var identifier = regexp.MustCompile(`^[A-Za-z0-9_\-]+(\.[A-Za-z0-9_\-]+){0,2}$`)

// BigQuery reads words from one string column of a BigQuery table.
type BigQuery struct {
	client *bigquery.Client
	table  string
	column string
}

// NewBigQuery creates a client for projectID. table is "dataset.table" or
// "project.dataset.table".
func NewBigQuery(ctx context.Context, projectID, table, column string) (*BigQuery, error) {
	if column == "" {
		column = "word"
	}
	if !identifier.MatchString(table) || !identifier.MatchString(column) {
		return nil, fmt.Errorf("bigquery: invalid table %q or column %q", table, column)
	}
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	return &BigQuery{client: client, table: table, column: column}, nil
}

// bigQueryStatement selects trimmed words of a given rune length. The table
// has no natural order, so rows come back in whatever order BigQuery scans.
func bigQueryStatement(table, column string) string {
	return fmt.Sprintf(
		"SELECT TRIM(%[2]s) AS word FROM `%[1]s` WHERE CHAR_LENGTH(TRIM(%[2]s)) = @length",
		table, column)
}

func (b *BigQuery) ExtractWords(ctx context.Context, length int) ([]string, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	q := b.client.Query(bigQueryStatement(b.table, b.column))
	q.Parameters = []bigquery.QueryParameter{{Name: "length", Value: length}}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Read: %w", err)
	}

	out := []string{}
	for {
		var row struct {
			Word string `bigquery:"word"`
		}
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		out = append(out, row.Word)
	}
	return out, nil
}

// Close releases the client.
func (b *BigQuery) Close() error { return b.client.Close() }
