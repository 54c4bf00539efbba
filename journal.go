package callprobe

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const DiagnosticKind = "diagnostic"

var tableNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`) //nolint:gochecknoglobals

// Entry is a row of a Journal.
type Entry struct {
	Stamp   int64   `sql:"stamp"`
	Source  string  `sql:"source"`
	Kind    string  `sql:"kind"`
	Message string  `sql:"message"`
	Report  *string `sql:"report"`
}

// Journal appends probe diagnostics and error reports to a table of a database owned by the caller.
type Journal struct {
	db    *sql.DB
	table string
	now   func() time.Time

	mu  sync.Mutex
	err error
}

func NewJournal(db *sql.DB, table string) (*Journal, error) {
	if !tableNameRegexp.MatchString(table) {
		return nil, newError("callprobe: invalid journal table name %q", table)
	}

	return &Journal{
		db:    db,
		table: table,
		now:   time.Now,
	}, nil
}

func (j *Journal) CreateTable(ctx context.Context) error {
	_, err := j.db.ExecContext(ctx, fmt.Sprintf(`create table if not exists %s (
		stamp   integer not null,
		source  text not null,
		kind    text not null,
		message text not null,
		report  text
	)`, j.table))

	return err
}

func (j *Journal) Append(ctx context.Context, entry Entry) error {
	values, err := SQLValues(entry)
	if err != nil {
		return err
	}

	columns := maps.Keys(values)
	slices.Sort(columns)

	args := make([]any, len(columns))
	for i, column := range columns {
		args[i] = values[column]
	}

	query := fmt.Sprintf(
		"insert into %s (%s) values (%s)",
		j.table,
		strings.Join(columns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", "),
	)

	_, err = j.db.ExecContext(ctx, query, args...)

	return err
}

// AppendRecord appends the summary and the formatted report of rec.
func (j *Journal) AppendRecord(ctx context.Context, source string, rec Record) error {
	report, err := rec.Format()
	if err != nil {
		return err
	}

	return j.Append(ctx, Entry{
		Stamp:   j.now().UnixNano(),
		Source:  source,
		Kind:    rec.Kind,
		Message: rec.Value.Error(),
		Report:  &report,
	})
}

// Entries returns every entry in insertion order.
func (j *Journal) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := j.db.QueryContext(
		ctx,
		fmt.Sprintf("select stamp, source, kind, message, report from %s order by rowid", j.table),
	)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []Entry

	scanner := NewScanner[Entry](rows)

	for rows.Next() {
		entry, err := scanner.Scan()
		if err != nil {
			return nil, err
		}

		result = append(result, entry)
	}

	return result, rows.Err()
}

// Sink returns a Sink appending each label as a diagnostic entry of source.
// The first failure is kept, see Err.
func (j *Journal) Sink(ctx context.Context, source string) Sink {
	return SinkFunc(func(label string) {
		err := j.Append(ctx, Entry{
			Stamp:   j.now().UnixNano(),
			Source:  source,
			Kind:    DiagnosticKind,
			Message: label,
		})
		if err != nil {
			j.setErr(err)
		}
	})
}

// Err returns the first error met by a Sink of j.
func (j *Journal) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.err
}

func (j *Journal) setErr(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.err == nil {
		j.err = err
	}
}
