package sheets

import (
	"context"
	"fmt"
	"strings"

	apperrors "capi-onboarding-backend/internal/errors"
)

// record is one data row keyed by column name
type record map[string]string

type row struct {
	number int
	values record
}

type snapshot struct {
	header []string
	rows   []row
	// noHeader is set when the tab is completely empty
	noHeader bool
}

// table reads and writes one tab. Rows are addressed by their sheet row number,
// which is only valid until the next delete; callers hold the store lock.
type table struct {
	client  Client
	name    string
	columns []string
}

func (t *table) read(ctx context.Context) (*snapshot, error) {
	values, err := t.client.Read(ctx, t.name)
	if err != nil {
		return nil, apperrors.NewPersistenceError("read "+t.name, err)
	}
	snap := &snapshot{header: t.columns}
	if len(values) == 0 {
		snap.noHeader = true
		return snap, nil
	}

	snap.header = make([]string, len(values[0]))
	for i, cell := range values[0] {
		snap.header[i] = strings.TrimSpace(cellString(cell))
	}
	for i, raw := range values[1:] {
		r := row{number: i + 2, values: make(record, len(snap.header))}
		empty := true
		for j, col := range snap.header {
			if j < len(raw) {
				v := cellString(raw[j])
				r.values[col] = v
				if v != "" {
					empty = false
				}
			}
		}
		if !empty {
			snap.rows = append(snap.rows, r)
		}
	}
	return snap, nil
}

func (t *table) list(ctx context.Context, match func(record) bool) ([]record, error) {
	snap, err := t.read(ctx)
	if err != nil {
		return nil, err
	}
	var out []record
	for _, r := range snap.rows {
		if match == nil || match(r.values) {
			out = append(out, r.values)
		}
	}
	return out, nil
}

func (t *table) find(ctx context.Context, match func(record) bool) (*snapshot, *row, error) {
	snap, err := t.read(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range snap.rows {
		if match(snap.rows[i].values) {
			return snap, &snap.rows[i], nil
		}
	}
	return snap, nil, nil
}

func (t *table) append(ctx context.Context, snap *snapshot, values record) error {
	if snap.noHeader {
		if err := t.client.Update(ctx, t.name, 1, encode(t.columns, headerRecord(t.columns))); err != nil {
			return apperrors.NewPersistenceError("write header "+t.name, err)
		}
		snap.noHeader = false
	}
	if err := t.client.Append(ctx, t.name, encode(snap.header, values)); err != nil {
		return apperrors.NewPersistenceError("append "+t.name, err)
	}
	return nil
}

func (t *table) update(ctx context.Context, header []string, number int, values record) error {
	if err := t.client.Update(ctx, t.name, number, encode(header, values)); err != nil {
		return apperrors.NewPersistenceError("update "+t.name, err)
	}
	return nil
}

func (t *table) delete(ctx context.Context, number int) error {
	if err := t.client.DeleteRow(ctx, t.name, number); err != nil {
		return apperrors.NewPersistenceError("delete from "+t.name, err)
	}
	return nil
}

// upsert updates the first row matching match, or appends a new one.
// An existing row keeps its id. It returns the row as stored.
func (t *table) upsert(ctx context.Context, match func(record) bool, values record) (record, bool, error) {
	snap, existing, err := t.find(ctx, match)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return values, true, t.append(ctx, snap, values)
	}
	merged := make(record, len(existing.values)+len(values))
	for k, v := range existing.values {
		merged[k] = v
	}
	for k, v := range values {
		if k == "id" && merged[k] != "" {
			continue
		}
		merged[k] = v
	}
	return merged, false, t.update(ctx, snap.header, existing.number, merged)
}

// remove deletes the first row matching match and reports whether one existed
func (t *table) remove(ctx context.Context, match func(record) bool) (bool, error) {
	_, existing, err := t.find(ctx, match)
	if err != nil || existing == nil {
		return false, err
	}
	return true, t.delete(ctx, existing.number)
}

// ensureHeader writes the header row into an empty tab
func (t *table) ensureHeader(ctx context.Context) (bool, error) {
	if err := t.client.EnsureSheet(ctx, t.name); err != nil {
		return false, apperrors.NewPersistenceError("ensure sheet "+t.name, err)
	}
	values, err := t.client.Read(ctx, t.name)
	if err != nil {
		return false, apperrors.NewPersistenceError("read "+t.name, err)
	}
	if len(values) > 0 {
		return false, nil
	}
	if err := t.client.Update(ctx, t.name, 1, encode(t.columns, headerRecord(t.columns))); err != nil {
		return false, apperrors.NewPersistenceError("write header "+t.name, err)
	}
	return true, nil
}

func headerRecord(columns []string) record {
	r := make(record, len(columns))
	for _, c := range columns {
		r[c] = c
	}
	return r
}

func encode(header []string, values record) []interface{} {
	out := make([]interface{}, len(header))
	for i, col := range header {
		out[i] = values[col]
	}
	return out
}

func cellString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
