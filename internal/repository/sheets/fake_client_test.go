package sheets

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// fakeClient keeps every tab in memory the way the Sheets API would return it
type fakeClient struct {
	mu     sync.Mutex
	tabs   map[string][][]interface{}
	fail   error
	writes int
}

func newFakeClient(tabs ...string) *fakeClient {
	f := &fakeClient{tabs: map[string][][]interface{}{}}
	for _, t := range tabs {
		f.tabs[t] = nil
	}
	return f
}

func (f *fakeClient) tab(sheet string) ([][]interface{}, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	rows, ok := f.tabs[sheet]
	if !ok {
		return nil, fmt.Errorf("unable to parse range: %s", sheet)
	}
	return rows, nil
}

func (f *fakeClient) Read(_ context.Context, sheet string) ([][]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows, err := f.tab(sheet)
	if err != nil {
		return nil, err
	}
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = append([]interface{}(nil), r...)
	}
	return out, nil
}

func (f *fakeClient) Append(_ context.Context, sheet string, row []interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows, err := f.tab(sheet)
	if err != nil {
		return err
	}
	f.writes++
	f.tabs[sheet] = append(rows, append([]interface{}(nil), row...))
	return nil
}

func (f *fakeClient) Update(_ context.Context, sheet string, rowNumber int, row []interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows, err := f.tab(sheet)
	if err != nil {
		return err
	}
	for len(rows) < rowNumber {
		rows = append(rows, nil)
	}
	f.writes++
	rows[rowNumber-1] = append([]interface{}(nil), row...)
	f.tabs[sheet] = rows
	return nil
}

func (f *fakeClient) DeleteRow(_ context.Context, sheet string, rowNumber int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows, err := f.tab(sheet)
	if err != nil {
		return err
	}
	if rowNumber < 1 || rowNumber > len(rows) {
		return errors.New("row out of range")
	}
	f.writes++
	f.tabs[sheet] = append(rows[:rowNumber-1], rows[rowNumber:]...)
	return nil
}

func (f *fakeClient) EnsureSheet(_ context.Context, sheet string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	if _, ok := f.tabs[sheet]; !ok {
		f.tabs[sheet] = nil
	}
	return nil
}

func (f *fakeClient) Ping(context.Context) error {
	return f.fail
}
