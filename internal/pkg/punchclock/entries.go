package punchclock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
)

type EntryEndpoint struct {
	transport *Transport
}

func employeePath(prefix, code string) string {
	return prefix + url.PathEscape(code)
}

// ListByEmployee implements entry.EntryRepository. The API answers with a
// single object when the employee has one entry and with an array otherwise;
// both come back as a slice tagged with the employee code.
func (e *EntryEndpoint) ListByEmployee(ctx context.Context, employeeCode string) ([]entry.PunchEntry, error) {
	path := employeePath("/employee/", employeeCode)

	body, err := e.transport.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	entries, err := normalizeEntries(path, body)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].EmployeeCode == "" {
			entries[i].EmployeeCode = employeeCode
		}
	}
	return entries, nil
}

func normalizeEntries(path string, body []byte) ([]entry.PunchEntry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []entry.PunchEntry{}, nil
	}

	switch trimmed[0] {
	case '[':
		var entries []entry.PunchEntry
		if err := decode(path, trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	case '{':
		var single entry.PunchEntry
		if err := decode(path, trimmed, &single); err != nil {
			return nil, err
		}
		return []entry.PunchEntry{single}, nil
	}

	return nil, &MalformedResponseError{
		Path: path,
		Err:  fmt.Errorf("expected entry object or array, got %q", firstToken(trimmed)),
	}
}

func firstToken(body []byte) string {
	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return string(body[:1])
	}
	return fmt.Sprint(tok)
}

// Add implements entry.EntryRepository.
func (e *EntryEndpoint) Add(ctx context.Context, employeeCode string, patch entry.AddPatch) (string, error) {
	path := employeePath("/employee/add/", employeeCode)
	body, err := e.transport.Post(ctx, path, patch)
	if err != nil {
		return "", err
	}
	return messageOf(path, body)
}

// Update implements entry.EntryRepository.
func (e *EntryEndpoint) Update(ctx context.Context, employeeCode string, patch entry.UpdatePatch) (string, error) {
	path := employeePath("/employee/", employeeCode)
	body, err := e.transport.Put(ctx, path, patch)
	if err != nil {
		return "", err
	}
	return messageOf(path, body)
}

// Delete implements entry.EntryRepository.
func (e *EntryEndpoint) Delete(ctx context.Context, key entry.Key) (string, error) {
	path := employeePath("/employee/", key.EmployeeCode)
	body, err := e.transport.Delete(ctx, path, map[string]string{
		"date":    key.Date,
		"punchIn": key.PunchIn,
	})
	if err != nil {
		return "", err
	}
	return messageOf(path, body)
}

// SetApproval implements entry.EntryRepository.
func (e *EntryEndpoint) SetApproval(ctx context.Context, employeeCode string, patch entry.ApprovalPatch) (string, error) {
	path := employeePath("/employee/approval/", employeeCode)
	body, err := e.transport.Post(ctx, path, patch)
	if err != nil {
		return "", err
	}
	return messageOf(path, body)
}

var _ entry.EntryRepository = (*EntryEndpoint)(nil)
