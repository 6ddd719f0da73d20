package sheets

import (
	"strconv"
	"time"

	"capi-onboarding-backend/internal/database/models"
)

// Tab names and column layouts
const (
	SheetClients           = "Clients"
	SheetClientPlatforms   = "ClientPlatforms"
	SheetStepProgress      = "StepProgress"
	SheetChecklistProgress = "ChecklistProgress"
	SheetNotes             = "Notes"
)

var (
	clientColumns            = []string{"client_id", "client_name", "contact_email", "created_at", "status", "notes", "updated_at"}
	clientPlatformColumns    = []string{"id", "client_id", "platform", "status", "started_at", "completed_at"}
	stepProgressColumns      = []string{"id", "client_id", "platform", "step_id", "status", "completed_at", "completed_by"}
	checklistProgressColumns = []string{"id", "client_id", "platform", "step_id", "item_index", "status", "completed_at", "completed_by"}
	noteColumns              = []string{"id", "client_id", "platform", "step_id", "item_index", "note", "updated_at", "updated_by"}
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func formatIndex(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func parseIndex(s string) *int {
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &i
}

func encodeClient(c *models.Client) record {
	return record{
		"client_id":     c.ID,
		"client_name":   c.Name,
		"contact_email": c.Email,
		"created_at":    formatTime(c.CreatedAt),
		"status":        string(c.Status),
		"notes":         c.Notes,
		"updated_at":    formatTime(c.UpdatedAt),
	}
}

func decodeClient(r record) models.Client {
	c := models.Client{
		ID:        r["client_id"],
		Name:      r["client_name"],
		Email:     r["contact_email"],
		CreatedAt: parseTime(r["created_at"]),
		Status:    models.Status(r["status"]),
		Notes:     r["notes"],
		UpdatedAt: parseTime(r["updated_at"]),
	}
	if c.Status == "" {
		c.Status = models.StatusNotStarted
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	return c
}

func encodeClientPlatform(p *models.ClientPlatform) record {
	completed := ""
	if p.CompletedAt != nil {
		completed = formatTime(*p.CompletedAt)
	}
	return record{
		"id":           p.ID,
		"client_id":    p.ClientID,
		"platform":     p.Platform,
		"status":       string(p.Status),
		"started_at":   formatTime(p.StartedAt),
		"completed_at": completed,
	}
}

func decodeClientPlatform(r record) models.ClientPlatform {
	p := models.ClientPlatform{
		ID:        r["id"],
		ClientID:  r["client_id"],
		Platform:  r["platform"],
		Status:    models.Status(r["status"]),
		StartedAt: parseTime(r["started_at"]),
	}
	if p.Status == "" {
		p.Status = models.StatusNotStarted
	}
	if t := parseTime(r["completed_at"]); !t.IsZero() {
		p.CompletedAt = &t
	}
	return p
}

func encodeStepProgress(p *models.StepProgress) record {
	return record{
		"id":           p.ID,
		"client_id":    p.ClientID,
		"platform":     p.Platform,
		"step_id":      p.StepID,
		"status":       string(p.Status),
		"completed_at": formatTime(p.CompletedAt),
		"completed_by": p.CompletedBy,
	}
}

func decodeStepProgress(r record) models.StepProgress {
	return models.StepProgress{
		ID:          r["id"],
		ClientID:    r["client_id"],
		Platform:    r["platform"],
		StepID:      r["step_id"],
		Status:      models.Status(r["status"]),
		CompletedAt: parseTime(r["completed_at"]),
		CompletedBy: r["completed_by"],
	}
}

func encodeChecklistProgress(p *models.ChecklistProgress) record {
	idx := p.ItemIndex
	return record{
		"id":           p.ID,
		"client_id":    p.ClientID,
		"platform":     p.Platform,
		"step_id":      p.StepID,
		"item_index":   formatIndex(&idx),
		"status":       string(p.Status),
		"completed_at": formatTime(p.CompletedAt),
		"completed_by": p.CompletedBy,
	}
}

func decodeChecklistProgress(r record) models.ChecklistProgress {
	p := models.ChecklistProgress{
		ID:          r["id"],
		ClientID:    r["client_id"],
		Platform:    r["platform"],
		StepID:      r["step_id"],
		Status:      models.Status(r["status"]),
		CompletedAt: parseTime(r["completed_at"]),
		CompletedBy: r["completed_by"],
	}
	if idx := parseIndex(r["item_index"]); idx != nil {
		p.ItemIndex = *idx
	}
	return p
}

func encodeNote(n *models.Note) record {
	return record{
		"id":         n.ID,
		"client_id":  n.ClientID,
		"platform":   n.Platform,
		"step_id":    n.StepID,
		"item_index": formatIndex(n.ItemIndex),
		"note":       n.Note,
		"updated_at": formatTime(n.UpdatedAt),
		"updated_by": n.UpdatedBy,
	}
}

func decodeNote(r record) models.Note {
	return models.Note{
		ID:        r["id"],
		ClientID:  r["client_id"],
		Platform:  r["platform"],
		StepID:    r["step_id"],
		ItemIndex: parseIndex(r["item_index"]),
		Note:      r["note"],
		UpdatedAt: parseTime(r["updated_at"]),
		UpdatedBy: r["updated_by"],
	}
}

func matchStep(key models.StepKey) func(record) bool {
	return func(r record) bool {
		return r["client_id"] == key.ClientID && r["platform"] == key.Platform && r["step_id"] == key.StepID
	}
}

func matchItem(key models.ItemKey) func(record) bool {
	step := matchStep(key.StepKey)
	want := strconv.Itoa(key.ItemIndex)
	return func(r record) bool {
		return step(r) && r["item_index"] == want
	}
}

func matchNote(key models.NoteKey) func(record) bool {
	return func(r record) bool {
		return key.Matches(decodeNote(r))
	}
}
