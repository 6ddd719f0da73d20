package sheets

import (
	"context"
	"sort"
	"sync"
	"time"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/repository"
)

var (
	_ repository.ClientRepositoryInterface            = (*ClientRepository)(nil)
	_ repository.PlatformRepositoryInterface          = (*PlatformRepository)(nil)
	_ repository.StepProgressRepositoryInterface      = (*StepProgressRepository)(nil)
	_ repository.ChecklistProgressRepositoryInterface = (*ChecklistProgressRepository)(nil)
	_ repository.NoteRepositoryInterface              = (*NoteRepository)(nil)
)

type backend struct {
	client Client
	// mu serializes read-modify-write cycles so row numbers stay valid in-process
	mu sync.Mutex

	clients   *table
	platforms *table
	steps     *table
	items     *table
	notes     *table
}

func newBackend(client Client) *backend {
	return &backend{
		client:    client,
		clients:   &table{client: client, name: SheetClients, columns: clientColumns},
		platforms: &table{client: client, name: SheetClientPlatforms, columns: clientPlatformColumns},
		steps:     &table{client: client, name: SheetStepProgress, columns: stepProgressColumns},
		items:     &table{client: client, name: SheetChecklistProgress, columns: checklistProgressColumns},
		notes:     &table{client: client, name: SheetNotes, columns: noteColumns},
	}
}

// NewStore builds a Store backed by the given spreadsheet client
func NewStore(client Client) *repository.Store {
	b := newBackend(client)
	return &repository.Store{
		Driver:            "sheets",
		Clients:           &ClientRepository{b: b},
		Platforms:         &PlatformRepository{b: b},
		StepProgress:      &StepProgressRepository{b: b},
		ChecklistProgress: &ChecklistProgressRepository{b: b},
		Notes:             &NoteRepository{b: b},
		Health:            &health{b: b},
	}
}

// EnsureHeaders creates missing tabs and writes header rows into empty ones.
// It returns the names of the tabs it initialised.
func EnsureHeaders(ctx context.Context, client Client) ([]string, error) {
	b := newBackend(client)
	var written []string
	for _, t := range []*table{b.clients, b.platforms, b.steps, b.items, b.notes} {
		ok, err := t.ensureHeader(ctx)
		if err != nil {
			return written, err
		}
		if ok {
			written = append(written, t.name)
		}
	}
	return written, nil
}

type health struct {
	b *backend
}

func (h *health) Ping(ctx context.Context) error {
	return apperrors.NewPersistenceError("ping", h.b.client.Ping(ctx))
}

// ClientRepository stores clients in the Clients tab
type ClientRepository struct {
	b *backend
}

func matchClient(id string) func(record) bool {
	return func(r record) bool { return r["client_id"] == id }
}

// GetAll returns every client in sheet order
func (r *ClientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	rows, err := r.b.clients.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	clients := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, decodeClient(row))
	}
	return clients, nil
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	_, row, err := r.b.clients.find(ctx, matchClient(id))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.ErrClientNotFound
	}
	client := decodeClient(row.values)
	return &client, nil
}

// Create appends a client row
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if client.ID == "" {
		client.ID = models.NewID()
	}
	snap, existing, err := r.b.clients.find(ctx, matchClient(client.ID))
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrClientExists
	}
	now := time.Now().UTC()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now
	return r.b.clients.append(ctx, snap, encodeClient(client))
}

// Update rewrites an existing client row
func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	snap, existing, err := r.b.clients.find(ctx, matchClient(client.ID))
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrClientNotFound
	}
	client.CreatedAt = parseTime(existing.values["created_at"])
	client.UpdatedAt = time.Now().UTC()
	return r.b.clients.update(ctx, snap.header, existing.number, encodeClient(client))
}

// UpdateStatus sets the status column of a client
func (r *ClientRepository) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	snap, existing, err := r.b.clients.find(ctx, matchClient(id))
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrClientNotFound
	}
	existing.values["status"] = string(status)
	existing.values["updated_at"] = formatTime(time.Now().UTC())
	return r.b.clients.update(ctx, snap.header, existing.number, existing.values)
}

// AdvanceStatus rewrites the status column only while it still reads from
func (r *ClientRepository) AdvanceStatus(ctx context.Context, id string, from, to models.Status) (bool, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	snap, existing, err := r.b.clients.find(ctx, matchClient(id))
	if err != nil {
		return false, err
	}
	if existing == nil || models.Status(existing.values["status"]) != from {
		return false, nil
	}
	existing.values["status"] = string(to)
	existing.values["updated_at"] = formatTime(time.Now().UTC())
	if err := r.b.clients.update(ctx, snap.header, existing.number, existing.values); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the client row
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	deleted, err := r.b.clients.remove(ctx, matchClient(id))
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrClientNotFound
	}
	return nil
}

// PlatformRepository stores platform instances in the ClientPlatforms tab
type PlatformRepository struct {
	b *backend
}

func matchPlatform(clientID, platform string) func(record) bool {
	return func(r record) bool { return r["client_id"] == clientID && r["platform"] == platform }
}

// GetByClientID returns the platforms attached to a client
func (r *PlatformRepository) GetByClientID(ctx context.Context, clientID string) ([]models.ClientPlatform, error) {
	rows, err := r.b.platforms.list(ctx, func(rec record) bool { return rec["client_id"] == clientID })
	if err != nil {
		return nil, err
	}
	out := make([]models.ClientPlatform, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeClientPlatform(row))
	}
	return out, nil
}

// GetByClientAndPlatform retrieves one platform instance
func (r *PlatformRepository) GetByClientAndPlatform(ctx context.Context, clientID, platform string) (*models.ClientPlatform, error) {
	_, row, err := r.b.platforms.find(ctx, matchPlatform(clientID, platform))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.ErrPlatformNotFound
	}
	p := decodeClientPlatform(row.values)
	return &p, nil
}

// Create appends a platform instance row
func (r *PlatformRepository) Create(ctx context.Context, platform *models.ClientPlatform) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	snap, existing, err := r.b.platforms.find(ctx, matchPlatform(platform.ClientID, platform.Platform))
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrPlatformExists
	}
	if platform.ID == "" {
		platform.ID = models.NewID()
	}
	return r.b.platforms.append(ctx, snap, encodeClientPlatform(platform))
}

// UpdateStatus sets the status column of a platform instance
func (r *PlatformRepository) UpdateStatus(ctx context.Context, clientID, platform string, status models.Status) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	snap, existing, err := r.b.platforms.find(ctx, matchPlatform(clientID, platform))
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrPlatformNotFound
	}
	existing.values["status"] = string(status)
	if status == models.StatusCompleted {
		existing.values["completed_at"] = formatTime(time.Now().UTC())
	}
	return r.b.platforms.update(ctx, snap.header, existing.number, existing.values)
}

// AdvanceStatus rewrites the status column only while it still reads from
func (r *PlatformRepository) AdvanceStatus(ctx context.Context, clientID, platform string, from, to models.Status) (bool, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	snap, existing, err := r.b.platforms.find(ctx, matchPlatform(clientID, platform))
	if err != nil {
		return false, err
	}
	if existing == nil || models.Status(existing.values["status"]) != from {
		return false, nil
	}
	existing.values["status"] = string(to)
	if to == models.StatusCompleted {
		existing.values["completed_at"] = formatTime(time.Now().UTC())
	}
	if err := r.b.platforms.update(ctx, snap.header, existing.number, existing.values); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a platform instance row
func (r *PlatformRepository) Delete(ctx context.Context, clientID, platform string) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	deleted, err := r.b.platforms.remove(ctx, matchPlatform(clientID, platform))
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrPlatformNotFound
	}
	return nil
}

// CountByClient aggregates platform totals per client from one read of the tab
func (r *PlatformRepository) CountByClient(ctx context.Context) (map[string]models.PlatformCounts, error) {
	rows, err := r.b.platforms.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	counts := map[string]models.PlatformCounts{}
	for _, row := range rows {
		c := counts[row["client_id"]]
		c.Total++
		if row["status"] == string(models.StatusCompleted) {
			c.Completed++
		}
		counts[row["client_id"]] = c
	}
	return counts, nil
}

// StepProgressRepository stores step rows in the StepProgress tab
type StepProgressRepository struct {
	b *backend
}

func (r *StepProgressRepository) listWhere(ctx context.Context, match func(record) bool) ([]models.StepProgress, error) {
	rows, err := r.b.steps.list(ctx, match)
	if err != nil {
		return nil, err
	}
	out := make([]models.StepProgress, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeStepProgress(row))
	}
	return out, nil
}

// GetByClientID returns every step row of a client
func (r *StepProgressRepository) GetByClientID(ctx context.Context, clientID string) ([]models.StepProgress, error) {
	return r.listWhere(ctx, func(rec record) bool { return rec["client_id"] == clientID })
}

// GetByPlatform returns the step rows of one platform instance
func (r *StepProgressRepository) GetByPlatform(ctx context.Context, clientID, platform string) ([]models.StepProgress, error) {
	return r.listWhere(ctx, func(rec record) bool { return rec["client_id"] == clientID && rec["platform"] == platform })
}

// Upsert inserts or refreshes the step row
func (r *StepProgressRepository) Upsert(ctx context.Context, progress *models.StepProgress) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if progress.ID == "" {
		progress.ID = models.NewID()
	}
	values := encodeStepProgress(progress)
	key := models.StepKey{ClientID: progress.ClientID, Platform: progress.Platform, StepID: progress.StepID}
	stored, created, err := r.b.steps.upsert(ctx, matchStep(key), values)
	if err != nil {
		return err
	}
	if !created {
		progress.ID = stored["id"]
	}
	return nil
}

// Delete removes the step row
func (r *StepProgressRepository) Delete(ctx context.Context, key models.StepKey) (bool, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.steps.remove(ctx, matchStep(key))
}

// ChecklistProgressRepository stores item rows in the ChecklistProgress tab
type ChecklistProgressRepository struct {
	b *backend
}

// GetByStep returns the completed items of a step ordered by index
func (r *ChecklistProgressRepository) GetByStep(ctx context.Context, key models.StepKey) ([]models.ChecklistProgress, error) {
	rows, err := r.b.items.list(ctx, matchStep(key))
	if err != nil {
		return nil, err
	}
	out := make([]models.ChecklistProgress, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeChecklistProgress(row))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ItemIndex < out[j].ItemIndex })
	return out, nil
}

// Upsert inserts or refreshes the item row
func (r *ChecklistProgressRepository) Upsert(ctx context.Context, progress *models.ChecklistProgress) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if progress.ID == "" {
		progress.ID = models.NewID()
	}
	key := models.ItemKey{
		StepKey:   models.StepKey{ClientID: progress.ClientID, Platform: progress.Platform, StepID: progress.StepID},
		ItemIndex: progress.ItemIndex,
	}
	stored, created, err := r.b.items.upsert(ctx, matchItem(key), encodeChecklistProgress(progress))
	if err != nil {
		return err
	}
	if !created {
		progress.ID = stored["id"]
	}
	return nil
}

// Delete removes the item row
func (r *ChecklistProgressRepository) Delete(ctx context.Context, key models.ItemKey) (bool, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.items.remove(ctx, matchItem(key))
}

// NoteRepository stores notes in the Notes tab
type NoteRepository struct {
	b *backend
}

// Find returns the notes addressed by key
func (r *NoteRepository) Find(ctx context.Context, key models.NoteKey) ([]models.Note, error) {
	rows, err := r.b.notes.list(ctx, matchNote(key))
	if err != nil {
		return nil, err
	}
	out := make([]models.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeNote(row))
	}
	return out, nil
}

// Upsert inserts the note or overwrites the existing one
func (r *NoteRepository) Upsert(ctx context.Context, note *models.Note) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if note.ID == "" {
		note.ID = models.NewID()
	}
	key := models.NoteKey{
		StepKey:   models.StepKey{ClientID: note.ClientID, Platform: note.Platform, StepID: note.StepID},
		ItemIndex: note.ItemIndex,
	}
	stored, created, err := r.b.notes.upsert(ctx, matchNote(key), encodeNote(note))
	if err != nil {
		return err
	}
	if !created {
		note.ID = stored["id"]
	}
	return nil
}

// Delete removes the note addressed by key
func (r *NoteRepository) Delete(ctx context.Context, key models.NoteKey) (bool, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.notes.remove(ctx, matchNote(key))
}
