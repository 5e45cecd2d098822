package usecase

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"sync"
	"time"

	"letterhead-service/internal/data/entity"
	"letterhead-service/internal/data/repository"
)

// =============================================================================
// Users
// =============================================================================

type memoryUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int64

	findErr   error
	createErr error
	creates   int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*entity.User{}}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}

	r.nextID++
	user.ID = r.nextID
	user.Status = entity.UserStatusActive
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) setStatus(email string, status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[email].Status = status
}

// =============================================================================
// Letterheads
// =============================================================================

// memoryLetterheadRepo follows the SQL in letterhead_repo.go: COALESCE on
// logo_url, update-all-matching-rows, insert when nothing matched.
type memoryLetterheadRepo struct {
	mu     sync.Mutex
	rows   []*entity.Letterhead
	nextID int64
	clock  time.Time

	err         error
	upsertCalls int
	lastLogoURL *string
}

func newMemoryLetterheadRepo() *memoryLetterheadRepo {
	return &memoryLetterheadRepo{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memoryLetterheadRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memoryLetterheadRepo) Create(ctx context.Context, letterhead *entity.Letterhead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.nextID++
	now := r.tick()
	letterhead.ID = r.nextID
	letterhead.CreatedAt = now
	letterhead.UpdatedAt = now
	stored := *letterhead
	r.rows = append(r.rows, &stored)
	return nil
}

func (r *memoryLetterheadRepo) FindByID(ctx context.Context, id int64) (*entity.Letterhead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	for _, row := range r.rows {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryLetterheadRepo) FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Letterhead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Letterhead, 0)
	for _, row := range r.rows {
		if row.UserEmail != nil && *row.UserEmail == ownerEmail {
			copied := *row
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryLetterheadRepo) UpsertByOwner(ctx context.Context, ownerEmail string, fields entity.LetterheadFields, logoURL *string) (*entity.Letterhead, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.upsertCalls++
	r.lastLogoURL = logoURL
	if r.err != nil {
		return nil, false, r.err
	}

	now := r.tick()
	var first *entity.Letterhead
	for _, row := range r.rows {
		if row.UserEmail == nil || *row.UserEmail != ownerEmail {
			continue
		}
		row.LetterheadFields = fields
		if logoURL != nil {
			row.LogoURL = logoURL
		}
		row.UpdatedAt = now
		if first == nil {
			copied := *row
			first = &copied
		}
	}
	if first != nil {
		return first, false, nil
	}

	r.nextID++
	owner := ownerEmail
	row := &entity.Letterhead{
		Base:             entity.Base{ID: r.nextID, CreatedAt: now, UpdatedAt: now},
		UserEmail:        &owner,
		LogoURL:          logoURL,
		LetterheadFields: fields,
	}
	r.rows = append(r.rows, row)
	copied := *row
	return &copied, true, nil
}

func (r *memoryLetterheadRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

// =============================================================================
// Files
// =============================================================================

type memoryFiles struct {
	files map[string]string
	err   error
}

func newMemoryFiles() *memoryFiles {
	return &memoryFiles{files: map[string]string{}}
}

func (f *memoryFiles) Save(ctx context.Context, name string, src io.Reader) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.files[name]; ok {
		return fmt.Errorf("create %s: %w", name, fs.ErrExist)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	f.files[name] = string(data)
	return nil
}
