package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	handle, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { handle.Close() })
	return NewRepository(handle)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 2; i++ {
		handle, err := Open(path)
		if err != nil {
			t.Fatalf("Open #%d: %v", i+1, err)
		}
		handle.Close()
	}
}

func TestInsertAndListRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seed := int64(42)
	rec := ImageRecord{
		ID:         "img-1",
		UserID:     "u1",
		UserEmail:  "u1@example.com",
		Prompt:     "red flower",
		ImageURL:   "http://localhost:8000/api/image/u1_abc",
		ImageKey:   "u1_abc",
		Resolution: "512x512",
		Style:      "flower",
		Metadata: Metadata{
			Seed:           &seed,
			AlphaVerified:  true,
			TransparentPct: 61.5,
			Provider:       "synora",
		},
	}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.ListByUser(ctx, "u1", 20, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	r := got[0]
	if r.ID != rec.ID || r.Prompt != rec.Prompt || r.Style != rec.Style || r.ImageKey != rec.ImageKey {
		t.Errorf("record = %+v", r)
	}
	if r.Metadata.Seed == nil || *r.Metadata.Seed != 42 {
		t.Errorf("seed = %v, want 42", r.Metadata.Seed)
	}
	if !r.Metadata.AlphaVerified || r.Metadata.TransparentPct != 61.5 {
		t.Errorf("metadata = %+v", r.Metadata)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestListByUserOrderAndPaging(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := ImageRecord{
			ID:        string(rune('a' + i)),
			UserID:    "u1",
			Prompt:    "p",
			ImageKey:  "k",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := repo.ListByUser(ctx, "u1", 2, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Newest first; offset 1 skips "e".
	if got[0].ID != "d" || got[1].ID != "c" {
		t.Errorf("ids = %q, %q; want d, c", got[0].ID, got[1].ID)
	}
}

func TestTimestampsWithTrailingZeroNanosRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	// The driver re-renders TIMESTAMP columns on read, trimming trailing
	// nanosecond zeros. Both precisions must survive the round trip.
	stamps := []time.Time{
		time.Date(2026, 8, 1, 12, 3, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 12, 3, 0, 120000000, time.UTC),
	}
	for i, ts := range stamps {
		rec := ImageRecord{
			ID:        string(rune('a' + i)),
			UserID:    "u1",
			Prompt:    "p",
			ImageKey:  "key-" + string(rune('a'+i)),
			CreatedAt: ts,
		}
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := repo.ListByUser(ctx, "u1", 20, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for _, r := range got {
		if r.CreatedAt.IsZero() {
			t.Errorf("record %q: CreatedAt not set", r.ID)
		}
	}

	rec, err := repo.GetByKey(ctx, "key-a")
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if !rec.CreatedAt.Equal(stamps[0]) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, stamps[0])
	}
}

func TestGetByKey(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	if err := repo.Insert(ctx, ImageRecord{ID: "img-1", UserID: "u1", Prompt: "p", ImageKey: "u1_abc"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	rec, err := repo.GetByKey(ctx, "u1_abc")
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if rec.ID != "img-1" {
		t.Errorf("id = %q", rec.ID)
	}

	_, err = repo.GetByKey(ctx, "missing")
	if errors.GetCode(err) != errors.ErrCodeImageNotFound {
		t.Errorf("err = %v, want image not found", err)
	}
}

func TestCountAndStyleCounts(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	recs := []ImageRecord{
		{ID: "1", UserID: "u1", Prompt: "p", ImageKey: "k1", Style: "flower"},
		{ID: "2", UserID: "u1", Prompt: "p", ImageKey: "k2", Style: "flower"},
		{ID: "3", UserID: "u1", Prompt: "p", ImageKey: "k3", Style: "glow"},
		{ID: "4", UserID: "u2", Prompt: "p", ImageKey: "k4", Style: "badge"},
	}
	for _, rec := range recs {
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	n, err := repo.CountByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	counts, err := repo.StyleCounts(ctx, "u1")
	if err != nil {
		t.Fatalf("StyleCounts: %v", err)
	}
	if counts["flower"] != 2 || counts["glow"] != 1 || len(counts) != 2 {
		t.Errorf("counts = %v", counts)
	}
}
