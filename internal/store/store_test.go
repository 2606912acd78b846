package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Driver() == nil {
		t.Fatal("expected non-nil driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationsCreateTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{usersTable, llmEventsTable, authEventsTable, "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.UserRepo().Create(ctx, &UserRecord{ID: "u1", Name: "A", Email: "a@example.com", PasswordHash: "x", UserType: "in_education"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	users, err := s.UserRepo().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("users after reopen = %d, want 1", len(users))
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	created := time.Now().UTC().Truncate(time.Millisecond)
	u := &UserRecord{
		ID:           "u1",
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "hash",
		UserType:     "completed_education",
		Verified:     true,
		CreatedAt:    created,
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ByEmail(ctx, "ASHA@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if got.ID != "u1" || got.Name != "Asha" || got.UserType != "completed_education" || !got.Verified {
		t.Errorf("unexpected user %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created)
	}
	if !got.LastSignInAt.IsZero() {
		t.Errorf("expected zero last sign-in, got %v", got.LastSignInAt)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &UserRecord{ID: "u1", Name: "A", Email: "dup@example.com", PasswordHash: "x", UserType: "in_education"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, &UserRecord{ID: "u2", Name: "B", Email: "Dup@Example.com", PasswordHash: "y", UserType: "in_education"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.UserRepo().ByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	err = s.UserRepo().TouchSignIn(context.Background(), "missing", time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound from touch, got %v", err)
	}
}

func TestUserTouchSignInAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, email := range []string{"b@example.com", "a@example.com"} {
		err := repo.Create(ctx, &UserRecord{
			ID: email, Name: email, Email: email, PasswordHash: "x",
			UserType: "in_education", CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}

	at := base.Add(time.Minute)
	if err := repo.TouchSignIn(ctx, "a@example.com", at); err != nil {
		t.Fatalf("touch: %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len = %d, want 2", len(users))
	}
	if users[0].Email != "b@example.com" {
		t.Errorf("expected oldest first, got %s", users[0].Email)
	}
	if !users[1].LastSignInAt.Equal(at) {
		t.Errorf("last sign-in = %v, want %v", users[1].LastSignInAt, at)
	}
}

func TestLLMEventsAppendQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "recommendations", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{Provider: "anthropic", Model: "m1", Purpose: "recommendations", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "other", InputTokens: 10, OutputTokens: 0, LatencyMs: 50, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Model != "m2" || got[0].Success || got[0].ErrorMessage != "boom" {
		t.Errorf("expected newest first, got %+v", got[0])
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("sequences not descending: %d, %d", got[0].Sequence, got[1].Sequence)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited len = %d, want 1", len(limited))
	}

	recs, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "recommendations", Limit: 1})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(recs) != 1 || recs[0].Purpose != "recommendations" || recs[0].InputTokens != 300 {
		t.Errorf("purpose filter should apply before the limit, got %+v", recs)
	}

	first, err := repo.GetLLMEvent(ctx, got[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first == nil || first.RequestBody != "req" || first.ResponseBody != "resp" {
		t.Errorf("unexpected event %+v", first)
	}
	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("expected nil, nil for missing event; got %v, %v", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	rec := byPurpose[1]
	if rec.Purpose != "recommendations" || rec.Calls != 2 || rec.InputTokens != 400 || rec.OutputTokens != 200 || rec.AvgLatencyMs != 300 {
		t.Errorf("unexpected usage %+v", rec)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "m1" || byModel[0].Calls != 2 {
		t.Errorf("unexpected model usage %+v", byModel)
	}
}

func TestAuthEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAuthEvent(ctx, AuthEventData{Kind: AuthSignUp, Email: "a@example.com", Success: true}); err != nil {
		t.Fatalf("append auth: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "p", Model: "m", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendAuthEvent(ctx, AuthEventData{Kind: AuthSignIn, Email: "a@example.com", ErrorMessage: "bad password"}); err != nil {
		t.Fatalf("append auth: %v", err)
	}

	got, err := repo.QueryAuthEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Kind != AuthSignIn || got[0].Success || got[0].Sequence != 3 {
		t.Errorf("unexpected newest event %+v", got[0])
	}
	if got[1].Kind != AuthSignUp || !got[1].Success || got[1].Sequence != 1 {
		t.Errorf("unexpected oldest event %+v", got[1])
	}

	after, err := repo.QueryAuthEvents(ctx, QueryOpts{After: 1})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].Sequence != 3 {
		t.Errorf("expected only sequence 3 after 1, got %+v", after)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
