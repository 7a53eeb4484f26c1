package analytics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
	now   time.Time
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

	store, err := Open(s.ctx, filepath.Join(s.T().TempDir(), "visitors.db"))
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreSuite) record(hash, path string, at time.Time) {
	s.Require().NoError(s.store.Record(s.ctx, Visit{
		HashedIP:  hash,
		UserAgent: "test-agent",
		Path:      path,
		Timestamp: at,
	}))
}

func (s *StoreSuite) TestEmptyStats() {
	stats, err := s.store.Stats(s.ctx, s.now)
	s.Require().NoError(err)
	s.Zero(stats.TotalVisitors)
	s.Zero(stats.UniqueVisitors)
	s.Empty(stats.TopPaths)
	s.Empty(stats.RecentVisitors)
}

func (s *StoreSuite) TestStatsWindows() {
	s.record("aaaa", "/", s.now.Add(-time.Hour))
	s.record("aaaa", "/", s.now.Add(-2*time.Hour))
	s.record("bbbb", "/", s.now.Add(-20*time.Hour)) // yesterday
	s.record("cccc", "/404", s.now.Add(-3*24*time.Hour))
	s.record("dddd", "/", s.now.Add(-30*24*time.Hour))

	stats, err := s.store.Stats(s.ctx, s.now)
	s.Require().NoError(err)

	s.Equal(int64(5), stats.TotalVisitors)
	s.Equal(int64(4), stats.UniqueVisitors)
	s.Equal(int64(2), stats.VisitorsToday)
	s.Equal(int64(4), stats.VisitorsThisWeek)
	s.Equal([]PathCount{{Path: "/", Visits: 4}, {Path: "/404", Visits: 1}}, stats.TopPaths)
	s.Len(stats.RecentVisitors, 5)
}

func (s *StoreSuite) TestRecentNewestFirst() {
	s.record("old", "/", s.now.Add(-time.Hour))
	s.record("new", "/", s.now)
	s.record("mid", "/", s.now.Add(-30*time.Minute))

	visits, err := s.store.Recent(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(visits, 2)
	s.Equal("new", visits[0].HashedIP)
	s.Equal("mid", visits[1].HashedIP)
	s.Equal(s.now.Unix(), visits[0].Timestamp.Unix())
	s.Equal("test-agent", visits[0].UserAgent)
}

func (s *StoreSuite) TestCleanup() {
	s.record("keep", "/", s.now.Add(-24*time.Hour))
	s.record("drop", "/", s.now.Add(-400*24*time.Hour))

	removed, err := s.store.Cleanup(s.ctx, s.now.AddDate(0, 0, -365))
	s.Require().NoError(err)
	s.Equal(int64(1), removed)

	visits, err := s.store.Recent(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(visits, 1)
	s.Equal("keep", visits[0].HashedIP)
}

func (s *StoreSuite) TestRecordRequiresHash() {
	err := s.store.Record(s.ctx, Visit{Path: "/"})
	s.ErrorContains(err, "hashed ip is required")
}

func (s *StoreSuite) TestRecordDefaultsTimestamp() {
	s.Require().NoError(s.store.Record(s.ctx, Visit{HashedIP: "abcd", Path: "/"}))
	visits, err := s.store.Recent(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(visits, 1)
	s.WithinDuration(time.Now(), visits[0].Timestamp, time.Minute)
}

func (s *StoreSuite) TestMigrateIsIdempotent() {
	s.Require().NoError(s.store.Migrate(s.ctx))
	s.Require().NoError(s.store.Migrate(s.ctx))
}

func TestHasher(t *testing.T) {
	h := NewHasher("salt")
	a := h.Hash("203.0.113.7")

	if len(a) != 16 {
		t.Fatalf("hash length = %d, want 16", len(a))
	}
	if a != h.Hash("203.0.113.7") {
		t.Fatal("hash is not stable for the same ip")
	}
	if a == NewHasher("other").Hash("203.0.113.7") {
		t.Fatal("salt does not change the hash")
	}
	if a == h.Hash("203.0.113.8") {
		t.Fatal("different ips produced the same hash")
	}
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomToken()
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 64 || a == b {
		t.Fatalf("unexpected tokens %q %q", a, b)
	}
}
