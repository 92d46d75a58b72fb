package playbackService

import (
	"context"
	"testing"
	"time"

	"VoicePlay/internal/entity"
)

func TestBuildActionStats(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 0, 0, 0, time.UTC)

	actions := []entity.VoiceAction{
		{Command: "play", Success: true, CreatedAt: now.Add(-1 * time.Hour)},
		{Command: "pause", Success: true, CreatedAt: now.Add(-2 * time.Hour)},
		{Command: "forward10", Success: false, CreatedAt: now.Add(-3 * time.Hour)},
		{Command: "play", Success: true, CreatedAt: now.AddDate(0, 0, -10)},
		{Command: "mute", Success: true, CreatedAt: now.AddDate(0, -1, 0)},
	}

	stats := buildActionStats(actions, now)

	if stats.Today != 3 {
		t.Errorf("Today = %d, want 3", stats.Today)
	}
	if stats.ThisMonth != 4 {
		t.Errorf("ThisMonth = %d, want 4", stats.ThisMonth)
	}
	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.SuccessRate != 80 {
		t.Errorf("SuccessRate = %d, want 80", stats.SuccessRate)
	}
}

func TestBuildActionStatsRounding(t *testing.T) {
	now := time.Now()

	actions := []entity.VoiceAction{
		{Success: true, CreatedAt: now},
		{Success: true, CreatedAt: now},
		{Success: false, CreatedAt: now},
	}

	// 2 of 3 is 66.67 percent, rounded to 67.
	if got := buildActionStats(actions, now).SuccessRate; got != 67 {
		t.Errorf("SuccessRate = %d, want 67", got)
	}
}

func TestBuildActionStatsEmpty(t *testing.T) {
	stats := buildActionStats(nil, time.Now())

	if stats.Today != 0 || stats.ThisMonth != 0 || stats.Total != 0 || stats.SuccessRate != 0 {
		t.Errorf("empty history stats = %+v, want all zero", stats)
	}
}

func TestGetActionHistoryPagination(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 25; i++ {
		f.actions.stored = append(f.actions.stored, entity.VoiceAction{
			Command: "play", Success: true, CreatedAt: time.Now(),
		})
	}

	actions, total, err := f.svc.GetActionHistory(context.Background(), "user-1", 2, 10)
	if err != nil {
		t.Fatalf("GetActionHistory returned error: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}
	if len(actions) != 10 {
		t.Errorf("page size = %d, want 10", len(actions))
	}

	// Out-of-range parameters snap to defaults.
	actions, _, err = f.svc.GetActionHistory(context.Background(), "user-1", 0, 1000)
	if err != nil {
		t.Fatalf("GetActionHistory returned error: %v", err)
	}
	if len(actions) != 20 {
		t.Errorf("default page size = %d, want 20", len(actions))
	}
}

func TestGetActionStats(t *testing.T) {
	f := newFixture(t)
	f.actions.stored = []entity.VoiceAction{
		{Success: true, CreatedAt: time.Now()},
		{Success: false, CreatedAt: time.Now()},
	}

	stats, err := f.svc.GetActionStats(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetActionStats returned error: %v", err)
	}
	if stats.Total != 2 || stats.SuccessRate != 50 {
		t.Errorf("stats = %+v, want total 2 and rate 50", stats)
	}
}
