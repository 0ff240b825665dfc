package services

import (
	"context"

	"racing-league/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LeaderboardEntry is one row of the standings, with display strings pre-rendered.
type LeaderboardEntry struct {
	Position       int     `json:"position"`
	UserID         string  `json:"user_id"`
	Username       string  `json:"username"`
	Level          int     `json:"level"`
	Score          int64   `json:"score"`
	PvEWins        int64   `json:"pve_wins"`
	PvERaces       int64   `json:"pve_races"`
	PvPWins        int64   `json:"pvp_wins"`
	PvPRaces       int64   `json:"pvp_races"`
	TotalWins      int64   `json:"total_wins"`
	TotalRaces     int64   `json:"total_races"`
	WinRate        float64 `json:"win_rate"`
	WinRateDisplay string  `json:"win_rate_display"`
	Balance        int64   `json:"balance"`
	BalanceDisplay string  `json:"balance_display"`
}

// NewLeaderboardEntry renders a player at the given 1-based position.
func NewLeaderboardEntry(position int, p models.Player, printer *message.Printer) LeaderboardEntry {
	rate := p.WinRate()
	return LeaderboardEntry{
		Position:       position,
		UserID:         p.ExternalUserID,
		Username:       p.Username,
		Level:          p.Level,
		Score:          p.LeaderboardScore(),
		PvEWins:        p.PvEWins,
		PvERaces:       p.PvERaces,
		PvPWins:        p.PvPWins,
		PvPRaces:       p.PvPRaces,
		TotalWins:      p.TotalWins(),
		TotalRaces:     p.TotalRaces(),
		WinRate:        rate,
		WinRateDisplay: printer.Sprintf("%.1f%%", rate),
		Balance:        p.Balance,
		BalanceDisplay: printer.Sprintf("%d", p.Balance),
	}
}

// LeaderboardEntries loads the top players and renders them for display.
func (s *PlayerService) LeaderboardEntries(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	players, err := s.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}
	printer := message.NewPrinter(language.English)
	entries := make([]LeaderboardEntry, 0, len(players))
	for i, p := range players {
		entries = append(entries, NewLeaderboardEntry(i+1, p, printer))
	}
	return entries, nil
}
