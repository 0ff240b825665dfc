package services

import (
	"context"
	"testing"

	"racing-league/database"
	"racing-league/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seqDice replays fixed IntN results in order.
type seqDice struct {
	t    *testing.T
	vals []int
	i    int
}

func newSeqDice(t *testing.T, vals ...int) *seqDice {
	return &seqDice{t: t, vals: vals}
}

func (d *seqDice) IntN(n int) int {
	require.Less(d.t, d.i, len(d.vals), "dice exhausted")
	v := d.vals[d.i]
	d.i++
	require.Less(d.t, v, n, "scripted roll out of range")
	return v
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestPlayerService(t *testing.T) *PlayerService {
	t.Helper()
	return NewPlayerService(newTestDB(t), MustDefaultCatalog())
}

func mustRegister(t *testing.T, s *PlayerService, id, name string) *models.Player {
	t.Helper()
	p, err := s.Register(context.Background(), id, name)
	require.NoError(t, err)
	return p
}

func mustGet(t *testing.T, s *PlayerService, id string) *models.Player {
	t.Helper()
	p, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	return p
}

// setColumns writes raw column values, bypassing the engine rules.
func setColumns(t *testing.T, s *PlayerService, id string, cols map[string]any) {
	t.Helper()
	require.NoError(t, s.DB.Model(&models.Player{}).Where("external_user_id = ?", id).Updates(cols).Error)
}
