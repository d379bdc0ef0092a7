package job

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hamlog/database"
	"hamlog/database/model"
	"hamlog/web/global"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/require"
)

type stubServer struct {
	ctx context.Context
}

func (s *stubServer) GetCron() *cron.Cron     { return nil }
func (s *stubServer) GetCtx() context.Context { return s.ctx }

func writeAgedFile(t *testing.T, name string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte("img"), 0o600))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(name, old, old))
}

func TestPruneAvatarJobRemovesOrphans(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HAMLOG_UPLOAD_DIR", dir)
	require.NoError(t, database.InitDB(":memory:"))

	kept := filepath.Join(dir, "kept.png")
	orphan := filepath.Join(dir, "orphan.png")
	fresh := filepath.Join(dir, "fresh.png")
	writeAgedFile(t, kept, 48*time.Hour)
	writeAgedFile(t, orphan, 48*time.Hour)
	writeAgedFile(t, fresh, 0)

	require.NoError(t, database.CreateUser(&model.User{
		Nickname:  "ham",
		Email:     "ham@example.com",
		ImgUrl:    "/uploads/kept.png",
		CreatedAt: time.Now(),
	}))

	global.SetWebServer(&stubServer{ctx: context.Background()})
	NewPruneAvatarJob().Run()

	_, err := os.Stat(kept)
	require.NoError(t, err, "a referenced avatar must survive")
	_, err = os.Stat(fresh)
	require.NoError(t, err, "a file younger than the grace window must survive")
	_, err = os.Stat(orphan)
	require.True(t, os.IsNotExist(err), "an old orphan must be removed")
}

func TestJobsSkipWhileShuttingDown(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HAMLOG_UPLOAD_DIR", dir)
	require.NoError(t, database.InitDB(":memory:"))

	orphan := filepath.Join(dir, "orphan.png")
	writeAgedFile(t, orphan, 48*time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	global.SetWebServer(&stubServer{ctx: ctx})
	NewPruneAvatarJob().Run()

	_, err := os.Stat(orphan)
	require.NoError(t, err, "no pruning once the server context is cancelled")
}
