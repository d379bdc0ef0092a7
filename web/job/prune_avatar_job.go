package job

import (
	"os"
	"path"
	"path/filepath"
	"time"

	"hamlog/config"
	"hamlog/database"
	"hamlog/logger"
	"hamlog/web/global"
)

// PruneAvatarJob sweeps the upload directory for images no user references
// anymore (each avatar change uploads a fresh file, the old one stays behind).
type PruneAvatarJob struct{}

func NewPruneAvatarJob() *PruneAvatarJob {
	return new(PruneAvatarJob)
}

func (j *PruneAvatarJob) Run() {
	if s := global.GetWebServer(); s != nil && s.GetCtx().Err() != nil {
		return
	}
	uploadDir := config.GetUploadDir()
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warning("prune avatars: read upload dir failed:", err)
		}
		return
	}

	urls, err := database.GetAvatarUrls()
	if err != nil {
		logger.Warning("prune avatars: load avatar urls failed:", err)
		return
	}
	referenced := make(map[string]bool, len(urls))
	for _, url := range urls {
		referenced[path.Base(url)] = true
	}

	pruned := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		// Leave very fresh files alone: an upload may not be committed to a
		// user row yet.
		if time.Since(info.ModTime()) < 24*time.Hour {
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			logger.Warning("prune avatars: remove failed:", err)
			continue
		}
		pruned++
	}
	if pruned > 0 {
		logger.Infof("prune avatars: removed %d orphaned file(s)", pruned)
	}
}
