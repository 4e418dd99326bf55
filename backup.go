package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// startDailyBackupAtFixedTime copies the sqlite database to a timestamped
// file daily at a fixed hour and removes backups older than the retention
// window.
func startDailyBackupAtFixedTime(dbPath, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next database backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destPath := filepath.Join(backupDir, timestamp+"-"+filepath.Base(dbPath))

		if err := copyFile(dbPath, destPath); err != nil {
			log.Printf("❌ Failed to back up database: %v", err)
		} else {
			log.Printf("✅ Database backed up to %s", destPath)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyFile copies a single file, creating the destination directory.
func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup files older than the retention duration.
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", path)
			}
		}
	}
}
