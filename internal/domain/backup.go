package domain

import "time"

type BackupFile struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	Created time.Time `json:"created"`
	Path    string    `json:"path"`
}
