package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baolive/camping-api/internal/api"
	"github.com/baolive/camping-api/internal/config"
	"github.com/baolive/camping-api/internal/db"
	"github.com/baolive/camping-api/internal/logger"
	"github.com/baolive/camping-api/internal/repository/dao"
	"github.com/baolive/camping-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	var database *gorm.DB
	usingSQLite := conf.Database.URL == ""
	if usingSQLite {
		database, err = db.OpenSQLite(filepath.Join(conf.Database.DataDir, "camping.db"))
	} else {
		database, err = db.OpenPostgresWithURL(conf.Database.URL)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(database); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	backupSvc := service.NewBackupService(database, conf.Database.DataDir, conf.Backup.RetentionDays, conf.Backup.HourUTC)
	if usingSQLite {
		// VACUUM INTO is sqlite-only; on postgres the scheduler stays off.
		go backupSvc.Schedule(context.Background())
	}

	s, err := api.NewServer(conf, database, backupSvc)
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
