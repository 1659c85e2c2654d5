// Command backup manages database snapshots from the command line,
// against the same data directory the server uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/baolive/camping-api/internal/config"
	"github.com/baolive/camping-api/internal/db"
	"github.com/baolive/camping-api/internal/logger"
	"github.com/baolive/camping-api/internal/service"
)

func main() {
	configPath := flag.String("config", "./cmd/app/config.yml", "path to config file")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: backup [-config path] <create|list|cleanup>")
}

func run(configPath, command string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	if conf.Database.URL != "" {
		return fmt.Errorf("backups are only supported for the sqlite database")
	}

	database, err := db.OpenSQLite(filepath.Join(conf.Database.DataDir, "camping.db"))
	if err != nil {
		return fmt.Errorf("failed to open database -> %w", err)
	}

	svc := service.NewBackupService(database, conf.Database.DataDir, conf.Backup.RetentionDays, conf.Backup.HourUTC)
	ctx := context.Background()

	switch command {
	case "create":
		backup, err := svc.Create(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("created %v (%v bytes)\n", backup.Name, backup.Size)

	case "list":
		backups, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("no backups found")
			return nil
		}
		for _, backup := range backups {
			fmt.Printf("%v\t%v bytes\t%v\n", backup.Name, backup.Size, backup.Created.Format("2006-01-02 15:04:05"))
		}

	case "cleanup":
		removed, err := svc.CleanupOld(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("removed %v expired backup(s)\n", removed)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}
