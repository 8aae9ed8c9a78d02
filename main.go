package main

import (
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/DiyaJain6/Task-Bridge/config"
	"github.com/DiyaJain6/Task-Bridge/engine"
	"github.com/DiyaJain6/Task-Bridge/models"
	"github.com/DiyaJain6/Task-Bridge/routes"
	"github.com/DiyaJain6/Task-Bridge/store"
)

func main() {
	root := &cobra.Command{
		Use:   "taskbridge",
		Short: "TaskBridge task assignment backend",
	}
	root.AddCommand(serveCmd(), seedCmd())
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, stores, err := setup()
			if err != nil {
				return err
			}
			eng := engine.New(stores.Users, stores.Tasks, stores.Notifications,
				stores.Audit, stores.Messages, stores.Settings)
			r := routes.SetupRouter(routes.Deps{
				Users:         stores.Users,
				Notifications: stores.Notifications,
				Audit:         stores.Audit,
				Engine:        eng,
			})
			return r.Run(":" + cfg.Port)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate the schema and seed base users",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := setup()
			return err
		},
	}
}

func setup() (*config.Config, store.GormStores, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, store.GormStores{}, err
	}
	db, err := config.ConnectDB(cfg.DSN)
	if err != nil {
		return nil, store.GormStores{}, err
	}
	if err := migrate(db); err != nil {
		return nil, store.GormStores{}, err
	}

	stores := store.NewGormStores(db)
	seeds, err := config.LoadSeedUsers(cfg.SeedFile)
	if err != nil {
		return nil, store.GormStores{}, err
	}
	if err := config.SeedUsers(stores.Users, seeds); err != nil {
		return nil, store.GormStores{}, err
	}
	return cfg, stores, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Notification{},
		&models.AuditLog{},
		&models.ChatMessage{},
		&models.SystemSetting{},
	)
}
