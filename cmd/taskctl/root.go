package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sathvik89/Taskease/application/serviceimpl"
	"github.com/sathvik89/Taskease/domain/repositories"
	"github.com/sathvik89/Taskease/domain/services"
	"github.com/sathvik89/Taskease/infrastructure/export"
	natspkg "github.com/sathvik89/Taskease/infrastructure/nats"
	"github.com/sathvik89/Taskease/infrastructure/postgres"
	"github.com/sathvik89/Taskease/pkg/config"
	"github.com/sathvik89/Taskease/pkg/di"
	"github.com/sathvik89/Taskease/pkg/logger"
)

// env is what every subcommand works with, built once per invocation.
type env struct {
	cfg         *config.Config
	db          *gorm.DB
	users       repositories.UserRepository
	userService services.UserService
	taskService services.TaskService
}

func (e *env) close() {
	if e == nil || e.db == nil {
		return
	}
	if sqlDB, err := e.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		e       *env
	)

	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Operate a Taskease database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			e, err = openEnv(verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.close()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of errors only")

	current := func() *env { return e }
	root.AddCommand(
		newMigrateCmd(current),
		newUsersCmd(current),
		newAdminCmd(current, "promote", "Grant the admin role to a user", true),
		newAdminCmd(current, "demote", "Revoke the admin role from a user", false),
		newPurgeTrashCmd(current),
	)
	return root
}

func openEnv(verbose bool) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := di.LoggerConfig(cfg)
	if !verbose {
		logCfg.Level = "error"
		logCfg.Output = "stdout"
	}
	if err := logger.Init(logCfg); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := di.OpenDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	return &env{
		cfg:         cfg,
		db:          db,
		users:       userRepo,
		userService: serviceimpl.NewUserService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL),
		taskService: serviceimpl.NewTaskService(
			taskRepo, userRepo, nil, natspkg.NoopPublisher{}, export.NewXLSXExporter(),
			serviceimpl.TaskServiceConfig{UpcomingLimit: cfg.Tasks.UpcomingLimit},
		),
	}, nil
}
