package main

import (
	"fmt"
	"os"

	"callsheet/internal/cli"
	"callsheet/internal/config"
	"callsheet/internal/db"
	"callsheet/internal/engine"
	"callsheet/internal/repository"
	"callsheet/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	crewRepo := repository.NewSQLiteCrewRepo(database)
	castRepo := repository.NewSQLiteCastRepo(database)
	equipmentRepo := repository.NewSQLiteEquipmentRepo(database)
	categoryRepo := repository.NewSQLiteBudgetCategoryRepo(database)
	itemRepo := repository.NewSQLiteBudgetItemRepo(database)
	sceneRepo := repository.NewSQLiteSceneRepo(database)
	dayRepo := repository.NewSQLiteShootingDayRepo(database)
	eventRepo := repository.NewSQLiteScheduleEventRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the consistency engine
	propagator := engine.NewPropagator(itemRepo, uow)
	detector := engine.NewDetector(eventRepo)
	materializer := engine.NewMaterializer(uow)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo),
		Crew:      service.NewCrewService(crewRepo, propagator, observers...),
		Cast:      service.NewCastService(castRepo, propagator, observers...),
		Equipment: service.NewEquipmentService(equipmentRepo, propagator, observers...),
		Budget:    service.NewBudgetService(categoryRepo, itemRepo, crewRepo, castRepo, equipmentRepo),
		Scenes:    service.NewSceneService(sceneRepo, dayRepo, materializer),
		Schedule:  service.NewScheduleService(dayRepo, eventRepo, detector, observers...),
	}

	// Detect interactive terminal for prompt-based input.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
