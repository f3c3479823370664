// Package wire provides dependency injection for banban.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	cliadapter "github.com/example/banban/internal/adapters/cli"
	"github.com/example/banban/internal/adapters/sqlite"
	"github.com/example/banban/internal/app"
	"github.com/example/banban/internal/config"
	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/db"
	"github.com/example/banban/internal/logging"
	"github.com/example/banban/internal/ports/primary"
	"github.com/example/banban/internal/ports/secondary"
)

// App is the assembled application graph.
type App struct {
	DB     *sql.DB
	Logger logrus.FieldLogger

	ColumnService   primary.ColumnService
	ActivityService primary.ActivityService
	CategoryService primary.CategoryService
	TagService      primary.TagService
	BoardService    primary.BoardService
}

// New assembles repositories, ordinal managers and services over database.
// The schema must already be migrated.
func New(database *sql.DB, logger logrus.FieldLogger) *App {
	tx := sqlite.NewTransactor(database)

	// Create repository adapters (secondary ports)
	columnRepo := sqlite.NewColumnRepository(database)
	activityRepo := sqlite.NewActivityRepository(database)
	categoryRepo := sqlite.NewCategoryRepository(database)
	tagRepo := sqlite.NewCategoryTagRepository(database)

	// One ordinal manager per ordered table
	columns := app.NewOrdinalManager[secondary.ColumnRecord, ordinal.Board](columnRepo, tx, "columns", logger)
	activities := app.NewOrdinalManager[secondary.ActivityRecord, ordinal.ParentID](activityRepo, tx, "activities", logger)
	categories := app.NewOrdinalManager[secondary.CategoryRecord, ordinal.Board](categoryRepo, tx, "categories", logger)
	tags := app.NewOrdinalManager[secondary.CategoryTagRecord, ordinal.ParentID](tagRepo, tx, "category_tags", logger)

	return &App{
		DB:              database,
		Logger:          logger,
		ColumnService:   app.NewColumnService(columnRepo, columns, activities, tx),
		ActivityService: app.NewActivityService(activityRepo, columnRepo, tagRepo, activities),
		CategoryService: app.NewCategoryService(categoryRepo, categories, tags, tx),
		TagService:      app.NewTagService(tagRepo, categoryRepo, tags),
		BoardService: app.NewBoardService(columnRepo, activityRepo, categoryRepo, tagRepo, []app.NamedCollection{
			{Name: "columns", Collection: columns},
			{Name: "activities", Collection: activities},
			{Name: "categories", Collection: categories},
			{Name: "tags", Collection: tags},
		}, tx, logger),
	}
}

var (
	application *App
	once        sync.Once
)

func get() *App {
	once.Do(initServices)
	return application
}

// initServices resolves config, opens and migrates the database and builds
// the graph. This is called once via sync.Once.
func initServices() {
	home, err := os.UserHomeDir()
	if err != nil {
		logrus.Fatalf("failed to get home directory: %v", err)
	}

	cfg, err := config.LoadConfig(home, config.EnvFiles...)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		logrus.Fatalf("failed to configure logging: %v", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize database")
	}
	if err := db.Migrate(context.Background(), database, logger); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}

	application = New(database, logger)
}

// ColumnAdapter returns a new ColumnAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ColumnAdapter() *cliadapter.ColumnAdapter {
	return ColumnAdapterWithOutput(os.Stdout)
}

// ColumnAdapterWithOutput returns a new ColumnAdapter writing to the given output.
func ColumnAdapterWithOutput(out io.Writer) *cliadapter.ColumnAdapter {
	return cliadapter.NewColumnAdapter(get().ColumnService, out)
}

// ActivityAdapter returns a new ActivityAdapter writing to stdout.
func ActivityAdapter() *cliadapter.ActivityAdapter {
	return ActivityAdapterWithOutput(os.Stdout)
}

// ActivityAdapterWithOutput returns a new ActivityAdapter writing to the given output.
func ActivityAdapterWithOutput(out io.Writer) *cliadapter.ActivityAdapter {
	return cliadapter.NewActivityAdapter(get().ActivityService, out)
}

// CategoryAdapter returns a new CategoryAdapter writing to stdout.
func CategoryAdapter() *cliadapter.CategoryAdapter {
	return CategoryAdapterWithOutput(os.Stdout)
}

// CategoryAdapterWithOutput returns a new CategoryAdapter writing to the given output.
func CategoryAdapterWithOutput(out io.Writer) *cliadapter.CategoryAdapter {
	return cliadapter.NewCategoryAdapter(get().CategoryService, out)
}

// TagAdapter returns a new TagAdapter writing to stdout.
func TagAdapter() *cliadapter.TagAdapter {
	return TagAdapterWithOutput(os.Stdout)
}

// TagAdapterWithOutput returns a new TagAdapter writing to the given output.
func TagAdapterWithOutput(out io.Writer) *cliadapter.TagAdapter {
	return cliadapter.NewTagAdapter(get().TagService, out)
}

// BoardAdapter returns a new BoardAdapter writing to stdout.
func BoardAdapter() *cliadapter.BoardAdapter {
	return BoardAdapterWithOutput(os.Stdout)
}

// BoardAdapterWithOutput returns a new BoardAdapter writing to the given output.
func BoardAdapterWithOutput(out io.Writer) *cliadapter.BoardAdapter {
	return cliadapter.NewBoardAdapter(get().BoardService, out)
}
