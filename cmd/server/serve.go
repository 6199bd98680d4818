package main

import (
	"math/rand"
	"os"

	httpadapter "gridworld/internal/adapter/http"
	"gridworld/internal/adapter/journal/gormpg"
	journalmem "gridworld/internal/adapter/journal/memory"
	journalsqlite "gridworld/internal/adapter/journal/sqlite"
	metricsinmem "gridworld/internal/adapter/metrics/inmemory"
	"gridworld/internal/app/action"
	"gridworld/internal/app/authoring"
	"gridworld/internal/app/observe"
	"gridworld/internal/app/ports"
	"gridworld/internal/app/roster"
	"gridworld/internal/app/status"
	"gridworld/internal/app/trace"
	"gridworld/internal/app/turn"
	"gridworld/internal/config"
	"gridworld/internal/domain/world"
	"gridworld/internal/worldfile"

	"github.com/charmbracelet/log"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridworld HTTP server",
	Run:   runServe,
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridworld",
	})

	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			logger.Fatal("load config", "path", flagConfig, "err", err)
		}
		cfg = loaded
	}
	if flagAddr != "" {
		cfg.Server.Addr = flagAddr
	}
	if flagSeed != 0 {
		cfg.World.Seed = flagSeed
	}
	if flagLayout != "" {
		cfg.World.LayoutPath = flagLayout
	}

	journal := buildJournal(logger, cfg.Journal)
	w := buildWorld(logger, cfg.World)

	tracer := &trace.Tracer{Repo: journal}
	kpi := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		TurnUC:      turn.UseCase{World: w, Tracer: tracer},
		RosterUC:    roster.UseCase{World: w, Tracer: tracer},
		ActionUC:    action.UseCase{World: w, Tracer: tracer, Metrics: kpi},
		ObserveUC:   observe.UseCase{World: w, Tracer: tracer},
		StatusUC:    status.UseCase{World: w, Tracer: tracer},
		AuthoringUC: authoring.UseCase{World: w, Tracer: tracer},
		TraceUC:     trace.UseCase{Repo: journal},
		KPI:         kpi,
		World:       w,
	}

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	logger.Info("listening",
		"addr", cfg.Server.Addr,
		"world", cfg.World,
		"journal", cfg.Journal.Driver,
	)
	s.Spin()
}

func buildJournal(logger *log.Logger, cfg config.Journal) ports.TraceRepository {
	switch cfg.Driver {
	case "postgres":
		db, err := gormpg.OpenPostgres(cfg.DSN)
		if err != nil {
			logger.Fatal("open postgres journal", "err", err)
		}
		if err := gormpg.Migrate(db); err != nil {
			logger.Fatal("migrate postgres journal", "err", err)
		}
		return gormpg.NewRepo(db)
	case "sqlite":
		repo, err := journalsqlite.Open(cfg.Path)
		if err != nil {
			logger.Fatal("open sqlite journal", "path", cfg.Path, "err", err)
		}
		return repo
	default:
		return journalmem.NewRepo()
	}
}

func buildWorld(logger *log.Logger, cfg config.World) *world.World {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	if cfg.LayoutPath != "" {
		layout, err := worldfile.Load(cfg.LayoutPath)
		if err != nil {
			logger.Fatal("load layout", "path", cfg.LayoutPath, "err", err)
		}
		w, err := layout.Build(rng)
		if err != nil {
			logger.Fatal("build world from layout", "err", err)
		}
		w.NewTurn(cfg.TurnBudget)
		return w
	}

	w, err := world.New(world.Config{Width: cfg.Width, Height: cfg.Height, Rand: rng})
	if err != nil {
		logger.Fatal("build world", "err", err)
	}
	w.NewTurn(cfg.TurnBudget)
	return w
}
