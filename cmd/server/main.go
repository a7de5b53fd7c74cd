package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "verdant/internal/adapter/http"
	metricsinmem "verdant/internal/adapter/metrics/inmemory"
	metricsprom "verdant/internal/adapter/metrics/prom"
	"verdant/internal/adapter/policy/scripted"
	gormrepo "verdant/internal/adapter/repo/gorm"
	memrepo "verdant/internal/adapter/repo/memory"
	"verdant/internal/app/behavior"
	"verdant/internal/app/game"
	"verdant/internal/app/observe"
	"verdant/internal/app/ports"
	"verdant/internal/app/status"
	"verdant/internal/domain/actor"
	"verdant/internal/domain/economy"
	"verdant/internal/domain/item"
	"verdant/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
)

type repoSet struct {
	catalog  ports.CatalogRepository
	mapState ports.MapRepository
	shops    ports.ShopRepository
	config   ports.ConfigRepository
	calendar ports.CalendarRepository
	tx       ports.TxManager
}

func main() {
	_ = godotenv.Load()

	seed := int64Env("SEED", time.Now().UnixNano())
	rng := rand.New(rand.NewSource(seed))

	repos := mustBuildRepos()
	state := mustLoadState(context.Background(), repos, rng)

	kpiRecorder := metricsinmem.NewRecorder()
	promRecorder := metricsprom.NewRecorder()

	selector := behavior.NewSelector(buildPolicy(rng), rng)
	orch := game.NewOrchestrator(state, selector, rng, multiMetrics{kpiRecorder, promRecorder})
	orch.Tx = repos.tx
	orch.MapRepo = repos.mapState
	orch.ShopRepo = repos.shops
	orch.CalendarRepo = repos.calendar

	go runTicker(orch)
	go serveMetrics(promRecorder)

	h := httpadapter.Handler{
		Game:      orch,
		ObserveUC: observe.UseCase{Game: orch},
		StatusUC:  status.UseCase{Game: orch},
		KPI:       kpiRecorder,
	}

	addr := strEnv("HTTP_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("verdant server listening on %s (seed %d)", addr, seed)
	s.Spin()
}

// runTicker drives the simulation with wall-clock dt so a slow tick does
// not slow game time.
func runTicker(orch *game.Orchestrator) {
	interval := time.Duration(intEnv("TICK_MS", 50)) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for now := range ticker.C {
		dt := now.Sub(last).Seconds()
		last = now
		orch.Update(dt)
	}
}

func serveMetrics(rec *metricsprom.Recorder) {
	addr := strEnv("METRICS_ADDR", ":9090")
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("metrics listener stopped: %v", err)
	}
}

func mustBuildRepos() repoSet {
	dsn := strings.TrimSpace(os.Getenv("VERDANT_DB_DSN"))
	if dsn == "" {
		log.Println("VERDANT_DB_DSN not set, using in-memory persistence")
		store := memrepo.NewStore()
		return repoSet{
			catalog:  memrepo.NewCatalogRepo(store),
			mapState: memrepo.NewMapRepo(store),
			shops:    memrepo.NewShopRepo(store),
			config:   memrepo.NewConfigRepo(store),
			calendar: memrepo.NewCalendarRepo(store),
			tx:       memrepo.NewTxManager(store),
		}
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return repoSet{
		catalog:  gormrepo.NewCatalogRepo(db),
		mapState: gormrepo.NewMapRepo(db),
		shops:    gormrepo.NewShopRepo(db),
		config:   gormrepo.NewConfigRepo(db),
		calendar: gormrepo.NewCalendarRepo(db),
		tx:       gormrepo.NewTxManager(db),
	}
}

// mustLoadState restores a saved game or generates a fresh one, saving
// the generated pieces so the next boot finds them.
func mustLoadState(ctx context.Context, repos repoSet, rng *rand.Rand) *game.GameState {
	cfg, err := repos.config.Load(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		cfg = ports.DefaultGameConfig()
		if err := repos.config.Save(ctx, cfg); err != nil {
			log.Fatalf("save default config: %v", err)
		}
	} else if err != nil {
		log.Fatalf("load config: %v", err)
	}

	catalog := mustLoadCatalog(ctx, repos)
	grid := mustLoadMap(ctx, repos, rng)
	shops := mustLoadShops(ctx, repos, catalog)

	calendar := world.NewCalendar(world.CalendarConfig{
		RealSecondsPerDay: float64(cfg.DayLengthMinutes) * 60,
	})
	calState, err := repos.calendar.Load(ctx)
	switch {
	case err == nil:
		calendar.Restore(calState)
	case errors.Is(err, ports.ErrNotFound):
		if err := repos.calendar.Save(ctx, calendar.State()); err != nil {
			log.Fatalf("save calendar: %v", err)
		}
	default:
		log.Fatalf("load calendar: %v", err)
	}

	centerX := float64(grid.Width*world.TileSize) / 2
	centerY := float64(grid.Height*world.TileSize) / 2
	state := &game.GameState{
		Catalog:  catalog,
		World:    grid,
		Calendar: calendar,
		Weather:  world.WeatherSunny,
		Camera:   world.NewCamera(float64(cfg.DisplayWidth), float64(cfg.DisplayHeight), grid),
		Player:   actor.NewPlayer("Player", centerX, centerY),
		NPCs: []*actor.NpcState{
			actor.NewNpc("Anna", actor.RoleFarmer, centerX-160, centerY),
			actor.NewNpc("Pierre", actor.RoleShopkeeper, centerX+160, centerY-96),
			actor.NewNpc("Sam", actor.RoleMiner, centerX, centerY+160),
			actor.NewNpc("Elliott", actor.RoleFisher, centerX-96, centerY-160),
		},
		Shops: shops,
	}
	return state
}

func mustLoadCatalog(ctx context.Context, repos repoSet) *item.Catalog {
	items, err := repos.catalog.Load(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		items = item.DefaultItems()
		if err := repos.catalog.Save(ctx, items); err != nil {
			log.Fatalf("save default catalog: %v", err)
		}
	} else if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	catalog, err := item.NewCatalog(items)
	if err != nil {
		log.Fatalf("build catalog: %v", err)
	}
	return catalog
}

func mustLoadMap(ctx context.Context, repos repoSet, rng *rand.Rand) *world.Grid {
	st, err := repos.mapState.Load(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		grid := world.Generate(world.DefaultGenerateConfig(), rng)
		if err := repos.mapState.Save(ctx, grid.State()); err != nil {
			log.Fatalf("save generated map: %v", err)
		}
		return grid
	}
	if err != nil {
		log.Fatalf("load map: %v", err)
	}
	grid, err := world.GridFromState(st)
	if err != nil {
		log.Fatalf("restore map: %v", err)
	}
	return grid
}

func mustLoadShops(ctx context.Context, repos repoSet, catalog *item.Catalog) map[string]*economy.Shop {
	out := map[string]*economy.Shop{}
	states, err := repos.shops.LoadAll(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		store := economy.DefaultGeneralStore(catalog)
		if err := repos.shops.Save(ctx, store.State()); err != nil {
			log.Fatalf("save default shop: %v", err)
		}
		out[store.Name] = store
		return out
	}
	if err != nil {
		log.Fatalf("load shops: %v", err)
	}
	for _, st := range states {
		shop := economy.ShopFromState(st, catalog)
		out[shop.Name] = shop
	}
	return out
}

func buildPolicy(rng *rand.Rand) ports.BehaviorPolicy {
	switch strEnv("BEHAVIOR_POLICY", "rule") {
	case "scripted":
		return scripted.DefaultRoutine()
	case "none":
		return nil
	default:
		return behavior.NewRulePolicy(rng)
	}
}

// multiMetrics fans intent counts out to every backend.
type multiMetrics []ports.IntentMetrics

func (m multiMetrics) RecordAccepted(intentType string) {
	for _, rec := range m {
		rec.RecordAccepted(intentType)
	}
}

func (m multiMetrics) RecordRejected(intentType string) {
	for _, rec := range m {
		rec.RecordRejected(intentType)
	}
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func int64Env(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
