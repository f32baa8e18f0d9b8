package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/swarmlab/aco"
	"github.com/katalvlaran/swarmlab/bfs"
	"github.com/katalvlaran/swarmlab/config"
	"github.com/katalvlaran/swarmlab/dataset"
	"github.com/katalvlaran/swarmlab/dijkstra"
	"github.com/katalvlaran/swarmlab/internal/logging"
	"github.com/katalvlaran/swarmlab/internal/metrics"
	"github.com/katalvlaran/swarmlab/placement"
)

const usage = `usage:
  swarmlab route -airports airports.csv -routes routes.csv -from ID -to ID [-config run.yaml] [-seed N] [-metrics]
  swarmlab place -polygon campus.geojson [-config run.yaml] [-seed N] [-metrics]`

var errUsage = errors.New("swarmlab: bad usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	code := exitCode(ctx, logging.New(logging.Config{Level: "error"}), os.Stderr, err)
	stop()
	os.Exit(code)
}

// exitCode logs a failed command and maps it to a process exit status:
// 0 on success, 2 for usage errors (usage is printed), 1 otherwise.
func exitCode(ctx context.Context, log logging.Logger, stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	log.Error(ctx, "command failed", logging.Err(err))
	if errors.Is(err, errUsage) {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	return 1
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	switch args[0] {
	case "route":
		return runRoute(ctx, args[1:], stdout, stderr)
	case "place":
		return runPlace(ctx, args[1:], stdout, stderr)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// common holds the flags shared by every command.
type common struct {
	configPath string
	seed       int64
	metrics    bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML run configuration")
	fs.Int64Var(&c.seed, "seed", 0, "random seed, overrides the configuration when non-zero")
	fs.BoolVar(&c.metrics, "metrics", false, "include gathered metrics in the output")
}

// session is the per-run state both commands share.
type session struct {
	cfg      config.Config
	log      logging.Logger
	runID    string
	registry *prometheus.Registry
	recorder *metrics.Recorder
	metrics  bool
}

func newSession(c common, command string, stderr io.Writer) (*session, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.seed != 0 {
		cfg.Route.Seed = c.seed
		cfg.Placement.Seed = c.seed
	}

	runID := uuid.NewString()
	reg := prometheus.NewRegistry()

	return &session{
		cfg: cfg,
		log: logging.NewWithWriter(cfg.Log, stderr).With(
			logging.String("run_id", runID),
			logging.String("command", command),
		),
		runID:    runID,
		registry: reg,
		recorder: metrics.NewRecorder(reg),
		metrics:  c.metrics || cfg.Metrics,
	}, nil
}

// summary returns the gathered metrics, or nil when they were not requested.
func (s *session) summary() (map[string]float64, error) {
	if !s.metrics {
		return nil, nil
	}

	return metrics.Summarize(s.registry)
}

type routeOutput struct {
	RunID     string             `json:"run_id"`
	From      int                `json:"from"`
	To        int                `json:"to"`
	Path      []int              `json:"path"`
	Names     []string           `json:"names"`
	CostKm    float64            `json:"cost_km"`
	Reached   bool               `json:"reached"`
	OptimalKm *float64           `json:"optimal_km,omitempty"`
	Gap       *float64           `json:"gap,omitempty"`
	Rounds    int                `json:"rounds"`
	FitAgents int                `json:"fit_agents"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func runRoute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		c                        common
		airportsPath, routesPath string
		from, to                 int
	)
	c.register(fs)
	fs.StringVar(&airportsPath, "airports", "", "airports CSV (id,name,latitude,longitude)")
	fs.StringVar(&routesPath, "routes", "", "routes CSV (source,target)")
	fs.IntVar(&from, "from", 0, "source airport id")
	fs.IntVar(&to, "to", 0, "target airport id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if airportsPath == "" || routesPath == "" {
		return fmt.Errorf("%w: -airports and -routes are required", errUsage)
	}

	s, err := newSession(c, "route", stderr)
	if err != nil {
		return err
	}

	af, err := os.Open(airportsPath)
	if err != nil {
		return err
	}
	defer af.Close()
	rf, err := os.Open(routesPath)
	if err != nil {
		return err
	}
	defer rf.Close()

	g, airports, err := dataset.LoadGraph(af, rf)
	if err != nil {
		return err
	}
	s.log.Info(ctx, "graph loaded",
		logging.Int("airports", g.Len()),
		logging.Int("routes", g.EdgeCount()),
	)

	checkReach(ctx, s, g, from, to)

	onRound := func(st aco.RoundStats) bool {
		s.recorder.ObserveRound(st)
		s.log.Debug(ctx, "round finished",
			logging.Int("round", st.Round),
			logging.Int("fit", st.Fit),
			logging.Int("stuck", st.Stuck),
			logging.Float("best_cost", st.BestCost),
		)
		if ctx.Err() != nil {
			s.log.Warn(ctx, "interrupted, deploying solution agent", logging.Int("remaining", st.Remaining))
			return false
		}

		return true
	}

	start := time.Now()
	res, err := aco.RunWithParams(g, from, to, s.cfg.Route.Params(),
		aco.WithSeed(s.cfg.Route.Seed),
		aco.WithOnRound(onRound),
	)
	if err != nil {
		return err
	}
	took := time.Since(start)
	s.recorder.ObserveSearch(res, took)
	s.log.Info(ctx, "search finished",
		logging.Bool("reached", res.Reached),
		logging.Int("hops", len(res.Path)-1),
		logging.Float("cost_km", res.Cost),
		logging.Any("took", took),
	)

	out := routeOutput{
		RunID:     s.runID,
		From:      from,
		To:        to,
		Path:      res.Path,
		Names:     make([]string, 0, len(res.Path)),
		CostKm:    res.Cost,
		Reached:   res.Reached,
		Rounds:    res.Rounds,
		FitAgents: res.FitAgents,
	}
	for _, id := range res.Path {
		out.Names = append(out.Names, airports[id].Name)
	}

	opt, err := dijkstra.ShortestPath(g, from, to)
	switch {
	case err == nil:
		out.OptimalKm = &opt.Cost
		if res.Reached {
			gap := dijkstra.Gap(res.Cost, opt.Cost)
			out.Gap = &gap
			s.log.Info(ctx, "compared with optimum",
				logging.Float("optimal_km", opt.Cost),
				logging.Float("gap", gap),
			)
		}
	case errors.Is(err, dijkstra.ErrUnreachable):
		s.log.Info(ctx, "target unreachable from source")
	default:
		return err
	}
	if out.Metrics, err = s.summary(); err != nil {
		return err
	}

	return writeJSON(stdout, out)
}

// checkReach warns when agents cannot possibly reach the target.
func checkReach(ctx context.Context, s *session, g *aco.Graph, from, to int) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return
	}
	reach, err := bfs.BFS(g, from, bfs.WithContext(ctx))
	if err != nil {
		s.log.Debug(ctx, "reachability check skipped", logging.Err(err))
		return
	}
	hops, ok := reach.Hops(to)
	switch {
	case !ok:
		s.log.Warn(ctx, "target unreachable, no agent can become fit")
	case hops > s.cfg.Route.MaxSteps:
		s.log.Warn(ctx, "target is farther than the agent step limit",
			logging.Int("hops", hops),
			logging.Int("max_steps", s.cfg.Route.MaxSteps),
		)
	default:
		s.log.Debug(ctx, "target reachable", logging.Int("hops", hops))
	}
}

type placeOutput struct {
	RunID string `json:"run_id"`
	placement.Result
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func runPlace(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("place", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		c           common
		polygonPath string
	)
	c.register(fs)
	fs.StringVar(&polygonPath, "polygon", "", "GeoJSON file with the area to cover")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if polygonPath == "" {
		return fmt.Errorf("%w: -polygon is required", errUsage)
	}

	s, err := newSession(c, "place", stderr)
	if err != nil {
		return err
	}

	f, err := os.Open(polygonPath)
	if err != nil {
		return err
	}
	defer f.Close()
	poly, err := dataset.LoadPolygon(f)
	if err != nil {
		return err
	}

	cfg := s.cfg.Placement.Config(poly)
	cfg.OnGeneration = func(st placement.GenerationStats) bool {
		s.recorder.ObserveGeneration(st)
		if st.Accepted {
			s.log.Debug(ctx, "placement improved",
				logging.Int("generation", st.Generation),
				logging.Float("coverage", st.Best.Coverage),
				logging.Float("cost", st.Best.Cost),
			)
		}
		if ctx.Err() != nil {
			s.log.Warn(ctx, "interrupted", logging.Int("remaining", st.Remaining))
			return false
		}

		return true
	}
	s.log.Info(ctx, "placing devices",
		logging.Int("vertices", len(poly)),
		logging.Int("max_devices", cfg.MaxDevices),
		logging.Int("generations", cfg.MaxIterations),
	)

	start := time.Now()
	res := placement.Optimize(cfg)
	took := time.Since(start)
	s.recorder.ObservePlacement(res, took)
	s.log.Info(ctx, "placement finished",
		logging.Int("devices", len(res.Devices)),
		logging.Float("coverage", res.Coverage),
		logging.Float("cost", res.Cost),
		logging.Any("took", took),
	)

	out := placeOutput{RunID: s.runID, Result: res}
	if out.Metrics, err = s.summary(); err != nil {
		return err
	}

	return writeJSON(stdout, out)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
