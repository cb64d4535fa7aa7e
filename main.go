package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/tuannh982/hashset/bench"

	log "github.com/sirupsen/logrus"
)

var CLI struct {
	Config   string   `short:"c" type:"path" help:"YAML workload file" env:"HASHSET_BENCH_CONFIG"`
	Size     int      `short:"n" help:"Elements per round, overrides the config file" env:"HASHSET_BENCH_SIZE"`
	Rounds   int      `short:"r" help:"Timed rounds per workload, overrides the config file" env:"HASHSET_BENCH_ROUNDS"`
	Impl     []string `help:"Implementations to compare (hashset, builtin)" env:"HASHSET_BENCH_IMPL"`
	Workload []string `short:"w" help:"Workloads to run (insert, contains, remove, iterate)" env:"HASHSET_BENCH_WORKLOAD"`
	Verbose  bool     `short:"v" help:"Enable debug logging"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("hashset-bench"),
		kong.Description("Compare the chained HashSet against the builtin map."),
	)
	logger := log.WithFields(log.Fields{"cmd": "hashset-bench"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.InfoLevel)
	if CLI.Verbose {
		logger.Logger.SetLevel(log.DebugLevel)
	}
	cfg, err := loadConfig()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hookShutdownSignal(ctx, cancel)
	results, err := bench.NewRunner(logger).Run(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("benchmark failed")
	}
	summarize(logger, results)
}

func loadConfig() (*bench.Config, error) {
	cfg := bench.DefaultConfig()
	if CLI.Config != "" {
		var err error
		if cfg, err = bench.LoadConfig(CLI.Config); err != nil {
			return nil, err
		}
	}
	if CLI.Size != 0 {
		cfg.Size = CLI.Size
	}
	if CLI.Rounds != 0 {
		cfg.Rounds = CLI.Rounds
	}
	if len(CLI.Impl) > 0 {
		cfg.Implementations = CLI.Impl
	}
	if len(CLI.Workload) > 0 {
		cfg.Workloads = CLI.Workload
	}
	return cfg, cfg.Validate()
}

func summarize(logger *log.Entry, results []bench.Result) {
	byWorkload := make(map[string]map[string]bench.Result)
	for _, res := range results {
		if byWorkload[res.Workload] == nil {
			byWorkload[res.Workload] = make(map[string]bench.Result)
		}
		byWorkload[res.Workload][res.Implementation] = res
	}
	for workload, impls := range byWorkload {
		ours, ok1 := impls[bench.ImplHashSet]
		builtin, ok2 := impls[bench.ImplBuiltin]
		if !ok1 || !ok2 || builtin.NsPerOp() == 0 {
			continue
		}
		logger.WithFields(log.Fields{
			"workload": workload,
			"ratio":    fmt.Sprintf("%.2fx", ours.NsPerOp()/builtin.NsPerOp()),
		}).Info("hashset vs builtin")
	}
}

func hookShutdownSignal(ctx context.Context, cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	select {
	case <-c:
		cancel()
	case <-ctx.Done():
	}
}
