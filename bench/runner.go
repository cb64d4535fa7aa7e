package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tuannh982/hashset/utils/collections"
	"github.com/tuannh982/hashset/utils/hashing"
	"github.com/tuannh982/hashset/utils/math"

	log "github.com/sirupsen/logrus"
)

type Result struct {
	Implementation string
	Workload       string
	Rounds         int
	Ops            int
	Elapsed        time.Duration
}

func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

type Runner struct {
	log *log.Entry
	// keeps lookups from being optimized away
	hits int
}

func NewRunner(logger *log.Entry) *Runner {
	return &Runner{
		log: logger,
	}
}

func NewSet(impl string) (collections.Set[uint64], error) {
	switch impl {
	case ImplHashSet:
		return collections.NewHashSet[uint64](hashing.Integer[uint64]{}), nil
	case ImplBuiltin:
		return collections.NewBuiltinSet[uint64](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownImplementation, impl)
	}
}

func RandomData(seed uint64, n int) []uint64 {
	r := rand.New(rand.NewPCG(seed, seed))
	data := make([]uint64, n)
	for i := range data {
		data[i] = r.Uint64()
	}
	return data
}

// Run measures every configured implementation against every configured
// workload. It stops between rounds once ctx is done.
func (r *Runner) Run(ctx context.Context, cfg *Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	insertData := RandomData(cfg.InsertSeed, cfg.Size)
	containsData := RandomData(cfg.ContainsSeed, cfg.Size)
	results := make([]Result, 0, len(cfg.Implementations)*len(cfg.Workloads))
	for _, impl := range cfg.Implementations {
		for _, workload := range cfg.Workloads {
			data := insertData
			if workload == WorkloadContains {
				data = containsData
			}
			res, err := r.runWorkload(ctx, cfg, impl, workload, data)
			if err != nil {
				return results, err
			}
			r.log.WithFields(log.Fields{
				"impl":     res.Implementation,
				"workload": res.Workload,
				"ops":      res.Ops,
				"elapsed":  res.Elapsed,
				"ns/op":    fmt.Sprintf("%.2f", res.NsPerOp()),
			}).Info("workload finished")
			results = append(results, res)
		}
	}
	return results, nil
}

func (r *Runner) runWorkload(ctx context.Context, cfg *Config, impl, workload string, data []uint64) (Result, error) {
	res := Result{
		Implementation: impl,
		Workload:       workload,
	}
	every := math.DivCeil(cfg.Rounds, 10)
	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		s, err := NewSet(impl)
		if err != nil {
			return res, err
		}
		if workload != WorkloadInsert {
			for _, x := range data {
				s.Insert(x)
			}
		}
		start := time.Now()
		ops := r.runRound(s, workload, data, cfg.Probe)
		res.Elapsed += time.Since(start)
		res.Ops += ops
		res.Rounds++
		if (round+1)%every == 0 {
			r.log.WithFields(log.Fields{
				"impl":     impl,
				"workload": workload,
				"round":    round + 1,
			}).Debug("round finished")
		}
	}
	return res, nil
}

func (r *Runner) runRound(s collections.Set[uint64], workload string, data []uint64, probe uint64) int {
	switch workload {
	case WorkloadInsert:
		for _, x := range data {
			s.Insert(x)
		}
		return len(data)
	case WorkloadContains:
		for _, x := range data {
			if s.Contains(x) {
				r.hits++
			}
			if s.Contains(probe) {
				r.hits++
			}
		}
		return 2 * len(data)
	case WorkloadRemove:
		for _, x := range data {
			s.Remove(x)
		}
		return len(data)
	case WorkloadIterate:
		n := 0
		for range s.All() {
			n++
		}
		return n
	}
	return 0
}
