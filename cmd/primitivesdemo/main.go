// Command primitivesdemo exercises the arena, buddy, hashmap, and heap
// packages together, logging what it does with zap and exporting gauges
// via Prometheus. None of the four primitive packages import any of this:
// logging, configuration, and metrics are strictly the demo's concern.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	arena "github.com/wjp-dev/primitives"
	"github.com/wjp-dev/primitives/buddy"
	"github.com/wjp-dev/primitives/hashmap"
	"github.com/wjp-dev/primitives/heap"
)

var gauges = struct {
	arenaUtilization prometheus.Gauge
	arenaChunks      prometheus.Gauge
	buddyFreeOrders  prometheus.Gauge
	hashmapSize      prometheus.Gauge
	hashmapBuckets   prometheus.Gauge
	heapSize         prometheus.Gauge
}{
	arenaUtilization: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "primitivesdemo_arena_utilization_ratio",
		Help: "Fraction of allocated arena capacity currently in use.",
	}),
	arenaChunks: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "primitivesdemo_arena_chunks",
		Help: "Number of chunks currently owned by the demo arena.",
	}),
	buddyFreeOrders: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "primitivesdemo_buddy_free_orders",
		Help: "Number of distinct orders with a non-empty free list after the demo run.",
	}),
	hashmapSize: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "primitivesdemo_hashmap_size",
		Help: "Number of entries in the demo hash map.",
	}),
	hashmapBuckets: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "primitivesdemo_hashmap_buckets",
		Help: "Combined bucket capacity of the demo hash map's tables.",
	}),
	heapSize: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "primitivesdemo_heap_size",
		Help: "Number of elements remaining in the demo heap.",
	}),
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	serve := flag.Bool("serve", false, "keep running and serve /metrics after the demo completes")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "primitivesdemo: failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	runArenaDemo(logger, cfg)
	runBuddyDemo(logger, cfg)
	runHashMapDemo(logger, cfg)
	runHeapDemo(logger, cfg)

	if *serve {
		logger.Info("serving metrics", zap.String("addr", cfg.MetricsAddr))
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
			logger.Fatal("metrics server exited", zap.Error(err))
		}
	}
}

func runArenaDemo(logger *zap.Logger, cfg Config) {
	a := arena.NewArena(cfg.Arena.ChunkCapacity)
	defer a.Release()

	for i := 0; i < cfg.Arena.Allocations; i++ {
		a.AllocBytes(cfg.Arena.AllocSize)
	}

	m := a.Metrics()
	gauges.arenaUtilization.Set(m.Utilization)
	gauges.arenaChunks.Set(float64(m.NumChunks))
	logger.Info("arena demo complete",
		zap.Int("allocations", cfg.Arena.Allocations),
		zap.Int("chunks", m.NumChunks),
		zap.Float64("utilization", m.Utilization),
	)
}

func runBuddyDemo(logger *zap.Logger, cfg Config) {
	b, err := buddy.New(cfg.Buddy.MaxPages, nil)
	if err != nil {
		logger.Error("buddy construction failed", zap.Error(err))
		return
	}
	defer b.Close()

	var blocks [][]byte
	for {
		p := b.Alloc(cfg.Buddy.AllocSize)
		if p == nil {
			break
		}
		blocks = append(blocks, p)
	}
	logger.Info("buddy region exhausted", zap.Int("blocks_allocated", len(blocks)))

	for _, p := range blocks {
		b.Free(p)
	}

	freeOrders := b.FreeOrders()
	gauges.buddyFreeOrders.Set(float64(freeOrders))
	logger.Info("buddy demo complete", zap.Int("free_orders", freeOrders))
}

func runHashMapDemo(logger *zap.Logger, cfg Config) {
	m := hashmap.New[int, int](hashmap.HashUint64, cfg.HashMap.InitialOrder)
	for i := 0; i < cfg.HashMap.Keys; i++ {
		m.Set(i, i*i)
	}
	// Drain any rehash still in flight so the reported size reflects the
	// map's settled, post-migration state.
	for i := 0; i < 4*cfg.HashMap.Keys && m.IsRehashing(); i++ {
		m.Contains(0)
	}

	gauges.hashmapSize.Set(float64(m.Size()))
	gauges.hashmapBuckets.Set(float64(m.NrBuckets()))
	logger.Info("hashmap demo complete",
		zap.Int("size", m.Size()),
		zap.Int("buckets", m.NrBuckets()),
		zap.Bool("rehashing", m.IsRehashing()),
	)
}

func runHeapDemo(logger *zap.Logger, cfg Config) {
	h := heap.New[int](func(a, b int) bool { return a < b })
	for _, v := range cfg.Heap.Values {
		h.Push(v)
	}

	var sorted []int
	for h.Len() > 0 {
		v, err := h.Pop()
		if err != nil {
			logger.Error("unexpected pop failure", zap.Error(err))
			break
		}
		sorted = append(sorted, v)
	}

	gauges.heapSize.Set(float64(h.Len()))
	logger.Info("heap demo complete", zap.Ints("sorted", sorted))
}
