// Command ldpcbench sweeps the FT8 LDPC decoders across a range of
// simulated channel SNRs and reports convergence rate, the way a developer
// would exercise ldpc.DecodeProb/DecodeLLR without wiring up a real FT8
// receiver.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/cwsl/ft8ldpc/internal/ldpcsim"
	"github.com/cwsl/ft8ldpc/ldpc"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML config file (optional; defaults are used if omitted)")
	flag.Parse()

	config := DefaultConfig()
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("[ldpcbench] failed to load config: %v", err)
		}
		config = *loaded
	}

	runID := uuid.New().String()
	log.Printf("[ldpcbench] starting run %s: domain=%s trials=%d iterations=%d", runID, config.Run.Domain, config.Run.Trials, config.Run.Iterations)

	var metrics *BenchMetrics
	if config.Metrics.Enabled {
		metrics = NewBenchMetrics()
	}

	if err := run(config, runID, metrics); err != nil {
		log.Fatalf("[ldpcbench] run %s failed: %v", runID, err)
	}
}

func run(config Config, runID string, metrics *BenchMetrics) error {
	rnd := rand.New(rand.NewPCG(uint64(config.Run.Seed), 0))

	for ebN0dB := config.Channel.EbN0dBMin; ebN0dB <= config.Channel.EbN0dBMax; ebN0dB += config.Channel.EbN0dBStep {
		channel := ldpcsim.NewChannel(ebN0dB, rand.NewPCG(rnd.Uint64(), rnd.Uint64()))

		converged := 0
		for trial := 0; trial < config.Run.Trials; trial++ {
			var payload [91]uint8
			for i := range payload {
				payload[i] = uint8(rnd.IntN(2))
			}
			cw := ldpcsim.Encode(payload)

			var llr [174]float64
			copy(llr[:], channel.Perturb(cw[:]))

			_, score := decode(config.Run.Domain, llr, config.Run.Iterations)
			ok := score == 83
			if ok {
				converged++
			}
			if metrics != nil {
				metrics.RecordDecode(config.Run.Domain, ebN0dB, config.Run.Iterations, score, ok)
			}
		}

		log.Printf("[ldpcbench] Eb/N0=%.1fdB: %d/%d converged", ebN0dB, converged, config.Run.Trials)
	}

	if metrics != nil {
		if err := metrics.Push(config.Metrics.PushURL, config.Metrics.JobName, runID); err != nil {
			return fmt.Errorf("pushing metrics: %w", err)
		}
	}

	return nil
}

func decode(domain string, llr [174]float64, iters int) (hard [174]uint8, score int) {
	if domain == "prob" {
		return ldpc.DecodeProb(llr, iters)
	}
	return ldpc.DecodeLLR(llr, iters)
}
