package runner

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

// caseWork is one unit of parallel work. The index pins the record back
// to its input position so pool scheduling never reorders results.
type caseWork struct {
	index int
	c     probe.Case
}

type caseResult struct {
	index int
	rec   types.OutcomeRecord
}

// parallelExecutor fans cases out over a bounded worker pool. Cases
// share no state, so any interleaving yields the same records.
type parallelExecutor struct {
	runner      *Runner
	concurrency int
	log         *logrus.Logger
}

func newParallelExecutor(r *Runner, concurrency int) *parallelExecutor {
	if concurrency > 32 {
		r.log.WithField("concurrency", concurrency).Warn("Very high concurrency requested")
	}
	return &parallelExecutor{
		runner:      r,
		concurrency: concurrency,
		log:         r.log,
	}
}

func (pe *parallelExecutor) execute(ctx context.Context, cases []probe.Case) ([]types.OutcomeRecord, error) {
	if len(cases) == 0 {
		return nil, nil
	}

	pe.log.WithFields(logrus.Fields{
		"cases":       len(cases),
		"concurrency": pe.concurrency,
	}).Debug("Starting parallel execution")

	// Conservative buffering keeps memory flat regardless of case count.
	bufferSize := min(pe.concurrency*2, 100)
	workChan := make(chan caseWork, bufferSize)
	resultChan := make(chan caseResult, bufferSize)

	var wg sync.WaitGroup
	for i := 0; i < pe.concurrency; i++ {
		wg.Add(1)
		go pe.worker(ctx, &wg, workChan, resultChan)
	}

	go func() {
		defer close(workChan)
		for i, c := range cases {
			select {
			case workChan <- caseWork{index: i, c: c}:
			case <-ctx.Done():
				pe.log.Debug("Context cancelled while sending work")
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	slots := make([]*types.OutcomeRecord, len(cases))
	for res := range resultChan {
		rec := res.rec
		slots[res.index] = &rec
	}

	// Cancellation leaves unfilled slots; everything finished is kept.
	records := make([]types.OutcomeRecord, 0, len(cases))
	for _, slot := range slots {
		if slot != nil {
			records = append(records, *slot)
		}
	}
	if err := ctx.Err(); err != nil {
		return records, err
	}
	return records, nil
}

func (pe *parallelExecutor) worker(ctx context.Context, wg *sync.WaitGroup, workChan <-chan caseWork, resultChan chan<- caseResult) {
	defer wg.Done()
	for {
		select {
		case work, ok := <-workChan:
			if !ok {
				return
			}
			rec := pe.runner.runCase(ctx, work.c)
			select {
			case resultChan <- caseResult{index: work.index, rec: rec}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
