package renderer

import (
	"context"
	"sync"

	"github.com/df07/go-raytracer/pkg/core"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Row int
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row      int
	Pixels   []core.RGB
	Samples  int     // Samples traced for the whole row
	Variance float64 // Sum of per-pixel estimate variances
	Err      error
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with room for maxTasks queued rows.
// Submitting more than maxTasks rows before results are drained blocks.
func NewWorkerPool(raytracer *Raytracer, maxTasks, numWorkers int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers. The result queue is closed once every worker exits.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}

	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()
}

// Stop signals that no more tasks will be submitted
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result; ok is false once all workers are done
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop. Once ctx is done remaining tasks are
// drained and reported with the context error.
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- RowResult{Row: task.Row, Err: err}
			continue
		}
		w.resultQueue <- w.raytracer.RenderRow(task.Row)
	}
}
