package renderer

import (
	"sync"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band   Band
	TaskID int // For deterministic ordering
}

// BandResult contains the pixels of a finished band
type BandResult struct {
	TaskID int
	Pixels []byte // Row-major RGB triples for the band's rows
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders bands until the task queue is closed
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a pool of numWorkers workers sharing one raytracer.
// maxTasks sizes the queues so submitting never blocks.
func NewWorkerPool(raytracer *Raytracer, numWorkers, maxTasks int) *WorkerPool {
	numWorkers = max(1, numWorkers)

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for all submitted tasks to finish and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result; ok is false once all results are drained
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- BandResult{
			TaskID: task.TaskID,
			Pixels: w.raytracer.RenderBand(task.Band),
		}
	}
}
