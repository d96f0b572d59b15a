package renderer

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestWorkerPool_RendersAllTasks(t *testing.T) {
	rt := NewRaytracer(scene.NewScene("empty", core.Gray(0)), 12, 8, newTestConfig(), &MockLogger{})
	tiles := NewTileGrid(12, 8, 4, 1)
	img := image.NewRGBA(image.Rect(0, 0, 12, 8))

	pool := NewWorkerPool(rt, 3, len(tiles))
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Ctx: context.Background(), Tile: tile, TaskID: i, Image: img})
	}

	seen := make(map[int]bool)
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if result.Error != nil {
			t.Errorf("Task %d failed: %v", result.TaskID, result.Error)
		}
		seen[result.TaskID] = true
	}
	pool.Stop()

	if len(seen) != len(tiles) {
		t.Errorf("Expected %d distinct results, got %d", len(tiles), len(seen))
	}
	if _, ok := pool.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
}

func TestWorkerPool_CancelledTasks(t *testing.T) {
	rt := NewRaytracer(scene.NewScene("empty", core.Gray(0)), 4, 4, newTestConfig(), &MockLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewWorkerPool(rt, 1, 1)
	pool.Start()
	defer pool.Stop()

	pool.SubmitTask(TileTask{Ctx: ctx, Tile: NewTile(0, image.Rect(0, 0, 4, 4), 1), TaskID: 0, Image: image.NewRGBA(image.Rect(0, 0, 4, 4))})
	result, _ := pool.GetResult()
	if !errors.Is(result.Error, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", result.Error)
	}
}

func TestNewWorkerPool_DefaultsToCPUCount(t *testing.T) {
	rt := NewRaytracer(scene.NewScene("empty", core.Gray(0)), 4, 4, newTestConfig(), &MockLogger{})
	if NewWorkerPool(rt, 0, 1).GetNumWorkers() < 1 {
		t.Error("Expected at least one worker")
	}
}
