package main

import (
	"fmt"
	"time"

	"github.com/AlbertPrograms/gameOfLife/model"
	"github.com/AlbertPrograms/gameOfLife/utils"
)

// initializeGame sets up the initial field and history
func initializeGame(config utils.Config) (
	*model.Field,
	*model.History,
	*model.FieldPool,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	var pool *model.FieldPool
	if config.UseMemoryPool {
		pool = model.NewFieldPool()
	}

	field, history := loadOrSeed(config)

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return field, history, pool, renderer, stats
}

// loadOrSeed restores a saved game when configured, falling back to a
// freshly seeded field. A failed load leaves no partial state behind.
func loadOrSeed(config utils.Config) (*model.Field, *model.History) {
	if config.LoadPath != "" {
		sg, err := model.LoadGame(config.LoadPath)
		if err != nil {
			fmt.Printf("Load failed, starting fresh: %v\n", err)
		} else {
			history, field := model.Restore(sg)
			return field, history
		}
	}

	field := seedField(config)
	return field, model.NewHistory(field)
}

// seedField populates a new field with patterns inside the viewport
func seedField(config utils.Config) *model.Field {
	field := model.NewField()

	w, h := config.ViewportWidth, config.ViewportHeight
	if w >= 10 && h >= 10 {
		field.Glider(model.Coordinate{X: 2, Y: 2})
		if w >= 20 && h >= 15 {
			field.Glider(model.Coordinate{X: w - 8, Y: 2})
		}

		field.Blinker(model.Coordinate{X: w / 4, Y: h / 4})
		if w >= 30 {
			field.Blinker(model.Coordinate{X: 3 * w / 4, Y: 3 * h / 4})
		}
	}

	field.Randomize(model.Coordinate{}, model.Coordinate{X: w - 1, Y: h - 1}, config.RandomDensity)
	return field
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, field *model.Field) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v, Follow: %v\n",
		config.UseMemoryPool, config.UseParallel, config.FollowLife)
	fmt.Printf("Viewport: %dx%d | Initial living cells: %d\n",
		config.ViewportWidth, config.ViewportHeight, field.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the run statistics and returns status information
func updateGameState(
	field *model.Field,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
	config utils.Config,
) (int, string, bool) {
	var (
		generation = history.Len()
		population = field.Population()
	)

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, population, frameDuration)

	// Check for a static or cycling board
	isStagnant := history.Stagnant(config.StagnationWindow)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if population == 0 {
		status = "Extinct"
	}

	return population, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, population int,
	status string,
	field *model.Field,
	stats *utils.Stats,
	lastReseedGen int,
) {
	boundsInfo := ""
	if minC, maxC, ok := field.Bounds(); ok {
		boundsInfo = fmt.Sprintf(" | Bounds: (%d,%d)..(%d,%d)", minC.X, minC.Y, maxC.X, maxC.Y)
	}

	fmt.Printf("Gen: %d | Living: %d | Status: %s%s\n",
		generation, population, status, boundsInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if generation > lastReseedGen {
		fmt.Printf("Generations since reseed: %d\n", generation-lastReseedGen)
	}
	fmt.Println()
}

// checkReseedConditions determines if the board should be reseeded
func checkReseedConditions(
	population, stagnantCount int,
	config utils.Config,
) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// reseedGame discards the stagnant history and starts a fresh board.
// The discarded snapshots are handed back to the pool.
func reseedGame(config utils.Config, history *model.History, pool *model.FieldPool) *model.Field {
	fmt.Printf("\n🔄 Reseeding...\n")
	time.Sleep(1 * time.Second)

	for n := 1; n <= history.Len(); n++ {
		if f, ok := history.Generation(n); ok {
			model.FieldToPool(f, pool)
		}
	}

	field := seedField(config)
	history.Reset(field)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", field.Population())
	time.Sleep(2 * time.Second)

	return field
}

// saveGameState persists the full history and active field on exit
func saveGameState(config utils.Config, history *model.History, field *model.Field) {
	if config.SavePath == "" {
		return
	}

	if err := model.SaveGame(config.SavePath, model.Snapshot(history, field)); err != nil {
		fmt.Printf("Save failed: %v\n", err)
		return
	}
	fmt.Printf("Game saved to %s\n", config.SavePath)
}
