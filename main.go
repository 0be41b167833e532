package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlbertPrograms/gameOfLife/model"
	"github.com/AlbertPrograms/gameOfLife/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// Initialize game
	field, history, pool, renderer, stats := initializeGame(config)
	displayGameInfo(config, field)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	viewport := model.Viewport{
		Width:  config.ViewportWidth,
		Height: config.ViewportHeight,
	}

	var (
		stagnantCount = 0
		lastReseedGen = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				history.Len(), time.Since(stats.StartTime).Seconds())
			saveGameState(config, history, field)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		population, status, isStagnant := updateGameState(field, history, lastFrameTime, stats, config)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status and board
		generation := history.Len()
		displayGameStatus(generation, population, status, field, stats, lastReseedGen)
		if config.FollowLife {
			viewport = viewport.Follow(field)
		}
		renderer.Display(field, viewport)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Check reseed conditions
		shouldReseed, reseedReason := checkReseedConditions(population, stagnantCount, config)

		if shouldReseed {
			if !config.AutoReseed {
				fmt.Printf("\n🏁 Stopping due to %s\n", reseedReason)
				break
			}
			fmt.Printf("🔄 Reseeding due to %s...\n", reseedReason)

			field = reseedGame(config, history, pool)
			lastReseedGen = 0
			stagnantCount = 0
		}

		// Calculate next generation and record it
		field = field.NextGeneration(config.UseParallel, pool)
		history.Append(field)

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}

	saveGameState(config, history, field)
}
