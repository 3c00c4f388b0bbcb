// Command reset clears the shared leaderboard collection. The in-game reset
// only touches a browser's cookie; this is the operator's way to wipe the
// remote scores.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/osse101/SlotMachine_Go/internal/bootstrap"
	"github.com/osse101/SlotMachine_Go/internal/config"
	"github.com/osse101/SlotMachine_Go/internal/domain"
)

func main() {
	player := flag.String("player", "", "delete only this player's document")
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	target := fmt.Sprintf("every document in %q", cfg.LeaderboardCollection)
	name := domain.NormalizePlayerName(*player)
	if name != "" {
		target = fmt.Sprintf("%q from %q", name, cfg.LeaderboardCollection)
	}

	if !*yes && !confirm(fmt.Sprintf("Delete %s on the %s backend?", target, cfg.LeaderboardBackend)) {
		log.Println("Aborted.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	backend, err := bootstrap.OpenLeaderboard(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open leaderboard: %v", err)
	}
	defer backend.Close()

	if name != "" {
		err = backend.Leaderboard.Delete(ctx, name)
	} else {
		err = backend.Leaderboard.DeleteAll(ctx)
	}
	if err != nil {
		backend.Close()
		log.Fatalf("Failed to delete %s: %v", target, err)
	}

	log.Printf("✅ Deleted %s\n", target)
}

func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	var answer string
	if _, err := fmt.Fscanln(os.Stdin, &answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}
