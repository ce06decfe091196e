package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "players":
		playersCmd(apiURL, args)
	case "game":
		gameCmd(apiURL, args)
	case "tasks":
		tasksCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Seeder - Development tool for populating the rating backend

USAGE:
  seeder <command> [options]

COMMANDS:
  players   Register fake players
  game      Create a game between two teams drawn from the roster
  tasks     Create pending tasks for random players
  help      Show this help message

ENVIRONMENT:
  API_URL      Backend API URL (default: http://localhost:8080)
  ADMIN_TOKEN  Session token of an admin account (required for game/tasks)

EXAMPLES:
  # Register 8 fake players
  seeder players --count=8

  # Create a 3v3 game and immediately settle it with a random winner
  seeder game --size=3 --settle

  # Create 5 pending tasks worth 25 points each
  seeder tasks --count=5 --points=25`)
}

func adminToken() string {
	token := os.Getenv("ADMIN_TOKEN")
	if token == "" {
		fmt.Println("Error: ADMIN_TOKEN is required for this command")
		fmt.Println("\nLog in with an admin account and export the session token:")
		fmt.Println("  export ADMIN_TOKEN=<token>")
		os.Exit(1)
	}
	return token
}

func playersCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("players", flag.ExitOnError)
	count := fs.Int("count", 8, "Number of fake players to register")
	fs.Parse(args)

	if *count < 1 {
		fmt.Println("Error: --count must be at least 1")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	fmt.Printf("Registering %d players:\n", *count)
	for i := 1; i <= *count; i++ {
		name := fmt.Sprintf("Player%d", i)
		user, err := client.RegisterUser(name)
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i, *count, err)
			os.Exit(1)
		}
		fmt.Printf("  [%d/%d] %s registered (player %s)\n", i, *count, user.Name, user.PlayerID)
	}

	fmt.Println()
	fmt.Println("Done. All accounts use password: seedpassword123")
}

func gameCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("game", flag.ExitOnError)
	name := fs.String("name", "Seeded Match", "Game name")
	size := fs.Int("size", 3, "Players per team")
	settle := fs.Bool("settle", false, "Settle the game with a random winner after creating it")
	fs.Parse(args)

	token := adminToken()
	client := NewAPIClient(apiURL)

	fmt.Print("Fetching roster... ")
	players, err := client.ListPlayers(token)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%d players)\n", len(players))

	needed := *size * 2
	if len(players) < needed {
		fmt.Printf("Error: need %d players for a %dv%d game, roster has %d\n", needed, *size, *size, len(players))
		fmt.Println("Run 'seeder players' first.")
		os.Exit(1)
	}

	rand.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})

	red := make([]string, 0, *size)
	blue := make([]string, 0, *size)
	for i := 0; i < *size; i++ {
		red = append(red, players[i].ID)
		blue = append(blue, players[*size+i].ID)
	}

	fmt.Print("Creating game... ")
	game, err := client.CreateGame(token, *name, red, blue)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (game: %s)\n", game.ID)

	for _, team := range game.Teams {
		fmt.Printf("  %s:\n", team.Name)
		for _, p := range team.Players {
			fmt.Printf("    %s\n", p.Name)
		}
	}

	if !*settle {
		fmt.Println()
		fmt.Println("Game left active. Settle it with:")
		fmt.Printf("  PUT /api/v1/games {\"gameId\": %q, \"winnerTeamId\": ...}\n", game.ID)
		return
	}

	winner := game.Teams[rand.Intn(len(game.Teams))]
	fmt.Printf("Settling game, winner %s... ", winner.Name)
	if err := client.SettleGame(token, game.ID, winner.ID); err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}

func tasksCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("tasks", flag.ExitOnError)
	count := fs.Int("count", 5, "Number of tasks to create")
	points := fs.Int("points", 25, "Point value per task")
	complete := fs.Bool("complete", false, "Complete each task right after creating it")
	fs.Parse(args)

	token := adminToken()
	client := NewAPIClient(apiURL)

	fmt.Print("Fetching roster... ")
	players, err := client.ListPlayers(token)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%d players)\n", len(players))

	if len(players) == 0 {
		fmt.Println("Error: roster is empty, run 'seeder players' first")
		os.Exit(1)
	}

	chores := []string{"Carry the nets", "Wash the bibs", "Pump the balls", "Book the pitch", "Run the warmup"}

	fmt.Printf("Creating %d tasks:\n", *count)
	for i := 0; i < *count; i++ {
		player := players[rand.Intn(len(players))]
		name := chores[i%len(chores)]

		task, err := client.CreateTask(token, name, *points, player.ID)
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, *count, err)
			os.Exit(1)
		}
		fmt.Printf("  [%d/%d] %q -> %s (%d pts)\n", i+1, *count, task.Name, player.Name, task.Points)

		if *complete {
			if err := client.CompleteTask(token, task.ID); err != nil {
				fmt.Printf("         FAILED to complete: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("         completed, points credited")
		}
	}
}
