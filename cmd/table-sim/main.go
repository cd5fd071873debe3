// Command table-sim drives a running pontoon server with draw traffic and
// prints the resulting leaderboard. Useful for eyeballing ranking behavior
// under load.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

// Default configuration constants.
const (
	defaultPlayers = 10
	defaultDraws   = 3
	defaultTimeout = 10 * time.Second
)

type drawRequest struct {
	PlayerID  string `json:"player_id"`
	RequestID string `json:"request_id"`
}

type drawResponse struct {
	PlayerID string `json:"player_id"`
	Card     int    `json:"card"`
	Score    int    `json:"score"`
	Busted   bool   `json:"busted"`
	Outcome  string `json:"outcome"`
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9090", "Base URL of the service")
		players = flag.Int("players", defaultPlayers, "Number of players to simulate")
		draws   = flag.Int("draws", defaultDraws, "Number of draws per player")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	ctx := context.Background()

	for round := 0; round < *draws; round++ {
		for p := 0; p < *players; p++ {
			player := fmt.Sprintf("player-%03d", p)
			res, err := postDraw(ctx, client, *baseURL, player)
			if err != nil {
				os.Stderr.WriteString("draw failed: " + err.Error() + "\n")
				continue
			}
			fmt.Printf("%s: card=%d score=%d busted=%v outcome=%s\n",
				res.PlayerID, res.Card, res.Score, res.Busted, res.Outcome)
		}
	}

	board, err := getLeaderboard(ctx, client, *baseURL)
	if err != nil {
		os.Stderr.WriteString("leaderboard fetch failed: " + err.Error() + "\n")
		return
	}
	fmt.Println("leaderboard: " + board)
}

func postDraw(ctx context.Context, client *http.Client, baseURL, player string) (*drawResponse, error) {
	body, err := json.Marshal(drawRequest{PlayerID: player, RequestID: uuid.NewString()})
	if err != nil {
		return nil, fmt.Errorf("marshal draw request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/draw", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create draw request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post draw: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var res drawResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode draw response: %w", err)
	}
	return &res, nil
}

func getLeaderboard(ctx context.Context, client *http.Client, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/leaderboard", nil)
	if err != nil {
		return "", fmt.Errorf("create leaderboard request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get leaderboard: %w", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("read leaderboard response: %w", err)
	}
	return buf.String(), nil
}
