package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

const defaultBaseURL = "http://localhost:8080"

var (
	apiURL      string
	offlinePath string
)

var rootCmd = &cobra.Command{
	Use:           "gita",
	Short:         "Read verses from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Read a random verse, browse the eighteen chapters or send a message.

By default the CLI talks to a running api-server (--api). With --offline
it loads a dataset file or URL directly and needs no server.`,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random verse",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		v, err := b.Random(cmd.Context())
		if err != nil {
			return err
		}
		printVerse(cmd.OutOrStdout(), v)
		return nil
	},
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List the chapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		items, err := b.Chapters(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, ch := range items {
			fmt.Fprintf(out, "%2d  %s  (%s, %d verses)\n", ch.Number, ch.TitleSanskrit, ch.TitleEnglish, ch.VerseCount)
		}
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <chapter>",
	Short: "Print every verse of a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		ch, err := b.Chapter(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Chapter %d: %s\n%s\n\n", ch.Chapter, ch.Sanskrit, ch.English)
		for _, v := range ch.Verses {
			printVerse(out, v)
		}
		return nil
	},
}

var verseCmd = &cobra.Command{
	Use:   "verse <chapter> <verse>",
	Short: "Print a single verse",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		v, err := b.Verse(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			printJSON(v)
			return nil
		}
		printVerse(cmd.OutOrStdout(), v)
		return nil
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		message, _ := cmd.Flags().GetString("message")
		if name == "" || email == "" || message == "" {
			return fmt.Errorf("name, email, and message are required")
		}

		client := &http.Client{Timeout: 15 * time.Second}
		payload := map[string]string{"name": name, "email": email, "message": message}
		var resp struct {
			ID        string `json:"id"`
			Forwarded bool   `json:"forwarded"`
		}
		if err := doJSON(cmd.Context(), client, http.MethodPost, apiURL+"/api/contact", payload, &resp); err != nil {
			return fmt.Errorf("send failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ message sent (%s)\n", resp.ID)
		return nil
	},
}

var arrowsCmd = &cobra.Command{
	Use:   "arrows",
	Short: "Stream the decorative arrow events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint, err := websocketURL(apiURL, "/ws/arrows")
		if err != nil {
			return fmt.Errorf("ws url: %w", err)
		}
		return runWebSocket(cmd.Context(), endpoint, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("GITAHUB_API", defaultBaseURL), "API base URL")
	rootCmd.PersistentFlags().StringVar(&offlinePath, "offline", "", "read a dataset file or URL directly instead of the API")

	verseCmd.Flags().Bool("json", false, "print the verse as JSON")

	contactCmd.Flags().String("name", "", "your name")
	contactCmd.Flags().String("email", "", "your email address")
	contactCmd.Flags().String("message", "", "message text")

	rootCmd.AddCommand(randomCmd, chaptersCmd, readCmd, verseCmd, contactCmd, arrowsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func runWebSocket(ctx context.Context, wsURL string, out io.Writer) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[arrows] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(msg))
	}
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}
