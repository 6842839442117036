package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/config"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/db"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/endpoints"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/token"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the job portal application server",
	Long: `Run the job portal application server

To run the server requires the environment variables
JOBPORTAL_TOKEN_SIGNING_KEY and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		signingKeyB64, ok := os.LookupEnv("JOBPORTAL_TOKEN_SIGNING_KEY")
		if !ok {
			fmt.Fprintln(os.Stderr, "JOBPORTAL_TOKEN_SIGNING_KEY environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		signingKey, err := base64.StdEncoding.DecodeString(signingKeyB64)
		if err != nil {
			fmt.Println("Bad JOBPORTAL_TOKEN_SIGNING_KEY:", err)
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Println("Unable to load configuration:", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Println("Invalid configuration:", err)
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{URL: os.Getenv("DATABASE_URL")})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		tokens := token.NewService(signingKey, cfg.TokenLifetime())

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(tokens, cfg, database, host, port)

		endpoints.RegisterAll(s)

		watchConfig, _ := cmd.Flags().GetBool("watch-config")
		if watchConfig {
			go func() {
				if err := config.Watch(nil); err != nil {
					log.Println("Config watcher stopped:", err)
				}
			}()
		}

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload configuration when the config file changes")
}
