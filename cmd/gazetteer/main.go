package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pacport/japanese-addresses/internal/config"
	"github.com/pacport/japanese-addresses/internal/db"
	"github.com/pacport/japanese-addresses/internal/etl"
	"github.com/pacport/japanese-addresses/internal/export"
	"github.com/pacport/japanese-addresses/internal/gazetteer"
	"github.com/pacport/japanese-addresses/internal/logging"
	"github.com/pacport/japanese-addresses/internal/patch"
	"github.com/pacport/japanese-addresses/internal/source"
	"github.com/pacport/japanese-addresses/internal/store"
	"github.com/pacport/japanese-addresses/internal/web"
)

var (
	cfg    config.Config
	logger zerolog.Logger
)

func main() {
	var err error
	cfg, err = config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger = logging.New(cfg.LogLevel)

	rootCmd := &cobra.Command{
		Use:   "gazetteer",
		Short: "Japanese address gazetteer builder",
		Long:  `Builds a national address table from the MLIT position references and the Japan Post postal dictionaries, and serves it over a JSON API`,
	}

	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createFetchCmd())
	rootCmd.AddCommand(createSchemaCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// sourceClient builds the archive client from configuration.
func sourceClient() *source.Client {
	return source.NewClient(source.Config{
		BaseURL:      cfg.ISJBaseURL,
		KanaURL:      cfg.KanaURL,
		RomeURL:      cfg.RomeURL,
		OazaEdition:  cfg.OazaEdition,
		GaikuEdition: cfg.GaikuEdition,
		CacheDir:     cfg.CacheDir,
		OazaWorkers:  cfg.OazaWorkers,
		GaikuWorkers: cfg.GaikuWorkers,
	}, logger)
}

// prefCodes lists the codes of the given prefectures in JIS order.
func prefCodes(prefs []gazetteer.Prefecture) []string {
	codes := make([]string, 0, len(prefs))
	for _, pref := range prefs {
		codes = append(codes, pref.Code)
	}
	return codes
}

// createBuildCmd creates the full national build command
func createBuildCmd() *cobra.Command {
	var patchDir string
	var exportPath string
	var prefList []string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the full national build",
		Long: `Download the source archives, aggregate the requested prefectures, backfill postal codes, export raw block points, and load the result into Postgres.
The addresses table is replaced with what this run builds, so a partial build leaves a partial table`,
		Run: func(cmd *cobra.Command, args []string) {
			prefs, err := gazetteer.SelectPrefectures(prefList)
			if err != nil {
				log.Fatalf("Invalid prefecture selection: %v", err)
			}

			conn, err := db.NewConnection(cfg.DBSource)
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			patches, err := patch.Load(patchDir, logger)
			if err != nil {
				log.Fatalf("Failed to load patch overrides: %v", err)
			}

			writer, err := export.NewWriter(exportPath, logger)
			if err != nil {
				log.Fatalf("Failed to create block point export: %v", err)
			}

			pipeline := etl.NewPipeline(sourceClient(), store.NewPostgres(conn.DB, logger), writer, patches, prefs, logger)
			runErr := pipeline.Run(context.Background())

			if err := writer.Close(); err != nil {
				log.Printf("Failed to close block point export: %v", err)
			}
			if runErr != nil {
				log.Fatalf("Build failed: %v", runErr)
			}
		},
	}

	cmd.Flags().StringVar(&patchDir, "patches", cfg.PatchDir, "Directory of per-prefecture override CSVs")
	cmd.Flags().StringVar(&exportPath, "gaiku-out", cfg.GaikuExport, "Output CSV for raw block points")
	cmd.Flags().StringSliceVar(&prefList, "pref", nil, "Prefecture codes to build (default all 47)")

	return cmd
}

// createFetchCmd creates a command that only warms the archive cache
func createFetchCmd() *cobra.Command {
	var prefList []string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download all source archives into the cache",
		Long:  `Download the postal dictionaries and every prefecture's position reference archives without building anything`,
		Run: func(cmd *cobra.Command, args []string) {
			prefs, err := gazetteer.SelectPrefectures(prefList)
			if err != nil {
				log.Fatalf("Invalid prefecture selection: %v", err)
			}

			if err := sourceClient().FetchAll(context.Background(), prefCodes(prefs)); err != nil {
				log.Fatalf("Fetch incomplete: %v", err)
			}
			fmt.Println("All archives cached")
		},
	}

	cmd.Flags().StringSliceVar(&prefList, "pref", nil, "Prefecture codes to fetch (default all 47)")

	return cmd
}

// createSchemaCmd creates the schema preparation command
func createSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the addresses table and indexes",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection(cfg.DBSource)
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			if err := store.NewPostgres(conn.DB, logger).EnsureSchema(context.Background()); err != nil {
				log.Fatalf("Failed to create schema: %v", err)
			}
			fmt.Println("Schema ready")
		},
	}
}

// createServeCmd creates the API server command
func createServeCmd() *cobra.Command {
	var addr string
	var apiKey string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gazetteer over a read-only JSON API",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection(cfg.DBSource)
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			server := web.NewServer(web.Config{Addr: addr, APIKey: apiKey}, conn.DB, logger)
			if err := server.Start(); err != nil {
				log.Fatalf("Server shutdown failed: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", cfg.ServerAddress, "Listen address")
	cmd.Flags().StringVar(&apiKey, "api-key", cfg.APIKey, "Require this X-API-Key header on API requests")

	return cmd
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection(cfg.DBSource)
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			fmt.Println("Database connection successful!")

			var count int
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM addresses").Scan(&count); err != nil {
				log.Printf("Error counting addresses: %v", err)
			} else {
				fmt.Printf("Addresses loaded: %d\n", count)
			}
		},
	}
}
