package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cognos/internal/agent"
	"cognos/internal/config"
	"cognos/internal/logging"
	"cognos/internal/persona"
	"cognos/internal/store"
	"cognos/internal/tools"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	providerFlag string
	modelFlag    string
	modeFlag     string
	personaFlag  string
	styleFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "cognos",
	Short: "Cognos - multi-provider AI agent chat",
	Long: `Cognos is a conversational AI agent with behavior modes (standard,
creative, deep research, legendary research, live co-pilot), named
personas, canned lookup tools, and search-grounded fallback.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()
		return runChat(cmd.Context(), rt)
	},
}

// runtime bundles the wired collaborators for one CLI invocation.
type runtime struct {
	cfg        *config.Config
	kv         store.KV
	history    *store.History
	profiles   *store.Profiles
	dispatcher *agent.Dispatcher
}

func (r *runtime) Close() {
	if err := r.kv.Close(); err != nil {
		logging.StoreError("Failed to close store: %v", err)
	}
}

func newRuntime() (*runtime, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if providerFlag != "" {
		cfg.Provider = providerFlag
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}

	if cfg.PersonaOverrides != "" {
		if err := persona.LoadOverrides(cfg.PersonaOverrides); err != nil {
			logging.Boot("Ignoring persona overrides: %v", err)
		}
	}

	var kv store.KV
	kv, err = store.NewSQLiteStore(cfg.DataPath)
	if err != nil {
		logging.StoreError("Falling back to in-memory store: %v", err)
		kv = store.NewMemoryStore()
	}

	profiles := store.NewProfiles(kv)
	dispatcher := agent.NewDispatcher(agent.Config{
		Registry:         tools.NewDefaultRegistry(),
		Profiles:         profiles,
		GoogleCredential: cfg.GeminiAPIKey,
	})

	return &runtime{
		cfg:        cfg,
		kv:         kv,
		history:    store.NewHistory(kv),
		profiles:   profiles,
		dispatcher: dispatcher,
	}, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.cognos/config.json)")
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "Provider override (google, openai, anthropic)")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Model id override")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "standard", "Behavior mode (standard, creative, deep, legendary, copilot)")
	rootCmd.Flags().StringVar(&personaFlag, "persona", "", "Persona id for this session")
	rootCmd.Flags().StringVar(&styleFlag, "style", "", "Ghostwriter artist style id")

	rootCmd.AddCommand(personasCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
