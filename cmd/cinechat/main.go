package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cinemind/cinechat/internal/profile"
	"github.com/cinemind/cinechat/plugin/ai"
	"github.com/cinemind/cinechat/plugin/ai/agent"
	"github.com/cinemind/cinechat/plugin/ai/agent/tools"
	"github.com/cinemind/cinechat/plugin/ai/cache"
	"github.com/cinemind/cinechat/plugin/ai/guard"
	"github.com/cinemind/cinechat/plugin/ai/router"
	"github.com/cinemind/cinechat/server"
	"github.com/cinemind/cinechat/store"
	"github.com/cinemind/cinechat/store/db"
)

const version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "cinechat",
	Short: "Movie recommendation chat service",
	RunE: func(_ *cobra.Command, _ []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		pipeline, err := buildPipeline(p)
		if err != nil {
			return err
		}
		defer pipeline.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(p, pipeline.Router).Start(ctx)
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat console",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		pipeline, err := buildPipeline(p)
		if err != nil {
			return err
		}
		defer pipeline.Close()

		return runConsole(cmd.Context(), os.Stdin, os.Stdout, pipeline.Router.Handle)
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server: "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address for the server")
	rootCmd.PersistentFlags().Int("port", 8080, "binding port for the server")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("cinechat")
	viper.AutomaticEnv()

	rootCmd.AddCommand(chatCmd)
}

func loadProfile() (*profile.Profile, error) {
	p := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Version: version,
	}
	p.FromEnv()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if p.IsDev() {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	return p, nil
}

// pipeline bundles the router with the resources it owns.
type pipeline struct {
	Router  router.RouterService
	manager *store.Manager
}

func (p *pipeline) Close() {
	if err := p.manager.Close(); err != nil {
		slog.Error("failed to close catalog connection", "error", err)
	}
}

// buildPipeline wires the chat pipeline from the profile: LLM services,
// moderation guard, catalog store, search agent, and the router on top.
func buildPipeline(p *profile.Profile) (*pipeline, error) {
	aiConfig := ai.NewConfigFromProfile(p)
	if err := aiConfig.Validate(); err != nil {
		return nil, err
	}

	llmService, err := ai.NewLLMService(&aiConfig.LLM)
	if err != nil {
		return nil, err
	}

	guardLLMConfig := aiConfig.LLM
	guardLLMConfig.Model = aiConfig.Guard.Model
	guardLLMService, err := ai.NewLLMService(&guardLLMConfig)
	if err != nil {
		return nil, err
	}

	manager := store.NewManager(func() (store.Driver, error) {
		return db.NewDriver(p)
	})

	searchTool, err := tools.NewMovieSearchTool(manager, nil)
	if err != nil {
		return nil, err
	}

	routerService := router.NewService(router.Config{
		Guard:        guard.NewService(guard.NewLLMClassifier(guardLLMService)),
		Interpreter:  guard.NewInterpreter(aiConfig.Guard.RefusalMarkers, aiConfig.Guard.SearchMarkers),
		Completions:  cache.NewCompletionService(llmService, cache.DefaultCapacity),
		Orchestrator: agent.NewToolRunner(),
		Agent: &agent.Agent{
			Name:         "MovieRecommendationAgent",
			Instructions: "You are a helpful movie recommendation agent.",
			Tools:        []agent.Tool{searchTool},
		},
	})

	return &pipeline{Router: routerService, manager: manager}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
