package main

import (
	"context"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/stadtbots/seestadt-skill/internal/alexa"
	"github.com/stadtbots/seestadt-skill/internal/config"
	"github.com/stadtbots/seestadt-skill/internal/registry"
	"github.com/stadtbots/seestadt-skill/internal/shops"
	"github.com/stadtbots/seestadt-skill/internal/transit"
	"github.com/stadtbots/seestadt-skill/pkg/http/client"
)

var (
	skill     *alexa.Skill
	setupOnce sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not load configuration")
		}
		cfg.InitializeLogging()

		log.Info().Str("env", cfg.Environment).Msg("Environment")
		log.Debug().Msg("Debug logs enabled")

		wlClient := client.New(client.Options{
			Timeout: cfg.WienerLinienTimeout(),
		})
		skClient := client.New(client.Options{
			BaseURL: cfg.StadtKatalog.BaseURL,
			Timeout: cfg.StadtKatalogTimeout(),
		})

		skill = alexa.NewSkill(
			registry.New(),
			transit.NewMonitor(wlClient, cfg.WienerLinien.MonitorURL, cfg.WienerLinien.ElevatorURL),
			shops.NewDirectory(skClient, cfg.StadtKatalog.Blacklist, cfg.StadtKatalog.VagueTerms),
		)
	})
}

func handleRequest(ctx context.Context, env alexa.RequestEnvelope) (alexa.Response, error) {
	log.Info().
		Str("type", env.Request.Type).
		Str("intent", env.Request.Intent.Name).
		Msg("Handling skill request")

	return skill.HandleRequest(ctx, env)
}

func main() {
	lambda.Start(handleRequest)
}
