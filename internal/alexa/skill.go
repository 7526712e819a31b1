package alexa

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stadtbots/seestadt-skill/internal/models"
	"github.com/stadtbots/seestadt-skill/internal/registry"
	"github.com/stadtbots/seestadt-skill/internal/resolver"
	"github.com/stadtbots/seestadt-skill/internal/shops"
	"github.com/stadtbots/seestadt-skill/internal/speech"
	"github.com/stadtbots/seestadt-skill/internal/transit"
)

const phonemeSeestadtBot = `Seestadt<phoneme alphabet="ipa" ph="bɒt">.bot</phoneme>`

const helpText = "Du kannst mich nach den Öffnungszeiten von Geschäften fragen. " +
	"Außerdem kenne ich alle Öffi-Abfahrtszeiten. " +
	"Frag mich einfach, wann der nächste Bus oder die nächste U-Bahn fährt."

// Skill wires the resolver, registry, feed and directory into the intent
// handlers. One Skill serves all requests; it holds no per-request state.
type Skill struct {
	registry  *registry.Registry
	monitor   *transit.Monitor
	directory *shops.Directory
	// now is injectable for deterministic opening-hours tests.
	now func() time.Time
}

func NewSkill(reg *registry.Registry, monitor *transit.Monitor, directory *shops.Directory) *Skill {
	return &Skill{
		registry:  reg,
		monitor:   monitor,
		directory: directory,
		now:       time.Now,
	}
}

// HandleRequest dispatches one verified request envelope. It never returns
// an error to the platform; failures become spoken apologies.
func (s *Skill) HandleRequest(ctx context.Context, env RequestEnvelope) (Response, error) {
	switch env.Request.Type {
	case "LaunchRequest":
		return s.handleLaunch(), nil
	case "SessionEndedRequest":
		if env.Request.Error != nil {
			log.Error().
				Str("reason", env.Request.Reason).
				Str("error_type", env.Request.Error.Type).
				Str("error_message", env.Request.Error.Message).
				Msg("session ended with error")
		}
		return NewBuilder().Build(), nil
	case "IntentRequest":
		return s.handleIntent(ctx, env), nil
	}

	log.Warn().Str("type", env.Request.Type).Msg("unhandled request type")
	return s.handleFallback(), nil
}

func (s *Skill) handleIntent(ctx context.Context, env RequestEnvelope) Response {
	intent := env.Request.Intent
	switch intent.Name {
	case "StationIntent":
		return s.handleStation(ctx, intent)
	case "OpeningHoursIntent":
		return s.handleOpeningHours(ctx, intent)
	case "ShopInfoIntent":
		return s.handleShopInfo(ctx, intent)
	case "ElevatorIntent":
		return s.handleElevator(ctx, intent)
	case "AMAZON.HelpIntent":
		return s.handleHelp()
	case "AMAZON.CancelIntent", "AMAZON.StopIntent":
		return s.handleStop()
	}

	log.Warn().Str("intent", intent.Name).Msg("unhandled intent")
	return s.handleFallback()
}

func (s *Skill) handleLaunch() Response {
	return NewBuilder().
		Speak(fmt.Sprintf("Hallo vom %s! %s", phonemeSeestadtBot, helpText)).
		Reprompt(fmt.Sprintf("Servus noch einmal! Ich bin der %s! %s", phonemeSeestadtBot, helpText)).
		WithSimpleCard("Seestadt.bot", helpText).
		Build()
}

func (s *Skill) handleHelp() Response {
	return NewBuilder().
		Speak(helpText).
		WithSimpleCard("Hilfe", helpText).
		Build()
}

func (s *Skill) handleStop() Response {
	return NewBuilder().
		Speak("Tschüss, bis bald!").
		WithSimpleCard("Tschüss!", "Bis bald.").
		WithShouldEndSession(true).
		Build()
}

func (s *Skill) handleFallback() Response {
	return NewBuilder().
		Speak("Hoppala! Kannst du das noch einmal sagen?").
		Reprompt("Entschuldige nochmals, aber ich habe dich nicht verstanden. Kannst du das wiederholen?").
		Build()
}

// handleStation answers "when does the next bus/metro leave". Without a
// resolvable vehicleType slot no line filter is applied and all lines at the
// station are announced; the fallback station is Hannah-Arendt-Platz for bus
// queries and Seestadt otherwise.
func (s *Skill) handleStation(ctx context.Context, intent Intent) Response {
	var lineFilter []models.LineID
	fallback := models.StationSEE

	vehicle, hasVehicle := resolver.Vehicle(intent.Slots["vehicleType"].ResolverInput())
	if hasVehicle {
		lineFilter = s.registry.Lines(vehicle)
		if vehicle == models.VehicleBus {
			fallback = models.StationHAP
		}
	}

	station, ok := resolver.Station(intent.Slots["stopName"].ResolverInput(), true)
	if !ok {
		station = fallback
	}

	var rbls []string
	var err error
	if hasVehicle && len(lineFilter) == 0 {
		// A vehicle category without any lines yet, e.g. tram.
		rbls = nil
	} else {
		rbls, err = s.registry.RBLsForStation(station, lineFilter...)
		if err != nil {
			// Registry and resolver disagree about the station universe.
			log.Error().Err(err).Str("station", string(station)).Msg("resolved station missing from registry")
			return s.handleFallback()
		}
	}

	if len(rbls) == 0 {
		stationName, nameErr := s.registry.StationName(station)
		if nameErr != nil {
			stationName = string(station)
		}
		text := fmt.Sprintf("Für dieses Verkehrsmittel kenne ich an der Station %s keine Linien.", stationName)
		return NewBuilder().
			Speak(text).
			WithSimpleCard(stationName, text).
			Build()
	}

	info, err := s.monitor.StationInfo(ctx, rbls)
	if err != nil {
		return NewBuilder().
			Speak("Leider funktioniert der Server der Wiener Linien gerade nicht.").
			WithSimpleCard("Fehler", "Die Wiener Linien antworten nicht.").
			Build()
	}

	answer := speech.StationInfo(s.registry, station, info)
	return NewBuilder().
		Speak(answer.Text).
		WithSimpleCard(answer.Card.Title, answer.Card.Content).
		Build()
}

// shopEntry resolves the shopName slot against the directory: a structured
// resolution looks the entry up by id, free text runs a fenced search.
func (s *Skill) shopEntry(ctx context.Context, intent Intent) (*models.ShopEntry, error) {
	slot := intent.Slots["shopName"]

	if id := slot.resolvedID(); id != "" {
		return s.directory.Entry(ctx, id)
	}
	if slot.Value == "" {
		return nil, shops.ErrNotFound
	}
	return s.directory.Search(ctx, slot.Value, shops.FenceSeestadt)
}

func (s *Skill) handleOpeningHours(ctx context.Context, intent Intent) Response {
	entry, err := s.shopEntry(ctx, intent)
	if err != nil {
		if !errors.Is(err, shops.ErrNotFound) {
			log.Error().Err(err).Msg("shop lookup failed")
		}
		text := "Leider konnte ich nichts dazu finden."
		return NewBuilder().Speak(text).WithSimpleCard("Öffnungszeiten", text).Build()
	}

	text := speech.OpeningHoursText(entry, s.now())
	return NewBuilder().Speak(text).WithSimpleCard("Öffnungszeiten", text).Build()
}

func (s *Skill) handleShopInfo(ctx context.Context, intent Intent) Response {
	entry, err := s.shopEntry(ctx, intent)
	if err != nil {
		if !errors.Is(err, shops.ErrNotFound) {
			log.Error().Err(err).Msg("shop lookup failed")
		}
		text := "Leider konnte ich nichts dazu finden."
		return NewBuilder().Speak(text).WithSimpleCard("Geschäftsinfo", text).Build()
	}

	text := speech.ShopInfoText(entry, s.now())
	return NewBuilder().Speak(text).WithSimpleCard(entry.DisplayName(), text).Build()
}

// handleElevator reports elevator disruptions at the U2 stations. Stations
// without elevator infrastructure fall back to Seestadt.
func (s *Skill) handleElevator(ctx context.Context, intent Intent) Response {
	station, ok := resolver.Station(intent.Slots["stopName"].ResolverInput(), true)
	if !ok || !s.registry.HasElevator(station) {
		station = models.StationSEE
	}

	rbls, err := s.registry.RBLsForStation(station)
	if err != nil {
		log.Error().Err(err).Str("station", string(station)).Msg("resolved station missing from registry")
		return s.handleFallback()
	}

	stationName, _ := s.registry.StationName(station)
	text := speech.ElevatorText(stationName, s.monitor.ElevatorInfo(ctx, rbls))
	return NewBuilder().Speak(text).WithSimpleCard("Aufzugsinfo", text).Build()
}
