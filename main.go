package main

import (
	"context"
	"os"
	"os/signal"
	"slackcmd/internal/adapters/handler"
	"slackcmd/internal/adapters/sender"
	"slackcmd/internal/core/service"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting slackcmd...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	log.Info().Msg("reading config file...")
	if err := loadConfig("."); err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	setupLogging(viper.GetString("bot.log_level"), viper.GetString("bot.log_format"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	botToken := viper.GetString("slack.bot_token")
	appToken := viper.GetString("slack.app_token")
	if botToken == "" || appToken == "" {
		log.Fatal().Msg("slack bot and app tokens are required")
	}

	api := slack.New(botToken,
		slack.OptionAppLevelToken(appToken),
		slack.OptionDebug(viper.GetBool("slack.debug")),
	)
	client := sender.NewSlack(api)

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timeout for handler in config")
	}

	state, err := service.NewState(ctx, client, buildHandlers())
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing bot state")
	}

	dispatcher := service.NewDispatcher(state, handlerTimeout)
	listener := handler.NewListener(socketmode.New(api), dispatcher, state)

	log.Info().Str("marker", state.Marker).Msg("bot listening")
	if err := listener.Run(ctx); err != nil {
		log.Error().Err(err).Msg("listener exited with error")
	}

	log.Info().Msg("waiting for running handlers to finish")
	dispatcher.Wait()
	log.Info().Msg("bye")
}
