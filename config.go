package main

import (
	"errors"
	"os"
	"slackcmd/internal/adapters/generator"
	"slackcmd/internal/adapters/jira"
	"slackcmd/internal/core/commands"
	"slackcmd/internal/core/domain"
	"slackcmd/internal/core/service"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// loadConfig reads config.toml from path. A missing file is fine when everything comes from the environment.
func loadConfig(path string) error {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("slackcmd")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// accept the variable names earlier deployments used
	_ = viper.BindEnv("slack.bot_token", "SLACKCMD_SLACK_BOT_TOKEN", "SLACK_CMD_OAUTH_TOKEN")
	_ = viper.BindEnv("slack.app_token", "SLACKCMD_SLACK_APP_TOKEN", "SLACK_CMD_SOCKET_TOKEN")
	_ = viper.BindEnv("jira.url", "SLACKCMD_JIRA_URL", "JIRA_URL")
	_ = viper.BindEnv("jira.user_email", "SLACKCMD_JIRA_USER_EMAIL", "JIRA_USER_EMAIL")
	_ = viper.BindEnv("jira.token", "SLACKCMD_JIRA_TOKEN", "JIRA_TOKEN")

	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.log_format", "json")
	viper.SetDefault("handler.timeout", "0s")
	viper.SetDefault("jira.channels", []string{domain.AllChannelsMarker})
	viper.SetDefault("openrouter.channels", []string{domain.AllChannelsMarker})
	viper.SetDefault("openrouter.model", "openai/gpt-4.1-mini")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Warn().Msg("no config file found, using environment only")
			return nil
		}
		return err
	}

	return nil
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level

	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// buildHandlers registers the built-in commands. Optional integrations are skipped when unconfigured.
func buildHandlers() []service.Handler {
	handlers := []service.Handler{commands.NewInfoHandler()}

	if url := viper.GetString("jira.url"); url != "" {
		issues := jira.NewClient(url, viper.GetString("jira.user_email"), viper.GetString("jira.token"))
		handlers = append(handlers, commands.NewJiraHandler(issues,
			domain.NewChannelScope(viper.GetStringSlice("jira.channels")...)))
	} else {
		log.Info().Msg("jira url not configured, skipping jira handler")
	}

	if key := viper.GetString("openrouter.api_key"); key != "" {
		gen := generator.NewOpenRouter(key, viper.GetString("openrouter.model"),
			viper.GetString("openrouter.system_prompt"))
		handlers = append(handlers, commands.NewAskHandler(gen,
			domain.NewChannelScope(viper.GetStringSlice("openrouter.channels")...)))
	} else {
		log.Info().Msg("openrouter api key not configured, skipping ask handler")
	}

	return handlers
}
