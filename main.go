package main

import (
	"cmdbot/internal/adapters/generator"
	"cmdbot/internal/adapters/handler"
	"cmdbot/internal/adapters/sender"
	"cmdbot/internal/adapters/source"
	"cmdbot/internal/core/domain/command"
	"cmdbot/internal/core/port"
	"cmdbot/internal/core/service"
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting cmdbot...")

	loadConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	src, b, start := newTransport()

	prefix := viper.GetString("bot.prefix")
	tracker := service.NewUsageTracker(ctx)
	container := service.NewContainer()

	var registry *command.Registry

	builtins := command.Builtins{
		Prefix:       prefix,
		Tracker:      tracker,
		ListCommands: func() []string { return registry.ListCommands() },
	}
	if key := viper.GetString("openrouter.api_key"); key != "" {
		builtins.Generator = generator.NewOpenRouter(key,
			viper.GetString("openrouter.model"),
			viper.GetString("openrouter.system_prompt"))
	}

	builder := command.NewBuilder()
	command.RegisterBuiltins(builder, builtins)

	registry, err := builder.Build(container)
	if err != nil {
		log.Fatal().Err(err).Msg("failed building command registry")
	}

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timeout for handler in config")
	}

	commandHandler, err := handler.NewCommand(handler.CommandParams{
		Registry: registry,
		Provider: container,
		Injector: service.NewInjector(),
		Parser:   command.NewParser(prefix),
		Bot:      b,
		Recorder: tracker,
		Timeout:  handlerTimeout,
		Strict:   viper.GetBool("bot.strict_parameters"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing command handler")
	}

	if start != nil {
		go start(ctx)
	}

	log.Info().Strs("commands", registry.ListCommands()).Str("prefix", prefix).Msg("bot listening")

	if err := commandHandler.Listen(ctx, src); err != nil {
		log.Fatal().Err(err).Msg("failed listening for commands")
	}

	log.Info().Msg("bot stopped")
}

func loadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.prefix", command.DefaultPrefix)
	viper.SetDefault("bot.name", "cmdbot")
	viper.SetDefault("bot.transport", "console")
	viper.SetDefault("handler.timeout", "30s")
	viper.SetDefault("telegram.send_rate", 1)
	viper.SetDefault("console.user", "streamer")

	log.Info().Msg("reading config file...")
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("could not read config file, using defaults")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
}

// newTransport returns the message source, the bot reference and an optional
// function that runs the transport until ctx is done.
func newTransport() (port.MessageSource, port.Bot, func(context.Context)) {
	name := viper.GetString("bot.name")

	switch viper.GetString("bot.transport") {
	case "telegram":
		var p source.TelegramParams
		for key, dst := range map[string]*[]int64{
			"telegram.allowed_chat_ids": &p.AllowedChatIDs,
			"telegram.broadcaster_ids":  &p.BroadcasterIDs,
			"telegram.moderator_ids":    &p.ModeratorIDs,
			"telegram.vip_ids":          &p.VIPIDs,
		} {
			if err := viper.UnmarshalKey(key, dst); err != nil {
				log.Fatal().Err(err).Str("key", key).Msg("invalid id list in config")
			}
		}
		p.Buffer = 64

		tgSource := source.NewTelegram(p)

		b, err := bot.New(viper.GetString("telegram.bot_token"), bot.WithDefaultHandler(tgSource.HandleUpdate))
		if err != nil {
			log.Fatal().Err(err).Msg("failed initializing telegram bot")
		}

		tgSender := sender.NewTelegram(b, name, viper.GetFloat64("telegram.send_rate"))

		return tgSource, tgSender, b.Start
	case "console":
		return source.NewConsole(os.Stdin, viper.GetString("console.user")), sender.NewConsole(name, os.Stdout), nil
	default:
		log.Fatal().Str("transport", viper.GetString("bot.transport")).Msg("unknown transport")
		return nil, nil, nil
	}
}
