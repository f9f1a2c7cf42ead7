// Package buildCFG turns raw config keys into the typed configs the
// process components take, applying defaults and failing fast on
// required values.
package buildCFG

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/dbpg"

	"github.com/bhekani17/Eargleevents2/internal/mailer"
	"github.com/bhekani17/Eargleevents2/internal/service"
	"github.com/bhekani17/Eargleevents2/internal/sweeper"
)

type ServerConfig struct {
	Port string
}

type RabbitConfig struct {
	Url      string
	Exchange string
	Queue    string
}

func BuildServerConfig(cfg *config.Config, log *zerolog.Logger) ServerConfig {
	port := cfg.GetString("server.port")
	if port == "" {
		port = "8080"
		log.Warn().Msg("server.port not set, defaulting to 8080")
	}
	return ServerConfig{Port: port}
}

func BuildDBConfig(cfg *config.Config, log *zerolog.Logger) (string, []string, *dbpg.Options, error) {
	masterDSN := cfg.GetString("database.master_dsn")
	if masterDSN == "" {
		return "", nil, nil, fmt.Errorf("database.master_dsn is required")
	}

	var slaveDSNs []string
	if raw := cfg.GetString("database.slave_dsns"); raw != "" {
		for _, dsn := range strings.Split(raw, ",") {
			slaveDSNs = append(slaveDSNs, strings.TrimSpace(dsn))
		}
	}

	opts := &dbpg.Options{
		MaxOpenConns: cfg.GetInt("database.max_open_conns"),
		MaxIdleConns: cfg.GetInt("database.max_idle_conns"),
	}

	log.Info().Int("slaves", len(slaveDSNs)).Msg("database config built")
	return masterDSN, slaveDSNs, opts, nil
}

func BuildRabbitConfig(cfg *config.Config, log *zerolog.Logger) (RabbitConfig, error) {
	url := cfg.GetString("rabbit.url")
	if url == "" {
		return RabbitConfig{}, fmt.Errorf("rabbit.url is required")
	}

	exchange := cfg.GetString("rabbit.exchange")
	if exchange == "" {
		exchange = "notifications"
	}
	queue := cfg.GetString("rabbit.queue")
	if queue == "" {
		queue = "quote_notifications"
	}

	log.Info().Str("exchange", exchange).Str("queue", queue).Msg("rabbit config built")
	return RabbitConfig{Url: url, Exchange: exchange, Queue: queue}, nil
}

func BuildSweepConfig(cfg *config.Config, log *zerolog.Logger) sweeper.Config {
	retentionDays := cfg.GetInt("sweep.retention_days")
	if retentionDays <= 0 {
		retentionDays = 30
	}
	intervalHours := cfg.GetInt("sweep.interval_hours")
	if intervalHours <= 0 {
		intervalHours = 24
	}
	initialDelaySeconds := cfg.GetInt("sweep.initial_delay_seconds")
	if initialDelaySeconds <= 0 {
		initialDelaySeconds = 60
	}

	log.Info().
		Int("retention_days", retentionDays).
		Int("interval_hours", intervalHours).
		Msg("sweep config built")

	return sweeper.Config{
		InitialDelay: time.Duration(initialDelaySeconds) * time.Second,
		Interval:     time.Duration(intervalHours) * time.Hour,
		Retention:    time.Duration(retentionDays) * 24 * time.Hour,
	}
}

func BuildServiceConfig(cfg *config.Config, log *zerolog.Logger) (service.Config, error) {
	secret := cfg.GetString("auth.jwt_secret")
	if secret == "" {
		return service.Config{}, fmt.Errorf("auth.jwt_secret is required")
	}

	tokenTTLHours := cfg.GetInt("auth.token_ttl_hours")
	if tokenTTLHours <= 0 {
		tokenTTLHours = 24
	}
	reminderDelayHours := cfg.GetInt("notify.reminder_delay_hours")
	if reminderDelayHours <= 0 {
		reminderDelayHours = 72
	}

	log.Info().
		Int("token_ttl_hours", tokenTTLHours).
		Int("reminder_delay_hours", reminderDelayHours).
		Msg("service config built")

	return service.Config{
		JWTSecret:     secret,
		TokenTTL:      time.Duration(tokenTTLHours) * time.Hour,
		ReminderDelay: time.Duration(reminderDelayHours) * time.Hour,
	}, nil
}

func BuildMailConfig(cfg *config.Config, log *zerolog.Logger) mailer.Config {
	addr := cfg.GetString("mail.smtp_addr")
	if addr == "" {
		addr = "smtp.gmail.com:587"
	}

	mc := mailer.Config{
		Addr:     addr,
		From:     cfg.GetString("mail.from"),
		Password: cfg.GetString("mail.password"),
	}
	if mc.From == "" {
		log.Warn().Msg("mail.from not set, notification emails will fail")
	}
	return mc
}
