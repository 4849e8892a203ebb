package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"bloglist/internal/blogservice"
	"bloglist/internal/common"
	"bloglist/internal/mailservice"
	"bloglist/internal/userservice"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	userService *userservice.UserService
	blogService *blogservice.BlogService
	mailService *mailservice.MailService
	broker      *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to open the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// An unreachable database at boot is logged, not fatal: the process keeps
	// serving and individual requests fail until the store comes back.
	if err := common.Ping(db); err != nil {
		logger.Error("error connecting to database", slog.String("error", err.Error()))
	} else {
		logger.Info("connected to database")
	}

	// The broker only feeds the welcome-mail consumer, so a missing broker
	// downgrades to running without mail.
	var producer common.MessageProducer
	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker, welcome mail disabled", slog.String("error", err.Error()))
	} else {
		defer broker.Close()

		if err := common.SetupUserExchange(broker); err != nil {
			logger.Error("failed to setup the user exchange, welcome mail disabled", slog.String("error", err.Error()))
		} else {
			producer = broker
		}
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, producer, []byte(cfg.TokenSecret)),
		blogService: blogservice.NewBlogService(db),
		broker:      broker,
	}

	if producer != nil {
		app.mailService = mailservice.NewMailService(broker, cfg.Mail.Host, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Sender, cfg.Mail.Port, logger)
		app.mailService.SendWelcomeEmail()
	}

	if err := app.serve(cfg.Port); err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
