package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/JalMitra/JalMitra/internal/api"
	"github.com/JalMitra/JalMitra/internal/genai"
	"github.com/JalMitra/JalMitra/internal/store"
	"github.com/JalMitra/JalMitra/internal/util"
	"github.com/JalMitra/JalMitra/internal/whatsapp"
	"github.com/joho/godotenv"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for JalMitra state data
	DefaultStateDir = "/var/lib/jalmitra"
	// DefaultDBFileName is the default SQLite database filename
	DefaultDBFileName = "jalmitra.db"
)

func main() {
	initializeLogger()

	config := loadEnvironmentConfig()
	flags := parseCommandLineFlags(config)

	if err := ensureDirectoriesExist(flags); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	waOpts := buildWhatsAppOptions(flags)
	storeOpts := buildStoreOptions(flags, config)
	genaiOpts := buildGenAIOptions(flags)
	apiOpts := buildAPIOptions(flags, config)

	slog.Info("Bootstrapping JalMitra with configured modules")
	slog.Debug("Final configuration",
		"state_dir", *flags.stateDir,
		"dsn_set", *flags.dbDSN != "",
		"redis_set", config.RedisAddr != "",
		"api_addr", *flags.apiAddr,
		"backend_url_set", *flags.backendURL != "",
		"twilio", *flags.useTwilio)
	if err := api.Run(waOpts, storeOpts, genaiOpts, apiOpts); err != nil {
		slog.Error("JalMitra failed to run", "error", err)
		os.Exit(1)
	}
	slog.Info("JalMitra exited successfully")
}

// Config holds environment configuration
type Config struct {
	WhatsAppDSN string
	DatabaseURL string
	RedisAddr   string
	StateDir    string
	OpenAIKey   string
	APIAddr     string
	BackendURL  string
	UseTwilio   bool
	SessionTTL  time.Duration
	ReplyDelay  time.Duration
	DelaySet    bool
}

// Flags holds command line flag values
type Flags struct {
	qrOutput   *string
	numeric    *bool
	stateDir   *string
	dbDSN      *string
	openaiKey  *string
	apiAddr    *string
	backendURL *string
	useTwilio  *bool
}

// initializeLogger sets up structured logging with debug level
func initializeLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	config := Config{
		WhatsAppDSN: os.Getenv("WHATSAPP_DB_DSN"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		StateDir:    os.Getenv("JALMITRA_STATE_DIR"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		APIAddr:     os.Getenv("API_ADDR"),
		BackendURL:  os.Getenv("BACKEND_BASE_URL"),
		UseTwilio:   util.ParseBoolEnv("USE_TWILIO", false),
		SessionTTL:  util.ParseDurationEnv("SESSION_TTL", store.DefaultSessionTTL),
	}
	if v := os.Getenv("REPLY_DELAY_PER_WORD"); v != "" {
		config.ReplyDelay = util.ParseDurationEnv("REPLY_DELAY_PER_WORD", 0)
		config.DelaySet = true
	}

	if config.StateDir == "" {
		config.StateDir = DefaultStateDir
		slog.Debug("No JALMITRA_STATE_DIR set, using default", "default_state_dir", config.StateDir)
	}

	// The WhatsApp device store shares DATABASE_URL unless given its own DSN.
	if config.WhatsAppDSN == "" {
		config.WhatsAppDSN = config.DatabaseURL
	}
	if config.WhatsAppDSN == "" {
		config.WhatsAppDSN = filepath.Join(config.StateDir, DefaultDBFileName)
		slog.Debug("No database DSN provided, defaulting to SQLite", "sqlite_path", config.WhatsAppDSN)
	}

	slog.Debug("environment variables loaded",
		"WHATSAPP_DB_DSN_SET", config.WhatsAppDSN != "",
		"DATABASE_URL_SET", config.DatabaseURL != "",
		"REDIS_ADDR_SET", config.RedisAddr != "",
		"JALMITRA_STATE_DIR", config.StateDir,
		"OPENAI_API_KEY_SET", config.OpenAIKey != "",
		"API_ADDR", config.APIAddr,
		"BACKEND_BASE_URL_SET", config.BackendURL != "",
		"USE_TWILIO", config.UseTwilio,
		"SESSION_TTL", config.SessionTTL)

	return config
}

// parseCommandLineFlags parses command line arguments with environment defaults
func parseCommandLineFlags(config Config) Flags {
	flags := Flags{
		qrOutput:   flag.String("qr-output", "", "path to write login QR code"),
		numeric:    flag.Bool("numeric-code", false, "use numeric login code instead of QR code"),
		stateDir:   flag.String("state-dir", config.StateDir, "state directory for JalMitra data (overrides $JALMITRA_STATE_DIR)"),
		dbDSN:      flag.String("db-dsn", config.WhatsAppDSN, "database DSN for WhatsApp device and session store (overrides $WHATSAPP_DB_DSN or $DATABASE_URL)"),
		openaiKey:  flag.String("openai-api-key", config.OpenAIKey, "OpenAI API key for crop-name normalization (overrides $OPENAI_API_KEY)"),
		apiAddr:    flag.String("api-addr", config.APIAddr, "API server address (overrides $API_ADDR)"),
		backendURL: flag.String("backend-url", config.BackendURL, "advisory backend base URL (overrides $BACKEND_BASE_URL)"),
		useTwilio:  flag.Bool("twilio", config.UseTwilio, "send through the Twilio API instead of a linked device (overrides $USE_TWILIO)"),
	}

	flag.Parse()

	slog.Debug("flags parsed",
		"qrOutput", *flags.qrOutput,
		"numeric", *flags.numeric,
		"stateDir", *flags.stateDir,
		"dbDSN_set", *flags.dbDSN != "",
		"openaiKeySet", *flags.openaiKey != "",
		"apiAddr", *flags.apiAddr,
		"backendURL_set", *flags.backendURL != "",
		"twilio", *flags.useTwilio)

	// Update database DSN if not explicitly set but state directory is provided
	if *flags.dbDSN == config.WhatsAppDSN && config.WhatsAppDSN == filepath.Join(config.StateDir, DefaultDBFileName) && *flags.stateDir != config.StateDir {
		*flags.dbDSN = filepath.Join(*flags.stateDir, DefaultDBFileName)
		slog.Debug("Updated dbDSN based on state directory", "new_state_dir", *flags.stateDir)
	}

	return flags
}

// ensureDirectoriesExist creates necessary directories for file-based storage
func ensureDirectoriesExist(flags Flags) error {
	if store.DetectDSNType(*flags.dbDSN) == "sqlite" {
		stateDir := filepath.Dir(*flags.dbDSN)
		if err := os.MkdirAll(stateDir, 0755); err != nil {
			slog.Error("Failed to create state directory", "error", err, "state_dir", stateDir)
			return err
		}
	}
	return nil
}

// buildWhatsAppOptions constructs WhatsApp configuration options
func buildWhatsAppOptions(flags Flags) []whatsapp.Option {
	var waOpts []whatsapp.Option
	if *flags.qrOutput != "" {
		waOpts = append(waOpts, whatsapp.WithQRCodeOutput(*flags.qrOutput))
	}
	if *flags.numeric {
		waOpts = append(waOpts, whatsapp.WithNumericCode())
	}
	if *flags.dbDSN != "" {
		waOpts = append(waOpts, whatsapp.WithDBDSN(*flags.dbDSN))
	}
	return waOpts
}

// buildStoreOptions constructs session store configuration options
func buildStoreOptions(flags Flags, config Config) []store.Option {
	var storeOpts []store.Option
	if config.RedisAddr != "" {
		slog.Debug("Configuring Redis session store", "addr", config.RedisAddr)
		storeOpts = append(storeOpts, store.WithRedisAddr(config.RedisAddr))
	} else if *flags.dbDSN != "" {
		slog.Debug("Configuring SQL session store", "dsn_type", store.DetectDSNType(*flags.dbDSN))
		storeOpts = append(storeOpts, store.WithDSN(*flags.dbDSN))
	} else {
		slog.Debug("No database DSN provided, will use in-memory store")
	}
	if config.SessionTTL > 0 {
		storeOpts = append(storeOpts, store.WithTTL(config.SessionTTL))
	}
	return storeOpts
}

// buildGenAIOptions constructs GenAI configuration options
func buildGenAIOptions(flags Flags) []genai.Option {
	var genaiOpts []genai.Option
	if *flags.openaiKey != "" {
		genaiOpts = append(genaiOpts, genai.WithAPIKey(*flags.openaiKey))
	}
	return genaiOpts
}

// buildAPIOptions constructs API server configuration options
func buildAPIOptions(flags Flags, config Config) []api.Option {
	var apiOpts []api.Option
	if *flags.apiAddr != "" {
		apiOpts = append(apiOpts, api.WithAddr(*flags.apiAddr))
	}
	if *flags.backendURL != "" {
		apiOpts = append(apiOpts, api.WithAdvisoryBaseURL(*flags.backendURL))
	}
	if *flags.useTwilio {
		apiOpts = append(apiOpts, api.WithTwilio())
	}
	if config.DelaySet {
		apiOpts = append(apiOpts, api.WithReplyDelay(config.ReplyDelay))
	}
	return apiOpts
}
