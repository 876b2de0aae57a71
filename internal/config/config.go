// Package config loads blockrelay's settings.
//
// Values are resolved in this order, later sources overriding earlier ones:
// built-in defaults, an optional YAML file and BLOCKRELAY_* environment
// variables. The result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gabapcia/blockrelay/internal/pkg/validator"
)

// EnvPrefix prefixes every environment override, e.g. BLOCKRELAY_SOURCE_WS_URL.
const EnvPrefix = "BLOCKRELAY"

// ErrSignerRequired is returned by Destination.Validate when a private key is
// needed but not configured.
var ErrSignerRequired = errors.New("destination.private_key is required to relay blocks")

type Log struct {
	Level string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error dpanic panic fatal"`
}

// Source is the chain blocks are read from.
type Source struct {
	HTTPURL  string        `yaml:"http_url" envconfig:"HTTP_URL" validate:"required,url"`
	WSURL    string        `yaml:"ws_url" envconfig:"WS_URL" validate:"required,ws_url"`
	Timeout  time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"min=0"`
	RetryMax int           `yaml:"retry_max" envconfig:"RETRY_MAX" validate:"min=0"`
}

// Destination is the chain and contract blocks are written to. It is only
// checked by commands that talk to it, see Validate.
type Destination struct {
	RPCURL          string        `yaml:"rpc_url" envconfig:"RPC_URL" validate:"required,url"`
	ContractAddress string        `yaml:"contract_address" envconfig:"CONTRACT_ADDRESS" validate:"required,eth_addr"`
	PrivateKey      string        `yaml:"private_key" envconfig:"PRIVATE_KEY" validate:"omitempty,secp256k1_key"`
	ChainID         uint64        `yaml:"chain_id" envconfig:"CHAIN_ID" validate:"required"`
	GasLimit        uint64        `yaml:"gas_limit" envconfig:"GAS_LIMIT" validate:"required"`
	GasPrice        uint64        `yaml:"gas_price" envconfig:"GAS_PRICE"`
	DialTimeout     time.Duration `yaml:"dial_timeout" envconfig:"DIAL_TIMEOUT" validate:"min=0"`
}

// Validate checks the destination settings. withSigner additionally requires
// a private key.
func (d Destination) Validate(withSigner bool) error {
	if err := validator.Validate(d); err != nil {
		return err
	}

	if withSigner && d.PrivateKey == "" {
		return ErrSignerRequired
	}

	return nil
}

// Reconnect is the head subscription's reconnect policy. Zero attempts
// disables reconnection.
type Reconnect struct {
	Attempts uint          `yaml:"attempts" envconfig:"ATTEMPTS"`
	Delay    time.Duration `yaml:"delay" envconfig:"DELAY" validate:"min=0"`
	MaxDelay time.Duration `yaml:"max_delay" envconfig:"MAX_DELAY" validate:"gtefield=Delay"`
}

type Relay struct {
	QueueSize int       `yaml:"queue_size" envconfig:"QUEUE_SIZE" validate:"min=1"`
	Reconnect Reconnect `yaml:"reconnect" envconfig:"RECONNECT"`
}

// Redis is the optional report sink. An empty Addr disables it.
type Redis struct {
	Addr      string `yaml:"addr" envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username  string `yaml:"username" envconfig:"USERNAME"`
	Password  string `yaml:"password" envconfig:"PASSWORD"`
	DB        int    `yaml:"db" envconfig:"DB" validate:"min=0"`
	Stream    string `yaml:"stream" envconfig:"STREAM" validate:"required_with=Addr"`
	StreamLen int64  `yaml:"stream_len" envconfig:"STREAM_LEN" validate:"min=0"`
}

// Enabled reports whether a Redis server is configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

type Telemetry struct {
	// Enabled turns on OTLP export of traces, metrics and logs. The exporters
	// read the standard OTEL_EXPORTER_OTLP_* variables.
	Enabled     bool   `yaml:"enabled" envconfig:"ENABLED"`
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	MetricsAddr string `yaml:"metrics_addr" envconfig:"METRICS_ADDR" validate:"omitempty,hostname_port"`
}

type Config struct {
	Log         Log         `yaml:"log" envconfig:"LOG"`
	Source      Source      `yaml:"source" envconfig:"SOURCE"`
	Destination Destination `yaml:"destination" envconfig:"DESTINATION" validate:"-"`
	Relay       Relay       `yaml:"relay" envconfig:"RELAY"`
	Redis       Redis       `yaml:"redis" envconfig:"REDIS"`
	Telemetry   Telemetry   `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Source: Source{
			HTTPURL:  "http://localhost:8545",
			WSURL:    "ws://localhost:8546",
			Timeout:  5 * time.Second,
			RetryMax: 0,
		},
		Destination: Destination{
			RPCURL:          "http://localhost:8585",
			ContractAddress: "0x8CdaF0CD259887258Bc13a92C0a6dA92698644C0",
			ChainID:         1338,
			GasLimit:        2000000,
			GasPrice:        0,
			DialTimeout:     10 * time.Second,
		},
		Relay: Relay{
			QueueSize: 16,
			Reconnect: Reconnect{
				Attempts: 5,
				Delay:    time.Second,
				MaxDelay: 30 * time.Second,
			},
		},
		Redis: Redis{
			Stream:    "blockrelay:relayed",
			StreamLen: 10000,
		},
		Telemetry: Telemetry{
			ServiceName: "blockrelay",
		},
	}
}

// Load resolves the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}

	return nil
}
