package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                  // If set, will load config.jsonc from this path and not from devConfigPath
	secretsVarName = "SECRETS"                 // If set, will load secrets.jsonc from this path and not from devSecretsPath
	devConfigPath  = "./dev/config.dev.jsonc"  // Path to config.jsonc in development environment
	devSecretsPath = "./dev/secrets.dev.jsonc" // Path to secrets.jsonc in development environment
)

const (
	defaultServicePort      = 8080
	defaultFloodResultLimit = 6
	defaultVolcanoEntries   = 8
	defaultVolcanoItemChars = 10
	defaultVolcanoNameChars = 60
)

type Config struct {
	Secrets            Secrets       `json:"-"`
	LogFile            string        `json:"log_file"`
	LogLevel           string        `json:"log_level"`
	ServicePort        uint          `json:"service_port"`
	CachePageTemplates bool          `json:"cache_page_templates"`
	ReliefWebAppName   string        `json:"reliefweb_appname"`
	FloodResultLimit   int           `json:"flood_result_limit"`
	Volcano            VolcanoTuning `json:"volcano"`
}

// VolcanoTuning holds the volcano scraper's heuristic constants. The numbers
// are arbitrary tuning values, which is why they live in config and not in code.
type VolcanoTuning struct {
	MaxEntries   int `json:"max_entries"`
	MinItemChars int `json:"min_item_chars"`
	MaxNameChars int `json:"max_name_chars"`
}

type Secrets struct {
	MetricsAuth string `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)

	applyDefaults(&config)
	return &config
}

func applyDefaults(config *Config) {
	if config.ServicePort == 0 {
		config.ServicePort = defaultServicePort
	}
	if config.FloodResultLimit <= 0 {
		config.FloodResultLimit = defaultFloodResultLimit
	}
	if config.Volcano.MaxEntries <= 0 {
		config.Volcano.MaxEntries = defaultVolcanoEntries
	}
	if config.Volcano.MinItemChars <= 0 {
		config.Volcano.MinItemChars = defaultVolcanoItemChars
	}
	if config.Volcano.MaxNameChars <= 0 {
		config.Volcano.MaxNameChars = defaultVolcanoNameChars
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
