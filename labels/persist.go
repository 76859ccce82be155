package labels

import (
	"encoding/json"
	"fmt"

	"github.com/dylan/commitlabels/logging"
)

// ConfigKey is the key the configuration document is stored under.
const ConfigKey = "commitLabelsConfig"

// KV is the persistent key-value store the configuration lives in.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// storedConfiguration mirrors Configuration with optional fields so older
// documents can be told apart from explicit false values.
type storedConfiguration struct {
	RemovePrefix       *bool                `json:"removePrefix"`
	EnableTooltips     *bool                `json:"enableTooltips"`
	LabelsVisible      *bool                `json:"labelsVisible"`
	ShowScope          *bool                `json:"showScope"`
	ShowFloatingButton *bool                `json:"showFloatingButton"`
	LabelStyle         map[string]string    `json:"labelStyle"`
	CommitTypes        map[string]TypeStyle `json:"commitTypes"`
}

// complete fills missing fields from the defaults. It reports whether
// anything was filled in.
func (s *storedConfiguration) complete() (*Configuration, bool) {
	def := DefaultConfiguration()
	upgraded := false

	boolOr := func(v *bool, fallback bool) bool {
		if v == nil {
			upgraded = true
			return fallback
		}
		return *v
	}

	cfg := &Configuration{
		RemovePrefix:       boolOr(s.RemovePrefix, def.RemovePrefix),
		EnableTooltips:     boolOr(s.EnableTooltips, def.EnableTooltips),
		LabelsVisible:      boolOr(s.LabelsVisible, def.LabelsVisible),
		ShowScope:          boolOr(s.ShowScope, def.ShowScope),
		ShowFloatingButton: boolOr(s.ShowFloatingButton, def.ShowFloatingButton),
		LabelStyle:         s.LabelStyle,
		CommitTypes:        s.CommitTypes,
	}

	if cfg.LabelStyle == nil {
		cfg.LabelStyle = def.LabelStyle
		upgraded = true
	}
	if len(cfg.CommitTypes) == 0 {
		cfg.CommitTypes = def.CommitTypes
		upgraded = true
	}
	return cfg, upgraded
}

// Load reads the configuration from kv. A missing or older document is
// completed with defaults and the completed document is written back.
// An unreadable document yields the defaults and is left in place.
func Load(kv KV) (*Configuration, error) {
	log := logging.Component("config")

	raw, ok, err := kv.Get(ConfigKey)
	if err != nil {
		return nil, fmt.Errorf("loading label configuration: %w", err)
	}
	if !ok {
		return DefaultConfiguration(), nil
	}

	var stored storedConfiguration
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Warn().Err(err).Msg("stored label configuration is unreadable, using defaults")
		return DefaultConfiguration(), nil
	}

	cfg, upgraded := stored.complete()
	if upgraded {
		log.Info().Msg("upgrading stored label configuration")
		if err := Save(kv, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Save writes cfg to kv as a single document.
func Save(kv KV, cfg *Configuration) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding label configuration: %w", err)
	}
	if err := kv.Set(ConfigKey, raw); err != nil {
		return fmt.Errorf("saving label configuration: %w", err)
	}
	return nil
}

// Reset replaces the stored configuration with the defaults.
func Reset(kv KV) (*Configuration, error) {
	cfg := DefaultConfiguration()
	if err := Save(kv, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
