package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/andresuchdata/inventree-web/internal/config"
	"github.com/rs/zerolog/log"
)

// Frontend builds the settings object handed to the single page app.
// Values from cfg.Settings (a JSON object) take precedence over derived
// defaults, except for "debug" which always reflects debug.
func Frontend(cfg config.FrontendConfig, debug bool) map[string]any {
	settings := decodeObject(cfg.Settings)

	if cfg.URLBase != "" {
		settings["base_url"] = cfg.URLBase
	}

	settings["debug"] = debug

	if _, ok := settings["environment"]; !ok {
		if debug {
			settings["environment"] = "development"
		} else {
			settings["environment"] = "production"
		}
	}

	if debug {
		if _, ok := settings["show_server_selector"]; !ok {
			settings["show_server_selector"] = true
		}
	}

	servers, ok := settings["server_list"]
	if !ok || servers == nil {
		servers = []any{}
		settings["server_list"] = servers
	}

	if !debug && isEmptyList(servers) {
		settings["show_server_selector"] = true
	}

	return settings
}

// Script renders settings as the inline bootstrap script of the web app.
func Script(settings map[string]any) (string, error) {
	payload, err := json.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encode frontend settings: %w", err)
	}
	return "<script>window.INVENTREE_SETTINGS=" + string(payload) + "</script>", nil
}

// decodeObject parses raw as a JSON object. Anything else, including null,
// yields an empty map.
func decodeObject(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Warn().Err(err).Msg("ignoring invalid frontend settings")
		return map[string]any{}
	}

	object, ok := decoded.(map[string]any)
	if !ok {
		log.Warn().Str("settings", raw).Msg("frontend settings must be a JSON object")
		return map[string]any{}
	}
	return object
}

func isEmptyList(v any) bool {
	switch list := v.(type) {
	case []any:
		return len(list) == 0
	case map[string]any:
		return len(list) == 0
	default:
		return false
	}
}
