package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// StaticURL is where the web app's build output is served from.
	StaticURL = "/static/"
	bundleApp = "web"
	indexFile = "index.html"
)

type manifestEntry struct {
	File           string   `json:"file"`
	Src            string   `json:"src,omitempty"`
	IsEntry        bool     `json:"isEntry,omitempty"`
	CSS            []string `json:"css,omitempty"`
	DynamicImports []string `json:"dynamicImports,omitempty"`
}

// Bundle reads the web app build manifest at manifestPath and renders the
// stylesheet and module script tags for its index entry. It reports false
// when the manifest is missing, unreadable or has no index entry.
func Bundle(manifestPath string) (string, bool) {
	payload, err := os.ReadFile(manifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Error().Str("path", manifestPath).Msg("manifest file not found")
		return "", false
	}
	if err != nil {
		log.Error().Err(err).Str("path", manifestPath).Msg("failed to read manifest file")
		return "", false
	}

	var manifest map[string]manifestEntry
	if err := json.Unmarshal(payload, &manifest); err != nil {
		log.Error().Err(err).Str("path", manifestPath).Msg("failed to parse manifest file")
		return "", false
	}

	index, ok := manifest[indexFile]
	if !ok || index.File == "" {
		log.Error().Str("path", manifestPath).Msg("manifest has no index entry")
		return "", false
	}

	var b strings.Builder
	for _, css := range index.CSS {
		b.WriteString(`<link rel="stylesheet" href="` + assetURL(css) + `" />`)
	}
	b.WriteString(moduleScript(index.File))
	for _, name := range index.DynamicImports {
		if entry, ok := manifest[name]; ok && entry.File != "" {
			b.WriteString(moduleScript(entry.File))
		}
	}

	return b.String(), true
}

func assetURL(file string) string {
	return StaticURL + bundleApp + "/" + file
}

func moduleScript(file string) string {
	return `<script type="module" src="` + assetURL(file) + `"></script>`
}
