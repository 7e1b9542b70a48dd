package webclip

import (
	"context"
	"slices"
	"strconv"
	"strings"
)

// Option keys accepted by OptionsService.
const (
	OptionVault       = "vault"
	OptionFolder      = "folder"
	OptionBaseTags    = "base_tags"
	OptionDownloadDir = "download_dir"
	OptionLocal       = "local"
	OptionObsidian    = "obsidian"
	OptionPreview     = "preview"
	OptionAuthor      = "author"
	OptionExtractor   = "extractor"
)

// OptionKeys lists every accepted option key.
var OptionKeys = []string{
	OptionVault,
	OptionFolder,
	OptionBaseTags,
	OptionDownloadDir,
	OptionLocal,
	OptionObsidian,
	OptionPreview,
	OptionAuthor,
	OptionExtractor,
}

// Extractor names accepted by OptionExtractor.
const (
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// Options are the persisted user settings.
type Options struct {
	// Obsidian destination.
	Vault  string `json:"vault"`
	Folder string `json:"folder"`

	// BaseTags are added to every clip, in order.
	BaseTags []string `json:"baseTags"`

	// DownloadDir is where local clips are written.
	DownloadDir string `json:"downloadDir"`

	// Destination toggles.
	Local    bool `json:"local"`
	Obsidian bool `json:"obsidian"`
	Preview  bool `json:"preview"`

	// Author replaces DefaultAuthor when set.
	Author string `json:"author"`

	// Extractor selects the content extractor.
	Extractor string `json:"extractor"`
}

// OptionsService persists user options.
type OptionsService interface {
	// Get returns the raw value stored for key, or "" when unset.
	// Returns EINVALID for unknown keys.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value for key.
	// Returns EINVALID for unknown keys or malformed values.
	Set(ctx context.Context, key, value string) error

	// Unset removes the value stored for key.
	Unset(ctx context.Context, key string) error

	// Options returns all options decoded into an Options value.
	Options(ctx context.Context) (*Options, error)

	// BaseTags returns the configured base tags in order.
	BaseTags(ctx context.Context) ([]string, error)
}

// IsOptionKey reports whether key is an accepted option key.
func IsOptionKey(key string) bool {
	return slices.Contains(OptionKeys, key)
}

// ValidateOption returns an error if key is unknown or value is malformed.
func ValidateOption(key, value string) error {
	if !IsOptionKey(key) {
		return Errorf(EINVALID, "unknown option %q", key)
	}
	switch key {
	case OptionLocal, OptionObsidian, OptionPreview:
		if _, err := strconv.ParseBool(value); err != nil {
			return Errorf(EINVALID, "option %q must be a boolean, got %q", key, value)
		}
	case OptionExtractor:
		if value != ExtractorReadability && value != ExtractorTrafilatura {
			return Errorf(EINVALID, "option %q must be %q or %q", key, ExtractorReadability, ExtractorTrafilatura)
		}
	}
	return nil
}

// DecodeOptions builds Options from raw stored values. Unknown keys are ignored.
func DecodeOptions(values map[string]string) (*Options, error) {
	opts := &Options{
		Vault:       values[OptionVault],
		Folder:      values[OptionFolder],
		BaseTags:    SplitTags(values[OptionBaseTags]),
		DownloadDir: values[OptionDownloadDir],
		Author:      values[OptionAuthor],
		Extractor:   values[OptionExtractor],
	}
	if opts.Extractor == "" {
		opts.Extractor = ExtractorReadability
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{OptionLocal, &opts.Local},
		{OptionObsidian, &opts.Obsidian},
		{OptionPreview, &opts.Preview},
	}
	for _, f := range flags {
		raw, ok := values[f.key]
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, Errorf(EINVALID, "option %q must be a boolean, got %q", f.key, raw)
		}
		*f.dst = v
	}

	return opts, nil
}

// SplitTags splits a comma-separated list into trimmed, non-empty tokens.
func SplitTags(s string) []string {
	var tags []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tags = append(tags, tok)
		}
	}
	return tags
}
