package webclip_test

import (
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"vault", webclip.OptionVault, "Notes", false},
		{"empty folder", webclip.OptionFolder, "", false},
		{"boolean true", webclip.OptionLocal, "true", false},
		{"boolean zero", webclip.OptionPreview, "0", false},
		{"not a boolean", webclip.OptionObsidian, "yes please", true},
		{"readability", webclip.OptionExtractor, "readability", false},
		{"trafilatura", webclip.OptionExtractor, "trafilatura", false},
		{"unknown extractor", webclip.OptionExtractor, "boilerpipe", true},
		{"unknown key", "theme", "dark", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := webclip.ValidateOption(tt.key, tt.value)
			if tt.wantErr {
				assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsOptionKey(t *testing.T) {
	t.Parallel()

	for _, key := range webclip.OptionKeys {
		assert.True(t, webclip.IsOptionKey(key), key)
	}
	assert.False(t, webclip.IsOptionKey("Vault"))
	assert.False(t, webclip.IsOptionKey(""))
}

func TestDecodeOptions(t *testing.T) {
	t.Parallel()

	t.Run("decodes every field", func(t *testing.T) {
		t.Parallel()

		opts, err := webclip.DecodeOptions(map[string]string{
			webclip.OptionVault:       "Notes",
			webclip.OptionFolder:      "Clippings/",
			webclip.OptionBaseTags:    "web, clipping",
			webclip.OptionDownloadDir: "/tmp/clips",
			webclip.OptionLocal:       "true",
			webclip.OptionObsidian:    "false",
			webclip.OptionPreview:     "1",
			webclip.OptionAuthor:      "Me",
			webclip.OptionExtractor:   "trafilatura",
			"ignored":                 "x",
		})
		require.NoError(t, err)

		assert.Equal(t, &webclip.Options{
			Vault:       "Notes",
			Folder:      "Clippings/",
			BaseTags:    []string{"web", "clipping"},
			DownloadDir: "/tmp/clips",
			Local:       true,
			Obsidian:    false,
			Preview:     true,
			Author:      "Me",
			Extractor:   "trafilatura",
		}, opts)
	})

	t.Run("defaults the extractor", func(t *testing.T) {
		t.Parallel()

		opts, err := webclip.DecodeOptions(nil)
		require.NoError(t, err)

		assert.Equal(t, webclip.ExtractorReadability, opts.Extractor)
		assert.False(t, opts.Local)
		assert.Nil(t, opts.BaseTags)
	})

	t.Run("rejects malformed booleans", func(t *testing.T) {
		t.Parallel()

		_, err := webclip.DecodeOptions(map[string]string{webclip.OptionLocal: "sometimes"})

		assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
	})
}

func TestSplitTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b c", "d"}, webclip.SplitTags(" a ,b c,, d ,"))
	assert.Nil(t, webclip.SplitTags(""))
	assert.Nil(t, webclip.SplitTags(" , "))
}
