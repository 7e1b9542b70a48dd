package clip_test

import (
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/clip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *webclip.Options
		want []string
	}{
		{
			name: "accepts complete local destination",
			opts: &webclip.Options{Local: true, DownloadDir: "/tmp/clips"},
		},
		{
			name: "accepts complete Obsidian destination",
			opts: &webclip.Options{Obsidian: true, Vault: "Notes", Folder: "Clippings/", BaseTags: []string{"web"}},
		},
		{
			name: "accepts preview only",
			opts: &webclip.Options{Preview: true},
		},
		{
			name: "requires download directory for local",
			opts: &webclip.Options{Local: true},
			want: []string{clip.MsgLocalSettings},
		},
		{
			name: "requires vault for Obsidian",
			opts: &webclip.Options{Obsidian: true, Folder: "f", BaseTags: []string{"t"}},
			want: []string{clip.MsgObsidianSettings},
		},
		{
			name: "requires folder for Obsidian",
			opts: &webclip.Options{Obsidian: true, Vault: "v", BaseTags: []string{"t"}},
			want: []string{clip.MsgObsidianSettings},
		},
		{
			name: "requires base tags for Obsidian",
			opts: &webclip.Options{Obsidian: true, Vault: "v", Folder: "f"},
			want: []string{clip.MsgObsidianSettings},
		},
		{
			name: "requires a destination",
			opts: &webclip.Options{},
			want: []string{clip.MsgNoDestination},
		},
		{
			name: "reports every problem",
			opts: &webclip.Options{Local: true, Obsidian: true},
			want: []string{clip.MsgLocalSettings, clip.MsgObsidianSettings},
		},
		{
			name: "ignores settings of disabled destinations",
			opts: &webclip.Options{Preview: true, Vault: "v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := clip.ValidateOptions(tt.opts)

			if len(tt.want) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, webclip.ECONFIG, webclip.ErrorCode(err))
			msg := webclip.ErrorMessage(err)
			for _, w := range tt.want {
				assert.Contains(t, msg, w)
			}
		})
	}

	t.Run("rejects nil options", func(t *testing.T) {
		t.Parallel()

		err := clip.ValidateOptions(nil)

		assert.Equal(t, webclip.ECONFIG, webclip.ErrorCode(err))
	})
}
