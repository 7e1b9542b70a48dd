package clip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/webclip"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Messages reported by ValidateOptions.
const (
	MsgLocalSettings    = "local download needs a download directory"
	MsgObsidianSettings = "Obsidian needs a vault, a folder and at least one base tag"
	MsgNoDestination    = "select at least one destination"
)

// ValidateOptions checks that every enabled destination has the settings it
// needs and that at least one destination is enabled. All problems are
// reported together in a single ECONFIG error, one message per problem.
func ValidateOptions(opts *webclip.Options) error {
	if opts == nil {
		return webclip.Errorf(webclip.ECONFIG, MsgNoDestination)
	}

	obsidianReady := opts.Vault != "" && opts.Folder != "" && len(opts.BaseTags) > 0

	err := validation.ValidateStruct(opts,
		validation.Field(&opts.DownloadDir,
			validation.When(opts.Local, validation.Required.Error(MsgLocalSettings)),
		),
		validation.Field(&opts.Obsidian,
			validation.When(opts.Obsidian && !obsidianReady, validation.In(false).Error(MsgObsidianSettings)),
		),
		validation.Field(&opts.Preview,
			validation.When(!opts.Local && !opts.Obsidian, validation.Required.Error(MsgNoDestination)),
		),
	)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return fmt.Errorf("validate options: %w", err)
	}

	// Report in a fixed order; validation.Errors is a map.
	var msgs []string
	for _, field := range []string{"downloadDir", "obsidian", "preview"} {
		if e, ok := errs[field]; ok {
			msgs = append(msgs, e.Error())
		}
	}
	return webclip.Errorf(webclip.ECONFIG, "%s", strings.Join(msgs, "; "))
}
