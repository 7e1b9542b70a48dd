package webclip

import "strings"

var filenameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	"?", "-",
	"%", "-",
	"*", "-",
	":", "-",
	"|", "-",
	`"`, "-",
	"<", "-",
	">", "-",
)

// Filename turns a clip title into a file name without extension.
// Characters reserved on common file systems become "-"; leading spaces and
// dashes are dropped. An empty result falls back to DefaultTitle.
func Filename(title string) string {
	name := strings.TrimSpace(filenameReplacer.Replace(title))
	name = strings.TrimLeft(name, " -")
	if name == "" {
		return DefaultTitle
	}
	return name
}
