// Package levels embeds the campaign's TMX files, played in file-name order.
package levels

import "embed"

//go:embed *.tmx
var FS embed.FS
