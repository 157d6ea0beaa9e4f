// Package static embeds the stylesheet and the browser half of the
// animation system.
package static

import "embed"

// FS exposes the site's static assets for HTTP serving.
//
//go:embed *.css js/*.js
var FS embed.FS
