// Package static embeds the API documentation assets served under /static
// and /docs.
package static

import "embed"

// FS holds openapi.json and openapi.html.
//
//go:embed openapi.json openapi.html
var FS embed.FS

// OpenAPIUI is the docs page file name inside FS.
const OpenAPIUI = "openapi.html"
