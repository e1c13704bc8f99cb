package static

import _ "embed"

// IndexHTML contains the embedded index.html landing page.
//
//go:embed index.html
var IndexHTML string
