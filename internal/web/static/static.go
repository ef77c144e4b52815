package static

import "embed"

// FS holds the stylesheet and scripts served under /static.
//
//go:embed styles.css js
var FS embed.FS
