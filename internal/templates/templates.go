package templates

import _ "embed"

// Report is the HTML dashboard report rendered by the report service.
//
//go:embed report.html
var Report string
