package export

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips chapter markup down to a fixed structural allow-list
// before it is embedded in an export. Elements outside the list are removed
// entirely and attributes are dropped unconditionally, so injected script or
// style content from an untrusted content field never reaches an output
// artifact. Applied on every output path: the browser-rendered PDF/JPEG
// path and the e-book packaging path use the same policy.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// allowedElements is the full set of tags a chapter body may contain after
// sanitization.
var allowedElements = []string{
	"p", "br", "strong", "em",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol", "li", "blockquote", "hr",
}

func NewSanitizer() *Sanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements(allowedElements...)
	return &Sanitizer{policy: policy}
}

// Sanitize returns html restricted to the allow-list. It never fails;
// unrecognized markup is silently dropped. Sanitizing already-sanitized
// content yields the same content.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
