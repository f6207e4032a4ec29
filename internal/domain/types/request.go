package types

// Body mime types the field resolver understands.
const (
	MimeJSON          = "application/json"
	MimeMultipartForm = "multipart/form-data"
)

// Param is one name/value pair of a form body.
type Param struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// RequestBody is the body of a request snapshot. JSON bodies use Text;
// multipart bodies use Params in their original order.
type RequestBody struct {
	MimeType string  `json:"mimeType" yaml:"mimeType"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Params   []Param `json:"params,omitempty" yaml:"params,omitempty"`
}

// RequestSnapshot is the read-only view of an outgoing request that field
// tokens are resolved against.
type RequestSnapshot struct {
	Method string      `json:"method,omitempty" yaml:"method,omitempty"`
	URL    string      `json:"url" yaml:"url"`
	Body   RequestBody `json:"body" yaml:"body"`
}
