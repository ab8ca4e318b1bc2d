package hello

const contentTypeText = "text/plain; charset=utf-8"

// TextOutput is a plain-text response. Huma writes a []byte body as-is.
type TextOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func newTextOutput(s string) *TextOutput {
	return &TextOutput{ContentType: contentTypeText, Body: []byte(s)}
}

// GreetOutput for POST /hello/{name}
type GreetOutput struct {
	Body GreetResponse
}
