package greeting

const (
	// StaticMessage is the fixed greeting body.
	StaticMessage = "hello world! 그린"

	// interpolatedPrefix precedes the test_env value in the env greeting.
	interpolatedPrefix = "Hello World!! test_env: "

	contentTypeText = "text/plain; charset=utf-8"
)

// Output is a plain-text greeting response. Huma writes a []byte body verbatim.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func textOutput(msg string) *Output {
	return &Output{ContentType: contentTypeText, Body: []byte(msg)}
}
