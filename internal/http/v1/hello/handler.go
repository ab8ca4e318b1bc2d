package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/huma-greeter/internal/greeting"
	applog "github.com/janisto/huma-greeter/internal/platform/logging"
)

const tagGreeting = "Greeting"

// textResponses documents a 200 text/plain response for operations that
// return a TextOutput.
func textResponses(description string) map[string]*huma.Response {
	return map[string]*huma.Response{
		"200": {
			Description: description,
			Content: map[string]*huma.MediaType{
				"text/plain": {Schema: &huma.Schema{Type: huma.TypeString}},
			},
		},
	}
}

// Register wires the greeting routes into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Introduce the service",
		Description: "Returns a fixed plain-text introduction.",
		Tags:        []string{tagGreeting},
		Responses:   textResponses("Service introduction"),
	}, rootHandler)

	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Greet the world",
		Description: "Returns the plain-text greeting `Hello World`.",
		Tags:        []string{tagGreeting},
		Responses:   textResponses("Default greeting"),
	}, helloHandler)

	huma.Register(api, huma.Operation{
		OperationID: "greet-user-text",
		Method:      http.MethodGet,
		Path:        "/hello/{name}",
		Summary:     "Greet a user as text",
		Description: "Returns `Hello {name}` as plain text. The name is echoed without escaping.",
		Tags:        []string{tagGreeting},
		Responses:   textResponses("Personalized greeting"),
	}, greetTextHandler)

	huma.Register(api, huma.Operation{
		OperationID: "greet-user-json",
		Method:      http.MethodPost,
		Path:        "/hello/{name}",
		Summary:     "Greet a user as JSON",
		Description: "Returns `{\"message\": \"Hello {name}\"}`. CBOR is returned when the client prefers it.",
		Tags:        []string{tagGreeting},
	}, greetJSONHandler)
}

func rootHandler(ctx context.Context, _ *struct{}) (*TextOutput, error) {
	applog.LogDebug(ctx, "root", zap.String("path", "/"))
	return newTextOutput(greeting.Root()), nil
}

func helloHandler(ctx context.Context, _ *struct{}) (*TextOutput, error) {
	applog.LogDebug(ctx, "hello", zap.String("path", "/hello"))
	return newTextOutput(greeting.World()), nil
}

func greetTextHandler(ctx context.Context, input *GreetInput) (*TextOutput, error) {
	applog.LogInfo(ctx, "greet text", zap.String("name", input.Name))
	return newTextOutput(greeting.Greet(input.Name)), nil
}

func greetJSONHandler(ctx context.Context, input *GreetInput) (*GreetOutput, error) {
	applog.LogInfo(ctx, "greet json", zap.String("name", input.Name))
	return &GreetOutput{Body: GreetResponse{Message: greeting.Greet(input.Name)}}, nil
}
