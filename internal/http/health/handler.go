package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const tagHealth = "Health"

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status" doc:"Service status" example:"healthy"`
}

// PingResponse is the payload for the ping endpoint.
type PingResponse struct {
	Message string `json:"message" doc:"Always pong" example:"pong"`
}

// Output for GET /health
type Output struct {
	Body Response
}

// PingOutput for GET /ping
type PingOutput struct {
	Body PingResponse
}

// Register wires liveness routes into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports that the process is up and serving requests.",
		Tags:        []string{tagHealth},
	}, Handler)

	huma.Register(api, huma.Operation{
		OperationID: "get-ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping",
		Description: "Replies with pong.",
		Tags:        []string{tagHealth},
	}, PingHandler)
}

// Handler reports the service as healthy.
func Handler(_ context.Context, _ *struct{}) (*Output, error) {
	return &Output{Body: Response{Status: "healthy"}}, nil
}

// PingHandler replies with pong.
func PingHandler(_ context.Context, _ *struct{}) (*PingOutput, error) {
	return &PingOutput{Body: PingResponse{Message: "pong"}}, nil
}
