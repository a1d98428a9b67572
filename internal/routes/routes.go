package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/janisto/query-mock/internal/middleware"
)

// responsePrefix is prepended to every echoed message.
const responsePrefix = "You said: "

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	registerQuery(api)
}

// QueryInput is the request body for the query endpoint. Unknown top-level
// fields are ignored; only message is validated.
type QueryInput struct {
	Body struct {
		Message string `json:"message" doc:"Message to echo back" example:"hello"`
	}
}

// QueryData models the mock response payload. The mock flag signals to
// callers that this is a placeholder implementation, not a real backend.
type QueryData struct {
	Response string `json:"response" doc:"Echoed message" example:"You said: hello"`
	Status   string `json:"status" doc:"Always \"ok\"" example:"ok"`
	Mock     bool   `json:"mock" doc:"Always true for this placeholder backend" example:"true"`
}

// QueryOutput is the response wrapper for the query endpoint.
type QueryOutput struct {
	Body QueryData
}

func registerQuery(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "query",
		Method:        http.MethodPost,
		Path:          "/query",
		Summary:       "Echo a message back as a mock query response",
		DefaultStatus: http.StatusOK,
	}, queryHandler)
}

func queryHandler(ctx context.Context, input *QueryInput) (*QueryOutput, error) {
	appmiddleware.LogInfo(ctx, "query received", zap.String("message", input.Body.Message))
	return &QueryOutput{Body: QueryData{
		Response: responsePrefix + input.Body.Message,
		Status:   "ok",
		Mock:     true,
	}}, nil
}
