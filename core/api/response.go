package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// API identifiers reported in the envelope "id" field.
const (
	IDStateRead   = "api.content.v2.state.read"
	IDStateUpdate = "api.content.v2.state.update"
)

// Envelope status values.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Response codes.
const (
	CodeOK           = "OK"
	CodeClientError  = "CLIENT_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeServerError  = "SERVER_ERROR"
)

// Version is the envelope version string.
const Version = "v2"

// Params carries the outcome of a request.
type Params struct {
	ResMsgID     string `json:"resmsgid"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Response is the uniform envelope returned by every content-state route.
type Response struct {
	ID           string         `json:"id"`
	Ver          string         `json:"ver"`
	Ts           string         `json:"ts"`
	Params       Params         `json:"params"`
	ResponseCode string         `json:"responseCode"`
	Result       map[string]any `json:"result"`
}

// OK builds a successful envelope around result.
func OK(id string, result map[string]any) Response {
	if result == nil {
		result = map[string]any{}
	}
	return Response{
		ID:           id,
		Ver:          Version,
		Ts:           time.Now().UTC().Format(time.RFC3339),
		Params:       Params{Status: StatusSuccess},
		ResponseCode: CodeOK,
		Result:       result,
	}
}

// Failed builds a FAILED envelope with a human readable message.
func Failed(id, code, message string) Response {
	return Response{
		ID:           id,
		Ver:          Version,
		Ts:           time.Now().UTC().Format(time.RFC3339),
		Params:       Params{Status: StatusFailed, ErrorMessage: message},
		ResponseCode: code,
		Result:       map[string]any{},
	}
}

// Send writes the envelope with the given HTTP status. The response message id is the request
// ray id when one was assigned, a fresh UUID otherwise.
func Send(c *fiber.Ctx, status int, resp Response) error {
	if rid, ok := c.Locals("ray_id").(string); ok && rid != "" {
		resp.Params.ResMsgID = rid
	} else {
		resp.Params.ResMsgID = uuid.NewString()
	}
	return c.Status(status).JSON(resp)
}
