package server

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/matzehuels/colorbars/pkg/errors"
)

// ErrResponse is the JSON body of every error response.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Code      string `json:"code"`
	ErrorText string `json:"error"`
}

// Render sets the response status.
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrRender converts err to a response, taking the status from its error code.
func ErrRender(err error) render.Renderer {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: errors.HTTPStatus(err),
		Code:           string(code),
		ErrorText:      errors.UserMessage(err),
	}
}

func errNotFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}

// ErrMethodNotAllowed answers a request whose method the route does not accept.
func ErrMethodNotAllowed(method string) render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusMethodNotAllowed,
		Code:           string(errors.ErrCodeInvalidInput),
		ErrorText:      "method " + method + " not allowed",
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	_ = render.Render(w, r, ErrRender(err))
}
