package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

type namedError interface {
	ErrorName() string
}

type publicMessager interface {
	PublicMessage() string
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithNamedError renders {"error": {"name", "message", "details"}} where name and message
// come from err itself.
func AbortWithNamedError(c *gin.Context, status int, err error, details any) {
	resp := Response{Status: status}
	resp.Error.Name = Name(err)
	resp.Error.Message = Message(err)
	resp.Error.Details = details

	abort(c, err, resp)
}

// Name is the first ErrorName found in err's chain, or "Error".
func Name(err error) string {
	var named namedError
	if errors.As(err, &named) {
		return named.ErrorName()
	}
	return "Error"
}

// Message prefers a PublicMessage in err's chain over the full error text.
func Message(err error) string {
	var pm publicMessager
	if errors.As(err, &pm) {
		return pm.PublicMessage()
	}
	return err.Error()
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
