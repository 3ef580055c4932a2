package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	domainerrors "interact-club.backend/internal/domain/errors"
	"interact-club.backend/internal/interfaces/http/response"
	"interact-club.backend/pkg/utils"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName makes validation errors name fields the way clients send them.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// bindJSON decodes the request body. Missing required fields are reported
// as validation errors, malformed JSON as a bad request.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.Error(c, domainerrors.Validation(verrs[0].Field()+" is required"))
			return false
		}
		response.Error(c, domainerrors.BadRequest("invalid request body"))
		return false
	}
	return true
}

// pathID parses the :id parameter.
func pathID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+resource+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// notFoundAs replaces a bare ErrNotFound with a resource-specific message.
func notFoundAs(err error, message string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(message)
	}
	return err
}

type inputValidator interface {
	Validate() error
}

// validateInput runs the entity level checks and renders their error.
func validateInput(c *gin.Context, in inputValidator) bool {
	if err := in.Validate(); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}
