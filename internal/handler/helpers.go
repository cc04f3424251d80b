package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Ncongwana-808/autorepair-erp/internal/apierror"
	"github.com/Ncongwana-808/autorepair-erp/internal/middleware"
)

var validate = validator.New()

func init() {
	// Teach the validator to see decimal.Decimal as a float so numeric tags
	// (min, max) apply to monetary fields.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate decodes the JSON body into obj and runs struct validation.
// A body that does not parse is a 400; a body that parses but fails a
// validation tag is a 422 with the offending fields. Writes the response
// itself and returns false on either failure.
func bindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid request body: "+err.Error()))
		return false
	}
	if err := validate.Struct(obj); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads a uuid path parameter. Writes the 400 itself on failure.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// respondError translates service errors into HTTP responses. Domain errors
// carry their own status and a caller-safe detail; anything else is a store
// failure, logged with the request id and masked as a plain 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Kind.HTTPStatus(), apierror.New(apiErr.Detail))
		return
	}
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).
		Err(err).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
}
