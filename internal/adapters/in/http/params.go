package http

import (
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/i18n"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"golang.org/x/text/language"
)

// wizardID binds the {id} path parameter of the wizard routes.
func wizardID(c echo.Context) (kernel.UUID, error) {
	return uuidParam(c, "id")
}

// orderID binds the {id} path parameter of the order routes.
func orderID(c echo.Context) (kernel.UUID, error) {
	return uuidParam(c, "id")
}

func uuidParam(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return kernel.UUIDFromBytes(id[:])
}

// locale picks the message language from ?lang, then Accept-Language.
func (s *Server) locale(c echo.Context) language.Tag {
	return i18n.Resolve(c.QueryParam("lang"), c.Request().Header.Get("Accept-Language"), s.defaultLocale)
}
