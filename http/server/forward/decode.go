package forward

import (
	"reflect"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
)

const (
	codeInvalidContentType = "INVALID_CONTENT_TYPE"
	codeInvalidJSONBody    = "INVALID_JSON_BODY"
	codeInvalidQueryParams = "INVALID_QUERY_PARAMS"
	codeInvalidPathParams  = "INVALID_PATH_PARAMS"
	codeInvalidHTTPMethod  = "INVALID_HTTP_METHOD"
)

// newRequest creates a new request of type I.
// It ensures that I is a pointer to a struct.
func newRequest[I any]() (I, error) {
	var req I

	reqType := reflect.TypeOf((*I)(nil)).Elem()
	if reqType.Kind() != reflect.Pointer || reqType.Elem().Kind() != reflect.Struct {
		return req, errx.New("input type I must be a pointer to a struct")
	}

	reqVal := reflect.New(reqType.Elem()).Interface().(I) //nolint:errcheck // safe type assertion
	return reqVal, nil
}

// decodeRequest fills req from path params, then query params (GET, DELETE) or
// the JSON body (POST, PUT, PATCH).
func decodeRequest[I any](c *fiber.Ctx, req I) error {
	err := decodePath(c, req)
	if err != nil {
		return errx.Wrap(err)
	}

	switch c.Method() {
	case fiber.MethodGet, fiber.MethodDelete:
		return decodeQuery(c, req)
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		return decodeBody(c, req)
	default:
		return errx.New(
			"unsupported http method",
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidHTTPMethod),
			errx.WithDetails(errx.D{"received_http_method": c.Method()}),
		)
	}
}

// decodeBody decodes the request body into the given request struct.
// It only decodes if the content type is application/json.
func decodeBody[I any](c *fiber.Ctx, req I) error {
	if len(c.Body()) == 0 {
		return nil
	}

	if c.Get(fiber.HeaderContentType) != fiber.MIMEApplicationJSON {
		return errx.New(
			"content type must be application/json for this request",
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidContentType),
		)
	}

	if err := c.BodyParser(req); err != nil {
		return errx.Wrap(
			err,
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidJSONBody),
		)
	}

	return nil
}

// decodeQuery decodes the query params into the given request struct.
func decodeQuery[I any](c *fiber.Ctx, req I) error {
	if len(c.Queries()) == 0 {
		return nil
	}

	if err := c.QueryParser(req); err != nil {
		return errx.Wrap(
			err,
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidQueryParams),
		)
	}

	return nil
}

// decodePath decodes route params into fields tagged `params:"..."`.
func decodePath[I any](c *fiber.Ctx, req I) error {
	if len(c.AllParams()) == 0 {
		return nil
	}

	if err := c.ParamsParser(req); err != nil {
		return errx.Wrap(
			err,
			errx.WithType(errx.T_Validation),
			errx.WithCode(codeInvalidPathParams),
		)
	}

	return nil
}
