// Package forward provides helper functions for forwarding HTTP requests to use cases.
package forward

import (
	"fmt"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/docview/mask"
	"github.com/rise-and-shine/docview/observability/logger"
	"github.com/rise-and-shine/docview/ucdef"
	"github.com/rise-and-shine/docview/val"
)

const maxLogAllowedSize = 8 << 10 // 8KB

// ToUserAction forwards a request to a use case and writes its result as JSON.
// It handles request decoding and validation.
// I is the use case request type and must be a pointer to a struct.
// O is the use case response type.
func ToUserAction[I, O any](uc ucdef.UserAction[I, O]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, log, err := prepare(c, uc)
		if err != nil {
			return errx.Wrap(err)
		}

		resp, err := uc.Execute(c.UserContext(), req)
		if err != nil {
			log.Warnx(err)
			return errx.Wrap(err)
		}

		size, err := writeJSON(c, resp)
		if err != nil {
			log.Errorx(err)
			return errx.Wrap(err)
		}

		if size <= maxLogAllowedSize {
			log = log.With("response_body", mask.StructToOrdMap(resp))
		} else {
			log = log.With("response_body", fmt.Sprintf("too large for logging: %d bytes", size))
		}

		log.Debug("user action completed")
		return nil
	}
}

// prepare decodes and validates the request of uc and returns a logger scoped to it.
func prepare[I, O any](c *fiber.Ctx, uc ucdef.UserAction[I, O]) (I, logger.Logger, error) {
	log := logger.
		Named("http.handler").
		WithContext(c.UserContext()).
		With("operation_id", uc.OperationID())

	req, err := newRequest[I]()
	if err != nil {
		return req, log, errx.Wrap(err)
	}

	err = decodeRequest(c, req)
	if err != nil {
		return req, log, errx.Wrap(err)
	}

	if len(c.Body()) <= maxLogAllowedSize {
		log = log.With("request", mask.StructToOrdMap(req))
	} else {
		log = log.With("request", fmt.Sprintf("too large for logging: %d bytes", len(c.Body())))
	}

	err = val.ValidateSchema(req)
	if err != nil {
		log.Warnx(err)
		return req, log, errx.Wrap(err)
	}

	return req, log, nil
}

func writeJSON(c *fiber.Ctx, data any) (int, error) {
	raw, err := c.App().Config().JSONEncoder(data)
	if err != nil {
		return 0, errx.Wrap(err)
	}

	c.Response().SetBodyRaw(raw)
	c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
	return len(raw), nil
}
