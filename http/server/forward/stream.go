package forward

import (
	"io"
	"mime"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/docview/ucdef"
)

// Disposition values for streamed files.
const (
	DispositionInline     = "inline"
	DispositionAttachment = "attachment"
)

// Stream is a file response written as raw bytes instead of JSON.
type Stream struct {
	Body        io.ReadCloser
	Size        int64 // -1 when unknown
	ContentType string
	Filename    string
	Disposition string
}

// ToStream forwards a request to a use case producing a Stream and copies it to
// the response. The stream body is closed once written.
func ToStream[I any](uc ucdef.UserAction[I, *Stream]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, log, err := prepare(c, uc)
		if err != nil {
			return errx.Wrap(err)
		}

		s, err := uc.Execute(c.UserContext(), req)
		if err != nil {
			log.Warnx(err)
			return errx.Wrap(err)
		}

		c.Set(fiber.HeaderContentType, s.ContentType)
		c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType(s.Disposition, map[string]string{
			"filename": s.Filename,
		}))
		if s.Disposition == DispositionInline {
			c.Set(fiber.HeaderAcceptRanges, "bytes")
		}

		// fasthttp closes the body once the response is sent
		c.Response().SetBodyStream(s.Body, int(s.Size))

		log.With("size", s.Size).Debug("streaming file")
		return nil
	}
}
