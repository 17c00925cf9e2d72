package files

import (
	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/docview/http/server"
	"github.com/rise-and-shine/docview/http/server/forward"
	"github.com/rise-and-shine/docview/meta"
)

// API exposes the file use cases over HTTP.
type API struct {
	deps        Deps
	hideDetails bool
}

// NewAPI creates the files HTTP API.
func NewAPI(deps Deps, hideDetails bool) *API {
	return &API{deps: deps, hideDetails: hideDetails}
}

// Register mounts the /files routes on r. Every route requires auth.
func (a *API) Register(r fiber.Router, auth fiber.Handler) {
	g := r.Group("/files", auth)

	g.Get("/", forward.ToUserAction(NewListFiles(a.deps)))
	g.Get("/:file_id", forward.ToUserAction(NewGetFile(a.deps)))
	g.Get("/:file_id/download_url", forward.ToUserAction(NewGetDownloadURL(a.deps)))
	g.Delete("/:file_id", forward.ToUserAction(NewDeleteFile(a.deps)))
	g.Get("/:file_id/content", forward.ToStream(NewGetFileContent(a.deps)))
	g.Get("/:file_id/download", forward.ToStream(NewDownloadFile(a.deps)))
	g.Get("/:file_id/regions", a.withFailureDetail(CodeRegionsFailed, forward.ToUserAction(NewGetFileRegions(a.deps))))
}

// withFailureDetail renders internal errors of h with a top level "detail"
// made of the translated prefix and the failure text.
func (a *API) withFailureDetail(prefix string, h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := h(c)
		if err == nil {
			return nil
		}

		e := errx.AsErrorX(err)
		if e.Type() != errx.T_Internal {
			return err
		}

		detail := meta.TrCtx(c.UserContext(), prefix) + ": " + e.Error()
		return server.WriteErrorResponse(c, err, a.hideDetails, server.WithDetail(detail))
	}
}

// RegisterHealth mounts the unauthenticated liveness probe.
func RegisterHealth(r fiber.Router) {
	r.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
