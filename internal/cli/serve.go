package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	hedronerrors "github.com/hedron-dev/hedron/pkg/errors"
	"github.com/hedron-dev/hedron/pkg/pipeline"
)

// maxBodyBytes caps request bodies to keep a single request from exhausting
// memory.
const maxBodyBytes = 16 << 20

// serveCommand creates the serve command, which exposes the pipeline as an
// HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mesh pipeline over HTTP",
		Long: `Serve starts an HTTP server exposing the pipeline. Meshes are posted as
JSON documents:

  GET  /healthz              liveness probe
  POST /v1/stats             topology statistics for the posted mesh
  POST /v1/transform         apply transforms, returns the mesh as JSON
  POST /v1/render            render the mesh, returns the artifact

Transform and render parameters are passed as query parameters (transforms,
factor, rounds, format, detailed, faces).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(runner, c.Logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				return cmd.Context().Err()
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the pipeline cache")

	return cmd
}

// =============================================================================
// Router
// =============================================================================

// newRouter builds the HTTP handler for the pipeline API.
func newRouter(runner *pipeline.Runner, logger *log.Logger) http.Handler {
	s := &server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/stats", s.handleStats)
		r.Post("/transform", s.handleTransform)
		r.Post("/render", s.handleRender)
	})

	return r
}

type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// =============================================================================
// Handlers
// =============================================================================

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statsResponse is the body returned by POST /v1/stats.
type statsResponse struct {
	Vertices      int `json:"vertices"`
	Edges         int `json:"edges"`
	Faces         int `json:"faces"`
	ArityMin      int `json:"arity_min"`
	ArityMax      int `json:"arity_max"`
	BoundaryEdges int `json:"boundary_edges"`
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	m, err := s.loadBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	arity := m.Arity()
	writeJSON(w, http.StatusOK, statsResponse{
		Vertices:      m.VertexCount(),
		Edges:         m.EdgeCount(),
		Faces:         m.FaceCount(),
		ArityMin:      arity.Min,
		ArityMax:      arity.Max,
		BoundaryEdges: boundaryEdgeCount(m),
	})
}

func (s *server) handleTransform(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{pipeline.FormatJSON}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[pipeline.FormatJSON])
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, hedronerrors.Wrap(hedronerrors.ErrCodeInvalidFormat, err, "invalid format %q", format))
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(format))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

// =============================================================================
// Request Helpers
// =============================================================================

// loadBody reads the request body as a mesh document and builds the mesh
// without running transforms.
func (s *server) loadBody(r *http.Request) (*pipeline.Mesh, error) {
	opts, err := optionsFromRequest(r)
	if err != nil {
		return nil, err
	}
	return s.runner.Load(r.Context(), opts)
}

// optionsFromRequest builds pipeline options from the request body and query
// parameters. The body must be a JSON mesh document.
func optionsFromRequest(r *http.Request) (pipeline.Options, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return pipeline.Options{}, hedronerrors.Wrap(hedronerrors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(body) == 0 {
		return pipeline.Options{}, hedronerrors.New(hedronerrors.ErrCodeInvalidInput, "request body is empty")
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Source:     string(body),
		Format:     pipeline.FormatJSON,
		Transforms: parseTransforms(q.Get("transforms")),
		Detailed:   q.Get("detailed") == "true",
		Faces:      q.Get("faces") == "true",
	}
	if err := pipeline.ValidateTransforms(opts.Transforms); err != nil {
		return pipeline.Options{}, hedronerrors.Wrap(hedronerrors.ErrCodeInvalidTransform, err, "invalid transforms")
	}
	if v := q.Get("factor"); v != "" {
		if _, err := fmt.Sscanf(v, "%g", &opts.SmoothFactor); err != nil {
			return pipeline.Options{}, hedronerrors.New(hedronerrors.ErrCodeInvalidInput, "invalid factor %q", v)
		}
	}
	if v := q.Get("rounds"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &opts.SmoothRounds); err != nil {
			return pipeline.Options{}, hedronerrors.New(hedronerrors.ErrCodeInvalidInput, "invalid rounds %q", v)
		}
	}
	if err := opts.ValidateForTransform(); err != nil {
		return pipeline.Options{}, hedronerrors.Wrap(hedronerrors.ErrCodeInvalidInput, err, "invalid transform options")
	}
	return opts, nil
}

// =============================================================================
// Response Helpers
// =============================================================================

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var herr *hedronerrors.Error
	if !errors.As(err, &herr) {
		herr = hedronerrors.FromMesh(err, "request failed")
	}

	// Decode failures on the posted document are client errors, not ours.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if herr.Code == hedronerrors.ErrCodeInternal && (errors.As(err, &syntaxErr) || errors.As(err, &typeErr)) {
		herr = hedronerrors.Wrap(hedronerrors.ErrCodeInvalidInput, err, "malformed mesh document")
	}

	status := statusForCode(herr.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "err", err)
	}

	var resp errorResponse
	resp.Error.Code = string(herr.Code)
	resp.Error.Message = herr.Message
	writeJSON(w, status, resp)
}

// statusForCode maps application error codes to HTTP statuses.
func statusForCode(code hedronerrors.Code) int {
	switch code {
	case hedronerrors.ErrCodeInvalidInput,
		hedronerrors.ErrCodeInvalidFormat,
		hedronerrors.ErrCodeInvalidTransform,
		hedronerrors.ErrCodeInvalidPath,
		hedronerrors.ErrCodeTopologyMalformed,
		hedronerrors.ErrCodeArity:
		return http.StatusBadRequest
	case hedronerrors.ErrCodeNotFound,
		hedronerrors.ErrCodeFileNotFound,
		hedronerrors.ErrCodeTopologyNotFound:
		return http.StatusNotFound
	case hedronerrors.ErrCodeTopologyConflict:
		return http.StatusConflict
	case hedronerrors.ErrCodeGeometry, hedronerrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// contentTypeFor returns the MIME type for a render format.
func contentTypeFor(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/json"
	}
}
