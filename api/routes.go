package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bookmakerhq/bookmaker/auth"
	rh "github.com/bookmakerhq/bookmaker/route-handlers"
	"github.com/bookmakerhq/bookmaker/webutil"
)

const (
	apiBasePath       = "/api"
	booksBasePath     = "/books"
	chaptersBasePath  = "/chapters"
	templatesBasePath = "/templates"
	profileBasePath   = "/profile"
	generateBasePath  = "/generate"
)

const (
	chaptersSubPath = "/chapters"
	exportSubPath   = "/export"
	historySubPath  = "/exports"
	autosaveSubPath = "/autosave"
)

const (
	paramID = "id" // General parameter name for resource IDs
)

// Handlers bundles every route handler the router wires up.
type Handlers struct {
	Book       *rh.BookHandler
	Chapter    *rh.ChapterHandler
	Export     *rh.ExportHandler
	Template   *rh.TemplateHandler
	Profile    *rh.ProfileHandler
	Generation *rh.GenerationHandler
}

// SetupRoutes builds the full router. Everything under /api requires a
// valid bearer token; /healthz stays public for load balancer probes.
func SetupRoutes(handlers Handlers, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)                    // Log every request
	r.Use(middleware.Recoverer)                 // Recover from panics
	r.Use(middleware.Timeout(60 * time.Second)) // Set a timeout context for requests

	r.Route(apiBasePath, func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		configureBookRoutes(r, handlers.Book, handlers.Chapter, handlers.Export)
		configureChapterRoutes(r, handlers.Chapter)
		configureTemplateRoutes(r, handlers.Template)
		configureProfileRoutes(r, handlers.Profile)
		configureGenerationRoutes(r, handlers.Generation)
	})

	// Health check endpoint
	r.Get("/healthz", handleHealthCheck)

	return r
}

// Helper for constructing paths with a parameter
func pathWithParam(basePath string, paramName string) string {
	if basePath == "" {
		return "/{" + paramName + "}"
	}
	return basePath + "/{" + paramName + "}"
}

// --- Book Routes ---
func configureBookRoutes(r chi.Router, bookHandler *rh.BookHandler, chapterHandler *rh.ChapterHandler, exportHandler *rh.ExportHandler) {
	bookSpecificPath := pathWithParam("", paramID) // e.g., "/{id}"

	r.Route(booksBasePath, func(r chi.Router) {
		r.Get("/", webutil.MakeHandler(bookHandler.HandleGetBooks))
		r.Post("/", webutil.MakeHandler(bookHandler.HandleCreateBook))
		r.Route(bookSpecificPath, func(r chi.Router) {
			r.Get("/", webutil.MakeHandler(bookHandler.HandleGetBook))
			r.Put("/", webutil.MakeHandler(bookHandler.HandleUpdateBook))
			r.Delete("/", webutil.MakeHandler(bookHandler.HandleDeleteBook))

			// Nested: chapters of a book
			r.Get(chaptersSubPath, webutil.MakeHandler(chapterHandler.HandleGetChapters))    // GET /books/{id}/chapters
			r.Post(chaptersSubPath, webutil.MakeHandler(chapterHandler.HandleCreateChapter)) // POST /books/{id}/chapters

			// Export pipeline
			r.Post(exportSubPath, webutil.MakeHandler(exportHandler.HandleExportBook))       // POST /books/{id}/export
			r.Get(historySubPath, webutil.MakeHandler(exportHandler.HandleGetExportHistory)) // GET /books/{id}/exports
		})
	})
}

// --- Chapter Routes ---
func configureChapterRoutes(r chi.Router, handler *rh.ChapterHandler) {
	chapterSpecificPath := pathWithParam("", paramID) // e.g., "/{id}"

	r.Route(chaptersBasePath, func(r chi.Router) {
		r.Route(chapterSpecificPath, func(r chi.Router) {
			r.Get("/", webutil.MakeHandler(handler.HandleGetChapter))
			r.Put("/", webutil.MakeHandler(handler.HandleUpdateChapter))
			r.Delete("/", webutil.MakeHandler(handler.HandleDeleteChapter))
			r.Post(autosaveSubPath, webutil.MakeHandler(handler.HandleAutosaveChapter)) // POST /chapters/{id}/autosave
		})
	})
}

// --- Template Routes ---
func configureTemplateRoutes(r chi.Router, handler *rh.TemplateHandler) {
	r.Get(templatesBasePath, webutil.MakeHandler(handler.HandleGetTemplates))
}

// --- Profile Routes ---
func configureProfileRoutes(r chi.Router, handler *rh.ProfileHandler) {
	r.Route(profileBasePath, func(r chi.Router) {
		r.Get("/", webutil.MakeHandler(handler.HandleGetProfile))
		r.Put("/", webutil.MakeHandler(handler.HandleUpdateProfile))
	})
}

// --- Generation Routes ---
func configureGenerationRoutes(r chi.Router, handler *rh.GenerationHandler) {
	r.Route(generateBasePath, func(r chi.Router) {
		r.Post("/book", webutil.MakeHandler(handler.HandleGenerateBook))
		r.Post("/slides", webutil.MakeHandler(handler.HandleGenerateSlides))
		r.Get("/models", webutil.MakeHandler(handler.HandleListModels))
	})
	r.Post("/chat", webutil.MakeHandler(handler.HandleChat))
}

// --- Utility Functions ---

// handleHealthCheck responds to a health check request.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeTextPlainUTF8)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
