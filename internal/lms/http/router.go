package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/aussiebroadwan/lms/internal/lms/store"
	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/aussiebroadwan/lms/pkg/slogx"

	_ "github.com/aussiebroadwan/lms/api/lms" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	gate         httpx.Gate
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	AuthService   *service.AuthService
	UserService   *service.UserService
	CourseService *service.CourseService
	ReviewService *service.ReviewService
	UploadService *service.UploadService

	// MaxUploadBytes caps uploaded files; zero means the PDF limit.
	MaxUploadBytes int64
}

// NewRouter wires the access gate from verifier. resolve is optional and
// re-checks the account behind each token (see httpx.ClaimsResolver).
func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	resolve httpx.ClaimsResolver,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:    http.NewServeMux(),
		signer: signer,
		gate: httpx.Gate{
			Verifier: verifier,
			Resolve:  resolve,
			OnError:  gateError,
		},
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerStudents()
	r.registerCourses()
	r.registerReviews()
	r.registerUploads()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			LMS API
//	@version		0.1.0
//	@description	Learning management backend: student accounts, course catalog, reviews and course file uploads.
//	@description
//	@description				Tokens are HS256 JWTs valid for 24 hours, obtained from /api/student/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/lms
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerStudents() {
	h := &StudentHandler{AuthService: r.AuthService, UserService: r.UserService}

	// Signup is public, but an admin token lets an admin create more admins.
	r.Mux.Handle("POST /api/student/signup", r.gate.Optional(http.HandlerFunc(h.HandleSignup)))
	r.Mux.HandleFunc("POST /api/student/login", h.HandleLogin)

	r.Mux.Handle("GET /api/student/profile", r.gate.Authenticated(http.HandlerFunc(h.HandleProfile)))
	r.Mux.Handle("PUT /api/student/profile", r.gate.Authenticated(http.HandlerFunc(h.HandleUpdateProfile)))
	r.Mux.Handle("PUT /api/student/change-password", r.gate.Authenticated(http.HandlerFunc(h.HandleChangePassword)))

	r.Mux.Handle("GET /api/student/admin/check", r.gate.Admin(http.HandlerFunc(h.HandleAdminCheck)))
	r.Mux.Handle("GET /api/student/admin/users", r.gate.Admin(http.HandlerFunc(h.HandleListUsers)))
	r.Mux.Handle("PUT /api/student/admin/users/{id}/block", r.gate.Admin(http.HandlerFunc(h.HandleSetBlocked)))
	r.Mux.Handle("DELETE /api/student/admin/users/{id}", r.gate.Admin(http.HandlerFunc(h.HandleDeleteUser)))
}

func (r *Router) registerCourses() {
	h := &CourseHandler{CourseService: r.CourseService}

	// Public listing; an admin token widens it to unavailable courses.
	r.Mux.Handle("GET /api/course", r.gate.Optional(http.HandlerFunc(h.HandleList)))
	r.Mux.HandleFunc("GET /api/course/{id}", h.HandleGet)

	r.Mux.Handle("GET /api/course/admin/all", r.gate.Admin(http.HandlerFunc(h.HandleListAll)))
	r.Mux.Handle("POST /api/course/save", r.gate.Admin(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /api/course/update/{id}", r.gate.Admin(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /api/course/delete/{id}", r.gate.Admin(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerReviews() {
	h := &ReviewHandler{ReviewService: r.ReviewService}

	r.Mux.Handle("GET /api/reviews", r.gate.Authenticated(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /api/reviews", r.gate.Authenticated(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /api/reviews/my-reviews", r.gate.Authenticated(http.HandlerFunc(h.HandleListMine)))
	r.Mux.Handle("PUT /api/reviews/{id}", r.gate.Authenticated(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /api/reviews/{id}", r.gate.Authenticated(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerUploads() {
	h := &UploadHandler{UploadService: r.UploadService, MaxBytes: r.MaxUploadBytes}

	r.Mux.Handle("POST /api/course-images", r.gate.Admin(http.HandlerFunc(h.HandleImage)))
	r.Mux.Handle("POST /api/course-pdfs", r.gate.Admin(http.HandlerFunc(h.HandlePDF)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", BannerHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
