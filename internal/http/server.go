package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ShishirShekhar/E-Learning-Platform/internal/auth"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/config"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/crypto"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/metrics"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/model"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/repository"
)

const sessionCookieName = "accessToken"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Store is the persistence surface the server needs. *repository.Store
// implements it; tests use an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, userID string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, userID string) (model.User, error)
	CreateCourse(ctx context.Context, course model.Course) error
	GetCourseByID(ctx context.Context, courseID string) (model.Course, error)
	ListCoursesWithInstructor(ctx context.Context) ([]repository.CourseWithInstructor, error)
	DeleteCourse(ctx context.Context, courseID string) (model.Course, error)
	EnrollStudent(ctx context.Context, studentID, courseID string) error
	ListCoursesByStudent(ctx context.Context, studentID string) ([]model.Course, error)
	CreateTest(ctx context.Context, test model.Test) error
}

// Generator is the AI proxy upstream. *ai.Client implements it.
type Generator interface {
	GenerateQuestions(ctx context.Context, topic, difficulty string) ([]string, error)
	RelatedDocuments(ctx context.Context, topic string) ([]string, error)
	GenerateSummary(ctx context.Context, topic string) (string, error)
	GenerateContent(ctx context.Context, topic, length string) (string, error)
}

type Server struct {
	cfg       config.Config
	store     Store
	ai        Generator
	metrics   *metrics.Collector
	logger    *zap.Logger
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

func NewServer(cfg config.Config, store Store, gen Generator, collector *metrics.Collector, logger *zap.Logger) *Server {
	return &Server{
		cfg:       cfg,
		store:     store,
		ai:        gen,
		metrics:   collector,
		logger:    logger,
		validate:  validator.New(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(corsMiddleware(s.cfg.CORSAllowedOrigin))

	r.Get("/", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)
		r.With(s.authenticate).Post("/auth/logout", s.handleLogout)

		r.With(s.authenticate).Get("/user/me", s.handleGetMe)

		r.With(s.authenticate, s.authorize(studentRoutes)).Post("/student/enroll", s.handleEnroll)
		r.With(s.authenticate, s.authorize(studentRoutes)).Get("/student/progress", s.handleProgress)

		r.With(s.authenticate, s.authorize(instructorRoutes)).Post("/instructor/create-course", s.handleCreateCourse)
		r.With(s.authenticate, s.authorize(instructorRoutes)).Post("/instructor/create-test", s.handleCreateTest)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.authenticate, s.authorize(adminRoutes))
			r.Get("/users", s.handleListUsers)
			r.Delete("/user/{id}", s.handleDeleteUser)
			r.Get("/courses", s.handleListCourses)
			r.Delete("/course/{id}", s.handleDeleteCourse)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Use(s.authenticate)
			r.With(s.authorize(aiAuthoringRoutes)).Post("/generate-question", s.handleGenerateQuestion)
			r.With(s.authorize(aiStudyRoutes)).Post("/related-documents", s.handleRelatedDocuments)
			r.With(s.authorize(aiStudyRoutes)).Post("/generate-summary", s.handleGenerateSummary)
			r.With(s.authorize(aiAuthoringRoutes)).Post("/generate-content", s.handleGenerateContent)
		})
	})

	return r
}

// ---- middleware ----

type userKey struct{}

func userFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}

// authenticate resolves the session token into the current user record. The
// cookie takes precedence over the Authorization header. The user row is
// re-read on every request, so a token whose backing user was deleted stops
// working even before it expires.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			token = cookie.Value
		}
		if token == "" {
			token = bearerToken(r.Header.Get("Authorization"))
		}
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized. Token not found.")
			return
		}

		claims, err := auth.ParseToken(s.cfg.JWTSecret, token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized. Invalid token.")
			return
		}

		user, err := s.store.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "User not found.")
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) authorize(p policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := userFromContext(r.Context())
			if !ok || user.Role == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized: User not authenticated.")
				return
			}
			if !p.Allows(user.Role) {
				writeError(w, http.StatusForbidden, "Forbidden: You do not have permission to access this resource.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

// ---- health ----

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the AI Tutor API!"})
}

// ---- auth ----

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !emailRegex.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	if !model.ValidRole(role) {
		writeError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "Email already in use")
			return
		}
		s.logger.Error("signup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !s.issueSession(w, user) {
		return
	}
	writeData(w, http.StatusCreated, userResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := crypto.CheckPassword(user.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid Password")
		return
	}

	if !s.issueSession(w, user) {
		return
	}
	writeData(w, http.StatusOK, userResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// issueSession signs an access token for the user and sets the session
// cookie. On failure it writes the error response and returns false.
func (s *Server) issueSession(w http.ResponseWriter, user model.User) bool {
	token, err := auth.NewAccessToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.AccessTokenTTL, auth.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return false
	}
	s.setSessionCookie(w, token)
	return true
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.AccessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	})
}

// ---- user ----

type meResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeData(w, http.StatusOK, meResponse{ID: user.ID, Email: user.Email, Role: user.Role})
}

// ---- student ----

type enrollRequest struct {
	CourseID string `json:"courseId"`
}

type enrolledStudent struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	Courses []string `json:"courses"`
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	student, _ := userFromContext(r.Context())

	var req enrollRequest
	if err := decodeJSON(r, &req); err != nil || req.CourseID == "" {
		writeError(w, http.StatusBadRequest, "Course ID is required")
		return
	}

	if _, err := s.store.GetCourseByID(r.Context(), req.CourseID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Course not found")
			return
		}
		s.logger.Error("enroll course lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := s.store.EnrollStudent(r.Context(), student.ID, req.CourseID); err != nil {
		if errors.Is(err, model.ErrAlreadyEnrolled) {
			writeError(w, http.StatusBadRequest, "Student is already enrolled in this course")
			return
		}
		s.logger.Error("enroll failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	courses, err := s.store.ListCoursesByStudent(r.Context(), student.ID)
	if err != nil {
		s.logger.Error("enrollment listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	courseIDs := make([]string, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
	}

	writeData(w, http.StatusOK, map[string]interface{}{
		"message": "Enrollment successful",
		"student": enrolledStudent{
			ID:      student.ID,
			Name:    student.Name,
			Email:   student.Email,
			Role:    student.Role,
			Courses: courseIDs,
		},
	})
}

type courseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     []string  `json:"content"`
	Instructor  string    `json:"instructor"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCourseResponse(course model.Course) courseResponse {
	content := course.Content
	if content == nil {
		content = []string{}
	}
	return courseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Content:     content,
		Instructor:  course.InstructorID,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

type progressResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Role    string           `json:"role"`
	Courses []courseResponse `json:"courses"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	student, _ := userFromContext(r.Context())

	courses, err := s.store.ListCoursesByStudent(r.Context(), student.ID)
	if err != nil {
		s.logger.Error("progress listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	resp := progressResponse{
		ID:      student.ID,
		Name:    student.Name,
		Email:   student.Email,
		Role:    student.Role,
		Courses: make([]courseResponse, 0, len(courses)),
	}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, toCourseResponse(c))
	}
	writeData(w, http.StatusOK, resp)
}

// ---- instructor ----

type createCourseRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Content     []string `json:"content"`
}

func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	instructor, _ := userFromContext(r.Context())

	var req createCourseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Required fields are missing")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Required fields are missing")
		return
	}

	// Instructor-supplied text is stored sanitized; students see it as-is.
	content := make([]string, 0, len(req.Content))
	for _, item := range req.Content {
		content = append(content, s.sanitizer.Sanitize(item))
	}
	course := model.Course{
		ID:           uuid.NewString(),
		Title:        s.sanitizer.Sanitize(req.Title),
		Description:  s.sanitizer.Sanitize(req.Description),
		Content:      content,
		InstructorID: instructor.ID,
	}
	if err := s.store.CreateCourse(r.Context(), course); err != nil {
		s.logger.Error("create course failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeData(w, http.StatusCreated, toCourseResponse(course))
}

type createTestRequest struct {
	CourseID  string `json:"courseId" validate:"required"`
	Topic     string `json:"topic" validate:"required"`
	Frequency string `json:"frequency" validate:"required"`
}

type testResponse struct {
	ID        string   `json:"id"`
	Topic     string   `json:"topic"`
	Frequency string   `json:"frequency"`
	Questions []string `json:"questions"`
	Course    string   `json:"course"`
}

func (s *Server) handleCreateTest(w http.ResponseWriter, r *http.Request) {
	var req createTestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Required fields are missing")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Required fields are missing")
		return
	}
	if !model.ValidFrequency(req.Frequency) {
		writeError(w, http.StatusBadRequest, "Invalid frequency")
		return
	}

	test := model.Test{
		ID:        uuid.NewString(),
		Topic:     req.Topic,
		Frequency: req.Frequency,
		Questions: []string{},
		CourseID:  req.CourseID,
	}
	if err := s.store.CreateTest(r.Context(), test); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Course not found")
			return
		}
		s.logger.Error("create test failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeData(w, http.StatusOK, testResponse{
		ID:        test.ID,
		Topic:     test.Topic,
		Frequency: test.Frequency,
		Questions: test.Questions,
		Course:    test.CourseID,
	})
}

// ---- admin ----

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch users.")
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
	}
	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := s.store.DeleteUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		s.logger.Error("delete user failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete user.")
		return
	}

	writeData(w, http.StatusOK, userResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
}

type adminCourseResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Content     []string          `json:"content"`
	Instructor  instructorSummary `json:"instructor"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type instructorSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.store.ListCoursesWithInstructor(r.Context())
	if err != nil {
		s.logger.Error("list courses failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch courses.")
		return
	}

	resp := make([]adminCourseResponse, 0, len(courses))
	for _, c := range courses {
		content := c.Content
		if content == nil {
			content = []string{}
		}
		resp = append(resp, adminCourseResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Content:     content,
			Instructor:  instructorSummary{ID: c.InstructorID, Name: c.InstructorName, Email: c.InstructorEmail},
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	course, err := s.store.DeleteCourse(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Course not found.")
			return
		}
		s.logger.Error("delete course failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete course.")
		return
	}

	writeData(w, http.StatusOK, toCourseResponse(course))
}

// ---- ai ----

type aiRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Length     string `json:"length"`
}

func (s *Server) handleGenerateQuestion(w http.ResponseWriter, r *http.Request) {
	var req aiRequest
	if err := decodeJSON(r, &req); err != nil || req.Topic == "" {
		writeError(w, http.StatusBadRequest, "Topic is required to generate questions")
		return
	}

	questions, err := s.ai.GenerateQuestions(r.Context(), req.Topic, req.Difficulty)
	s.metrics.RecordAIRequest("generate-question", err)
	if err != nil {
		s.logger.Error("question generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Question generation failed")
		return
	}
	writeData(w, http.StatusOK, questions)
}

func (s *Server) handleRelatedDocuments(w http.ResponseWriter, r *http.Request) {
	var req aiRequest
	if err := decodeJSON(r, &req); err != nil || req.Topic == "" {
		writeError(w, http.StatusBadRequest, "Topic is required to fetch related documents")
		return
	}

	documents, err := s.ai.RelatedDocuments(r.Context(), req.Topic)
	s.metrics.RecordAIRequest("related-documents", err)
	if err != nil {
		s.logger.Error("related documents failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch related documents")
		return
	}
	writeData(w, http.StatusOK, documents)
}

func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req aiRequest
	if err := decodeJSON(r, &req); err != nil || req.Topic == "" {
		writeError(w, http.StatusBadRequest, "Topic is required to generate summary")
		return
	}

	summary, err := s.ai.GenerateSummary(r.Context(), req.Topic)
	s.metrics.RecordAIRequest("generate-summary", err)
	if err != nil {
		s.logger.Error("summary generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate summary")
		return
	}
	writeData(w, http.StatusOK, summary)
}

func (s *Server) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	var req aiRequest
	if err := decodeJSON(r, &req); err != nil || req.Topic == "" {
		writeError(w, http.StatusBadRequest, "Topic is required to generate content")
		return
	}

	content, err := s.ai.GenerateContent(r.Context(), req.Topic, req.Length)
	s.metrics.RecordAIRequest("generate-content", err)
	if err != nil {
		s.logger.Error("content generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate content")
		return
	}
	writeData(w, http.StatusOK, content)
}

// ---- helpers ----

// envelope is the uniform {data, error} response shape.
type envelope struct {
	Data  interface{} `json:"data"`
	Error interface{} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Error: message})
}

// decodeJSON tolerates an empty body: field-level validation decides what is
// required.
func decodeJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
