package lmsapi

import "time"

// ============================================================================
// Students
// ============================================================================

// SignupRequest is the body of POST /api/student/signup.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`

	// Role is optional and defaults to "student".
	Role string `json:"role,omitempty"`
}

// LoginRequest is the body of POST /api/student/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the public projection of a user. It never carries the password hash.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignupResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
	User    User   `json:"user"`

	// ExpiresAt is when Token stops verifying.
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenIdentity is the identity snapshot decoded from a bearer token.
type TokenIdentity struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

type AdminCheckResponse struct {
	Message string        `json:"message"`
	User    TokenIdentity `json:"user"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest changes only the fields that are non-nil.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type BlockUserRequest struct {
	Blocked bool `json:"blocked"`
}

type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ============================================================================
// Courses
// ============================================================================

type Material struct {
	Topic  string `json:"topic"`
	PDFURL string `json:"pdfUrl"`
}

type Course struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Instructor  string     `json:"instructor"`
	Category    string     `json:"category"`
	Duration    string     `json:"duration"`
	Level       string     `json:"level"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"imageUrl"`
	Materials   []Material `json:"materials"`
	Assignment  string     `json:"assignment"`
	IsAvailable bool       `json:"isAvailable"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CourseRequest is used for both create and partial update; nil fields are
// left alone on update and defaulted on create.
type CourseRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Instructor  *string     `json:"instructor,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Duration    *string     `json:"duration,omitempty"`
	Level       *string     `json:"level,omitempty"`
	Price       *float64    `json:"price,omitempty"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	Materials   *[]Material `json:"materials,omitempty"`
	Assignment  *string     `json:"assignment,omitempty"`
	IsAvailable *bool       `json:"isAvailable,omitempty"`
}

type CourseResponse struct {
	Message string `json:"message"`
	Course  Course `json:"course"`
}

// ============================================================================
// Reviews
// ============================================================================

// ReviewAuthor is the author's current name and email, or "Deleted User".
type ReviewAuthor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Review struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Course    string        `json:"course"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	Author    *ReviewAuthor `json:"author,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ReviewRequest is the body for creating (both fields required) and
// updating (either field optional) a review.
type ReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type ReviewResponse struct {
	Message string `json:"message"`
	Review  Review `json:"review"`
}

// ============================================================================
// Uploads
// ============================================================================

type ImageUploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

type PDFUploadResponse struct {
	PDFURL   string `json:"pdfUrl"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
}

// ============================================================================
// Misc
// ============================================================================

type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /livez and /readyz (the latter with Checks).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
