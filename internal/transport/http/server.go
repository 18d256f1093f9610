package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"artisthub/internal/domain/models"
	"artisthub/internal/lib/logger/sl"
	"artisthub/internal/repository"
	artworkservice "artisthub/internal/services/artwork_service"
	commentservice "artisthub/internal/services/comment_service"
	eventservice "artisthub/internal/services/event_service"
	galleryservice "artisthub/internal/services/gallery_service"
	userservice "artisthub/internal/services/user_service"
	"artisthub/internal/storage"
	"artisthub/internal/transport/http/dto"
	"artisthub/internal/transport/http/dto/request"
	"artisthub/internal/transport/http/dto/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "artisthub/docs"
)

type UserService interface {
	Register(ctx context.Context, input dto.UserRegisterInput) (uuid.UUID, error)
	Authenticate(ctx context.Context, identifier, password string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	ListUsers(ctx context.Context) ([]models.User, error)
	ListArtists(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (models.User, error)
}

type TokenService interface {
	GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type GalleryService interface {
	CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (models.Gallery, error)
	GalleryBySlug(ctx context.Context, slug string) (models.Gallery, error)
	ListGalleries(ctx context.Context) ([]models.Gallery, error)
	UpdateGallery(ctx context.Context, slug string, req dto.UpdateGalleryRequest) (models.Gallery, error)
	DeleteGallery(ctx context.Context, slug string) error
}

type ArtworkService interface {
	CreateArtwork(ctx context.Context, artistID uuid.UUID, req dto.CreateArtworkRequest) (dto.ArtworkResponse, error)
	ArtworkBySlug(ctx context.Context, slug string, viewerID uuid.UUID) (dto.ArtworkResponse, error)
	ListArtworks(ctx context.Context, filter repository.ArtworkFilter, viewerID uuid.UUID) ([]dto.ArtworkResponse, error)
	ArtworksByGallery(ctx context.Context, gallerySlug string, viewerID uuid.UUID) ([]dto.ArtworkResponse, error)
	ArtworksByArtist(ctx context.Context, username string, viewerID uuid.UUID) ([]dto.ArtworkResponse, error)
	UpdateArtwork(ctx context.Context, slug string, artistID uuid.UUID, req dto.UpdateArtworkRequest) (dto.ArtworkResponse, error)
	DeleteArtwork(ctx context.Context, slug string, artistID uuid.UUID) error
	ToggleLike(ctx context.Context, slug string, userID uuid.UUID) (dto.LikeResponse, error)
	Rate(ctx context.Context, slug string, userID uuid.UUID, value int) (float64, error)
}

type CommentService interface {
	AddComment(ctx context.Context, artworkSlug string, userID uuid.UUID, content string) (dto.CommentResponse, error)
	CommentsByArtwork(ctx context.Context, artworkSlug string) ([]dto.CommentResponse, error)
	UpdateComment(ctx context.Context, id int64, userID uuid.UUID, content string) (dto.CommentResponse, error)
	DeleteComment(ctx context.Context, id int64, userID uuid.UUID) error
}

type EventService interface {
	CreateEvent(ctx context.Context, createdBy uuid.UUID, req dto.CreateEventRequest) (dto.EventResponse, error)
	EventBySlug(ctx context.Context, slug string, viewerID uuid.UUID) (dto.EventResponse, error)
	ListEvents(ctx context.Context, statusFilter string, viewerID uuid.UUID) ([]dto.EventResponse, error)
	UpdateEvent(ctx context.Context, slug string, userID uuid.UUID, req dto.UpdateEventRequest) (dto.EventResponse, error)
	DeleteEvent(ctx context.Context, slug string, userID uuid.UUID) error
	ToggleJoin(ctx context.Context, slug string, userID uuid.UUID) (dto.JoinEventResponse, error)
}

type DashboardService interface {
	Stats(ctx context.Context, userID uuid.UUID) (dto.DashboardStatsResponse, error)
	Activities(ctx context.Context, userID uuid.UUID) ([]dto.Activity, error)
	Analytics(ctx context.Context, userID uuid.UUID) ([]dto.MonthlyAnalytics, error)
}

type MediaService interface {
	Upload(ctx context.Context, file *multipart.FileHeader, kind string) (dto.UploadResponse, error)
	Remove(ctx context.Context, filePath string) error
}

type Routers struct {
	log              *slog.Logger
	UserService      UserService
	TokenService     TokenService
	GalleryService   GalleryService
	ArtworkService   ArtworkService
	CommentService   CommentService
	EventService     EventService
	DashboardService DashboardService
	MediaService     MediaService
}

func NewRouter(
	log *slog.Logger,
	userService UserService,
	tokenService TokenService,
	galleryService GalleryService,
	artworkService ArtworkService,
	commentService CommentService,
	eventService EventService,
	dashboardService DashboardService,
	mediaService MediaService,
) *Routers {
	return &Routers{
		log:              log,
		UserService:      userService,
		TokenService:     tokenService,
		GalleryService:   galleryService,
		ArtworkService:   artworkService,
		CommentService:   commentService,
		EventService:     eventService,
		DashboardService: dashboardService,
		MediaService:     mediaService,
	}
}

// currentUserID extracts the authenticated user id from the JWT middleware
// context. uuid.Nil means the request is anonymous.
func currentUserID(c echo.Context) uuid.UUID {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return uuid.Nil
	}

	id, err := uuid.Parse(uid)
	if err != nil {
		return uuid.Nil
	}

	return id
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account and returns the new user id.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UserRegisterInput true "Registration payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/v1/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(slog.String("op", op))

	var req dto.UserRegisterInput

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRegisterRequest)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	userID, err := r.UserService.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, userservice.ErrUserExists) {
			log.Warn("user already exists", slog.String("username", req.Username))
			return c.JSON(http.StatusConflict, response.ErrUserAlreadyExists)
		}

		log.Error("registration failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	log.Info("user registered", slog.String("user_id", userID.String()))

	return c.JSON(http.StatusCreated, response.SuccessResponse(map[string]uuid.UUID{
		"user_id": userID,
	}))
}

// Token godoc
// @Summary Obtain a token pair
// @Description Exchanges username-or-email plus password for access and refresh tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} models.TokenPair
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/token [post]
func (r *Routers) Token(c echo.Context) error {
	const op = "http.routers.Token"

	log := r.log.With(slog.String("op", op))

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request", slog.String("identifier", req.Identifier))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	user, err := r.UserService.Authenticate(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		log.Info("authentication failed", slog.String("identifier", req.Identifier))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	pair, err := r.TokenService.GenerateTokens(c.Request().Context(), user)
	if err != nil {
		log.Error("failed to issue tokens", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, pair)
}

// Refresh godoc
// @Summary Rotate the token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RefreshRequest true "Refresh token"
// @Success 200 {object} models.TokenPair
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/token/refresh [post]
func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(slog.String("op", op))

	var req request.RefreshRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	pair, err := r.TokenService.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		log.Info("refresh rejected", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails("invalid_token", "invalid refresh token"))
	}

	return c.JSON(http.StatusOK, pair)
}

// CurrentUser godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/me [get]
func (r *Routers) CurrentUser(c echo.Context) error {
	const op = "http.routers.CurrentUser"

	userID := currentUserID(c)

	user, err := r.UserService.UserByID(c.Request().Context(), userID)
	if err != nil {
		r.log.Error("failed to load current user", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user, true))
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/me [patch]
func (r *Routers) UpdateProfile(c echo.Context) error {
	const op = "http.routers.UpdateProfile"

	log := r.log.With(slog.String("op", op))

	var req dto.UpdateProfileRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	user, err := r.UserService.UpdateProfile(c.Request().Context(), currentUserID(c), req)
	if err != nil {
		log.Error("failed to update profile", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user, true))
}

// DeleteCurrentUser godoc
// @Summary Delete the authenticated user's account
// @Description Removes the account with everything it owns and revokes all refresh tokens.
// @Tags users
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/me [delete]
func (r *Routers) DeleteCurrentUser(c echo.Context) error {
	const op = "http.routers.DeleteCurrentUser"

	log := r.log.With(slog.String("op", op))

	userID := currentUserID(c)

	if err := r.UserService.DeleteAccount(c.Request().Context(), userID); err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}

		log.Error("failed to delete account", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	if err := r.TokenService.RevokeAll(c.Request().Context(), userID); err != nil {
		// the account is already gone; stale refresh tokens expire on their own
		log.Warn("failed to revoke refresh tokens", sl.Err(err))
	}

	return c.NoContent(http.StatusNoContent)
}

// UserByUsername godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/users/{username} [get]
func (r *Routers) UserByUsername(c echo.Context) error {
	const op = "http.routers.UserByUsername"

	username := c.Param("username")

	user, err := r.UserService.UserByUsername(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to load user", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	includeEmail := user.ID == currentUserID(c)

	return c.JSON(http.StatusOK, dto.ToUserResponse(user, includeEmail))
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /api/v1/users [get]
func (r *Routers) ListUsers(c echo.Context) error {
	const op = "http.routers.ListUsers"

	users, err := r.UserService.ListUsers(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list users", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u, false))
	}

	return c.JSON(http.StatusOK, out)
}

// ListArtists godoc
// @Summary List users flagged as artists
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /api/v1/users/artists [get]
func (r *Routers) ListArtists(c echo.Context) error {
	const op = "http.routers.ListArtists"

	users, err := r.UserService.ListArtists(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list artists", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u, false))
	}

	return c.JSON(http.StatusOK, out)
}

// ArtworksByArtist godoc
// @Summary List a user's artworks
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} dto.ArtworkResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/users/{username}/artworks [get]
func (r *Routers) ArtworksByArtist(c echo.Context) error {
	const op = "http.routers.ArtworksByArtist"

	artworks, err := r.ArtworkService.ArtworksByArtist(c.Request().Context(), c.Param("username"), currentUserID(c))
	if err != nil {
		if errors.Is(err, artworkservice.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to list artworks", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, artworks)
}

// CreateGallery godoc
// @Summary Create a gallery
// @Tags galleries
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "Gallery payload"
// @Success 201 {object} dto.GalleryResponse
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/galleries [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateGalleryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	gallery, err := r.GalleryService.CreateGallery(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, galleryservice.ErrInvalidType) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery type"))
		}
		log.Error("failed to create gallery", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusCreated, dto.ToGalleryResponse(gallery))
}

// ListGalleries godoc
// @Summary List galleries
// @Tags galleries
// @Produce json
// @Success 200 {array} dto.GalleryResponse
// @Router /api/v1/galleries [get]
func (r *Routers) ListGalleries(c echo.Context) error {
	const op = "http.routers.ListGalleries"

	galleries, err := r.GalleryService.ListGalleries(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list galleries", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	out := make([]dto.GalleryResponse, 0, len(galleries))
	for _, g := range galleries {
		out = append(out, dto.ToGalleryResponse(g))
	}

	return c.JSON(http.StatusOK, out)
}

// GetGallery godoc
// @Summary Get a gallery by slug
// @Tags galleries
// @Produce json
// @Param slug path string true "Gallery slug"
// @Success 200 {object} dto.GalleryResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/galleries/{slug} [get]
func (r *Routers) GetGallery(c echo.Context) error {
	gallery, err := r.GalleryService.GalleryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, galleryservice.ErrGalleryNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, dto.ToGalleryResponse(gallery))
}

// UpdateGallery godoc
// @Summary Update a gallery
// @Description Edits name, type and description. The slug never changes.
// @Tags galleries
// @Accept json
// @Produce json
// @Param slug path string true "Gallery slug"
// @Param request body dto.UpdateGalleryRequest true "Fields to change"
// @Success 200 {object} dto.GalleryResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/galleries/{slug} [put]
func (r *Routers) UpdateGallery(c echo.Context) error {
	const op = "http.routers.UpdateGallery"

	var req dto.UpdateGalleryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	gallery, err := r.GalleryService.UpdateGallery(c.Request().Context(), c.Param("slug"), req)
	if err != nil {
		switch {
		case errors.Is(err, galleryservice.ErrGalleryNotFound):
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, galleryservice.ErrInvalidType):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery type"))
		}
		r.log.Error("failed to update gallery", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, dto.ToGalleryResponse(gallery))
}

// DeleteGallery godoc
// @Summary Delete a gallery and its artworks
// @Tags galleries
// @Param slug path string true "Gallery slug"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/galleries/{slug} [delete]
func (r *Routers) DeleteGallery(c echo.Context) error {
	const op = "http.routers.DeleteGallery"

	if err := r.GalleryService.DeleteGallery(c.Request().Context(), c.Param("slug")); err != nil {
		if errors.Is(err, galleryservice.ErrGalleryNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to delete gallery", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.NoContent(http.StatusNoContent)
}

// GalleryArtworks godoc
// @Summary List the artworks in a gallery
// @Tags galleries
// @Produce json
// @Param slug path string true "Gallery slug"
// @Success 200 {array} dto.ArtworkResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/galleries/{slug}/artworks [get]
func (r *Routers) GalleryArtworks(c echo.Context) error {
	const op = "http.routers.GalleryArtworks"

	artworks, err := r.ArtworkService.ArtworksByGallery(c.Request().Context(), c.Param("slug"), currentUserID(c))
	if err != nil {
		if errors.Is(err, artworkservice.ErrGalleryNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to list gallery artworks", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, artworks)
}

// CreateArtwork godoc
// @Summary Create an artwork
// @Tags artworks
// @Accept json
// @Produce json
// @Param request body dto.CreateArtworkRequest true "Artwork payload"
// @Success 201 {object} dto.ArtworkResponse
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/artworks [post]
func (r *Routers) CreateArtwork(c echo.Context) error {
	const op = "http.routers.CreateArtwork"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateArtworkRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	artwork, err := r.ArtworkService.CreateArtwork(c.Request().Context(), currentUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, artworkservice.ErrGalleryNotFound):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "gallery does not exist"))
		case errors.Is(err, artworkservice.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid artwork status"))
		}
		log.Error("failed to create artwork", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusCreated, artwork)
}

// ListArtworks godoc
// @Summary List artworks
// @Tags artworks
// @Produce json
// @Param filter query string false "my_artworks or liked, scoped to the authenticated user"
// @Success 200 {array} dto.ArtworkResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/artworks [get]
func (r *Routers) ListArtworks(c echo.Context) error {
	const op = "http.routers.ListArtworks"

	viewerID := currentUserID(c)

	var filter repository.ArtworkFilter
	switch c.QueryParam("filter") {
	case "my_artworks":
		if viewerID == uuid.Nil {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}
		filter.ArtistID = viewerID
	case "liked":
		if viewerID == uuid.Nil {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}
		filter.LikedBy = viewerID
	}

	artworks, err := r.ArtworkService.ListArtworks(c.Request().Context(), filter, viewerID)
	if err != nil {
		r.log.Error("failed to list artworks", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, artworks)
}

// MyArtworks godoc
// @Summary List the authenticated user's artworks
// @Tags artworks
// @Produce json
// @Success 200 {array} dto.ArtworkResponse
// @Security ApiKeyAuth
// @Router /api/v1/artworks/my_artworks [get]
func (r *Routers) MyArtworks(c echo.Context) error {
	const op = "http.routers.MyArtworks"

	userID := currentUserID(c)

	artworks, err := r.ArtworkService.ListArtworks(c.Request().Context(), repository.ArtworkFilter{ArtistID: userID}, userID)
	if err != nil {
		r.log.Error("failed to list artworks", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, artworks)
}

// GetArtwork godoc
// @Summary Get an artwork by slug
// @Description Returns the artwork with comments and counts one view.
// @Tags artworks
// @Produce json
// @Param slug path string true "Artwork slug"
// @Success 200 {object} dto.ArtworkResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/artworks/{slug} [get]
func (r *Routers) GetArtwork(c echo.Context) error {
	artwork, err := r.ArtworkService.ArtworkBySlug(c.Request().Context(), c.Param("slug"), currentUserID(c))
	if err != nil {
		if errors.Is(err, artworkservice.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, artwork)
}

// UpdateArtwork godoc
// @Summary Update an artwork
// @Tags artworks
// @Accept json
// @Produce json
// @Param slug path string true "Artwork slug"
// @Param request body dto.UpdateArtworkRequest true "Fields to change"
// @Success 200 {object} dto.ArtworkResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/artworks/{slug} [put]
func (r *Routers) UpdateArtwork(c echo.Context) error {
	const op = "http.routers.UpdateArtwork"

	var req dto.UpdateArtworkRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	artwork, err := r.ArtworkService.UpdateArtwork(c.Request().Context(), c.Param("slug"), currentUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, artworkservice.ErrArtworkNotFound):
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, artworkservice.ErrNotOwner):
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		case errors.Is(err, artworkservice.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid artwork status"))
		}
		r.log.Error("failed to update artwork", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, artwork)
}

// DeleteArtwork godoc
// @Summary Delete an artwork
// @Tags artworks
// @Param slug path string true "Artwork slug"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/artworks/{slug} [delete]
func (r *Routers) DeleteArtwork(c echo.Context) error {
	const op = "http.routers.DeleteArtwork"

	err := r.ArtworkService.DeleteArtwork(c.Request().Context(), c.Param("slug"), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, artworkservice.ErrArtworkNotFound):
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, artworkservice.ErrNotOwner):
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		}
		r.log.Error("failed to delete artwork", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.NoContent(http.StatusNoContent)
}

// LikeArtwork godoc
// @Summary Toggle a like on an artwork
// @Description Likes the artwork, or removes the like if it is already set.
// @Tags artworks
// @Produce json
// @Param slug path string true "Artwork slug"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/artworks/{slug}/like [post]
func (r *Routers) LikeArtwork(c echo.Context) error {
	const op = "http.routers.LikeArtwork"

	resp, err := r.ArtworkService.ToggleLike(c.Request().Context(), c.Param("slug"), currentUserID(c))
	if err != nil {
		if errors.Is(err, artworkservice.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to toggle like", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, resp)
}

// RateArtwork godoc
// @Summary Rate an artwork from 1 to 5
// @Tags artworks
// @Accept json
// @Produce json
// @Param slug path string true "Artwork slug"
// @Param request body dto.RateArtworkRequest true "Rating"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/artworks/{slug}/rate [post]
func (r *Routers) RateArtwork(c echo.Context) error {
	const op = "http.routers.RateArtwork"

	var req dto.RateArtworkRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	avg, err := r.ArtworkService.Rate(c.Request().Context(), c.Param("slug"), currentUserID(c), req.Value)
	if err != nil {
		if errors.Is(err, artworkservice.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to rate artwork", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]float64{
		"average_rating": avg,
	}))
}

// ArtworkComments godoc
// @Summary List an artwork's comments
// @Tags comments
// @Produce json
// @Param slug path string true "Artwork slug"
// @Success 200 {array} dto.CommentResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/artworks/{slug}/comments [get]
func (r *Routers) ArtworkComments(c echo.Context) error {
	const op = "http.routers.ArtworkComments"

	comments, err := r.CommentService.CommentsByArtwork(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, commentservice.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to list comments", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, comments)
}

// AddComment godoc
// @Summary Comment on an artwork
// @Tags comments
// @Accept json
// @Produce json
// @Param slug path string true "Artwork slug"
// @Param request body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/artworks/{slug}/comments [post]
func (r *Routers) AddComment(c echo.Context) error {
	const op = "http.routers.AddComment"

	var req dto.CreateCommentRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	comment, err := r.CommentService.AddComment(c.Request().Context(), c.Param("slug"), currentUserID(c), req.Content)
	if err != nil {
		if errors.Is(err, commentservice.ErrArtworkNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to add comment", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusCreated, comment)
}

// UpdateComment godoc
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment id"
// @Param request body dto.UpdateCommentRequest true "Comment"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/comments/{id} [put]
func (r *Routers) UpdateComment(c echo.Context) error {
	const op = "http.routers.UpdateComment"

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid comment id"))
	}

	var req dto.UpdateCommentRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	comment, err := r.CommentService.UpdateComment(c.Request().Context(), id, currentUserID(c), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrCommentNotFound):
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, commentservice.ErrNotAuthor):
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		}
		r.log.Error("failed to update comment", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Param id path int true "Comment id"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/comments/{id} [delete]
func (r *Routers) DeleteComment(c echo.Context) error {
	const op = "http.routers.DeleteComment"

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid comment id"))
	}

	if err := r.CommentService.DeleteComment(c.Request().Context(), id, currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, commentservice.ErrCommentNotFound):
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, commentservice.ErrNotAuthor):
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		}
		r.log.Error("failed to delete comment", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/events [post]
func (r *Routers) CreateEvent(c echo.Context) error {
	const op = "http.routers.CreateEvent"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateEventRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	event, err := r.EventService.CreateEvent(c.Request().Context(), currentUserID(c), req)
	if err != nil {
		if errors.Is(err, eventservice.ErrInvalidDates) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "end date must not precede start date"))
		}
		log.Error("failed to create event", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Optionally filters by derived status: upcoming, in_progress or completed.
// @Tags events
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/events [get]
func (r *Routers) ListEvents(c echo.Context) error {
	const op = "http.routers.ListEvents"

	events, err := r.EventService.ListEvents(c.Request().Context(), c.QueryParam("status"), currentUserID(c))
	if err != nil {
		if errors.Is(err, eventservice.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "unknown status filter"))
		}
		r.log.Error("failed to list events", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/events/{slug} [get]
func (r *Routers) GetEvent(c echo.Context) error {
	event, err := r.EventService.EventBySlug(c.Request().Context(), c.Param("slug"), currentUserID(c))
	if err != nil {
		if errors.Is(err, eventservice.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param slug path string true "Event slug"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/events/{slug} [put]
func (r *Routers) UpdateEvent(c echo.Context) error {
	const op = "http.routers.UpdateEvent"

	var req dto.UpdateEventRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	event, err := r.EventService.UpdateEvent(c.Request().Context(), c.Param("slug"), currentUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, eventservice.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, eventservice.ErrNotOrganizer):
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		case errors.Is(err, eventservice.ErrInvalidDates):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "end date must not precede start date"))
		}
		r.log.Error("failed to update event", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Param slug path string true "Event slug"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/events/{slug} [delete]
func (r *Routers) DeleteEvent(c echo.Context) error {
	const op = "http.routers.DeleteEvent"

	if err := r.EventService.DeleteEvent(c.Request().Context(), c.Param("slug"), currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, eventservice.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, eventservice.ErrNotOrganizer):
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		}
		r.log.Error("failed to delete event", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.NoContent(http.StatusNoContent)
}

// JoinEvent godoc
// @Summary Toggle participation in an event
// @Description Joins the event, or leaves it if already joined. A join
// against a full event fails with 400.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.JoinEventResponse
// @Failure 400 {object} dto.JoinEventResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/events/{slug}/join [post]
func (r *Routers) JoinEvent(c echo.Context) error {
	const op = "http.routers.JoinEvent"

	resp, err := r.EventService.ToggleJoin(c.Request().Context(), c.Param("slug"), currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, eventservice.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, eventservice.ErrEventFull):
			return c.JSON(http.StatusBadRequest, dto.JoinEventResponse{
				Status:  "error",
				Message: "Event is full",
			})
		}
		r.log.Error("failed to toggle participation", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, resp)
}

// DashboardStats godoc
// @Summary Dashboard headline counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/stats [get]
func (r *Routers) DashboardStats(c echo.Context) error {
	const op = "http.routers.DashboardStats"

	stats, err := r.DashboardService.Stats(c.Request().Context(), currentUserID(c))
	if err != nil {
		r.log.Error("failed to load stats", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, stats)
}

// DashboardActivities godoc
// @Summary Recent dashboard activity feed
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.Activity
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/activities [get]
func (r *Routers) DashboardActivities(c echo.Context) error {
	const op = "http.routers.DashboardActivities"

	activities, err := r.DashboardService.Activities(c.Request().Context(), currentUserID(c))
	if err != nil {
		r.log.Error("failed to load activities", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, activities)
}

// DashboardAnalytics godoc
// @Summary Monthly dashboard analytics
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.MonthlyAnalytics
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/analytics [get]
func (r *Routers) DashboardAnalytics(c echo.Context) error {
	const op = "http.routers.DashboardAnalytics"

	analytics, err := r.DashboardService.Analytics(c.Request().Context(), currentUserID(c))
	if err != nil {
		r.log.Error("failed to load analytics", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, analytics)
}

// UploadMedia godoc
// @Summary Upload an image
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param kind formData string false "Upload target" Enums(artwork, event, profile)
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Failure 415 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/media/upload [post]
func (r *Routers) UploadMedia(c echo.Context) error {
	const op = "http.routers.UploadMedia"

	log := r.log.With(slog.String("op", op))

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "file is required"))
	}

	resp, err := r.MediaService.Upload(c.Request().Context(), file, c.FormValue("kind"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponseWithDetails("file_too_large", "file size exceeds limit"))
		case errors.Is(err, storage.ErrInvalidFileType):
			return c.JSON(http.StatusUnsupportedMediaType, response.ErrorResponseWithDetails("invalid_file_type", "unsupported file type"))
		}
		log.Error("failed to upload media", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusCreated, resp)
}

// RemoveMedia godoc
// @Summary Delete an uploaded file
// @Tags media
// @Param path query string true "Relative path returned by the upload endpoint"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/media [delete]
func (r *Routers) RemoveMedia(c echo.Context) error {
	const op = "http.routers.RemoveMedia"

	filePath := c.QueryParam("path")
	if filePath == "" {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "path is required"))
	}

	if err := r.MediaService.Remove(c.Request().Context(), filePath); err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid path"))
		}

		r.log.Error("failed to remove media", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.NoContent(http.StatusNoContent)
}
