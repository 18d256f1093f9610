package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	custommw "artisthub/internal/middleware"
	httprouters "artisthub/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
	token   string
}

func New(log *slog.Logger, token string, host, port string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(token))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())

	e.Use(custommw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("statsviz start with error", slog.Any("error", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
		token:   token,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	requireAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.token),
	})

	// Public GETs accept a token too, so responses can carry is_liked and
	// is_joined for the caller; anonymous requests pass through untouched.
	optionalAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey:             []byte(s.token),
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})

	api := s.e.Group("/api/v1")
	{
		api.POST("/register", s.routers.Register)
		api.POST("/token", s.routers.Token)
		api.POST("/token/refresh", s.routers.Refresh)

		debug := s.e.Group("/debug")
		{
			debug.GET("/statsviz/", echo.WrapHandler(s.m))
			debug.GET("/statsviz/*", echo.WrapHandler(s.m))
			debug.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
		}

		swagger := s.e.Group("/swag")
		{
			swagger.GET("/swagger/*", echoSwagger.WrapHandler)
		}

		userGroup := api.Group("/users")
		{
			userGroup.GET("", s.routers.ListUsers)
			userGroup.GET("/me", s.routers.CurrentUser, requireAuth)
			userGroup.PATCH("/me", s.routers.UpdateProfile, requireAuth)
			userGroup.DELETE("/me", s.routers.DeleteCurrentUser, requireAuth)
			userGroup.GET("/artists", s.routers.ListArtists)
			userGroup.GET("/:username", s.routers.UserByUsername, optionalAuth)
			userGroup.GET("/:username/artworks", s.routers.ArtworksByArtist, optionalAuth)
		}

		galleryGroup := api.Group("/galleries")
		{
			galleryGroup.GET("", s.routers.ListGalleries)
			galleryGroup.POST("", s.routers.CreateGallery, requireAuth)
			galleryGroup.GET("/:slug", s.routers.GetGallery)
			galleryGroup.PUT("/:slug", s.routers.UpdateGallery, requireAuth)
			galleryGroup.DELETE("/:slug", s.routers.DeleteGallery, requireAuth)
			galleryGroup.GET("/:slug/artworks", s.routers.GalleryArtworks, optionalAuth)
		}

		artworkGroup := api.Group("/artworks")
		{
			artworkGroup.GET("", s.routers.ListArtworks, optionalAuth)
			artworkGroup.POST("", s.routers.CreateArtwork, requireAuth)
			artworkGroup.GET("/my_artworks", s.routers.MyArtworks, requireAuth)
			artworkGroup.GET("/:slug", s.routers.GetArtwork, optionalAuth)
			artworkGroup.PUT("/:slug", s.routers.UpdateArtwork, requireAuth)
			artworkGroup.DELETE("/:slug", s.routers.DeleteArtwork, requireAuth)
			artworkGroup.POST("/:slug/like", s.routers.LikeArtwork, requireAuth)
			artworkGroup.POST("/:slug/rate", s.routers.RateArtwork, requireAuth)
			artworkGroup.GET("/:slug/comments", s.routers.ArtworkComments)
			artworkGroup.POST("/:slug/comments", s.routers.AddComment, requireAuth)
		}

		commentGroup := api.Group("/comments", requireAuth)
		{
			commentGroup.PUT("/:id", s.routers.UpdateComment)
			commentGroup.DELETE("/:id", s.routers.DeleteComment)
		}

		eventGroup := api.Group("/events")
		{
			eventGroup.GET("", s.routers.ListEvents, optionalAuth)
			eventGroup.POST("", s.routers.CreateEvent, requireAuth)
			eventGroup.GET("/:slug", s.routers.GetEvent, optionalAuth)
			eventGroup.PUT("/:slug", s.routers.UpdateEvent, requireAuth)
			eventGroup.DELETE("/:slug", s.routers.DeleteEvent, requireAuth)
			eventGroup.POST("/:slug/join", s.routers.JoinEvent, requireAuth)
		}

		dashboardGroup := api.Group("/dashboard", requireAuth)
		{
			dashboardGroup.GET("/stats", s.routers.DashboardStats)
			dashboardGroup.GET("/activities", s.routers.DashboardActivities)
			dashboardGroup.GET("/analytics", s.routers.DashboardAnalytics)
		}

		mediaGroup := api.Group("/media", requireAuth)
		{
			mediaGroup.POST("/upload", s.routers.UploadMedia)
			mediaGroup.DELETE("", s.routers.RemoveMedia)
		}
	}
}
