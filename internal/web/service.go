package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/medsignup/handler"
	"github.com/dmitrymomot/medsignup/internal/catalog"
	"github.com/dmitrymomot/medsignup/internal/form"
	"github.com/dmitrymomot/medsignup/internal/signup"
	"github.com/dmitrymomot/medsignup/pkg/binder"
	"github.com/dmitrymomot/medsignup/pkg/clientip"
	"github.com/dmitrymomot/medsignup/pkg/logger"
	"github.com/dmitrymomot/medsignup/pkg/ratelimiter"
)

// Field events sent by the page as the "event" query parameter.
const (
	EventBlur   = "blur"
	EventInput  = "input"
	EventChange = "change"
)

// SignupService serves the sign-up page and its validation endpoints.
// It keeps no per-session state: every request carries the full form snapshot.
type SignupService struct {
	validator    *signup.Validator
	catalog      *catalog.Catalog
	views        Views
	log          *slog.Logger
	title        string
	onAccepted   []func(context.Context, signup.FormValues)
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      *ratelimiter.Bucket
}

// Option configures a SignupService.
type Option func(*SignupService)

func WithLogger(l *slog.Logger) Option {
	return func(s *SignupService) {
		if l != nil {
			s.log = l
		}
	}
}

func WithViews(v Views) Option {
	return func(s *SignupService) {
		s.views = v.withDefaults()
	}
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(s *SignupService) {
		if title != "" {
			s.title = title
		}
	}
}

// WithOnAccepted registers a callback for accepted submissions.
func WithOnAccepted(fn func(context.Context, signup.FormValues)) Option {
	return func(s *SignupService) {
		if fn != nil {
			s.onAccepted = append(s.onAccepted, fn)
		}
	}
}

// WithErrorHandler replaces the default error handler built from the views.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *SignupService) {
		s.errorHandler = h
	}
}

// WithRateLimiter limits the POST endpoints per client address.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(s *SignupService) {
		s.limiter = b
	}
}

func NewSignupService(v *signup.Validator, c *catalog.Catalog, opts ...Option) *SignupService {
	s := &SignupService{
		validator: v,
		catalog:   c,
		views:     DefaultViews(),
		log:       slog.New(slog.DiscardHandler),
		title:     "Doctor Sign-Up",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:   s.views.ErrorPage,
			ErrorToast:  s.views.Toast,
			ToastTarget: "#" + ToastID,
		})
	}
	return s
}

type pageRequest struct{}

// Handle returns the service routes:
//
//	GET  /                        sign-up page
//	POST /signup                  submit
//	POST /signup/fields/{field}   single field validation
//	POST /signup/password         password requirement breakdown
//	POST /signup/dismiss          hide the success banner
func (s *SignupService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, pageRequest](s.errorHandler),
	))

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, clientKey,
				ratelimiter.WithOnLimited(s.rateLimited),
				ratelimiter.WithOnError(s.limiterFailed),
			))
		}
		r.Post("/signup", s.wrap(s.submit))
		r.Post("/signup/fields/{field}", s.wrap(s.validateField))
		r.Post("/signup/password", s.wrap(s.password))
		r.Post("/signup/dismiss", handler.Wrap(s.dismiss,
			handler.WithErrorHandler[handler.Context, pageRequest](s.errorHandler),
		))
	})

	return r
}

func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

func (s *SignupService) rateLimited(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

func (s *SignupService) limiterFailed(w http.ResponseWriter, r *http.Request, err error) {
	s.errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrInternalServerError, err))
}

func (s *SignupService) wrap(h handler.HandlerFunc[handler.Context, signup.FormValues]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, signup.FormValues](
			binder.Signals(),
			binder.JSON(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, signup.FormValues](s.errorHandler),
	)
}

func (s *SignupService) pageParams(st form.State) PageParams {
	return PageParams{
		Title:           s.title,
		State:           st,
		Specializations: s.catalog.Options(),
	}
}

func (s *SignupService) page(ctx handler.Context, _ pageRequest) handler.Response {
	return handler.Templ(s.views.Page(s.pageParams(form.New(s.validator).State())))
}

func (s *SignupService) submit(ctx handler.Context, req signup.FormValues) handler.Response {
	opts := []form.Option{form.WithLogger(s.log)}
	for _, fn := range s.onAccepted {
		opts = append(opts, form.OnAccepted(fn))
	}
	c := form.Restore(s.validator, form.State{Values: req}, opts...)
	out := c.Submit(ctx)
	st := c.State()

	r := ctx.Request()
	switch {
	case handler.IsDataStar(r):
		patches := make([]handler.TemplPatch, 0, len(signup.Fields())+2)
		for _, f := range signup.Fields() {
			patches = append(patches, handler.Patch(s.views.FieldFeedback(f, st.Field(f))))
		}
		patches = append(patches,
			handler.Patch(s.views.PasswordRequirements(st.Requirements)),
			handler.Patch(s.views.SuccessMessage(st.SuccessShown)),
		)
		if out.Accepted {
			return handler.TemplMultiSignals(signup.FormValues{}, patches...)
		}
		return handler.TemplMulti(patches...)

	case handler.WantsJSON(r):
		if out.Accepted {
			return handler.JSON(out.Result)
		}
		return handler.JSONError(out.Result.Err())

	default:
		status := http.StatusOK
		if !out.Accepted {
			status = http.StatusUnprocessableEntity
		}
		return handler.TemplStatus(status, s.views.Page(s.pageParams(st)))
	}
}

func (s *SignupService) validateField(ctx handler.Context, req signup.FormValues) handler.Response {
	f, err := signup.ParseField(chi.URLParam(ctx.Request(), "field"))
	if err != nil {
		return handler.Error(handler.ErrNotFound)
	}

	if !handler.IsDataStar(ctx.Request()) {
		return handler.JSON(s.validator.ValidateField(f, req))
	}

	event := ctx.Request().URL.Query().Get("event")
	c := form.Restore(s.validator, form.State{Values: req})
	switch event {
	case EventInput:
		c.Input(f, req.Get(f))
	case EventChange:
		c.Change(f, req.Get(f))
	default:
		c.Blur(f)
	}
	st := c.State()

	s.log.DebugContext(ctx, "field validated",
		logger.Component("web"),
		logger.Field(f.String()),
		logger.Event(event),
		slog.String("status", string(st.Field(f).Status)),
	)

	patches := []handler.TemplPatch{handler.Patch(s.views.FieldFeedback(f, st.Field(f)))}
	if f == signup.FieldPassword {
		patches = append(patches, handler.Patch(s.views.PasswordRequirements(st.Requirements)))
		if req.ConfirmPassword != "" {
			patches = append(patches, handler.Patch(
				s.views.FieldFeedback(signup.FieldConfirmPassword, st.Field(signup.FieldConfirmPassword)),
			))
		}
	}
	return handler.TemplMulti(patches...)
}

func (s *SignupService) password(ctx handler.Context, req signup.FormValues) handler.Response {
	c := form.Restore(s.validator, form.State{Values: req})
	c.Input(signup.FieldPassword, req.Password)
	panel := c.State().Requirements

	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(s.views.PasswordRequirements(panel))
	}
	return handler.JSON(panel.PasswordRequirements)
}

func (s *SignupService) dismiss(ctx handler.Context, _ pageRequest) handler.Response {
	c := form.Restore(s.validator, form.State{SuccessShown: true})
	c.DismissSuccess()

	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(s.views.SuccessMessage(c.State().SuccessShown))
	}
	return handler.JSON(c.State().SuccessShown)
}
