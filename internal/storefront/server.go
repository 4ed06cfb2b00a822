// Package storefront serves a stand-in for the Swag Labs demo store. It renders
// the same data-test contract as the hosted application so the browser suite
// can run against it without network access.
package storefront

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/themizzi/swagtest/internal/repository"
	"github.com/themizzi/swagtest/internal/services"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options configure a Server. Zero values select in-memory orders and a no-op logger.
type Options struct {
	Orders services.OrderService
	Logger *zap.Logger
}

// Server wires the storefront handlers together
type Server struct {
	logger *zap.Logger

	login     *LoginHandler
	logout    *LogoutHandler
	inventory *InventoryHandler
	product   *ProductHandler
	cart      *CartHandler
	stepOne   *StepOneHandler
	stepTwo   *StepTwoHandler
	complete  *CompleteHandler
	static    http.Handler
}

// New creates a storefront over the embedded catalog and templates
func New(opts Options) (*Server, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	orders := opts.Orders
	if orders == nil {
		orders = services.NewOrderService(repository.NewMemoryOrderRepository())
	}

	r := &renderer{template: tmpl, logger: logger.Named("storefront")}
	return &Server{
		logger:    r.logger,
		login:     &LoginHandler{renderer: r},
		logout:    &LogoutHandler{},
		inventory: &InventoryHandler{renderer: r, catalog: catalog},
		product:   &ProductHandler{renderer: r, catalog: catalog},
		cart:      &CartHandler{renderer: r, catalog: catalog},
		stepOne:   &StepOneHandler{renderer: r, catalog: catalog, orders: orders},
		stepTwo:   &StepTwoHandler{renderer: r, catalog: catalog, orders: orders},
		complete:  &CompleteHandler{renderer: r, catalog: catalog, orders: orders},
		static:    http.StripPrefix("/static/", http.FileServer(http.FS(static))),
	}, nil
}

// Handler returns the routed, request-logging handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", s.login)
	mux.Handle("/logout", s.logout)
	mux.Handle("/inventory.html", requireLogin(s.inventory))
	mux.Handle("/inventory-item.html", requireLogin(s.product))
	mux.Handle("/cart.html", requireLogin(s.cart))
	mux.Handle("/checkout-step-one.html", requireLogin(s.stepOne))
	mux.Handle("/checkout-step-two.html", requireLogin(s.stepTwo))
	mux.Handle("/checkout-complete.html", requireLogin(s.complete))
	mux.Handle("/static/", s.static)
	return logRequests(s.logger, mux)
}

// Logins counts successful logins since the server started
func (s *Server) Logins() int64 {
	return s.login.logins.Load()
}

// requireLogin bounces anonymous visitors to the login screen, which then
// explains which path they tried to open.
func requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if username(r) == "" {
			setCookie(w, FlashCookie, r.URL.Path)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type sortOption struct {
	Value string
	Label string
}

var sortOptions = []sortOption{
	{Value: "az", Label: "Name (A to Z)"},
	{Value: "za", Label: "Name (Z to A)"},
	{Value: "lohi", Label: "Price (low to high)"},
	{Value: "hilo", Label: "Price (high to low)"},
}

type productView struct {
	Product
	InCart bool
}

type lineView struct {
	Product
	Removable bool
}

// view is the data every template renders from
type view struct {
	Title          string
	CartCount      int
	Year           int
	Error          string
	BackToProducts bool

	Sortable    bool
	ActiveSort  sortOption
	SortOptions []sortOption

	Username  string
	Usernames []string
	Password  string

	Products []productView
	Product  productView

	Items    []lineView
	Form     checkoutForm
	Subtotal string
	Tax      string
	Total    string

	OrderReference string
}

type renderer struct {
	template *template.Template
	logger   *zap.Logger
}

// render executes the named template and writes it with status. Nothing is
// written until the template succeeds.
func (rd *renderer) render(w http.ResponseWriter, status int, name string, v view) {
	v.Year = time.Now().Year()

	var buf bytes.Buffer
	if err := rd.template.ExecuteTemplate(&buf, name, v); err != nil {
		rd.logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
