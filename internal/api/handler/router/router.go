package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route associa um método e caminho HTTP a um handler. Os middlewares
// transversais (log, CORS, autenticação) ficam na cadeia do servidor,
// nunca por rota.
type Route struct {
	Path    string
	Method  string
	Handler http.Handler
}

type Router struct {
	router *httprouter.Router
}

type Option func(*Router)

// WithRoutes registra um grupo de rotas na construção do router.
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

func New(opts ...Option) Router {
	r := &Router{
		router: httprouter.New(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, route.Handler)
	}
}
