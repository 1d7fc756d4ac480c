// internal/platform/di/register.go
package di

import (
	"log"
	"net/http"

	"agendalog/internal/adapters/in/http/handler"
	"agendalog/internal/adapters/in/http/middleware"
)

// Register mounts every route onto mux. Handlers are constructed here and
// never nil; mutating endpoints get the auth middleware when enabled.
func Register(mux *http.ServeMux, cont *Container) {
	if mux == nil || cont == nil {
		return
	}

	authed := func(h http.Handler) http.Handler { return h }
	if cont.Config.AuthEnabled {
		if cont.FirebaseAuth == nil {
			// fail-closed: protected endpoints answer 503 instead of being open
			log.Printf("[di.register] WARN: auth enabled but FirebaseAuth is nil; protected endpoints will return 503")
		}
		mw := &middleware.UserAuthMiddleware{FirebaseAuth: cont.FirebaseAuth}
		authed = mw.Handler
	}

	mux.Handle("/catalogues/", handler.NewCatalogueHandler(cont.Catalogue))
	mux.Handle("/clients", handler.NewClientHandler(cont.ClientUC))
	mux.Handle("/clients/", handler.NewClientHandler(cont.ClientUC))
	mux.Handle("/forms/", authed(handler.NewFormHandler(cont.FormUC)))
	mux.Handle("/schedules", authed(handler.NewScheduleHandler(cont.ScheduleUC)))
	mux.Handle("/lookup/", handler.NewLookupHandler(cont.LookupUC))
}
