package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/lifegame/internal/api/apierr"
	"github.com/mcoot/lifegame/internal/api/handler"
	"github.com/mcoot/lifegame/internal/api/middleware"
	"github.com/mcoot/lifegame/internal/services/auth"
)

// internalPrefix marks action names that may never be invoked remotely
const internalPrefix = "_"

// Action is one entry of the dispatcher's action table
type Action struct {
	Method          string
	RequiresSession bool
	Handler         http.Handler
}

// Dispatcher resolves /actions/{action} against a closed table of actions
type Dispatcher struct {
	actions map[string]Action
}

// NewDispatcher builds the action table
func NewDispatcher(authService *auth.Service, players *handler.PlayerHandler, game *handler.GameHandler) *Dispatcher {
	requireSession := middleware.Auth(authService)

	table := map[string]struct {
		method string
		auth   bool
		fn     http.HandlerFunc
	}{
		"getFormForNewPlayer":     {http.MethodGet, false, players.Form},
		"validateSingleInput":     {http.MethodPost, false, players.ValidateInput},
		"createNewPlayer":         {http.MethodPost, false, players.Register},
		"login":                   {http.MethodPost, false, players.Login},
		"getBasicDetailsForLogin": {http.MethodGet, true, players.Details},
		"getRelevantMenu":         {http.MethodGet, true, game.Menu},
		"getPlayerData":           {http.MethodGet, true, players.Data},
		"handleChoice":            {http.MethodPost, true, game.Choose},
	}

	actions := make(map[string]Action, len(table))
	for name, entry := range table {
		var h http.Handler = entry.fn
		if entry.auth {
			h = requireSession(h)
		}
		actions[name] = Action{Method: entry.method, RequiresSession: entry.auth, Handler: h}
	}
	return &Dispatcher{actions: actions}
}

// Names returns the invocable action names in sorted order
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.actions))
	for name := range d.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServeHTTP dispatches a single action invocation
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["action"]

	if strings.HasPrefix(name, internalPrefix) {
		apierr.WriteError(w, apierr.NewNotPermittedError(name))
		return
	}

	action, ok := d.actions[name]
	if !ok {
		apierr.WriteError(w, apierr.NewNoSuchActionError(name))
		return
	}

	if r.Method != action.Method {
		w.Header().Set("Allow", action.Method)
		apierr.WriteError(w, apierr.NewMethodNotAllowedError(r.Method))
		return
	}

	action.Handler.ServeHTTP(w, r)
}
