package middleware

import (
	"net/http"
	"strings"

	"fleet-booking/pkg/utils"
)

// ActorHeader carries the display name of the caller. It is trusted as-is:
// there is no authentication in front of this service, the name only feeds
// booking audit entries.
const ActorHeader = "X-Actor-Name"

// Actor puts the caller's display name into the request context when present
func Actor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := strings.TrimSpace(r.Header.Get(ActorHeader))
			if actor == "" {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetActorContext(r.Context(), actor)))
		})
	}
}
