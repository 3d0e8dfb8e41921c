package auth

import (
	"crypto/subtle"
	"net/http"
)

// BasicAuth закрывает админку. Пустой логин запрещает вход совсем,
// чтобы незаполненный конфиг не открыл админку всем.
func BasicAuth(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || username == "" {
				requireAuth(w)
				return
			}

			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
			if !userOK || !passOK {
				requireAuth(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requireAuth(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="Frameshop Admin"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
