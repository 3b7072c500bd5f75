// recover.go — middleware перехвата паник в обработчиках.
// Паника превращается в 500 {"error": "Internal server error"}.
package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/bigkaa/eduink/internal/api/errors"
)

// Recoverer возвращает middleware, перехватывающий панику обработчика.
// Клиент получает стандартный ответ 500, стек пишется в лог.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("Паника в обработчике",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)
					apierrors.ServerError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
