package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The
// transaction is rolled back when the handler panics or answers with a
// 5xx status, and committed otherwise.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeInternalError(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			rec := &bufferedWriter{header: http.Header{}, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(setTxToContext(r.Context(), tx)))

			if rec.statusCode >= http.StatusInternalServerError {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				rec.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeInternalError(w)
				return
			}
			rec.flush(w)
		})
	}
}

// bufferedWriter holds the response until the transaction outcome is known.
type bufferedWriter struct {
	header      http.Header
	statusCode  int
	body        []byte
	wroteHeader bool
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.wroteHeader = true
	b.statusCode = code
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.wroteHeader = true
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	w.WriteHeader(b.statusCode)
	_, _ = w.Write(b.body)
}

func writeInternalError(w http.ResponseWriter) {
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

type txKey struct{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}
