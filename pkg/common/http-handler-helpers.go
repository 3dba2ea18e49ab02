package common

import (
	"errors"
	"log"
	"net/http"

	"github.com/bytedance/sonic"
)

// StatusError carries the HTTP status an error should be answered with.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func WithStatus(status int, err error) error {
	if err == nil {
		return nil
	}
	return &StatusError{Status: status, Err: err}
}

// JsonHandler encodes whatever fn returns as JSON. Errors are answered with
// their StatusError status, or 500.
func JsonHandler(fn func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		data, err := fn(r)
		if err != nil {
			status := http.StatusInternalServerError
			var se *StatusError
			if errors.As(err, &se) {
				status = se.Status
			}
			if status >= http.StatusInternalServerError {
				log.Printf("Error handling %s: %v", r.URL.Path, err)
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := sonic.ConfigDefault.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding response for %s: %v", r.URL.Path, err)
		}
	}
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}
