package handler

import (
	"net/http"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/apierr"
)

// WriteError writes an error response using the apierr mapping
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}
