package headers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlerts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		apply func(h http.Header)
		alert string
	}{
		{"created", func(h http.Header) { CreationAlert(h, "app", "folder", 7) }, "app.folder.created"},
		{"updated", func(h http.Header) { UpdateAlert(h, "app", "folder", 7) }, "app.folder.updated"},
		{"deleted", func(h http.Header) { DeletionAlert(h, "app", "folder", 7) }, "app.folder.deleted"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := http.Header{}
			tt.apply(h)

			assert.Equal(t, tt.alert, h.Get("X-app-alert"))
			assert.Equal(t, "7", h.Get("X-app-params"))
		})
	}
}

func TestErrorAlert(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	ErrorAlert(h, "app", "document", "idnull")

	assert.Equal(t, "error.idnull", h.Get("X-app-error"))
	assert.Equal(t, "document", h.Get("X-app-params"))
	assert.Empty(t, h.Get("X-app-alert"))
}
