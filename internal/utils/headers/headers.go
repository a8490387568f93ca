package headers

import (
	"fmt"
	"net/http"
)

func alertHeader(app string) string {
	return fmt.Sprintf("X-%s-alert", app)
}

func errorHeader(app string) string {
	return fmt.Sprintf("X-%s-error", app)
}

func paramsHeader(app string) string {
	return fmt.Sprintf("X-%s-params", app)
}

func Alert(h http.Header, app, message, param string) {
	h.Set(alertHeader(app), message)
	h.Set(paramsHeader(app), param)
}

func CreationAlert(h http.Header, app, entity string, id int64) {
	Alert(h, app, fmt.Sprintf("%s.%s.created", app, entity), fmt.Sprint(id))
}

func UpdateAlert(h http.Header, app, entity string, id int64) {
	Alert(h, app, fmt.Sprintf("%s.%s.updated", app, entity), fmt.Sprint(id))
}

func DeletionAlert(h http.Header, app, entity string, id int64) {
	Alert(h, app, fmt.Sprintf("%s.%s.deleted", app, entity), fmt.Sprint(id))
}

func ErrorAlert(h http.Header, app, entity, code string) {
	h.Set(errorHeader(app), "error."+code)
	h.Set(paramsHeader(app), entity)
}
