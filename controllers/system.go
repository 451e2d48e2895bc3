package controllers

import (
	"net/http"

	"foxy-admin/services"
)

// SystemController serves build info, health and the admin tools page
type SystemController struct {
	*View
	VersionFile string
	Environment string
}

func NewSystemController(view *View, versionFile, environment string) *SystemController {
	return &SystemController{View: view, VersionFile: versionFile, Environment: environment}
}

// Info reports the running build. The version file is re-read on every call.
func (sc *SystemController) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.ReadVersionInfo(sc.VersionFile, sc.Environment))
}

func (sc *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.Health())
}

// Calculator renders the badge price calculator
func (sc *SystemController) Calculator(w http.ResponseWriter, r *http.Request) {
	sc.Render(w, r, "calculator.html", "Calculator", nil)
}
