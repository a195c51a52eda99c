// pkg/cylera/endpoints.go

package cylera

// Endpoints lists the known Partner API base URLs offered by the setup
// wizard. A custom base URL can still be supplied directly through the
// environment.
var Endpoints = []string{
	"https://partner.us1.cylera.com/",
	"https://partner.uk1.cylera.com/",
	"https://partner.demo.cylera.com/",
}
