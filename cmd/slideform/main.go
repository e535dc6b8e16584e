package main

import (
	"github.com/MKhiriev/go-slide-form/internal/cli"
	"github.com/MKhiriev/go-slide-form/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cli.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
