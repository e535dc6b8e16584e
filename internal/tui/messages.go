package tui

import (
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/models"
)

type loadedMsg struct {
	session *service.FormSession
	err     error
}

type submittedMsg struct {
	result models.InsertResponseResult
	err    error
}
