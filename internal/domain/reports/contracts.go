// Package reports defines the contracts for generated project documents.
package reports

import (
	"context"
)

// ReportService defines methods for generating project documents.
type ReportService interface {
	// GenerateProjectSummary renders the project summary report and returns
	// the PDF bytes.
	GenerateProjectSummary(ctx context.Context, projectID string) ([]byte, error)

	// CaptureDashboard navigates to a dashboard URL and returns a full-page
	// PNG screenshot.
	CaptureDashboard(ctx context.Context, url string) ([]byte, error)
}

// DocumentRenderer abstracts the headless-browser rendering backend.
type DocumentRenderer interface {
	// RenderPDF loads the given HTML document and prints it to PDF.
	RenderPDF(ctx context.Context, html string) ([]byte, error)

	// CaptureScreenshot navigates to a URL and captures a full-page screenshot.
	CaptureScreenshot(ctx context.Context, url string) ([]byte, error)

	// Close shuts down the rendering backend.
	Close() error
}
