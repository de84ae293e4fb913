package app

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/domain/reports"
	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"
)

// projectSummaryData holds everything the project summary template renders
type projectSummaryData struct {
	Project            *projects.Project
	EarlyWarnings      []*notices.EarlyWarning
	CompensationEvents []*notices.CompensationEvent
	Requisitions       []*procurement.PurchaseRequisition
	RecentReports      []*sitereports.DailySiteReport
	TotalCommitted     float64
	GeneratedAt        time.Time
}

// reportService implements the ReportService interface for generating project
// documents through the headless-browser renderer
type reportService struct {
	renderer        reports.DocumentRenderer
	projectRepo     projects.ProjectRepository
	warningRepo     notices.EarlyWarningRepository
	eventRepo       notices.CompensationEventRepository
	requisitionRepo procurement.RequisitionRepository
	siteReportRepo  sitereports.SiteReportRepository
	template        *template.Template
	logger          logger.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(
	renderer reports.DocumentRenderer,
	projectRepo projects.ProjectRepository,
	warningRepo notices.EarlyWarningRepository,
	eventRepo notices.CompensationEventRepository,
	requisitionRepo procurement.RequisitionRepository,
	siteReportRepo sitereports.SiteReportRepository,
	logger logger.Logger,
) (reports.ReportService, error) {
	tmpl, err := template.New("project_summary").Parse(projectSummaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project summary template: %w", err)
	}

	return &reportService{
		renderer:        renderer,
		projectRepo:     projectRepo,
		warningRepo:     warningRepo,
		eventRepo:       eventRepo,
		requisitionRepo: requisitionRepo,
		siteReportRepo:  siteReportRepo,
		template:        tmpl,
		logger:          logger,
	}, nil
}

// GenerateProjectSummary gathers the project's notices, requisitions and
// recent site reports, renders the summary document and prints it to PDF.
func (s *reportService) GenerateProjectSummary(ctx context.Context, projectID string) ([]byte, error) {
	data, err := s.collectSummaryData(ctx, projectID)
	if err != nil {
		return nil, err
	}

	html, err := s.renderSummaryHTML(data)
	if err != nil {
		return nil, err
	}

	pdf, err := s.renderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("failed to render project summary: %w", err)
	}

	s.logger.Info("Generated summary PDF for project ", projectID)
	return pdf, nil
}

// CaptureDashboard navigates to a dashboard URL and returns a full-page PNG
// screenshot
func (s *reportService) CaptureDashboard(ctx context.Context, url string) ([]byte, error) {
	png, err := s.renderer.CaptureScreenshot(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to capture dashboard: %w", err)
	}

	s.logger.Info("Captured dashboard screenshot of ", url)
	return png, nil
}

func (s *reportService) collectSummaryData(ctx context.Context, projectID string) (*projectSummaryData, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	noticeQuery := notices.NewNoticeQuery()
	noticeQuery.ProjectID = projectID
	noticeQuery.SortBy = "raised_at"
	noticeQuery.SortOrder = "desc"

	warnings, err := s.warningRepo.List(ctx, noticeQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list early warnings: %w", err)
	}

	events, err := s.eventRepo.List(ctx, noticeQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation events: %w", err)
	}

	requisitionQuery := procurement.NewRequisitionQuery()
	requisitionQuery.ProjectID = projectID
	requisitionQuery.SortBy = "created_at"
	requisitionQuery.SortOrder = "desc"

	requisitions, err := s.requisitionRepo.List(ctx, requisitionQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list requisitions: %w", err)
	}

	var totalCommitted float64
	for _, requisition := range requisitions {
		if requisition.Status != procurement.RequisitionStatusCancelled {
			totalCommitted += requisition.TotalCost
		}
	}

	reportQuery := sitereports.NewReportQuery()
	reportQuery.ProjectID = projectID
	reportQuery.SortBy = "report_date"
	reportQuery.SortOrder = "desc"
	reportQuery.Limit = 14

	recentReports, err := s.siteReportRepo.List(ctx, reportQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list site reports: %w", err)
	}

	return &projectSummaryData{
		Project:            project,
		EarlyWarnings:      warnings,
		CompensationEvents: events,
		Requisitions:       requisitions,
		RecentReports:      recentReports,
		TotalCommitted:     totalCommitted,
		GeneratedAt:        time.Now(),
	}, nil
}

func (s *reportService) renderSummaryHTML(data *projectSummaryData) (string, error) {
	var buf bytes.Buffer
	if err := s.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute project summary template: %w", err)
	}
	return buf.String(), nil
}

const projectSummaryTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #1a1a1a; margin: 32px; }
  h1 { font-size: 20px; margin-bottom: 2px; }
  h2 { font-size: 14px; border-bottom: 1px solid #ccc; padding-bottom: 4px; margin-top: 24px; }
  .meta { color: #555; margin-bottom: 12px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th { text-align: left; background: #f0f0f0; padding: 5px 8px; font-size: 11px; }
  td { padding: 5px 8px; border-bottom: 1px solid #e5e5e5; vertical-align: top; }
  .total { font-weight: bold; margin-top: 8px; }
  .empty { color: #888; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Project.Name}}</h1>
<div class="meta">
  {{.Project.ContractReference}} &middot; {{.Project.ContractType}} &middot; {{.Project.Client}}<br>
  Status: {{.Project.Status}} &middot; Generated {{.GeneratedAt.Format "2006-01-02 15:04"}}
</div>

<h2>Early Warnings</h2>
{{if .EarlyWarnings}}
<table>
  <tr><th>Ref</th><th>Description</th><th>Status</th><th>Raised By</th><th>Raised</th></tr>
  {{range .EarlyWarnings}}
  <tr>
    <td>{{.Reference}}</td>
    <td>{{.Description}}</td>
    <td>{{.Status}}</td>
    <td>{{.RaisedBy}}</td>
    <td>{{.RaisedAt.Format "2006-01-02"}}</td>
  </tr>
  {{end}}
</table>
{{else}}<p class="empty">No early warnings raised.</p>{{end}}

<h2>Compensation Events</h2>
{{if .CompensationEvents}}
<table>
  <tr><th>Ref</th><th>Clause</th><th>Description</th><th>Status</th><th>Est. Value</th><th>Raised</th></tr>
  {{range .CompensationEvents}}
  <tr>
    <td>{{.Reference}}</td>
    <td>{{.ClauseRef}}</td>
    <td>{{.Description}}</td>
    <td>{{.Status}}</td>
    <td>{{printf "%.2f" .EstimatedValue}}</td>
    <td>{{.RaisedAt.Format "2006-01-02"}}</td>
  </tr>
  {{end}}
</table>
{{else}}<p class="empty">No compensation events notified.</p>{{end}}

<h2>Purchase Requisitions</h2>
{{if .Requisitions}}
<table>
  <tr><th>Ref</th><th>Description</th><th>Status</th><th>Qty</th><th>Unit Cost</th><th>Total</th></tr>
  {{range .Requisitions}}
  <tr>
    <td>{{.Reference}}</td>
    <td>{{.Description}}</td>
    <td>{{.Status}}</td>
    <td>{{printf "%.2f" .Quantity}}</td>
    <td>{{printf "%.2f" .UnitCost}}</td>
    <td>{{printf "%.2f" .TotalCost}}</td>
  </tr>
  {{end}}
</table>
<p class="total">Total committed (excl. cancelled): {{printf "%.2f" .TotalCommitted}}</p>
{{else}}<p class="empty">No purchase requisitions recorded.</p>{{end}}

<h2>Recent Site Reports</h2>
{{if .RecentReports}}
<table>
  <tr><th>Date</th><th>Weather</th><th>Labour</th><th>Plant</th><th>Progress</th></tr>
  {{range .RecentReports}}
  <tr>
    <td>{{.ReportDate.Format "2006-01-02"}}</td>
    <td>{{.Weather}}</td>
    <td>{{.LabourCount}}</td>
    <td>{{.PlantCount}}</td>
    <td>{{.Progress}}</td>
  </tr>
  {{end}}
</table>
{{else}}<p class="empty">No site reports submitted.</p>{{end}}
</body>
</html>`
