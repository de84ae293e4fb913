package reports

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/reports"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// rodRenderer renders documents through a headless Chromium instance. The
// browser is launched on first use and reused for subsequent renders.
type rodRenderer struct {
	settings config.BrowserSettings
	logger   logger.Logger

	mu      sync.Mutex
	browser *rod.Browser
	cleanup func()
}

// NewRodRenderer creates a new go-rod based DocumentRenderer implementation
func NewRodRenderer(settings config.BrowserSettings, logger logger.Logger) (reports.DocumentRenderer, error) {
	return &rodRenderer{
		settings: settings,
		logger:   logger,
	}, nil
}

// ensureBrowser launches and connects the browser if not yet running. The
// connection lives under the renderer's own lifetime, not any caller's
// context; per-call deadlines apply at the page level. Callers must hold r.mu.
func (r *rodRenderer) ensureBrowser() (*rod.Browser, error) {
	if r.browser != nil {
		if _, err := r.browser.Version(); err == nil {
			return r.browser, nil
		}
		r.logger.Warn("Stale browser connection detected, relaunching")
		_ = r.releaseBrowser()
	}

	launch := launcher.New().Headless(r.settings.Headless)
	if r.settings.BinPath != "" {
		launch = launch.Bin(r.settings.BinPath)
	}

	controlURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		launch.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	r.browser = browser
	r.cleanup = launch.Cleanup
	r.logger.Info("Launched headless browser at ", controlURL)
	return r.browser, nil
}

// releaseBrowser disconnects the current browser and runs the launcher
// cleanup so the dead Chrome's process and user-data dir are reclaimed.
// Callers must hold r.mu.
func (r *rodRenderer) releaseBrowser() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.cleanup != nil {
		r.cleanup()
		r.cleanup = nil
	}
	return err
}

func (r *rodRenderer) timeout() time.Duration {
	if r.settings.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(r.settings.TimeoutSeconds) * time.Second
}

func (r *rodRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	dataURL := "data:text/html;charset=utf-8," + url.PathEscape(html)
	page, err := browser.Page(proto.TargetCreateTarget{URL: dataURL})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx).Timeout(r.timeout())
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	printBackground := true
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: printBackground,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to print document to PDF: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF stream: %w", err)
	}

	r.logger.Info("Rendered PDF document of ", len(pdf), " bytes")
	return pdf, nil
}

func (r *rodRenderer) CaptureScreenshot(ctx context.Context, pageURL string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return nil, fmt.Errorf("failed to open page %s: %w", pageURL, err)
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx).Timeout(r.timeout())
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to load page %s: %w", pageURL, err)
	}

	// Full-page capture
	png, err := page.Screenshot(true, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	r.logger.Info("Captured screenshot of ", pageURL)
	return png, nil
}

func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.releaseBrowser(); err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return nil
}
