// Package e2e drives the landing page in a headless browser.
//
// The tests need Chromium (downloaded by rod on first use) and only build
// with the e2e tag:
//
//	go test -tags e2e ./internal/e2e/...
//
// Set ARTFINITY_TEST_HEADLESS=false to watch the browser.
package e2e
