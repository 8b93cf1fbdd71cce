// Package fetch retrieves the schedule page markup, either with a plain
// HTTP GET or through a headless Chromium render for markup the server only
// fills in after its lazy-load scripts run. The extraction pipeline itself
// never touches the network; it is handed the string these fetchers return.
package fetch
