// Package scraper fetches and parses Korean IPO schedules from the
// 38communication public pages (청약 일정 and 신규 상장).
//
// The collector fetches two differently-shaped table pages, converts rows
// into ipo.Schedule records, merges the listing page into the subscription
// page by company name, and filters out navigational noise and duplicates.
// Individual malformed rows are skipped; a failed page fetch aborts the run.
package scraper
