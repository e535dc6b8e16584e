// Package tui is the terminal front end of the respondent runner, built on
// bubbletea. It renders one question at a time from a [runner.Machine] and
// never handles key material itself: loading and submission go through the
// client services.
package tui
