package ui

// Package ui contains the interactive terminal front end. Driver walks the
// user through URL entry, playlist selection and quality choice, then hands
// the request to the download service. All user-facing strings come from
// Localization.
