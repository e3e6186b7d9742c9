package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome       = "/"
	RouteGameState  = "/game-state"
	RouteGuess      = "/guess"
	RouteRestart    = "/restart"
	RouteAPIState   = "/api/state"
	RouteAPIGuess   = "/api/guess"
	RouteAPIRestart = "/api/restart"
	RouteHealthz    = "/healthz"
)

// Page constants
const (
	PageTitle     = "Forca"
	PageHeading   = "Adivinhe a palavra, uma letra por vez."
	ConfirmYes    = "yes"
	FormLetter    = "letter"
	FormConfirm   = "confirm"
	TemplatePage  = "index.html"
	TemplateBoard = "game-content"
)

// Error message constants
const (
	ErrorBadJSON         = "Invalid request body."
	ErrorTooManyRequests = "Too many requests. Please slow down."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
