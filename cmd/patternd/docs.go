package main

// General API documentation for swaggo. The rendered document lives in
// internal/httpapi/docs and is served at /swagger/ in -tags=swagger builds.
//
// @title           patternd API
// @version         1.0
// @description     Notifier, mood agent and house facade over HTTP.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
