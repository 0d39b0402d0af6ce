package main

// @title Firewatch API
// @version 1.0.0
// @description Location-scoped wildfire risk API: resolves a location from
// @description device geolocation or a place search, and serves the map view
// @description and multi-day risk forecast for it.

// @host localhost:8080
// @BasePath /
