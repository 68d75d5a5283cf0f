// Package handlers implements the orderpulse HTTP surface: alert rule
// CRUD, order ingestion and queries, the KPI metrics endpoints, health
// probes, and the websocket alert stream.
//
// REST handlers register against a huma API and read the merchant
// identity that the auth middleware put on the request context; the
// websocket endpoint attaches to echo directly because it hijacks the
// connection after the upgrade.
package handlers
