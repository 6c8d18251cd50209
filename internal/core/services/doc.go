// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Quantity parsing and aggregation live in the measure and grocery
// packages; services wire them to storage and configuration.
package services
