// Package domain models daily weather observations and the statistics derived
// from them.
//
// # Data Source
//
// Observations come from a flat CSV file with one row per day:
//
//	Date,Temperature,Humidity,Precipitation
//	2023-08-01,32.5,65,0.0
//
// Dates are ISO-8601 calendar dates (YYYY-MM-DD). Temperature is degrees
// Celsius, humidity a percentage, and precipitation millimeters. Numbers use
// "." as the decimal separator regardless of locale.
//
// # Conventions
//
// Rainy day:
//
//	Any record with precipitation strictly greater than zero. A reading of
//	exactly 0.0 mm is dry.
//
// Temperature bands (lower bound inclusive):
//
//	Hot:  >= 35°C
//	Warm: >= 25°C
//	Cold: everything below 25°C
//
// Monthly average:
//
//	Arithmetic mean over every record whose date falls in the month, across
//	all years present. A month without records yields NaN so "no data" stays
//	distinguishable from an average of exactly zero.
package domain
