// Package product provides the catalog entry the fulfillment workflow picks from.
//
// A Product carries its bin Location for pickers, its barcode for packers and
// the unit price that orders snapshot at intake. Stock is adjusted through
// StockAdjustment values; stock never goes below zero.
package product
