// Package magetasks holds the build, test and lint tasks behind zshift's Magefile.
//
// Tasks shell out through mage's sh helpers and print short headed sections so
// a CI log reads top to bottom.
package magetasks
