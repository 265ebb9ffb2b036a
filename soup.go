// Package soup fetches a single web page and extracts text from its
// elements using selector queries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, etree/).
package soup
